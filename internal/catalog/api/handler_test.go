package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ag-topup/internal/catalog"
	"ag-topup/internal/catalog/api"
	"ag-topup/internal/logger"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	handler := api.NewHandler(catalog.Default(), logger.NewLogger())
	r := chi.NewRouter()
	handler.Routes(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reqBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	decoded := map[string]interface{}{}
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestListPackages(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodGet, "/api/packages", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].([]interface{})
	assert.Equal(t, float64(len(data)), body["total"])
	assert.Equal(t, len(catalog.Packages), len(data))
}

func TestFilteredLists(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path     string
		category string
	}{
		{"/api/packages/diamonds", ""},
		{"/api/packages/subscriptions", "subscription"},
		{"/api/packages/combos", "weekly-monthly"},
		{"/api/packages/category/diamond", "diamond"},
	}

	for _, tt := range tests {
		rec, body := doJSON(t, r, http.MethodGet, tt.path, nil)
		require.Equal(t, http.StatusOK, rec.Code, tt.path)

		data := body["data"].([]interface{})
		require.NotEmpty(t, data, tt.path)
		if tt.category != "" {
			for _, raw := range data {
				pkg := raw.(map[string]interface{})
				assert.Equal(t, tt.category, pkg["categoryId"], tt.path)
			}
		}
	}
}

func TestCategoryUnknownIsEmptyList(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodGet, "/api/packages/category/no-such-category", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["total"])
}

func TestExportJSON(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/packages/json", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	items := []map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Equal(t, len(catalog.Packages), len(items))
	for _, item := range items {
		assert.Contains(t, []interface{}{"diamond", "subscription"}, item["type"])
		assert.NotEmpty(t, item["label"])
	}
}

func TestGetPackage(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodGet, "/api/packages/25-diamond", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pkg := body["data"].(map[string]interface{})
	assert.Equal(t, "25-diamond", pkg["id"])
	assert.Equal(t, float64(23), pkg["price"])
}

func TestGetPackageNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodGet, "/api/packages/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Package not found", body["error"])
}

func TestValidatePricingEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodPost, "/api/packages/validate",
		map[string]interface{}{"packageId": "25-diamond", "expectedPrice": 23})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, float64(23), body["actualPrice"])

	_, body = doJSON(t, r, http.MethodPost, "/api/packages/validate",
		map[string]interface{}{"packageId": "25-diamond", "expectedPrice": 9999})
	assert.Equal(t, false, body["valid"])

	_, body = doJSON(t, r, http.MethodPost, "/api/packages/validate",
		map[string]interface{}{"packageId": "ghost", "expectedPrice": 23})
	assert.Equal(t, false, body["valid"])
}

func TestValidateComboEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodPost, "/api/packages/validate-combo",
		map[string]interface{}{"packageId": "combo-1", "expectedPrice": 350})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, float64(350), body["expectedPrice"])
	assert.Equal(t, float64(56), body["discountPercent"])
}

func TestCreateOrderStub(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodPost, "/api/orders", map[string]interface{}{
		"packageId":     "25-diamond",
		"playerId":      "12345678",
		"transactionId": "ABC1234567",
		"paymentMethod": "bkash",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["orderId"])
	// The stub answers "completed" without persisting anything; the
	// authenticated order service is the path that writes "pending".
	assert.Equal(t, "completed", body["status"])
}

// The catalog API speaks camelCase throughout; a body using the order
// service's snake_case keys decodes to empty fields and must be rejected.
func TestCreateOrderStubFieldNaming(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodPost, "/api/orders", map[string]interface{}{
		"package_id":     "25-diamond",
		"player_id":      "12345678",
		"transaction_id": "ABC1234567",
		"payment_method": "bkash",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestCreateOrderStubMissingFields(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodPost, "/api/orders", map[string]interface{}{
		"packageId": "25-diamond",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestCreateOrderStubUnknownPackage(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodPost, "/api/orders", map[string]interface{}{
		"packageId":     "does-not-exist",
		"playerId":      "12345678",
		"transactionId": "ABC1234567",
		"paymentMethod": "bkash",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Package not found", body["error"])
}
