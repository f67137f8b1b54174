package order_api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ag-topup/internal/auth"
	"ag-topup/internal/catalog"
	"ag-topup/internal/config"
	"ag-topup/internal/logger"
	"ag-topup/internal/models"
	"ag-topup/internal/order"
	"ag-topup/internal/order/order_api"
)

// memDB keeps orders in insertion order, newest returned first like the real
// store.
type memDB struct {
	orders []models.Order
}

func (m *memDB) CreateOrder(_ context.Context, ord models.Order) error {
	m.orders = append(m.orders, ord)
	return nil
}

func (m *memDB) GetOrderByID(_ context.Context, id string) (*models.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == id {
			return &m.orders[i], nil
		}
	}
	return nil, fmt.Errorf("no rows")
}

func (m *memDB) GetOrdersByUserID(_ context.Context, userID string) ([]models.Order, error) {
	out := []models.Order{}
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			out = append(out, m.orders[i])
		}
	}
	return out, nil
}

func (m *memDB) CountByTransactionID(_ context.Context, transactionID string) (int, error) {
	n := 0
	for i := range m.orders {
		if m.orders[i].TransactionID == transactionID {
			n++
		}
	}
	return n, nil
}

func newTestHandler(db *memDB) *order_api.Handler {
	svc := order.NewOrderService(catalog.Default(), db, nil, nil, nil, config.DuplicateAllow, logger.NewLogger())
	return order_api.NewHandler(svc, logger.NewLogger())
}

func newTestRouter(db *memDB) *chi.Mux {
	h := newTestHandler(db)
	r := chi.NewRouter()
	r.Post("/api/v1/orders", h.CreateOrder)
	r.Get("/api/v1/orders", h.ListOrders)
	r.Get("/api/v1/orders/{orderId}", h.GetOrder)
	return r
}

func doAs(r http.Handler, userID, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		PackageID:     "25-diamond",
		PlayerID:      "12345678",
		TransactionID: "9HX4K2M8PL",
		PaymentMethod: "bkash",
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	db := &memDB{}
	r := newTestRouter(db)

	rec := doAs(r, "user-1", http.MethodPost, "/api/v1/orders", validRequest())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.OrderID)
	assert.Equal(t, 23, created.Amount)
	assert.Equal(t, models.OrderPending, created.Status)
	require.Len(t, db.orders, 1)
	assert.Equal(t, "user-1", db.orders[0].UserID)
}

// Review markers and the owning user id are internal; the wire response
// carries only the order receipt fields.
func TestCreateOrderResponseOmitsInternalFields(t *testing.T) {
	db := &memDB{orders: []models.Order{{
		ID:            "existing",
		UserID:        "user-9",
		TransactionID: "9HX4K2M8PL",
	}}}
	svc := order.NewOrderService(catalog.Default(), db, nil, nil, nil, config.DuplicateFlag, logger.NewLogger())
	h := order_api.NewHandler(svc, logger.NewLogger())
	r := chi.NewRouter()
	r.Post("/api/v1/orders", h.CreateOrder)

	rec := doAs(r, "user-1", http.MethodPost, "/api/v1/orders", validRequest())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.Len(t, db.orders, 2)
	assert.True(t, db.orders[1].Flagged)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "flagged")
	assert.NotContains(t, raw, "user_id")
}

func TestCreateOrderNoSession(t *testing.T) {
	db := &memDB{}
	r := newTestRouter(db)

	rec := doAs(r, "", http.MethodPost, "/api/v1/orders", validRequest())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, db.orders)
}

func TestCreateOrderValidationStatus(t *testing.T) {
	db := &memDB{}
	r := newTestRouter(db)

	tests := []struct {
		name   string
		mutate func(*models.CreateOrderRequest)
		status int
	}{
		{"no package", func(req *models.CreateOrderRequest) { req.PackageID = "" }, http.StatusBadRequest},
		{"unknown package", func(req *models.CreateOrderRequest) { req.PackageID = "ghost" }, http.StatusNotFound},
		{"bad player id", func(req *models.CreateOrderRequest) { req.PlayerID = "123" }, http.StatusBadRequest},
		{"bad payment method", func(req *models.CreateOrderRequest) { req.PaymentMethod = "paypal" }, http.StatusBadRequest},
		{"bad transaction id", func(req *models.CreateOrderRequest) { req.TransactionID = "short" }, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			rec := doAs(r, "user-1", http.MethodPost, "/api/v1/orders", req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
	assert.Empty(t, db.orders)
}

func TestGetOrderOwnership(t *testing.T) {
	db := &memDB{}
	r := newTestRouter(db)

	rec := doAs(r, "user-1", http.MethodPost, "/api/v1/orders", validRequest())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doAs(r, "user-1", http.MethodGet, "/api/v1/orders/"+created.OrderID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doAs(r, "user-2", http.MethodGet, "/api/v1/orders/"+created.OrderID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doAs(r, "user-1", http.MethodGet, "/api/v1/orders/no-such-order", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := &memDB{}
	r := newTestRouter(db)

	first := validRequest()
	second := validRequest()
	second.PackageID = "240-diamond"
	second.TransactionID = "ZZX4K2M8QQ"

	require.Equal(t, http.StatusCreated, doAs(r, "user-1", http.MethodPost, "/api/v1/orders", first).Code)
	require.Equal(t, http.StatusCreated, doAs(r, "user-1", http.MethodPost, "/api/v1/orders", second).Code)
	require.Equal(t, http.StatusCreated, doAs(r, "user-2", http.MethodPost, "/api/v1/orders", validRequest()).Code)

	rec := doAs(r, "user-1", http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "240-diamond", orders[0].PackageID)
	assert.Equal(t, "25-diamond", orders[1].PackageID)
}
