package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ag-topup/internal/catalog"
	"ag-topup/internal/logger"
	"ag-topup/internal/models"
)

// Handler serves the public catalog API. It is stateless: every response is
// computed from the immutable catalog store.
type Handler struct {
	Store  *catalog.Store
	Logger *logger.Logger
}

func NewHandler(store *catalog.Store, log *logger.Logger) *Handler {
	return &Handler{Store: store, Logger: log}
}

// Routes mounts all catalog endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/api/health", h.Health)
	r.Route("/api/packages", func(r chi.Router) {
		r.Get("/", h.ListPackages)
		r.Get("/json", h.ExportJSON)
		r.Get("/diamonds", h.ListDiamonds)
		r.Get("/subscriptions", h.ListSubscriptions)
		r.Get("/combos", h.ListCombos)
		r.Get("/category/{categoryId}", h.ListByCategory)
		r.Get("/{packageId}", h.GetPackage)
		r.Post("/validate", h.ValidatePricing)
		r.Post("/validate-combo", h.ValidateComboPricing)
	})
	r.Post("/api/orders", h.CreateOrderStub)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, h.Store.GetAll())
}

func (h *Handler) ListDiamonds(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, h.Store.GetDiamondPackages())
}

func (h *Handler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, h.Store.GetSubscriptionPackages())
}

func (h *Handler) ListCombos(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, h.Store.GetComboPackages())
}

func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	h.writeList(w, h.Store.GetByCategory(categoryID))
}

func (h *Handler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ExportItems())
}

func (h *Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "packageId")

	pkg, ok := h.Store.GetByID(packageID)
	if !ok {
		h.Logger.Warn("API", fmt.Sprintf("GetPackage: unknown package %q", packageID))
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   "Package not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    pkg,
	})
}

type validateRequest struct {
	PackageID     string `json:"packageId"`
	ExpectedPrice int    `json:"expectedPrice"`
}

func (h *Handler) ValidatePricing(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	valid := h.Store.ValidatePricing(req.PackageID, req.ExpectedPrice)
	resp := map[string]interface{}{
		"success":       true,
		"valid":         valid,
		"expectedPrice": req.ExpectedPrice,
	}
	if pkg, ok := h.Store.GetByID(req.PackageID); ok {
		resp["package"] = pkg
		resp["actualPrice"] = pkg.Price
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ValidateComboPricing(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	result := h.Store.ValidateComboPricing(req.PackageID, req.ExpectedPrice)
	resp := map[string]interface{}{
		"success":         true,
		"valid":           result.Valid,
		"expectedPrice":   result.ExpectedPrice,
		"discountPercent": result.DiscountPercent,
	}
	if pkg, ok := h.Store.GetByID(req.PackageID); ok {
		resp["package"] = pkg
	}
	writeJSON(w, http.StatusOK, resp)
}

// createOrderStubRequest uses the camelCase field names this API speaks,
// matching its responses and the validate endpoints. The authenticated order
// service has its own snake_case wire format.
type createOrderStubRequest struct {
	PackageID     string `json:"packageId"`
	PlayerID      string `json:"playerId"`
	PlayerName    string `json:"playerName,omitempty"`
	TransactionID string `json:"transactionId"`
	PaymentMethod string `json:"paymentMethod"`
}

// CreateOrderStub synthesizes an order confirmation without persisting
// anything. It exists for integrations that cannot reach the authenticated
// order service; the authoritative path lives there and writes status
// "pending", while this stub answers "completed". The two are deliberately
// not reconciled.
func (h *Handler) CreateOrderStub(w http.ResponseWriter, r *http.Request) {
	var req createOrderStubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if req.PackageID == "" || req.PlayerID == "" || req.TransactionID == "" || req.PaymentMethod == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "packageId, playerId, transactionId and paymentMethod are required",
		})
		return
	}

	pkg, ok := h.Store.GetByID(req.PackageID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   "Package not found",
		})
		return
	}

	orderID := uuid.NewString()
	h.Logger.LogOrder("STUB", orderID, fmt.Sprintf("package=%s player=%s", pkg.ID, req.PlayerID))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"orderId":       orderID,
		"package":       pkg,
		"playerId":      req.PlayerID,
		"transactionId": req.TransactionID,
		"paymentMethod": req.PaymentMethod,
		"status":        "completed",
		"message":       "Order received. Diamonds will be delivered shortly.",
	})
}

func (h *Handler) writeList(w http.ResponseWriter, packages []models.Package) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    packages,
		"total":   len(packages),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
