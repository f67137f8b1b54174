package order_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ag-topup/internal/auth"
	"ag-topup/internal/logger"
	"ag-topup/internal/models"
	"ag-topup/internal/order"
)

type Handler struct {
	OrderService *order.OrderService
	Logger       *logger.Logger
}

func NewHandler(orderService *order.OrderService, log *logger.Logger) *Handler {
	return &Handler{OrderService: orderService, Logger: log}
}

// CreateOrder is the authoritative submission endpoint. Validation errors come
// back field-attributed, one per attempt, in gate order.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == "" {
		h.Logger.Warn("API", "CreateOrder: no authenticated session")
		http.Error(w, "sign in required", http.StatusUnauthorized)
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateOrder: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.OrderService.PlaceOrder(r.Context(), userID, req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateOrder: %v", err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created.ToResponse()); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateOrder: failed to encode response: %v", err))
		return
	}
	h.Logger.LogAPI(r.Method, r.URL.Path, "201")
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	userID := auth.UserID(r.Context())

	ord, err := h.OrderService.GetOrder(r.Context(), orderID, userID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetOrder: %v", err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ord.ToResponse()); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetOrder: failed to encode response: %v", err))
	}
}

// ListOrders returns the authenticated user's history, newest first.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	orders, err := h.OrderService.GetUserOrders(r.Context(), userID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListOrders: %v", err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for _, ord := range orders {
		responses = append(responses, ord.ToResponse())
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(responses); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListOrders: failed to encode response: %v", err))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrPackageNotFound), errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrNotOrderOwner):
		return http.StatusForbidden
	case errors.Is(err, order.ErrDuplicateTransactionID):
		return http.StatusConflict
	case errors.Is(err, order.ErrNoPackage),
		errors.Is(err, order.ErrInvalidPlayerID),
		errors.Is(err, order.ErrNoPaymentMethod),
		errors.Is(err, order.ErrInvalidTransactionID),
		errors.Is(err, order.ErrInvalidComboPrice):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
