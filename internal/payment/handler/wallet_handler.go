package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ag-topup/internal/auth"
	"ag-topup/internal/logger"
	"ag-topup/internal/models"
	"ag-topup/internal/payment"
	"ag-topup/internal/payment/storage"
	"ag-topup/internal/utils"
)

type WalletHandler struct {
	verifier        payment.Verifier
	qr              *payment.QRGenerator
	store           storage.Store
	receivingNumber string
	log             *logger.Logger
}

func NewWalletHandler(verifier payment.Verifier, qr *payment.QRGenerator, store storage.Store, receivingNumber string, log *logger.Logger) *WalletHandler {
	return &WalletHandler{
		verifier:        verifier,
		qr:              qr,
		store:           store,
		receivingNumber: receivingNumber,
		log:             log,
	}
}

// ListWallets returns the closed enumeration of supported wallets together
// with the fixed receiving number users pay into.
func (h *WalletHandler) ListWallets(c *gin.Context) {
	wallets := make([]models.WalletInfo, 0, len(models.PaymentMethods))
	for _, method := range models.PaymentMethods {
		wallets = append(wallets, models.WalletInfo{
			Method:          method,
			Name:            method.DisplayName(),
			ReceivingNumber: h.receivingNumber,
		})
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Supported wallets", wallets))
}

// WalletQR serves the PNG QR code for one wallet's receiving number.
func (h *WalletHandler) WalletQR(c *gin.Context) {
	method := models.PaymentMethod(c.Param("method"))

	png, err := h.qr.WalletQR(method)
	if err != nil {
		h.log.Error("PAYMENT", "QR generation failed: "+err.Error())
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Unknown wallet", err.Error()))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// ConfirmPayment records a claimed transaction id. The claim is format-checked
// and stored unverified; no funds check happens here.
func (h *WalletHandler) ConfirmPayment(c *gin.Context) {
	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	confirmation, err := h.verifier.VerifyTransaction(models.PaymentMethod(req.Method), req.TransactionID, req.Amount)
	if err != nil {
		h.log.Warn("PAYMENT", "Rejected confirmation: "+err.Error())
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid payment claim", err.Error()))
		return
	}

	// Signature validation happened at the gateway; here the token only
	// attributes the claim. Anonymous claims are still accepted.
	if rawToken, err := auth.ExtractTokenFromRequest(c.Request); err == nil {
		if userID, err := auth.ExtractUserIDFromJWT(rawToken); err == nil {
			confirmation.UserID = userID
		}
	}

	if err := h.store.SaveConfirmation(confirmation); err != nil {
		h.log.Error("PAYMENT", "Failed to save confirmation: "+err.Error())
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Could not record payment claim", err.Error()))
		return
	}

	h.log.LogPayment("CONFIRM", confirmation.ID+" txn="+confirmation.TransactionID)
	c.JSON(http.StatusCreated, utils.SuccessResponse("Payment claim recorded", confirmation))
}

// Routes mounts the payment endpoints on a gin engine.
func (h *WalletHandler) Routes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		v1.GET("/wallets", h.ListWallets)
		v1.GET("/wallets/:method/qr", h.WalletQR)
		v1.POST("/payments/confirm", h.ConfirmPayment)
	}
}
