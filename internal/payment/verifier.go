package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"ag-topup/internal/models"
	"ag-topup/internal/order"
)

var (
	ErrUnknownMethod = errors.New("unknown payment method")
	ErrBadTxnFormat  = errors.New("transaction id must be at least 10 alphanumeric characters")
)

// Verifier checks a claimed wallet transaction. A real implementation would
// query the wallet provider; the manual flow only validates the claim's shape.
type Verifier interface {
	VerifyTransaction(method models.PaymentMethod, transactionID string, amount int) (*models.PaymentConfirmation, error)
}

// ManualVerifier records claims without verifying funds. Verified stays false
// on everything it produces; a back-office operator flips order status after
// checking the wallet statement by hand.
type ManualVerifier struct{}

func (ManualVerifier) VerifyTransaction(method models.PaymentMethod, transactionID string, amount int) (*models.PaymentConfirmation, error) {
	if !method.Valid() {
		return nil, ErrUnknownMethod
	}
	if !order.ValidTransactionID(transactionID) {
		return nil, ErrBadTxnFormat
	}
	return &models.PaymentConfirmation{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		Method:        method,
		Amount:        amount,
		Verified:      false,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
