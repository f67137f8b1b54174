package storage

import (
	"ag-topup/internal/models"
)

// Store persists payment confirmation claims for back-office review.
type Store interface {
	SaveConfirmation(confirmation *models.PaymentConfirmation) error
	GetConfirmation(id string) (*models.PaymentConfirmation, error)
	GetConfirmationsByTransactionID(transactionID string) ([]*models.PaymentConfirmation, error)
	ListConfirmations(limit, offset int) ([]*models.PaymentConfirmation, error)

	Close() error
	HealthCheck() error
}
