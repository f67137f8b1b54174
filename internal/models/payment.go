package models

import (
	"time"
)

// PaymentMethod is the closed enumeration of supported mobile wallets.
type PaymentMethod string

const (
	MethodBkash  PaymentMethod = "bkash"
	MethodNagad  PaymentMethod = "nagad"
	MethodRocket PaymentMethod = "rocket"
)

// PaymentMethods lists the supported wallets in display order.
var PaymentMethods = []PaymentMethod{MethodBkash, MethodNagad, MethodRocket}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodBkash, MethodNagad, MethodRocket:
		return true
	}
	return false
}

// DisplayName returns the wallet's branded label.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case MethodBkash:
		return "bKash"
	case MethodNagad:
		return "Nagad"
	case MethodRocket:
		return "Rocket"
	}
	return string(m)
}

// WalletInfo is the public shape served by the payment service for one wallet.
type WalletInfo struct {
	Method          PaymentMethod `json:"method"`
	Name            string        `json:"name"`
	ReceivingNumber string        `json:"receiving_number"`
}

// PaymentConfirmation records a user's claimed wallet transaction. It is a
// claim, not a verification: no funds check happens anywhere in this system.
type PaymentConfirmation struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id,omitempty"`
	TransactionID string        `json:"transaction_id"`
	Method        PaymentMethod `json:"method"`
	Amount        int           `json:"amount"`
	Verified      bool          `json:"verified"`
	CreatedAt     time.Time     `json:"created_at"`
}

type ConfirmPaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Method        string `json:"method" binding:"required"`
	Amount        int    `json:"amount"`
}
