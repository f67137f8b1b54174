package models

import (
	"time"

	"github.com/uptrace/bun"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
)

// CreateOrderRequest is the client-submitted order draft snapshot. Amount is
// deliberately absent: the server always prices from the catalog.
type CreateOrderRequest struct {
	PackageID     string `json:"package_id"`
	PlayerID      string `json:"player_id"`
	PlayerName    string `json:"player_name,omitempty"`
	TransactionID string `json:"transaction_id"`
	PaymentMethod string `json:"payment_method"`
}

// Order is the persisted record of a claimed purchase. Package fields are
// denormalized at submission time so later catalog changes never affect
// historical orders. Status transitions beyond the initial "pending" happen
// in a back-office process, not here.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID            string      `bun:"id,pk" json:"id"`
	UserID        string      `bun:"user_id,notnull" json:"user_id"`
	PlayerID      string      `bun:"player_id,notnull" json:"player_id"`
	PlayerName    string      `bun:"player_name,nullzero" json:"player_name,omitempty"`
	PackageID     string      `bun:"package_id,notnull" json:"package_id"`
	PackageName   string      `bun:"package_name,notnull" json:"package_name"`
	Amount        int         `bun:"amount,notnull" json:"amount"`
	TransactionID string      `bun:"transaction_id,notnull" json:"transaction_id"`
	PaymentMethod string      `bun:"payment_method,notnull" json:"payment_method"`
	Status        OrderStatus `bun:"status,notnull" json:"status"`
	Flagged       bool        `bun:"flagged" json:"flagged,omitempty"`
	CreatedAt     time.Time   `bun:"created_at,notnull" json:"created_at"`
}

type OrderResponse struct {
	OrderID       string      `json:"order_id"`
	PackageID     string      `json:"package_id"`
	PackageName   string      `json:"package_name"`
	Amount        int         `json:"amount"`
	PlayerID      string      `json:"player_id"`
	TransactionID string      `json:"transaction_id"`
	PaymentMethod string      `json:"payment_method"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (o Order) ToResponse() OrderResponse {
	return OrderResponse{
		OrderID:       o.ID,
		PackageID:     o.PackageID,
		PackageName:   o.PackageName,
		Amount:        o.Amount,
		PlayerID:      o.PlayerID,
		TransactionID: o.TransactionID,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}
