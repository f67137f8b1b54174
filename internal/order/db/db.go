package db

import (
	"context"

	"github.com/uptrace/bun"

	"ag-topup/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateOrder inserts a new order row.
func (d *DB) CreateOrder(ctx context.Context, order models.Order) error {
	_, err := d.Bun.NewInsert().Model(&order).Exec(ctx)
	return err
}

// GetOrderByID fetches one order by its id.
func (d *DB) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := d.Bun.NewSelect().
		Model(&order).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrdersByUserID fetches a user's orders, newest first.
func (d *DB) GetOrdersByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := d.Bun.NewSelect().
		Model(&orders).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// CountByTransactionID counts orders already recorded against a transaction
// id. Used by the flag duplicate policy.
func (d *DB) CountByTransactionID(ctx context.Context, transactionID string) (int, error) {
	return d.Bun.NewSelect().
		Model((*models.Order)(nil)).
		Where("transaction_id = ?", transactionID).
		Count(ctx)
}
