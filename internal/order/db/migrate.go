package db

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"ag-topup/internal/models"
)

// Migrate creates the orders table if it does not exist yet. The schema is a
// single table, so startup creation is enough; no migration history is kept.
func Migrate(db *bun.DB) {
	ctx := context.Background()

	_, err := db.NewCreateTable().Model((*models.Order)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		log.Fatalf("create orders table failed: %v", err)
	}
}
