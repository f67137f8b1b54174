package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"ag-topup/internal/config"
	"ag-topup/internal/logger"
	"ag-topup/internal/models"
)

type PostgreSQLStore struct {
	db  *sql.DB
	log *logger.Logger
}

func NewPostgreSQLStore(cfg config.DatabaseConfig, log *logger.Logger) (*PostgreSQLStore, error) {
	log.LogDatabase("CONNECT", "postgresql", fmt.Sprintf("Connecting to PostgreSQL at %s:%s", cfg.Host, cfg.Port))

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgreSQLStore{db: db, log: log}
	if err := store.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize payment tables: %w", err)
	}

	log.Info("DATABASE", "Payment confirmation storage initialized")
	return store, nil
}

// NewPostgreSQLStoreWithDB wraps an existing connection; used by tests with an
// in-memory substitute driver.
func NewPostgreSQLStoreWithDB(db *sql.DB, log *logger.Logger) (*PostgreSQLStore, error) {
	store := &PostgreSQLStore{db: db, log: log}
	if err := store.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize payment tables: %w", err)
	}
	return store, nil
}

func (s *PostgreSQLStore) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS payment_confirmations (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL DEFAULT '',
			transaction_id TEXT NOT NULL,
			method TEXT NOT NULL,
			amount INTEGER NOT NULL DEFAULT 0,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payment_confirmations_txn
		ON payment_confirmations (transaction_id)`)
	return err
}

func (s *PostgreSQLStore) SaveConfirmation(c *models.PaymentConfirmation) error {
	_, err := s.db.Exec(`
		INSERT INTO payment_confirmations (id, user_id, transaction_id, method, amount, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.UserID, c.TransactionID, string(c.Method), c.Amount, c.Verified, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("save confirmation: %w", err)
	}
	s.log.LogDatabase("INSERT", "payment_confirmations", c.ID)
	return nil
}

func (s *PostgreSQLStore) GetConfirmation(id string) (*models.PaymentConfirmation, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, transaction_id, method, amount, verified, created_at
		FROM payment_confirmations WHERE id = $1`, id)
	return scanConfirmation(row)
}

func (s *PostgreSQLStore) GetConfirmationsByTransactionID(transactionID string) ([]*models.PaymentConfirmation, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, transaction_id, method, amount, verified, created_at
		FROM payment_confirmations
		WHERE transaction_id = $1
		ORDER BY created_at DESC`, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectConfirmations(rows)
}

func (s *PostgreSQLStore) ListConfirmations(limit, offset int) ([]*models.PaymentConfirmation, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, transaction_id, method, amount, verified, created_at
		FROM payment_confirmations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectConfirmations(rows)
}

func (s *PostgreSQLStore) Close() error {
	return s.db.Close()
}

func (s *PostgreSQLStore) HealthCheck() error {
	return s.db.Ping()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfirmation(row rowScanner) (*models.PaymentConfirmation, error) {
	var c models.PaymentConfirmation
	var method string
	if err := row.Scan(&c.ID, &c.UserID, &c.TransactionID, &method, &c.Amount, &c.Verified, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Method = models.PaymentMethod(method)
	return &c, nil
}

func collectConfirmations(rows *sql.Rows) ([]*models.PaymentConfirmation, error) {
	confirmations := []*models.PaymentConfirmation{}
	for rows.Next() {
		c, err := scanConfirmation(rows)
		if err != nil {
			return nil, err
		}
		confirmations = append(confirmations, c)
	}
	return confirmations, rows.Err()
}
