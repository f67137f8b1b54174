package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ag-topup/internal/catalog"
	"ag-topup/internal/config"
	"ag-topup/internal/logger"
	"ag-topup/internal/models"
)

var (
	ErrPackageNotFound        = errors.New("package not found")
	ErrInvalidComboPrice      = errors.New("combo price could not be validated")
	ErrDuplicateTransactionID = errors.New("transaction id already used")
	ErrOrderNotFound          = errors.New("order not found")
	ErrNotOrderOwner          = errors.New("order belongs to another user")
)

type DBLayer interface {
	CreateOrder(ctx context.Context, order models.Order) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]models.Order, error)
	CountByTransactionID(ctx context.Context, transactionID string) (int, error)
}

// TxnReserver reserves a transaction id for an order so a concurrent submit
// with the same id loses the race. Only consulted under the reject policy.
type TxnReserver interface {
	Reserve(ctx context.Context, transactionID, orderID string) (bool, error)
	Release(ctx context.Context, transactionID, orderID string) error
}

type KafkaPublisher interface {
	PublishOrderCreated(order models.Order) error
}

// PlayerLookup resolves a player id to a display name. The real game API sits
// behind this; tests and the bundled deployment use the mock implementation.
type PlayerLookup interface {
	LookupPlayer(ctx context.Context, playerID string) (string, error)
}

// OrderService is the authoritative submission path. It never trusts a
// client-supplied amount: every order is priced from the catalog at insert
// time.
type OrderService struct {
	Catalog  *catalog.Store
	DB       DBLayer
	Reserver TxnReserver
	Kafka    KafkaPublisher
	Players  PlayerLookup
	Policy   config.DuplicateTxnPolicy
	Logger   *logger.Logger
}

func NewOrderService(store *catalog.Store, db DBLayer, reserver TxnReserver, kafka KafkaPublisher, players PlayerLookup, policy config.DuplicateTxnPolicy, log *logger.Logger) *OrderService {
	return &OrderService{
		Catalog:  store,
		DB:       db,
		Reserver: reserver,
		Kafka:    kafka,
		Players:  players,
		Policy:   policy,
		Logger:   log,
	}
}

// PlaceOrder validates and persists one order with status pending. Exactly one
// row is written per successful call; every failure path leaves the store
// untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, req models.CreateOrderRequest) (*models.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	pkg, ok := s.Catalog.GetByID(req.PackageID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, req.PackageID)
	}

	// The authoritative amount. Combos go through the bundle recomputation so
	// a misconfigured combo row can never be sold.
	amount := pkg.Price
	if pkg.IsCombo() {
		combo := s.Catalog.ValidateComboPricing(pkg.ID, pkg.Price)
		if !combo.Valid {
			return nil, fmt.Errorf("%w: %s", ErrInvalidComboPrice, pkg.ID)
		}
		amount = combo.ExpectedPrice
	}

	orderID := uuid.NewString()

	flagged := false
	switch s.Policy {
	case config.DuplicateReject:
		held, err := s.Reserver.Reserve(ctx, req.TransactionID, orderID)
		if err != nil {
			return nil, fmt.Errorf("transaction reservation error: %w", err)
		}
		if !held {
			return nil, ErrDuplicateTransactionID
		}
	case config.DuplicateFlag:
		count, err := s.DB.CountByTransactionID(ctx, req.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("duplicate check failed: %w", err)
		}
		flagged = count > 0
	}

	playerName := req.PlayerName
	if playerName == "" && s.Players != nil {
		name, err := s.Players.LookupPlayer(ctx, req.PlayerID)
		if err != nil {
			s.Logger.Warn("ORDER", fmt.Sprintf("player lookup failed for %s: %v", req.PlayerID, err))
		} else {
			playerName = name
		}
	}

	ord := models.Order{
		ID:            orderID,
		UserID:        userID,
		PlayerID:      req.PlayerID,
		PlayerName:    playerName,
		PackageID:     pkg.ID,
		PackageName:   pkg.NameEn,
		Amount:        amount,
		TransactionID: req.TransactionID,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderPending,
		Flagged:       flagged,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.DB.CreateOrder(ctx, ord); err != nil {
		if s.Policy == config.DuplicateReject {
			_ = s.Reserver.Release(ctx, req.TransactionID, orderID)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.Logger.LogOrder("CREATE", ord.ID, fmt.Sprintf("package=%s amount=%d user=%s", ord.PackageID, ord.Amount, ord.UserID))

	if s.Kafka != nil {
		if err := s.Kafka.PublishOrderCreated(ord); err != nil {
			s.Logger.Error("KAFKA", fmt.Sprintf("publish order created: %v", err))
		}
	}

	return &ord, nil
}

// GetOrder fetches one order and enforces ownership: only the user who placed
// an order may read it.
func (s *OrderService) GetOrder(ctx context.Context, id, userID string) (*models.Order, error) {
	ord, err := s.DB.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	if ord.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return ord, nil
}

// GetUserOrders returns the user's order history, newest first.
func (s *OrderService) GetUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.DB.GetOrdersByUserID(ctx, userID)
}
