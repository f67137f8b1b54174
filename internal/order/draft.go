package order

import (
	"errors"
	"regexp"

	"ag-topup/internal/models"
)

// Field-attributable validation errors. Handlers surface exactly one of these
// per failed submit attempt, in gate order.
var (
	ErrNoPackage            = errors.New("no package selected")
	ErrInvalidPlayerID      = errors.New("player id must be 8 to 12 digits")
	ErrNoPaymentMethod      = errors.New("payment method must be one of bkash, nagad, rocket")
	ErrInvalidTransactionID = errors.New("transaction id must be at least 10 alphanumeric characters")
	ErrUnauthenticated      = errors.New("sign in required")
)

var (
	playerIDPattern      = regexp.MustCompile(`^[0-9]{8,12}$`)
	transactionIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{10,}$`)
)

// Draft is the per-session order state. Fields fill in as the user progresses;
// Reset clears everything, and is invoked on successful submission and on
// navigating to a different category.
type Draft struct {
	Package       *models.Package
	PlayerID      string
	PlayerName    string
	TransactionID string
	PaymentMethod models.PaymentMethod
}

// Validate checks the submit gate in fixed priority order: package, player id,
// payment method, transaction id, then session. The first unmet condition is
// returned; a nil result means the draft is submit-eligible.
func (d *Draft) Validate(authenticated bool) error {
	if d.Package == nil {
		return ErrNoPackage
	}
	if !ValidPlayerID(d.PlayerID) {
		return ErrInvalidPlayerID
	}
	if !d.PaymentMethod.Valid() {
		return ErrNoPaymentMethod
	}
	if !ValidTransactionID(d.TransactionID) {
		return ErrInvalidTransactionID
	}
	if !authenticated {
		return ErrUnauthenticated
	}
	return nil
}

func (d *Draft) Reset() {
	*d = Draft{}
}

// ValidPlayerID reports whether id is a game account identifier: digits only,
// 8 to 12 characters.
func ValidPlayerID(id string) bool {
	return playerIDPattern.MatchString(id)
}

// ValidTransactionID reports whether id looks like a wallet transaction
// reference: letters and digits only, at least 10 characters.
func ValidTransactionID(id string) bool {
	return transactionIDPattern.MatchString(id)
}

// validateRequest applies the same gate to a server-received submission,
// independent of any client-side checks. Package presence here means a
// non-empty id; existence is resolved against the catalog afterwards.
func validateRequest(req models.CreateOrderRequest) error {
	if req.PackageID == "" {
		return ErrNoPackage
	}
	if !ValidPlayerID(req.PlayerID) {
		return ErrInvalidPlayerID
	}
	if !models.PaymentMethod(req.PaymentMethod).Valid() {
		return ErrNoPaymentMethod
	}
	if !ValidTransactionID(req.TransactionID) {
		return ErrInvalidTransactionID
	}
	return nil
}
