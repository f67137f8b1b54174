package player

import (
	"context"
	"fmt"
)

// Lookup resolves a player id to the in-game display name. The production
// implementation talks to the game vendor's account API; nothing in the order
// flow may assume which implementation it got.
type Lookup interface {
	LookupPlayer(ctx context.Context, playerID string) (string, error)
}

// MockLookup derives a deterministic display name from the id itself. Stands
// in for the vendor API in tests and the bundled deployment.
type MockLookup struct{}

func (MockLookup) LookupPlayer(_ context.Context, playerID string) (string, error) {
	if len(playerID) < 8 {
		return "", fmt.Errorf("player id too short: %q", playerID)
	}
	return "Player#" + playerID[:4], nil
}
