package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "txn_reserve:"

// Cmdable is the subset of redis commands the reservation layer needs. Tests
// substitute an in-memory fake.
type Cmdable interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Reservations holds transaction ids against order ids so that, under the
// reject duplicate policy, the second submission with the same transaction id
// loses even when both arrive concurrently. The TTL bounds how long a claim
// blocks reuse; back-office review happens well inside it.
type Reservations struct {
	Client Cmdable
	TTL    time.Duration
}

func NewReservations(client Cmdable, ttl time.Duration) *Reservations {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Reservations{Client: client, TTL: ttl}
}

// Reserve claims a transaction id for an order. Returns false when another
// order already holds it.
func (r *Reservations) Reserve(ctx context.Context, transactionID, orderID string) (bool, error) {
	return r.Client.SetNX(ctx, keyPrefix+transactionID, orderID, r.TTL).Result()
}

// Release frees a reservation, but only if the given order still holds it.
func (r *Reservations) Release(ctx context.Context, transactionID, orderID string) error {
	key := keyPrefix + transactionID
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	if val == orderID {
		_, err = r.Client.Del(ctx, key).Result()
		return err
	}
	return nil
}

// IsReserved reports whether any order currently holds the transaction id.
func (r *Reservations) IsReserved(ctx context.Context, transactionID string) (bool, error) {
	_, err := r.Client.Get(ctx, keyPrefix+transactionID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
