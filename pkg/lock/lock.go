// Package lock provides Redis advisory locks for operations that must not
// run concurrently against the same target, such as two reconciliations of
// one tip group. Locks expire on their own so a crashed holder cannot wedge
// a target forever.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ErrHeld is returned when another holder owns the lock.
var ErrHeld = errors.New("lock is held by another operation")

// releaseScript deletes the key only if it still carries our token, so an
// expired-and-reacquired lock is never released by the old holder.
var releaseScript = goredis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type Locker struct {
	rdb *goredis.Client
	ttl time.Duration
}

func New(rdb *goredis.Client, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Locker{rdb: rdb, ttl: ttl}
}

// Lease is one acquired lock. Release it when the guarded work is done.
type Lease struct {
	locker *Locker
	key    string
	token  string
}

// Acquire takes the lock or returns ErrHeld without waiting.
func (l *Locker) Acquire(ctx context.Context, key string) (*Lease, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", key, err)
	}
	if !ok {
		return nil, ErrHeld
	}
	return &Lease{locker: l, key: key, token: token}, nil
}

// Release frees the lock if this lease still owns it. Releasing an expired
// lease is not an error.
func (le *Lease) Release(ctx context.Context) error {
	err := releaseScript.Run(ctx, le.locker.rdb, []string{le.key}, le.token).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("release %s: %w", le.key, err)
	}
	return nil
}

// Key builders for the lock targets the engine guards.

func GroupKey(groupID uuid.UUID) string {
	return "tiplock:group:" + groupID.String()
}

func OrderKey(orderID uuid.UUID) string {
	return "tiplock:order:" + orderID.String()
}

func PaymentKey(paymentID uuid.UUID) string {
	return "tiplock:payment:" + paymentID.String()
}
