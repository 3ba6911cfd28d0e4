package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"

	"ctmBot/internal/domain"
)

const cooldownSentinel = "1"

// Cooldown is a per-user suppression window stored in the cache under "{purpose}.{userID}".
//
// With Strict unset the check and the arm are two cache calls, so two invocations
// racing for the same user may both pass. Strict uses the cache's set-if-absent.
type Cooldown struct {
	Cache   domain.Cache
	Purpose string
	TTL     time.Duration
	Strict  bool
}

func (c Cooldown) Key(userID string) string {
	return c.Purpose + "." + userID
}

// Acquire reports whether the action may fire now and, if so, arms the cooldown.
func (c Cooldown) Acquire(ctx context.Context, userID string) (bool, error) {
	key := c.Key(userID)

	if c.Strict {
		ok, err := c.Cache.Add(ctx, key, cooldownSentinel, c.TTL)
		if err != nil {
			return false, fmt.Errorf("cooldown %s: add: %w", c.Purpose, err)
		}
		return ok, nil
	}

	existing, err := c.Cache.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("cooldown %s: get: %w", c.Purpose, err)
	}
	if existing.IsPresent() {
		return false, nil
	}
	if err := c.Cache.Set(ctx, key, cooldownSentinel, c.TTL); err != nil {
		return false, fmt.Errorf("cooldown %s: set: %w", c.Purpose, err)
	}
	return true, nil
}

// Remaining is the time left on the user's cooldown, None when it is not armed.
func (c Cooldown) Remaining(ctx context.Context, userID string) (mo.Option[time.Duration], error) {
	left, err := c.Cache.TTL(ctx, c.Key(userID))
	if err != nil {
		return mo.None[time.Duration](), fmt.Errorf("cooldown %s: ttl: %w", c.Purpose, err)
	}
	return left, nil
}
