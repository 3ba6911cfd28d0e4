// Package cache provides the process-wide expiring key/value store.
package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/mo"
)

const DefaultCleanupInterval = 10 * time.Minute

// Memory is an in-process domain.Cache. Expired entries are never returned and are
// swept every cleanup interval.
type Memory struct {
	c *gocache.Cache
}

func NewMemory(cleanupInterval time.Duration) *Memory {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &Memory{c: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (m *Memory) Get(_ context.Context, key string) (mo.Option[string], error) {
	v, ok := m.c.Get(key)
	if !ok {
		return mo.None[string](), nil
	}
	s, ok := v.(string)
	if !ok {
		return mo.None[string](), fmt.Errorf("cache: key %q holds %T", key, v)
	}
	return mo.Some(s), nil
}

// Set stores value under key; a non-positive ttl keeps it until overwritten.
func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.c.Set(key, value, expiration(ttl))
	return nil
}

// Add stores value only when key is absent or expired.
func (m *Memory) Add(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	if err := m.c.Add(key, value, expiration(ttl)); err != nil {
		return false, nil
	}
	return true, nil
}

// TTL returns the time left on key. Keys without expiry report None as well as missing keys.
func (m *Memory) TTL(_ context.Context, key string) (mo.Option[time.Duration], error) {
	_, exp, ok := m.c.GetWithExpiration(key)
	if !ok || exp.IsZero() {
		return mo.None[time.Duration](), nil
	}
	left := time.Until(exp)
	if left < 0 {
		left = 0
	}
	return mo.Some(left), nil
}

func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return gocache.NoExpiration
	}
	return ttl
}
