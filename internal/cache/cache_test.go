package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheReturnsValueWithinTTL(t *testing.T) {
	now := time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC)
	c := New(15*time.Minute, WithClock[int](func() time.Time { return now }))

	c.Set("shipments:picked-up", 42)

	now = now.Add(14 * time.Minute)
	got, ok := c.Get("shipments:picked-up")
	require.True(t, ok)
	require.Equal(t, 42, got)
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	now := time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC)
	c := New(15*time.Minute, WithClock[int](func() time.Time { return now }))

	c.Set("stores", 7)

	now = now.Add(15*time.Minute + time.Second)
	_, ok := c.Get("stores")
	require.False(t, ok)
}

func TestCacheKeysAreIndependent(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("orders:awaiting_shipment:30", "a")
	c.Set("orders:shipped:30", "b")

	got, ok := c.Get("orders:awaiting_shipment:30")
	require.True(t, ok)
	require.Equal(t, "a", got)

	_, ok = c.Get("orders:on_hold:30")
	require.False(t, ok)
}
