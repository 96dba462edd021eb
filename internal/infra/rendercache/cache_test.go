package rendercache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetSetInvalidate(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("/sites/salon-amel")
	require.False(t, ok)

	c.Set("/sites/salon-amel", "rendered")
	v, ok := c.Get("/sites/salon-amel")
	require.True(t, ok)
	require.Equal(t, "rendered", v)

	c.Invalidate("/sites/salon-amel")
	_, ok = c.Get("/sites/salon-amel")
	require.False(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("/sites/a", 1)

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("/sites/a")
	require.False(t, ok)
}

func TestInvalidateOtherPathKeepsEntry(t *testing.T) {
	c := New(time.Minute)
	c.Set("/sites/a", 1)
	c.Set("/sites/b", 2)

	c.Invalidate("/sites/a")

	_, ok := c.Get("/sites/a")
	require.False(t, ok)
	v, ok := c.Get("/sites/b")
	require.True(t, ok)
	require.Equal(t, 2, v)
}
