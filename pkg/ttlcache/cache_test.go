package ttlcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string]()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "v", time.Minute)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestCache_Expiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := NewWithClock[int](func() time.Time { return clock() })

	c.Set("k", 42, time.Minute)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	now = now.Add(61 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry should be stale after its ttl")
	assert.Equal(t, 0, c.Len(), "stale entry should be evicted on read")
}

func TestCache_Delete(t *testing.T) {
	c := New[string]()
	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)

	c.Delete("a", "never-existed")

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}

func TestCache_Sweep(t *testing.T) {
	now := time.Now()
	c := NewWithClock[int](func() time.Time { return now })

	c.Set("short", 1, time.Second)
	c.Set("long", 2, time.Hour)

	now = now.Add(time.Minute)
	c.Sweep()

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("long")
	assert.True(t, ok)
}
