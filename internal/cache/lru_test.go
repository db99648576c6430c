package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a") // "b" passa a ser o menos usado
	c.Set("c", 3)

	_, okB := c.Get("b")
	valA, okA := c.Get("a")
	valC, okC := c.Get("c")

	assert.False(t, okB)
	assert.True(t, okA)
	assert.True(t, okC)
	assert.Equal(t, 1, valA)
	assert.Equal(t, 3, valC)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_Expiration(t *testing.T) {
	c := NewLRUCache[string](10, time.Minute)
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set("yearly:2020", "report")
	c.Set("recession", "report")

	current = current.Add(2 * time.Minute)

	_, ok := c.Get("yearly:2020")
	assert.False(t, ok)
	assert.Equal(t, 1, c.CleanExpired())
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_NoTTL(t *testing.T) {
	c := NewLRUCache[string](10, 0)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("k", "v")
	current = current.Add(24 * time.Hour)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestLRUCache_OverwriteAndDelete(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)

	c.Set("k", 1)
	c.Set("k", 2)
	v, _ := c.Get("k")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Size())

	c.Delete("k")
	_, ok := c.Get("k")
	assert.False(t, ok)
}
