package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey_Canonical(t *testing.T) {
	assert.Equal(t, "products", Key("products"))
	assert.Equal(t, "products?categoryId=3&limit=20", Key("products", "categoryId=3", "limit=20"))

	// Same parts in the same order always give the same key.
	assert.Equal(t,
		Key("products", "brandId=2", "search=ring"),
		Key("products", "brandId=2", "search=ring"))
}

func TestCache_GetSet(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("products")
	assert.False(t, ok)

	c.Set("products", []string{"a", "b"})
	got, ok := c.Get("products")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)

	c.Set("products", "stale")
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get("products")
	assert.False(t, ok, "entries past their TTL are misses")
}

func TestCache_InvalidatePrefix(t *testing.T) {
	c := New(time.Minute)

	c.Set(Key("products", "categoryId=1"), "page1")
	c.Set(Key("products", "categoryId=2"), "page2")
	c.Set(Key("categories"), "cats")

	c.InvalidatePrefix("products")

	_, ok := c.Get(Key("products", "categoryId=1"))
	assert.False(t, ok)
	_, ok = c.Get(Key("products", "categoryId=2"))
	assert.False(t, ok)

	got, ok := c.Get(Key("categories"))
	assert.True(t, ok, "other endpoints keep their entries")
	assert.Equal(t, "cats", got)
}
