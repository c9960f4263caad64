package resultcache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already normalized", "aku sedih", "aku sedih"},
		{"surrounding whitespace", "  aku sedih \n", "aku sedih"},
		{"collapsed internal whitespace", "aku   sedih\t\tsekali", "aku sedih sekali"},
		{"lowercased", "Aku SEDIH", "aku sedih"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.raw))
		})
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c := New(time.Minute, 10)

	payload := map[string]string{"reflection": "semoga tenang"}
	c.Put("k", payload)

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestCacheMissOnAbsentKey(t *testing.T) {
	c := New(time.Minute, 10)

	_, ok := c.Get("never-stored")
	assert.False(t, ok)
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	c := New(10*time.Millisecond, 10)
	c.Put("k", "v")

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry should be evicted on read")
}

func TestCacheEvictsOldestAtCapacity(t *testing.T) {
	c := New(time.Minute, 3)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	c.Put("d", 4)

	_, ok := c.Get("a")
	assert.False(t, ok, "insertion-oldest entry should be evicted")
	for _, k := range []string{"b", "c", "d"} {
		_, ok := c.Get(k)
		assert.True(t, ok, "entry %q should survive", k)
	}
}

func TestCacheUpdateKeepsQueuePosition(t *testing.T) {
	c := New(time.Minute, 2)
	c.Put("a", 1)
	c.Put("b", 2)

	// Updating "a" must not make it the newest insertion.
	c.Put("a", 10)
	c.Put("c", 3)

	_, ok := c.Get("a")
	assert.False(t, ok)
	got, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestCacheEvictionSkipsExpiredHeads(t *testing.T) {
	c := New(15*time.Millisecond, 2)
	c.Put("a", 1)
	c.Put("b", 2)

	time.Sleep(25 * time.Millisecond)
	_, _ = c.Get("a") // lazily evicts "a", leaves stale head in queue

	c.Put("c", 3)
	c.Put("d", 4)
	assert.Equal(t, 2, c.Len())
}

func TestCacheReset(t *testing.T) {
	c := New(time.Minute, 10)
	for i := 0; i < 5; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
	}

	c.Reset()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("k0")
	assert.False(t, ok)
}
