package steam

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	tests := []struct {
		name         string
		capacity     int
		ttl          time.Duration
		wantCapacity int
		wantTTL      time.Duration
	}{
		{
			name:         "custom values",
			capacity:     100,
			ttl:          time.Hour,
			wantCapacity: 100,
			wantTTL:      time.Hour,
		},
		{
			name:         "zero capacity uses default",
			capacity:     0,
			ttl:          time.Hour,
			wantCapacity: DefaultCacheSize,
			wantTTL:      time.Hour,
		},
		{
			name:         "zero ttl uses default",
			capacity:     100,
			ttl:          0,
			wantCapacity: 100,
			wantTTL:      DefaultCacheTTL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewCache(tt.capacity, tt.ttl)

			assert.Equal(t, tt.wantCapacity, cache.capacity)
			assert.Equal(t, tt.wantTTL, cache.ttl)
			assert.Equal(t, 0, cache.Len())
		})
	}
}

func TestCache_SetAndGet(t *testing.T) {
	cache := NewCache(10, time.Hour)

	cache.Set("Levosilimo", CacheEntry{Value: "123456789"})

	entry := cache.Get("Levosilimo")
	require.NotNil(t, entry)
	assert.Equal(t, "123456789", entry.Value)
	assert.False(t, entry.NotFound)
}

func TestCache_CaseInsensitive(t *testing.T) {
	cache := NewCache(10, time.Hour)

	cache.Set("LEVOSILIMO", CacheEntry{Value: "123456789"})

	entry := cache.Get("levosilimo")
	require.NotNil(t, entry)
	assert.Equal(t, "123456789", entry.Value)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_NegativeEntry(t *testing.T) {
	cache := NewCache(10, time.Hour)

	cache.Set("no-such-profile", CacheEntry{NotFound: true})

	entry := cache.Get("no-such-profile")
	require.NotNil(t, entry)
	assert.True(t, entry.NotFound)
	assert.Empty(t, entry.Value)
}

func TestCache_GetMissing(t *testing.T) {
	cache := NewCache(10, time.Hour)

	assert.Nil(t, cache.Get("nonexistent"))
}

func TestCache_Expiration(t *testing.T) {
	cache := NewCache(10, 50*time.Millisecond)

	cache.Set("Levosilimo", CacheEntry{Value: "123456789"})
	require.NotNil(t, cache.Get("Levosilimo"))

	time.Sleep(100 * time.Millisecond)

	assert.Nil(t, cache.Get("Levosilimo"))
}

func TestCache_Update(t *testing.T) {
	cache := NewCache(10, time.Hour)

	cache.Set("Levosilimo", CacheEntry{NotFound: true})
	cache.Set("Levosilimo", CacheEntry{Value: "123456789"})

	entry := cache.Get("Levosilimo")
	require.NotNil(t, entry)
	assert.Equal(t, "123456789", entry.Value)
	assert.False(t, entry.NotFound)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_LRUEviction(t *testing.T) {
	cache := NewCache(3, time.Hour)

	for i := 0; i < 3; i++ {
		cache.Set(fmt.Sprintf("user%d", i), CacheEntry{Value: fmt.Sprintf("%d", i)})
	}

	// Touch user0 so it becomes most recently used.
	require.NotNil(t, cache.Get("user0"))

	// Adding a fourth entry evicts user1, the least recently used.
	cache.Set("user3", CacheEntry{Value: "3"})

	assert.Equal(t, 3, cache.Len())
	assert.NotNil(t, cache.Get("user0"))
	assert.Nil(t, cache.Get("user1"))
	assert.NotNil(t, cache.Get("user2"))
	assert.NotNil(t, cache.Get("user3"))
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache(10, time.Hour)

	cache.Set("user1", CacheEntry{Value: "1"})
	cache.Set("user2", CacheEntry{Value: "2"})
	require.Equal(t, 2, cache.Len())

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	assert.Nil(t, cache.Get("user1"))
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache(100, time.Hour)

	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 50; j++ {
				key := fmt.Sprintf("user%d-%d", n, j)
				cache.Set(key, CacheEntry{Value: key})
				cache.Get(key)
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
