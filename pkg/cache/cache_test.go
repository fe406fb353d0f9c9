package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRU(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRU[string, string], clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, string], _ *fakeClock) {
				c.Set("a", "1")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "1", v)
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, string], clock *fakeClock) {
				c.Set("a", "1")
				clock.advance(time.Minute + time.Second)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Len())
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, string], _ *fakeClock) {
				c.Set("a", "1")
				c.Set("b", "2")
				c.Get("a")
				c.Set("c", "3")

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "1", v)
				v, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, "3", v)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, string], clock *fakeClock) {
				c.Set("a", "1")
				clock.advance(40 * time.Second)
				c.Set("a", "2")
				clock.advance(40 * time.Second)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", v)
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, string], _ *fakeClock) {
				c.Set("a", "1")
				c.Delete("a")
				c.Delete("missing")
				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 3,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, string], clock *fakeClock) {
				c.Set("a", "1")
				clock.advance(30 * time.Second)
				c.Set("b", "2")
				clock.advance(45 * time.Second)

				c.cleanup()

				assert.Equal(t, 1, c.Len())
				_, ok := c.Get("b")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRU[string, string](tt.capacity, tt.ttl)
			c.now = clock.now
			tt.actions(t, c, clock)
		})
	}
}

func TestLRU_JanitorStopsWithContext(t *testing.T) {
	c := NewLRU[string, int](1, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.janitor(ctx, time.Millisecond)
		close(done)
	}()

	c.Set("a", 1)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
