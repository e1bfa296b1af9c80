package cache

import (
	"context"
	"sync"
	"time"
)

// Invalidation announces that public data of a region changed.
// Scope names the collection ("slider", "gallery", "logos", "pages", "regions").
// Token is the region's new cache generation; browsers use it to bust session caches.
type Invalidation struct {
	Region string    `json:"region"`
	Scope  string    `json:"scope"`
	Token  string    `json:"token"`
	At     time.Time `json:"at"`
}

// Bus distributes invalidations. Implementations: LocalBus, RedisBus.
type Bus interface {
	Publish(ctx context.Context, inv Invalidation) error
	// Subscribe delivers invalidations until ctx is done, then closes the channel.
	Subscribe(ctx context.Context) (<-chan Invalidation, error)
}

const subscriberBuffer = 16

// LocalBus fans out invalidations inside one process.
// Slow subscribers miss events instead of blocking publishers.
type LocalBus struct {
	mu   sync.RWMutex
	subs map[chan Invalidation]struct{}
}

// NewLocalBus creates a LocalBus.
func NewLocalBus() *LocalBus {
	return &LocalBus{subs: make(map[chan Invalidation]struct{})}
}

// Publish implements Bus.
func (b *LocalBus) Publish(_ context.Context, inv Invalidation) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- inv:
		default:
		}
	}
	return nil
}

// Subscribe implements Bus.
func (b *LocalBus) Subscribe(ctx context.Context) (<-chan Invalidation, error) {
	ch := make(chan Invalidation, subscriberBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		close(ch)
		b.mu.Unlock()
	}()

	return ch, nil
}

// Subscribers returns the number of live subscriptions.
func (b *LocalBus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
