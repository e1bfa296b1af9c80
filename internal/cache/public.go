package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// AllRegions is the generation key for payloads that span regions, such as
// the public region list.
const AllRegions = "*"

// PublicCache stores rendered public payloads keyed by region generation.
// Invalidating a region bumps its generation, so stale entries become
// unreachable and expire on their own TTL.
type PublicCache struct {
	store Store
	bus   Bus
	ttl   time.Duration
	log   *slog.Logger
	now   func() time.Time
}

// NewPublicCache creates a PublicCache. bus may be nil.
func NewPublicCache(store Store, bus Bus, ttl time.Duration, logger *slog.Logger) *PublicCache {
	return &PublicCache{
		store: store,
		bus:   bus,
		ttl:   ttl,
		log:   logger.With("component", "cache.public"),
		now:   time.Now,
	}
}

func genKey(region string) string { return "gen:" + region }

// Generation returns the current generation token of region ("0" if never invalidated).
func (c *PublicCache) Generation(ctx context.Context, region string) (string, error) {
	v, err := c.store.Get(ctx, genKey(region))
	if errors.Is(err, ErrMiss) {
		return "0", nil
	}
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (c *PublicCache) entryKey(ctx context.Context, region, name string) (string, error) {
	gen, err := c.Generation(ctx, region)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("pub:%s:%s:%s", region, gen, name), nil
}

// Get decodes the cached payload name of region into dest and reports a hit.
// Store errors count as a miss and are logged.
func (c *PublicCache) Get(ctx context.Context, region, name string, dest any) bool {
	key, err := c.entryKey(ctx, region, name)
	if err != nil {
		c.log.WarnContext(ctx, "cache generation lookup failed", slog.String("region", region), slog.String("error", err.Error()))
		return false
	}
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// Set stores value under name for region's current generation.
func (c *PublicCache) Set(ctx context.Context, region, name string, value any) {
	key, err := c.entryKey(ctx, region, name)
	if err != nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.WarnContext(ctx, "cache marshal failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.log.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Invalidate bumps the region generation and announces it on the bus.
// Failures are logged; the public cache degrades to its TTL.
func (c *PublicCache) Invalidate(ctx context.Context, region, scope string) {
	gen, err := c.store.Incr(ctx, genKey(region))
	if err != nil {
		c.log.ErrorContext(ctx, "cache invalidate failed", slog.String("region", region), slog.String("error", err.Error()))
		return
	}

	if c.bus == nil {
		return
	}
	inv := Invalidation{Region: region, Scope: scope, Token: strconv.FormatInt(gen, 10), At: c.now().UTC()}
	if err := c.bus.Publish(ctx, inv); err != nil {
		c.log.ErrorContext(ctx, "publish invalidation failed", slog.String("region", region), slog.String("error", err.Error()))
	}
}
