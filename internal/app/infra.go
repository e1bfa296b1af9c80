package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/regional-site-backend/internal/cache"
	"github.com/heartmarshall/regional-site-backend/internal/config"
	"github.com/heartmarshall/regional-site-backend/internal/storage"
	"github.com/heartmarshall/regional-site-backend/internal/storage/memstore"
	"github.com/heartmarshall/regional-site-backend/internal/storage/r2"
	"github.com/heartmarshall/regional-site-backend/internal/transport/rest"
)

const memorySweepInterval = time.Minute

func newStorageBackend(cfg config.StorageConfig) (storage.Backend, error) {
	switch strings.ToLower(cfg.Driver) {
	case "memory":
		return memstore.New(), nil
	case "r2":
		b, err := r2.New(r2.Config{
			Endpoint:        cfg.ResolvedEndpoint(),
			Bucket:          cfg.Bucket,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
}

// cacheInfra is the shared key-value store and invalidation bus. With Redis
// configured every replica shares both; otherwise they are process-local.
type cacheInfra struct {
	store cache.Store
	bus   cache.Bus
	ping  rest.Pinger
	close func()
}

func newCacheInfra(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*cacheInfra, error) {
	if !cfg.Enabled() {
		store := cache.NewMemoryStore()
		sweepCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
		go store.RunSweeper(sweepCtx, memorySweepInterval)

		logger.Warn("redis not configured: cache, idempotency keys and invalidations are process-local")
		return &cacheInfra{
			store: store,
			bus:   cache.NewLocalBus(),
			ping:  rest.PingFunc(func(context.Context) error { return nil }),
			close: stop,
		}, nil
	}

	rdb, err := cache.Connect(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	return &cacheInfra{
		store: cache.NewRedisStore(rdb, cfg.Prefix),
		bus:   cache.NewRedisBus(rdb, cfg.Channel, logger),
		ping: rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}),
		close: func() {
			if err := rdb.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
				logger.Error("redis close", slog.String("error", err.Error()))
			}
		},
	}, nil
}
