package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/regional-site-backend/internal/activity"
	"github.com/heartmarshall/regional-site-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres/activity"
	contentrepo "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres/content"
	pagerepo "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres/page"
	regionrepo "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres/region"
	userrepo "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/regional-site-backend/internal/auth"
	"github.com/heartmarshall/regional-site-backend/internal/cache"
	"github.com/heartmarshall/regional-site-backend/internal/config"
	activitysvc "github.com/heartmarshall/regional-site-backend/internal/service/activity"
	authsvc "github.com/heartmarshall/regional-site-backend/internal/service/auth"
	contentsvc "github.com/heartmarshall/regional-site-backend/internal/service/content"
	pagesvc "github.com/heartmarshall/regional-site-backend/internal/service/page"
	publicsvc "github.com/heartmarshall/regional-site-backend/internal/service/public"
	regionsvc "github.com/heartmarshall/regional-site-backend/internal/service/region"
	usersvc "github.com/heartmarshall/regional-site-backend/internal/service/user"
	"github.com/heartmarshall/regional-site-backend/internal/storage"
	"github.com/heartmarshall/regional-site-backend/internal/transport/middleware"
	"github.com/heartmarshall/regional-site-backend/internal/transport/rest"
	"github.com/heartmarshall/regional-site-backend/internal/transport/ws"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and (optionally) Redis, wires services and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.Bool("redis", cfg.Redis.Enabled()),
	)

	// Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()
	txm := postgres.NewTxManager(pool)

	// Infrastructure.
	backend, err := newStorageBackend(cfg.Storage)
	if err != nil {
		return err
	}
	images := storage.NewGateway(backend, storage.Config{
		PublicBaseURL:  cfg.Storage.PublicBaseURL,
		MobilePrefix:   cfg.Storage.MobilePrefix,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
	})

	infra, err := newCacheInfra(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer infra.close()
	publicCache := cache.NewPublicCache(infra.store, infra.bus, cfg.Cache.TTL, logger)

	// Repositories.
	contentRepo := contentrepo.New(pool)
	regionRepo := regionrepo.New(pool)
	userRepo := userrepo.New(pool)
	activityRepo := activityrepo.New(pool)
	pageRepo := pagerepo.New(pool)

	recorder := activity.NewRecorder(logger, activityRepo, activity.Config{
		QueueSize:    cfg.Activity.QueueSize,
		WriteTimeout: cfg.Activity.WriteTimeout,
	})

	// Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, jwtMgr, recorder, cfg.Auth)
	userService := usersvc.NewService(logger, userRepo, regionRepo, recorder, txm, cfg.Auth.BcryptCost)
	regionService := regionsvc.NewService(logger, regionRepo, recorder, publicCache, txm)
	contentService := contentsvc.NewService(logger, contentRepo, regionRepo, images, recorder, publicCache, txm)
	pageService := pagesvc.NewService(logger, pageRepo, regionRepo, recorder, publicCache, txm)
	activityService := activitysvc.NewService(logger, activityRepo)
	publicService := publicsvc.NewService(logger, contentRepo, regionRepo, pageRepo, publicCache)

	if err := authService.EnsureSuperAdmin(ctx); err != nil {
		return fmt.Errorf("bootstrap super admin: %w", err)
	}

	// HTTP.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	feed := ws.NewFeed(infra.bus, ws.Config{
		AllowedOrigins: strings.Split(cfg.CORS.AllowedOrigins, ","),
	}, logger)
	defer feed.Close()

	router := rest.Router{
		Health:   rest.NewHealthHandler(map[string]rest.Pinger{"database": pool, "cache": infra.ping}, BuildVersion()),
		Auth:     rest.NewAuthHandler(authService, logger),
		Content:  rest.NewContentHandler(contentService, cfg.Storage.MaxUploadBytes, logger),
		Regions:  rest.NewRegionHandler(regionService, logger),
		Users:    rest.NewUserHandler(userService, logger),
		Activity: rest.NewActivityHandler(activityService, logger),
		Pages:    rest.NewPageHandler(pageService, logger),
		Public:   rest.NewPublicHandler(publicService, cfg.Cache.PublicMaxAge, logger),
		Feed:     feed,
		Base: middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.ClientInfo(cfg.Server.TrustProxy),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(jwtMgr),
		),
		Admin: middleware.Chain(
			middleware.RequireAuth(),
			middleware.Idempotency(infra.store, cfg.Cache.IdempotencyTTL, cfg.Storage.MaxUploadBytes+1<<20, logger),
		),
		Login: limiter.Limit(cfg.RateLimit.LoginPerMinute),
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	feed.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	if err := recorder.Close(shutdownCtx); err != nil {
		logger.Error("activity flush", slog.String("error", err.Error()))
	}

	logger.Info("stopped", slog.Duration("shutdown_budget", cfg.Server.ShutdownTimeout), slog.Time("at", time.Now()))
	return nil
}
