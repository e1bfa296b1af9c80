// Package region manages the market partitions that scope all site content.
package region

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

type regionRepo interface {
	List(ctx context.Context, f domain.RegionFilter) ([]domain.Region, error)
	Get(ctx context.Context, code string) (*domain.Region, error)
	GetDefault(ctx context.Context) (*domain.Region, error)
	Create(ctx context.Context, reg domain.Region) (*domain.Region, error)
	Update(ctx context.Context, reg domain.Region) (*domain.Region, error)
	SetDefault(ctx context.Context, code string) (*domain.Region, error)
	Deactivate(ctx context.Context, code string) (*domain.Region, error)
}

type activityRecorder interface {
	Record(ctx context.Context, e domain.ActivityEntry)
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, region, scope string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements region management.
type Service struct {
	log      *slog.Logger
	regions  regionRepo
	activity activityRecorder
	cache    cacheInvalidator
	tx       txManager
}

// NewService creates a new region service.
func NewService(
	logger *slog.Logger,
	regions regionRepo,
	activity activityRecorder,
	cache cacheInvalidator,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "region"),
		regions:  regions,
		activity: activity,
		cache:    cache,
		tx:       tx,
	}
}
