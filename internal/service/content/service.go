// Package content manages the region-scoped ordered collections: slider
// images, gallery images and client logos. One generic service serves every
// domain.Kind; per-kind differences live in domain.KindSchema.
package content

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/internal/storage"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentRepo interface {
	List(ctx context.Context, region string, kind domain.Kind, opts domain.ContentFilter) ([]domain.ContentItem, error)
	GetByID(ctx context.Context, region string, kind domain.Kind, id int64) (*domain.ContentItem, error)
	CountMobileVisible(ctx context.Context, region string, kind domain.Kind, excludeID int64) (int, error)
	LockPartition(ctx context.Context, region string, kind domain.Kind) error
	Create(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error)
	Update(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error)
	Clear(ctx context.Context, region string, kind domain.Kind, id int64) (*domain.ContentItem, error)
	SetActive(ctx context.Context, region string, kind domain.Kind, id int64, active bool) (*domain.ContentItem, error)
	SetMobileVisible(ctx context.Context, region string, kind domain.Kind, id int64, visible bool) (*domain.ContentItem, error)
	Delete(ctx context.Context, region string, kind domain.Kind, id int64) error
	Compact(ctx context.Context, region string, kind domain.Kind) error
	Reorder(ctx context.Context, region string, kind domain.Kind, ids []int64) error
}

type regionRepo interface {
	Get(ctx context.Context, code string) (*domain.Region, error)
}

type imageStore interface {
	Put(ctx context.Context, prefix string, data []byte) (storage.Object, error)
	Delete(ctx context.Context, key string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	MobileURL(url string) string
	KeyFromURL(url string) (string, bool)
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

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements content management business logic.
type Service struct {
	items    contentRepo
	regions  regionRepo
	images   imageStore
	activity activityRecorder
	cache    cacheInvalidator
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new content service.
func NewService(
	logger *slog.Logger,
	items contentRepo,
	regions regionRepo,
	images imageStore,
	activity activityRecorder,
	cache cacheInvalidator,
	tx txManager,
) *Service {
	return &Service{
		items:    items,
		regions:  regions,
		images:   images,
		activity: activity,
		cache:    cache,
		tx:       tx,
		log:      logger.With("service", "content"),
	}
}
