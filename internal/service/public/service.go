// Package public serves the read-only payloads rendered by the marketing site.
// Responses are cached per region generation; any admin mutation of a region
// invalidates its entries.
package public

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

type contentReader interface {
	List(ctx context.Context, region string, kind domain.Kind, f domain.ContentFilter) ([]domain.ContentItem, error)
}

type regionReader interface {
	List(ctx context.Context, f domain.RegionFilter) ([]domain.Region, error)
}

type pageReader interface {
	List(ctx context.Context, region string) ([]domain.PageSection, error)
}

type payloadCache interface {
	Get(ctx context.Context, region, name string, dest any) bool
	Set(ctx context.Context, region, name string, value any)
}

// Service implements the public read API.
type Service struct {
	log     *slog.Logger
	content contentReader
	regions regionReader
	pages   pageReader
	cache   payloadCache
}

// NewService creates a new public service.
func NewService(
	logger *slog.Logger,
	content contentReader,
	regions regionReader,
	pages pageReader,
	cache payloadCache,
) *Service {
	return &Service{
		log:     logger.With("service", "public"),
		content: content,
		regions: regions,
		pages:   pages,
		cache:   cache,
	}
}

// Home is everything the public home page of one region renders.
type Home struct {
	Region  domain.Region
	Slider  []domain.ContentItem
	Gallery []domain.ContentItem
	Logos   []domain.ContentItem
	Pages   []domain.PageSection
}
