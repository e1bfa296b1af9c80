package public

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/regional-site-backend/internal/cache"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// Regions returns the active regions.
func (s *Service) Regions(ctx context.Context) ([]domain.Region, error) {
	var regions []domain.Region
	if s.cache.Get(ctx, cache.AllRegions, "regions", &regions) {
		return regions, nil
	}

	regions, err := s.regions.List(ctx, domain.RegionFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("public.Regions: %w", err)
	}
	if regions == nil {
		regions = []domain.Region{}
	}
	s.cache.Set(ctx, cache.AllRegions, "regions", regions)
	return regions, nil
}

// Resolve maps a request host and path to a region. A matching domain wins,
// then the longest matching route, then the default region.
func (s *Service) Resolve(ctx context.Context, host, path string) (*domain.Region, error) {
	regions, err := s.Regions(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := domain.ResolveRegion(regions, host, path)
	if !ok {
		return nil, fmt.Errorf("no region for %s%s: %w", host, path, domain.ErrNotFound)
	}

	s.log.DebugContext(ctx, "region resolved",
		slog.String("host", host),
		slog.String("path", path),
		slog.String("region", r.Code))

	return &r, nil
}

// Items returns the publicly visible items of one collection in display order.
// mobileOnly applies to collections that keep a mobile subset and is ignored
// for the rest.
func (s *Service) Items(ctx context.Context, region string, kind domain.Kind, mobileOnly bool) ([]domain.ContentItem, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("type", "unknown content type")
	}
	if _, err := s.activeRegion(ctx, region); err != nil {
		return nil, err
	}
	return s.items(ctx, region, kind, mobileOnly)
}

// Pages returns the page sections of a region.
func (s *Service) Pages(ctx context.Context, region string) ([]domain.PageSection, error) {
	if _, err := s.activeRegion(ctx, region); err != nil {
		return nil, err
	}
	return s.sections(ctx, region)
}

// Home loads every collection and page section of a region concurrently.
func (s *Service) Home(ctx context.Context, region string, mobileOnly bool) (*Home, error) {
	reg, err := s.activeRegion(ctx, region)
	if err != nil {
		return nil, err
	}

	name := "home"
	if mobileOnly {
		name = "home:mobile"
	}
	var home Home
	if s.cache.Get(ctx, region, name, &home) {
		return &home, nil
	}

	home.Region = *reg
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		home.Slider, err = s.items(gctx, region, domain.KindSlider, mobileOnly)
		return err
	})
	g.Go(func() (err error) {
		home.Gallery, err = s.items(gctx, region, domain.KindGallery, mobileOnly)
		return err
	})
	g.Go(func() (err error) {
		home.Logos, err = s.items(gctx, region, domain.KindLogo, mobileOnly)
		return err
	})
	g.Go(func() (err error) {
		home.Pages, err = s.sections(gctx, region)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("public.Home: %w", err)
	}

	s.cache.Set(ctx, region, name, home)
	return &home, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *Service) activeRegion(ctx context.Context, code string) (*domain.Region, error) {
	if err := domain.ValidateRegionCode(code); err != nil {
		return nil, err
	}
	regions, err := s.Regions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range regions {
		if regions[i].Code == code {
			return &regions[i], nil
		}
	}
	return nil, fmt.Errorf("region %s: %w", code, domain.ErrNotFound)
}

func (s *Service) items(ctx context.Context, region string, kind domain.Kind, mobileOnly bool) ([]domain.ContentItem, error) {
	f := publicFilter(kind, mobileOnly)
	name := "items:" + kind.String()
	if f.MobileOnly {
		name += ":mobile"
	}

	var items []domain.ContentItem
	if s.cache.Get(ctx, region, name, &items) {
		return items, nil
	}

	items, err := s.content.List(ctx, region, kind, f)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	if items == nil {
		items = []domain.ContentItem{}
	}
	s.cache.Set(ctx, region, name, items)
	return items, nil
}

func (s *Service) sections(ctx context.Context, region string) ([]domain.PageSection, error) {
	var pages []domain.PageSection
	if s.cache.Get(ctx, region, "pages", &pages) {
		return pages, nil
	}

	pages, err := s.pages.List(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if pages == nil {
		pages = []domain.PageSection{}
	}
	s.cache.Set(ctx, region, "pages", pages)
	return pages, nil
}

// publicFilter selects what visitors see: every slide, gallery cells that
// hold an image, and active logos.
func publicFilter(kind domain.Kind, mobileOnly bool) domain.ContentFilter {
	switch kind {
	case domain.KindGallery:
		return domain.ContentFilter{NonEmptyOnly: true, MobileOnly: mobileOnly}
	case domain.KindLogo:
		return domain.ContentFilter{ActiveOnly: true}
	}
	return domain.ContentFilter{}
}
