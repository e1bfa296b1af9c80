// Package page manages the rich-text sections of the public site
// (hero heading, services, about, footer) per region.
package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/regional-site-backend/internal/access"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

type pageRepo interface {
	List(ctx context.Context, region string) ([]domain.PageSection, error)
	Get(ctx context.Context, region, key string) (*domain.PageSection, error)
	Upsert(ctx context.Context, p domain.PageSection) (*domain.PageSection, error)
	Delete(ctx context.Context, region, key string) error
}

type regionRepo interface {
	Get(ctx context.Context, code string) (*domain.Region, error)
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

// Service implements page section management.
type Service struct {
	log      *slog.Logger
	pages    pageRepo
	regions  regionRepo
	activity activityRecorder
	cache    cacheInvalidator
	tx       txManager
}

// NewService creates a new page service.
func NewService(
	logger *slog.Logger,
	pages pageRepo,
	regions regionRepo,
	activity activityRecorder,
	cache cacheInvalidator,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "page"),
		pages:    pages,
		regions:  regions,
		activity: activity,
		cache:    cache,
		tx:       tx,
	}
}

// UpsertInput writes one section. Body is markdown.
type UpsertInput struct {
	Region string
	Key    string
	Title  string
	Body   string
}

// List returns all sections of a region ordered by key.
func (s *Service) List(ctx context.Context, region string) ([]domain.PageSection, error) {
	if err := s.authorize(ctx, region); err != nil {
		return nil, err
	}
	sections, err := s.pages.List(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("page.List: %w", err)
	}
	return sections, nil
}

// Get returns one section.
func (s *Service) Get(ctx context.Context, region, key string) (*domain.PageSection, error) {
	if err := domain.ValidateSectionKey(key); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, region); err != nil {
		return nil, err
	}
	return s.pages.Get(ctx, region, key)
}

// Upsert renders the markdown body and stores the section, creating it when
// it does not exist yet.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.PageSection, error) {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return nil, err
	}

	section := domain.PageSection{
		RegionCode:   input.Region,
		Key:          strings.TrimSpace(input.Key),
		Title:        strings.TrimSpace(input.Title),
		BodyMarkdown: input.Body,
	}
	if err := section.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkRegion(ctx, scope, input.Region); err != nil {
		return nil, err
	}

	html, err := RenderMarkdown(section.BodyMarkdown)
	if err != nil {
		return nil, domain.NewValidationError("body", err.Error())
	}
	section.BodyHTML = html
	actor := scope.ActorID.String()
	section.UpdatedBy = &actor

	var before, after *domain.PageSection
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.pages.Get(ctx, section.RegionCode, section.Key)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return err
		default:
			before = cur
		}

		after, err = s.pages.Upsert(ctx, section)
		return err
	})
	if err != nil {
		return nil, err
	}

	entry := domain.ActivityEntry{
		ActionType: domain.ActionContentUpdate,
		EntityType: domain.EntityTypePageSection,
		EntityID:   after.RegionCode + "/" + after.Key,
		NewValues:  snapshot(after),
	}
	if before == nil {
		entry.ActionType = domain.ActionContentCreate
	} else {
		entry.OldValues = snapshot(before)
	}
	s.activity.Record(ctx, entry)
	s.cache.Invalidate(ctx, after.RegionCode, "pages")

	s.log.InfoContext(ctx, "page section saved",
		slog.String("region", after.RegionCode),
		slog.String("key", after.Key))

	return after, nil
}

// Delete removes a section.
func (s *Service) Delete(ctx context.Context, region, key string) error {
	if err := domain.ValidateSectionKey(key); err != nil {
		return err
	}
	if err := s.authorize(ctx, region); err != nil {
		return err
	}

	var before *domain.PageSection
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.pages.Get(ctx, region, key)
		if err != nil {
			return err
		}
		before = cur
		return s.pages.Delete(ctx, region, key)
	})
	if err != nil {
		return err
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionContentDelete,
		EntityType: domain.EntityTypePageSection,
		EntityID:   region + "/" + key,
		OldValues:  snapshot(before),
	})
	s.cache.Invalidate(ctx, region, "pages")

	s.log.InfoContext(ctx, "page section deleted", slog.String("region", region), slog.String("key", key))
	return nil
}

func (s *Service) authorize(ctx context.Context, region string) error {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return err
	}
	if err := domain.ValidateRegionCode(region); err != nil {
		return err
	}
	return s.checkRegion(ctx, scope, region)
}

func (s *Service) checkRegion(ctx context.Context, scope access.Scope, region string) error {
	if err := scope.Authorize(region); err != nil {
		return err
	}
	_, err := s.regions.Get(ctx, region)
	return err
}

func snapshot(p *domain.PageSection) map[string]any {
	return map[string]any{
		"region_code": p.RegionCode,
		"key":         p.Key,
		"title":       p.Title,
		"body":        p.BodyMarkdown,
	}
}
