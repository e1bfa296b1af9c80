package region

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/regional-site-backend/internal/access"
	"github.com/heartmarshall/regional-site-backend/internal/cache"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// List returns the regions visible to the caller, default first.
func (s *Service) List(ctx context.Context) ([]domain.Region, error) {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return nil, err
	}

	f := domain.RegionFilter{}
	if !scope.IsSuperAdmin() {
		f.Codes = scope.Regions
		if f.Codes == nil {
			f.Codes = []string{}
		}
	}

	regions, err := s.regions.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return scope.Visible(regions), nil
}

// Get returns one region the caller may access.
func (s *Service) Get(ctx context.Context, code string) (*domain.Region, error) {
	if err := domain.ValidateRegionCode(code); err != nil {
		return nil, err
	}
	if _, err := access.Authorized(ctx, code); err != nil {
		return nil, err
	}
	return s.regions.Get(ctx, code)
}

// Create adds a region. The first region ever created becomes the default.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Region, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	reg := input.region()
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Region
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.regions.GetDefault(ctx)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			reg.IsDefault = true
		case err != nil:
			return err
		}
		if reg.IsDefault && !reg.IsActive {
			return domain.NewValidationError("is_active", "the default region must be active")
		}

		wantDefault := reg.IsDefault
		reg.IsDefault = false
		created, err = s.regions.Create(ctx, reg)
		if err != nil {
			return err
		}
		if wantDefault {
			created, err = s.regions.SetDefault(ctx, created.Code)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionRegionCreate,
		EntityType: domain.EntityTypeRegion,
		EntityID:   created.Code,
		NewValues:  created.Snapshot(),
	})
	s.invalidate(ctx, created.Code)

	s.log.InfoContext(ctx, "region created",
		slog.String("code", created.Code),
		slog.Bool("default", created.IsDefault),
	)

	return created, nil
}

// Update changes a region. The default region cannot be deactivated or lose
// its default flag directly; another region must be made default instead.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Region, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}
	if err := domain.ValidateRegionCode(input.Code); err != nil {
		return nil, err
	}

	var before, after domain.Region
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.regions.Get(ctx, input.Code)
		if err != nil {
			return err
		}
		before = *cur

		next := input.apply(*cur)
		if err := next.Validate(); err != nil {
			return err
		}
		if cur.IsDefault && !next.IsActive {
			return domain.NewValidationError("is_active", "the default region must be active")
		}
		if cur.IsDefault && input.IsDefault != nil && !*input.IsDefault {
			return domain.NewValidationError("is_default", "make another region the default instead")
		}

		updated, err := s.regions.Update(ctx, next)
		if err != nil {
			return err
		}
		if input.IsDefault != nil && *input.IsDefault && !cur.IsDefault {
			if updated, err = s.regions.SetDefault(ctx, input.Code); err != nil {
				return err
			}
		}
		after = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionRegionUpdate,
		EntityType: domain.EntityTypeRegion,
		EntityID:   after.Code,
		OldValues:  before.Snapshot(),
		NewValues:  after.Snapshot(),
	})
	s.invalidate(ctx, after.Code)

	s.log.InfoContext(ctx, "region updated", slog.String("code", after.Code))

	return &after, nil
}

// Delete deactivates a region. Its content stays in place and becomes
// reachable again if the region is reactivated. The default region cannot
// be deleted.
func (s *Service) Delete(ctx context.Context, code string) (*domain.Region, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}
	if err := domain.ValidateRegionCode(code); err != nil {
		return nil, err
	}

	var before, after domain.Region
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.regions.Get(ctx, code)
		if err != nil {
			return err
		}
		if cur.IsDefault {
			return fmt.Errorf("region %s is the default region: %w", code, domain.ErrConflict)
		}
		before = *cur

		updated, err := s.regions.Deactivate(ctx, code)
		if err != nil {
			return err
		}
		after = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionRegionDelete,
		EntityType: domain.EntityTypeRegion,
		EntityID:   code,
		OldValues:  before.Snapshot(),
		NewValues:  after.Snapshot(),
	})
	s.invalidate(ctx, code)

	s.log.InfoContext(ctx, "region deactivated", slog.String("code", code))

	return &after, nil
}

func (s *Service) invalidate(ctx context.Context, code string) {
	s.cache.Invalidate(ctx, code, "region")
	s.cache.Invalidate(ctx, cache.AllRegions, "regions")
}

func requireSuperAdmin(ctx context.Context) error {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return err
	}
	return scope.RequireSuperAdmin()
}
