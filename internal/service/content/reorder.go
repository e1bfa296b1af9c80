package content

import (
	"context"
	"log/slog"
	"slices"
	"strconv"

	"github.com/heartmarshall/regional-site-backend/internal/access"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// Reorder rewrites the display order of a whole collection so that
// input.Order[i] ends up at position i. The order must be a permutation of
// the stored IDs; anything else is rejected before a row is touched. All
// position updates commit together or not at all.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) ([]domain.ContentItem, error) {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkRegion(ctx, scope, input.Region); err != nil {
		return nil, err
	}

	var (
		before []int64
		items  []domain.ContentItem
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.items.LockPartition(ctx, input.Region, input.Kind); err != nil {
			return err
		}

		current, err := s.items.List(ctx, input.Region, input.Kind, domain.ContentFilter{})
		if err != nil {
			return err
		}
		before = domain.OrderOf(current)

		if err := domain.ValidatePermutation(before, input.Order); err != nil {
			return err
		}
		if slices.Equal(before, input.Order) {
			items = current
			return nil
		}

		if err := s.items.Reorder(ctx, input.Region, input.Kind, input.Order); err != nil {
			return err
		}

		items, err = s.items.List(ctx, input.Region, input.Kind, domain.ContentFilter{})
		return err
	})
	if err != nil {
		return nil, err
	}

	if slices.Equal(before, input.Order) {
		s.log.DebugContext(ctx, "reorder is a no-op",
			slog.String("region", input.Region),
			slog.String("type", input.Kind.String()),
		)
		return items, nil
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionContentReorder,
		EntityType: input.Kind.Schema().Entity,
		EntityID:   input.Region,
		OldValues:  map[string]any{"order": before},
		NewValues:  map[string]any{"order": domain.OrderOf(items)},
	})
	s.cache.Invalidate(ctx, input.Region, input.Kind.String())

	s.log.InfoContext(ctx, "content reordered",
		slog.String("region", input.Region),
		slog.String("type", input.Kind.String()),
		slog.Int("count", len(items)),
	)

	return items, nil
}

// SetMobileVisibility shows or hides an item on small screens. The per-region
// cap is counted under the partition lock so concurrent toggles cannot exceed it.
func (s *Service) SetMobileVisibility(ctx context.Context, input MobileVisibilityInput) (*domain.ContentItem, error) {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkRegion(ctx, scope, input.Region); err != nil {
		return nil, err
	}

	var before, after domain.ContentItem
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.items.LockPartition(ctx, input.Region, input.Kind); err != nil {
			return err
		}
		cur, err := s.items.GetByID(ctx, input.Region, input.Kind, input.ID)
		if err != nil {
			return err
		}
		before = *cur

		if cur.MobileVisible == input.Visible {
			after = *cur
			return nil
		}
		if input.Visible {
			if err := s.checkMobileCap(ctx, input.Region, input.Kind, input.ID); err != nil {
				return err
			}
		}

		updated, err := s.items.SetMobileVisible(ctx, input.Region, input.Kind, input.ID, input.Visible)
		if err != nil {
			return err
		}
		after = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	if before.MobileVisible == after.MobileVisible {
		return &after, nil
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionContentUpdate,
		EntityType: input.Kind.Schema().Entity,
		EntityID:   strconv.FormatInt(after.ID, 10),
		OldValues:  before.Snapshot(),
		NewValues:  after.Snapshot(),
	})
	s.cache.Invalidate(ctx, input.Region, input.Kind.String())

	s.log.InfoContext(ctx, "mobile visibility changed",
		slog.String("region", input.Region),
		slog.Int64("id", after.ID),
		slog.Bool("visible", after.MobileVisible),
	)

	return &after, nil
}
