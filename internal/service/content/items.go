package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/heartmarshall/regional-site-backend/internal/access"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// List returns every item of a collection in display order, including
// inactive and cleared ones.
func (s *Service) List(ctx context.Context, region string, kind domain.Kind) ([]domain.ContentItem, error) {
	if err := s.authorize(ctx, region, kind); err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, region, kind, domain.ContentFilter{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return items, nil
}

// Get returns one item of a collection.
func (s *Service) Get(ctx context.Context, region string, kind domain.Kind, id int64) (*domain.ContentItem, error) {
	if err := s.authorize(ctx, region, kind); err != nil {
		return nil, err
	}
	return s.items.GetByID(ctx, region, kind, id)
}

// Create stores the image (when uploaded) and appends a new item at the end
// of the collection.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.ContentItem, error) {
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

	img, err := s.resolveSource(ctx, input.Region, input.Kind, input.Source)
	if err != nil {
		return nil, err
	}

	schema := input.Kind.Schema()
	item := domain.ContentItem{
		RegionCode:     input.Region,
		Kind:           input.Kind,
		StorageKey:     img.key,
		CDNURL:         img.url,
		CDNURLMobile:   img.mobileURL,
		Filename:       img.filename,
		AltText:        strings.TrimSpace(input.AltText),
		ObjectPosition: strings.TrimSpace(input.ObjectPosition),
		LinkURL:        strings.TrimSpace(input.LinkURL),
		IsActive:       true,
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	var created *domain.ContentItem
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.items.LockPartition(ctx, input.Region, input.Kind); err != nil {
			return err
		}

		if schema.MaxMobileVisible > 0 && (input.MobileVisible == nil || *input.MobileVisible) {
			capErr := s.checkMobileCap(ctx, input.Region, input.Kind, 0)
			switch {
			case capErr == nil:
				item.MobileVisible = true
			case input.MobileVisible == nil && errors.Is(capErr, domain.ErrValidation):
				item.MobileVisible = false
			default:
				return capErr
			}
		}

		var createErr error
		created, createErr = s.items.Create(ctx, item)
		return createErr
	})
	if err != nil {
		if img.uploaded {
			s.releaseImage(ctx, input.Region, input.Kind, img.key)
		}
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionContentCreate,
		EntityType: schema.Entity,
		EntityID:   strconv.FormatInt(created.ID, 10),
		NewValues:  created.Snapshot(),
	})
	s.cache.Invalidate(ctx, input.Region, input.Kind.String())

	s.log.InfoContext(ctx, "content created",
		slog.String("region", input.Region),
		slog.String("type", input.Kind.String()),
		slog.Int64("id", created.ID),
		slog.Int("display_order", created.DisplayOrder),
	)

	return created, nil
}

// Update changes the editable fields of an item and optionally swaps its
// image. The previous object is deleted from storage once the row is updated.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.ContentItem, error) {
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

	var img storedImage
	if input.Source != nil {
		img, err = s.resolveSource(ctx, input.Region, input.Kind, input.Source)
		if err != nil {
			return nil, err
		}
	}

	capped := input.Source != nil && input.Kind.Schema().MaxMobileVisible > 0

	var before, after domain.ContentItem
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if capped {
			if err := s.items.LockPartition(ctx, input.Region, input.Kind); err != nil {
				return err
			}
		}
		cur, err := s.items.GetByID(ctx, input.Region, input.Kind, input.ID)
		if err != nil {
			return err
		}
		before = *cur

		// Empty slots are not counted, so filling one re-enters the cap.
		if capped && cur.IsEmpty() && cur.MobileVisible {
			if err := s.checkMobileCap(ctx, input.Region, input.Kind, input.ID); err != nil {
				return err
			}
		}

		next := *cur
		if input.Source != nil {
			next.StorageKey = img.key
			next.CDNURL = img.url
			next.CDNURLMobile = img.mobileURL
			next.Filename = img.filename
		}
		if input.AltText != nil {
			next.AltText = strings.TrimSpace(*input.AltText)
		}
		if input.ObjectPosition != nil {
			next.ObjectPosition = strings.TrimSpace(*input.ObjectPosition)
		}
		if input.LinkURL != nil {
			next.LinkURL = strings.TrimSpace(*input.LinkURL)
		}
		if input.IsActive != nil {
			next.IsActive = *input.IsActive
		}

		updated, err := s.items.Update(ctx, next)
		if err != nil {
			return err
		}
		after = *updated
		return nil
	})
	if err != nil {
		if img.uploaded {
			s.releaseImage(ctx, input.Region, input.Kind, img.key)
		}
		return nil, err
	}

	if input.Source != nil && before.StorageKey != after.StorageKey {
		s.releaseImage(ctx, input.Region, input.Kind, before.StorageKey)
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionContentUpdate,
		EntityType: input.Kind.Schema().Entity,
		EntityID:   strconv.FormatInt(after.ID, 10),
		OldValues:  before.Snapshot(),
		NewValues:  after.Snapshot(),
	})
	s.cache.Invalidate(ctx, input.Region, input.Kind.String())

	s.log.InfoContext(ctx, "content updated",
		slog.String("region", input.Region),
		slog.String("type", input.Kind.String()),
		slog.Int64("id", after.ID),
	)

	return &after, nil
}

// Delete applies the collection's delete policy: sliders are removed and the
// remaining items renumbered, gallery slots are cleared in place, logos are
// deactivated and keep their image.
func (s *Service) Delete(ctx context.Context, region string, kind domain.Kind, id int64) error {
	if err := s.authorize(ctx, region, kind); err != nil {
		return err
	}

	schema := kind.Schema()
	var before domain.ContentItem
	var after *domain.ContentItem

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.items.LockPartition(ctx, region, kind); err != nil {
			return err
		}
		cur, err := s.items.GetByID(ctx, region, kind, id)
		if err != nil {
			return err
		}
		before = *cur

		switch schema.Delete {
		case domain.DeleteHard:
			if err := s.items.Delete(ctx, region, kind, id); err != nil {
				return err
			}
			return s.items.Compact(ctx, region, kind)
		case domain.DeleteClear:
			after, err = s.items.Clear(ctx, region, kind, id)
			return err
		case domain.DeleteDeactivate:
			after, err = s.items.SetActive(ctx, region, kind, id, false)
			return err
		}
		return fmt.Errorf("unknown delete policy %s", schema.Delete)
	})
	if err != nil {
		return err
	}

	if schema.Delete != domain.DeleteDeactivate {
		s.releaseImage(ctx, region, kind, before.StorageKey)
	}

	entry := domain.ActivityEntry{
		ActionType: domain.ActionContentDelete,
		EntityType: schema.Entity,
		EntityID:   strconv.FormatInt(id, 10),
		OldValues:  before.Snapshot(),
	}
	if after != nil {
		entry.NewValues = after.Snapshot()
	}
	s.activity.Record(ctx, entry)
	s.cache.Invalidate(ctx, region, kind.String())

	s.log.InfoContext(ctx, "content deleted",
		slog.String("region", region),
		slog.String("type", kind.String()),
		slog.Int64("id", id),
		slog.String("policy", schema.Delete.String()),
	)

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// authorize runs the common pre-checks of operations addressed by region and kind.
func (s *Service) authorize(ctx context.Context, region string, kind domain.Kind) error {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return err
	}
	if errs := validatePartition(region, kind); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return s.checkRegion(ctx, scope, region)
}

// checkRegion verifies the caller may act on region and that it exists.
// Inactive regions are still editable.
func (s *Service) checkRegion(ctx context.Context, scope access.Scope, region string) error {
	if err := scope.Authorize(region); err != nil {
		return err
	}
	if _, err := s.regions.Get(ctx, region); err != nil {
		return err
	}
	return nil
}

func (s *Service) checkMobileCap(ctx context.Context, region string, kind domain.Kind, excludeID int64) error {
	limit := kind.Schema().MaxMobileVisible
	n, err := s.items.CountMobileVisible(ctx, region, kind, excludeID)
	if err != nil {
		return err
	}
	if n >= limit {
		return domain.NewValidationError("mobile_visible",
			fmt.Sprintf("at most %d %s items can be visible on mobile", limit, kind))
	}
	return nil
}

func (s *Service) resolveSource(ctx context.Context, region string, kind domain.Kind, src ImageSource) (storedImage, error) {
	switch v := src.(type) {
	case Upload:
		obj, err := s.images.Put(ctx, storagePrefix(region, kind), v.Data)
		if err != nil {
			return storedImage{}, err
		}
		filename := strings.TrimSpace(v.Filename)
		if filename == "" {
			filename = path.Base(obj.Key)
		}

		s.activity.Record(ctx, domain.ActivityEntry{
			ActionType: domain.ActionImageUpload,
			EntityType: domain.EntityTypeImage,
			EntityID:   obj.Key,
			NewValues: map[string]any{
				"r2_key":       obj.Key,
				"cdn_url":      obj.URL,
				"filename":     filename,
				"content_type": obj.ContentType,
				"size":         obj.Size,
			},
		})

		return storedImage{
			key:       obj.Key,
			url:       obj.URL,
			mobileURL: obj.MobileURL,
			filename:  truncate(filename, maxFilename),
			uploaded:  true,
		}, nil

	case Reference:
		key, url := strings.TrimSpace(v.Key), strings.TrimSpace(v.URL)
		if !ownsKey(region, kind, key) {
			return storedImage{}, domain.NewValidationError("image.r2_key",
				fmt.Sprintf("must be stored under %s/", storagePrefix(region, kind)))
		}
		if k, ok := s.images.KeyFromURL(url); !ok || k != key {
			return storedImage{}, domain.NewValidationError("image.cdn_url", "does not address r2_key")
		}
		return storedImage{
			key:       key,
			url:       url,
			mobileURL: s.images.MobileURL(url),
			filename:  truncate(strings.TrimSpace(v.Filename), maxFilename),
		}, nil
	}
	return storedImage{}, domain.NewValidationError("image", "unsupported image source")
}

// releaseImage deletes an object that is no longer referenced. Only objects
// under the collection's own prefix are deleted. Failures only leave an
// orphaned object behind, so they are logged and swallowed.
func (s *Service) releaseImage(ctx context.Context, region string, kind domain.Kind, key string) {
	if key == "" {
		return
	}
	if !ownsKey(region, kind, key) {
		s.log.WarnContext(ctx, "image outside collection prefix kept",
			slog.String("region", region),
			slog.String("type", kind.String()),
			slog.String("key", key),
		)
		return
	}
	if err := s.images.Delete(ctx, key); err != nil {
		s.log.WarnContext(ctx, "image delete failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}
	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionImageDelete,
		EntityType: domain.EntityTypeImage,
		EntityID:   key,
		OldValues:  map[string]any{"r2_key": key},
	})
}

func storagePrefix(region string, kind domain.Kind) string {
	return kind.Schema().StoragePrefix + "/" + strings.ToLower(region)
}

// ownsKey reports whether key lives under the collection's storage prefix.
func ownsKey(region string, kind domain.Kind, key string) bool {
	return strings.HasPrefix(key, storagePrefix(region, kind)+"/") && !strings.Contains(key, "..")
}
