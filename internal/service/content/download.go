package content

import (
	"context"
	"io"
	"strings"

	"github.com/heartmarshall/regional-site-backend/internal/access"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// OpenImage streams a stored image back to an admin. Keys are laid out as
// <kind prefix>/<region>/..., so the region check needs no database lookup.
func (s *Service) OpenImage(ctx context.Context, key string) (io.ReadCloser, error) {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return nil, err
	}

	region, ok := regionFromKey(key)
	if !ok {
		return nil, domain.NewValidationError("key", "not a content image key")
	}
	if err := scope.Authorize(region); err != nil {
		return nil, err
	}

	return s.images.Download(ctx, key)
}

func regionFromKey(key string) (string, bool) {
	parts := strings.Split(key, "/")
	if len(parts) < 3 || strings.Contains(key, "..") {
		return "", false
	}
	known := false
	for _, k := range domain.Kinds() {
		if parts[0] == k.Schema().StoragePrefix {
			known = true
			break
		}
	}
	region := strings.ToUpper(parts[1])
	if !known || domain.ValidateRegionCode(region) != nil {
		return "", false
	}
	return region, true
}
