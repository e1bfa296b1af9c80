// Package access resolves what the current caller may touch.
package access

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/pkg/ctxutil"
)

// Scope is the caller identity and region allow-list taken from the request context.
type Scope struct {
	ActorID uuid.UUID
	Role    domain.UserRole
	Regions []string
}

// FromCtx builds the Scope of an authenticated request.
// Returns domain.ErrUnauthorized if the context carries no user.
func FromCtx(ctx context.Context) (Scope, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Scope{}, domain.ErrUnauthorized
	}
	return Scope{
		ActorID: id,
		Role:    domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
		Regions: ctxutil.RegionsFromCtx(ctx),
	}, nil
}

// IsSuperAdmin reports whether the caller bypasses region checks.
func (s Scope) IsSuperAdmin() bool {
	return s.Role.IsSuperAdmin()
}

// Authorize returns domain.ErrForbidden unless the caller may act on region.
func (s Scope) Authorize(region string) error {
	if s.IsSuperAdmin() || slices.Contains(s.Regions, region) {
		return nil
	}
	return fmt.Errorf("region %s: %w", region, domain.ErrForbidden)
}

// RequireSuperAdmin returns domain.ErrForbidden for everyone but super admins.
func (s Scope) RequireSuperAdmin() error {
	if s.IsSuperAdmin() {
		return nil
	}
	return fmt.Errorf("super admin required: %w", domain.ErrForbidden)
}

// Visible filters regions down to those the caller may see.
func (s Scope) Visible(regions []domain.Region) []domain.Region {
	if s.IsSuperAdmin() {
		return regions
	}
	out := make([]domain.Region, 0, len(regions))
	for _, r := range regions {
		if slices.Contains(s.Regions, r.Code) {
			out = append(out, r)
		}
	}
	return out
}

// Authorized resolves the caller scope and checks region in one step.
func Authorized(ctx context.Context, region string) (Scope, error) {
	s, err := FromCtx(ctx)
	if err != nil {
		return Scope{}, err
	}
	if err := s.Authorize(region); err != nil {
		return Scope{}, err
	}
	return s, nil
}

// WithScope returns ctx carrying s, as the auth middleware would.
func WithScope(ctx context.Context, s Scope) context.Context {
	ctx = ctxutil.WithUserID(ctx, s.ActorID)
	ctx = ctxutil.WithUserRole(ctx, string(s.Role))
	return ctxutil.WithRegions(ctx, s.Regions)
}
