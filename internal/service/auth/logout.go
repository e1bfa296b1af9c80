package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/pkg/ctxutil"
)

// Logout records the logout. Tokens are stateless, so the client discards its
// copy and nothing is revoked server-side.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionLogout,
		EntityType: domain.EntityTypeUser,
		EntityID:   userID.String(),
	})

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// Me returns the authenticated user. A token for a user that has since been
// deleted or disabled yields ErrUnauthorized.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
