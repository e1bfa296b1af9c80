package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/regional-site-backend/internal/auth"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// Login authenticates an admin with username + password and issues an access
// token carrying the user's role and region allow-list.
// Unknown users, wrong passwords and inactive accounts all yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	var hash string
	if user != nil {
		hash = user.PasswordHash
	}
	if !auth.CheckPasswordOrDummy(hash, input.Password) {
		s.recordFailure(ctx, input.Username, user, "invalid credentials")
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		s.recordFailure(ctx, input.Username, user, "account disabled")
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(auth.Claims{
		UserID:  user.ID,
		Role:    user.Role,
		Regions: user.AssignedRegions,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		s.log.WarnContext(ctx, "touch last login failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}

	id := user.ID
	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionLoginSuccess,
		EntityType: domain.EntityTypeUser,
		EntityID:   user.ID.String(),
		ActorID:    &id,
		NewValues:  map[string]any{"username": user.Username},
	})

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *Service) recordFailure(ctx context.Context, username string, user *domain.User, reason string) {
	entry := domain.ActivityEntry{
		ActionType: domain.ActionLoginFailed,
		EntityType: domain.EntityTypeUser,
		EntityID:   username,
		NewValues:  map[string]any{"username": username, "reason": reason},
	}
	if user != nil {
		entry.EntityID = user.ID.String()
	}
	s.activity.Record(ctx, entry)

	s.log.WarnContext(ctx, "login failed",
		slog.String("username", username),
		slog.String("reason", reason))
}
