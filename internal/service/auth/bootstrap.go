package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/regional-site-backend/internal/auth"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// EnsureSuperAdmin creates the configured bootstrap super admin when no
// active super admin exists yet. It is a no-op when bootstrap credentials are
// not configured or a super admin is already present.
func (s *Service) EnsureSuperAdmin(ctx context.Context) error {
	if !s.cfg.HasBootstrapAdmin() {
		return nil
	}

	n, err := s.users.CountActiveSuperAdmins(ctx)
	if err != nil {
		return fmt.Errorf("auth.EnsureSuperAdmin count: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword(s.cfg.BootstrapPassword, s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.EnsureSuperAdmin: %w", err)
	}

	username := strings.TrimSpace(s.cfg.BootstrapUsername)
	user, err := s.users.Create(ctx, domain.User{
		Username:        username,
		Email:           strings.TrimSpace(s.cfg.BootstrapEmail),
		Name:            username,
		PasswordHash:    hash,
		Role:            domain.UserRoleSuperAdmin,
		AssignedRegions: []string{},
		IsActive:        true,
	})
	if err != nil {
		return fmt.Errorf("auth.EnsureSuperAdmin create: %w", err)
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionUserCreate,
		EntityType: domain.EntityTypeUser,
		EntityID:   user.ID.String(),
		NewValues:  user.Snapshot(),
	})

	s.log.InfoContext(ctx, "bootstrap super admin created", slog.String("username", user.Username))
	return nil
}
