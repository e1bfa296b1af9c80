package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/access"
	"github.com/heartmarshall/regional-site-backend/internal/auth"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// List returns admin accounts ordered by username.
func (s *Service) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	if _, err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}
	if f.Role != nil && !f.Role.IsValid() {
		return nil, domain.NewValidationError("role", "must be admin or super_admin")
	}

	users, err := s.users.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Get returns one admin account.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if _, err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

// Create adds an admin account. Assigned regions must exist.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	if _, err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.AssignedRegions = normalizeRegions(input.AssignedRegions)

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkRegionsExist(ctx, input.AssignedRegions); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	name := input.Name
	if name == "" {
		name = input.Username
	}

	created, err := s.users.Create(ctx, domain.User{
		Username:        input.Username,
		Email:           input.Email,
		Name:            name,
		PasswordHash:    hash,
		Role:            input.Role,
		AssignedRegions: input.AssignedRegions,
		IsActive:        true,
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionUserCreate,
		EntityType: domain.EntityTypeUser,
		EntityID:   created.ID.String(),
		NewValues:  created.Snapshot(),
	})

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()))

	return created, nil
}

// Update changes an admin account. Demoting or disabling the last active
// super admin is rejected with ErrConflict.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.User, error) {
	scope, err := requireSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if input.AssignedRegions != nil {
		regions := normalizeRegions(*input.AssignedRegions)
		input.AssignedRegions = &regions
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.AssignedRegions != nil {
		if err := s.checkRegionsExist(ctx, *input.AssignedRegions); err != nil {
			return nil, err
		}
	}

	var hash string
	if input.Password != nil {
		if hash, err = auth.HashPassword(*input.Password, s.bcryptCost); err != nil {
			return nil, fmt.Errorf("user.Update: %w", err)
		}
	}

	var before, after domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.users.GetByID(ctx, input.ID)
		if err != nil {
			return err
		}
		before = *cur

		next := *cur
		if input.Email != nil {
			next.Email = strings.TrimSpace(*input.Email)
		}
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.Role != nil {
			next.Role = *input.Role
		}
		if input.AssignedRegions != nil {
			next.AssignedRegions = *input.AssignedRegions
		}
		if input.IsActive != nil {
			next.IsActive = *input.IsActive
		}

		losesSuper := cur.IsActive && cur.Role.IsSuperAdmin() && (!next.IsActive || !next.Role.IsSuperAdmin())
		if losesSuper {
			if cur.ID == scope.ActorID {
				return fmt.Errorf("cannot demote or disable yourself: %w", domain.ErrConflict)
			}
			if err := s.ensureAnotherSuperAdmin(ctx); err != nil {
				return err
			}
		}

		updated, err := s.users.Update(ctx, next)
		if err != nil {
			return err
		}
		if hash != "" {
			if err := s.users.SetPassword(ctx, cur.ID, hash); err != nil {
				return err
			}
		}
		after = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	newValues := after.Snapshot()
	if input.Password != nil {
		newValues["password_changed"] = true
	}
	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionUserUpdate,
		EntityType: domain.EntityTypeUser,
		EntityID:   after.ID.String(),
		OldValues:  before.Snapshot(),
		NewValues:  newValues,
	})

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", after.ID.String()))

	return &after, nil
}

// Delete removes an admin account. Callers cannot delete themselves, and the
// last active super admin cannot be deleted.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	scope, err := requireSuperAdmin(ctx)
	if err != nil {
		return err
	}
	if id == scope.ActorID {
		return fmt.Errorf("cannot delete yourself: %w", domain.ErrConflict)
	}

	var before domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		before = *cur

		if cur.IsActive && cur.Role.IsSuperAdmin() {
			if err := s.ensureAnotherSuperAdmin(ctx); err != nil {
				return err
			}
		}
		return s.users.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.activity.Record(ctx, domain.ActivityEntry{
		ActionType: domain.ActionUserDelete,
		EntityType: domain.EntityTypeUser,
		EntityID:   id.String(),
		OldValues:  before.Snapshot(),
	})

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func requireSuperAdmin(ctx context.Context) (access.Scope, error) {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return access.Scope{}, err
	}
	if err := scope.RequireSuperAdmin(); err != nil {
		return access.Scope{}, err
	}
	return scope, nil
}

func (s *Service) ensureAnotherSuperAdmin(ctx context.Context) error {
	n, err := s.users.CountActiveSuperAdmins(ctx)
	if err != nil {
		return err
	}
	if n <= 1 {
		return fmt.Errorf("last active super admin: %w", domain.ErrConflict)
	}
	return nil
}

func (s *Service) checkRegionsExist(ctx context.Context, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	found, err := s.regions.List(ctx, domain.RegionFilter{Codes: codes})
	if err != nil {
		return fmt.Errorf("check regions: %w", err)
	}

	known := make(map[string]bool, len(found))
	for _, r := range found {
		known[r.Code] = true
	}
	var errs []domain.FieldError
	for _, c := range codes {
		if !known[c] {
			errs = append(errs, domain.FieldError{Field: "assigned_regions", Message: "unknown region " + c})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
