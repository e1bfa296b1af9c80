// Package activity serves the read side of the admin activity log.
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/access"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

type activityRepo interface {
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.ActivityEntry, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityEntry, error)
}

// Service implements activity log queries.
type Service struct {
	log  *slog.Logger
	repo activityRepo
}

// NewService creates a new activity service.
func NewService(logger *slog.Logger, repo activityRepo) *Service {
	return &Service{
		log:  logger.With("service", "activity"),
		repo: repo,
	}
}

// List returns one page of entries, newest first. Super admins see every
// entry; other admins only see their own actions regardless of the actor
// filter they ask for.
func (s *Service) List(ctx context.Context, f domain.ActivityFilter) (*domain.ActivityPage, error) {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.Normalize()

	if !scope.IsSuperAdmin() {
		self := scope.ActorID
		f.ActorID = &self
	}

	logs, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("activity.List: %w", err)
	}

	return &domain.ActivityPage{
		Logs:   logs,
		Total:  total,
		Limit:  f.Limit,
		Offset: f.Offset,
	}, nil
}

// Get returns one entry. Admins other than super admins may only read their
// own entries; anything else reports ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ActivityEntry, error) {
	scope, err := access.FromCtx(ctx)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !scope.IsSuperAdmin() && (e.ActorID == nil || *e.ActorID != scope.ActorID) {
		return nil, fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}
	return e, nil
}
