// Package user manages admin accounts. Every operation is restricted to
// super admins.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
	CountActiveSuperAdmins(ctx context.Context) (int, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	Update(ctx context.Context, u domain.User) (*domain.User, error)
	SetPassword(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// regionRepo defines the region lookup needed to validate assignments.
type regionRepo interface {
	List(ctx context.Context, f domain.RegionFilter) ([]domain.Region, error)
}

// activityRecorder defines the activity logger interface needed by user service.
type activityRecorder interface {
	Record(ctx context.Context, e domain.ActivityEntry)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin account management.
type Service struct {
	log        *slog.Logger
	users      userRepo
	regions    regionRepo
	activity   activityRecorder
	tx         txManager
	bcryptCost int
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	regions regionRepo,
	activity activityRecorder,
	tx txManager,
	bcryptCost int,
) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		regions:    regions,
		activity:   activity,
		tx:         tx,
		bcryptCost: bcryptCost,
	}
}
