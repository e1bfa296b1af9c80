package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/auth"
	"github.com/heartmarshall/regional-site-backend/internal/config"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	CountActiveSuperAdmins(ctx context.Context) (int, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

// tokenIssuer defines the JWT interface needed by auth service.
type tokenIssuer interface {
	GenerateAccessToken(c auth.Claims) (string, time.Time, error)
}

// activityRecorder defines the activity logger interface needed by auth service.
type activityRecorder interface {
	Record(ctx context.Context, e domain.ActivityEntry)
}

// Service implements admin authentication.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tokens   tokenIssuer
	activity activityRecorder
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenIssuer,
	activity activityRecorder,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		tokens:   tokens,
		activity: activity,
		cfg:      cfg,
	}
}
