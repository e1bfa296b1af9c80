package auth

import (
	"time"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// LoginResult holds the issued access token and the authenticated user.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}
