package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is an admin dashboard account.
type User struct {
	ID              uuid.UUID
	Username        string
	Email           string
	Name            string
	PasswordHash    string
	Role            UserRole
	AssignedRegions []string
	IsActive        bool
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanAccessRegion reports whether the user may act on the given region.
func (u *User) CanAccessRegion(code string) bool {
	if u.Role.IsSuperAdmin() {
		return true
	}
	return slices.Contains(u.AssignedRegions, code)
}

// Snapshot returns the fields recorded in activity log before/after values.
// The password hash is never included.
func (u *User) Snapshot() map[string]any {
	return map[string]any{
		"id":               u.ID.String(),
		"username":         u.Username,
		"email":            u.Email,
		"name":             u.Name,
		"role":             u.Role.String(),
		"assigned_regions": u.AssignedRegions,
		"is_active":        u.IsActive,
	}
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Role       *UserRole
	ActiveOnly bool
}
