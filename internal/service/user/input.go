package user

import (
	"net/mail"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/auth"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,50}$`)

// CreateInput holds parameters for creating an admin account.
type CreateInput struct {
	Username        string
	Email           string
	Name            string
	Password        string
	Role            domain.UserRole
	AssignedRegions []string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !usernamePattern.MatchString(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "3-50 letters, digits, dot, dash or underscore"})
	}
	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validateName(i.Name)...)
	if err := auth.ValidatePassword(i.Password); err != nil {
		errs = append(errs, domain.FieldError{Field: "password", Message: err.Error()})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin or super_admin"})
	}
	errs = append(errs, validateRegionCodes(i.AssignedRegions)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds parameters for updating an admin account.
// All fields except ID are optional (nil = don't change).
type UpdateInput struct {
	ID              uuid.UUID
	Email           *string
	Name            *string
	Password        *string
	Role            *domain.UserRole
	AssignedRegions *[]string
	IsActive        *bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Email != nil {
		errs = append(errs, validateEmail(*i.Email)...)
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Password != nil {
		if err := auth.ValidatePassword(*i.Password); err != nil {
			errs = append(errs, domain.FieldError{Field: "password", Message: err.Error()})
		}
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin or super_admin"})
	}
	if i.AssignedRegions != nil {
		errs = append(errs, validateRegionCodes(*i.AssignedRegions)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return nil
	}
	if len(email) > 255 {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return []domain.FieldError{{Field: "email", Message: "invalid email address"}}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	if len(name) > 255 {
		return []domain.FieldError{{Field: "name", Message: "too long"}}
	}
	return nil
}

func validateRegionCodes(codes []string) []domain.FieldError {
	var errs []domain.FieldError
	for _, c := range codes {
		if err := domain.ValidateRegionCode(c); err != nil {
			errs = append(errs, domain.FieldError{Field: "assigned_regions", Message: "invalid region code " + c})
		}
	}
	return errs
}

// normalizeRegions trims, dedupes and sorts region codes.
func normalizeRegions(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}
