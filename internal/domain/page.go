package domain

import (
	"regexp"
	"strings"
	"time"
)

var sectionKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{1,39}$`)

// PageSection is a block of rich text on the public site (hero, services, about, footer).
type PageSection struct {
	RegionCode   string
	Key          string
	Title        string
	BodyMarkdown string
	BodyHTML     string
	UpdatedBy    *string
	UpdatedAt    time.Time
}

// ValidateSectionKey checks the section key format (lower snake case).
func ValidateSectionKey(key string) error {
	if !sectionKeyPattern.MatchString(key) {
		return NewValidationError("key", "must be lower snake case, 2-40 chars")
	}
	return nil
}

// Validate checks a section before it is stored.
func (p PageSection) Validate() error {
	var errs []FieldError

	if err := ValidateRegionCode(p.RegionCode); err != nil {
		errs = append(errs, FieldError{Field: "region", Message: "must be 2 uppercase letters"})
	}
	if !sectionKeyPattern.MatchString(p.Key) {
		errs = append(errs, FieldError{Field: "key", Message: "must be lower snake case, 2-40 chars"})
	}
	if len(p.Title) > 200 {
		errs = append(errs, FieldError{Field: "title", Message: "too long"})
	}
	if strings.TrimSpace(p.BodyMarkdown) == "" && strings.TrimSpace(p.Title) == "" {
		errs = append(errs, FieldError{Field: "body", Message: "title or body is required"})
	}
	if len(p.BodyMarkdown) > 64*1024 {
		errs = append(errs, FieldError{Field: "body", Message: "too long"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
