package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry is an immutable record of one admin action.
type ActivityEntry struct {
	ID         uuid.UUID
	ActionType ActionType
	EntityType EntityType
	EntityID   string
	OldValues  map[string]any
	NewValues  map[string]any
	ActorID    *uuid.UUID
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}

// ActivityFilter selects activity entries for the admin log view.
type ActivityFilter struct {
	ActionType *ActionType
	EntityType *EntityType
	ActorID    *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

// Normalize applies defaults and clamps paging values.
func (f *ActivityFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultActivityLimit
	}
	if f.Limit > MaxActivityLimit {
		f.Limit = MaxActivityLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// Validate rejects unknown enum values and an inverted date range.
func (f ActivityFilter) Validate() error {
	var errs []FieldError

	if f.ActionType != nil && !f.ActionType.IsValid() {
		errs = append(errs, FieldError{Field: "action_type", Message: "unknown action type"})
	}
	if f.EntityType != nil && !f.EntityType.IsValid() {
		errs = append(errs, FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		errs = append(errs, FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ActivityPage is one page of activity entries plus the unpaged total.
type ActivityPage struct {
	Logs   []ActivityEntry
	Total  int
	Limit  int
	Offset int
}
