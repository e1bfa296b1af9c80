package region

import (
	"strings"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// CreateInput describes a new region. IsActive defaults to true.
type CreateInput struct {
	Code      string
	Name      string
	Domain    string
	Route     string
	IsActive  *bool
	IsDefault bool
}

func (i CreateInput) region() domain.Region {
	r := domain.Region{
		Code:      strings.TrimSpace(i.Code),
		Name:      strings.TrimSpace(i.Name),
		Domain:    normalizeDomain(i.Domain),
		Route:     strings.TrimSpace(i.Route),
		IsActive:  true,
		IsDefault: i.IsDefault,
	}
	if i.IsActive != nil {
		r.IsActive = *i.IsActive
	}
	return r
}

// UpdateInput changes a region. Nil fields are left untouched. The code is
// immutable.
type UpdateInput struct {
	Code      string
	Name      *string
	Domain    *string
	Route     *string
	IsActive  *bool
	IsDefault *bool
}

func (i UpdateInput) apply(r domain.Region) domain.Region {
	if i.Name != nil {
		r.Name = strings.TrimSpace(*i.Name)
	}
	if i.Domain != nil {
		r.Domain = normalizeDomain(*i.Domain)
	}
	if i.Route != nil {
		r.Route = strings.TrimSpace(*i.Route)
	}
	if i.IsActive != nil {
		r.IsActive = *i.IsActive
	}
	return r
}

func normalizeDomain(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	return strings.TrimSuffix(d, "/")
}
