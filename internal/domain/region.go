package domain

import (
	"regexp"
	"strings"
	"time"
)

var regionCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// Region is a market partition with its own content set.
type Region struct {
	Code      string
	Name      string
	Domain    string
	Route     string
	IsActive  bool
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateRegionCode checks that code is exactly two uppercase ASCII letters.
func ValidateRegionCode(code string) error {
	if !regionCodePattern.MatchString(code) {
		return NewValidationError("region", "must be 2 uppercase letters")
	}
	return nil
}

// Validate checks the region fields that do not depend on other regions.
func (r Region) Validate() error {
	var errs []FieldError

	if !regionCodePattern.MatchString(r.Code) {
		errs = append(errs, FieldError{Field: "code", Message: "must be 2 uppercase letters"})
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	} else if len(r.Name) > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "too long"})
	}
	if strings.TrimSpace(r.Domain) == "" && strings.TrimSpace(r.Route) == "" {
		errs = append(errs, FieldError{Field: "domain", Message: "domain or route is required"})
	}
	if r.Route != "" && !strings.HasPrefix(r.Route, "/") {
		errs = append(errs, FieldError{Field: "route", Message: "must start with /"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Snapshot returns the fields recorded in activity log before/after values.
func (r Region) Snapshot() map[string]any {
	return map[string]any{
		"code":       r.Code,
		"name":       r.Name,
		"domain":     r.Domain,
		"route":      r.Route,
		"is_active":  r.IsActive,
		"is_default": r.IsDefault,
	}
}

// ResolveRegion picks the region serving host/path: an exact domain match wins,
// then the longest matching route prefix, then the default region.
// Inactive regions are never returned. ok is false when nothing matches.
func ResolveRegion(regions []Region, host, path string) (Region, bool) {
	host = strings.ToLower(strings.TrimSpace(host))
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	var (
		best     Region
		bestLen  = -1
		fallback Region
		hasDef   bool
	)
	for _, r := range regions {
		if !r.IsActive {
			continue
		}
		if r.Domain != "" && strings.EqualFold(r.Domain, host) {
			return r, true
		}
		if r.Route != "" && routeMatches(r.Route, path) && len(r.Route) > bestLen {
			best, bestLen = r, len(r.Route)
		}
		if r.IsDefault {
			fallback, hasDef = r, true
		}
	}
	if bestLen >= 0 {
		return best, true
	}
	return fallback, hasDef
}

func routeMatches(route, path string) bool {
	route = strings.TrimSuffix(route, "/")
	if route == "" {
		return false
	}
	return path == route || strings.HasPrefix(path, route+"/")
}

// RegionFilter narrows a region listing. A nil Codes slice means no restriction.
type RegionFilter struct {
	Codes      []string
	ActiveOnly bool
}
