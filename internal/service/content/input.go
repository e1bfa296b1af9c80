package content

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

const (
	maxAltText        = 255
	maxObjectPosition = 50
	maxLinkURL        = 2048
	maxFilename       = 255
)

// ---------------------------------------------------------------------------
// CreateInput
// ---------------------------------------------------------------------------

// CreateInput adds an item at the end of a collection.
type CreateInput struct {
	Region         string
	Kind           domain.Kind
	Source         ImageSource
	AltText        string
	ObjectPosition string
	LinkURL        string
	IsActive       *bool
	MobileVisible  *bool
}

// Validate checks the input fields and reports every problem at once.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validatePartition(i.Region, i.Kind)...)
	if i.Source == nil {
		errs = append(errs, domain.FieldError{Field: "image", Message: "required"})
	} else {
		errs = append(errs, i.Source.validate("image")...)
	}
	errs = append(errs, validateFields(i.Kind, &i.AltText, &i.ObjectPosition, &i.LinkURL)...)

	schema := i.Kind.Schema()
	if i.IsActive != nil && !schema.LinkURL && i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "is_active", Message: notSupported(i.Kind)})
	}
	if i.MobileVisible != nil && schema.MaxMobileVisible == 0 && i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mobile_visible", Message: notSupported(i.Kind)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// UpdateInput
// ---------------------------------------------------------------------------

// UpdateInput changes an existing item. Nil fields are left untouched; a nil
// Source keeps the current image.
type UpdateInput struct {
	Region         string
	Kind           domain.Kind
	ID             int64
	Source         ImageSource
	AltText        *string
	ObjectPosition *string
	LinkURL        *string
	IsActive       *bool
}

// Validate checks the input fields and reports every problem at once.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validatePartition(i.Region, i.Kind)...)
	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Source != nil {
		errs = append(errs, i.Source.validate("image")...)
	}
	errs = append(errs, validateFields(i.Kind, i.AltText, i.ObjectPosition, i.LinkURL)...)
	if i.IsActive != nil && !i.Kind.Schema().LinkURL && i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "is_active", Message: notSupported(i.Kind)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ReorderInput
// ---------------------------------------------------------------------------

// ReorderInput is the complete desired order of one collection.
type ReorderInput struct {
	Region string
	Kind   domain.Kind
	Order  []int64
}

// Validate checks the shape of the request. Membership is checked against
// the stored collection inside the transaction.
func (i ReorderInput) Validate() error {
	errs := validatePartition(i.Region, i.Kind)
	if i.Order == nil {
		errs = append(errs, domain.FieldError{Field: "order", Message: "required"})
	}
	for idx, id := range i.Order {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("order[%d]", idx), Message: "must be a positive id"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// MobileVisibilityInput
// ---------------------------------------------------------------------------

// MobileVisibilityInput toggles whether an item is shown on small screens.
type MobileVisibilityInput struct {
	Region  string
	Kind    domain.Kind
	ID      int64
	Visible bool
}

// Validate checks the input fields.
func (i MobileVisibilityInput) Validate() error {
	errs := validatePartition(i.Region, i.Kind)
	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Kind.IsValid() && i.Kind.Schema().MaxMobileVisible == 0 {
		errs = append(errs, domain.FieldError{Field: "mobile_visible", Message: notSupported(i.Kind)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validatePartition(region string, kind domain.Kind) []domain.FieldError {
	var errs []domain.FieldError
	if err := domain.ValidateRegionCode(region); err != nil {
		errs = append(errs, domain.FieldError{Field: "region", Message: "must be 2 uppercase letters"})
	}
	if !kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown content type"})
	}
	return errs
}

func validateFields(kind domain.Kind, altText, objectPosition, linkURL *string) []domain.FieldError {
	var errs []domain.FieldError
	schema := kind.Schema()

	if altText != nil && len(*altText) > maxAltText {
		errs = append(errs, domain.FieldError{Field: "alt_text", Message: fmt.Sprintf("must be at most %d characters", maxAltText)})
	}

	if objectPosition != nil && *objectPosition != "" {
		switch {
		case kind.IsValid() && !schema.ObjectPosition:
			errs = append(errs, domain.FieldError{Field: "object_position", Message: notSupported(kind)})
		case len(*objectPosition) > maxObjectPosition:
			errs = append(errs, domain.FieldError{Field: "object_position", Message: fmt.Sprintf("must be at most %d characters", maxObjectPosition)})
		}
	}

	if linkURL != nil && *linkURL != "" {
		switch {
		case kind.IsValid() && !schema.LinkURL:
			errs = append(errs, domain.FieldError{Field: "link_url", Message: notSupported(kind)})
		case len(*linkURL) > maxLinkURL:
			errs = append(errs, domain.FieldError{Field: "link_url", Message: "too long"})
		case !isHTTPURL(*linkURL):
			errs = append(errs, domain.FieldError{Field: "link_url", Message: "must be an absolute http(s) URL"})
		}
	}

	return errs
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func notSupported(kind domain.Kind) string {
	return fmt.Sprintf("not supported for %s", kind)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
