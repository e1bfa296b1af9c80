package domain

import (
	"fmt"
	"time"
)

// Kind is the content collection a ContentItem belongs to.
type Kind string

const (
	KindSlider  Kind = "slider"
	KindGallery Kind = "gallery"
	KindLogo    Kind = "logo"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindSlider, KindGallery, KindLogo:
		return true
	}
	return false
}

// ParseKind maps a URL segment ("slider", "gallery", "logos") to a Kind.
func ParseKind(segment string) (Kind, error) {
	switch segment {
	case "slider":
		return KindSlider, nil
	case "gallery":
		return KindGallery, nil
	case "logos", "logo":
		return KindLogo, nil
	}
	return "", NewValidationError("type", fmt.Sprintf("unknown content type %q", segment))
}

// Segment returns the plural URL segment used by the HTTP API.
func (k Kind) Segment() string {
	if k == KindLogo {
		return "logos"
	}
	return string(k)
}

// DeletePolicy decides what "delete" means for a collection.
type DeletePolicy int

const (
	// DeleteHard removes the row and compacts the remaining display orders.
	DeleteHard DeletePolicy = iota
	// DeleteClear empties the image fields but keeps the row and its position.
	DeleteClear
	// DeleteDeactivate sets is_active=false and keeps the stored object.
	DeleteDeactivate
)

func (p DeletePolicy) String() string {
	switch p {
	case DeleteHard:
		return "hard"
	case DeleteClear:
		return "clear"
	case DeleteDeactivate:
		return "deactivate"
	}
	return "unknown"
}

// KindSchema configures the single generic collection for one Kind.
type KindSchema struct {
	Kind             Kind
	Entity           EntityType
	Delete           DeletePolicy
	MaxMobileVisible int // 0 when the kind has no mobile subset
	ObjectPosition   bool
	LinkURL          bool
	StoragePrefix    string
}

var schemas = map[Kind]KindSchema{
	KindSlider: {
		Kind:           KindSlider,
		Entity:         EntityTypeSliderImage,
		Delete:         DeleteHard,
		ObjectPosition: true,
		StoragePrefix:  "slider",
	},
	KindGallery: {
		Kind:             KindGallery,
		Entity:           EntityTypeGalleryImage,
		Delete:           DeleteClear,
		MaxMobileVisible: MaxGalleryMobileVisible,
		StoragePrefix:    "gallery",
	},
	KindLogo: {
		Kind:          KindLogo,
		Entity:        EntityTypeClientLogo,
		Delete:        DeleteDeactivate,
		LinkURL:       true,
		StoragePrefix: "logos",
	},
}

// MaxGalleryMobileVisible caps the gallery items shown on small screens per region.
const MaxGalleryMobileVisible = 10

// Schema returns the collection schema for k. Unknown kinds get a zero schema.
func (k Kind) Schema() KindSchema {
	return schemas[k]
}

// Kinds lists every managed collection in render order of the public home page.
func Kinds() []Kind {
	return []Kind{KindSlider, KindGallery, KindLogo}
}

// ContentItem is one ordered, region-scoped asset: a slide, a gallery image or a client logo.
type ContentItem struct {
	ID             int64
	RegionCode     string
	Kind           Kind
	StorageKey     string
	CDNURL         string
	CDNURLMobile   string
	Filename       string
	AltText        string
	ObjectPosition string
	LinkURL        string
	DisplayOrder   int
	MobileVisible  bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsEmpty reports whether the item is a cleared placeholder slot.
func (c ContentItem) IsEmpty() bool {
	return c.StorageKey == ""
}

// Snapshot returns the fields recorded in activity log before/after values.
func (c ContentItem) Snapshot() map[string]any {
	m := map[string]any{
		"id":            c.ID,
		"region_code":   c.RegionCode,
		"storage_key":   c.StorageKey,
		"cdn_url":       c.CDNURL,
		"filename":      c.Filename,
		"alt_text":      c.AltText,
		"display_order": c.DisplayOrder,
	}
	schema := c.Kind.Schema()
	if schema.ObjectPosition {
		m["object_position"] = c.ObjectPosition
	}
	if schema.LinkURL {
		m["link_url"] = c.LinkURL
		m["is_active"] = c.IsActive
	}
	if schema.MaxMobileVisible > 0 {
		m["mobile_visible"] = c.MobileVisible
	}
	return m
}

// OrderOf returns the IDs of items in their current slice order.
func OrderOf(items []ContentItem) []int64 {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// ValidatePermutation checks that order contains exactly the IDs in current,
// each once. Missing, foreign and duplicated IDs are all reported as field errors.
func ValidatePermutation(current, order []int64) error {
	existing := make(map[int64]bool, len(current))
	for _, id := range current {
		existing[id] = true
	}

	var errs []FieldError
	seen := make(map[int64]bool, len(order))
	for _, id := range order {
		if seen[id] {
			errs = append(errs, FieldError{Field: "order", Message: fmt.Sprintf("duplicate id %d", id)})
			continue
		}
		seen[id] = true
		if !existing[id] {
			errs = append(errs, FieldError{Field: "order", Message: fmt.Sprintf("id %d does not belong to this collection", id)})
		}
	}
	for _, id := range current {
		if !seen[id] {
			errs = append(errs, FieldError{Field: "order", Message: fmt.Sprintf("id %d is missing", id)})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ContentFilter narrows a partition listing.
type ContentFilter struct {
	ActiveOnly   bool
	NonEmptyOnly bool
	MobileOnly   bool
}
