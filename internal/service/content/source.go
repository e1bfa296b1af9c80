package content

import (
	"strings"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// ImageSource is where a content item's image comes from: bytes uploaded with
// the request, or an object that is already in storage.
type ImageSource interface {
	isImageSource()
	validate(field string) []domain.FieldError
}

// Upload carries raw image bytes to be stored through the gateway.
type Upload struct {
	Data     []byte
	Filename string
}

func (Upload) isImageSource() {}

func (u Upload) validate(field string) []domain.FieldError {
	if len(u.Data) == 0 {
		return []domain.FieldError{{Field: field, Message: "file is empty"}}
	}
	return nil
}

// Reference points at an object that is already stored.
type Reference struct {
	Key      string
	URL      string
	Filename string
}

func (Reference) isImageSource() {}

func (r Reference) validate(field string) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(r.Key) == "" {
		errs = append(errs, domain.FieldError{Field: field + ".r2_key", Message: "required"})
	}
	if strings.TrimSpace(r.URL) == "" {
		errs = append(errs, domain.FieldError{Field: field + ".cdn_url", Message: "required"})
	}
	return errs
}

// storedImage is a resolved source ready to be written onto a row.
type storedImage struct {
	key       string
	url       string
	mobileURL string
	filename  string
	uploaded  bool
}
