// Package storage stores image binaries in an object store and hands back
// globally resolvable CDN URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

// Backend is a raw object store. Implementations: r2.Backend, memstore.Store.
// DeleteObject must succeed for keys that do not exist.
type Backend interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	DeleteObject(ctx context.Context, key string) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
}

// Object describes a stored image.
type Object struct {
	Key         string
	URL         string
	MobileURL   string
	ContentType string
	Size        int64
}

// Config holds gateway settings.
type Config struct {
	PublicBaseURL  string
	MobilePrefix   string
	MaxUploadBytes int64
}

// Gateway validates, names and stores uploads on top of a Backend.
type Gateway struct {
	backend  Backend
	baseURL  string
	mobile   string
	maxBytes int64
	now      func() time.Time
}

// NewGateway creates a Gateway.
func NewGateway(backend Backend, cfg Config) *Gateway {
	return &Gateway{
		backend:  backend,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		mobile:   "/" + strings.Trim(cfg.MobilePrefix, "/"),
		maxBytes: cfg.MaxUploadBytes,
		now:      time.Now,
	}
}

// Put sniffs data, rejects anything that is not an image, stores it under
// <prefix>/<yyyy>/<mm>/<uuid><ext> and returns the public URLs.
// Validation failures wrap domain.ErrValidation, backend failures wrap domain.ErrStorage.
func (g *Gateway) Put(ctx context.Context, prefix string, data []byte) (Object, error) {
	if len(data) == 0 {
		return Object{}, domain.NewValidationError("file", "required")
	}
	if g.maxBytes > 0 && int64(len(data)) > g.maxBytes {
		return Object{}, domain.NewValidationError("file", fmt.Sprintf("exceeds %d bytes", g.maxBytes))
	}

	mt := mimetype.Detect(data)
	contentType := mt.String()
	if !strings.HasPrefix(contentType, "image/") {
		return Object{}, domain.NewValidationError("file", fmt.Sprintf("unsupported content type %s", contentType))
	}

	key := g.newKey(prefix, mt.Extension())
	if err := g.backend.PutObject(ctx, key, data, contentType); err != nil {
		return Object{}, fmt.Errorf("%w: put %s: %v", domain.ErrStorage, key, err)
	}

	url := g.URL(key)
	return Object{
		Key:         key,
		URL:         url,
		MobileURL:   g.MobileURL(url),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

// Delete removes key. Deleting a missing key succeeds, so retries are safe.
func (g *Gateway) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := g.backend.DeleteObject(ctx, key); err != nil {
		return fmt.Errorf("%w: delete %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

// Download opens the stored binary. The caller closes the reader.
func (g *Gateway) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := g.backend.GetObject(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", domain.ErrStorage, key, err)
	}
	return rc, nil
}

// URL returns the public URL of key.
func (g *Gateway) URL(key string) string {
	return g.baseURL + "/" + strings.TrimLeft(key, "/")
}

// MobileURL derives the resized variant of a public URL through the CDN
// image-resizing prefix. URLs outside the public base are returned unchanged.
func (g *Gateway) MobileURL(url string) string {
	if url == "" || g.mobile == "/" {
		return url
	}
	rest, ok := strings.CutPrefix(url, g.baseURL+"/")
	if !ok {
		return url
	}
	return g.baseURL + g.mobile + "/" + rest
}

// KeyFromURL returns the object key for a URL under the public base.
func (g *Gateway) KeyFromURL(url string) (string, bool) {
	return strings.CutPrefix(url, g.baseURL+"/")
}

func (g *Gateway) newKey(prefix, ext string) string {
	now := g.now().UTC()
	return path.Join(
		strings.Trim(prefix, "/"),
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", int(now.Month())),
		uuid.NewString()+ext,
	)
}
