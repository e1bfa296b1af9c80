package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/internal/service/content"
)

type contentService interface {
	List(ctx context.Context, region string, kind domain.Kind) ([]domain.ContentItem, error)
	Get(ctx context.Context, region string, kind domain.Kind, id int64) (*domain.ContentItem, error)
	Create(ctx context.Context, input content.CreateInput) (*domain.ContentItem, error)
	Update(ctx context.Context, input content.UpdateInput) (*domain.ContentItem, error)
	Delete(ctx context.Context, region string, kind domain.Kind, id int64) error
	Reorder(ctx context.Context, input content.ReorderInput) ([]domain.ContentItem, error)
	SetMobileVisibility(ctx context.Context, input content.MobileVisibilityInput) (*domain.ContentItem, error)
	OpenImage(ctx context.Context, key string) (io.ReadCloser, error)
}

// ContentHandler serves the admin endpoints of every ordered collection.
// The collection is taken from the {kind} path segment.
type ContentHandler struct {
	svc       contentService
	maxUpload int64
	log       *slog.Logger
}

// NewContentHandler creates a ContentHandler. maxUpload bounds multipart
// request bodies.
func NewContentHandler(svc contentService, maxUpload int64, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, maxUpload: maxUpload, log: logger.With("handler", "content")}
}

// contentRequest is the JSON form of create and update. An r2_key selects
// an already stored object.
type contentRequest struct {
	R2Key          *string `json:"r2_key"`
	CDNURL         string  `json:"cdn_url"`
	Filename       string  `json:"filename"`
	AltText        *string `json:"alt_text"`
	ObjectPosition *string `json:"object_position"`
	LinkURL        *string `json:"link_url"`
	IsActive       *bool   `json:"is_active"`
	MobileVisible  *bool   `json:"mobile_visible"`
}

type reorderRequest struct {
	Order []int64 `json:"order"`
}

type mobileVisibilityRequest struct {
	Visible *bool `json:"visible"`
}

// List handles GET /api/admin/{kind}?region=CC.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, err := h.svc.List(r.Context(), r.URL.Query().Get("region"), kind)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentItems(items))
}

// Get handles GET /api/admin/{kind}/{id}?region=CC.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, id, err := kindAndID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Get(r.Context(), r.URL.Query().Get("region"), kind, id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentItem(*item))
}

// Create handles POST /api/admin/{kind}?region=CC with either a multipart
// upload (file field "file") or a JSON reference to a stored object.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	req, source, err := h.readContentRequest(w, r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Create(r.Context(), content.CreateInput{
		Region:         r.URL.Query().Get("region"),
		Kind:           kind,
		Source:         source,
		AltText:        deref(req.AltText),
		ObjectPosition: deref(req.ObjectPosition),
		LinkURL:        deref(req.LinkURL),
		IsActive:       req.IsActive,
		MobileVisible:  req.MobileVisible,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContentItem(*item))
}

// Update handles PUT /api/admin/{kind}/{id}?region=CC. Omitted fields are
// left unchanged; omitting the image keeps the current one.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind, id, err := kindAndID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	req, source, err := h.readContentRequest(w, r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if req.MobileVisible != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("mobile_visible", "use the mobile-visibility endpoint"))
		return
	}

	item, err := h.svc.Update(r.Context(), content.UpdateInput{
		Region:         r.URL.Query().Get("region"),
		Kind:           kind,
		ID:             id,
		Source:         source,
		AltText:        req.AltText,
		ObjectPosition: req.ObjectPosition,
		LinkURL:        req.LinkURL,
		IsActive:       req.IsActive,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentItem(*item))
}

// Delete handles DELETE /api/admin/{kind}/{id}?region=CC. What delete means
// depends on the collection: slides are removed, gallery cells are cleared,
// logos are deactivated.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, id, err := kindAndID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), r.URL.Query().Get("region"), kind, id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles POST /api/admin/{kind}/reorder?region=CC {order:[ids]}.
func (h *ContentHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, err := h.svc.Reorder(r.Context(), content.ReorderInput{
		Region: r.URL.Query().Get("region"),
		Kind:   kind,
		Order:  req.Order,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentItems(items))
}

// MobileVisibility handles PUT /api/admin/{kind}/{id}/mobile-visibility?region=CC {visible}.
func (h *ContentHandler) MobileVisibility(w http.ResponseWriter, r *http.Request) {
	kind, id, err := kindAndID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req mobileVisibilityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if req.Visible == nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("visible", "required"))
		return
	}

	item, err := h.svc.SetMobileVisibility(r.Context(), content.MobileVisibilityInput{
		Region:  r.URL.Query().Get("region"),
		Kind:    kind,
		ID:      id,
		Visible: *req.Visible,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentItem(*item))
}

// Image handles GET /api/admin/images?key=... and streams the original.
func (h *ContentHandler) Image(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	rc, err := h.svc.OpenImage(r.Context(), key)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	defer rc.Close()

	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(key)}))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.log.WarnContext(r.Context(), "image stream interrupted", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// readContentRequest resolves the image source once: a multipart file is an
// Upload, a JSON r2_key is a Reference, neither leaves the source nil.
func (h *ContentHandler) readContentRequest(w http.ResponseWriter, r *http.Request) (contentRequest, content.ImageSource, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		return h.readMultipart(w, r)
	}

	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return contentRequest{}, nil, err
	}
	var source content.ImageSource
	if req.R2Key != nil {
		source = content.Reference{Key: *req.R2Key, URL: req.CDNURL, Filename: req.Filename}
	}
	return req, source, nil
}

func (h *ContentHandler) readMultipart(w http.ResponseWriter, r *http.Request) (contentRequest, content.ImageSource, error) {
	const formOverhead = 1 << 20
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+formOverhead)
	if err := r.ParseMultipartForm(formOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return contentRequest{}, nil, domain.NewValidationError("file", "exceeds the upload limit")
		}
		return contentRequest{}, nil, domain.NewValidationError("body", "invalid multipart form")
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	req := contentRequest{
		AltText:        formString(r, "alt_text"),
		ObjectPosition: formString(r, "object_position"),
		LinkURL:        formString(r, "link_url"),
	}
	var err error
	if req.IsActive, err = formBool(r, "is_active"); err != nil {
		return contentRequest{}, nil, err
	}
	if req.MobileVisible, err = formBool(r, "mobile_visible"); err != nil {
		return contentRequest{}, nil, err
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, nil
	}
	if err != nil {
		return contentRequest{}, nil, domain.NewValidationError("file", "cannot read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload+1))
	if err != nil {
		return contentRequest{}, nil, domain.NewValidationError("file", "cannot read upload")
	}
	return req, content.Upload{Data: data, Filename: header.Filename}, nil
}

func kindAndID(r *http.Request) (domain.Kind, int64, error) {
	kind, err := domain.ParseKind(r.PathValue("kind"))
	if err != nil {
		return "", 0, err
	}
	id, err := pathID(r)
	if err != nil {
		return "", 0, err
	}
	return kind, id, nil
}

func formString(r *http.Request, name string) *string {
	if _, ok := r.MultipartForm.Value[name]; !ok {
		return nil
	}
	v := r.FormValue(name)
	return &v
}

func formBool(r *http.Request, name string) (*bool, error) {
	s := formString(r, name)
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(*s)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a boolean")
	}
	return &b, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
