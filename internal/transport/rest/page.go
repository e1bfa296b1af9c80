package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/internal/service/page"
)

type pageService interface {
	List(ctx context.Context, region string) ([]domain.PageSection, error)
	Get(ctx context.Context, region, key string) (*domain.PageSection, error)
	Upsert(ctx context.Context, input page.UpsertInput) (*domain.PageSection, error)
	Delete(ctx context.Context, region, key string) error
}

// PageHandler serves the editable text sections of a region.
type PageHandler struct {
	svc pageService
	log *slog.Logger
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(svc pageService, logger *slog.Logger) *PageHandler {
	return &PageHandler{svc: svc, log: logger.With("handler", "page")}
}

type upsertPageRequest struct {
	Title string `json:"title"`
	Body  string `json:"body_markdown"`
}

// List handles GET /api/admin/pages?region=CC.
func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.List(r.Context(), r.URL.Query().Get("region"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageSections(pages, true))
}

// Get handles GET /api/admin/pages/{key}?region=CC.
func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), r.URL.Query().Get("region"), r.PathValue("key"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageSection(*p, true))
}

// Upsert handles PUT /api/admin/pages/{key}?region=CC.
func (h *PageHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertPageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Upsert(r.Context(), page.UpsertInput{
		Region: r.URL.Query().Get("region"),
		Key:    r.PathValue("key"),
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageSection(*p, true))
}

// Delete handles DELETE /api/admin/pages/{key}?region=CC.
func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.URL.Query().Get("region"), r.PathValue("key")); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
