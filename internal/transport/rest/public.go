package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/internal/service/public"
)

type publicService interface {
	Regions(ctx context.Context) ([]domain.Region, error)
	Resolve(ctx context.Context, host, path string) (*domain.Region, error)
	Items(ctx context.Context, region string, kind domain.Kind, mobileOnly bool) ([]domain.ContentItem, error)
	Pages(ctx context.Context, region string) ([]domain.PageSection, error)
	Home(ctx context.Context, region string, mobileOnly bool) (*public.Home, error)
}

// PublicHandler serves the unauthenticated read API used by the regional
// sites. Responses may be cached by intermediaries for a short time.
type PublicHandler struct {
	svc    publicService
	maxAge int
	log    *slog.Logger
}

// NewPublicHandler creates a PublicHandler. maxAge is the Cache-Control
// max-age in seconds; zero disables the header.
func NewPublicHandler(svc publicService, maxAge int, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, maxAge: maxAge, log: logger.With("handler", "public")}
}

// Regions handles GET /api/public/regions.
func (h *PublicHandler) Regions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.svc.Regions(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.cacheable(w)
	writeJSON(w, http.StatusOK, toRegions(regions))
}

// Resolve handles GET /api/public/resolve?host=&path=. Without a host
// parameter the request's own Host header is used.
func (h *PublicHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	host := r.URL.Query().Get("host")
	if host == "" {
		host = r.Host
	}

	reg, err := h.svc.Resolve(r.Context(), host, r.URL.Query().Get("path"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.cacheable(w)
	writeJSON(w, http.StatusOK, toRegion(*reg))
}

// Items handles GET /api/public/{region}/{kind}?mobile=true.
func (h *PublicHandler) Items(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, err := h.svc.Items(r.Context(), r.PathValue("region"), kind, queryBool(r, "mobile"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.cacheable(w)
	writeJSON(w, http.StatusOK, toContentItems(items))
}

// Pages handles GET /api/public/{region}/pages.
func (h *PublicHandler) Pages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.Pages(r.Context(), r.PathValue("region"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.cacheable(w)
	writeJSON(w, http.StatusOK, toPageSections(pages, false))
}

// Home handles GET /api/public/{region}/home?mobile=true.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.svc.Home(r.Context(), r.PathValue("region"), queryBool(r, "mobile"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.cacheable(w)
	writeJSON(w, http.StatusOK, toHome(home))
}

func (h *PublicHandler) cacheable(w http.ResponseWriter) {
	if h.maxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.maxAge))
	}
}
