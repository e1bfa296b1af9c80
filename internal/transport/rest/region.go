package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/internal/service/region"
)

type regionService interface {
	List(ctx context.Context) ([]domain.Region, error)
	Get(ctx context.Context, code string) (*domain.Region, error)
	Create(ctx context.Context, input region.CreateInput) (*domain.Region, error)
	Update(ctx context.Context, input region.UpdateInput) (*domain.Region, error)
	Delete(ctx context.Context, code string) (*domain.Region, error)
}

// RegionHandler serves region administration.
type RegionHandler struct {
	svc regionService
	log *slog.Logger
}

// NewRegionHandler creates a RegionHandler.
func NewRegionHandler(svc regionService, logger *slog.Logger) *RegionHandler {
	return &RegionHandler{svc: svc, log: logger.With("handler", "region")}
}

type createRegionRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Domain    string `json:"domain"`
	Route     string `json:"route"`
	IsActive  *bool  `json:"is_active"`
	IsDefault bool   `json:"is_default"`
}

type updateRegionRequest struct {
	Name      *string `json:"name"`
	Domain    *string `json:"domain"`
	Route     *string `json:"route"`
	IsActive  *bool   `json:"is_active"`
	IsDefault *bool   `json:"is_default"`
}

// List handles GET /api/admin/regions. Admins only see their own regions.
func (h *RegionHandler) List(w http.ResponseWriter, r *http.Request) {
	regions, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegions(regions))
}

// Get handles GET /api/admin/regions/{code}.
func (h *RegionHandler) Get(w http.ResponseWriter, r *http.Request) {
	reg, err := h.svc.Get(r.Context(), r.PathValue("code"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegion(*reg))
}

// Create handles POST /api/admin/regions.
func (h *RegionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRegionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	reg, err := h.svc.Create(r.Context(), region.CreateInput{
		Code:      req.Code,
		Name:      req.Name,
		Domain:    req.Domain,
		Route:     req.Route,
		IsActive:  req.IsActive,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRegion(*reg))
}

// Update handles PUT /api/admin/regions/{code}.
func (h *RegionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRegionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	reg, err := h.svc.Update(r.Context(), region.UpdateInput{
		Code:      r.PathValue("code"),
		Name:      req.Name,
		Domain:    req.Domain,
		Route:     req.Route,
		IsActive:  req.IsActive,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegion(*reg))
}

// Delete handles DELETE /api/admin/regions/{code}. Regions are deactivated,
// not removed, so the response carries the updated region.
func (h *RegionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reg, err := h.svc.Delete(r.Context(), r.PathValue("code"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegion(*reg))
}
