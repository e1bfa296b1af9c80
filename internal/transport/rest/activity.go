package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

type activityService interface {
	List(ctx context.Context, f domain.ActivityFilter) (*domain.ActivityPage, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ActivityEntry, error)
}

// ActivityHandler serves the audit trail. Only super admins may read it.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

// List handles GET /api/admin/activity-logs with the optional filters
// action_type, entity_type, user_id, start_date, end_date, limit and offset.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseActivityFilter(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	page, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityPage(page))
}

// Get handles GET /api/admin/activity-logs/{id}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivity(*entry))
}

func parseActivityFilter(r *http.Request) (domain.ActivityFilter, error) {
	q := r.URL.Query()
	var f domain.ActivityFilter

	if v := q.Get("action_type"); v != "" {
		at := domain.ActionType(v)
		f.ActionType = &at
	}
	if v := q.Get("entity_type"); v != "" {
		et := domain.EntityType(v)
		f.EntityType = &et
	}
	if v := q.Get("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, domain.NewValidationError("user_id", "must be a UUID")
		}
		f.ActorID = &id
	}

	var err error
	if f.StartDate, err = queryTime(r, "start_date", false); err != nil {
		return f, err
	}
	if f.EndDate, err = queryTime(r, "end_date", true); err != nil {
		return f, err
	}
	if f.Limit, err = queryInt(r, "limit"); err != nil {
		return f, err
	}
	if f.Offset, err = queryInt(r, "offset"); err != nil {
		return f, err
	}
	return f, nil
}

// queryTime accepts RFC 3339 timestamps or plain dates. A plain end date
// covers the whole day.
func queryTime(r *http.Request, name string, endOfDay bool) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a date or RFC 3339 timestamp")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
