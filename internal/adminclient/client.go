// Package adminclient is a small typed client for the admin HTTP API, used by
// cmsctl and by end-to-end tests.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is one entry of an ordered collection as returned by the API.
type Item struct {
	ID             int64     `json:"id"`
	RegionCode     string    `json:"region_code"`
	Type           string    `json:"type"`
	R2Key          string    `json:"r2_key"`
	CDNURL         string    `json:"cdn_url"`
	CDNURLMobile   string    `json:"cdn_url_mobile"`
	Filename       string    `json:"filename"`
	AltText        string    `json:"alt_text"`
	ObjectPosition *string   `json:"object_position,omitempty"`
	LinkURL        *string   `json:"link_url,omitempty"`
	IsActive       *bool     `json:"is_active,omitempty"`
	MobileVisible  *bool     `json:"mobile_visible,omitempty"`
	DisplayOrder   int       `json:"display_order"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ActivityEntry is one audit log row.
type ActivityEntry struct {
	ID         string         `json:"id"`
	ActionType string         `json:"action_type"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	OldValues  map[string]any `json:"old_values,omitempty"`
	NewValues  map[string]any `json:"new_values,omitempty"`
	ActorID    *string        `json:"actor_id,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ActivityPage is one page of the audit log.
type ActivityPage struct {
	Logs       []ActivityEntry `json:"logs"`
	Pagination struct {
		Total   int  `json:"total"`
		Limit   int  `json:"limit"`
		Offset  int  `json:"offset"`
		HasMore bool `json:"has_more"`
	} `json:"pagination"`
}

// FieldError is a per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string       `json:"error"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("api: %d %s (%s)", e.Status, e.Message, strings.Join(parts, "; "))
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client talks to one backend. The zero value is not usable; call New.
type Client struct {
	base  string
	http  *http.Client
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sets a bearer token obtained earlier.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a Client for baseURL, e.g. "https://api.example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current bearer token.
func (c *Client) Token() string { return c.token }

// Login exchanges credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp, false); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// List returns a collection in display order.
func (c *Client) List(ctx context.Context, region, kind string) ([]Item, error) {
	var items []Item
	err := c.do(ctx, http.MethodGet, collectionPath(kind, "", region), nil, &items, false)
	return items, err
}

// Reorder replaces the order of a collection. order must list every item
// exactly once. Each call carries a fresh idempotency key.
func (c *Client) Reorder(ctx context.Context, region, kind string, order []int64) ([]Item, error) {
	var items []Item
	body := map[string][]int64{"order": order}
	err := c.do(ctx, http.MethodPost, collectionPath(kind, "/reorder", region), body, &items, true)
	return items, err
}

// SetMobileVisibility toggles a gallery item on small screens.
func (c *Client) SetMobileVisibility(ctx context.Context, region, kind string, id int64, visible bool) (*Item, error) {
	var item Item
	body := map[string]bool{"visible": visible}
	suffix := "/" + strconv.FormatInt(id, 10) + "/mobile-visibility"
	if err := c.do(ctx, http.MethodPut, collectionPath(kind, suffix, region), body, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}

// Activity returns one page of the audit log. Only super admins may call it.
func (c *Client) Activity(ctx context.Context, q url.Values) (*ActivityPage, error) {
	var page ActivityPage
	target := "/api/admin/activity-logs"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	if err := c.do(ctx, http.MethodGet, target, nil, &page, false); err != nil {
		return nil, err
	}
	return &page, nil
}

// OrderSaver adapts Reorder to the reorder widget for one collection.
func (c *Client) OrderSaver(region, kind string) *OrderSaver {
	return &OrderSaver{client: c, region: region, kind: kind}
}

// OrderSaver persists a widget's order for one region and kind.
type OrderSaver struct {
	client *Client
	region string
	kind   string
}

// SaveOrder implements reorder.Saver and returns the order the server stored.
func (s *OrderSaver) SaveOrder(ctx context.Context, ids []int64) ([]int64, error) {
	items, err := s.client.Reorder(ctx, s.region, s.kind, ids)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out, nil
}

func collectionPath(kind, suffix, region string) string {
	return "/api/admin/" + url.PathEscape(kind) + suffix + "?region=" + url.QueryEscape(region)
}

func (c *Client) do(ctx context.Context, method, target string, in, out any, idempotent bool) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if idempotent {
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
