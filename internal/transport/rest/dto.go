package rest

import (
	"time"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/internal/service/public"
)

type contentItemResponse struct {
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
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toContentItem(it domain.ContentItem) contentItemResponse {
	resp := contentItemResponse{
		ID:           it.ID,
		RegionCode:   it.RegionCode,
		Type:         it.Kind.String(),
		R2Key:        it.StorageKey,
		CDNURL:       it.CDNURL,
		CDNURLMobile: it.CDNURLMobile,
		Filename:     it.Filename,
		AltText:      it.AltText,
		DisplayOrder: it.DisplayOrder,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
	schema := it.Kind.Schema()
	if schema.ObjectPosition {
		resp.ObjectPosition = &it.ObjectPosition
	}
	if schema.LinkURL {
		resp.LinkURL = &it.LinkURL
		resp.IsActive = &it.IsActive
	}
	if schema.MaxMobileVisible > 0 {
		resp.MobileVisible = &it.MobileVisible
	}
	return resp
}

func toContentItems(items []domain.ContentItem) []contentItemResponse {
	out := make([]contentItemResponse, len(items))
	for i, it := range items {
		out[i] = toContentItem(it)
	}
	return out
}

type regionResponse struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain,omitempty"`
	Route     string    `json:"route,omitempty"`
	IsActive  bool      `json:"is_active"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toRegion(r domain.Region) regionResponse {
	return regionResponse{
		Code:      r.Code,
		Name:      r.Name,
		Domain:    r.Domain,
		Route:     r.Route,
		IsActive:  r.IsActive,
		IsDefault: r.IsDefault,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toRegions(regions []domain.Region) []regionResponse {
	out := make([]regionResponse, len(regions))
	for i, r := range regions {
		out[i] = toRegion(r)
	}
	return out
}

type userResponse struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email,omitempty"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	AssignedRegions []string   `json:"assigned_regions"`
	IsActive        bool       `json:"is_active"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toUser(u *domain.User) userResponse {
	regions := u.AssignedRegions
	if regions == nil {
		regions = []string{}
	}
	return userResponse{
		ID:              u.ID.String(),
		Username:        u.Username,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role.String(),
		AssignedRegions: regions,
		IsActive:        u.IsActive,
		LastLoginAt:     u.LastLoginAt,
		CreatedAt:       u.CreatedAt,
	}
}

type activityResponse struct {
	ID         string         `json:"id"`
	ActionType string         `json:"action_type"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	OldValues  map[string]any `json:"old_values,omitempty"`
	NewValues  map[string]any `json:"new_values,omitempty"`
	ActorID    *string        `json:"actor_id,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toActivity(e domain.ActivityEntry) activityResponse {
	resp := activityResponse{
		ID:         e.ID.String(),
		ActionType: string(e.ActionType),
		EntityType: e.EntityType.String(),
		EntityID:   e.EntityID,
		OldValues:  e.OldValues,
		NewValues:  e.NewValues,
		IPAddress:  e.IPAddress,
		UserAgent:  e.UserAgent,
		CreatedAt:  e.CreatedAt,
	}
	if e.ActorID != nil {
		id := e.ActorID.String()
		resp.ActorID = &id
	}
	return resp
}

type paginationResponse struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

type activityPageResponse struct {
	Logs       []activityResponse `json:"logs"`
	Pagination paginationResponse `json:"pagination"`
}

func toActivityPage(p *domain.ActivityPage) activityPageResponse {
	logs := make([]activityResponse, len(p.Logs))
	for i, e := range p.Logs {
		logs[i] = toActivity(e)
	}
	return activityPageResponse{
		Logs: logs,
		Pagination: paginationResponse{
			Total:   p.Total,
			Limit:   p.Limit,
			Offset:  p.Offset,
			HasMore: p.Offset+len(p.Logs) < p.Total,
		},
	}
}

type pageSectionResponse struct {
	RegionCode   string    `json:"region_code"`
	Key          string    `json:"key"`
	Title        string    `json:"title"`
	BodyMarkdown string    `json:"body_markdown,omitempty"`
	BodyHTML     string    `json:"body_html"`
	UpdatedBy    *string   `json:"updated_by,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// toPageSection includes the markdown source only for the admin API.
func toPageSection(p domain.PageSection, withSource bool) pageSectionResponse {
	resp := pageSectionResponse{
		RegionCode: p.RegionCode,
		Key:        p.Key,
		Title:      p.Title,
		BodyHTML:   p.BodyHTML,
		UpdatedAt:  p.UpdatedAt,
	}
	if withSource {
		resp.BodyMarkdown = p.BodyMarkdown
		resp.UpdatedBy = p.UpdatedBy
	}
	return resp
}

func toPageSections(pages []domain.PageSection, withSource bool) []pageSectionResponse {
	out := make([]pageSectionResponse, len(pages))
	for i, p := range pages {
		out[i] = toPageSection(p, withSource)
	}
	return out
}

type homeResponse struct {
	Region  regionResponse                 `json:"region"`
	Slider  []contentItemResponse          `json:"slider"`
	Gallery []contentItemResponse          `json:"gallery"`
	Logos   []contentItemResponse          `json:"logos"`
	Pages   map[string]pageSectionResponse `json:"pages"`
}

func toHome(h *public.Home) homeResponse {
	pages := make(map[string]pageSectionResponse, len(h.Pages))
	for _, p := range h.Pages {
		pages[p.Key] = toPageSection(p, false)
	}
	return homeResponse{
		Region:  toRegion(h.Region),
		Slider:  toContentItems(h.Slider),
		Gallery: toContentItems(h.Gallery),
		Logos:   toContentItems(h.Logos),
		Pages:   pages,
	}
}
