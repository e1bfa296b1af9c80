package domain

// UserRole represents the authorization level of an admin account.
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleSuperAdmin:
		return true
	}
	return false
}

func (r UserRole) IsSuperAdmin() bool {
	return r == UserRoleSuperAdmin
}

// ActionType classifies an activity log entry.
type ActionType string

const (
	ActionLoginSuccess   ActionType = "login_success"
	ActionLoginFailed    ActionType = "login_failed"
	ActionLogout         ActionType = "logout"
	ActionContentCreate  ActionType = "content_create"
	ActionContentUpdate  ActionType = "content_update"
	ActionContentDelete  ActionType = "content_delete"
	ActionContentReorder ActionType = "content_reorder"
	ActionUserCreate     ActionType = "user_create"
	ActionUserUpdate     ActionType = "user_update"
	ActionUserDelete     ActionType = "user_delete"
	ActionImageUpload    ActionType = "image_upload"
	ActionImageDelete    ActionType = "image_delete"
	ActionRegionCreate   ActionType = "region_create"
	ActionRegionUpdate   ActionType = "region_update"
	ActionRegionDelete   ActionType = "region_delete"
)

func (a ActionType) String() string { return string(a) }

func (a ActionType) IsValid() bool {
	switch a {
	case ActionLoginSuccess, ActionLoginFailed, ActionLogout,
		ActionContentCreate, ActionContentUpdate, ActionContentDelete, ActionContentReorder,
		ActionUserCreate, ActionUserUpdate, ActionUserDelete,
		ActionImageUpload, ActionImageDelete,
		ActionRegionCreate, ActionRegionUpdate, ActionRegionDelete:
		return true
	}
	return false
}

// EntityType identifies the kind of entity an activity entry refers to.
type EntityType string

const (
	EntityTypeSliderImage  EntityType = "slider_image"
	EntityTypeGalleryImage EntityType = "gallery_image"
	EntityTypeClientLogo   EntityType = "client_logo"
	EntityTypePageSection  EntityType = "page_section"
	EntityTypeRegion       EntityType = "region"
	EntityTypeUser         EntityType = "user"
	EntityTypeImage        EntityType = "image"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeSliderImage, EntityTypeGalleryImage, EntityTypeClientLogo,
		EntityTypePageSection, EntityTypeRegion, EntityTypeUser, EntityTypeImage:
		return true
	}
	return false
}
