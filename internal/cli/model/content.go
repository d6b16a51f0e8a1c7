package model

// RenderType enumerates how a content item is placed in the scene.
type RenderType string

const (
	RenderTypeImage  RenderType = "IMAGE"
	RenderTypeGround RenderType = "GROUND"
)

// Content status values as reported by the MR content service.
const (
	StatusDraft      = "draft"
	StatusProcessing = "processing"
	StatusProcessed  = "processed"
)

// KV is the tagged asset reference used by the content service
// ({"k":"original","v":"https://..."}).
type KV struct {
	K string `json:"k"`
	V string `json:"v"`
}

// ContentItem is an MR content record as returned by the content service.
// The client never owns these; it holds a cached, paginated view.
type ContentItem struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	RefID          string     `json:"ref_id"`
	RenderType     RenderType `json:"render_type"`
	HasAlpha       bool       `json:"has_alpha"`
	ImagesOriginal string     `json:"images_original,omitempty"`
	VideosOriginal string     `json:"videos_original,omitempty"`
	VideosMask     string     `json:"videos_mask,omitempty"`
	Status         string     `json:"status"`
	Scale          float64    `json:"scale,omitempty"`
	Height         float64    `json:"height,omitempty"`
	IsActive       bool       `json:"is_active,omitempty"`
	Orientation    string     `json:"orientation,omitempty"`
	OrganizationID string     `json:"organization_id,omitempty"`
	UserID         string     `json:"user_id,omitempty"`
	CreatedAt      string     `json:"created_at,omitempty"`
	UpdatedAt      string     `json:"updated_at,omitempty"`
}

// TypeLabel is the derived type string shown in list views and used by the
// client-side filter: render type plus an alpha marker.
func (c ContentItem) TypeLabel() string {
	if c.HasAlpha {
		return string(c.RenderType) + " (Alpha)"
	}
	return string(c.RenderType)
}

// ContentPage is one page of the content listing.
type ContentPage struct {
	Data       []ContentItem `json:"data"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// CreateContentRequest is the POST /mr-content payload. Images is always
// present, as an empty list when no image was uploaded.
type CreateContentRequest struct {
	Name       string     `json:"name"`
	RenderType RenderType `json:"render_type"`
	Scale      float64    `json:"scale"`
	Height     float64    `json:"height"`
	Images     []KV       `json:"images"`
	Videos     []KV       `json:"videos"`
}

// UpdateContentRequest is the PUT /mr-content/{id} payload. Unlike create,
// Images is omitted entirely when empty so the backend does not clear an
// absent image, and Status is only set when an asset URL actually changed.
type UpdateContentRequest struct {
	Name       string     `json:"name"`
	RenderType RenderType `json:"render_type"`
	HasAlpha   bool       `json:"has_alpha"`
	Status     string     `json:"status,omitempty"`
	Scale      float64    `json:"scale"`
	Height     float64    `json:"height"`
	Images     []KV       `json:"images,omitempty"`
	Videos     []KV       `json:"videos"`
}
