package api

import (
	"context"
	"fmt"
	"net/http"

	"mrconsole/internal/cli/model"
)

// ContentClient talks to the MR content service.
type ContentClient struct {
	c *Client
}

func NewContentClient(c *Client) *ContentClient {
	return &ContentClient{c: c}
}

// List fetches one page of content records.
func (cc *ContentClient) List(ctx context.Context, page, limit int) (model.ContentPage, error) {
	var out model.ContentPage
	path := fmt.Sprintf("/mr-content?page=%d&limit=%d", page, limit)
	err := cc.c.doJSON(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Get fetches a single record. Unlike create, the item comes back bare.
func (cc *ContentClient) Get(ctx context.Context, id string) (model.ContentItem, error) {
	var out model.ContentItem
	err := cc.c.doJSON(ctx, http.MethodGet, "/mr-content/"+id, nil, &out)
	return out, err
}

// Create posts a new content record and returns the created item, which
// the service wraps in a data envelope.
func (cc *ContentClient) Create(ctx context.Context, req model.CreateContentRequest) (model.ContentItem, error) {
	var out struct {
		Data model.ContentItem `json:"data"`
	}
	err := cc.c.doJSON(ctx, http.MethodPost, "/mr-content", req, &out)
	return out.Data, err
}

// Update replaces a record's mutable fields.
func (cc *ContentClient) Update(ctx context.Context, id string, req model.UpdateContentRequest) (model.ContentItem, error) {
	var out model.ContentItem
	err := cc.c.doJSON(ctx, http.MethodPut, "/mr-content/"+id, req, &out)
	return out, err
}

// Delete removes a record.
func (cc *ContentClient) Delete(ctx context.Context, id string) error {
	return cc.c.doJSON(ctx, http.MethodDelete, "/mr-content/"+id, nil, nil)
}
