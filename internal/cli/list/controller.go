// Package list implements the content listing surface: paginated fetch
// backed by the local cache, the client-side filter, and the edit and
// guarded-delete flows.
package list

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"mrconsole/internal/cli/model"
)

// ContentAPI is the slice of the content client the controller needs.
type ContentAPI interface {
	List(ctx context.Context, page, limit int) (model.ContentPage, error)
	Get(ctx context.Context, id string) (model.ContentItem, error)
	Update(ctx context.Context, id string, req model.UpdateContentRequest) (model.ContentItem, error)
	Delete(ctx context.Context, id string) error
}

// Cache is the slice of the local content cache the controller needs.
type Cache interface {
	ReplacePage(p model.ContentPage) error
	GetPage(page int) (model.ContentPage, bool, error)
	Invalidate() error
}

// Notifier is the transient success/error notice surface (the snackbar
// analog).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Controller coordinates fetching, editing and deleting content records.
type Controller struct {
	api   ContentAPI
	cache Cache
	log   *zap.SugaredLogger
}

func NewController(api ContentAPI, cache Cache, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Controller{api: api, cache: cache, log: log}
}

// FetchPage loads one page from the backend and refreshes the cache. When
// the backend is unreachable the cached copy is served instead; the stale
// flag tells the caller which one it got.
func (c *Controller) FetchPage(ctx context.Context, page, limit int) (model.ContentPage, bool, error) {
	fresh, err := c.api.List(ctx, page, limit)
	if err == nil {
		if c.cache != nil {
			if cerr := c.cache.ReplacePage(fresh); cerr != nil {
				c.log.Debugw("caching content page failed", "page", page, "error", cerr)
			}
		}
		return fresh, false, nil
	}

	if c.cache != nil {
		if cached, ok, cerr := c.cache.GetPage(page); cerr == nil && ok {
			c.log.Debugw("serving cached content page", "page", page, "error", err)
			return cached, true, nil
		}
	}
	return model.ContentPage{}, false, err
}

// Filter applies the case-insensitive substring filter over name,
// reference id and the derived type label. It only ever sees the items of
// the currently loaded page.
func Filter(items []model.ContentItem, query string) []model.ContentItem {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	var out []model.ContentItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.RefID), q) ||
			strings.Contains(strings.ToLower(it.TypeLabel()), q) {
			out = append(out, it)
		}
	}
	return out
}
