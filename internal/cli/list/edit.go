package list

import (
	"context"

	"mrconsole/internal/cli/model"
)

// EditForm is the prefilled edit state of one record. Newly uploaded
// assets replace their corresponding entries; the payload is assembled
// against a freshly fetched copy of the record at submit time.
type EditForm struct {
	ItemID     string
	Name       string
	RenderType model.RenderType
	Scale      float64
	Height     float64

	images []model.KV
	videos []model.KV
}

// NewEditForm prefills the form from a previously fetched record.
func NewEditForm(item model.ContentItem) *EditForm {
	f := &EditForm{
		ItemID:     item.ID,
		Name:       item.Name,
		RenderType: item.RenderType,
		Scale:      item.Scale,
		Height:     item.Height,
	}
	if f.Scale == 0 {
		f.Scale = 1.00
	}
	if item.ImagesOriginal != "" {
		f.images = []model.KV{{K: "original", V: item.ImagesOriginal}}
	}
	if item.VideosOriginal != "" {
		f.videos = append(f.videos, model.KV{K: "original", V: item.VideosOriginal})
	}
	if item.VideosMask != "" {
		f.videos = append(f.videos, model.KV{K: "mask", V: item.VideosMask})
	}
	return f
}

func (f *EditForm) Images() []model.KV { return f.images }
func (f *EditForm) Videos() []model.KV { return f.videos }

// SetImageURL replaces the image entry with a newly uploaded asset.
func (f *EditForm) SetImageURL(url string) {
	f.images = []model.KV{{K: "original", V: url}}
}

func (f *EditForm) RemoveImage() { f.images = nil }

// SetOriginalVideoURL replaces the original-video entry.
func (f *EditForm) SetOriginalVideoURL(url string) {
	f.videos = replaceKV(f.videos, "original", url)
}

// SetMaskVideoURL replaces (or adds) the mask-video entry.
func (f *EditForm) SetMaskVideoURL(url string) {
	f.videos = replaceKV(f.videos, "mask", url)
}

func (f *EditForm) RemoveMaskVideo() {
	f.videos = dropKV(f.videos, "mask")
}

func replaceKV(kvs []model.KV, key, value string) []model.KV {
	out := dropKV(kvs, key)
	return append(out, model.KV{K: key, V: value})
}

func dropKV(kvs []model.KV, key string) []model.KV {
	var out []model.KV
	for _, kv := range kvs {
		if kv.K != key {
			out = append(out, kv)
		}
	}
	return out
}

// BuildUpdate assembles the update payload against the existing record.
// Images is omitted entirely when no image exists, so the backend does
// not clear an absent asset, and status is forced back to draft only when
// some asset URL actually changed.
func (f *EditForm) BuildUpdate(existing model.ContentItem) model.UpdateContentRequest {
	req := model.UpdateContentRequest{
		Name:       f.Name,
		RenderType: f.RenderType,
		HasAlpha:   true,
		Scale:      f.Scale,
		Height:     f.Height,
		Videos:     f.videos,
	}
	if len(f.images) > 0 {
		req.Images = f.images
	}
	if f.assetsChanged(existing) {
		req.Status = model.StatusDraft
	}
	return req
}

func (f *EditForm) assetsChanged(existing model.ContentItem) bool {
	if len(f.images) > 0 {
		if existing.ImagesOriginal == "" || f.images[0].V != existing.ImagesOriginal {
			return true
		}
	}
	for _, v := range f.videos {
		switch v.K {
		case "original":
			if existing.VideosOriginal == "" || v.V != existing.VideosOriginal {
				return true
			}
		case "mask":
			if existing.VideosMask == "" || v.V != existing.VideosMask {
				return true
			}
		}
	}
	return false
}

// SubmitEdit re-fetches the record, builds the payload against that fresh
// copy and performs the update. The re-fetch guards the asset comparison
// against a stale cached record. A successful update invalidates the
// cached listing.
func (c *Controller) SubmitEdit(ctx context.Context, f *EditForm) (model.ContentItem, error) {
	existing, err := c.api.Get(ctx, f.ItemID)
	if err != nil {
		return model.ContentItem{}, err
	}
	updated, err := c.api.Update(ctx, f.ItemID, f.BuildUpdate(existing))
	if err != nil {
		return model.ContentItem{}, err
	}
	if c.cache != nil {
		if cerr := c.cache.Invalidate(); cerr != nil {
			c.log.Debugw("invalidating cache after edit failed", "error", cerr)
		}
	}
	return updated, nil
}
