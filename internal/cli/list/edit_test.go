package list

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrconsole/internal/cli/model"
)

func existingItem() model.ContentItem {
	return model.ContentItem{
		ID:             "c1",
		Name:           "Garden Portal",
		RenderType:     model.RenderTypeGround,
		Scale:          2,
		Height:         0.5,
		VideosOriginal: "https://cdn/orig.mp4",
		VideosMask:     "https://cdn/mask.mp4",
		Status:         model.StatusProcessed,
	}
}

func TestEditForm_PrefillsFromRecord(t *testing.T) {
	item := existingItem()
	item.ImagesOriginal = "https://cdn/img.jpg"
	f := NewEditForm(item)

	assert.Equal(t, "Garden Portal", f.Name)
	require.Len(t, f.Images(), 1)
	require.Len(t, f.Videos(), 2)
	assert.Equal(t, "original", f.Videos()[0].K)
	assert.Equal(t, "mask", f.Videos()[1].K)
}

func TestEditForm_OmitsImagesWhenNoneExist(t *testing.T) {
	f := NewEditForm(existingItem())
	req := f.BuildUpdate(existingItem())

	assert.Nil(t, req.Images, "images must be omitted, not sent as an empty list")
	assert.Empty(t, req.Status, "unchanged assets must not reset status")
}

func TestEditForm_StatusDraftOnlyWhenAssetChanged(t *testing.T) {
	existing := existingItem()

	// unchanged form: no status in the payload
	f := NewEditForm(existing)
	assert.Empty(t, f.BuildUpdate(existing).Status)

	// replacing the original video forces status back to draft
	f = NewEditForm(existing)
	f.SetOriginalVideoURL("https://cdn/orig-v2.mp4")
	req := f.BuildUpdate(existing)
	assert.Equal(t, model.StatusDraft, req.Status)

	// adding an image where none existed also counts as an asset change
	f = NewEditForm(existing)
	f.SetImageURL("https://cdn/new.jpg")
	assert.Equal(t, model.StatusDraft, f.BuildUpdate(existing).Status)

	// a name-only change never touches status
	f = NewEditForm(existing)
	f.Name = "Renamed"
	assert.Empty(t, f.BuildUpdate(existing).Status)
}

func TestEditForm_MaskReplacementKeepsOriginalEntry(t *testing.T) {
	f := NewEditForm(existingItem())
	f.SetMaskVideoURL("https://cdn/mask-v2.mp4")

	vids := f.Videos()
	require.Len(t, vids, 2)
	assert.Equal(t, "https://cdn/orig.mp4", vids[0].V)
	assert.Equal(t, "https://cdn/mask-v2.mp4", vids[1].V)
}

func TestController_SubmitEditReFetchesBeforeCompare(t *testing.T) {
	// the backend copy already carries a newer original video than the
	// record the form was opened from; comparison must run against the
	// re-fetched copy, so no status reset happens here
	backendCopy := existingItem()
	backendCopy.VideosOriginal = "https://cdn/orig-v2.mp4"

	stale := existingItem()
	f := NewEditForm(stale)
	f.SetOriginalVideoURL("https://cdn/orig-v2.mp4")

	api := &fakeAPI{getByID: map[string]model.ContentItem{"c1": backendCopy}}
	cache := &fakeCache{}
	c := NewController(api, cache, nil)

	_, err := c.SubmitEdit(context.Background(), f)
	require.NoError(t, err)

	req := api.updated["c1"]
	assert.Empty(t, req.Status, "matching the re-fetched record must not reset status")
	assert.Equal(t, 1, cache.invalidated)
}

func TestController_SubmitEditChangedAssetSetsDraft(t *testing.T) {
	api := &fakeAPI{getByID: map[string]model.ContentItem{"c1": existingItem()}}
	c := NewController(api, &fakeCache{}, nil)

	f := NewEditForm(existingItem())
	f.SetMaskVideoURL("https://cdn/mask-v2.mp4")

	_, err := c.SubmitEdit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, api.updated["c1"].Status)
}
