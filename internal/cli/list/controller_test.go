package list

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrconsole/internal/cli/model"
)

type fakeAPI struct {
	page      model.ContentPage
	listErr   error
	getByID   map[string]model.ContentItem
	getErr    error
	updated   map[string]model.UpdateContentRequest
	updateErr error
	deleted   []string
	deleteErr error
}

func (f *fakeAPI) List(context.Context, int, int) (model.ContentPage, error) {
	return f.page, f.listErr
}

func (f *fakeAPI) Get(_ context.Context, id string) (model.ContentItem, error) {
	if f.getErr != nil {
		return model.ContentItem{}, f.getErr
	}
	return f.getByID[id], nil
}

func (f *fakeAPI) Update(_ context.Context, id string, req model.UpdateContentRequest) (model.ContentItem, error) {
	if f.updated == nil {
		f.updated = map[string]model.UpdateContentRequest{}
	}
	f.updated[id] = req
	return model.ContentItem{ID: id}, f.updateErr
}

func (f *fakeAPI) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCache struct {
	pages       map[int]model.ContentPage
	invalidated int
}

func (f *fakeCache) ReplacePage(p model.ContentPage) error {
	if f.pages == nil {
		f.pages = map[int]model.ContentPage{}
	}
	f.pages[p.Page] = p
	return nil
}

func (f *fakeCache) GetPage(page int) (model.ContentPage, bool, error) {
	p, ok := f.pages[page]
	return p, ok, nil
}

func (f *fakeCache) Invalidate() error {
	f.invalidated++
	f.pages = nil
	return nil
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (f *fakeNotifier) Success(msg string) { f.successes = append(f.successes, msg) }
func (f *fakeNotifier) Error(msg string)   { f.errors = append(f.errors, msg) }

func sampleItems() []model.ContentItem {
	return []model.ContentItem{
		{ID: "c1", Name: "Garden Portal", RefID: "ref-garden", RenderType: model.RenderTypeGround, HasAlpha: true},
		{ID: "c2", Name: "Lobby Mural", RefID: "ref-lobby", RenderType: model.RenderTypeImage},
		{ID: "c3", Name: "Night Demo", RefID: "ref-night", RenderType: model.RenderTypeGround},
	}
}

func TestController_FetchPageRefreshesCache(t *testing.T) {
	api := &fakeAPI{page: model.ContentPage{Page: 1, Data: sampleItems(), Total: 3}}
	cache := &fakeCache{}
	c := NewController(api, cache, nil)

	got, stale, err := c.FetchPage(context.Background(), 1, 6)
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Len(t, got.Data, 3)
	assert.Len(t, cache.pages[1].Data, 3)
}

func TestController_FetchPageFallsBackToCache(t *testing.T) {
	cache := &fakeCache{}
	require.NoError(t, cache.ReplacePage(model.ContentPage{Page: 1, Data: sampleItems()}))
	api := &fakeAPI{listErr: errors.New("connection refused")}
	c := NewController(api, cache, nil)

	got, stale, err := c.FetchPage(context.Background(), 1, 6)
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Len(t, got.Data, 3)
}

func TestController_FetchPageErrorWithoutCache(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("connection refused")}
	c := NewController(api, &fakeCache{}, nil)

	_, _, err := c.FetchPage(context.Background(), 2, 6)
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	items := sampleItems()

	assert.Len(t, Filter(items, ""), 3)
	assert.Len(t, Filter(items, "garden"), 1)       // by name
	assert.Len(t, Filter(items, "REF-LOBBY"), 1)    // by ref id, case-insensitive
	assert.Len(t, Filter(items, "alpha"), 1)        // by derived type label
	assert.Len(t, Filter(items, "ground"), 2)       // type label matches both ground items
	assert.Empty(t, Filter(items, "nonexistent"))
}

func TestDeleteDialog_GuardsCallThrough(t *testing.T) {
	api := &fakeAPI{}
	cache := &fakeCache{}
	require.NoError(t, cache.ReplacePage(model.ContentPage{Page: 1, Data: sampleItems()}))
	c := NewController(api, cache, nil)
	n := &fakeNotifier{}

	d := NewDeleteDialog("c1", "Garden Portal")
	d.SetTyped("delete")
	err := c.ConfirmDelete(context.Background(), d, n)
	require.ErrorIs(t, err, ErrConfirmationMismatch)
	assert.Empty(t, api.deleted, "no delete call without the exact literal")
	assert.True(t, d.Open())

	d.SetTyped("DELETE")
	require.NoError(t, c.ConfirmDelete(context.Background(), d, n))
	assert.Equal(t, []string{"c1"}, api.deleted)
	assert.False(t, d.Open())
	assert.Equal(t, 1, cache.invalidated)
	assert.Len(t, n.successes, 1)
}

func TestDeleteDialog_FailureLeavesDialogOpen(t *testing.T) {
	api := &fakeAPI{deleteErr: errors.New("record is referenced")}
	c := NewController(api, &fakeCache{}, nil)
	n := &fakeNotifier{}

	d := NewDeleteDialog("c1", "Garden Portal")
	d.SetTyped(DeleteConfirmLiteral)
	err := c.ConfirmDelete(context.Background(), d, n)
	require.Error(t, err)
	assert.True(t, d.Open())
	assert.Len(t, n.errors, 1)
}
