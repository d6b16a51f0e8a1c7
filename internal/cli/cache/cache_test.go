package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrconsole/internal/cli/model"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	st, _, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.Migrate())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func samplePage() model.ContentPage {
	return model.ContentPage{
		Page:       1,
		PageSize:   6,
		Total:      2,
		TotalPages: 1,
		Data: []model.ContentItem{
			{ID: "c1", Name: "Alpha Scene", RefID: "ref-1", RenderType: model.RenderTypeGround, HasAlpha: true, Status: model.StatusProcessed, VideosOriginal: "https://cdn/o1.mp4", Scale: 1.5},
			{ID: "c2", Name: "Beta Scene", RefID: "ref-2", RenderType: model.RenderTypeImage, Status: model.StatusDraft, VideosOriginal: "https://cdn/o2.mp4", VideosMask: "https://cdn/m2.mp4"},
		},
	}
}

func TestStore_ReplaceAndGetPage(t *testing.T) {
	st := openStore(t)
	require.NoError(t, st.ReplacePage(samplePage()))

	got, ok, err := st.GetPage(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, got.Total)
	require.Len(t, got.Data, 2)
	assert.Equal(t, "Alpha Scene", got.Data[0].Name)
	assert.True(t, got.Data[0].HasAlpha)
	assert.Equal(t, model.RenderTypeImage, got.Data[1].RenderType)
	assert.Equal(t, "https://cdn/m2.mp4", got.Data[1].VideosMask)
}

func TestStore_ReplacePageOverwrites(t *testing.T) {
	st := openStore(t)
	require.NoError(t, st.ReplacePage(samplePage()))

	fresh := samplePage()
	fresh.Data = fresh.Data[:1]
	fresh.Total = 1
	require.NoError(t, st.ReplacePage(fresh))

	got, ok, err := st.GetPage(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got.Data, 1)
	assert.Equal(t, 1, got.Total)
}

func TestStore_GetPageMissing(t *testing.T) {
	st := openStore(t)
	_, ok, err := st.GetPage(3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Invalidate(t *testing.T) {
	st := openStore(t)
	require.NoError(t, st.ReplacePage(samplePage()))
	require.NoError(t, st.Invalidate())

	_, ok, err := st.GetPage(1)
	require.NoError(t, err)
	assert.False(t, ok)
}
