package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrconsole/internal/cli/model"
)

type fakeRemote struct {
	stored model.UserSettings
	fail   bool
}

func (f *fakeRemote) GetSettings(context.Context) (model.UserSettings, error) {
	if f.fail {
		return model.UserSettings{}, errors.New("backend down")
	}
	return f.stored, nil
}

func (f *fakeRemote) PutSettings(_ context.Context, s model.UserSettings) (model.UserSettings, error) {
	if f.fail {
		return model.UserSettings{}, errors.New("backend down")
	}
	f.stored = s
	return s, nil
}

func (f *fakeRemote) ResetSettings(context.Context) (model.UserSettings, error) {
	if f.fail {
		return model.UserSettings{}, errors.New("backend down")
	}
	f.stored = model.DefaultSettings()
	return f.stored, nil
}

func TestStore_LoadFallsBackToDefaults(t *testing.T) {
	st := NewStore(t.TempDir(), nil, nil)
	got := st.Load(context.Background())
	assert.Equal(t, model.DefaultSettings(), got)
}

func TestStore_UpdatePersistsLocallyWhenRemoteDown(t *testing.T) {
	dir := t.TempDir()
	remote := &fakeRemote{fail: true}
	st := NewStore(dir, remote, nil)

	got := st.Update(context.Background(), func(s *model.UserSettings) {
		s.DarkMode = true
		s.ItemsPerPage = 25
	})
	assert.True(t, got.DarkMode)
	assert.Equal(t, 25, got.ItemsPerPage)

	// a fresh store over the same dir sees the persisted local copy
	again := NewStore(dir, remote, nil).Load(context.Background())
	assert.True(t, again.DarkMode)
	assert.Equal(t, 25, again.ItemsPerPage)
}

func TestStore_RemoteCopyWinsOnLoad(t *testing.T) {
	dir := t.TempDir()
	remote := &fakeRemote{stored: model.UserSettings{
		DarkMode:           true,
		PrimaryColor:       "#222222",
		ItemsPerPage:       50,
		DefaultViewMode:    model.ViewModeList,
		EmailNotifications: false,
		InAppNotifications: true,
	}}
	st := NewStore(dir, remote, nil)

	got := st.Load(context.Background())
	assert.Equal(t, remote.stored, got)

	// remote copy is mirrored into the local file
	local := NewStore(dir, nil, nil).Load(context.Background())
	assert.Equal(t, remote.stored, local)
}

func TestStore_ResetRestoresDefaults(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir, nil, nil)

	st.Update(context.Background(), func(s *model.UserSettings) {
		s.DarkMode = true
		s.PrimaryColor = "#ff0000"
		s.DefaultViewMode = model.ViewModeList
		s.EmailNotifications = false
	})

	got := st.Reset(context.Background())
	require.Equal(t, model.DefaultSettings(), got)
	assert.False(t, got.DarkMode)
	assert.Equal(t, "#1976d2", got.PrimaryColor)
	assert.Equal(t, 10, got.ItemsPerPage)
	assert.Equal(t, model.ViewModeGrid, got.DefaultViewMode)
	assert.True(t, got.EmailNotifications)
	assert.True(t, got.InAppNotifications)
}
