// Package settings persists user display preferences locally and keeps
// them in sync with the user-management service when it is reachable.
// Remote failures are never fatal: the local file, then the hard-coded
// defaults, always provide a value.
package settings

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"mrconsole/internal/cli/model"
)

const fileName = "user_settings.json"

// Remote is the slice of the users client the store needs. It may be nil
// for a purely local store (e.g. before login).
type Remote interface {
	GetSettings(ctx context.Context) (model.UserSettings, error)
	PutSettings(ctx context.Context, s model.UserSettings) (model.UserSettings, error)
	ResetSettings(ctx context.Context) (model.UserSettings, error)
}

// Store reads and writes the settings file and mirrors changes remotely.
type Store struct {
	path   string
	remote Remote
	log    *zap.SugaredLogger
}

func NewStore(dir string, remote Remote, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{path: filepath.Join(dir, fileName), remote: remote, log: log}
}

// Load returns the current settings: the remote copy when available
// (persisting it locally), otherwise the local file, otherwise defaults.
func (s *Store) Load(ctx context.Context) model.UserSettings {
	if s.remote != nil {
		if remote, err := s.remote.GetSettings(ctx); err == nil {
			s.persist(remote)
			return remote
		} else {
			s.log.Debugw("fetching remote settings failed, using local copy", "error", err)
		}
	}
	return s.loadLocal()
}

// Update applies a partial change on top of the current settings, pushes
// the result remotely when possible, and persists it locally either way.
func (s *Store) Update(ctx context.Context, apply func(*model.UserSettings)) model.UserSettings {
	cur := s.loadLocal()
	apply(&cur)

	if s.remote != nil {
		if synced, err := s.remote.PutSettings(ctx, cur); err == nil {
			cur = synced
		} else {
			s.log.Debugw("updating remote settings failed, keeping local copy", "error", err)
		}
	}
	s.persist(cur)
	return cur
}

// Reset restores the defaults, remotely when possible.
func (s *Store) Reset(ctx context.Context) model.UserSettings {
	cur := model.DefaultSettings()
	if s.remote != nil {
		if remote, err := s.remote.ResetSettings(ctx); err == nil {
			cur = remote
		} else {
			s.log.Debugw("resetting remote settings failed, using defaults", "error", err)
		}
	}
	s.persist(cur)
	return cur
}

func (s *Store) loadLocal() model.UserSettings {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return model.DefaultSettings()
	}
	out := model.DefaultSettings()
	if err := json.Unmarshal(b, &out); err != nil {
		s.log.Debugw("settings file unreadable, using defaults", "path", s.path, "error", err)
		return model.DefaultSettings()
	}
	return out
}

func (s *Store) persist(v model.UserSettings) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.log.Debugw("creating settings dir failed", "error", err)
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		s.log.Debugw("writing settings file failed", "error", err)
	}
}
