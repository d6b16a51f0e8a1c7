// Package cache keeps the client-held, paginated view of the content
// listing in a local SQLite database. The backend owns the records; this
// is only the last fetched copy, refreshed on every successful list call
// and dropped wholesale when a mutation invalidates it.
package cache

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mrconsole/internal/cli/model"
)

// Store wraps the cache database.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the cache DB under dir. The second
// return value is the database path.
func Open(dir string) (*Store, string, error) {
	if dir == "" {
		return nil, "", errors.New("empty cache dir")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "content_cache.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &Store{db: db}, dbPath, nil
}

// Close closes the underlying DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate ensures the required tables exist.
func (s *Store) Migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS contents (
  id TEXT PRIMARY KEY,
  page INTEGER NOT NULL,
  pos INTEGER NOT NULL,
  name TEXT NOT NULL,
  ref_id TEXT NOT NULL,
  render_type TEXT NOT NULL,
  has_alpha INTEGER NOT NULL DEFAULT 0,
  images_original TEXT NOT NULL DEFAULT '',
  videos_original TEXT NOT NULL DEFAULT '',
  videos_mask TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL,
  scale REAL NOT NULL DEFAULT 0,
  height REAL NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_contents_page_pos ON contents(page, pos);
CREATE TABLE IF NOT EXISTS pages (
  page INTEGER PRIMARY KEY,
  page_size INTEGER NOT NULL,
  total INTEGER NOT NULL,
  total_pages INTEGER NOT NULL,
  fetched_at INTEGER NOT NULL
);
`
	_, err := s.db.Exec(ddl)
	return err
}

// ReplacePage swaps the cached copy of one page for a freshly fetched one.
func (s *Store) ReplacePage(p model.ContentPage) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM contents WHERE page = ?`, p.Page); err != nil {
		return err
	}
	for i, it := range p.Data {
		_, err := tx.Exec(`INSERT OR REPLACE INTO contents(
            id, page, pos, name, ref_id, render_type, has_alpha,
            images_original, videos_original, videos_mask, status, scale, height, created_at
        ) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, p.Page, i, it.Name, it.RefID, string(it.RenderType), boolInt(it.HasAlpha),
			it.ImagesOriginal, it.VideosOriginal, it.VideosMask, it.Status, it.Scale, it.Height, it.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	_, err = tx.Exec(`INSERT OR REPLACE INTO pages(page, page_size, total, total_pages, fetched_at) VALUES(?, ?, ?, ?, ?)`,
		p.Page, p.PageSize, p.Total, p.TotalPages, time.Now().Unix())
	if err != nil {
		return err
	}
	return tx.Commit()
}

// GetPage returns the cached copy of one page, when present.
func (s *Store) GetPage(page int) (model.ContentPage, bool, error) {
	var out model.ContentPage
	err := s.db.QueryRow(`SELECT page, page_size, total, total_pages FROM pages WHERE page = ?`, page).
		Scan(&out.Page, &out.PageSize, &out.Total, &out.TotalPages)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ContentPage{}, false, nil
	}
	if err != nil {
		return model.ContentPage{}, false, err
	}

	rows, err := s.db.Query(`SELECT id, name, ref_id, render_type, has_alpha,
        images_original, videos_original, videos_mask, status, scale, height, created_at
        FROM contents WHERE page = ? ORDER BY pos`, page)
	if err != nil {
		return model.ContentPage{}, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var it model.ContentItem
		var rt string
		var alpha int
		if err := rows.Scan(&it.ID, &it.Name, &it.RefID, &rt, &alpha,
			&it.ImagesOriginal, &it.VideosOriginal, &it.VideosMask, &it.Status, &it.Scale, &it.Height, &it.CreatedAt); err != nil {
			return model.ContentPage{}, false, err
		}
		it.RenderType = model.RenderType(rt)
		it.HasAlpha = alpha != 0
		out.Data = append(out.Data, it)
	}
	if err := rows.Err(); err != nil {
		return model.ContentPage{}, false, err
	}
	return out, true, nil
}

// Invalidate drops every cached page. Called after delete and update
// mutations so the next fetch repopulates from the backend.
func (s *Store) Invalidate() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`DELETE FROM contents`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM pages`); err != nil {
		return err
	}
	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
