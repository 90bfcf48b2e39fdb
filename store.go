package unisite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Store is the document layer over SQLite. It owns id assignment and
// creation timestamps; all field defaulting happens in the services above it.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func OpenStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenStoreWithRetry keeps trying to open the store, sleeping delay between
// attempts, until it succeeds. This is the only retry loop in the system:
// per-request failures are surfaced, never retried.
func OpenStoreWithRetry(path string, delay time.Duration, logf func(format string, args ...interface{})) *Store {
	for {
		s, err := OpenStore(path)
		if err == nil {
			return s
		}
		if logf != nil {
			logf("store connection failed, retrying in %s: %v", delay, err)
		}
		time.Sleep(delay)
	}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    thumbnail_url TEXT NOT NULL DEFAULT '',
    seo_title TEXT NOT NULL DEFAULT '',
    seo_description TEXT NOT NULL DEFAULT '',
    seo_image_url TEXT NOT NULL DEFAULT '',
    slug TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'published'
);
CREATE TABLE IF NOT EXISTS admins (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS site_config (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    title TEXT NOT NULL DEFAULT '',
    favicon TEXT NOT NULL DEFAULT '',
    banner TEXT NOT NULL DEFAULT '{}',
    seo TEXT NOT NULL DEFAULT '{}',
    homepage_ad TEXT NOT NULL DEFAULT '{}'
);
`)
	return err
}

const postColumns = `id, title, content, thumbnail_url, seo_title, seo_description, seo_image_url, slug, created_at, status`

func scanPost(row interface{ Scan(...interface{}) error }) (BlogPost, error) {
	var p BlogPost
	var createdAt string
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.ThumbnailURL, &p.SEOTitle,
		&p.SEODescription, &p.SEOImageURL, &p.Slug, &createdAt, &p.Status); err != nil {
		return BlogPost{}, err
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		p.CreatedAt = t
	}
	return p, nil
}

// ListPosts returns every post in insertion order. No pagination, no status
// filtering: the caller decides what to show.
func (s *Store) ListPosts() ([]BlogPost, error) {
	rows, err := s.db.Query(`SELECT ` + postColumns + ` FROM posts ORDER BY rowid`)
	if err != nil {
		return nil, &StoreUnavailableError{Op: "list posts", Err: err}
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, &StoreUnavailableError{Op: "list posts", Err: err}
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreUnavailableError{Op: "list posts", Err: err}
	}
	return posts, nil
}

// GetPost returns a single post by id.
func (s *Store) GetPost(id string) (BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return BlogPost{}, &NotFoundError{Resource: "post", ID: id}
	}
	if err != nil {
		return BlogPost{}, &StoreUnavailableError{Op: "get post", Err: err}
	}
	return p, nil
}

// InsertPost persists a new post, assigning its id and creation timestamp.
func (s *Store) InsertPost(p BlogPost) (BlogPost, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	_, err := s.db.Exec(`INSERT INTO posts (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Content, p.ThumbnailURL, p.SEOTitle, p.SEODescription,
		p.SEOImageURL, p.Slug, p.CreatedAt.Format(time.RFC3339Nano), p.Status)
	if err != nil {
		return BlogPost{}, &StoreUnavailableError{Op: "insert post", Err: err}
	}
	return p, nil
}

// UpdatePost writes the full post row for p.ID. The id and created_at
// columns are immutable and never touched.
func (s *Store) UpdatePost(p BlogPost) error {
	res, err := s.db.Exec(`UPDATE posts SET title = ?, content = ?, thumbnail_url = ?,
		seo_title = ?, seo_description = ?, seo_image_url = ?, slug = ?, status = ?
		WHERE id = ?`,
		p.Title, p.Content, p.ThumbnailURL, p.SEOTitle, p.SEODescription,
		p.SEOImageURL, p.Slug, p.Status, p.ID)
	if err != nil {
		return &StoreUnavailableError{Op: "update post", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Resource: "post", ID: p.ID}
	}
	return nil
}

// DeletePost removes a post by id. Deleting an unknown id is a silent no-op.
func (s *Store) DeletePost(id string) error {
	if _, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id); err != nil {
		return &StoreUnavailableError{Op: "delete post", Err: err}
	}
	return nil
}

// ListAdmins returns all admin allow-list records in insertion order.
func (s *Store) ListAdmins() ([]Admin, error) {
	rows, err := s.db.Query(`SELECT id, email, created_at FROM admins ORDER BY rowid`)
	if err != nil {
		return nil, &StoreUnavailableError{Op: "list admins", Err: err}
	}
	defer rows.Close()

	var admins []Admin
	for rows.Next() {
		var a Admin
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Email, &createdAt); err != nil {
			return nil, &StoreUnavailableError{Op: "list admins", Err: err}
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			a.CreatedAt = t
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// InsertAdmin persists a new admin record, assigning id and timestamp.
func (s *Store) InsertAdmin(email string) (Admin, error) {
	a := Admin{ID: uuid.NewString(), Email: email, CreatedAt: time.Now().UTC()}
	_, err := s.db.Exec(`INSERT INTO admins (id, email, created_at) VALUES (?, ?, ?)`,
		a.ID, a.Email, a.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Admin{}, &StoreUnavailableError{Op: "insert admin", Err: err}
	}
	return a, nil
}

// GetSiteConfig returns the singleton configuration document. ok is false
// when no document has been saved yet; the server never seeds one.
func (s *Store) GetSiteConfig() (cfg SiteConfig, ok bool, err error) {
	var banner, seo, ad string
	row := s.db.QueryRow(`SELECT title, favicon, banner, seo, homepage_ad FROM site_config WHERE id = 1`)
	scanErr := row.Scan(&cfg.Title, &cfg.Favicon, &banner, &seo, &ad)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return SiteConfig{}, false, nil
	}
	if scanErr != nil {
		return SiteConfig{}, false, &StoreUnavailableError{Op: "get config", Err: scanErr}
	}
	// Nested sections live as JSON blobs so the wholesale-replace upsert is
	// structural: a section is either rewritten in full or left byte-identical.
	_ = json.Unmarshal([]byte(banner), &cfg.Banner)
	_ = json.Unmarshal([]byte(seo), &cfg.SEO)
	_ = json.Unmarshal([]byte(ad), &cfg.HomepageAd)
	return cfg, true, nil
}

// UpsertSiteConfig merges the supplied top-level fields into the singleton
// document, creating it if absent. Nested sections present in the patch
// replace the stored section wholesale; omitted fields are untouched.
func (s *Store) UpsertSiteConfig(patch SiteConfigPatch) (SiteConfig, error) {
	cfg, _, err := s.GetSiteConfig()
	if err != nil {
		return SiteConfig{}, err
	}
	if patch.Title != nil {
		cfg.Title = *patch.Title
	}
	if patch.Favicon != nil {
		cfg.Favicon = *patch.Favicon
	}
	if patch.Banner != nil {
		cfg.Banner = *patch.Banner
	}
	if patch.SEO != nil {
		cfg.SEO = *patch.SEO
	}
	if patch.HomepageAd != nil {
		cfg.HomepageAd = *patch.HomepageAd
	}

	banner, _ := json.Marshal(cfg.Banner)
	seo, _ := json.Marshal(cfg.SEO)
	ad, _ := json.Marshal(cfg.HomepageAd)
	_, err = s.db.Exec(`INSERT INTO site_config (id, title, favicon, banner, seo, homepage_ad)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			favicon = excluded.favicon,
			banner = excluded.banner,
			seo = excluded.seo,
			homepage_ad = excluded.homepage_ad`,
		cfg.Title, cfg.Favicon, string(banner), string(seo), string(ad))
	if err != nil {
		return SiteConfig{}, &StoreUnavailableError{Op: "upsert config", Err: err}
	}
	return cfg, nil
}
