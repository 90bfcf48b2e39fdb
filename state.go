package unisite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// PostDraft is an in-progress post saved by the admin console's autosave,
// surviving restarts until the post is published or the draft discarded.
type PostDraft struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	SavedAt time.Time `json:"savedAt"`
}

// State is the serialized snapshot the public views render from.
type State struct {
	Config SiteConfig `json:"config"`
	Posts  []BlogPost `json:"blogPosts"`
	Draft  *PostDraft `json:"draft,omitempty"`
}

// StateStore is the application-state object injected into the rendering
// layer: the site configuration and the post list the public pages consume,
// plus the admin draft. Every mutation is persisted synchronously to a fixed
// file path and reloaded at startup.
//
// The posts slice is a read-through copy of the ContentService: admin
// mutations write to the service first and then apply the result here, so
// the two collections cannot drift the way the original two-tier design did.
//
// Config updates use a shallow top-level merge, which is a different policy
// from the store-layer upsert in ConfigService; the two must not be
// conflated.
type StateStore struct {
	mu    sync.RWMutex
	path  string
	state State
}

// NewStateStore loads the snapshot at path, or seeds defaults when the file
// does not exist yet.
func NewStateStore(path string) (*StateStore, error) {
	s := &StateStore{
		path:  path,
		state: State{Config: DefaultSiteConfig()},
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		// A corrupt snapshot falls back to defaults rather than blocking startup.
		s.state = State{Config: DefaultSiteConfig()}
	}
	return s, nil
}

// persist serializes the state under the store's lock.
func (s *StateStore) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Snapshot returns a copy of the current state.
func (s *StateStore) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Posts = append([]BlogPost(nil), s.state.Posts...)
	if s.state.Draft != nil {
		d := *s.state.Draft
		st.Draft = &d
	}
	return st
}

// Config returns the current in-memory site configuration.
func (s *StateStore) Config() SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Config
}

// Posts returns a copy of the current post list.
func (s *StateStore) Posts() []BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]BlogPost(nil), s.state.Posts...)
}

// UpdateConfig shallow-merges the patch into the in-memory configuration:
// each non-nil top-level field replaces the current value, nested sections
// included.
func (s *StateStore) UpdateConfig(patch SiteConfigPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := &s.state.Config
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
	return s.persist()
}

// SetConfig replaces the whole configuration, used when refreshing from the
// ConfigService after a server-side merge.
func (s *StateStore) SetConfig(cfg SiteConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Config = cfg
	return s.persist()
}

// SetPosts replaces the post list with a fresh service read.
func (s *StateStore) SetPosts(posts []BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Posts = append([]BlogPost(nil), posts...)
	return s.persist()
}

// AddPost appends a post to the local list.
func (s *StateStore) AddPost(p BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Posts = append(s.state.Posts, p)
	return s.persist()
}

// UpdatePost replaces the post with the same id, if present.
func (s *StateStore) UpdatePost(p BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Posts {
		if s.state.Posts[i].ID == p.ID {
			s.state.Posts[i] = p
			break
		}
	}
	return s.persist()
}

// DeletePost removes the post with the given id, if present.
func (s *StateStore) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Posts[:0]
	for _, p := range s.state.Posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.state.Posts = kept
	return s.persist()
}

// PostBySlug finds a post in the snapshot by its slug.
func (s *StateStore) PostBySlug(slug string) (BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// SaveDraft stores the admin console's in-progress post.
func (s *StateStore) SaveDraft(title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = &PostDraft{Title: title, Content: content, SavedAt: time.Now().UTC()}
	return s.persist()
}

// Draft returns the saved draft, if any.
func (s *StateStore) Draft() (PostDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Draft == nil {
		return PostDraft{}, false
	}
	return *s.state.Draft, true
}

// ClearDraft discards the saved draft.
func (s *StateStore) ClearDraft() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = nil
	return s.persist()
}
