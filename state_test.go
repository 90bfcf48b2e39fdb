package unisite

import (
	"os"
	"path/filepath"
	"testing"
)

func setupStateStore(t *testing.T) (*StateStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewStateStore(path)
	if err != nil {
		t.Fatalf("NewStateStore failed: %v", err)
	}
	return s, path
}

func TestStateStoreSeedsDefaults(t *testing.T) {
	s, _ := setupStateStore(t)

	if got, want := s.Config(), DefaultSiteConfig(); got != want {
		t.Errorf("fresh state config = %+v, want defaults", got)
	}
	if posts := s.Posts(); len(posts) != 0 {
		t.Errorf("fresh state should have no posts, got %d", len(posts))
	}
}

func TestStateStorePersistenceRoundtrip(t *testing.T) {
	s, path := setupStateStore(t)

	post := BlogPost{ID: "p1", Title: "Persisted", Slug: "persisted", Status: StatusPublished}
	if err := s.AddPost(post); err != nil {
		t.Fatalf("AddPost failed: %v", err)
	}
	title := "Roundtrip"
	if err := s.UpdateConfig(SiteConfigPatch{Title: &title}); err != nil {
		t.Fatalf("UpdateConfig failed: %v", err)
	}

	reloaded, err := NewStateStore(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Config().Title != "Roundtrip" {
		t.Errorf("config did not survive reload: %+v", reloaded.Config())
	}
	posts := reloaded.Posts()
	if len(posts) != 1 || posts[0].ID != "p1" || posts[0].Title != "Persisted" {
		t.Errorf("posts did not survive reload: %+v", posts)
	}
}

func TestStateStoreCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewStateStore(path)
	if err != nil {
		t.Fatalf("corrupt file must not block startup: %v", err)
	}
	if got, want := s.Config(), DefaultSiteConfig(); got != want {
		t.Errorf("corrupt file should yield defaults, got %+v", got)
	}
}

func TestStateStoreShallowMerge(t *testing.T) {
	s, _ := setupStateStore(t)

	if err := s.UpdateConfig(SiteConfigPatch{Banner: &Banner{Heading: "Only heading"}}); err != nil {
		t.Fatalf("UpdateConfig failed: %v", err)
	}
	cfg := s.Config()
	if cfg.Banner.Heading != "Only heading" || cfg.Banner.Subtext != "" {
		t.Errorf("supplied banner replaces the section, got %+v", cfg.Banner)
	}
	if cfg.Title != DefaultSiteConfig().Title {
		t.Errorf("omitted top-level field must be untouched, got %q", cfg.Title)
	}
}

func TestStateStorePostMutations(t *testing.T) {
	s, _ := setupStateStore(t)

	a := BlogPost{ID: "a", Title: "A", Slug: "a"}
	b := BlogPost{ID: "b", Title: "B", Slug: "b"}
	if err := s.AddPost(a); err != nil {
		t.Fatal(err)
	}
	if err := s.AddPost(b); err != nil {
		t.Fatal(err)
	}

	a.Title = "A2"
	if err := s.UpdatePost(a); err != nil {
		t.Fatal(err)
	}
	got, ok := s.PostBySlug("a")
	if !ok || got.Title != "A2" {
		t.Errorf("PostBySlug after update: ok=%v post=%+v", ok, got)
	}

	if err := s.DeletePost("a"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.PostBySlug("a"); ok {
		t.Error("deleted post still resolvable by slug")
	}
	if posts := s.Posts(); len(posts) != 1 || posts[0].ID != "b" {
		t.Errorf("remaining posts = %+v", posts)
	}
}

func TestStateStoreSetPostsCopies(t *testing.T) {
	s, _ := setupStateStore(t)

	src := []BlogPost{{ID: "x", Title: "X"}}
	if err := s.SetPosts(src); err != nil {
		t.Fatal(err)
	}
	src[0].Title = "mutated"
	if got := s.Posts(); got[0].Title != "X" {
		t.Errorf("SetPosts must copy its input, got %+v", got)
	}

	out := s.Posts()
	out[0].Title = "also mutated"
	if got := s.Posts(); got[0].Title != "X" {
		t.Errorf("Posts must return a copy, got %+v", got)
	}
}

func TestStateStoreDraftLifecycle(t *testing.T) {
	s, path := setupStateStore(t)

	if _, ok := s.Draft(); ok {
		t.Fatal("fresh state should have no draft")
	}
	if err := s.SaveDraft("WIP", "half-written"); err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}
	d, ok := s.Draft()
	if !ok || d.Title != "WIP" || d.Content != "half-written" || d.SavedAt.IsZero() {
		t.Errorf("Draft = %+v ok=%v", d, ok)
	}

	reloaded, err := NewStateStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reloaded.Draft(); !ok {
		t.Error("draft must survive a restart")
	}

	if err := s.ClearDraft(); err != nil {
		t.Fatalf("ClearDraft failed: %v", err)
	}
	if _, ok := s.Draft(); ok {
		t.Error("draft should be gone after ClearDraft")
	}
}
