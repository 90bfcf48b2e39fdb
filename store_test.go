package unisite

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndGetPost(t *testing.T) {
	s := setupTestStore(t)

	saved, err := s.InsertPost(BlogPost{
		Title:          "Test Post",
		Content:        "# Test Content",
		ThumbnailURL:   "https://uniunity.space/uploads/a.jpg",
		SEOTitle:       "Test Post | UniUnity",
		SEODescription: "desc",
		Slug:           "test-post",
		Status:         StatusPublished,
	})
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("store should assign an id")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatal("store should assign a creation timestamp")
	}

	got, err := s.GetPost(saved.ID)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "Test Post" || got.Slug != "test-post" || got.Status != StatusPublished {
		t.Errorf("unexpected post: %+v", got)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestListPostsInsertionOrder(t *testing.T) {
	s := setupTestStore(t)

	for _, title := range []string{"first", "second", "third"} {
		if _, err := s.InsertPost(BlogPost{Title: title, Content: "c", Status: StatusPublished}); err != nil {
			t.Fatalf("InsertPost failed: %v", err)
		}
	}
	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	for i, want := range []string{"first", "second", "third"} {
		if posts[i].Title != want {
			t.Errorf("posts[%d].Title = %q, want %q", i, posts[i].Title, want)
		}
	}
}

func TestUpdatePostKeepsIdentity(t *testing.T) {
	s := setupTestStore(t)

	saved, err := s.InsertPost(BlogPost{Title: "Original", Content: "c", Status: StatusPublished})
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}

	saved.Title = "Updated"
	if err := s.UpdatePost(saved); err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}

	got, err := s.GetPost(saved.ID)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "Updated" {
		t.Errorf("Title = %q, want %q", got.Title, "Updated")
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("CreatedAt must never change: %v != %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestStoreUpdatePostUnknownID(t *testing.T) {
	s := setupTestStore(t)
	err := s.UpdatePost(BlogPost{ID: "missing", Title: "x", Content: "y"})
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDeletePostIsSilentOnUnknownID(t *testing.T) {
	s := setupTestStore(t)
	if err := s.DeletePost("does-not-exist"); err != nil {
		t.Errorf("DeletePost on unknown id should be a no-op, got %v", err)
	}
}

func TestAdmins(t *testing.T) {
	s := setupTestStore(t)

	a, err := s.InsertAdmin("ops@uniunity.space")
	if err != nil {
		t.Fatalf("InsertAdmin failed: %v", err)
	}
	if a.ID == "" || a.CreatedAt.IsZero() {
		t.Fatalf("admin identity not assigned: %+v", a)
	}

	admins, err := s.ListAdmins()
	if err != nil {
		t.Fatalf("ListAdmins failed: %v", err)
	}
	if len(admins) != 1 || admins[0].Email != "ops@uniunity.space" {
		t.Errorf("unexpected admins: %+v", admins)
	}
}

func TestSiteConfigNotSeeded(t *testing.T) {
	s := setupTestStore(t)
	_, ok, err := s.GetSiteConfig()
	if err != nil {
		t.Fatalf("GetSiteConfig failed: %v", err)
	}
	if ok {
		t.Fatal("store must not hold a config document until one is written")
	}
}

func TestUpsertSiteConfigReplacesNestedWholesale(t *testing.T) {
	s := setupTestStore(t)

	title := "UniUnity.space"
	_, err := s.UpsertSiteConfig(SiteConfigPatch{
		Title:      &title,
		Banner:     &Banner{Heading: "H", Subtext: "S"},
		SEO:        &SEOMeta{Title: "T", Description: "D", OGImage: "img"},
		HomepageAd: &HomepageAd{Text: "Ad", Image: "ad.jpg"},
	})
	if err != nil {
		t.Fatalf("UpsertSiteConfig failed: %v", err)
	}

	// Supplying only banner.heading replaces the whole banner object; the
	// prior subtext is lost while the other sections stay untouched.
	got, err := s.UpsertSiteConfig(SiteConfigPatch{Banner: &Banner{Heading: "New"}})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if got.Banner.Heading != "New" || got.Banner.Subtext != "" {
		t.Errorf("banner should be replaced wholesale, got %+v", got.Banner)
	}
	if got.SEO.Description != "D" || got.HomepageAd.Text != "Ad" {
		t.Errorf("sibling sections must be untouched, got %+v", got)
	}
	if got.Title != "UniUnity.space" {
		t.Errorf("omitted top-level field must be retained, got %q", got.Title)
	}

	stored, ok, err := s.GetSiteConfig()
	if err != nil || !ok {
		t.Fatalf("GetSiteConfig after upsert: ok=%v err=%v", ok, err)
	}
	if stored.Banner != got.Banner || stored.SEO != got.SEO {
		t.Errorf("stored config differs from returned merge: %+v vs %+v", stored, got)
	}
}
