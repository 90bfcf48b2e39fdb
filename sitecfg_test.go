package unisite

import (
	"bytes"
	"strings"
	"testing"
)

func setupConfigService(t *testing.T) *ConfigService {
	t.Helper()
	store := setupTestStore(t)
	media := NewMediaStore(t.TempDir(), "https://uniunity.space", 2<<20)
	return NewConfigService(store, media)
}

func TestConfigGetReturnsDefaultsWhenUnseeded(t *testing.T) {
	svc := setupConfigService(t)

	got, err := svc.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	want := DefaultSiteConfig()
	if got != want {
		t.Errorf("unseeded config should be the defaults:\n got %+v\nwant %+v", got, want)
	}
}

func TestConfigGetDoesNotSeedStore(t *testing.T) {
	store := setupTestStore(t)
	svc := NewConfigService(store, NewMediaStore(t.TempDir(), "", 2<<20))

	if _, err := svc.Get(); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	_, ok, err := store.GetSiteConfig()
	if err != nil {
		t.Fatalf("GetSiteConfig failed: %v", err)
	}
	if ok {
		t.Fatal("Get must not write a document into the store")
	}
}

func TestConfigUpdateMergesAndPersists(t *testing.T) {
	svc := setupConfigService(t)

	title := "New Title"
	got, err := svc.Update(SiteConfigPatch{Title: &title}, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Title != "New Title" {
		t.Errorf("Title = %q", got.Title)
	}

	heading := &Banner{Heading: "Only heading"}
	got, err = svc.Update(SiteConfigPatch{Banner: heading}, nil)
	if err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if got.Title != "New Title" {
		t.Errorf("omitted title must survive, got %q", got.Title)
	}
	if got.Banner.Heading != "Only heading" || got.Banner.Subtext != "" {
		t.Errorf("banner should be replaced wholesale, got %+v", got.Banner)
	}

	stored, err := svc.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored != got {
		t.Errorf("Get after Update differs:\n got %+v\nwant %+v", stored, got)
	}
}

func TestConfigUpdateFaviconGoesThroughMedia(t *testing.T) {
	svc := setupConfigService(t)

	got, err := svc.Update(SiteConfigPatch{}, &Upload{
		Filename: "favicon.ico",
		Reader:   bytes.NewReader([]byte{0, 0, 1, 0}),
	})
	if err != nil {
		t.Fatalf("Update with favicon failed: %v", err)
	}
	if !strings.HasPrefix(got.Favicon, "https://uniunity.space/uploads/") {
		t.Errorf("Favicon = %q, want an /uploads/ URL", got.Favicon)
	}
	if !strings.HasSuffix(got.Favicon, ".ico") {
		t.Errorf("non-raster favicon should keep its extension, got %q", got.Favicon)
	}
}
