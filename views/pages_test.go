package views

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func testSite() Site {
	return Site{
		Title:   "UniUnity.space",
		Favicon: "/favicon.ico",
		Banner:  Banner{Heading: "Hero & Heading", Subtext: "Sub"},
		SEO:     SEO{Title: "UniUnity.space - Home", Description: "desc", OGImage: "https://img.example/og.jpg"},
		Ad:      HomepageAd{Text: "Transform your business", Image: "https://img.example/ad.jpg"},
		BaseURL: "https://uniunity.space",
	}
}

func TestHomeRendersBannerAndAd(t *testing.T) {
	got := render(t, Home(testSite(), nil))

	if !strings.Contains(got, "<h1>Hero &amp; Heading</h1>") {
		t.Errorf("banner heading missing or unescaped: %q", got)
	}
	if !strings.Contains(got, "Transform your business") {
		t.Errorf("homepage ad missing")
	}
	if !strings.Contains(got, `<meta property="og:type" content="website">`) {
		t.Errorf("og:type missing")
	}
	if !strings.Contains(got, `"@type":"WebSite"`) {
		t.Errorf("JSON-LD missing")
	}
}

func TestHomeShowsLatestThreePublished(t *testing.T) {
	posts := []Post{
		{Title: "one", Slug: "one", Status: "published"},
		{Title: "two", Slug: "two", Status: "draft"},
		{Title: "three", Slug: "three", Status: "published"},
		{Title: "four", Slug: "four", Status: "published"},
		{Title: "five", Slug: "five", Status: "published"},
	}
	got := render(t, Home(testSite(), posts))

	if strings.Contains(got, `href="/blog/two/"`) {
		t.Error("draft post must not appear on the home page")
	}
	if strings.Contains(got, `href="/blog/one/"`) {
		t.Error("only the latest three published posts should appear")
	}
	for _, slug := range []string{"three", "four", "five"} {
		if !strings.Contains(got, `href="/blog/`+slug+`/"`) {
			t.Errorf("expected card for %q", slug)
		}
	}
}

func TestBlogIndexEmptyState(t *testing.T) {
	got := render(t, BlogIndex(testSite(), []Post{{Title: "hidden", Slug: "hidden", Status: "draft"}}))

	if !strings.Contains(got, "No blog posts yet") {
		t.Errorf("empty state missing: %q", got)
	}
	if !strings.Contains(got, "https://formspree.io/") {
		t.Error("newsletter form missing")
	}
}

func TestBlogPostPage(t *testing.T) {
	post := Post{
		Title:          "My <First> Post",
		Content:        "# Hello\n\nBody text",
		SEOTitle:       "My First Post | UniUnity",
		SEODescription: "Body text",
		Slug:           "my-first-post",
		Status:         "published",
		ThumbnailURL:   "https://uniunity.space/uploads/t.jpg",
		CreatedAt:      time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
	}
	got := render(t, BlogPost(testSite(), post))

	if !strings.Contains(got, "<title>My First Post | UniUnity</title>") {
		t.Errorf("seo title missing: %q", got)
	}
	if !strings.Contains(got, "<h1>My &lt;First&gt; Post</h1>") {
		t.Errorf("title must be escaped: %q", got)
	}
	if !strings.Contains(got, "Hello</h1>") || !strings.Contains(got, "<p>Body text</p>") {
		t.Errorf("markdown body missing: %q", got)
	}
	if !strings.Contains(got, "March 9, 2025") {
		t.Errorf("byline date missing: %q", got)
	}
	if !strings.Contains(got, `"@type":"BlogPosting"`) {
		t.Errorf("JSON-LD missing: %q", got)
	}
	if !strings.Contains(got, `<link rel="canonical" href="https://uniunity.space/blog/my-first-post/">`) {
		t.Errorf("canonical link missing: %q", got)
	}
}
