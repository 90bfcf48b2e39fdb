// Package views renders the public site and admin console as templ
// components composed in plain Go.
package views

import "time"

// Site carries the rendered site configuration plus the canonical base URL.
type Site struct {
	Title   string
	Favicon string
	Banner  Banner
	SEO     SEO
	Ad      HomepageAd
	BaseURL string
}

// Banner is the home page hero section.
type Banner struct {
	Heading string
	Subtext string
}

// SEO feeds the <head> meta tags of every page.
type SEO struct {
	Title       string
	Description string
	OGImage     string
}

// HomepageAd is the promotional block on the home page.
type HomepageAd struct {
	Text  string
	Image string
}

// Post is the view model for a blog post.
type Post struct {
	ID             string
	Title          string
	Content        string
	ThumbnailURL   string
	SEOTitle       string
	SEODescription string
	SEOImageURL    string
	Slug           string
	Status         string
	CreatedAt      time.Time
}

// Published reports whether the post should appear on the public site.
func (p Post) Published() bool { return p.Status == "published" }

// Draft is an autosaved in-progress post restored into the admin form.
type Draft struct {
	Title   string
	Content string
}

// AdminRecord is an allow-list entry shown in the admin console.
type AdminRecord struct {
	Email string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the head.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	OGImage     string
}

// Dashboard bundles everything the admin console page needs.
type Dashboard struct {
	Posts   []Post
	Admins  []AdminRecord
	Editing *Post
	Draft   *Draft
	Message string
	Csrf    string
}
