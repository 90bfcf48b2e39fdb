// Package unisite implements the UniUnity marketing site and its blog CMS:
// a server-rendered public site (home, about, blog, contact), an admin
// console for authoring posts and editing site configuration, and a JSON
// REST API over the same document collections for external clients.
package unisite

import "time"

// Post status values. Anything else is rejected at the service boundary.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// BlogPost is a stored blog document. The store assigns ID and CreatedAt;
// every optional field is defaulted by the ContentService, never by the store.
type BlogPost struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	SEOTitle       string    `json:"seoTitle"`
	SEODescription string    `json:"seoDescription"`
	SEOImageURL    string    `json:"seoImageUrl"`
	Slug           string    `json:"slug"`
	CreatedAt      time.Time `json:"createdAt"`
	Status         string    `json:"status"`
}

// Admin is a bare allow-list record. It carries no credential material and
// is not consulted by the login check; CredentialVerifier is the seam for
// wiring a real identity provider.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Banner is the hero section shown on the home page.
type Banner struct {
	Heading string `json:"heading"`
	Subtext string `json:"subtext"`
}

// SEOMeta feeds the <head> of every public page.
type SEOMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OGImage     string `json:"ogImage"`
}

// HomepageAd is the promotional block on the home page.
type HomepageAd struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// SiteConfig is the singleton configuration document. At most one instance
// exists in the store; writes upsert it in place.
type SiteConfig struct {
	Title      string     `json:"title"`
	Favicon    string     `json:"favicon"`
	Banner     Banner     `json:"banner"`
	SEO        SEOMeta    `json:"seo"`
	HomepageAd HomepageAd `json:"homepageAd"`
}

// SiteConfigPatch is a partial SiteConfig update. Nil fields are left
// untouched; a non-nil nested section replaces the stored section wholesale.
// Callers must resend an entire nested object to keep its sibling keys.
type SiteConfigPatch struct {
	Title      *string     `json:"title"`
	Favicon    *string     `json:"favicon"`
	Banner     *Banner     `json:"banner"`
	SEO        *SEOMeta    `json:"seo"`
	HomepageAd *HomepageAd `json:"homepageAd"`
}

// DefaultSiteConfig returns the compiled-in configuration used until an
// admin saves one, and as the fallback when the store has no document.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:   "UniUnity.space",
		Favicon: "/favicon.ico",
		Banner: Banner{
			Heading: "Future-Proof Your Growth with AI-Driven Tech",
			Subtext: "Empowering businesses with cutting-edge AI solutions and development services",
		},
		SEO: SEOMeta{
			Title:       "UniUnity.space - AI-Driven Tech Solutions",
			Description: "Leading provider of AI automation, website development, app development, and user acquisition services.",
			OGImage:     "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80",
		},
		HomepageAd: HomepageAd{
			Text:  "Transform your business with AI",
			Image: "https://images.unsplash.com/photo-1636819488524-1f019c4e1c44?auto=format&fit=crop&q=80",
		},
	}
}
