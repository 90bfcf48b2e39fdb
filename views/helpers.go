package views

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// component wraps a buffer-writing function as a templ.Component.
func component(f func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		f(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string { return html.EscapeString(s) }

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FormatDate renders a timestamp the way post bylines show it.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Title,
		"url":      buildURL(site.BaseURL),
	}
	if site.SEO.Description != "" {
		data["description"] = site.SEO.Description
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block.
func BlogPostingJsonLD(site Site, post Post) string {
	postURL := buildURL(site.BaseURL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.SEODescription,
		"datePublished": post.CreatedAt.Format("2006-01-02"),
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Title,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.SEOImageURL != "" {
		data["image"] = post.SEOImageURL
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// writeMeta emits the shared <head> block for a page.
func writeMeta(b *bytes.Buffer, site Site, meta PageMeta) {
	fmt.Fprintf(b, "<title>%s</title>", esc(meta.Title))
	fmt.Fprintf(b, `<meta name="description" content="%s">`, esc(meta.Description))
	fmt.Fprintf(b, `<link rel="canonical" href="%s">`, esc(meta.URL))
	fmt.Fprintf(b, `<link rel="icon" href="%s">`, esc(site.Favicon))
	fmt.Fprintf(b, `<meta property="og:title" content="%s">`, esc(meta.Title))
	fmt.Fprintf(b, `<meta property="og:description" content="%s">`, esc(meta.Description))
	fmt.Fprintf(b, `<meta property="og:type" content="%s">`, esc(meta.OGType))
	fmt.Fprintf(b, `<meta property="og:url" content="%s">`, esc(meta.URL))
	if meta.OGImage != "" {
		fmt.Fprintf(b, `<meta property="og:image" content="%s">`, esc(meta.OGImage))
	}
}
