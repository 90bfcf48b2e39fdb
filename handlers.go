package unisite

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/uniunity/unisite/views"
)

// site builds the view-layer site model from the current state snapshot.
func (a *App) site() views.Site {
	cfg := a.State.Config()
	return views.Site{
		Title:   cfg.Title,
		Favicon: cfg.Favicon,
		Banner:  views.Banner{Heading: cfg.Banner.Heading, Subtext: cfg.Banner.Subtext},
		SEO:     views.SEO{Title: cfg.SEO.Title, Description: cfg.SEO.Description, OGImage: cfg.SEO.OGImage},
		Ad:      views.HomepageAd{Text: cfg.HomepageAd.Text, Image: cfg.HomepageAd.Image},
		BaseURL: a.Config.PublicBaseURL,
	}
}

func viewPost(p BlogPost) views.Post {
	return views.Post{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		ThumbnailURL:   p.ThumbnailURL,
		SEOTitle:       p.SEOTitle,
		SEODescription: p.SEODescription,
		SEOImageURL:    p.SEOImageURL,
		Slug:           p.Slug,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt,
	}
}

func viewPosts(posts []BlogPost) []views.Post {
	out := make([]views.Post, len(posts))
	for i, p := range posts {
		out[i] = viewPost(p)
	}
	return out
}

func (a *App) handleHome(c echo.Context) error {
	return Render(c, views.Home(a.site(), viewPosts(a.State.Posts())))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, views.About(a.site()))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	return Render(c, views.BlogIndex(a.site(), viewPosts(a.State.Posts())))
}

func (a *App) handleBlogPost(c echo.Context) error {
	slug := c.Param("slug")
	post, ok := a.State.PostBySlug(slug)
	if !ok || post.Status != StatusPublished {
		// Unknown slugs go back to the index instead of a not-found page.
		return c.Redirect(http.StatusSeeOther, "/blog/")
	}
	return Render(c, views.BlogPost(a.site(), viewPost(post)))
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, views.Contact(a.site()))
}

func (a *App) handleFavicon(c echo.Context) error {
	favicon := a.State.Config().Favicon
	if favicon == "" || favicon == "/favicon.ico" {
		return c.File(a.Config.StaticDir + "/favicon.ico")
	}
	return c.Redirect(http.StatusFound, favicon)
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.PublicBaseURL)
	return c.String(http.StatusOK, body)
}

// httpErrorHandler renders styled error pages for the HTML surfaces and
// structured JSON bodies for /api.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		a.apiErrorResponse(err, c)
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
