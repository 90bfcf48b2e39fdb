package unisite

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/uniunity/unisite/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.site(), false, CsrfToken(c)))
	}
	return a.renderDashboard(c, c.QueryParam("msg"), nil)
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	username := c.FormValue("username")
	password := c.FormValue("password")
	if a.Verifier.Verify(username, password) {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	// Only failed attempts count against the per-IP budget.
	a.loginLimiter.Record(ip)
	return Render(c, views.AdminLogin(a.site(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminEditPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post, err := a.Content.GetPost(c.Param("id"))
	if err != nil {
		if IsNotFound(err) {
			return a.redirectDashboard(c, "Post not found.")
		}
		return err
	}
	return a.renderDashboard(c, "", &post)
}

// handleAdminSave creates or updates a post depending on the hidden id field.
func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}

	thumbnail, closeThumb, err := formUpload(c, "thumbnailImage")
	if err != nil {
		return err
	}
	defer closeThumb()
	seoImage, closeSEO, err := formUpload(c, "seoImage")
	if err != nil {
		return err
	}
	defer closeSEO()

	id := c.FormValue("id")
	if id == "" {
		post, err := a.Content.CreatePost(CreatePostInput{
			Title:          c.FormValue("title"),
			Content:        c.FormValue("content"),
			SEOTitle:       c.FormValue("seoTitle"),
			SEODescription: c.FormValue("seoDescription"),
			Status:         c.FormValue("status"),
			Thumbnail:      thumbnail,
			SEOImage:       seoImage,
		})
		if err != nil {
			return a.saveFailed(c, err)
		}
		_ = a.State.AddPost(post)
		_ = a.State.ClearDraft()
		return a.redirectDashboard(c, "Post published.")
	}

	patch := PostPatch{
		Title:          formField(c, "title"),
		Content:        formField(c, "content"),
		SEOTitle:       formField(c, "seoTitle"),
		SEODescription: formField(c, "seoDescription"),
		Status:         formField(c, "status"),
		Thumbnail:      thumbnail,
		SEOImage:       seoImage,
	}
	post, err := a.Content.UpdatePost(id, patch)
	if err != nil {
		return a.saveFailed(c, err)
	}
	_ = a.State.UpdatePost(post)
	return a.redirectDashboard(c, "Post updated.")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	if err := a.Content.DeletePost(id); err != nil {
		return err
	}
	_ = a.State.DeletePost(id)
	return a.redirectDashboard(c, "Post deleted.")
}

// handleAdminConfig submits the full configuration form. Nested sections are
// rebuilt in full from the form, so the store-layer wholesale replace never
// loses sibling keys on this path.
func (a *App) handleAdminConfig(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}

	favicon, closeFavicon, err := formUpload(c, "favicon")
	if err != nil {
		return err
	}
	defer closeFavicon()

	patch := SiteConfigPatch{
		Title: formField(c, "title"),
		Banner: &Banner{
			Heading: c.FormValue("bannerHeading"),
			Subtext: c.FormValue("bannerSubtext"),
		},
		SEO: &SEOMeta{
			Title:       c.FormValue("seoTitle"),
			Description: c.FormValue("seoDescription"),
			OGImage:     c.FormValue("seoOgImage"),
		},
		HomepageAd: &HomepageAd{
			Text:  c.FormValue("adText"),
			Image: c.FormValue("adImage"),
		},
	}
	merged, err := a.SiteCfg.Update(patch, favicon)
	if err != nil {
		return a.saveFailed(c, err)
	}
	_ = a.State.SetConfig(merged)
	return a.redirectDashboard(c, "Configuration saved.")
}

func (a *App) handleAdminAddAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	email := strings.TrimSpace(c.FormValue("email"))
	if email == "" {
		return a.redirectDashboard(c, "Email is required.")
	}
	if _, err := a.Store.InsertAdmin(email); err != nil {
		return a.saveFailed(c, err)
	}
	return a.redirectDashboard(c, "Admin added.")
}

func (a *App) handleAdminDraftSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.NoContent(http.StatusForbidden)
	}
	if err := a.State.SaveDraft(c.FormValue("title"), c.FormValue("content")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handleAdminDraftClear(c echo.Context) error {
	if !IsAdmin(c) {
		return c.NoContent(http.StatusForbidden)
	}
	if err := a.State.ClearDraft(); err != nil {
		return err
	}
	return a.redirectDashboard(c, "Draft discarded.")
}

func (a *App) renderDashboard(c echo.Context, msg string, editing *BlogPost) error {
	posts, err := a.Content.ListPosts()
	if err != nil {
		// The console stays usable on store trouble by rendering the snapshot.
		c.Logger().Errorf("dashboard post list: %v", err)
		posts = a.State.Posts()
	}
	admins, err := a.Store.ListAdmins()
	if err != nil {
		c.Logger().Errorf("dashboard admin list: %v", err)
	}

	d := views.Dashboard{
		Posts:   viewPosts(posts),
		Message: msg,
		Csrf:    CsrfToken(c),
	}
	for _, ad := range admins {
		d.Admins = append(d.Admins, views.AdminRecord{Email: ad.Email})
	}
	if editing != nil {
		p := viewPost(*editing)
		d.Editing = &p
	} else if draft, ok := a.State.Draft(); ok {
		d.Draft = &views.Draft{Title: draft.Title, Content: draft.Content}
	}
	return Render(c, views.AdminDashboard(a.site(), d))
}

func (a *App) redirectDashboard(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

// saveFailed turns a service error into the console's transient inline
// message; unexpected failures propagate to the error handler.
func (a *App) saveFailed(c echo.Context, err error) error {
	if IsValidation(err) || IsNotFound(err) {
		return a.redirectDashboard(c, err.Error())
	}
	return err
}

// formField returns a pointer to the form value when the field was present
// in the request, nil otherwise.
func formField(c echo.Context, name string) *string {
	form, err := c.FormParams()
	if err != nil {
		return nil
	}
	if _, ok := form[name]; !ok {
		return nil
	}
	v := c.FormValue(name)
	return &v
}

// formUpload opens an optional multipart file field. The returned cleanup is
// always safe to call.
func formUpload(c echo.Context, field string) (*Upload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &Upload{Filename: fh.Filename, Reader: f}, func() { f.Close() }, nil
}
