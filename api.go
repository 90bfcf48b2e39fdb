package unisite

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// apiError is the wire shape of a failed API call.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type apiErrorBody struct {
	Error apiError `json:"error"`
}

// apiErrorResponse maps the error taxonomy onto status codes and a
// discriminated JSON body.
func (a *App) apiErrorResponse(err error, c echo.Context) {
	status := http.StatusInternalServerError
	body := apiErrorBody{Error: apiError{Code: ErrorCode(err), Message: err.Error()}}

	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		status = http.StatusBadRequest
		body.Error.Field = ve.Field
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, ErrMediaWrite):
		status = http.StatusInternalServerError
	default:
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			body.Error.Message = http.StatusText(he.Code)
			if he.Code == http.StatusNotFound {
				body.Error.Code = "not_found"
			}
		}
		if status >= 500 {
			c.Logger().Errorf("api error: %v", err)
		}
	}
	_ = c.JSON(status, body)
}

func (a *App) apiListBlogs(c echo.Context) error {
	posts, err := a.Content.ListPosts()
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []BlogPost{}
	}
	return c.JSON(http.StatusOK, posts)
}

func (a *App) apiCreateBlog(c echo.Context) error {
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
		return err
	}
	_ = a.State.AddPost(post)
	return c.JSON(http.StatusOK, post)
}

func (a *App) apiUpdateBlog(c echo.Context) error {
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

	post, err := a.Content.UpdatePost(c.Param("id"), PostPatch{
		Title:          formField(c, "title"),
		Content:        formField(c, "content"),
		SEOTitle:       formField(c, "seoTitle"),
		SEODescription: formField(c, "seoDescription"),
		Status:         formField(c, "status"),
		Thumbnail:      thumbnail,
		SEOImage:       seoImage,
	})
	if err != nil {
		return err
	}
	_ = a.State.UpdatePost(post)
	return c.JSON(http.StatusOK, post)
}

func (a *App) apiDeleteBlog(c echo.Context) error {
	id := c.Param("id")
	if err := a.Content.DeletePost(id); err != nil {
		return err
	}
	_ = a.State.DeletePost(id)
	return c.JSON(http.StatusOK, map[string]string{"message": "Blog deleted"})
}

func (a *App) apiUpload(c echo.Context) error {
	up, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return err
	}
	defer closeUpload()
	if up == nil {
		return NewValidationError("image", "image file is required")
	}
	url, err := a.Media.Store(*up)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"imageUrl": url})
}

func (a *App) apiListAdmins(c echo.Context) error {
	admins, err := a.Store.ListAdmins()
	if err != nil {
		return err
	}
	if admins == nil {
		admins = []Admin{}
	}
	return c.JSON(http.StatusOK, admins)
}

func (a *App) apiCreateAdmin(c echo.Context) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return NewValidationError("email", "invalid request body")
	}
	if strings.TrimSpace(body.Email) == "" {
		return NewValidationError("email", "email is required")
	}
	admin, err := a.Store.InsertAdmin(strings.TrimSpace(body.Email))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

func (a *App) apiGetConfig(c echo.Context) error {
	cfg, err := a.SiteCfg.Get()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

// apiUpdateConfig accepts a full or partial SiteConfig as JSON or multipart
// form fields. Nested sections present in the request replace the stored
// section wholesale; callers resend the entire object to keep sibling keys.
func (a *App) apiUpdateConfig(c echo.Context) error {
	var patch SiteConfigPatch
	var favicon *Upload

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		if err := c.Bind(&patch); err != nil {
			return NewValidationError("", "invalid request body")
		}
	} else {
		up, closeFavicon, err := formUpload(c, "favicon")
		if err != nil {
			return err
		}
		defer closeFavicon()
		favicon = up
		patch = configPatchFromForm(c)
	}

	merged, err := a.SiteCfg.Update(patch, favicon)
	if err != nil {
		return err
	}
	_ = a.State.SetConfig(merged)
	return c.JSON(http.StatusOK, merged)
}

// configPatchFromForm maps flat multipart fields onto the patch. A nested
// section is considered present when any of its fields appear in the form.
func configPatchFromForm(c echo.Context) SiteConfigPatch {
	patch := SiteConfigPatch{Title: formField(c, "title")}
	if hasAnyField(c, "bannerHeading", "bannerSubtext") {
		patch.Banner = &Banner{
			Heading: c.FormValue("bannerHeading"),
			Subtext: c.FormValue("bannerSubtext"),
		}
	}
	if hasAnyField(c, "seoTitle", "seoDescription", "seoOgImage") {
		patch.SEO = &SEOMeta{
			Title:       c.FormValue("seoTitle"),
			Description: c.FormValue("seoDescription"),
			OGImage:     c.FormValue("seoOgImage"),
		}
	}
	if hasAnyField(c, "adText", "adImage") {
		patch.HomepageAd = &HomepageAd{
			Text:  c.FormValue("adText"),
			Image: c.FormValue("adImage"),
		}
	}
	return patch
}

func hasAnyField(c echo.Context, names ...string) bool {
	form, err := c.FormParams()
	if err != nil {
		return false
	}
	for _, name := range names {
		if _, ok := form[name]; ok {
			return true
		}
	}
	return false
}
