package unisite

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	_ "modernc.org/sqlite"
)

// App wires the store, media ingest, services, state store, and HTTP surface
// into one server. It serves three things: the public site, the admin
// console, and the JSON API under /api.
type App struct {
	Config  Config
	Echo    *echo.Echo
	Store   *Store
	Media   *MediaStore
	Content *ContentService
	SiteCfg *ConfigService
	State   *StateStore

	Verifier     CredentialVerifier
	loginLimiter *LoginLimiter
}

// New builds an App. It blocks until the document store is reachable,
// retrying on a fixed delay, and seeds the state store from the services so
// the public pages render current data from the first request.
func New(cfg Config) (*App, error) {
	e := echo.New()
	e.HideBanner = true
	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	store := OpenStoreWithRetry(cfg.DatabasePath, cfg.StoreRetry, e.Logger.Errorf)
	media := NewMediaStore(cfg.UploadsDir, cfg.PublicBaseURL, cfg.MaxUploadBytes)

	state, err := NewStateStore(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:       cfg,
		Echo:         e,
		Store:        store,
		Media:        media,
		Content:      NewContentService(store, media, cfg.SEOTitleSuffix),
		SiteCfg:      NewConfigService(store, media),
		State:        state,
		Verifier:     StaticCredentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword},
		loginLimiter: NewLoginLimiter(5, time.Minute),
	}

	a.refreshState()
	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

// refreshState re-reads config and posts from the services into the state
// store. Failures fall back to whatever the snapshot already holds.
func (a *App) refreshState() {
	if cfg, err := a.SiteCfg.Get(); err == nil {
		_ = a.State.SetConfig(cfg)
	} else {
		a.Echo.Logger.Errorf("config refresh failed, keeping snapshot: %v", err)
	}
	if posts, err := a.Content.ListPosts(); err == nil {
		_ = a.State.SetPosts(posts)
	} else {
		a.Echo.Logger.Errorf("post refresh failed, keeping snapshot: %v", err)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/uploads", a.Media.Dir())
	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.ico", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public pages.
	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/:slug/", a.handleBlogPost)
	e.GET("/contact/", a.handleContact)

	// Admin console.
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/post/:id/", a.handleAdminEditPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.POST("/admin/delete/:id/", a.handleAdminDelete)
	e.POST("/admin/config/", a.handleAdminConfig)
	e.POST("/admin/admins/", a.handleAdminAddAdmin)
	e.POST("/admin/draft/", a.handleAdminDraftSave)
	e.POST("/admin/draft/clear/", a.handleAdminDraftClear)

	// JSON API for external clients, single-origin CORS.
	api := e.Group("/api", a.corsMiddleware())
	api.GET("/blogs", a.apiListBlogs)
	api.POST("/blogs", a.apiCreateBlog)
	api.PUT("/blogs/:id", a.apiUpdateBlog)
	api.DELETE("/blogs/:id", a.apiDeleteBlog)
	api.POST("/upload", a.apiUpload)
	api.GET("/admins", a.apiListAdmins)
	api.POST("/admins", a.apiCreateAdmin)
	api.GET("/config", a.apiGetConfig)
	api.POST("/config", a.apiUpdateConfig)
}

// Start runs the HTTP server until it is shut down.
func (a *App) Start() error {
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
