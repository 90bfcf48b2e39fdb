package unisite

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration, loaded from environment variables.
// Site branding lives in the SiteConfig document, not here.
type Config struct {
	Addr         string `env:"UNISITE_ADDR" envDefault:":3000"`
	DatabasePath string `env:"UNISITE_DB_PATH" envDefault:"data/site.db"`
	StatePath    string `env:"UNISITE_STATE_PATH" envDefault:"data/state.json"`
	UploadsDir   string `env:"UNISITE_UPLOADS_DIR" envDefault:"uploads"`
	StaticDir    string `env:"UNISITE_STATIC_DIR" envDefault:"public"`

	// PublicBaseURL prefixes every stored upload URL, e.g. "https://uniunity.space".
	PublicBaseURL string `env:"UNISITE_PUBLIC_URL" envDefault:"http://localhost:3000"`

	// AllowedOrigin is the single origin permitted to call the JSON API.
	AllowedOrigin string `env:"UNISITE_ALLOWED_ORIGIN" envDefault:"https://uniunity.space"`

	AdminUsername string `env:"UNISITE_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"UNISITE_ADMIN_PASSWORD"`
	SessionSecret string `env:"UNISITE_SESSION_SECRET"`
	CookieSecure  bool   `env:"UNISITE_COOKIE_SECURE" envDefault:"false"`

	// SEOTitleSuffix is appended to derived SEO titles as "{title} | {suffix}".
	SEOTitleSuffix string `env:"UNISITE_SEO_SUFFIX" envDefault:"UniUnity"`

	MaxUploadBytes int64         `env:"UNISITE_MAX_UPLOAD_BYTES" envDefault:"2097152"`
	StoreRetry     time.Duration `env:"UNISITE_STORE_RETRY" envDefault:"5s"`
}

// LoadConfig parses the environment into a Config and validates required keys.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields the server refuses to start without.
func (c Config) Validate() error {
	if c.AdminPassword == "" {
		return fmt.Errorf("UNISITE_ADMIN_PASSWORD is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("UNISITE_SESSION_SECRET is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("UNISITE_MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}
