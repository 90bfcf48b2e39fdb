package unisite

// ConfigService manages the singleton site configuration document.
//
// Its merge policy is the store-layer one: supplied top-level fields are
// merged, nested sections are replaced wholesale. The StateStore applies a
// separate shallow in-memory merge; the two policies are deliberately kept
// distinct.
type ConfigService struct {
	store *Store
	media *MediaStore
}

// NewConfigService wires a ConfigService.
func NewConfigService(store *Store, media *MediaStore) *ConfigService {
	return &ConfigService{store: store, media: media}
}

// Get returns the stored configuration, or the compiled-in defaults when no
// document exists. The store is never seeded: defaults live only here.
func (c *ConfigService) Get() (SiteConfig, error) {
	cfg, ok, err := c.store.GetSiteConfig()
	if err != nil {
		return SiteConfig{}, err
	}
	if !ok {
		return DefaultSiteConfig(), nil
	}
	return cfg, nil
}

// Update upserts the supplied fields into the singleton document and returns
// the merged result. A favicon file, when supplied, goes through the media
// store first and lands in the flat Favicon field.
func (c *ConfigService) Update(patch SiteConfigPatch, favicon *Upload) (SiteConfig, error) {
	if favicon != nil {
		url, err := c.media.Store(*favicon)
		if err != nil {
			return SiteConfig{}, err
		}
		patch.Favicon = &url
	}
	return c.store.UpsertSiteConfig(patch)
}
