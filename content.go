package unisite

import "strings"

// ContentService is the blog-post CRUD contract. It derives defaults at the
// service boundary, routes image files through the MediaStore, and persists
// documents in the Store. Media and document writes are not transactional: a
// document-write failure after a successful media write leaves an orphaned
// file, an accepted gap.
type ContentService struct {
	store       *Store
	media       *MediaStore
	titleSuffix string
}

// NewContentService wires a ContentService. titleSuffix feeds the derived
// SEO title ("{title} | {suffix}").
func NewContentService(store *Store, media *MediaStore, titleSuffix string) *ContentService {
	return &ContentService{store: store, media: media, titleSuffix: titleSuffix}
}

// seoDescriptionLimit caps the derived SEO description, matching the usual
// search-snippet cutoff.
const seoDescriptionLimit = 160

// CreatePostInput carries the fields accepted at post creation. Title and
// Content are required; everything else is optional with derived defaults.
type CreatePostInput struct {
	Title          string
	Content        string
	SEOTitle       string
	SEODescription string
	Status         string
	Thumbnail      *Upload
	SEOImage       *Upload
}

// PostPatch is a partial update: nil fields retain their stored values.
// Image URLs are replaced only when a new file is supplied.
type PostPatch struct {
	Title          *string
	Content        *string
	SEOTitle       *string
	SEODescription *string
	Status         *string
	Thumbnail      *Upload
	SEOImage       *Upload
}

// ListPosts returns all posts in store-native order.
func (c *ContentService) ListPosts() ([]BlogPost, error) {
	return c.store.ListPosts()
}

// GetPost returns a single post by id.
func (c *ContentService) GetPost(id string) (BlogPost, error) {
	return c.store.GetPost(id)
}

// CreatePost validates the input, derives slug and SEO defaults, ingests any
// supplied images, and persists the new document.
func (c *ContentService) CreatePost(in CreatePostInput) (BlogPost, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return BlogPost{}, NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return BlogPost{}, NewValidationError("content", "content is required")
	}
	status := in.Status
	if status == "" {
		status = StatusPublished
	}
	if err := validateStatus(status); err != nil {
		return BlogPost{}, err
	}

	p := BlogPost{
		Title:          title,
		Content:        in.Content,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
		Slug:           Slugify(title),
		Status:         status,
	}
	if p.SEOTitle == "" {
		p.SEOTitle = title + " | " + c.titleSuffix
	}
	if p.SEODescription == "" {
		p.SEODescription = TruncateRunes(in.Content, seoDescriptionLimit)
	}

	// Media writes happen before the document write.
	if in.Thumbnail != nil {
		url, err := c.media.Store(*in.Thumbnail)
		if err != nil {
			return BlogPost{}, err
		}
		p.ThumbnailURL = url
	}
	if in.SEOImage != nil {
		url, err := c.media.Store(*in.SEOImage)
		if err != nil {
			return BlogPost{}, err
		}
		p.SEOImageURL = url
	}

	return c.store.InsertPost(p)
}

// UpdatePost applies only the fields present in the patch. Omitted fields,
// including image URLs when no new file arrives, retain their prior values.
// The slug is fixed at creation and never re-derived here.
func (c *ContentService) UpdatePost(id string, patch PostPatch) (BlogPost, error) {
	p, err := c.store.GetPost(id)
	if err != nil {
		return BlogPost{}, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return BlogPost{}, NewValidationError("title", "title cannot be empty")
		}
		p.Title = title
	}
	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return BlogPost{}, NewValidationError("content", "content cannot be empty")
		}
		p.Content = *patch.Content
	}
	if patch.SEOTitle != nil {
		p.SEOTitle = *patch.SEOTitle
	}
	if patch.SEODescription != nil {
		p.SEODescription = *patch.SEODescription
	}
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return BlogPost{}, err
		}
		p.Status = *patch.Status
	}
	if patch.Thumbnail != nil {
		url, err := c.media.Store(*patch.Thumbnail)
		if err != nil {
			return BlogPost{}, err
		}
		p.ThumbnailURL = url
	}
	if patch.SEOImage != nil {
		url, err := c.media.Store(*patch.SEOImage)
		if err != nil {
			return BlogPost{}, err
		}
		p.SEOImageURL = url
	}

	if err := c.store.UpdatePost(p); err != nil {
		return BlogPost{}, err
	}
	return p, nil
}

// DeletePost removes a post. Unknown ids are a silent success: the delete is
// idempotent from the caller's perspective. Uploaded media is not cleaned up.
func (c *ContentService) DeletePost(id string) error {
	return c.store.DeletePost(id)
}

func validateStatus(status string) error {
	if status != StatusPublished && status != StatusDraft {
		return NewValidationError("status", "status must be published or draft")
	}
	return nil
}
