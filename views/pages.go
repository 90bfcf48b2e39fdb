package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
)

// Home renders the landing page: hero banner, homepage ad, latest posts.
func Home(site Site, posts []Post) templ.Component {
	meta := PageMeta{
		Title:       site.SEO.Title,
		Description: site.SEO.Description,
		URL:         buildURL(site.BaseURL),
		OGType:      "website",
		OGImage:     site.SEO.OGImage,
	}
	return component(page(site, meta, WebsiteJsonLD(site), func(b *bytes.Buffer) {
		b.WriteString(`<section class="hero">`)
		fmt.Fprintf(b, "<h1>%s</h1>", esc(site.Banner.Heading))
		fmt.Fprintf(b, `<p class="subtext">%s</p>`, esc(site.Banner.Subtext))
		b.WriteString(`<a class="cta" href="/contact/">Get in touch</a>`)
		b.WriteString("</section>")

		if site.Ad.Text != "" {
			b.WriteString(`<aside class="homepage-ad">`)
			if site.Ad.Image != "" {
				fmt.Fprintf(b, `<img src="%s" alt="">`, esc(site.Ad.Image))
			}
			fmt.Fprintf(b, "<p>%s</p>", esc(site.Ad.Text))
			b.WriteString("</aside>")
		}

		published := publishedOnly(posts)
		if len(published) > 0 {
			b.WriteString(`<section class="latest"><h2>Latest from the blog</h2>`)
			writePostCards(b, latest(published, 3))
			b.WriteString("</section>")
		}
	}))
}

// About renders the static about page.
func About(site Site) templ.Component {
	meta := PageMeta{
		Title:       "About | " + site.Title,
		Description: site.SEO.Description,
		URL:         buildURL(site.BaseURL, "about"),
		OGType:      "website",
	}
	return component(page(site, meta, "", func(b *bytes.Buffer) {
		fmt.Fprintf(b, "<h1>About %s</h1>", esc(site.Title))
		b.WriteString("<p>We build AI automation, websites, and apps, and help products find their users. ")
		b.WriteString("Our team pairs engineering depth with growth know-how so businesses can ship faster and scale smarter.</p>")
		b.WriteString("<p>From first prototype to full launch, we stay hands-on: strategy, implementation, and the unglamorous follow-through in between.</p>")
	}))
}

// BlogIndex renders the blog listing with the newsletter signup block.
func BlogIndex(site Site, posts []Post) templ.Component {
	meta := PageMeta{
		Title:       "Blog | " + site.Title,
		Description: site.SEO.Description,
		URL:         buildURL(site.BaseURL, "blog"),
		OGType:      "website",
	}
	return component(page(site, meta, "", func(b *bytes.Buffer) {
		b.WriteString("<h1>Blog &amp; Insights</h1>")
		published := publishedOnly(posts)
		if len(published) == 0 {
			b.WriteString(`<p class="empty">No blog posts yet. Check back soon!</p>`)
		} else {
			writePostCards(b, published)
		}
		b.WriteString(`<section class="newsletter"><h2>Stay updated with the latest trends</h2>`)
		b.WriteString(`<form action="https://formspree.io/f/xkgjarqb" method="POST">`)
		b.WriteString(`<input type="email" name="email" placeholder="Your email address" required>`)
		b.WriteString(`<button type="submit">Subscribe</button></form></section>`)
	}))
}

// BlogPost renders a single post with its markdown body.
func BlogPost(site Site, post Post) templ.Component {
	meta := PageMeta{
		Title:       orDefault(post.SEOTitle, post.Title),
		Description: post.SEODescription,
		URL:         buildURL(site.BaseURL, "blog", post.Slug),
		OGType:      "article",
		OGImage:     orDefault(post.SEOImageURL, post.ThumbnailURL),
	}
	return component(page(site, meta, BlogPostingJsonLD(site, post), func(b *bytes.Buffer) {
		b.WriteString(`<article class="post">`)
		if post.ThumbnailURL != "" {
			fmt.Fprintf(b, `<img class="post-thumb" src="%s" alt="%s">`, esc(post.ThumbnailURL), esc(post.Title))
		}
		fmt.Fprintf(b, "<h1>%s</h1>", esc(post.Title))
		fmt.Fprintf(b, `<p class="byline">%s</p>`, esc(FormatDate(post.CreatedAt)))
		b.WriteString(`<div class="prose">`)
		b.WriteString(RenderMarkdown(post.Content))
		b.WriteString("</div></article>")
	}))
}

// Contact renders the contact page with its Formspree-backed form.
func Contact(site Site) templ.Component {
	meta := PageMeta{
		Title:       "Contact | " + site.Title,
		Description: site.SEO.Description,
		URL:         buildURL(site.BaseURL, "contact"),
		OGType:      "website",
	}
	return component(page(site, meta, "", func(b *bytes.Buffer) {
		b.WriteString("<h1>Contact us</h1>")
		b.WriteString(`<form class="contact" action="https://formspree.io/f/xkgjarqb" method="POST">`)
		b.WriteString(`<label>Name<input type="text" name="name" required></label>`)
		b.WriteString(`<label>Email<input type="email" name="email" required></label>`)
		b.WriteString(`<label>Message<textarea name="message" rows="6" required></textarea></label>`)
		b.WriteString(`<button type="submit">Send message</button></form>`)
	}))
}

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	meta := PageMeta{Title: "Not found | " + site.Title, URL: buildURL(site.BaseURL), OGType: "website"}
	return component(page(site, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<h1>Page not found</h1><p><a href="/">Back to the home page</a></p>`)
	}))
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	meta := PageMeta{Title: "Something went wrong | " + site.Title, URL: buildURL(site.BaseURL), OGType: "website"}
	return component(page(site, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<h1>Something went wrong</h1><p>Please try again in a moment.</p>`)
	}))
}

func writePostCards(b *bytes.Buffer, posts []Post) {
	b.WriteString(`<section class="cards">`)
	for _, p := range posts {
		fmt.Fprintf(b, `<a class="card" href="/blog/%s/">`, esc(p.Slug))
		if p.ThumbnailURL != "" {
			fmt.Fprintf(b, `<img src="%s" alt="%s">`, esc(p.ThumbnailURL), esc(p.Title))
		}
		fmt.Fprintf(b, "<h2>%s</h2>", esc(p.Title))
		fmt.Fprintf(b, `<p class="date">%s</p>`, esc(FormatDate(p.CreatedAt)))
		b.WriteString("</a>")
	}
	b.WriteString("</section>")
}

func publishedOnly(posts []Post) []Post {
	var out []Post
	for _, p := range posts {
		if p.Published() {
			out = append(out, p)
		}
	}
	return out
}

func latest(posts []Post, n int) []Post {
	if len(posts) <= n {
		return posts
	}
	return posts[len(posts)-n:]
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
