package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
)

// AdminLogin renders the admin console login form.
func AdminLogin(site Site, showError bool, csrf string) templ.Component {
	meta := PageMeta{Title: "Admin | " + site.Title, URL: buildURL(site.BaseURL, "admin"), OGType: "website"}
	return component(page(site, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<h1>Admin login</h1>`)
		if showError {
			b.WriteString(`<p class="error">Invalid credentials</p>`)
		}
		b.WriteString(`<form class="login" method="POST" action="/admin/login/">`)
		fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s">`, esc(csrf))
		b.WriteString(`<label>Username<input type="text" name="username" required></label>`)
		b.WriteString(`<label>Password<input type="password" name="password" required></label>`)
		b.WriteString(`<button type="submit">Log in</button></form>`)
	}))
}

// AdminDashboard renders the whole console: post list, post form, site
// configuration form, and the admin allow-list.
func AdminDashboard(site Site, d Dashboard) templ.Component {
	meta := PageMeta{Title: "Admin | " + site.Title, URL: buildURL(site.BaseURL, "admin"), OGType: "website"}
	return component(page(site, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<h1>Dashboard</h1>`)
		if d.Message != "" {
			fmt.Fprintf(b, `<p class="flash">%s</p>`, esc(d.Message))
		}
		fmt.Fprintf(b, `<p class="counts">%d posts &middot; %d admins</p>`, len(d.Posts), len(d.Admins))
		fmt.Fprintf(b, `<form method="POST" action="/admin/logout/"><input type="hidden" name="_csrf" value="%s"><button type="submit">Log out</button></form>`, esc(d.Csrf))

		writePostTable(b, d)
		writePostForm(b, d)
		writeConfigForm(b, site, d.Csrf)
		writeAdminList(b, d)
	}))
}

func writePostTable(b *bytes.Buffer, d Dashboard) {
	b.WriteString(`<section class="admin-posts"><h2>Posts</h2>`)
	if len(d.Posts) == 0 {
		b.WriteString("<p>No posts yet.</p></section>")
		return
	}
	b.WriteString("<table><thead><tr><th>Title</th><th>Slug</th><th>Status</th><th>Created</th><th></th></tr></thead><tbody>")
	for _, p := range d.Posts {
		b.WriteString("<tr>")
		fmt.Fprintf(b, "<td>%s</td><td>%s</td><td>%s</td><td>%s</td>",
			esc(p.Title), esc(p.Slug), esc(p.Status), esc(FormatDate(p.CreatedAt)))
		b.WriteString("<td>")
		fmt.Fprintf(b, `<a href="/admin/post/%s/">Edit</a> `, esc(p.ID))
		fmt.Fprintf(b, `<form class="inline" method="POST" action="/admin/delete/%s/">`, esc(p.ID))
		fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s">`, esc(d.Csrf))
		b.WriteString(`<button type="submit">Delete</button></form>`)
		b.WriteString("</td></tr>")
	}
	b.WriteString("</tbody></table></section>")
}

func writePostForm(b *bytes.Buffer, d Dashboard) {
	title, content, seoTitle, seoDesc, status, id := "", "", "", "", "published", ""
	heading := "New post"
	switch {
	case d.Editing != nil:
		p := d.Editing
		title, content, seoTitle, seoDesc, status, id = p.Title, p.Content, p.SEOTitle, p.SEODescription, p.Status, p.ID
		heading = "Edit post"
	case d.Draft != nil:
		title, content = d.Draft.Title, d.Draft.Content
	}

	fmt.Fprintf(b, `<section class="admin-form"><h2>%s</h2>`, heading)
	b.WriteString(`<form id="post-form" method="POST" action="/admin/save/" enctype="multipart/form-data">`)
	fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s">`, esc(d.Csrf))
	fmt.Fprintf(b, `<input type="hidden" name="id" value="%s">`, esc(id))
	fmt.Fprintf(b, `<label>Title<input type="text" name="title" value="%s" required></label>`, esc(title))
	fmt.Fprintf(b, `<label>Content<textarea name="content" rows="12" required>%s</textarea></label>`, esc(content))
	fmt.Fprintf(b, `<label>SEO title<input type="text" name="seoTitle" value="%s" placeholder="derived from title when empty"></label>`, esc(seoTitle))
	fmt.Fprintf(b, `<label>SEO description<textarea name="seoDescription" rows="3" placeholder="derived from content when empty">%s</textarea></label>`, esc(seoDesc))
	b.WriteString(`<label>Thumbnail image<input type="file" name="thumbnailImage" accept="image/*"></label>`)
	b.WriteString(`<label>SEO image<input type="file" name="seoImage" accept="image/*"></label>`)
	b.WriteString(`<label>Status<select name="status">`)
	for _, s := range []string{"published", "draft"} {
		sel := ""
		if s == status {
			sel = " selected"
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, s, sel, s)
	}
	b.WriteString(`</select></label>`)
	b.WriteString(`<button type="submit">Save post</button></form>`)
	// Autosave the in-progress draft every two seconds, mirroring the form's
	// CSRF token into the header.
	b.WriteString(`<script>
(function () {
  var form = document.getElementById('post-form');
  if (!form || form.querySelector('input[name="id"]').value) return;
  var csrf = form.querySelector('input[name="_csrf"]').value;
  setInterval(function () {
    var title = form.querySelector('input[name="title"]').value;
    var content = form.querySelector('textarea[name="content"]').value;
    if (!title && !content) return;
    fetch('/admin/draft/', {
      method: 'POST',
      headers: {'Content-Type': 'application/x-www-form-urlencoded', 'X-CSRF-Token': csrf},
      body: new URLSearchParams({title: title, content: content})
    });
  }, 2000);
})();
</script>`)
	b.WriteString("</section>")
}

func writeConfigForm(b *bytes.Buffer, site Site, csrf string) {
	b.WriteString(`<section class="admin-config"><h2>Site configuration</h2>`)
	b.WriteString(`<form method="POST" action="/admin/config/" enctype="multipart/form-data">`)
	fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s">`, esc(csrf))
	fmt.Fprintf(b, `<label>Site title<input type="text" name="title" value="%s"></label>`, esc(site.Title))
	b.WriteString(`<label>Favicon<input type="file" name="favicon" accept="image/*"></label>`)
	b.WriteString(`<fieldset><legend>Banner</legend>`)
	fmt.Fprintf(b, `<label>Heading<input type="text" name="bannerHeading" value="%s"></label>`, esc(site.Banner.Heading))
	fmt.Fprintf(b, `<label>Subtext<input type="text" name="bannerSubtext" value="%s"></label>`, esc(site.Banner.Subtext))
	b.WriteString(`</fieldset><fieldset><legend>SEO</legend>`)
	fmt.Fprintf(b, `<label>Title<input type="text" name="seoTitle" value="%s"></label>`, esc(site.SEO.Title))
	fmt.Fprintf(b, `<label>Description<input type="text" name="seoDescription" value="%s"></label>`, esc(site.SEO.Description))
	fmt.Fprintf(b, `<label>OG image URL<input type="text" name="seoOgImage" value="%s"></label>`, esc(site.SEO.OGImage))
	b.WriteString(`</fieldset><fieldset><legend>Homepage ad</legend>`)
	fmt.Fprintf(b, `<label>Text<input type="text" name="adText" value="%s"></label>`, esc(site.Ad.Text))
	fmt.Fprintf(b, `<label>Image URL<input type="text" name="adImage" value="%s"></label>`, esc(site.Ad.Image))
	b.WriteString(`</fieldset><button type="submit">Save configuration</button></form></section>`)
}

func writeAdminList(b *bytes.Buffer, d Dashboard) {
	b.WriteString(`<section class="admin-admins"><h2>Admins</h2><ul>`)
	for _, a := range d.Admins {
		fmt.Fprintf(b, "<li>%s</li>", esc(a.Email))
	}
	b.WriteString("</ul>")
	b.WriteString(`<form method="POST" action="/admin/admins/">`)
	fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s">`, esc(d.Csrf))
	b.WriteString(`<label>Email<input type="email" name="email" required></label>`)
	b.WriteString(`<button type="submit">Add admin</button></form></section>`)
}
