package views

import (
	"bytes"
	"fmt"
)

// page wraps body in the shared document shell: head, navigation, footer.
func page(site Site, meta PageMeta, jsonLD string, body func(b *bytes.Buffer)) func(b *bytes.Buffer) {
	return func(b *bytes.Buffer) {
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		writeMeta(b, site, meta)
		b.WriteString(`<link rel="stylesheet" href="/public/site.css">`)
		if jsonLD != "" {
			fmt.Fprintf(b, `<script type="application/ld+json">%s</script>`, jsonLD)
		}
		b.WriteString("</head><body>")
		writeNav(b, site)
		b.WriteString(`<main class="page">`)
		body(b)
		b.WriteString("</main>")
		writeFooter(b, site)
		b.WriteString("</body></html>")
	}
}

func writeNav(b *bytes.Buffer, site Site) {
	b.WriteString(`<header class="nav"><nav>`)
	fmt.Fprintf(b, `<a class="brand" href="/">%s</a>`, esc(site.Title))
	b.WriteString(`<a href="/about/">About</a>`)
	b.WriteString(`<a href="/blog/">Blog</a>`)
	b.WriteString(`<a href="/contact/">Contact</a>`)
	b.WriteString("</nav></header>")
}

func writeFooter(b *bytes.Buffer, site Site) {
	b.WriteString(`<footer class="footer">`)
	fmt.Fprintf(b, "<p>&copy; %s</p>", esc(site.Title))
	b.WriteString("</footer>")
}
