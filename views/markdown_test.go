package views

import (
	"strings"
	"testing"
)

func TestRenderMarkdownHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", "<h1>Heading 1</h1>"},
		{"## Heading 2", "<h2>Heading 2</h2>"},
		{"### Heading 3", "<h3>Heading 3</h3>"},
	}
	for _, tt := range tests {
		got := RenderMarkdown(tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("RenderMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"`code`", "<code>code</code>"},
	}
	for _, tt := range tests {
		got := RenderMarkdown(tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("RenderMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownList(t *testing.T) {
	got := RenderMarkdown("- item 1\n- item 2")
	if !strings.Contains(got, "<ul>") || !strings.Contains(got, "<li>item 1</li>") {
		t.Errorf("expected a list, got %q", got)
	}
}

func TestRenderMarkdownGFMStrikethrough(t *testing.T) {
	got := RenderMarkdown("~~gone~~")
	if !strings.Contains(got, "<del>gone</del>") {
		t.Errorf("expected strikethrough, got %q", got)
	}
}

func TestRenderMarkdownStripsScript(t *testing.T) {
	got := RenderMarkdown("hello <script>alert(1)</script> world")
	if strings.Contains(got, "<script") {
		t.Errorf("no script element may survive, got %q", got)
	}
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Errorf("surrounding text must survive, got %q", got)
	}
}

func TestRenderMarkdownStripsEventHandlers(t *testing.T) {
	got := RenderMarkdown(`<img src="x.png" onerror="alert(1)">`)
	if strings.Contains(got, "onerror") {
		t.Errorf("event handlers must be stripped, got %q", got)
	}
}

func TestRenderMarkdownLinks(t *testing.T) {
	got := RenderMarkdown("[site](https://example.com/my_page/sub_path)")
	if !strings.Contains(got, `href="https://example.com/my_page/sub_path"`) {
		t.Errorf("expected link with underscores intact, got %q", got)
	}
	if !strings.Contains(got, ">site</a>") {
		t.Errorf("expected link text, got %q", got)
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	got := RenderMarkdown("```\ncode here\n```")
	if !strings.Contains(got, "<pre>") || !strings.Contains(got, "<code>") {
		t.Errorf("expected a code block, got %q", got)
	}
	if !strings.Contains(got, "code here") {
		t.Errorf("code block missing content: %q", got)
	}
}
