package unisite

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!! 2024", "hello-world-2024"},
		{"My First Post", "my-first-post"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple---separators___here", "multiple-separators-here"},
		{"ALL CAPS", "all-caps"},
		{"ends with punctuation!", "ends-with-punctuation"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello", 160); got != "hello" {
		t.Errorf("short string should pass through, got %q", got)
	}
	long := make([]rune, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, 'a')
	}
	if got := TruncateRunes(string(long), 160); len([]rune(got)) != 160 {
		t.Errorf("truncated length = %d, want 160", len([]rune(got)))
	}
	// Multibyte runes must not be split.
	if got := TruncateRunes("ééééé", 3); got != "ééé" {
		t.Errorf("TruncateRunes on multibyte = %q, want %q", got, "ééé")
	}
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("https://uniunity.space", "blog", "my-post"); got != "https://uniunity.space/blog/my-post/" {
		t.Errorf("BuildURL = %q", got)
	}
	if got := BuildURL("https://uniunity.space"); got != "https://uniunity.space" {
		t.Errorf("BuildURL without segments = %q", got)
	}
}
