package unisite

import "testing"

func TestStaticCredentials(t *testing.T) {
	v := StaticCredentials{Username: "admin", Password: "hunter2"}

	cases := []struct {
		username string
		password string
		want     bool
	}{
		{"admin", "hunter2", true},
		{"admin", "wrong", false},
		{"other", "hunter2", false},
		{"", "", false},
		{"admin", "hunter2 ", false},
	}
	for _, tc := range cases {
		if got := v.Verify(tc.username, tc.password); got != tc.want {
			t.Errorf("Verify(%q, %q) = %v, want %v", tc.username, tc.password, got, tc.want)
		}
	}
}
