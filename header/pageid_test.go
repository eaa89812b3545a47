//go:build !wasm

package header

import "testing"

func TestPageID(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "index"},
		{"", "index"},
		{"/index.html", "index"},
		{"/about.html", "about"},
		{"/photo.html", "photo"},
		{"/contact.html", "contact"},
		{"/gallery.html", "gallery"},
		{"/site/gallery.html", "gallery"},
		{"/notes", "notes"},
		{"/blog/", "index"},
		{"/.html", "index"},
		{"/archive.html.html", "archive.html"},
		{"/old.html.bak", "old.bak"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := PageID(tt.path); got != tt.want {
				t.Errorf("PageID(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
