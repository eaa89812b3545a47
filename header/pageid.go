package header

import "strings"

// PageID derives the page identifier from a URL path: the final segment
// with its ".html" removed. The root path and index.html both map to
// "index", as does anything that would otherwise come out empty.
func PageID(pathname string) string {
	page := pathname[strings.LastIndex(pathname, "/")+1:]

	switch page {
	case "", "index.html":
		return "index"
	case "photo.html":
		return "photo"
	case "about.html":
		return "about"
	case "contact.html":
		return "contact"
	}

	// Only the first occurrence is removed: "a.html.html" -> "a.html".
	if name := strings.Replace(page, ".html", "", 1); name != "" {
		return name
	}
	return "index"
}
