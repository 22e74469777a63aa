// Package media resolves item image references into displayable URLs.
package media

import (
	"strconv"
	"strings"
)

// DefaultImageWidth is the thumbnail width requested when none is configured.
const DefaultImageWidth = 300

const (
	localImagePrefix = "images/"
	commonsRedirect  = "https://commons.wikimedia.org/w/index.php?title=Special:Redirect/file/"
)

// ImageURL turns an item's image reference into a URL. References under
// images/ are served by the application itself; anything else is treated as a
// Wikimedia Commons file name and resolved through the Special:Redirect page at
// the requested width. An empty reference yields an empty URL.
func ImageURL(image string, width int) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, localImagePrefix) {
		return "/" + image
	}
	if width <= 0 {
		width = DefaultImageWidth
	}

	return commonsRedirect + escapeComponent(image) + "&width=" + strconv.Itoa(width)
}

// escapeComponent escapes a file name for use as a single URL component.
// It leaves A-Z a-z 0-9 and -_.!~*'() alone and percent-encodes every other
// UTF-8 byte, so spaces become %20 and & = ? + # / are always encoded.
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
