package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// The remote store has no guest identity field, so a guest's name travels
// inside the comment body as a trailing marker. Everything that reads or
// writes the marker goes through this file.

const (
	// MaxDisplayNameLength bounds guest names, in runes.
	MaxDisplayNameLength = 64

	// GuestAvatarBaseURL is the avatar generator seeded with the guest name.
	GuestAvatarBaseURL = "https://api.dicebear.com/9.x/initials/svg"
)

var (
	// attributionRegex matches "\n\n_(Posted by NAME)_" at the very end of a markdown body.
	attributionRegex = regexp.MustCompile(`\n\n_\(Posted by (.*?)\)_$`)

	// attributionHTMLRegex matches the rendered form: a trailing paragraph
	// holding only <em>(Posted by NAME)</em>.
	attributionHTMLRegex = regexp.MustCompile(`<p[^>]*>\s*<em>\(Posted by .*?\)</em>\s*</p>\s*$`)
)

// FormatAttribution returns the marker appended to a guest comment body.
func FormatAttribution(displayName string) string {
	return "\n\n_(Posted by " + displayName + ")_"
}

// ParseAttribution extracts the guest name from a markdown body.
func ParseAttribution(body string) (displayName string, ok bool) {
	matches := attributionRegex.FindStringSubmatch(body)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

// StripAttributionHTML removes the trailing attribution paragraph from rendered HTML.
func StripAttributionHTML(html string) string {
	return attributionHTMLRegex.ReplaceAllString(html, "")
}

// GuestAvatarURL returns the deterministic avatar for a guest name.
// The name is encoded as a URI component: letters, digits and -_.!~*'()
// are kept, every other byte is percent-encoded.
func GuestAvatarURL(displayName string) string {
	return GuestAvatarBaseURL + "?seed=" + encodeURIComponent(displayName)
}

func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// GuestAuthor returns the Author presented for a guest name.
func GuestAuthor(displayName string) Author {
	return Author{
		DisplayName: displayName,
		ProfileURL:  "",
		AvatarURL:   GuestAvatarURL(displayName),
	}
}

// NormalizeDisplayName collapses whitespace in a guest name and checks that
// it can round-trip through the attribution marker.
func NormalizeDisplayName(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "", ErrDisplayNameRequired
	}
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		return "", ErrDisplayNameTooLong
	}
	if strings.Contains(name, ")_") {
		return "", ErrInvalidDisplayName
	}
	return name, nil
}
