package web

import (
	"regexp"

	"commentgate/internal/domain"
)

// slugRegex matches a single path segment: letters, digits, dot, dash and
// underscore, not starting with punctuation.
var slugRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ParseContentKey joins prefix and the page slug into a ContentKey.
// Returns domain.ErrInvalidSlug if the slug format is invalid.
func ParseContentKey(prefix, slug string) (domain.ContentKey, error) {
	if !slugRegex.MatchString(slug) {
		return "", domain.ErrInvalidSlug
	}
	return domain.NewContentKey(prefix, slug), nil
}
