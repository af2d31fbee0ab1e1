package usecases

import "commentgate/internal/domain"

// NormalizeComment rewrites one comment for display: a trailing attribution
// marker replaces the author with the guest it names, and the rendered
// attribution paragraph is dropped. Applying it twice changes nothing.
// Replies are not touched.
func NormalizeComment(c *domain.Comment) {
	if name, ok := domain.ParseAttribution(c.RawBody); ok {
		c.Author = domain.GuestAuthor(name)
	}
	if c.RenderedBody != "" {
		c.RenderedBody = domain.StripAttributionHTML(c.RenderedBody)
	}
}

// NormalizeThread normalizes comments and their replies and orders both
// levels newest first. Input must be in creation order, as the remote store
// returns it.
func NormalizeThread(comments []domain.Comment) []domain.Comment {
	for i := range comments {
		NormalizeComment(&comments[i])
		for j := range comments[i].Replies {
			NormalizeComment(&comments[i].Replies[j])
		}
		reverse(comments[i].Replies)
	}
	reverse(comments)
	return comments
}

// NormalizeNewGuestComment presents a just-written guest comment with the
// display name already known, without re-parsing the body.
func NormalizeNewGuestComment(c *domain.Comment, displayName string) {
	c.Author = domain.GuestAuthor(displayName)
	if c.RenderedBody != "" {
		c.RenderedBody = domain.StripAttributionHTML(c.RenderedBody)
	}
}

func reverse(comments []domain.Comment) {
	for i, j := 0, len(comments)-1; i < j; i, j = i+1, j-1 {
		comments[i], comments[j] = comments[j], comments[i]
	}
}
