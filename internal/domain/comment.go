// Package domain contains the core comment, identity and donation entities.
package domain

import (
	"strings"
	"time"
)

// ContentKey is the normalized page path that names a discussion thread,
// e.g. "/posts/hello". The same page always yields the same key.
type ContentKey string

// NewContentKey joins a path prefix and a page slug into a ContentKey.
// The prefix is normalized to start and end with a single slash.
func NewContentKey(prefix, slug string) ContentKey {
	prefix = "/" + strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix != "/" {
		prefix += "/"
	}
	return ContentKey(prefix + strings.Trim(strings.TrimSpace(slug), "/"))
}

// String returns the key as a plain path.
func (k ContentKey) String() string {
	return string(k)
}

// Credential is an opaque GitHub access token.
// Its String form never reveals the token.
type Credential string

// IsZero reports whether no credential is present.
func (c Credential) IsZero() bool {
	return strings.TrimSpace(string(c)) == ""
}

// String implements fmt.Stringer without leaking the secret.
func (c Credential) String() string {
	if c.IsZero() {
		return ""
	}
	return "[redacted]"
}

// Author is the attributed writer of a comment.
// A guest author has an empty ProfileURL and a generated avatar.
type Author struct {
	DisplayName string
	ProfileURL  string
	AvatarURL   string
}

// IsGuest reports whether the author is an anonymous guest.
func (a Author) IsGuest() bool {
	return a.ProfileURL == ""
}

// Comment is a single discussion comment. Replies are one level deep only.
type Comment struct {
	ID           string
	RawBody      string // markdown as stored, may still carry the attribution marker
	RenderedBody string // HTML, attribution paragraph removed after normalization
	CreatedAt    time.Time
	Author       Author
	Replies      []Comment
}

// Discussion is the remote thread backing one ContentKey.
type Discussion struct {
	ID       string
	Title    string
	Number   int
	Comments []Comment
}

// NewDiscussion describes a thread to be created.
type NewDiscussion struct {
	RepositoryID string
	CategoryID   string
	Title        string
	Body         string
}

// User is the authenticated GitHub account behind a session credential.
type User struct {
	Login     string
	Name      string
	AvatarURL string
	URL       string
}

// CommentSettings is the per-deployment repository wiring for comments.
type CommentSettings struct {
	Repo         string // owner/name, used to scope searches
	RepositoryID string // GraphQL node id, needed to create threads
	CategoryID   string // GraphQL node id, needed to create threads
}
