package usecases

import (
	"context"

	"commentgate/internal/domain"
)

// DiscussionClient is the remote discussion store, bound to one credential.
type DiscussionClient interface {
	// SearchDiscussion returns the first discussion matching query with its
	// comments and replies in creation order, or nil when nothing matches.
	SearchDiscussion(ctx context.Context, query string) (*domain.Discussion, error)

	// FindDiscussionID returns the id of the first discussion matching query, or "".
	FindDiscussionID(ctx context.Context, query string) (string, error)

	// CreateDiscussion creates a discussion and returns its id.
	CreateDiscussion(ctx context.Context, in domain.NewDiscussion) (string, error)

	// AddDiscussionComment posts a top-level comment and returns it.
	AddDiscussionComment(ctx context.Context, discussionID, body string) (*domain.Comment, error)

	// Viewer returns the account that owns the credential.
	Viewer(ctx context.Context) (*domain.User, error)
}

// ClientFactory builds a DiscussionClient for an explicit credential.
// There is no default credential; callers always pass one.
type ClientFactory interface {
	WithCredential(cred domain.Credential) DiscussionClient
}

// SiteSettings exposes the deployment's site configuration.
// The comments block is absent when comments are not configured.
type SiteSettings interface {
	SiteURL() string
	Comments() (domain.CommentSettings, bool)
}

// OAuthProvider runs the authorization-code flow against the identity provider.
type OAuthProvider interface {
	Configured() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (domain.Credential, error)
}

// PaymentProcessor creates one-time payments.
type PaymentProcessor interface {
	Configured() bool
	CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (string, error)
	CreatePaymentIntent(ctx context.Context, d domain.Donation) (string, error)
}
