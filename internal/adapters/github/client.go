// Package github stores comment threads as GitHub Discussions through the
// GraphQL API.
package github

import (
	"context"
	"net/http"
	"strings"

	"commentgate/internal/domain"
	"commentgate/internal/usecases"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// DefaultEndpoint is the public GitHub GraphQL endpoint.
const DefaultEndpoint = "https://api.github.com/graphql"

// ClientFactory builds credential-bound discussion clients.
type ClientFactory struct {
	endpoint   string
	httpClient *http.Client
}

type Option func(*ClientFactory)

// WithEndpoint overrides the GraphQL endpoint, e.g. for GitHub Enterprise.
func WithEndpoint(endpoint string) Option {
	return func(f *ClientFactory) {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			f.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets the base transport wrapped by the token source.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(f *ClientFactory) {
		if httpClient != nil {
			f.httpClient = httpClient
		}
	}
}

// NewClientFactory creates a ClientFactory. The default transport sets no
// timeout of its own; calls end when the caller's context does.
func NewClientFactory(opts ...Option) *ClientFactory {
	f := &ClientFactory{
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithCredential returns a client that authenticates every call with cred.
func (f *ClientFactory) WithCredential(cred domain.Credential) usecases.DiscussionClient {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, f.httpClient)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(cred)})
	return &Client{api: githubv4.NewEnterpriseClient(f.endpoint, oauth2.NewClient(ctx, ts))}
}

// Client implements usecases.DiscussionClient for one credential.
type Client struct {
	api *githubv4.Client
}

var _ usecases.DiscussionClient = (*Client)(nil)
var _ usecases.ClientFactory = (*ClientFactory)(nil)
