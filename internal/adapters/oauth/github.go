// Package oauth runs the GitHub OAuth authorization-code flow.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"commentgate/internal/domain"
	"commentgate/internal/usecases"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// Scopes requested at sign-in. public_repo is needed to comment as the user.
var Scopes = []string{"public_repo", "read:user", "user:email"}

// Provider implements usecases.OAuthProvider for GitHub.
type Provider struct {
	config     *oauth2.Config
	httpClient *http.Client
}

var _ usecases.OAuthProvider = (*Provider)(nil)

type Option func(*Provider)

// WithEndpoint overrides the authorize and token URLs.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(p *Provider) {
		endpoint.AuthStyle = oauth2.AuthStyleInParams
		p.config.Endpoint = endpoint
	}
}

// WithHTTPClient sets the client used for the token exchange.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = httpClient
	}
}

// NewProvider creates a Provider. With an empty client id or secret the
// provider reports itself unconfigured and every exchange fails.
func NewProvider(clientID, clientSecret string, opts ...Option) *Provider {
	endpoint := githuboauth.Endpoint
	endpoint.AuthStyle = oauth2.AuthStyleInParams
	p := &Provider{
		config: &oauth2.Config{
			ClientID:     strings.TrimSpace(clientID),
			ClientSecret: strings.TrimSpace(clientSecret),
			Endpoint:     endpoint,
			Scopes:       Scopes,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Configured reports whether client id and secret are set.
func (p *Provider) Configured() bool {
	return p.config.ClientID != "" && p.config.ClientSecret != ""
}

// AuthCodeURL returns the authorize URL carrying state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token.
// Provider-side rejections come back as domain auth errors.
func (p *Provider) Exchange(ctx context.Context, code string) (domain.Credential, error) {
	if !p.Configured() {
		return "", domain.ErrOAuthNotConfigured
	}
	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.ErrorCode != "" {
			reason := re.ErrorDescription
			if reason == "" {
				reason = re.ErrorCode
			}
			return "", domain.AuthError(reason, err)
		}
		return "", fmt.Errorf("oauth: exchange code: %w", err)
	}
	if tok.AccessToken == "" {
		return "", domain.AuthError("no access token returned", nil)
	}
	return domain.Credential(tok.AccessToken), nil
}
