package usecases

import (
	"context"
	"crypto/subtle"
	"errors"

	"commentgate/internal/domain"

	"github.com/google/uuid"
)

// AuthUseCase drives GitHub sign-in and session lookups.
type AuthUseCase struct {
	oauth   OAuthProvider
	clients ClientFactory
	newID   func() string
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(oauth OAuthProvider, clients ClientFactory) *AuthUseCase {
	return &AuthUseCase{
		oauth:   oauth,
		clients: clients,
		newID:   uuid.NewString,
	}
}

// BeginSignIn returns a fresh state token and the provider URL to redirect to.
func (uc *AuthUseCase) BeginSignIn() (state, redirectURL string, err error) {
	if !uc.oauth.Configured() {
		return "", "", domain.ErrOAuthNotConfigured
	}
	state = uc.newID()
	return state, uc.oauth.AuthCodeURL(state), nil
}

// CompleteSignIn checks state against the issued one and exchanges code for a credential.
func (uc *AuthUseCase) CompleteSignIn(ctx context.Context, code, state, issuedState string) (domain.Credential, error) {
	if state == "" || issuedState == "" || subtle.ConstantTimeCompare([]byte(state), []byte(issuedState)) != 1 {
		return "", domain.ErrInvalidState
	}
	if !uc.oauth.Configured() {
		return "", domain.ErrOAuthNotConfigured
	}

	cred, err := uc.oauth.Exchange(ctx, code)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return "", de
		}
		return "", domain.UpstreamError("oauth token exchange", err)
	}
	return cred, nil
}

// CurrentUser returns the account behind session, or nil without a session.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, session domain.Credential) (*domain.User, error) {
	if session.IsZero() {
		return nil, nil
	}
	user, err := uc.clients.WithCredential(session).Viewer(ctx)
	if err != nil {
		return nil, domain.UpstreamError("viewer lookup", err)
	}
	return user, nil
}
