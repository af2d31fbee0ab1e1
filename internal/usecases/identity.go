package usecases

import "commentgate/internal/domain"

// Identity is the resolved author of a write.
type Identity struct {
	Credential  domain.Credential // used for the remote write
	Guest       bool
	DisplayName string // guest name, empty for session writes
	Attribution string // marker appended to the body, empty for session writes
}

// IdentityResolver picks the credential and attribution for a write.
type IdentityResolver struct {
	service domain.Credential
}

// NewIdentityResolver creates a resolver that writes for guests with the
// given service ("bot") credential. It may be empty.
func NewIdentityResolver(service domain.Credential) *IdentityResolver {
	return &IdentityResolver{service: service}
}

// Resolve applies, in order: a session credential wins with no attribution;
// otherwise a guest display name is required; the service credential writes
// with an attribution marker; no service credential means no write.
func (r *IdentityResolver) Resolve(session domain.Credential, displayName string) (Identity, error) {
	if !session.IsZero() {
		return Identity{Credential: session}, nil
	}

	name, err := domain.NormalizeDisplayName(displayName)
	if err != nil {
		return Identity{}, err
	}

	if r.service.IsZero() {
		return Identity{}, domain.ErrNoServiceCredential
	}

	return Identity{
		Credential:  r.service,
		Guest:       true,
		DisplayName: name,
		Attribution: domain.FormatAttribution(name),
	}, nil
}

// ServiceCredential returns the configured bot credential, or fallback when none is set.
func (r *IdentityResolver) ServiceCredential(fallback domain.Credential) domain.Credential {
	if r.service.IsZero() {
		return fallback
	}
	return r.service
}
