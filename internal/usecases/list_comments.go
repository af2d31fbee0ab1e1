package usecases

import (
	"context"

	"commentgate/internal/domain"
	"commentgate/pkg/log"
)

// ListCommentsUseCase reads the discussion for a page. It never creates threads.
type ListCommentsUseCase struct {
	site      SiteSettings
	directory *ThreadDirectory
	identity  *IdentityResolver
}

// NewListCommentsUseCase creates a new ListCommentsUseCase.
func NewListCommentsUseCase(site SiteSettings, directory *ThreadDirectory, identity *IdentityResolver) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		site:      site,
		directory: directory,
		identity:  identity,
	}
}

// Execute returns the normalized discussion for key, or nil when the page has
// no thread yet. session is only used when no service credential is configured.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, key domain.ContentKey, session domain.Credential) (*domain.Discussion, error) {
	if _, ok := uc.site.Comments(); !ok {
		return nil, domain.ErrCommentsNotConfigured
	}

	cred := uc.identity.ServiceCredential(session)
	if cred.IsZero() {
		return nil, domain.ErrNoReadCredential
	}

	discussion, err := uc.directory.Find(ctx, key, cred)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		log.GlobalDebugCtx(ctx, "no discussion for page", "content_key", key.String())
		return nil, nil
	}

	discussion.Comments = NormalizeThread(discussion.Comments)
	return discussion, nil
}
