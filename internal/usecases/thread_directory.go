package usecases

import (
	"context"
	"fmt"
	"net/url"

	"commentgate/internal/domain"
	"commentgate/pkg/log"
)

// ThreadDirectory maps a ContentKey to its remote discussion.
//
// Lookups always hit the remote store; nothing is cached. Two concurrent
// first writes for the same key can both miss the search and create two
// discussions: the store has no atomic find-or-create and this layer adds no
// lock. Later reads take the first search result.
type ThreadDirectory struct {
	clients ClientFactory
	site    SiteSettings
}

// NewThreadDirectory creates a new ThreadDirectory.
func NewThreadDirectory(clients ClientFactory, site SiteSettings) *ThreadDirectory {
	return &ThreadDirectory{
		clients: clients,
		site:    site,
	}
}

// SearchQuery returns the remote search expression for a key within repo.
func SearchQuery(repo string, key domain.ContentKey) string {
	return fmt.Sprintf("repo:%s in:title %s", repo, key)
}

// Find returns the discussion for key with its comments, or nil if none exists.
func (d *ThreadDirectory) Find(ctx context.Context, key domain.ContentKey, cred domain.Credential) (*domain.Discussion, error) {
	settings, ok := d.site.Comments()
	if !ok {
		return nil, domain.ErrCommentsNotConfigured
	}

	discussion, err := d.clients.WithCredential(cred).SearchDiscussion(ctx, SearchQuery(settings.Repo, key))
	if err != nil {
		return nil, domain.UpstreamError("search discussion", err)
	}
	return discussion, nil
}

// ResolveOrCreate returns the id of the discussion for key, creating it on first use.
func (d *ThreadDirectory) ResolveOrCreate(ctx context.Context, key domain.ContentKey, cred domain.Credential) (string, error) {
	settings, ok := d.site.Comments()
	if !ok {
		return "", domain.ErrCommentsNotConfigured
	}

	client := d.clients.WithCredential(cred)

	id, err := client.FindDiscussionID(ctx, SearchQuery(settings.Repo, key))
	if err != nil {
		return "", domain.UpstreamError("find discussion", err)
	}
	if id != "" {
		log.GlobalDebugCtx(ctx, "discussion found", "content_key", key.String(), "discussion_id", id)
		return id, nil
	}

	if settings.RepositoryID == "" || settings.CategoryID == "" {
		return "", domain.ErrThreadConfigMissing
	}

	id, err = client.CreateDiscussion(ctx, domain.NewDiscussion{
		RepositoryID: settings.RepositoryID,
		CategoryID:   settings.CategoryID,
		Title:        key.String(),
		Body:         d.stubBody(key),
	})
	if err != nil {
		return "", domain.UpstreamError("create discussion", err)
	}

	log.GlobalInfoCtx(ctx, "discussion created", "content_key", key.String(), "discussion_id", id)
	return id, nil
}

// stubBody is the opening post of a new thread, linking back to the page.
func (d *ThreadDirectory) stubBody(key domain.ContentKey) string {
	return fmt.Sprintf("Comments for %s\n\n[View Post](%s)", key, canonicalURL(d.site.SiteURL(), key))
}

// canonicalURL resolves key against the site base URL, or returns the bare
// path when the base is missing or unparsable.
func canonicalURL(site string, key domain.ContentKey) string {
	base, err := url.Parse(site)
	if err != nil || site == "" || base.Host == "" {
		return key.String()
	}
	return base.ResolveReference(&url.URL{Path: key.String()}).String()
}
