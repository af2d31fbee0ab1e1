package usecases

import (
	"context"
	"strings"

	"commentgate/internal/domain"
	"commentgate/pkg/log"
)

// CommentSubmission is one write request on a page.
type CommentSubmission struct {
	Content      string
	DisplayName  string
	DiscussionID string // optional, skips thread resolution when set
	Honeypot     string
	Challenge    *domain.Challenge
	Session      domain.Credential
}

// PostCommentUseCase writes a comment: abuse check, identity, thread
// resolution, remote write, then normalization. Any failure aborts.
type PostCommentUseCase struct {
	site      SiteSettings
	guard     *AbuseGuard
	identity  *IdentityResolver
	directory *ThreadDirectory
	clients   ClientFactory
}

// NewPostCommentUseCase creates a new PostCommentUseCase.
func NewPostCommentUseCase(
	site SiteSettings,
	guard *AbuseGuard,
	identity *IdentityResolver,
	directory *ThreadDirectory,
	clients ClientFactory,
) *PostCommentUseCase {
	return &PostCommentUseCase{
		site:      site,
		guard:     guard,
		identity:  identity,
		directory: directory,
		clients:   clients,
	}
}

// Execute posts sub on the page named by key and returns the new comment.
func (uc *PostCommentUseCase) Execute(ctx context.Context, key domain.ContentKey, sub CommentSubmission) (*domain.Comment, error) {
	if _, ok := uc.site.Comments(); !ok {
		return nil, domain.ErrCommentsNotConfigured
	}

	if err := uc.guard.Check(sub.Honeypot, sub.Challenge, !sub.Session.IsZero()); err != nil {
		log.GlobalWarnCtx(ctx, "comment rejected by abuse guard", "content_key", key.String(), "reason", domain.ReasonOf(err))
		return nil, err
	}

	if strings.TrimSpace(sub.Content) == "" {
		return nil, domain.ErrContentRequired
	}

	who, err := uc.identity.Resolve(sub.Session, sub.DisplayName)
	if err != nil {
		return nil, err
	}

	discussionID := strings.TrimSpace(sub.DiscussionID)
	if discussionID == "" {
		discussionID, err = uc.directory.ResolveOrCreate(ctx, key, uc.identity.ServiceCredential(who.Credential))
		if err != nil {
			return nil, err
		}
	}

	comment, err := uc.clients.WithCredential(who.Credential).AddDiscussionComment(ctx, discussionID, sub.Content+who.Attribution)
	if err != nil {
		return nil, domain.UpstreamError("add discussion comment", err)
	}

	if who.Guest {
		NormalizeNewGuestComment(comment, who.DisplayName)
	} else {
		NormalizeComment(comment)
	}

	log.GlobalInfoCtx(ctx, "comment posted",
		"content_key", key.String(),
		"discussion_id", discussionID,
		"comment_id", comment.ID,
		"guest", who.Guest,
	)
	return comment, nil
}
