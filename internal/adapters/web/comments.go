package web

import (
	"encoding/json"

	"commentgate/internal/usecases"
	"commentgate/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// ListComments returns the page's discussion, newest first, or
// {"discussion": null} when the page has none yet.
func (h *Handlers) ListComments(c *fiber.Ctx) error {
	key, err := ParseContentKey(h.pathPrefix(), c.Params("slug"))
	if err != nil {
		return respondError(c.UserContext(), c, "list comments rejected", err)
	}
	c.SetUserContext(log.WithFields(c.UserContext(), "content_key", key.String()))

	ctx, cancel := h.requestContext(c)
	defer cancel()

	discussion, err := h.listComments.Execute(ctx, key, sessionCredential(c))
	if err != nil {
		return respondError(ctx, c, "list comments failed", err)
	}

	return c.JSON(listResponse{Discussion: presentDiscussion(discussion)})
}

// PostComment writes a comment on the page as the signed-in user or as a guest.
func (h *Handlers) PostComment(c *fiber.Ctx) error {
	key, err := ParseContentKey(h.pathPrefix(), c.Params("slug"))
	if err != nil {
		return respondError(c.UserContext(), c, "post comment rejected", err)
	}
	session := sessionCredential(c)
	c.SetUserContext(log.WithFields(c.UserContext(), "content_key", key.String(), "guest", session.IsZero()))

	var req commentRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return respondError(c.UserContext(), c, "post comment rejected", errInvalidJSON)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	comment, err := h.postComment.Execute(ctx, key, usecases.CommentSubmission{
		Content:      req.Content,
		DisplayName:  req.DisplayName,
		DiscussionID: req.DiscussionID,
		Honeypot:     req.honeypot(),
		Challenge:    req.challenge(),
		Session:      session,
	})
	if err != nil {
		return respondError(ctx, c, "post comment failed", err)
	}

	return c.JSON(presentComment(*comment))
}
