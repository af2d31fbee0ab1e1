package web

import (
	"commentgate/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// SignIn starts the OAuth flow: it issues a state cookie, remembers a local
// return path and redirects to the provider.
func (h *Handlers) SignIn(c *fiber.Ctx) error {
	state, authURL, err := h.auth.BeginSignIn()
	if err != nil {
		return respondError(c.UserContext(), c, "sign-in failed", err)
	}

	h.setCookie(c, stateCookie, state, flowCookieTTL)
	if to := c.Query("redirect_to"); isLocalPath(to) {
		h.setCookie(c, redirectCookie, to, flowCookieTTL)
	}

	return c.Redirect(authURL, fiber.StatusFound)
}

// Callback completes the OAuth flow and stores the session credential.
func (h *Handlers) Callback(c *fiber.Ctx) error {
	issued := c.Cookies(stateCookie)
	h.clearCookie(c, stateCookie)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	cred, err := h.auth.CompleteSignIn(ctx, c.Query("code"), c.Query("state"), issued)
	if err != nil {
		return respondError(ctx, c, "oauth callback failed", err)
	}
	h.setCookie(c, sessionCookie, string(cred), sessionCookieTTL)

	target := c.Cookies(redirectCookie)
	h.clearCookie(c, redirectCookie)
	if !isLocalPath(target) {
		target = "/"
	}

	log.GlobalInfoCtx(ctx, "user signed in")
	return c.Redirect(target, fiber.StatusFound)
}

// CurrentUser returns the signed-in account, or {"user": null}.
// A failed lookup is logged and reported as signed out.
func (h *Handlers) CurrentUser(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	user, err := h.auth.CurrentUser(ctx, sessionCredential(c))
	if err != nil {
		log.GlobalWarnCtx(ctx, "current user lookup failed", "error", err)
		return c.JSON(currentUserResponse{})
	}
	return c.JSON(currentUserResponse{User: presentUser(user)})
}

// SignOut clears the session cookie.
func (h *Handlers) SignOut(c *fiber.Ctx) error {
	h.clearCookie(c, sessionCookie)
	return c.SendStatus(fiber.StatusNoContent)
}
