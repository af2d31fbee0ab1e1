package web

import (
	"strings"
	"time"

	"commentgate/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionCookie  = "github_access_token"
	stateCookie    = "github_oauth_state"
	redirectCookie = "github_redirect_to"

	flowCookieTTL    = 10 * time.Minute
	sessionCookieTTL = 30 * 24 * time.Hour
)

// setCookie writes an HttpOnly, SameSite=Lax cookie scoped to the whole
// site. Secure is set in production.
func (h *Handlers) setCookie(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		Secure:   h.production,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearCookie expires a cookie written by setCookie.
func (h *Handlers) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   h.production,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func sessionCredential(c *fiber.Ctx) domain.Credential {
	return domain.Credential(c.Cookies(sessionCookie))
}

// isLocalPath reports whether p is a same-site absolute path. Scheme-relative
// ("//host") and backslash forms are rejected.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
