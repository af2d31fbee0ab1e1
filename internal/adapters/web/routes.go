package web

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// RoutesConfig holds cross-origin policy for the API.
type RoutesConfig struct {
	// CORSOrigins lists origins allowed to call the API from a browser.
	// Empty disables CORS handling.
	CORSOrigins []string
}

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers, cfg RoutesConfig) {
	app.Get("/healthz", handlers.Health)

	api := app.Group("/api")
	if len(cfg.CORSOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Content-Type",
			// Credentials cannot be combined with a wildcard origin.
			AllowCredentials: !slices.Contains(cfg.CORSOrigins, "*"),
		}))
	}

	// Comments keyed by page slug, e.g. /api/comments/hello -> /posts/hello
	api.Get("/comments/:slug", handlers.ListComments)
	api.Post("/comments/:slug", handlers.PostComment)

	// GitHub sign-in
	api.Get("/auth/signin", handlers.SignIn)
	api.Get("/auth/callback", handlers.Callback)
	api.Get("/auth/user", handlers.CurrentUser)
	api.Post("/auth/signout", handlers.SignOut)

	// Donations
	api.Post("/checkout", handlers.Checkout)
	api.Post("/payment-intent", handlers.PaymentIntent)
}
