package web

import (
	"context"
	"time"

	"commentgate/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	listComments *usecases.ListCommentsUseCase
	postComment  *usecases.PostCommentUseCase
	auth         *usecases.AuthUseCase
	donations    *usecases.DonationsUseCase

	pathPrefix func() string
	production bool
	timeout    time.Duration
}

// HandlersConfig wires the use cases and request policy into Handlers.
type HandlersConfig struct {
	ListComments *usecases.ListCommentsUseCase
	PostComment  *usecases.PostCommentUseCase
	Auth         *usecases.AuthUseCase
	Donations    *usecases.DonationsUseCase

	// PathPrefix is read per request so site file reloads apply.
	PathPrefix func() string

	// Production marks cookies Secure.
	Production bool

	// RequestTimeout bounds the remote calls of one request. Zero disables it.
	RequestTimeout time.Duration
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg HandlersConfig) *Handlers {
	prefix := cfg.PathPrefix
	if prefix == nil {
		prefix = func() string { return "/posts/" }
	}
	return &Handlers{
		listComments: cfg.ListComments,
		postComment:  cfg.PostComment,
		auth:         cfg.Auth,
		donations:    cfg.Donations,
		pathPrefix:   prefix,
		production:   cfg.Production,
		timeout:      cfg.RequestTimeout,
	}
}

// requestContext derives the context for the remote calls of a request.
func (h *Handlers) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// Health reports liveness.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
