package web

import (
	"context"

	"commentgate/internal/domain"
	"commentgate/pkg/log"

	"github.com/gofiber/fiber/v2"
)

var (
	errInvalidJSON        = domain.ValidationError("invalid JSON")
	errInvalidContentType = domain.ValidationError("invalid content type")
)

// errorResponse is the body of every failed API call.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// presentError maps err to a status and a minimal body. Wrapped causes are
// never exposed.
func presentError(err error) (int, errorResponse) {
	switch kind := domain.KindOf(err); kind {
	case domain.KindValidation, domain.KindAuth:
		return fiber.StatusBadRequest, errorResponse{Error: domain.ReasonOf(err)}
	case domain.KindConfiguration, domain.KindUpstream:
		return fiber.StatusInternalServerError, errorResponse{Error: domain.ReasonOf(err), Details: string(kind)}
	default:
		return fiber.StatusInternalServerError, errorResponse{Error: "internal error", Details: "internal"}
	}
}

// respondError logs err with full detail and writes the minimal response.
func respondError(ctx context.Context, c *fiber.Ctx, msg string, err error) error {
	status, body := presentError(err)
	if status >= fiber.StatusInternalServerError {
		log.GlobalErrorCtx(ctx, msg, "kind", body.Details, "error", err)
	} else {
		log.GlobalDebugCtx(ctx, msg, "reason", body.Error)
	}
	return c.Status(status).JSON(body)
}
