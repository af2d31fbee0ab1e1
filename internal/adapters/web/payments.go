package web

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Checkout creates a hosted checkout session from a JSON or form body and
// returns {"url": ...}.
func (h *Handlers) Checkout(c *fiber.Ctx) error {
	var req donationRequest
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.Contains(contentType, fiber.MIMEApplicationJSON):
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return respondError(c.UserContext(), c, "checkout rejected", errInvalidJSON)
		}
	case strings.Contains(contentType, fiber.MIMEApplicationForm),
		strings.Contains(contentType, fiber.MIMEMultipartForm):
		req.Amount = flexString(c.FormValue("amount"))
		req.IsCustom = c.FormValue("isCustom") == "true"
	default:
		return respondError(c.UserContext(), c, "checkout rejected", errInvalidContentType)
	}

	origin := c.Get(fiber.HeaderOrigin)
	if origin == "" {
		origin = c.BaseURL()
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	url, err := h.donations.Checkout(ctx, parseAmount(string(req.Amount)), req.custom(), origin)
	if err != nil {
		return respondError(ctx, c, "checkout failed", err)
	}
	return c.JSON(fiber.Map{"url": url})
}

// PaymentIntent creates an embedded payment from a JSON body and returns
// {"clientSecret": ...}.
func (h *Handlers) PaymentIntent(c *fiber.Ctx) error {
	var req donationRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return respondError(c.UserContext(), c, "payment intent rejected", errInvalidJSON)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	secret, err := h.donations.PaymentIntent(ctx, parseAmount(string(req.Amount)), req.custom())
	if err != nil {
		return respondError(ctx, c, "payment intent failed", err)
	}
	return c.JSON(fiber.Map{"clientSecret": secret})
}
