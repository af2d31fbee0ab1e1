// Package stripe takes one-time donations through Stripe Checkout and
// Payment Intents.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"commentgate/internal/domain"
	"commentgate/internal/usecases"
	"commentgate/pkg/log"

	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Processor implements usecases.PaymentProcessor.
type Processor struct {
	secretKey  string
	backendURL string
	httpClient *http.Client
	api        *client.API
}

var _ usecases.PaymentProcessor = (*Processor)(nil)

type Option func(*Processor)

// WithBackendURL points the API backend elsewhere, e.g. at stripe-mock.
func WithBackendURL(url string) Option {
	return func(p *Processor) {
		p.backendURL = strings.TrimRight(strings.TrimSpace(url), "/")
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(p *Processor) {
		if httpClient != nil {
			p.httpClient = httpClient
		}
	}
}

// NewProcessor creates a Processor. An empty secret key leaves it
// unconfigured. The default transport sets no timeout of its own, so the
// SDK's 80s client timeout does not apply; calls end with their context.
func NewProcessor(secretKey string, opts ...Option) *Processor {
	p := &Processor{
		secretKey:  strings.TrimSpace(secretKey),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.secretKey == "" {
		return p
	}

	backends := &stripeapi.Backends{
		API:     stripeapi.GetBackendWithConfig(stripeapi.APIBackend, p.backendConfig()),
		Connect: stripeapi.GetBackendWithConfig(stripeapi.ConnectBackend, p.backendConfig()),
		Uploads: stripeapi.GetBackendWithConfig(stripeapi.UploadsBackend, p.backendConfig()),
	}
	p.api = client.New(p.secretKey, backends)
	return p
}

// backendConfig returns a fresh config; the SDK fills in default URLs in place.
func (p *Processor) backendConfig() *stripeapi.BackendConfig {
	cfg := &stripeapi.BackendConfig{LeveledLogger: leveledLogger{}}
	if p.httpClient != nil {
		cfg.HTTPClient = p.httpClient
	}
	if p.backendURL != "" {
		cfg.URL = stripeapi.String(p.backendURL)
	}
	return cfg
}

// Configured reports whether a secret key is set.
func (p *Processor) Configured() bool {
	return p.api != nil
}

// CreateCheckoutSession creates a hosted payment page and returns its URL.
func (p *Processor) CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (string, error) {
	if !p.Configured() {
		return "", domain.ErrPaymentsNotConfigured
	}

	product := &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripeapi.String(req.ProductName),
	}
	if req.Description != "" {
		product.Description = stripeapi.String(req.Description)
	}
	params := &stripeapi.CheckoutSessionParams{
		Mode:       stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		SuccessURL: stripeapi.String(req.SuccessURL),
		CancelURL:  stripeapi.String(req.CancelURL),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{{
			PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripeapi.String(req.Currency),
				ProductData: product,
				UnitAmount:  stripeapi.Int64(req.AmountCents),
			},
			Quantity: stripeapi.Int64(1),
		}},
	}
	params.Context = ctx

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create checkout session: %w", err)
	}
	if session.URL == "" {
		return "", errors.New("stripe: checkout session has no url")
	}
	return session.URL, nil
}

// CreatePaymentIntent creates a payment intent and returns its client secret.
func (p *Processor) CreatePaymentIntent(ctx context.Context, d domain.Donation) (string, error) {
	if !p.Configured() {
		return "", domain.ErrPaymentsNotConfigured
	}

	params := &stripeapi.PaymentIntentParams{
		Amount:   stripeapi.Int64(d.AmountCents),
		Currency: stripeapi.String(d.Currency),
		AutomaticPaymentMethods: &stripeapi.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripeapi.Bool(true),
		},
	}
	if d.Description != "" {
		params.Description = stripeapi.String(d.Description)
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// leveledLogger routes the SDK's own logging into pkg/log.
type leveledLogger struct{}

func (leveledLogger) Debugf(format string, v ...interface{}) {
	log.GlobalDebug(fmt.Sprintf(format, v...), "component", "stripe")
}

func (leveledLogger) Infof(format string, v ...interface{}) {
	log.GlobalDebug(fmt.Sprintf(format, v...), "component", "stripe")
}

func (leveledLogger) Warnf(format string, v ...interface{}) {
	log.GlobalWarn(fmt.Sprintf(format, v...), "component", "stripe")
}

func (leveledLogger) Errorf(format string, v ...interface{}) {
	log.GlobalError(fmt.Sprintf(format, v...), "component", "stripe")
}
