package stripe

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"commentgate/internal/domain"

	"github.com/stretchr/testify/require"
)

// fakeStripe records form posts and answers with a canned object.
type fakeStripe struct {
	mu     sync.Mutex
	paths  []string
	forms  []url.Values
	auth   []string
	status int
	body   string
}

func (f *fakeStripe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	form, _ := url.ParseQuery(string(raw))

	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	f.forms = append(f.forms, form)
	f.auth = append(f.auth, r.Header.Get("Authorization"))
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func newTestProcessor(t *testing.T, fake *fakeStripe) *Processor {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return NewProcessor("sk_test_123", WithBackendURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestCreateCheckoutSession_SendsLineItem(t *testing.T) {
	// Arrange
	fake := &fakeStripe{
		status: http.StatusOK,
		body:   `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`,
	}
	p := newTestProcessor(t, fake)

	// Act
	got, err := p.CreateCheckoutSession(context.Background(), domain.CheckoutRequest{
		Donation: domain.Donation{
			AmountCents: 250,
			Currency:    "usd",
			ProductName: "Buy me a coffee",
			Description: "Thanks!",
		},
		SuccessURL: "https://blog.example/?success=true",
		CancelURL:  "https://blog.example/?canceled=true",
	})

	// Assert
	require.NoError(t, err)
	require.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", got)
	require.Equal(t, "/v1/checkout/sessions", fake.paths[0])
	require.True(t, strings.HasPrefix(fake.auth[0], "Bearer sk_test_123"))

	form := fake.forms[0]
	require.Equal(t, "payment", form.Get("mode"))
	require.Equal(t, "https://blog.example/?success=true", form.Get("success_url"))
	require.Equal(t, "https://blog.example/?canceled=true", form.Get("cancel_url"))
	require.Equal(t, "250", form.Get("line_items[0][price_data][unit_amount]"))
	require.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
	require.Equal(t, "Buy me a coffee", form.Get("line_items[0][price_data][product_data][name]"))
	require.Equal(t, "Thanks!", form.Get("line_items[0][price_data][product_data][description]"))
	require.Equal(t, "1", form.Get("line_items[0][quantity]"))
}

func TestCreateCheckoutSession_MissingURL(t *testing.T) {
	fake := &fakeStripe{status: http.StatusOK, body: `{"id":"cs_test_2","object":"checkout.session"}`}
	p := newTestProcessor(t, fake)

	_, err := p.CreateCheckoutSession(context.Background(), domain.CheckoutRequest{
		Donation: domain.Donation{AmountCents: 100, Currency: "usd", ProductName: "Tip"},
	})

	require.Error(t, err)
}

func TestCreatePaymentIntent_ReturnsClientSecret(t *testing.T) {
	fake := &fakeStripe{
		status: http.StatusOK,
		body:   `{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_abc"}`,
	}
	p := newTestProcessor(t, fake)

	secret, err := p.CreatePaymentIntent(context.Background(), domain.Donation{
		AmountCents: 500,
		Currency:    "usd",
		Description: "Support the blog",
	})

	require.NoError(t, err)
	require.Equal(t, "pi_1_secret_abc", secret)
	require.Equal(t, "/v1/payment_intents", fake.paths[0])
	form := fake.forms[0]
	require.Equal(t, "500", form.Get("amount"))
	require.Equal(t, "usd", form.Get("currency"))
	require.Equal(t, "true", form.Get("automatic_payment_methods[enabled]"))
	require.Equal(t, "Support the blog", form.Get("description"))
}

func TestCreatePaymentIntent_APIError(t *testing.T) {
	fake := &fakeStripe{
		status: http.StatusBadRequest,
		body:   `{"error":{"type":"invalid_request_error","message":"Amount must be at least $0.50 usd"}}`,
	}
	p := newTestProcessor(t, fake)

	_, err := p.CreatePaymentIntent(context.Background(), domain.Donation{AmountCents: 1, Currency: "usd"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "Amount must be at least")
}

func TestUnconfigured(t *testing.T) {
	p := NewProcessor("  ")

	require.False(t, p.Configured())
	_, err := p.CreatePaymentIntent(context.Background(), domain.Donation{AmountCents: 500})
	require.True(t, errors.Is(err, domain.ErrPaymentsNotConfigured))
}

func TestNewProcessor_DefaultTransportHasNoTimeout(t *testing.T) {
	p := NewProcessor("sk_test_123", WithHTTPClient(nil))

	cfg := p.backendConfig()
	require.NotNil(t, cfg.HTTPClient, "the SDK default client would impose its own timeout")
	require.Zero(t, cfg.HTTPClient.Timeout)
}
