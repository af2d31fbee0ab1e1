package usecases

import (
	"context"
	"fmt"
	"math"
	"strings"

	"commentgate/internal/domain"
	"commentgate/pkg/log"
)

const (
	// MinCheckoutAmount is the smallest hosted-checkout donation, in dollars.
	MinCheckoutAmount = 0.50

	// MinPaymentIntentAmount is the smallest embedded-payment donation, in dollars.
	MinPaymentIntentAmount = 5.00
)

// DonationSettings describes how donations appear on the payment provider.
type DonationSettings struct {
	ProductName       string
	Description       string
	CustomDescription string
	Currency          string
}

// DonationsUseCase validates donation amounts and creates payments.
type DonationsUseCase struct {
	processor PaymentProcessor
	settings  func() DonationSettings
}

// NewDonationsUseCase creates a new DonationsUseCase. settings is read per request.
func NewDonationsUseCase(processor PaymentProcessor, settings func() DonationSettings) *DonationsUseCase {
	return &DonationsUseCase{
		processor: processor,
		settings:  settings,
	}
}

// Checkout creates a hosted checkout session and returns its URL.
// origin is the site the payer returns to.
func (uc *DonationsUseCase) Checkout(ctx context.Context, amount float64, custom bool, origin string) (string, error) {
	donation, err := uc.donation(amount, custom, MinCheckoutAmount)
	if err != nil {
		return "", err
	}

	origin = strings.TrimRight(origin, "/")
	url, err := uc.processor.CreateCheckoutSession(ctx, domain.CheckoutRequest{
		Donation:   donation,
		SuccessURL: origin + "/?success=true",
		CancelURL:  origin + "/?canceled=true",
	})
	if err != nil {
		return "", domain.UpstreamError("create checkout session", err)
	}

	log.GlobalInfoCtx(ctx, "checkout session created", "amount_cents", donation.AmountCents, "custom", custom)
	return url, nil
}

// PaymentIntent creates a client-confirmable payment and returns its client secret.
func (uc *DonationsUseCase) PaymentIntent(ctx context.Context, amount float64, custom bool) (string, error) {
	donation, err := uc.donation(amount, custom, MinPaymentIntentAmount)
	if err != nil {
		return "", err
	}

	secret, err := uc.processor.CreatePaymentIntent(ctx, donation)
	if err != nil {
		return "", domain.UpstreamError("create payment intent", err)
	}

	log.GlobalInfoCtx(ctx, "payment intent created", "amount_cents", donation.AmountCents, "custom", custom)
	return secret, nil
}

func (uc *DonationsUseCase) donation(amount float64, custom bool, minimum float64) (domain.Donation, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return domain.Donation{}, domain.ErrInvalidAmount
	}
	if amount < minimum {
		return domain.Donation{}, domain.ValidationError(fmt.Sprintf("amount must be at least $%.2f", minimum))
	}
	if !uc.processor.Configured() {
		return domain.Donation{}, domain.ErrPaymentsNotConfigured
	}

	s := uc.settings()
	description := s.Description
	if custom && s.CustomDescription != "" {
		description = s.CustomDescription
	}

	return domain.Donation{
		AmountCents: int64(math.Round(amount * 100)),
		Currency:    s.Currency,
		ProductName: s.ProductName,
		Description: description,
	}, nil
}
