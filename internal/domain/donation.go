package domain

// Donation is a one-time payment request, amounts in the currency's minor unit.
type Donation struct {
	AmountCents int64
	Currency    string
	ProductName string
	Description string
}

// CheckoutRequest is a Donation paid through a hosted checkout page.
type CheckoutRequest struct {
	Donation
	SuccessURL string
	CancelURL  string
}
