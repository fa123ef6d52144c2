package billing

import (
	"context"
	"fmt"
	"math"

	"github.com/bozhidarvelkov/pixelmorph/internal/shared"
	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/webhook"
)

type Billing struct {
	sc            *stripe.Client
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewBilling(secretKey, webhookSecret, frontendBaseURL string) *Billing {
	sc := stripe.NewClient(secretKey)
	return &Billing{
		sc:            sc,
		webhookSecret: webhookSecret,
		successURL:    frontendBaseURL + "/profile",
		cancelURL:     frontendBaseURL + "/",
	}
}

// AmountToCents converts a major-unit decimal amount to the processor's
// minor-unit integer. Rounding, not truncation: float artifacts like
// 19.99*100 = 1998.999... must still come out as 1999.
func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// checkoutParams builds the session request for a credit purchase: a single
// one-time line item at quantity 1, with plan, credits and buyer id attached
// as metadata the processor echoes back verbatim on completion.
func (b *Billing) checkoutParams(plan string, amount float64, credits int, buyerID string) *stripe.CheckoutSessionCreateParams {
	amountCents := AmountToCents(amount)
	return &stripe.CheckoutSessionCreateParams{
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(plan),
					},
					UnitAmount: stripe.Int64(amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		Metadata: map[string]string{
			"plan":    plan,
			"credits": fmt.Sprintf("%d", credits),
			"buyerId": buyerID,
		},
		SuccessURL: stripe.String(b.successURL),
		CancelURL:  stripe.String(b.cancelURL),
	}
}

// CheckoutCredits starts a payment session and returns it; the caller
// redirects the buyer to session.URL. Completion arrives out-of-band via the
// webhook, no local state is held pending it.
func (b *Billing) CheckoutCredits(ctx context.Context, plan string, amount float64, credits int, buyerID string) (*stripe.CheckoutSession, error) {
	session, err := b.sc.V1CheckoutSessions.Create(ctx, b.checkoutParams(plan, amount, credits, buyerID))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create checkout session: %v", shared.ErrorExternalService, err)
	}
	return session, nil
}

func (b *Billing) VerifyWebhookSignature(payload []byte, signature string) (*stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, b.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return &event, nil
}
