// Package checkout starts subscription purchase flows. It is entirely
// orthogonal to transaction parsing: the only operation is turning a plan
// choice into a redirect target.
package checkout

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// Plan identifies a subscription billing interval.
type Plan string

const (
	PlanMonthly Plan = "monthly"
	PlanYearly  Plan = "yearly"
)

// ParsePlan validates a plan name from a request.
func ParsePlan(s string) (Plan, error) {
	switch Plan(s) {
	case PlanMonthly, PlanYearly:
		return Plan(s), nil
	}
	return "", fmt.Errorf("invalid plan %q (expected monthly or yearly)", s)
}

// Client creates checkout sessions. Without a secret key it runs in demo
// mode and hands out a local checkout URL instead of calling Stripe.
type Client struct {
	secretKey string
	prices    map[Plan]string
	origin    string
}

// New creates a checkout client. origin is the public base URL used for
// the success and cancel redirects.
func New(secretKey, monthlyPriceID, yearlyPriceID, origin string) *Client {
	return &Client{
		secretKey: secretKey,
		prices: map[Plan]string{
			PlanMonthly: monthlyPriceID,
			PlanYearly:  yearlyPriceID,
		},
		origin: origin,
	}
}

// Demo reports whether the client runs without Stripe credentials.
func (c *Client) Demo() bool {
	return c.secretKey == ""
}

// CreateSession begins the purchase flow for a plan and returns the URL to
// redirect the buyer to.
func (c *Client) CreateSession(plan Plan) (string, error) {
	price, ok := c.prices[plan]
	if !ok {
		return "", fmt.Errorf("invalid plan %q (expected monthly or yearly)", plan)
	}

	if c.Demo() {
		q := url.Values{}
		q.Set("plan", string(plan))
		q.Set("session_id", uuid.NewString())
		return "/checkout-demo?" + q.Encode(), nil
	}

	stripe.Key = c.secretKey
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(price),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:               stripe.String(c.origin + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(c.origin + "/?canceled=true"),
		AllowPromotionCodes:      stripe.Bool(true),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
	}

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("creating checkout session: %w", err)
	}
	return s.URL, nil
}
