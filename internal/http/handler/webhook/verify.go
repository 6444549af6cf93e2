package webhook

import (
	"github.com/stripe/stripe-go/v76"
	stripewebhook "github.com/stripe/stripe-go/v76/webhook"
	"github.com/workos/workos-go/v6/pkg/webhooks"
)

// WorkOSVerifier checks the WorkOS-Signature header against the raw body.
type WorkOSVerifier interface {
	Verify(payload []byte, signature string) error
}

type workosVerifier struct {
	client *webhooks.Client
}

func NewWorkOSVerifier(secret string) WorkOSVerifier {
	return &workosVerifier{client: webhooks.NewClient(secret)}
}

func (v *workosVerifier) Verify(payload []byte, signature string) error {
	_, err := v.client.ValidatePayload(signature, string(payload))
	return err
}

// StripeVerifier checks the Stripe-Signature header and decodes the event.
type StripeVerifier interface {
	ConstructEvent(payload []byte, signature string) (stripe.Event, error)
}

type stripeVerifier struct {
	secret string
}

func NewStripeVerifier(secret string) StripeVerifier {
	return &stripeVerifier{secret: secret}
}

func (v *stripeVerifier) ConstructEvent(payload []byte, signature string) (stripe.Event, error) {
	// Events from endpoints pinned to another API version are accepted.
	return stripewebhook.ConstructEventWithOptions(payload, signature, v.secret, stripewebhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
