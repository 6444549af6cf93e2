package mapper

import (
	"context"
	"errors"
)

// CanonicalEventType is the provider-neutral meaning of an inbound webhook.
type CanonicalEventType string

const (
	EventUserUpserted         CanonicalEventType = "user_upserted"
	EventUserDeleted          CanonicalEventType = "user_deleted"
	EventSubscriptionUpserted CanonicalEventType = "subscription_upserted"
	EventSubscriptionCanceled CanonicalEventType = "subscription_canceled"
)

// ErrIgnoredEvent marks provider events no translator handles. Webhook
// handlers acknowledge them with 200.
var ErrIgnoredEvent = errors.New("ignored event type")

type EventMapper interface {
	Map(ctx context.Context, body map[string]any, headers map[string]string) (CanonicalEventType, error)
}
