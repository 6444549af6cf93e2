package mapper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
)

const (
	stripeSubscriptionCreated = "customer.subscription.created"
	stripeSubscriptionUpdated = "customer.subscription.updated"
	stripeSubscriptionDeleted = "customer.subscription.deleted"
)

// GrantsRole reports whether a subscription in status still confers its plan
// role. Canceled, unpaid, paused and never-paid subscriptions do not.
func GrantsRole(status string) bool {
	switch stripe.SubscriptionStatus(status) {
	case stripe.SubscriptionStatusCanceled,
		stripe.SubscriptionStatusUnpaid,
		stripe.SubscriptionStatusPaused,
		stripe.SubscriptionStatusIncomplete,
		stripe.SubscriptionStatusIncompleteExpired:
		return false
	}
	return status != ""
}

type StripeEventMapper struct{}

func NewStripeEventMapper() *StripeEventMapper {
	return &StripeEventMapper{}
}

func (m *StripeEventMapper) Map(ctx context.Context, body map[string]any, headers map[string]string) (CanonicalEventType, error) {
	eventType, _ := body["type"].(string)
	switch eventType {
	case stripeSubscriptionCreated, stripeSubscriptionUpdated:
		return EventSubscriptionUpserted, nil
	case stripeSubscriptionDeleted:
		return EventSubscriptionCanceled, nil
	case "":
		return "", fmt.Errorf("stripe payload has no type field")
	}
	return "", fmt.Errorf("%w: %s", ErrIgnoredEvent, eventType)
}

// SubscriptionChange is a Stripe subscription event reduced to the rows it touches.
type SubscriptionChange struct {
	Type             CanonicalEventType
	EventID          string
	SubscriptionID   string
	CustomerID       string
	Email            string // from subscription metadata, may be empty
	Status           string
	PlanSlug         string
	Role             string
	Addons           []string
	CurrentPeriodEnd *time.Time
	CanceledAt       *time.Time
}

// TranslateStripe maps a verified Stripe event through the given role table.
func TranslateStripe(ctx context.Context, event stripe.Event, table RoleTable) (*SubscriptionChange, error) {
	eventType, err := NewStripeEventMapper().Map(ctx, map[string]any{"type": string(event.Type)}, nil)
	if err != nil {
		return nil, err
	}
	if event.Data == nil {
		return nil, fmt.Errorf("stripe event %s has no data", event.ID)
	}

	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return nil, fmt.Errorf("decoding stripe subscription: %w", err)
	}
	if sub.ID == "" || sub.Customer == nil || sub.Customer.ID == "" {
		return nil, fmt.Errorf("stripe subscription is missing id or customer")
	}

	items := planItems(&sub)
	role, planSlug, addons := table.Resolve(items)

	change := &SubscriptionChange{
		Type:             eventType,
		EventID:          event.ID,
		SubscriptionID:   sub.ID,
		CustomerID:       sub.Customer.ID,
		Email:            strings.TrimSpace(sub.Metadata["email"]),
		Status:           string(sub.Status),
		PlanSlug:         planSlug,
		Role:             string(role),
		Addons:           addons,
		CurrentPeriodEnd: unixPtr(sub.CurrentPeriodEnd),
		CanceledAt:       unixPtr(sub.CanceledAt),
	}
	if change.Email == "" && sub.Customer.Email != "" {
		change.Email = sub.Customer.Email
	}

	if eventType == EventSubscriptionCanceled {
		change.Status = string(stripe.SubscriptionStatusCanceled)
		change.Role = string(table.Default)
		if change.CanceledAt == nil {
			t := time.Unix(event.Created, 0).UTC()
			change.CanceledAt = &t
		}
	}

	return change, nil
}

func planItems(sub *stripe.Subscription) []PlanItem {
	if sub.Items == nil {
		return nil
	}
	items := make([]PlanItem, 0, len(sub.Items.Data))
	for _, it := range sub.Items.Data {
		if it == nil || it.Price == nil {
			continue
		}
		slug := it.Price.LookupKey
		if slug == "" {
			slug = it.Price.Metadata["slug"]
		}
		items = append(items, PlanItem{Slug: slug, Metadata: it.Price.Metadata})
	}
	return items
}

func unixPtr(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
