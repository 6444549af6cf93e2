package webhook

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/common/logger"
	"github.com/Forhemit/StarterClub-sub002/common/metrics"
	"github.com/Forhemit/StarterClub-sub002/internal/mapper"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

const stripeSignatureHeader = "Stripe-Signature"

// StripeWebhookHandler serves one Stripe endpoint. Members and partners each
// get their own handler, signing secret and role table.
type StripeWebhookHandler struct {
	billing  service.BillingService
	verifier StripeVerifier
	audience model.Audience
	source   string
}

func NewStripeWebhookHandler(billing service.BillingService, verifier StripeVerifier, audience model.Audience) *StripeWebhookHandler {
	source := "stripe_members"
	if audience == model.AudiencePartner {
		source = "stripe_partners"
	}
	return &StripeWebhookHandler{
		billing:  billing,
		verifier: verifier,
		audience: audience,
		source:   source,
	}
}

func (h *StripeWebhookHandler) HandleEvent(c *gin.Context) {
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
		WebhookSource: logger.Ptr(h.source),
		Component:     "starterclub.webhook.stripe",
	})

	signature := c.GetHeader(stripeSignatureHeader)
	if signature == "" {
		metrics.RecordWebhook(h.source, "unknown", metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing signature"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := h.verifier.ConstructEvent(body, signature)
	if err != nil {
		slog.WarnContext(ctx, "stripe webhook signature rejected", "error", err)
		metrics.RecordWebhook(h.source, "unknown", metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	eventType := string(event.Type)
	ctx = logger.WithLogFields(ctx, logger.LogFields{EventType: logger.Ptr(eventType)})

	change, err := mapper.TranslateStripe(ctx, event, mapper.RoleTableFor(h.audience))
	if err != nil {
		if errors.Is(err, mapper.ErrIgnoredEvent) {
			slog.DebugContext(ctx, "ignoring stripe event", "event_id", event.ID)
			metrics.RecordWebhook(h.source, eventType, metrics.OutcomeIgnored)
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "event type not supported"})
			return
		}
		slog.WarnContext(ctx, "invalid stripe payload", "error", err, "event_id", event.ID)
		metrics.RecordWebhook(h.source, eventType, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.billing.Apply(ctx, h.audience, change); err != nil {
		slog.ErrorContext(ctx, "failed to process stripe event",
			"error", err,
			"event_id", change.EventID,
			"subscription_id", change.SubscriptionID,
		)
		metrics.RecordWebhook(h.source, eventType, metrics.OutcomeFailed)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		return
	}

	slog.InfoContext(ctx, "stripe webhook processed",
		"event_id", change.EventID,
		"subscription_id", change.SubscriptionID,
		"customer_id", change.CustomerID,
		"role", change.Role,
		"status", change.Status,
	)
	metrics.RecordWebhook(h.source, eventType, metrics.OutcomeProcessed)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
