package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/common/logger"
	"github.com/Forhemit/StarterClub-sub002/common/metrics"
	"github.com/Forhemit/StarterClub-sub002/internal/mapper"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

const (
	workosSource          = "workos"
	workosSignatureHeader = "WorkOS-Signature"
)

type WorkOSWebhookHandler struct {
	identity service.IdentityService
	verifier WorkOSVerifier
}

func NewWorkOSWebhookHandler(identity service.IdentityService, verifier WorkOSVerifier) *WorkOSWebhookHandler {
	return &WorkOSWebhookHandler{
		identity: identity,
		verifier: verifier,
	}
}

func (h *WorkOSWebhookHandler) HandleEvent(c *gin.Context) {
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
		WebhookSource: logger.Ptr(workosSource),
		Component:     "starterclub.webhook.workos",
	})

	signature := c.GetHeader(workosSignatureHeader)
	if signature == "" {
		metrics.RecordWebhook(workosSource, "unknown", metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing signature"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if err := h.verifier.Verify(body, signature); err != nil {
		slog.WarnContext(ctx, "workos webhook signature rejected", "error", err)
		metrics.RecordWebhook(workosSource, "unknown", metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	var envelope struct {
		Event string `json:"event"`
	}
	_ = json.Unmarshal(body, &envelope)
	eventType := envelope.Event
	ctx = logger.WithLogFields(ctx, logger.LogFields{EventType: logger.Ptr(eventType)})

	change, err := mapper.TranslateWorkOS(ctx, body)
	if err != nil {
		if errors.Is(err, mapper.ErrIgnoredEvent) {
			slog.DebugContext(ctx, "ignoring workos event")
			metrics.RecordWebhook(workosSource, eventType, metrics.OutcomeIgnored)
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "event type not supported"})
			return
		}
		slog.WarnContext(ctx, "invalid workos payload", "error", err)
		metrics.RecordWebhook(workosSource, eventType, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.identity.Apply(ctx, change); err != nil {
		slog.ErrorContext(ctx, "failed to process workos event",
			"error", err,
			"event_id", change.EventID,
			"workos_user_id", change.User.ID,
		)
		metrics.RecordWebhook(workosSource, eventType, metrics.OutcomeFailed)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		return
	}

	slog.InfoContext(ctx, "workos webhook processed",
		"event_id", change.EventID,
		"canonical_event_type", change.Type,
		"workos_user_id", change.User.ID,
	)
	metrics.RecordWebhook(workosSource, eventType, metrics.OutcomeProcessed)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
