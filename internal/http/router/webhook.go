package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/internal/http/handler/webhook"
)

// WebhookRouter mounts provider callbacks. They authenticate by signature, not session.
func WebhookRouter(rg *gin.RouterGroup, workos *webhook.WorkOSWebhookHandler, members, partners *webhook.StripeWebhookHandler) {
	rg.POST("/workos", workos.HandleEvent)
	rg.POST("/stripe/members", members.HandleEvent)
	rg.POST("/stripe/partners", partners.HandleEvent)
}
