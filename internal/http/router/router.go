package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Forhemit/StarterClub-sub002/core/config"
	"github.com/Forhemit/StarterClub-sub002/internal/http/handler"
	"github.com/Forhemit/StarterClub-sub002/internal/http/handler/webhook"
	"github.com/Forhemit/StarterClub-sub002/internal/http/middleware"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

type RouterConfig struct {
	IsProduction bool
	AdminAPIKey  string
	WorkOS       config.WorkOSConfig
	Stripe       config.StripeConfig
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", health)
	router.GET("/healthz", health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authService := services.Auth()
	catalog := services.Catalog()

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	webhookGroup := router.Group("/webhooks")
	{
		workos := webhook.NewWorkOSWebhookHandler(services.Identity(), webhook.NewWorkOSVerifier(cfg.WorkOS.WebhookSecret))
		members := webhook.NewStripeWebhookHandler(services.Billing(), webhook.NewStripeVerifier(cfg.Stripe.MemberWebhookSecret), model.AudienceMember)
		partners := webhook.NewStripeWebhookHandler(services.Billing(), webhook.NewStripeVerifier(cfg.Stripe.PartnerWebhookSecret), model.AudiencePartner)
		WebhookRouter(webhookGroup, workos, members, partners)
	}

	v1 := router.Group("/api/v1")
	{
		leadHandler := handler.NewLeadHandler(services.Leads())
		LeadRouter(v1.Group("/leads"), leadHandler)

		authed := v1.Group("")
		authed.Use(middleware.RequireAuth(authService))

		businessHandler := handler.NewBusinessHandler(services.Onboarding(), services.Tenants(), catalog)
		BusinessRouter(authed, businessHandler)

		moduleHandler := handler.NewModuleHandler(catalog)
		ModuleRouter(authed.Group("/modules"), moduleHandler)

		marketplaceHandler := handler.NewMarketplaceHandler(catalog, services.Lifecycle())
		MarketplaceRouter(authed.Group("/marketplace"), marketplaceHandler)

		checklistHandler := handler.NewChecklistHandler(catalog, services.Checklists())
		ChecklistRouter(authed.Group("/checklist"), checklistHandler)

		dashboardHandler := handler.NewDashboardHandler(services.Dashboard())
		authed.GET("/dashboard", dashboardHandler.Get)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdmin(cfg.AdminAPIKey, services.APIKeys()))
	{
		adminHandler := handler.NewAdminHandler(
			catalog,
			services.Leads(),
			services.Identity(),
			services.APIKeys(),
			services.Checklists(),
			services.Onboarding(),
		)
		AdminRouter(admin, adminHandler)
	}
}
