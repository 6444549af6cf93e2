package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/internal/http/handler"
)

// AdminRouter expects rg to be guarded by middleware.RequireAdmin.
func AdminRouter(rg *gin.RouterGroup, h *handler.AdminHandler) {
	rg.GET("/modules", h.ListModules)
	rg.PUT("/modules/:slug", h.UpsertModule)

	rg.GET("/leads", h.ListLeads)
	rg.GET("/members", h.ListMembers)

	rg.POST("/api-keys", h.CreateAPIKey)
	rg.GET("/api-keys", h.ListAPIKeys)
	rg.DELETE("/api-keys/:id", h.RevokeAPIKey)

	rg.DELETE("/businesses/:id/checklist", h.ResetChecklist)
	rg.DELETE("/users/:id/business", h.ResetBusiness)
}
