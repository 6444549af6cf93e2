package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/internal/http/handler"
)

func LeadRouter(rg *gin.RouterGroup, h *handler.LeadHandler) {
	rg.POST("", h.Create)
}

func BusinessRouter(rg *gin.RouterGroup, h *handler.BusinessHandler) {
	rg.POST("/onboarding", h.Onboard)
	rg.GET("/business", h.Get)
}

func ModuleRouter(rg *gin.RouterGroup, h *handler.ModuleHandler) {
	rg.GET("", h.List)
	rg.GET("/:ref", h.Get)
}

// MarketplaceRouter accepts a module UUID, slug or display name as :ref.
func MarketplaceRouter(rg *gin.RouterGroup, h *handler.MarketplaceHandler) {
	rg.GET("", h.List)
	rg.GET("/installs", h.Installs)
	rg.GET("/:ref/installed", h.Installed)
	rg.POST("/:ref/install", h.Install)
	rg.POST("/:ref/stage", h.Stage)
	rg.POST("/:ref/activate", h.Activate)
	rg.POST("/:ref/uninstall", h.Uninstall)
}

func ChecklistRouter(rg *gin.RouterGroup, h *handler.ChecklistHandler) {
	rg.GET("", h.List)
	rg.PATCH("/:item_id", h.UpdateStatus)
	rg.POST("/seed/:ref", h.Seed)
}
