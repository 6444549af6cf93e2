package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.GET("/url", h.GetAuthURL)
	rg.POST("/exchange", h.Exchange)
	rg.GET("/session", h.ValidateSession)
	rg.POST("/logout", h.LogoutSession)
}
