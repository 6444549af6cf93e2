package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/internal/http/dto"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

type DashboardHandler struct {
	dashboard service.DashboardService
}

func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.dashboard.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}
