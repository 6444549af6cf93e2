package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/internal/http/dto"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

type LeadHandler struct {
	leads service.LeadService
}

func NewLeadHandler(leads service.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// Create is public. Re-submitting the same email and source updates the lead.
func (h *LeadHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid lead submission", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := req.ToModel()
	if err := h.leads.Submit(ctx, lead); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}
