package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/internal/http/dto"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

type ChecklistHandler struct {
	catalog    service.CatalogService
	checklists service.ChecklistService
}

func NewChecklistHandler(catalog service.CatalogService, checklists service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{
		catalog:    catalog,
		checklists: checklists,
	}
}

func (h *ChecklistHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := h.checklists.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToChecklistResponse(entries)})
}

func (h *ChecklistHandler) UpdateStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req dto.UpdateChecklistStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of not_started, in_progress, complete"})
		return
	}

	if err := h.checklists.UpdateStatus(c.Request.Context(), userID, itemID, model.ChecklistStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item_id": itemID, "status": req.Status})
}

// Seed re-triggers seeding for an active module. Existing rows are untouched.
func (h *ChecklistHandler) Seed(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	module, err := h.catalog.Resolve(ctx, c.Param("ref"))
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.checklists.SeedInstalled(ctx, userID, module.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SeedChecklistResponse{ModuleID: module.ID, Created: created})
}
