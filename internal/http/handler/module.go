package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/internal/http/dto"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

type ModuleHandler struct {
	catalog service.CatalogService
}

func NewModuleHandler(catalog service.CatalogService) *ModuleHandler {
	return &ModuleHandler{catalog: catalog}
}

// List supports ?type=industry|function|submodule and ?parent=<ref>.
func (h *ModuleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.ListModulesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var filter store.ModuleFilter
	if q.Type != "" {
		t := model.ModuleType(q.Type)
		filter.Type = &t
	}
	if q.Parent != "" {
		parent, err := h.catalog.Resolve(ctx, q.Parent)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.ParentID = &parent.ID
	}

	modules, err := h.catalog.List(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list modules", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list modules"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modules": dto.ToModuleResponses(modules)})
}

func (h *ModuleHandler) Get(c *gin.Context) {
	detail, err := h.catalog.Get(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModuleDetailResponse(detail))
}
