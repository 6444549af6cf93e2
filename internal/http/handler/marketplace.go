package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/common/logger"
	"github.com/Forhemit/StarterClub-sub002/internal/http/dto"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

type MarketplaceHandler struct {
	catalog   service.CatalogService
	lifecycle service.LifecycleService
}

func NewMarketplaceHandler(catalog service.CatalogService, lifecycle service.LifecycleService) *MarketplaceHandler {
	return &MarketplaceHandler{
		catalog:   catalog,
		lifecycle: lifecycle,
	}
}

func (h *MarketplaceHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := h.lifecycle.Marketplace(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modules": dto.ToMarketplaceResponse(entries)})
}

func (h *MarketplaceHandler) Installs(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	installs, err := h.lifecycle.Installs(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.InstallResponse, len(installs))
	for i := range installs {
		resp[i] = dto.ToInstallResponse(&installs[i])
	}
	c.JSON(http.StatusOK, gin.H{"installs": resp})
}

func (h *MarketplaceHandler) Install(c *gin.Context) {
	h.transition(c, h.lifecycle.Install)
}

func (h *MarketplaceHandler) Stage(c *gin.Context) {
	h.transition(c, h.lifecycle.Stage)
}

func (h *MarketplaceHandler) Activate(c *gin.Context) {
	h.transition(c, h.lifecycle.Activate)
}

func (h *MarketplaceHandler) Uninstall(c *gin.Context) {
	h.transition(c, h.lifecycle.Uninstall)
}

type lifecycleOp func(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.ModuleInstall, error)

// transition resolves :ref to the module's UUID before calling the lifecycle service.
func (h *MarketplaceHandler) transition(c *gin.Context, op lifecycleOp) {
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

	ctx = logger.WithLogFields(ctx, logger.LogFields{ModuleID: logger.Ptr(module.ID)})
	install, err := op(ctx, userID, module.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInstallResponse(install))
}

// Installed answers {"installed": bool}. Lookup failures read as false.
func (h *MarketplaceHandler) Installed(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	byName, _ := strconv.ParseBool(c.Query("by_name"))
	installed := h.lifecycle.IsModuleInstalled(c.Request.Context(), userID, c.Param("ref"), byName)

	c.JSON(http.StatusOK, dto.InstalledResponse{Installed: installed})
}
