package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/internal/http/dto"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

type BusinessHandler struct {
	onboarding service.OnboardingService
	tenants    service.TenantService
	catalog    service.CatalogService
}

func NewBusinessHandler(onboarding service.OnboardingService, tenants service.TenantService, catalog service.CatalogService) *BusinessHandler {
	return &BusinessHandler{
		onboarding: onboarding,
		tenants:    tenants,
		catalog:    catalog,
	}
}

func (h *BusinessHandler) Onboard(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	primary, err := h.catalog.Resolve(ctx, req.PrimaryModule)
	if err != nil {
		respondError(c, err)
		return
	}

	interested := make([]uuid.UUID, 0, len(req.InterestedModules))
	for _, ref := range req.InterestedModules {
		m, err := h.catalog.Resolve(ctx, ref)
		if err != nil {
			respondError(c, err)
			return
		}
		interested = append(interested, m.ID)
	}

	result, err := h.onboarding.Onboard(ctx, userID, service.OnboardingInput{
		BusinessName:      req.BusinessName,
		PrimaryModuleID:   primary.ID,
		InterestedModules: interested,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOnboardingResponse(result))
}

func (h *BusinessHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	business, err := h.tenants.Resolve(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}
