package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/internal/http/dto"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

const defaultPageSize = 100

type AdminHandler struct {
	catalog    service.CatalogService
	leads      service.LeadService
	identity   service.IdentityService
	apiKeys    service.APIKeyService
	checklists service.ChecklistService
	onboarding service.OnboardingService
}

func NewAdminHandler(
	catalog service.CatalogService,
	leads service.LeadService,
	identity service.IdentityService,
	apiKeys service.APIKeyService,
	checklists service.ChecklistService,
	onboarding service.OnboardingService,
) *AdminHandler {
	return &AdminHandler{
		catalog:    catalog,
		leads:      leads,
		identity:   identity,
		apiKeys:    apiKeys,
		checklists: checklists,
		onboarding: onboarding,
	}
}

func (h *AdminHandler) ListModules(c *gin.Context) {
	modules, err := h.catalog.List(c.Request.Context(), store.ModuleFilter{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": dto.ToModuleResponses(modules)})
}

// UpsertModule creates or replaces the module at :slug with its ordered items.
func (h *AdminHandler) UpsertModule(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpsertModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	def, err := req.Definition(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module, err := h.catalog.Upsert(ctx, def)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.InfoContext(ctx, "module upserted via admin API", "slug", module.Slug, "items", len(def.Items))
	c.JSON(http.StatusOK, dto.ToModuleResponse(module))
}

func (h *AdminHandler) ListLeads(c *gin.Context) {
	var q dto.ListLeadsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var source *model.LeadSource
	if q.Source != "" {
		s := model.LeadSource(q.Source)
		source = &s
	}
	leads, err := h.leads.List(c.Request.Context(), source, q.LimitOr(defaultPageSize), q.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.LeadResponse, len(leads))
	for i := range leads {
		resp[i] = dto.ToLeadResponse(&leads[i])
	}
	c.JSON(http.StatusOK, gin.H{"leads": resp})
}

func (h *AdminHandler) ListMembers(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members, err := h.identity.ListMembers(c.Request.Context(), q.LimitOr(defaultPageSize), q.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, len(members))
	for i := range members {
		resp[i] = dto.ToMemberResponse(&members[i])
	}
	c.JSON(http.StatusOK, gin.H{"members": resp})
}

func (h *AdminHandler) CreateAPIKey(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: name is required"})
		return
	}

	key, token, err := h.apiKeys.Create(ctx, req.Name, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.InfoContext(ctx, "api key created via admin API", "api_key_id", key.ID, "prefix", key.Prefix)
	c.JSON(http.StatusCreated, dto.CreateAPIKeyResponse{
		APIKeyResponse: dto.ToAPIKeyResponse(key),
		Token:          token,
	})
}

func (h *AdminHandler) ListAPIKeys(c *gin.Context) {
	keys, err := h.apiKeys.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.APIKeyResponse, len(keys))
	for i := range keys {
		resp[i] = dto.ToAPIKeyResponse(&keys[i])
	}
	c.JSON(http.StatusOK, gin.H{"api_keys": resp})
}

func (h *AdminHandler) RevokeAPIKey(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.apiKeys.Revoke(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "revoked"})
}

func (h *AdminHandler) ResetChecklist(c *gin.Context) {
	businessID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	deleted, err := h.checklists.Reset(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ResetResponse{Deleted: deleted})
}

func (h *AdminHandler) ResetBusiness(c *gin.Context) {
	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	existed, err := h.onboarding.ResetUserBusiness(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrBusinessNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "business deleted"})
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}
