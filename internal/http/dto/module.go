package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/internal/catalog"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

type ListModulesQuery struct {
	Type   string `form:"type" binding:"omitempty,oneof=industry function submodule"`
	Parent string `form:"parent" binding:"omitempty,max=255"`
}

type ModuleResponse struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	Version     string     `json:"version"`
	PriceTier   string     `json:"price_tier"`
}

func ToModuleResponse(m *model.Module) ModuleResponse {
	return ModuleResponse{
		ID:          m.ID,
		Slug:        m.Slug,
		Name:        m.Name,
		Description: m.Description,
		Type:        string(m.Type),
		ParentID:    m.ParentID,
		Version:     m.Version,
		PriceTier:   m.PriceTier,
	}
}

func ToModuleResponses(modules []model.Module) []ModuleResponse {
	out := make([]ModuleResponse, len(modules))
	for i := range modules {
		out[i] = ToModuleResponse(&modules[i])
	}
	return out
}

type ModuleItemResponse struct {
	ItemID       uuid.UUID `json:"item_id"`
	DisplayOrder int32     `json:"display_order"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategorySlug *string   `json:"category_slug,omitempty"`
	CategoryName *string   `json:"category_name,omitempty"`
}

type ModuleDetailResponse struct {
	ModuleResponse
	Items []ModuleItemResponse `json:"items"`
}

func ToModuleDetailResponse(d *service.ModuleDetail) ModuleDetailResponse {
	resp := ModuleDetailResponse{
		ModuleResponse: ToModuleResponse(&d.Module),
		Items:          make([]ModuleItemResponse, len(d.Items)),
	}
	for i, it := range d.Items {
		resp.Items[i] = ModuleItemResponse{
			ItemID:       it.ItemID,
			DisplayOrder: it.DisplayOrder,
			Title:        it.Title,
			Description:  it.Description,
			CategorySlug: it.CategorySlug,
			CategoryName: it.CategoryName,
		}
	}
	return resp
}

type InstallResponse struct {
	ModuleID    uuid.UUID `json:"module_id"`
	Status      string    `json:"status"`
	InstalledAt time.Time `json:"installed_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToInstallResponse(inst *model.ModuleInstall) InstallResponse {
	return InstallResponse{
		ModuleID:    inst.ModuleID,
		Status:      string(inst.Status),
		InstalledAt: inst.InstalledAt,
		UpdatedAt:   inst.UpdatedAt,
	}
}

type MarketplaceEntryResponse struct {
	Module      ModuleResponse `json:"module"`
	Status      *string        `json:"status,omitempty"`
	InstalledAt *time.Time     `json:"installed_at,omitempty"`
}

func ToMarketplaceResponse(entries []model.MarketplaceEntry) []MarketplaceEntryResponse {
	out := make([]MarketplaceEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = MarketplaceEntryResponse{
			Module:      ToModuleResponse(&e.Module),
			InstalledAt: e.InstalledAt,
		}
		if e.Status != nil {
			status := string(*e.Status)
			out[i].Status = &status
		}
	}
	return out
}

type InstalledResponse struct {
	Installed bool `json:"installed"`
}

// UpsertModuleRequest is the admin catalog body; the slug comes from the path.
type UpsertModuleRequest struct {
	Name        string                    `json:"name" binding:"required,min=1,max=255"`
	Description string                    `json:"description" binding:"max=5000"`
	Type        string                    `json:"type" binding:"required,oneof=industry function submodule"`
	Parent      string                    `json:"parent" binding:"omitempty,max=255"`
	Version     string                    `json:"version" binding:"omitempty,max=32"`
	PriceTier   string                    `json:"price_tier" binding:"omitempty,max=32"`
	Items       []UpsertModuleItemRequest `json:"items" binding:"omitempty,dive"`
}

type UpsertModuleItemRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=5000"`
	Category    string `json:"category" binding:"omitempty,max=255"`
}

// Definition validates the request the same way catalog files are validated.
func (r UpsertModuleRequest) Definition(slug string) (model.ModuleDefinition, error) {
	m := catalog.Module{
		Slug:        slug,
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Parent:      r.Parent,
		Version:     r.Version,
		PriceTier:   r.PriceTier,
		Items:       make([]catalog.Item, len(r.Items)),
	}
	for i, it := range r.Items {
		m.Items[i] = catalog.Item{
			Title:       it.Title,
			Description: it.Description,
			Category:    it.Category,
		}
	}
	return m.Definition()
}
