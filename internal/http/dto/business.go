package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

// OnboardingRequest module references accept a UUID, slug or display name.
type OnboardingRequest struct {
	BusinessName      string   `json:"business_name" binding:"required,min=1,max=255"`
	PrimaryModule     string   `json:"primary_module" binding:"required,max=255"`
	InterestedModules []string `json:"interested_modules" binding:"omitempty,max=20,dive,required,max=255"`
}

type BusinessResponse struct {
	ID              int64      `json:"id,string"`
	Name            string     `json:"name"`
	PrimaryModuleID *uuid.UUID `json:"primary_module_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToBusinessResponse(b *model.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:              b.ID,
		Name:            b.Name,
		PrimaryModuleID: b.PrimaryModuleID,
		CreatedAt:       b.CreatedAt,
	}
}

type OnboardingResponse struct {
	Business       *BusinessResponse `json:"business"`
	Installs       []InstallResponse `json:"installs"`
	ChecklistItems int64             `json:"checklist_items"`
}

func ToOnboardingResponse(r *service.OnboardingResult) OnboardingResponse {
	resp := OnboardingResponse{
		Business:       ToBusinessResponse(r.Business),
		Installs:       make([]InstallResponse, len(r.Installs)),
		ChecklistItems: r.ChecklistItems,
	}
	for i, inst := range r.Installs {
		resp.Installs[i] = ToInstallResponse(&inst)
	}
	return resp
}
