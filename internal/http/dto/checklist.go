package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/internal/dashboard"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type UpdateChecklistStatusRequest struct {
	Status string `json:"status" binding:"required,checklist_status"`
}

type ChecklistEntryResponse struct {
	ItemID       uuid.UUID  `json:"item_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CategoryName *string    `json:"category_name,omitempty"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToChecklistResponse(entries []model.ChecklistEntry) []ChecklistEntryResponse {
	out := make([]ChecklistEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ChecklistEntryResponse{
			ItemID:       e.ItemID,
			Title:        e.Title,
			Description:  e.Description,
			CategoryName: e.CategoryName,
			Status:       string(e.Status),
			CompletedAt:  e.CompletedAt,
			UpdatedAt:    e.UpdatedAt,
		}
	}
	return out
}

type SeedChecklistResponse struct {
	ModuleID uuid.UUID `json:"module_id"`
	Created  int64     `json:"created"`
}

type DashboardResponse struct {
	Progress    int                      `json:"progress"`
	Total       int                      `json:"total"`
	Completed   int                      `json:"completed"`
	NextActions []ChecklistEntryResponse `json:"next_actions"`
	RecentWins  []ChecklistEntryResponse `json:"recent_wins"`
}

func ToDashboardResponse(s *dashboard.Summary) DashboardResponse {
	return DashboardResponse{
		Progress:    s.Progress,
		Total:       s.Total,
		Completed:   s.Completed,
		NextActions: ToChecklistResponse(s.NextActions),
		RecentWins:  ToChecklistResponse(s.RecentWins),
	}
}
