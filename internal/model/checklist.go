package model

import (
	"time"

	"github.com/google/uuid"
)

type ChecklistStatus string

const (
	ChecklistNotStarted ChecklistStatus = "not_started"
	ChecklistInProgress ChecklistStatus = "in_progress"
	ChecklistComplete   ChecklistStatus = "complete"
)

func (s ChecklistStatus) Valid() bool {
	switch s {
	case ChecklistNotStarted, ChecklistInProgress, ChecklistComplete:
		return true
	}
	return false
}

// ChecklistEntry is one business checklist row joined with its item and status name.
type ChecklistEntry struct {
	ItemID       uuid.UUID       `json:"item_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	CategoryName *string         `json:"category_name,omitempty"`
	StatusID     int16           `json:"status_id"`
	Status       ChecklistStatus `json:"status"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
