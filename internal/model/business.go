package model

import (
	"time"

	"github.com/google/uuid"
)

// Business is the tenant. Every user owns at most one.
type Business struct {
	ID              int64      `json:"id"`
	OwnerUserID     int64      `json:"owner_user_id"`
	Name            string     `json:"name"`
	PrimaryModuleID *uuid.UUID `json:"primary_module_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
