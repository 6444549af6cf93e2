package model

import (
	"time"

	"github.com/google/uuid"
)

// InstallStatus is the lifecycle state of a business's relationship to a module.
// A missing row means the module was never installed.
type InstallStatus string

const (
	InstallStatusStaged   InstallStatus = "staged"
	InstallStatusActive   InstallStatus = "active"
	InstallStatusDisabled InstallStatus = "disabled"
)

type ModuleInstall struct {
	BusinessID  int64         `json:"business_id"`
	ModuleID    uuid.UUID     `json:"module_id"`
	Status      InstallStatus `json:"status"`
	InstalledAt time.Time     `json:"installed_at"`
	InstalledBy *int64        `json:"installed_by,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// MarketplaceEntry is a catalog module joined with the caller's install row, if any.
type MarketplaceEntry struct {
	Module      Module         `json:"module"`
	Status      *InstallStatus `json:"status,omitempty"`
	InstalledAt *time.Time     `json:"installed_at,omitempty"`
}
