package model

import (
	"time"

	"github.com/google/uuid"
)

type ModuleType string

const (
	ModuleTypeIndustry  ModuleType = "industry"
	ModuleTypeFunction  ModuleType = "function"
	ModuleTypeSubmodule ModuleType = "submodule"
)

func (t ModuleType) Valid() bool {
	switch t {
	case ModuleTypeIndustry, ModuleTypeFunction, ModuleTypeSubmodule:
		return true
	}
	return false
}

type Module struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        ModuleType `json:"type"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	Version     string     `json:"version"`
	PriceTier   string     `json:"price_tier"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ModuleItem is a checklist item as seen through a module, in display order.
type ModuleItem struct {
	ItemID       uuid.UUID  `json:"item_id"`
	DisplayOrder int32      `json:"display_order"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategorySlug *string    `json:"category_slug,omitempty"`
	CategoryName *string    `json:"category_name,omitempty"`
}

// ModuleDefinition is the catalog shape used to create or replace a module
// together with its ordered checklist items.
type ModuleDefinition struct {
	Slug        string
	Name        string
	Description string
	Type        ModuleType
	ParentSlug  string
	Version     string
	PriceTier   string
	Items       []ItemDefinition
}

type ItemDefinition struct {
	Title        string
	Description  string
	CategorySlug string
	CategoryName string
}
