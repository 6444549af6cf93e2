package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

var (
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a unique constraint
	ErrConflict = errors.New("already exists")
)

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}

// BusinessStore defines the contract for tenant data access
type BusinessStore interface {
	GetByID(ctx context.Context, id int64) (*model.Business, error)
	GetByOwner(ctx context.Context, userID int64) (*model.Business, error)
	Create(ctx context.Context, business *model.Business) error // ErrConflict when the owner already has one
	DeleteByOwner(ctx context.Context, userID int64) (int64, error)
}

type ModuleFilter struct {
	Type     *model.ModuleType
	ParentID *uuid.UUID
}

// ModuleStore defines the contract for catalog data access
type ModuleStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error)
	GetBySlug(ctx context.Context, slug string) (*model.Module, error)
	GetLatestByName(ctx context.Context, name string) (*model.Module, error)
	List(ctx context.Context, filter ModuleFilter) ([]model.Module, error)
	Upsert(ctx context.Context, module *model.Module) error // keyed by slug
	ListItems(ctx context.Context, moduleID uuid.UUID) ([]model.ModuleItem, error)
	ListItemIDs(ctx context.Context, moduleID uuid.UUID) ([]uuid.UUID, error)
	UpsertCategory(ctx context.Context, slug, name string) (uuid.UUID, error)
	CreateItem(ctx context.Context, title, description string, categoryID *uuid.UUID) (uuid.UUID, error)
	UpdateItem(ctx context.Context, id uuid.UUID, description string, categoryID *uuid.UUID) error
	ClearItems(ctx context.Context, moduleID uuid.UUID) error
	AddItem(ctx context.Context, moduleID, itemID uuid.UUID, displayOrder int32) error
}

// InstallStore defines the contract for (business, module) install rows.
// At most one row exists per pair.
type InstallStore interface {
	Get(ctx context.Context, businessID int64, moduleID uuid.UUID) (*model.ModuleInstall, error)
	// Upsert writes status, refreshes installed_at and installed_by in one statement.
	Upsert(ctx context.Context, businessID int64, moduleID uuid.UUID, status model.InstallStatus, installedBy int64) (*model.ModuleInstall, error)
	// InsertIfAbsent never touches an existing row; created reports whether a row was written.
	InsertIfAbsent(ctx context.Context, businessID int64, moduleID uuid.UUID, status model.InstallStatus, installedBy int64) (install *model.ModuleInstall, created bool, err error)
	// Transition moves from -> to. ErrNotFound when no row is in the from state.
	Transition(ctx context.Context, businessID int64, moduleID uuid.UUID, from, to model.InstallStatus) (*model.ModuleInstall, error)
	SetStatus(ctx context.Context, businessID int64, moduleID uuid.UUID, status model.InstallStatus) (*model.ModuleInstall, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]model.ModuleInstall, error)
	ListMarketplace(ctx context.Context, businessID int64) ([]model.MarketplaceEntry, error)
}

// ChecklistStore defines the contract for business checklist rows
type ChecklistStore interface {
	GetStatusID(ctx context.Context, status model.ChecklistStatus) (int16, error)
	// Seed inserts one row per item, skipping rows that already exist. Returns rows created.
	Seed(ctx context.Context, businessID int64, statusID int16, itemIDs []uuid.UUID) (int64, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]model.ChecklistEntry, error)
	UpdateStatus(ctx context.Context, businessID int64, itemID uuid.UUID, statusID int16, complete bool) error
	DeleteByBusiness(ctx context.Context, businessID int64) (int64, error)
}

// MemberStore defines the contract for member data access
type MemberStore interface {
	GetByWorkOSUserID(ctx context.Context, workosUserID string) (*model.Member, error)
	GetByStripeCustomerID(ctx context.Context, customerID string) (*model.Member, error)
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	UpsertByWorkOSUserID(ctx context.Context, member *model.Member) error
	SetBilling(ctx context.Context, id int64, customerID string, role model.Role) (*model.Member, error)
	DeleteByWorkOSUserID(ctx context.Context, workosUserID string) (int64, error)
	List(ctx context.Context, limit, offset int32) ([]model.Member, error)
}

// SubscriptionStore defines the contract for billing subscription data access
type SubscriptionStore interface {
	Upsert(ctx context.Context, sub *model.Subscription) error
	ListByMember(ctx context.Context, memberID int64) ([]model.Subscription, error)
}

// LeadStore defines the contract for waitlist/contact lead data access
type LeadStore interface {
	Upsert(ctx context.Context, lead *model.Lead) error // keyed by (email, source)
	List(ctx context.Context, source *model.LeadSource, limit, offset int32) ([]model.Lead, error)
}

// APIKeyStore defines the contract for admin API key data access
type APIKeyStore interface {
	Create(ctx context.Context, key *model.APIKey) error
	GetActiveByPrefix(ctx context.Context, prefix string) (*model.APIKey, error)
	Touch(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.APIKey, error)
	Revoke(ctx context.Context, id int64) error
}
