package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/common/logger"
	"github.com/Forhemit/StarterClub-sub002/common/metrics"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/queue"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

// LifecycleService moves a business's modules between staged, active and
// disabled. Write operations take a canonical module id; identifiers are
// resolved by CatalogService before reaching here.
type LifecycleService interface {
	// Install marks the module active, refreshing installed_at, and seeds its
	// checklist. Re-installing a disabled module reactivates the same row.
	Install(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.ModuleInstall, error)
	// Stage records interest without activating. An existing row is returned unchanged.
	Stage(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.ModuleInstall, error)
	Activate(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.ModuleInstall, error)
	// Uninstall disables the module. The row and its checklist rows are kept.
	Uninstall(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.ModuleInstall, error)
	// IsModuleInstalled reports whether an active row exists. Every failure reads as false.
	IsModuleInstalled(ctx context.Context, userID int64, identifier string, byName bool) bool
	Marketplace(ctx context.Context, userID int64) ([]model.MarketplaceEntry, error)
	// Installs lists the caller's install rows in every status.
	Installs(ctx context.Context, userID int64) ([]model.ModuleInstall, error)
}

type lifecycleService struct {
	tenants      TenantService
	catalog      CatalogService
	moduleStore  store.ModuleStore
	installStore store.InstallStore
	txRunner     TxRunner
	publisher    queue.Publisher
}

func NewLifecycleService(
	tenants TenantService,
	catalog CatalogService,
	moduleStore store.ModuleStore,
	installStore store.InstallStore,
	txRunner TxRunner,
	publisher queue.Publisher,
) LifecycleService {
	return &lifecycleService{
		tenants:      tenants,
		catalog:      catalog,
		moduleStore:  moduleStore,
		installStore: installStore,
		txRunner:     txRunner,
		publisher:    publisher,
	}
}

func (s *lifecycleService) Install(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.ModuleInstall, error) {
	business, err := s.prepare(ctx, userID, moduleID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{BusinessID: &business.ID, ModuleID: &moduleID})

	var (
		install *model.ModuleInstall
		seeded  int64
	)
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		install, err = stores.Installs().Upsert(ctx, business.ID, moduleID, model.InstallStatusActive, userID)
		if err != nil {
			return fmt.Errorf("upserting install: %w", err)
		}
		seeded, err = seedChecklist(ctx, stores, business.ID, moduleID)
		return err
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to install module", "error", err)
		return nil, err
	}

	metrics.RecordTransition("install", string(install.Status))
	metrics.RecordSeeded(seeded)
	slog.InfoContext(ctx, "module installed", "checklist_rows_seeded", seeded)

	invalidate(ctx, s.publisher, business.ID, "module_installed", queue.PathDashboard, queue.PathMarketplace, queue.PathChecklist)
	return install, nil
}

func (s *lifecycleService) Stage(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.ModuleInstall, error) {
	business, err := s.prepare(ctx, userID, moduleID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{BusinessID: &business.ID, ModuleID: &moduleID})

	install, created, err := s.installStore.InsertIfAbsent(ctx, business.ID, moduleID, model.InstallStatusStaged, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to stage module", "error", err)
		return nil, fmt.Errorf("staging module: %w", err)
	}
	if !created {
		return install, nil
	}

	metrics.RecordTransition("stage", string(install.Status))
	invalidate(ctx, s.publisher, business.ID, "module_staged", queue.PathDashboard, queue.PathMarketplace)
	return install, nil
}

// Activate moves staged to active and seeds the module's checklist in the
// same transaction, so an active module never has an empty checklist.
func (s *lifecycleService) Activate(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.ModuleInstall, error) {
	business, err := s.prepare(ctx, userID, moduleID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{BusinessID: &business.ID, ModuleID: &moduleID})

	var (
		install *model.ModuleInstall
		seeded  int64
	)
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		install, err = stores.Installs().Transition(ctx, business.ID, moduleID, model.InstallStatusStaged, model.InstallStatusActive)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("activating module: %w", err)
			}
			// Nothing in staged: either no row at all or a row in another state.
			current, getErr := stores.Installs().Get(ctx, business.ID, moduleID)
			if getErr != nil {
				if errors.Is(getErr, store.ErrNotFound) {
					return ErrModuleNotInstalled
				}
				return fmt.Errorf("getting install: %w", getErr)
			}
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, model.InstallStatusActive)
		}
		seeded, err = seedChecklist(ctx, stores, business.ID, moduleID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition("activate", string(install.Status))
	metrics.RecordSeeded(seeded)
	slog.InfoContext(ctx, "module activated", "checklist_rows_seeded", seeded)

	invalidate(ctx, s.publisher, business.ID, "module_activated", queue.PathDashboard, queue.PathMarketplace, queue.PathChecklist)
	return install, nil
}

func (s *lifecycleService) Uninstall(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.ModuleInstall, error) {
	business, err := s.prepare(ctx, userID, moduleID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{BusinessID: &business.ID, ModuleID: &moduleID})

	install, err := s.installStore.SetStatus(ctx, business.ID, moduleID, model.InstallStatusDisabled)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrModuleNotInstalled
		}
		slog.ErrorContext(ctx, "failed to uninstall module", "error", err)
		return nil, fmt.Errorf("uninstalling module: %w", err)
	}

	metrics.RecordTransition("uninstall", string(install.Status))
	slog.InfoContext(ctx, "module uninstalled")
	invalidate(ctx, s.publisher, business.ID, "module_uninstalled", queue.PathDashboard, queue.PathMarketplace)
	return install, nil
}

func (s *lifecycleService) IsModuleInstalled(ctx context.Context, userID int64, identifier string, byName bool) bool {
	business, err := s.tenants.Resolve(ctx, userID)
	if err != nil {
		slog.DebugContext(ctx, "install check without business", "error", err, "user_id", userID)
		return false
	}

	var module *model.Module
	if byName {
		module, err = s.catalog.ResolveByName(ctx, identifier)
	} else {
		module, err = s.catalog.Resolve(ctx, identifier)
	}
	if err != nil {
		slog.DebugContext(ctx, "install check for unknown module", "error", err, "identifier", identifier)
		return false
	}

	install, err := s.installStore.Get(ctx, business.ID, module.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "install check failed", "error", err, "business_id", business.ID, "module_id", module.ID)
		}
		return false
	}
	return install.Status == model.InstallStatusActive
}

func (s *lifecycleService) Marketplace(ctx context.Context, userID int64) ([]model.MarketplaceEntry, error) {
	business, err := s.tenants.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.installStore.ListMarketplace(ctx, business.ID)
	if err != nil {
		return nil, fmt.Errorf("listing marketplace: %w", err)
	}
	return entries, nil
}

func (s *lifecycleService) Installs(ctx context.Context, userID int64) ([]model.ModuleInstall, error) {
	business, err := s.tenants.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	installs, err := s.installStore.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, fmt.Errorf("listing installs: %w", err)
	}
	return installs, nil
}

// prepare resolves the caller's business and checks the module exists.
func (s *lifecycleService) prepare(ctx context.Context, userID int64, moduleID uuid.UUID) (*model.Business, error) {
	business, err := s.tenants.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.moduleStore.GetByID(ctx, moduleID); err != nil {
		return nil, moduleLookupErr(moduleID.String(), err)
	}
	return business, nil
}
