package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/common/metrics"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/queue"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

type ChecklistService interface {
	// Seed creates missing not_started rows for a module's items in one
	// transaction and returns how many were created. Safe to re-run.
	Seed(ctx context.Context, businessID int64, moduleID uuid.UUID) (int64, error)
	// SeedInstalled re-triggers seeding for a module the caller has active.
	SeedInstalled(ctx context.Context, userID int64, moduleID uuid.UUID) (int64, error)
	List(ctx context.Context, userID int64) ([]model.ChecklistEntry, error)
	UpdateStatus(ctx context.Context, userID int64, itemID uuid.UUID, status model.ChecklistStatus) error
	// Reset bulk-deletes a business's checklist rows.
	Reset(ctx context.Context, businessID int64) (int64, error)
}

type checklistService struct {
	tenants        TenantService
	installStore   store.InstallStore
	checklistStore store.ChecklistStore
	txRunner       TxRunner
	publisher      queue.Publisher
}

func NewChecklistService(
	tenants TenantService,
	installStore store.InstallStore,
	checklistStore store.ChecklistStore,
	txRunner TxRunner,
	publisher queue.Publisher,
) ChecklistService {
	return &checklistService{
		tenants:        tenants,
		installStore:   installStore,
		checklistStore: checklistStore,
		txRunner:       txRunner,
		publisher:      publisher,
	}
}

func (s *checklistService) Seed(ctx context.Context, businessID int64, moduleID uuid.UUID) (int64, error) {
	var created int64
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		created, err = seedChecklist(ctx, stores, businessID, moduleID)
		return err
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to seed checklist",
			"error", err,
			"business_id", businessID,
			"module_id", moduleID,
		)
		return 0, err
	}

	metrics.RecordSeeded(created)
	if created > 0 {
		invalidate(ctx, s.publisher, businessID, "checklist_seeded", queue.PathDashboard, queue.PathChecklist)
	}
	return created, nil
}

func (s *checklistService) SeedInstalled(ctx context.Context, userID int64, moduleID uuid.UUID) (int64, error) {
	business, err := s.tenants.Resolve(ctx, userID)
	if err != nil {
		return 0, err
	}

	install, err := s.installStore.Get(ctx, business.ID, moduleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrModuleNotInstalled
		}
		return 0, fmt.Errorf("getting install: %w", err)
	}
	if install.Status != model.InstallStatusActive {
		return 0, ErrModuleNotInstalled
	}

	return s.Seed(ctx, business.ID, moduleID)
}

func (s *checklistService) List(ctx context.Context, userID int64) ([]model.ChecklistEntry, error) {
	business, err := s.tenants.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.checklistStore.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, fmt.Errorf("listing checklist: %w", err)
	}
	return entries, nil
}

func (s *checklistService) UpdateStatus(ctx context.Context, userID int64, itemID uuid.UUID, status model.ChecklistStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	business, err := s.tenants.Resolve(ctx, userID)
	if err != nil {
		return err
	}

	statusID, err := s.checklistStore.GetStatusID(ctx, status)
	if err != nil {
		return fmt.Errorf("looking up %s status: %w", status, err)
	}

	complete := status == model.ChecklistComplete
	if err := s.checklistStore.UpdateStatus(ctx, business.ID, itemID, statusID, complete); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("updating checklist status: %w", err)
	}

	slog.InfoContext(ctx, "checklist item updated",
		"business_id", business.ID,
		"item_id", itemID,
		"status", status,
	)
	invalidate(ctx, s.publisher, business.ID, "checklist_updated", queue.PathDashboard, queue.PathChecklist)
	return nil
}

func (s *checklistService) Reset(ctx context.Context, businessID int64) (int64, error) {
	deleted, err := s.checklistStore.DeleteByBusiness(ctx, businessID)
	if err != nil {
		return 0, fmt.Errorf("deleting checklist: %w", err)
	}

	slog.InfoContext(ctx, "checklist reset", "business_id", businessID, "rows_deleted", deleted)
	invalidate(ctx, s.publisher, businessID, "checklist_reset", queue.PathDashboard, queue.PathChecklist)
	return deleted, nil
}
