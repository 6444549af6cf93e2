package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

// seedChecklist creates one not_started row per module item. It must run on
// transaction-bound stores: a failed status lookup rolls back the caller's
// whole write. Existing rows are left untouched.
func seedChecklist(ctx context.Context, stores StoreProvider, businessID int64, moduleID uuid.UUID) (int64, error) {
	itemIDs, err := stores.Modules().ListItemIDs(ctx, moduleID)
	if err != nil {
		return 0, fmt.Errorf("listing module items: %w", err)
	}
	if len(itemIDs) == 0 {
		return 0, nil
	}

	statusID, err := stores.Checklists().GetStatusID(ctx, model.ChecklistNotStarted)
	if err != nil {
		return 0, fmt.Errorf("looking up %s status: %w", model.ChecklistNotStarted, err)
	}

	created, err := stores.Checklists().Seed(ctx, businessID, statusID, itemIDs)
	if err != nil {
		return 0, fmt.Errorf("seeding checklist: %w", err)
	}
	return created, nil
}
