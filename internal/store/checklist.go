package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/core/db/sqlc"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type checklistStore struct {
	queries *sqlc.Queries
}

func newChecklistStore(queries *sqlc.Queries) ChecklistStore {
	return &checklistStore{queries: queries}
}

func (s *checklistStore) GetStatusID(ctx context.Context, status model.ChecklistStatus) (int16, error) {
	row, err := s.queries.GetChecklistStatusByName(ctx, string(status))
	if err != nil {
		return 0, mapErr(err)
	}
	return row.ID, nil
}

func (s *checklistStore) Seed(ctx context.Context, businessID int64, statusID int16, itemIDs []uuid.UUID) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	return s.queries.SeedBusinessChecklist(ctx, sqlc.SeedBusinessChecklistParams{
		BusinessID: businessID,
		StatusID:   statusID,
		ItemIds:    itemIDs,
	})
}

func (s *checklistStore) ListByBusiness(ctx context.Context, businessID int64) ([]model.ChecklistEntry, error) {
	rows, err := s.queries.ListBusinessChecklist(ctx, businessID)
	if err != nil {
		return nil, err
	}
	result := make([]model.ChecklistEntry, len(rows))
	for i, row := range rows {
		result[i] = model.ChecklistEntry{
			ItemID:       row.ItemID,
			Title:        row.Title,
			Description:  row.Description,
			CategoryName: row.CategoryName,
			StatusID:     row.StatusID,
			Status:       model.ChecklistStatus(row.StatusName),
			CompletedAt:  toTimePointer(row.CompletedAt),
			UpdatedAt:    row.UpdatedAt.Time,
		}
	}
	return result, nil
}

func (s *checklistStore) UpdateStatus(ctx context.Context, businessID int64, itemID uuid.UUID, statusID int16, complete bool) error {
	_, err := s.queries.UpdateBusinessChecklistStatus(ctx, sqlc.UpdateBusinessChecklistStatusParams{
		StatusID:   statusID,
		Complete:   complete,
		BusinessID: businessID,
		ItemID:     itemID,
	})
	return mapErr(err)
}

func (s *checklistStore) DeleteByBusiness(ctx context.Context, businessID int64) (int64, error) {
	return s.queries.DeleteBusinessChecklist(ctx, businessID)
}
