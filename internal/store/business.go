package store

import (
	"context"

	"github.com/Forhemit/StarterClub-sub002/core/db/sqlc"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type businessStore struct {
	queries *sqlc.Queries
}

func newBusinessStore(queries *sqlc.Queries) BusinessStore {
	return &businessStore{queries: queries}
}

func (s *businessStore) GetByID(ctx context.Context, id int64) (*model.Business, error) {
	row, err := s.queries.GetBusiness(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toBusinessModel(row), nil
}

func (s *businessStore) GetByOwner(ctx context.Context, userID int64) (*model.Business, error) {
	row, err := s.queries.GetBusinessByOwner(ctx, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	return toBusinessModel(row), nil
}

func (s *businessStore) Create(ctx context.Context, business *model.Business) error {
	row, err := s.queries.CreateBusiness(ctx, sqlc.CreateBusinessParams{
		ID:              business.ID,
		OwnerUserID:     business.OwnerUserID,
		Name:            business.Name,
		PrimaryModuleID: business.PrimaryModuleID,
	})
	if err != nil {
		return mapErr(err)
	}
	*business = *toBusinessModel(row)
	return nil
}

func (s *businessStore) DeleteByOwner(ctx context.Context, userID int64) (int64, error) {
	return s.queries.DeleteBusinessByOwner(ctx, userID)
}

func toBusinessModel(row sqlc.Business) *model.Business {
	return &model.Business{
		ID:              row.ID,
		OwnerUserID:     row.OwnerUserID,
		Name:            row.Name,
		PrimaryModuleID: row.PrimaryModuleID,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
