package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Forhemit/StarterClub-sub002/core/db/sqlc"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type installStore struct {
	queries *sqlc.Queries
}

func newInstallStore(queries *sqlc.Queries) InstallStore {
	return &installStore{queries: queries}
}

func (s *installStore) Get(ctx context.Context, businessID int64, moduleID uuid.UUID) (*model.ModuleInstall, error) {
	row, err := s.queries.GetInstall(ctx, sqlc.GetInstallParams{
		BusinessID: businessID,
		ModuleID:   moduleID,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toInstallModel(row), nil
}

func (s *installStore) Upsert(ctx context.Context, businessID int64, moduleID uuid.UUID, status model.InstallStatus, installedBy int64) (*model.ModuleInstall, error) {
	row, err := s.queries.UpsertInstall(ctx, sqlc.UpsertInstallParams{
		BusinessID:  businessID,
		ModuleID:    moduleID,
		Status:      string(status),
		InstalledBy: &installedBy,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toInstallModel(row), nil
}

func (s *installStore) InsertIfAbsent(ctx context.Context, businessID int64, moduleID uuid.UUID, status model.InstallStatus, installedBy int64) (*model.ModuleInstall, bool, error) {
	row, err := s.queries.InsertInstallIfAbsent(ctx, sqlc.InsertInstallIfAbsentParams{
		BusinessID:  businessID,
		ModuleID:    moduleID,
		Status:      string(status),
		InstalledBy: &installedBy,
	})
	if err == nil {
		return toInstallModel(row), true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	// DO NOTHING returns no row when one already exists
	existing, err := s.Get(ctx, businessID, moduleID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *installStore) Transition(ctx context.Context, businessID int64, moduleID uuid.UUID, from, to model.InstallStatus) (*model.ModuleInstall, error) {
	row, err := s.queries.TransitionInstall(ctx, sqlc.TransitionInstallParams{
		ToStatus:   string(to),
		BusinessID: businessID,
		ModuleID:   moduleID,
		FromStatus: string(from),
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toInstallModel(row), nil
}

func (s *installStore) SetStatus(ctx context.Context, businessID int64, moduleID uuid.UUID, status model.InstallStatus) (*model.ModuleInstall, error) {
	row, err := s.queries.SetInstallStatus(ctx, sqlc.SetInstallStatusParams{
		BusinessID: businessID,
		ModuleID:   moduleID,
		Status:     string(status),
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toInstallModel(row), nil
}

func (s *installStore) ListByBusiness(ctx context.Context, businessID int64) ([]model.ModuleInstall, error) {
	rows, err := s.queries.ListInstallsByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	result := make([]model.ModuleInstall, len(rows))
	for i, row := range rows {
		result[i] = *toInstallModel(row)
	}
	return result, nil
}

func (s *installStore) ListMarketplace(ctx context.Context, businessID int64) ([]model.MarketplaceEntry, error) {
	rows, err := s.queries.ListMarketplace(ctx, businessID)
	if err != nil {
		return nil, err
	}
	result := make([]model.MarketplaceEntry, len(rows))
	for i, row := range rows {
		entry := model.MarketplaceEntry{
			Module:      *toModuleModel(row.Module),
			InstalledAt: toTimePointer(row.InstalledAt),
		}
		if row.InstallStatus != nil {
			status := model.InstallStatus(*row.InstallStatus)
			entry.Status = &status
		}
		result[i] = entry
	}
	return result, nil
}

func toInstallModel(row sqlc.BusinessModuleInstall) *model.ModuleInstall {
	return &model.ModuleInstall{
		BusinessID:  row.BusinessID,
		ModuleID:    row.ModuleID,
		Status:      model.InstallStatus(row.Status),
		InstalledAt: row.InstalledAt.Time,
		InstalledBy: row.InstalledBy,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
