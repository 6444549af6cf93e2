package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/core/db/sqlc"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type moduleStore struct {
	queries *sqlc.Queries
}

func newModuleStore(queries *sqlc.Queries) ModuleStore {
	return &moduleStore{queries: queries}
}

func (s *moduleStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	row, err := s.queries.GetModule(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toModuleModel(row), nil
}

func (s *moduleStore) GetBySlug(ctx context.Context, slug string) (*model.Module, error) {
	row, err := s.queries.GetModuleBySlug(ctx, slug)
	if err != nil {
		return nil, mapErr(err)
	}
	return toModuleModel(row), nil
}

// GetLatestByName returns the most recently created module with this exact name.
func (s *moduleStore) GetLatestByName(ctx context.Context, name string) (*model.Module, error) {
	row, err := s.queries.GetLatestModuleByName(ctx, name)
	if err != nil {
		return nil, mapErr(err)
	}
	return toModuleModel(row), nil
}

func (s *moduleStore) List(ctx context.Context, filter ModuleFilter) ([]model.Module, error) {
	params := sqlc.ListModulesParams{ParentID: filter.ParentID}
	if filter.Type != nil {
		t := string(*filter.Type)
		params.Type = &t
	}
	rows, err := s.queries.ListModules(ctx, params)
	if err != nil {
		return nil, err
	}
	return toModuleModels(rows), nil
}

func (s *moduleStore) Upsert(ctx context.Context, module *model.Module) error {
	row, err := s.queries.UpsertModule(ctx, sqlc.UpsertModuleParams{
		Slug:        module.Slug,
		Name:        module.Name,
		Description: module.Description,
		Type:        string(module.Type),
		ParentID:    module.ParentID,
		Version:     module.Version,
		PriceTier:   module.PriceTier,
	})
	if err != nil {
		return mapErr(err)
	}
	*module = *toModuleModel(row)
	return nil
}

func (s *moduleStore) ListItems(ctx context.Context, moduleID uuid.UUID) ([]model.ModuleItem, error) {
	rows, err := s.queries.ListModuleItems(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	items := make([]model.ModuleItem, len(rows))
	for i, row := range rows {
		items[i] = model.ModuleItem{
			ItemID:       row.ItemID,
			DisplayOrder: row.DisplayOrder,
			Title:        row.Title,
			Description:  row.Description,
			CategoryID:   row.CategoryID,
			CategorySlug: row.CategorySlug,
			CategoryName: row.CategoryName,
		}
	}
	return items, nil
}

func (s *moduleStore) ListItemIDs(ctx context.Context, moduleID uuid.UUID) ([]uuid.UUID, error) {
	return s.queries.ListModuleItemIDs(ctx, moduleID)
}

func (s *moduleStore) UpsertCategory(ctx context.Context, slug, name string) (uuid.UUID, error) {
	row, err := s.queries.UpsertChecklistCategory(ctx, sqlc.UpsertChecklistCategoryParams{
		Slug: slug,
		Name: name,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (s *moduleStore) CreateItem(ctx context.Context, title, description string, categoryID *uuid.UUID) (uuid.UUID, error) {
	row, err := s.queries.CreateChecklistItem(ctx, sqlc.CreateChecklistItemParams{
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (s *moduleStore) UpdateItem(ctx context.Context, id uuid.UUID, description string, categoryID *uuid.UUID) error {
	return s.queries.UpdateChecklistItem(ctx, sqlc.UpdateChecklistItemParams{
		ID:          id,
		Description: description,
		CategoryID:  categoryID,
	})
}

func (s *moduleStore) ClearItems(ctx context.Context, moduleID uuid.UUID) error {
	return s.queries.DeleteModuleItems(ctx, moduleID)
}

func (s *moduleStore) AddItem(ctx context.Context, moduleID, itemID uuid.UUID, displayOrder int32) error {
	return s.queries.AddModuleItem(ctx, sqlc.AddModuleItemParams{
		ModuleID:     moduleID,
		ItemID:       itemID,
		DisplayOrder: displayOrder,
	})
}

func toModuleModel(row sqlc.Module) *model.Module {
	return &model.Module{
		ID:          row.ID,
		Slug:        row.Slug,
		Name:        row.Name,
		Description: row.Description,
		Type:        model.ModuleType(row.Type),
		ParentID:    row.ParentID,
		Version:     row.Version,
		PriceTier:   row.PriceTier,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toModuleModels(rows []sqlc.Module) []model.Module {
	result := make([]model.Module, len(rows))
	for i, row := range rows {
		result[i] = *toModuleModel(row)
	}
	return result
}
