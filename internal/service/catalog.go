package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

// ModuleDetail is a module with its checklist items in display order.
type ModuleDetail struct {
	Module model.Module       `json:"module"`
	Items  []model.ModuleItem `json:"items"`
}

// CatalogService is the read path for modules plus the admin write path
// that replaces a module definition.
type CatalogService interface {
	// Resolve accepts a UUID, a slug or an exact display name, tried in that
	// order. Several modules with the same name resolve to the newest.
	Resolve(ctx context.Context, identifier string) (*model.Module, error)
	ResolveByName(ctx context.Context, name string) (*model.Module, error)
	List(ctx context.Context, filter store.ModuleFilter) ([]model.Module, error)
	Get(ctx context.Context, identifier string) (*ModuleDetail, error)
	Upsert(ctx context.Context, def model.ModuleDefinition) (*model.Module, error)
	// UpsertAll applies definitions in order inside one transaction.
	UpsertAll(ctx context.Context, defs []model.ModuleDefinition) (int, error)
}

type catalogService struct {
	moduleStore store.ModuleStore
	txRunner    TxRunner
}

func NewCatalogService(moduleStore store.ModuleStore, txRunner TxRunner) CatalogService {
	return &catalogService{
		moduleStore: moduleStore,
		txRunner:    txRunner,
	}
}

func (s *catalogService) Resolve(ctx context.Context, identifier string) (*model.Module, error) {
	ref := strings.TrimSpace(identifier)
	if ref == "" {
		return nil, &ModuleNotFoundError{Identifier: identifier}
	}

	if moduleID, err := uuid.Parse(ref); err == nil {
		module, err := s.moduleStore.GetByID(ctx, moduleID)
		if err != nil {
			return nil, moduleLookupErr(ref, err)
		}
		return module, nil
	}

	module, err := s.moduleStore.GetBySlug(ctx, ref)
	if err == nil {
		return module, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting module by slug: %w", err)
	}

	return s.ResolveByName(ctx, ref)
}

func (s *catalogService) ResolveByName(ctx context.Context, name string) (*model.Module, error) {
	ref := strings.TrimSpace(name)
	module, err := s.moduleStore.GetLatestByName(ctx, ref)
	if err != nil {
		return nil, moduleLookupErr(ref, err)
	}
	return module, nil
}

func (s *catalogService) List(ctx context.Context, filter store.ModuleFilter) ([]model.Module, error) {
	modules, err := s.moduleStore.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	return modules, nil
}

func (s *catalogService) Get(ctx context.Context, identifier string) (*ModuleDetail, error) {
	module, err := s.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	items, err := s.moduleStore.ListItems(ctx, module.ID)
	if err != nil {
		return nil, fmt.Errorf("listing module items: %w", err)
	}
	return &ModuleDetail{Module: *module, Items: items}, nil
}

func (s *catalogService) Upsert(ctx context.Context, def model.ModuleDefinition) (*model.Module, error) {
	var module *model.Module
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		module, err = upsertDefinition(ctx, stores.Modules(), def)
		return err
	})
	if err != nil {
		return nil, err
	}
	return module, nil
}

func (s *catalogService) UpsertAll(ctx context.Context, defs []model.ModuleDefinition) (int, error) {
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		for _, def := range defs {
			if _, err := upsertDefinition(ctx, stores.Modules(), def); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(defs), nil
}

// upsertDefinition writes a module keyed by slug and replaces its ordered
// item list. Items are matched to existing ones by title so that business
// checklist rows pointing at them survive a re-seed.
func upsertDefinition(ctx context.Context, modules store.ModuleStore, def model.ModuleDefinition) (*model.Module, error) {
	if !def.Type.Valid() {
		return nil, fmt.Errorf("module %q: invalid type %q", def.Slug, def.Type)
	}

	module := &model.Module{
		Slug:        def.Slug,
		Name:        def.Name,
		Description: def.Description,
		Type:        def.Type,
		Version:     def.Version,
		PriceTier:   def.PriceTier,
	}

	if def.ParentSlug != "" {
		parent, err := modules.GetBySlug(ctx, def.ParentSlug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, &ModuleNotFoundError{Identifier: def.ParentSlug}
			}
			return nil, fmt.Errorf("getting parent module: %w", err)
		}
		module.ParentID = &parent.ID
	}

	if err := modules.Upsert(ctx, module); err != nil {
		return nil, fmt.Errorf("upserting module %q: %w", def.Slug, err)
	}

	existing, err := modules.ListItems(ctx, module.ID)
	if err != nil {
		return nil, fmt.Errorf("listing module items: %w", err)
	}
	byTitle := make(map[string]uuid.UUID, len(existing))
	for _, it := range existing {
		byTitle[it.Title] = it.ItemID
	}

	categories := make(map[string]uuid.UUID)
	itemIDs := make([]uuid.UUID, 0, len(def.Items))
	for _, it := range def.Items {
		var categoryID *uuid.UUID
		if it.CategorySlug != "" {
			catID, ok := categories[it.CategorySlug]
			if !ok {
				catID, err = modules.UpsertCategory(ctx, it.CategorySlug, it.CategoryName)
				if err != nil {
					return nil, fmt.Errorf("upserting category %q: %w", it.CategorySlug, err)
				}
				categories[it.CategorySlug] = catID
			}
			categoryID = &catID
		}

		if itemID, ok := byTitle[it.Title]; ok {
			if err := modules.UpdateItem(ctx, itemID, it.Description, categoryID); err != nil {
				return nil, fmt.Errorf("updating item %q: %w", it.Title, err)
			}
			itemIDs = append(itemIDs, itemID)
			continue
		}

		itemID, err := modules.CreateItem(ctx, it.Title, it.Description, categoryID)
		if err != nil {
			return nil, fmt.Errorf("creating item %q: %w", it.Title, err)
		}
		itemIDs = append(itemIDs, itemID)
	}

	if err := modules.ClearItems(ctx, module.ID); err != nil {
		return nil, fmt.Errorf("clearing module items: %w", err)
	}
	for i, itemID := range itemIDs {
		if err := modules.AddItem(ctx, module.ID, itemID, int32(i+1)); err != nil {
			return nil, fmt.Errorf("adding module item: %w", err)
		}
	}

	slog.InfoContext(ctx, "module upserted",
		"module_id", module.ID,
		"slug", module.Slug,
		"items", len(itemIDs),
	)
	return module, nil
}

func moduleLookupErr(identifier string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &ModuleNotFoundError{Identifier: identifier}
	}
	return fmt.Errorf("getting module: %w", err)
}
