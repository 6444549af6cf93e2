package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Forhemit/StarterClub-sub002/common/id"
	"github.com/Forhemit/StarterClub-sub002/common/logger"
	"github.com/Forhemit/StarterClub-sub002/common/metrics"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/queue"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

type OnboardingInput struct {
	BusinessName      string
	PrimaryModuleID   uuid.UUID
	InterestedModules []uuid.UUID
}

type OnboardingResult struct {
	Business       *model.Business       `json:"business"`
	Installs       []model.ModuleInstall `json:"installs"`
	ChecklistItems int64                 `json:"checklist_items"`
}

type OnboardingService interface {
	// Onboard creates the caller's business, installs and seeds the primary
	// module, and stages the interested ones. All or nothing.
	Onboard(ctx context.Context, userID int64, input OnboardingInput) (*OnboardingResult, error)
	// ResetUserBusiness deletes the user's business together with its installs
	// and checklist rows. Reports whether a business existed.
	ResetUserBusiness(ctx context.Context, userID int64) (bool, error)
}

type onboardingService struct {
	txRunner      TxRunner
	businessStore store.BusinessStore
	publisher     queue.Publisher
}

func NewOnboardingService(txRunner TxRunner, businessStore store.BusinessStore, publisher queue.Publisher) OnboardingService {
	return &onboardingService{
		txRunner:      txRunner,
		businessStore: businessStore,
		publisher:     publisher,
	}
}

func (s *onboardingService) Onboard(ctx context.Context, userID int64, input OnboardingInput) (*OnboardingResult, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}
	name := strings.TrimSpace(input.BusinessName)
	if name == "" {
		return nil, ErrBusinessNameEmpty
	}

	primary := input.PrimaryModuleID
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    &userID,
		ModuleID:  &primary,
		Component: "starterclub.service.onboarding",
	})

	result := &OnboardingResult{}
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Modules().GetByID(ctx, primary); err != nil {
			return moduleLookupErr(primary.String(), err)
		}

		business := &model.Business{
			ID:              id.New(),
			OwnerUserID:     userID,
			Name:            name,
			PrimaryModuleID: &primary,
		}
		if err := stores.Businesses().Create(ctx, business); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrAlreadyOnboarded
			}
			return fmt.Errorf("creating business: %w", err)
		}
		result.Business = business

		install, err := stores.Installs().Upsert(ctx, business.ID, primary, model.InstallStatusActive, userID)
		if err != nil {
			return fmt.Errorf("installing primary module: %w", err)
		}
		result.Installs = append(result.Installs, *install)

		seeded, err := seedChecklist(ctx, stores, business.ID, primary)
		if err != nil {
			return err
		}
		result.ChecklistItems = seeded

		seen := map[uuid.UUID]bool{primary: true}
		for _, moduleID := range input.InterestedModules {
			if seen[moduleID] {
				continue
			}
			seen[moduleID] = true

			if _, err := stores.Modules().GetByID(ctx, moduleID); err != nil {
				return moduleLookupErr(moduleID.String(), err)
			}
			staged, _, err := stores.Installs().InsertIfAbsent(ctx, business.ID, moduleID, model.InstallStatusStaged, userID)
			if err != nil {
				return fmt.Errorf("staging module %s: %w", moduleID, err)
			}
			result.Installs = append(result.Installs, *staged)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyOnboarded) && !errors.Is(err, ErrModuleNotFound) {
			slog.ErrorContext(ctx, "failed to onboard business", "error", err)
		}
		return nil, err
	}

	for _, install := range result.Installs {
		metrics.RecordTransition("onboard", string(install.Status))
	}
	metrics.RecordSeeded(result.ChecklistItems)

	slog.InfoContext(ctx, "business onboarded",
		"business_id", result.Business.ID,
		"modules", len(result.Installs),
		"checklist_items", result.ChecklistItems,
	)
	invalidate(ctx, s.publisher, result.Business.ID, "business_onboarded",
		queue.PathDashboard, queue.PathMarketplace, queue.PathChecklist)
	return result, nil
}

func (s *onboardingService) ResetUserBusiness(ctx context.Context, userID int64) (bool, error) {
	business, err := s.businessStore.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("getting business: %w", err)
	}

	deleted, err := s.businessStore.DeleteByOwner(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("deleting business: %w", err)
	}

	slog.InfoContext(ctx, "business reset", "user_id", userID, "business_id", business.ID)
	invalidate(ctx, s.publisher, business.ID, "business_reset",
		queue.PathDashboard, queue.PathMarketplace, queue.PathChecklist)
	return deleted > 0, nil
}
