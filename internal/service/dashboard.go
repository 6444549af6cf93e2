package service

import (
	"context"
	"fmt"

	"github.com/Forhemit/StarterClub-sub002/internal/dashboard"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

type DashboardService interface {
	Summary(ctx context.Context, userID int64) (*dashboard.Summary, error)
}

type dashboardService struct {
	tenants        TenantService
	checklistStore store.ChecklistStore
}

func NewDashboardService(tenants TenantService, checklistStore store.ChecklistStore) DashboardService {
	return &dashboardService{
		tenants:        tenants,
		checklistStore: checklistStore,
	}
}

func (s *dashboardService) Summary(ctx context.Context, userID int64) (*dashboard.Summary, error) {
	business, err := s.tenants.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.checklistStore.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, fmt.Errorf("listing checklist: %w", err)
	}

	summary := dashboard.Aggregate(rows)
	return &summary, nil
}
