package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

// TenantService maps an authenticated user to the business they own.
type TenantService interface {
	// Resolve returns ErrBusinessNotFound when the user has not onboarded.
	// Database failures are returned as errors, never as "not found".
	Resolve(ctx context.Context, userID int64) (*model.Business, error)
}

type tenantService struct {
	businessStore store.BusinessStore
}

func NewTenantService(businessStore store.BusinessStore) TenantService {
	return &tenantService{businessStore: businessStore}
}

func (s *tenantService) Resolve(ctx context.Context, userID int64) (*model.Business, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}

	business, err := s.businessStore.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		slog.ErrorContext(ctx, "failed to resolve business", "error", err, "user_id", userID)
		return nil, fmt.Errorf("getting business for user: %w", err)
	}
	return business, nil
}
