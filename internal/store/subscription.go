package store

import (
	"context"

	"github.com/Forhemit/StarterClub-sub002/core/db/sqlc"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type subscriptionStore struct {
	queries *sqlc.Queries
}

func newSubscriptionStore(queries *sqlc.Queries) SubscriptionStore {
	return &subscriptionStore{queries: queries}
}

func (s *subscriptionStore) Upsert(ctx context.Context, sub *model.Subscription) error {
	addons := sub.Addons
	if addons == nil {
		addons = []string{}
	}
	row, err := s.queries.UpsertSubscription(ctx, sqlc.UpsertSubscriptionParams{
		ID:               sub.ID,
		StripeCustomerID: sub.StripeCustomerID,
		MemberID:         sub.MemberID,
		Audience:         string(sub.Audience),
		Status:           sub.Status,
		PlanSlug:         sub.PlanSlug,
		Role:             string(sub.Role),
		Addons:           addons,
		CurrentPeriodEnd: toNullableTimestamp(sub.CurrentPeriodEnd),
		CanceledAt:       toNullableTimestamp(sub.CanceledAt),
	})
	if err != nil {
		return mapErr(err)
	}
	*sub = *toSubscriptionModel(row)
	return nil
}

func (s *subscriptionStore) ListByMember(ctx context.Context, memberID int64) ([]model.Subscription, error) {
	rows, err := s.queries.ListSubscriptionsByMember(ctx, &memberID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Subscription, len(rows))
	for i, row := range rows {
		result[i] = *toSubscriptionModel(row)
	}
	return result, nil
}

func toSubscriptionModel(row sqlc.Subscription) *model.Subscription {
	return &model.Subscription{
		ID:               row.ID,
		StripeCustomerID: row.StripeCustomerID,
		MemberID:         row.MemberID,
		Audience:         model.Audience(row.Audience),
		Status:           row.Status,
		PlanSlug:         row.PlanSlug,
		Role:             model.Role(row.Role),
		Addons:           row.Addons,
		CurrentPeriodEnd: toTimePointer(row.CurrentPeriodEnd),
		CanceledAt:       toTimePointer(row.CanceledAt),
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
