package store

import (
	"context"

	"github.com/Forhemit/StarterClub-sub002/core/db/sqlc"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type memberStore struct {
	queries *sqlc.Queries
}

func newMemberStore(queries *sqlc.Queries) MemberStore {
	return &memberStore{queries: queries}
}

func (s *memberStore) GetByWorkOSUserID(ctx context.Context, workosUserID string) (*model.Member, error) {
	row, err := s.queries.GetMemberByWorkOSUserID(ctx, &workosUserID)
	if err != nil {
		return nil, mapErr(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) GetByStripeCustomerID(ctx context.Context, customerID string) (*model.Member, error) {
	row, err := s.queries.GetMemberByStripeCustomerID(ctx, &customerID)
	if err != nil {
		return nil, mapErr(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	row, err := s.queries.GetMemberByEmail(ctx, email)
	if err != nil {
		return nil, mapErr(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) UpsertByWorkOSUserID(ctx context.Context, member *model.Member) error {
	row, err := s.queries.UpsertMemberByWorkOSUserID(ctx, sqlc.UpsertMemberByWorkOSUserIDParams{
		ID:           member.ID,
		UserID:       member.UserID,
		WorkosUserID: member.WorkOSUserID,
		Email:        member.Email,
	})
	if err != nil {
		return mapErr(err)
	}
	*member = *toMemberModel(row)
	return nil
}

func (s *memberStore) SetBilling(ctx context.Context, id int64, customerID string, role model.Role) (*model.Member, error) {
	row, err := s.queries.SetMemberBilling(ctx, sqlc.SetMemberBillingParams{
		ID:               id,
		StripeCustomerID: strPtr(customerID),
		Role:             string(role),
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) DeleteByWorkOSUserID(ctx context.Context, workosUserID string) (int64, error) {
	return s.queries.DeleteMemberByWorkOSUserID(ctx, &workosUserID)
}

func (s *memberStore) List(ctx context.Context, limit, offset int32) ([]model.Member, error) {
	rows, err := s.queries.ListMembers(ctx, sqlc.ListMembersParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	result := make([]model.Member, len(rows))
	for i, row := range rows {
		result[i] = *toMemberModel(row)
	}
	return result, nil
}

func toMemberModel(row sqlc.Member) *model.Member {
	return &model.Member{
		ID:               row.ID,
		UserID:           row.UserID,
		WorkOSUserID:     row.WorkosUserID,
		Email:            row.Email,
		Role:             model.Role(row.Role),
		StripeCustomerID: row.StripeCustomerID,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
