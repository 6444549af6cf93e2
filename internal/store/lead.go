package store

import (
	"context"

	"github.com/Forhemit/StarterClub-sub002/core/db/sqlc"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type leadStore struct {
	queries *sqlc.Queries
}

func newLeadStore(queries *sqlc.Queries) LeadStore {
	return &leadStore{queries: queries}
}

func (s *leadStore) Upsert(ctx context.Context, lead *model.Lead) error {
	row, err := s.queries.UpsertLead(ctx, sqlc.UpsertLeadParams{
		ID:      lead.ID,
		Email:   lead.Email,
		Name:    lead.Name,
		Company: lead.Company,
		Source:  string(lead.Source),
		Message: lead.Message,
	})
	if err != nil {
		return mapErr(err)
	}
	*lead = *toLeadModel(row)
	return nil
}

func (s *leadStore) List(ctx context.Context, source *model.LeadSource, limit, offset int32) ([]model.Lead, error) {
	params := sqlc.ListLeadsParams{Limit: limit, Offset: offset}
	if source != nil {
		src := string(*source)
		params.Source = &src
	}
	rows, err := s.queries.ListLeads(ctx, params)
	if err != nil {
		return nil, err
	}
	result := make([]model.Lead, len(rows))
	for i, row := range rows {
		result[i] = *toLeadModel(row)
	}
	return result, nil
}

func toLeadModel(row sqlc.Lead) *model.Lead {
	return &model.Lead{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Company:   row.Company,
		Source:    model.LeadSource(row.Source),
		Message:   row.Message,
		CreatedAt: row.CreatedAt.Time,
	}
}
