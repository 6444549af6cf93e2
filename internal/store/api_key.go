package store

import (
	"context"

	"github.com/Forhemit/StarterClub-sub002/core/db/sqlc"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type apiKeyStore struct {
	queries *sqlc.Queries
}

func newAPIKeyStore(queries *sqlc.Queries) APIKeyStore {
	return &apiKeyStore{queries: queries}
}

func (s *apiKeyStore) Create(ctx context.Context, key *model.APIKey) error {
	row, err := s.queries.CreateAPIKey(ctx, sqlc.CreateAPIKeyParams{
		ID:         key.ID,
		Name:       key.Name,
		Prefix:     key.Prefix,
		SecretHash: key.SecretHash,
		CreatedBy:  key.CreatedBy,
	})
	if err != nil {
		return mapErr(err)
	}
	*key = *toAPIKeyModel(row)
	return nil
}

func (s *apiKeyStore) GetActiveByPrefix(ctx context.Context, prefix string) (*model.APIKey, error) {
	row, err := s.queries.GetActiveAPIKeyByPrefix(ctx, prefix)
	if err != nil {
		return nil, mapErr(err)
	}
	return toAPIKeyModel(row), nil
}

func (s *apiKeyStore) Touch(ctx context.Context, id int64) error {
	return s.queries.TouchAPIKey(ctx, id)
}

func (s *apiKeyStore) List(ctx context.Context) ([]model.APIKey, error) {
	rows, err := s.queries.ListAPIKeys(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.APIKey, len(rows))
	for i, row := range rows {
		result[i] = *toAPIKeyModel(row)
	}
	return result, nil
}

func (s *apiKeyStore) Revoke(ctx context.Context, id int64) error {
	n, err := s.queries.RevokeAPIKey(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toAPIKeyModel(row sqlc.ApiKey) *model.APIKey {
	return &model.APIKey{
		ID:         row.ID,
		Name:       row.Name,
		Prefix:     row.Prefix,
		SecretHash: row.SecretHash,
		CreatedBy:  row.CreatedBy,
		LastUsedAt: toTimePointer(row.LastUsedAt),
		RevokedAt:  toTimePointer(row.RevokedAt),
		CreatedAt:  row.CreatedAt.Time,
	}
}
