package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Forhemit/StarterClub-sub002/common/id"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

const apiKeyScheme = "sck"

// APIKeyService issues and checks admin API keys of the form
// sck_<prefix>_<secret>. Only the prefix and a bcrypt hash of the secret are stored.
type APIKeyService interface {
	// Create returns the stored key and the full token, which is never shown again.
	Create(ctx context.Context, name string, createdBy *int64) (*model.APIKey, string, error)
	Verify(ctx context.Context, token string) (*model.APIKey, error)
	List(ctx context.Context) ([]model.APIKey, error)
	Revoke(ctx context.Context, id int64) error
}

type apiKeyService struct {
	apiKeyStore store.APIKeyStore
}

func NewAPIKeyService(apiKeyStore store.APIKeyStore) APIKeyService {
	return &apiKeyService{apiKeyStore: apiKeyStore}
}

func (s *apiKeyService) Create(ctx context.Context, name string, createdBy *int64) (*model.APIKey, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", ErrAPIKeyNameEmpty
	}

	prefixBytes := make([]byte, 6)
	if _, err := rand.Read(prefixBytes); err != nil {
		return nil, "", fmt.Errorf("generating key prefix: %w", err)
	}
	secretBytes := make([]byte, 32)
	if _, err := rand.Read(secretBytes); err != nil {
		return nil, "", fmt.Errorf("generating key secret: %w", err)
	}
	prefix := hex.EncodeToString(prefixBytes)
	secret := base64.RawURLEncoding.EncodeToString(secretBytes)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing key secret: %w", err)
	}

	key := &model.APIKey{
		ID:         id.New(),
		Name:       name,
		Prefix:     prefix,
		SecretHash: string(hash),
		CreatedBy:  createdBy,
	}
	if err := s.apiKeyStore.Create(ctx, key); err != nil {
		return nil, "", fmt.Errorf("creating api key: %w", err)
	}

	slog.InfoContext(ctx, "api key created", "api_key_id", key.ID, "prefix", prefix, "name", name)
	return key, apiKeyScheme + "_" + prefix + "_" + secret, nil
}

func (s *apiKeyService) Verify(ctx context.Context, token string) (*model.APIKey, error) {
	prefix, secret, ok := parseAPIKey(token)
	if !ok {
		return nil, ErrInvalidAPIKey
	}

	key, err := s.apiKeyStore.GetActiveByPrefix(ctx, prefix)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidAPIKey
		}
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(key.SecretHash), []byte(secret)); err != nil {
		return nil, ErrInvalidAPIKey
	}

	if err := s.apiKeyStore.Touch(ctx, key.ID); err != nil {
		slog.WarnContext(ctx, "failed to record api key use", "error", err, "api_key_id", key.ID)
	}
	return key, nil
}

func (s *apiKeyService) List(ctx context.Context) ([]model.APIKey, error) {
	keys, err := s.apiKeyStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing api keys: %w", err)
	}
	return keys, nil
}

func (s *apiKeyService) Revoke(ctx context.Context, id int64) error {
	if err := s.apiKeyStore.Revoke(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAPIKeyNotFound
		}
		return fmt.Errorf("revoking api key: %w", err)
	}
	slog.InfoContext(ctx, "api key revoked", "api_key_id", id)
	return nil
}

func parseAPIKey(token string) (prefix, secret string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(token), "_", 3)
	if len(parts) != 3 || parts[0] != apiKeyScheme || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
