package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Forhemit/StarterClub-sub002/common/id"
	"github.com/Forhemit/StarterClub-sub002/internal/mapper"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

// IdentityService applies identity provider user events to users and members.
type IdentityService interface {
	Apply(ctx context.Context, change *mapper.IdentityChange) error
	ListMembers(ctx context.Context, limit, offset int32) ([]model.Member, error)
}

type identityService struct {
	txRunner    TxRunner
	memberStore store.MemberStore
}

func NewIdentityService(txRunner TxRunner, memberStore store.MemberStore) IdentityService {
	return &identityService{
		txRunner:    txRunner,
		memberStore: memberStore,
	}
}

func (s *identityService) Apply(ctx context.Context, change *mapper.IdentityChange) error {
	if change.User.ID == "" {
		return fmt.Errorf("identity event %s has no user id", change.EventID)
	}

	switch change.Type {
	case mapper.EventUserUpserted:
		return s.upsert(ctx, change)
	case mapper.EventUserDeleted:
		return s.delete(ctx, change)
	}
	return fmt.Errorf("%w: %s", mapper.ErrIgnoredEvent, change.Type)
}

func (s *identityService) upsert(ctx context.Context, change *mapper.IdentityChange) error {
	workosID := change.User.ID

	return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var avatarURL *string
		if change.User.ProfilePictureURL != "" {
			avatarURL = &change.User.ProfilePictureURL
		}
		user := &model.User{
			ID:        id.New(),
			Name:      change.User.DisplayName(),
			Email:     change.User.Email,
			AvatarURL: avatarURL,
			WorkOSID:  &workosID,
		}
		if err := stores.Users().UpsertByWorkOSID(ctx, user); err != nil {
			return fmt.Errorf("upserting user: %w", err)
		}

		member := &model.Member{
			ID:           id.New(),
			UserID:       &user.ID,
			WorkOSUserID: &workosID,
			Email:        change.User.Email,
		}
		if err := stores.Members().UpsertByWorkOSUserID(ctx, member); err != nil {
			return fmt.Errorf("upserting member: %w", err)
		}

		slog.InfoContext(ctx, "identity synced",
			"event_id", change.EventID,
			"user_id", user.ID,
			"member_id", member.ID,
		)
		return nil
	})
}

func (s *identityService) delete(ctx context.Context, change *mapper.IdentityChange) error {
	workosID := change.User.ID

	return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		deleted, err := stores.Members().DeleteByWorkOSUserID(ctx, workosID)
		if err != nil {
			return fmt.Errorf("deleting member: %w", err)
		}

		user, err := stores.Users().GetByWorkOSID(ctx, workosID)
		switch {
		case err == nil:
			if err := stores.Sessions().DeleteByUser(ctx, user.ID); err != nil {
				return fmt.Errorf("deleting sessions: %w", err)
			}
		case errors.Is(err, store.ErrNotFound):
			// never logged in
		default:
			return fmt.Errorf("getting user: %w", err)
		}

		slog.InfoContext(ctx, "identity removed",
			"event_id", change.EventID,
			"members_deleted", deleted,
		)
		return nil
	})
}

func (s *identityService) ListMembers(ctx context.Context, limit, offset int32) ([]model.Member, error) {
	members, err := s.memberStore.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	return members, nil
}
