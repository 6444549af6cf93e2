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

// BillingService applies subscription events to subscriptions and member roles.
type BillingService interface {
	Apply(ctx context.Context, audience model.Audience, change *mapper.SubscriptionChange) error
	ListSubscriptions(ctx context.Context, memberID int64) ([]model.Subscription, error)
}

type billingService struct {
	txRunner          TxRunner
	memberStore       store.MemberStore
	subscriptionStore store.SubscriptionStore
	directory         IdentityDirectory
}

func NewBillingService(
	txRunner TxRunner,
	memberStore store.MemberStore,
	subscriptionStore store.SubscriptionStore,
	directory IdentityDirectory,
) BillingService {
	return &billingService{
		txRunner:          txRunner,
		memberStore:       memberStore,
		subscriptionStore: subscriptionStore,
		directory:         directory,
	}
}

func (s *billingService) Apply(ctx context.Context, audience model.Audience, change *mapper.SubscriptionChange) error {
	member, directoryUser, err := s.findMember(ctx, change)
	if err != nil {
		return err
	}

	return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if member == nil && directoryUser != nil {
			workosID := directoryUser.ID
			member = &model.Member{
				ID:           id.New(),
				WorkOSUserID: &workosID,
				Email:        directoryUser.Email,
			}
			if user, err := stores.Users().GetByWorkOSID(ctx, workosID); err == nil {
				member.UserID = &user.ID
			} else if !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("getting user: %w", err)
			}
			if err := stores.Members().UpsertByWorkOSUserID(ctx, member); err != nil {
				return fmt.Errorf("creating member: %w", err)
			}
		}

		sub := &model.Subscription{
			ID:               change.SubscriptionID,
			StripeCustomerID: change.CustomerID,
			Audience:         audience,
			Status:           change.Status,
			PlanSlug:         change.PlanSlug,
			Role:             model.Role(change.Role),
			Addons:           change.Addons,
			CurrentPeriodEnd: change.CurrentPeriodEnd,
			CanceledAt:       change.CanceledAt,
		}

		if member != nil {
			sub.MemberID = &member.ID
		}
		if err := stores.Subscriptions().Upsert(ctx, sub); err != nil {
			return fmt.Errorf("upserting subscription: %w", err)
		}

		if member == nil {
			slog.WarnContext(ctx, "subscription has no matching member",
				"subscription_id", change.SubscriptionID,
				"customer_id", change.CustomerID,
			)
			return nil
		}

		// The role reflects every live subscription, not only this event's.
		subs, err := stores.Subscriptions().ListByMember(ctx, member.ID)
		if err != nil {
			return fmt.Errorf("listing member subscriptions: %w", err)
		}
		role := mapper.MemberRole(subs, audience)

		if _, err := stores.Members().SetBilling(ctx, member.ID, change.CustomerID, role); err != nil {
			return fmt.Errorf("setting member billing: %w", err)
		}

		slog.InfoContext(ctx, "subscription applied",
			"event_id", change.EventID,
			"subscription_id", sub.ID,
			"audience", audience,
			"status", sub.Status,
			"plan_role", sub.Role,
			"member_role", role,
		)
		return nil
	})
}

// findMember links a subscription to a member by Stripe customer id, then by
// email, then by asking the identity provider for a user with that email.
// The last case returns the directory user for the caller to create.
func (s *billingService) findMember(ctx context.Context, change *mapper.SubscriptionChange) (*model.Member, *mapper.WorkOSUser, error) {
	member, err := s.memberStore.GetByStripeCustomerID(ctx, change.CustomerID)
	if err == nil {
		return member, nil, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, nil, fmt.Errorf("getting member by customer: %w", err)
	}

	if change.Email == "" {
		return nil, nil, nil
	}

	member, err = s.memberStore.GetByEmail(ctx, change.Email)
	if err == nil {
		return member, nil, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, nil, fmt.Errorf("getting member by email: %w", err)
	}

	if s.directory == nil {
		return nil, nil, nil
	}
	user, err := s.directory.FindUserByEmail(ctx, change.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("looking up identity by email: %w", err)
	}
	if user != nil {
		if existing, err := s.memberStore.GetByWorkOSUserID(ctx, user.ID); err == nil {
			return existing, nil, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, nil, fmt.Errorf("getting member by identity: %w", err)
		}
	}
	return nil, user, nil
}

func (s *billingService) ListSubscriptions(ctx context.Context, memberID int64) ([]model.Subscription, error) {
	subs, err := s.subscriptionStore.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	return subs, nil
}
