package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Forhemit/StarterClub-sub002/common/id"
	"github.com/Forhemit/StarterClub-sub002/internal/mapper"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

var _ = Describe("BillingService", func() {
	var (
		ctx       context.Context
		members   *mockMemberStore
		subs      *mockSubscriptionStore
		users     *mockUserStore
		directory *mockDirectory
		svc       service.BillingService
		change    *mapper.SubscriptionChange
	)

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
		ctx = context.Background()
		members = &mockMemberStore{}
		subs = &mockSubscriptionStore{}
		users = &mockUserStore{}
		directory = &mockDirectory{}
		provider := &mockStoreProvider{members: members, subscriptions: subs, users: users}
		svc = service.NewBillingService(&mockTxRunner{
			withTxFn: func(_ context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(provider)
			},
		}, members, subs, directory)

		change = &mapper.SubscriptionChange{
			Type:           mapper.EventSubscriptionUpserted,
			EventID:        "evt_1",
			SubscriptionID: "sub_1",
			CustomerID:     "cus_1",
			Email:          "grace@example.com",
			Status:         "active",
			PlanSlug:       "member-pro",
			Role:           string(model.RoleMemberPro),
			Addons:         []string{"coaching"},
		}
	})

	It("links by Stripe customer id first", func() {
		members.getByStripeCustomerIDFn = func(_ context.Context, customerID string) (*model.Member, error) {
			Expect(customerID).To(Equal("cus_1"))
			return &model.Member{ID: 5}, nil
		}
		members.getByEmailFn = func(_ context.Context, _ string) (*model.Member, error) {
			Fail("email lookup should not run")
			return nil, nil
		}

		Expect(svc.Apply(ctx, model.AudienceMember, change)).To(Succeed())
		Expect(subs.upserted).To(HaveLen(1))
		sub := subs.upserted[0]
		Expect(sub.MemberID).To(HaveValue(Equal(int64(5))))
		Expect(sub.Audience).To(Equal(model.AudienceMember))
		Expect(sub.Role).To(Equal(model.RoleMemberPro))
		Expect(sub.Addons).To(ConsistOf("coaching"))
	})

	It("falls back to the member's email", func() {
		var roleSet model.Role
		members.getByEmailFn = func(_ context.Context, email string) (*model.Member, error) {
			Expect(email).To(Equal("grace@example.com"))
			return &model.Member{ID: 6}, nil
		}
		members.setBillingFn = func(_ context.Context, id int64, customerID string, role model.Role) (*model.Member, error) {
			Expect(id).To(Equal(int64(6)))
			Expect(customerID).To(Equal("cus_1"))
			roleSet = role
			return &model.Member{ID: id, Role: role}, nil
		}

		Expect(svc.Apply(ctx, model.AudienceMember, change)).To(Succeed())
		Expect(roleSet).To(Equal(model.RoleMemberPro))
		Expect(directory.calls).To(BeZero())
	})

	It("creates the member from the identity directory", func() {
		directory.findFn = func(_ context.Context, email string) (*mapper.WorkOSUser, error) {
			return &mapper.WorkOSUser{ID: "user_9", Email: email}, nil
		}
		members.upsertFn = func(_ context.Context, m *model.Member) error {
			m.ID = 9
			return nil
		}

		Expect(svc.Apply(ctx, model.AudienceMember, change)).To(Succeed())
		Expect(members.upserted).To(HaveLen(1))
		Expect(members.upserted[0].WorkOSUserID).To(HaveValue(Equal("user_9")))
		Expect(subs.upserted[0].MemberID).To(HaveValue(Equal(int64(9))))
	})

	It("stores the subscription even when no member matches", func() {
		Expect(svc.Apply(ctx, model.AudiencePartner, change)).To(Succeed())
		Expect(subs.upserted).To(HaveLen(1))
		Expect(subs.upserted[0].MemberID).To(BeNil())
		Expect(subs.upserted[0].Audience).To(Equal(model.AudiencePartner))
	})

	It("fails when the directory lookup fails", func() {
		directory.findFn = func(_ context.Context, _ string) (*mapper.WorkOSUser, error) {
			return nil, errors.New("rate limited")
		}

		Expect(svc.Apply(ctx, model.AudienceMember, change)).To(MatchError(ContainSubstring("rate limited")))
		Expect(subs.upserted).To(BeEmpty())
	})

	It("applies the table default role on cancellation", func() {
		members.getByStripeCustomerIDFn = func(_ context.Context, _ string) (*model.Member, error) {
			return &model.Member{ID: 5, Role: model.RolePartner}, nil
		}
		var roleSet model.Role
		members.setBillingFn = func(_ context.Context, id int64, _ string, role model.Role) (*model.Member, error) {
			roleSet = role
			return &model.Member{ID: id, Role: role}, nil
		}
		change.Type = mapper.EventSubscriptionCanceled
		change.Status = "canceled"
		change.Role = string(mapper.PartnerPlans.Default)

		Expect(svc.Apply(ctx, model.AudiencePartner, change)).To(Succeed())
		Expect(roleSet).To(Equal(model.RolePartnerLapsed))
		Expect(subs.upserted[0].Status).To(Equal("canceled"))
	})

	Describe("member role across subscriptions", func() {
		var roles []model.Role

		BeforeEach(func() {
			roles = nil
			members.getByStripeCustomerIDFn = func(_ context.Context, _ string) (*model.Member, error) {
				return &model.Member{ID: 5}, nil
			}
			members.setBillingFn = func(_ context.Context, id int64, _ string, role model.Role) (*model.Member, error) {
				roles = append(roles, role)
				return &model.Member{ID: id, Role: role}, nil
			}
		})

		subscription := func(subID, status, plan string, role model.Role, eventType mapper.CanonicalEventType) *mapper.SubscriptionChange {
			return &mapper.SubscriptionChange{
				Type:           eventType,
				SubscriptionID: subID,
				CustomerID:     "cus_1",
				Status:         status,
				PlanSlug:       plan,
				Role:           string(role),
			}
		}

		It("keeps the higher plan when another subscription is deleted", func() {
			Expect(svc.Apply(ctx, model.AudienceMember, subscription("sub_old", "active", "member-monthly", model.RoleMember, mapper.EventSubscriptionUpserted))).To(Succeed())
			Expect(svc.Apply(ctx, model.AudienceMember, subscription("sub_pro", "active", "member-pro", model.RoleMemberPro, mapper.EventSubscriptionUpserted))).To(Succeed())
			Expect(svc.Apply(ctx, model.AudienceMember, subscription("sub_old", "canceled", "member-monthly", mapper.MemberPlans.Default, mapper.EventSubscriptionCanceled))).To(Succeed())

			Expect(roles).To(Equal([]model.Role{model.RoleMember, model.RoleMemberPro, model.RoleMemberPro}))
		})

		It("does not let a partner plan replace a live member plan", func() {
			Expect(svc.Apply(ctx, model.AudienceMember, subscription("sub_pro", "active", "member-pro", model.RoleMemberPro, mapper.EventSubscriptionUpserted))).To(Succeed())
			Expect(svc.Apply(ctx, model.AudiencePartner, subscription("sub_partner", "active", "sponsor", model.RoleSponsor, mapper.EventSubscriptionUpserted))).To(Succeed())

			Expect(roles).To(HaveLen(2))
			Expect(roles[1]).To(Equal(model.RoleMemberPro))
		})

		It("falls back to a partner plan once the member plan ends", func() {
			Expect(svc.Apply(ctx, model.AudienceMember, subscription("sub_pro", "active", "member-pro", model.RoleMemberPro, mapper.EventSubscriptionUpserted))).To(Succeed())
			Expect(svc.Apply(ctx, model.AudiencePartner, subscription("sub_partner", "active", "partner", model.RolePartner, mapper.EventSubscriptionUpserted))).To(Succeed())
			Expect(svc.Apply(ctx, model.AudienceMember, subscription("sub_pro", "canceled", "member-pro", mapper.MemberPlans.Default, mapper.EventSubscriptionCanceled))).To(Succeed())

			Expect(roles[2]).To(Equal(model.RolePartner))
		})

		It("drops the plan role when an update moves the subscription to unpaid", func() {
			Expect(svc.Apply(ctx, model.AudienceMember, subscription("sub_pro", "active", "member-pro", model.RoleMemberPro, mapper.EventSubscriptionUpserted))).To(Succeed())
			Expect(svc.Apply(ctx, model.AudienceMember, subscription("sub_pro", "unpaid", "member-pro", model.RoleMemberPro, mapper.EventSubscriptionUpserted))).To(Succeed())

			Expect(roles).To(Equal([]model.Role{model.RoleMemberPro, model.RoleMember}))
			Expect(subs.upserted).To(HaveLen(1))
			Expect(subs.upserted[0].Status).To(Equal("unpaid"))
		})
	})
})
