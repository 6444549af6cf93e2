package service_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Forhemit/StarterClub-sub002/common/id"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

var _ = Describe("OnboardingService", func() {
	const userID int64 = 42

	var (
		ctx       context.Context
		db        *memDB
		pub       *mockPublisher
		svc       service.OnboardingService
		primary   *model.Module
		secondary *model.Module
	)

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
		ctx = context.Background()
		db = newMemDB()
		pub = &mockPublisher{}
		primary = db.addModule("salon", "Salon", "Lease a chair", "Get a cosmetology license", "Buy supplies")
		secondary = db.addModule("bookkeeping", "Bookkeeping", "Open a business account")
		svc = service.NewOnboardingService(db.txRunner(), memBusinessStore{db}, pub)
	})

	It("creates the business, installs the primary module and stages the rest", func() {
		result, err := svc.Onboard(ctx, userID, service.OnboardingInput{
			BusinessName:      "  Cut Above  ",
			PrimaryModuleID:   primary.ID,
			InterestedModules: []uuid.UUID{secondary.ID, primary.ID, secondary.ID},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Business.Name).To(Equal("Cut Above"))
		Expect(result.Business.OwnerUserID).To(Equal(userID))
		Expect(result.Business.PrimaryModuleID).To(HaveValue(Equal(primary.ID)))
		Expect(result.ChecklistItems).To(Equal(int64(3)))

		Expect(result.Installs).To(HaveLen(2))
		Expect(result.Installs[0].Status).To(Equal(model.InstallStatusActive))
		Expect(result.Installs[1].ModuleID).To(Equal(secondary.ID))
		Expect(result.Installs[1].Status).To(Equal(model.InstallStatusStaged))

		Expect(db.checklistRows(result.Business.ID)).To(HaveLen(3))
		Expect(pub.published).To(HaveLen(1))
	})

	It("refuses a second business for the same user", func() {
		input := service.OnboardingInput{BusinessName: "One", PrimaryModuleID: primary.ID}
		_, err := svc.Onboard(ctx, userID, input)
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Onboard(ctx, userID, input)
		Expect(err).To(MatchError(service.ErrAlreadyOnboarded))
		Expect(db.businesses).To(HaveLen(1))
	})

	It("rejects an unknown primary module before writing", func() {
		_, err := svc.Onboard(ctx, userID, service.OnboardingInput{BusinessName: "X", PrimaryModuleID: uuid.New()})
		Expect(err).To(MatchError(service.ErrModuleNotFound))
		Expect(db.businesses).To(BeEmpty())
	})

	It("requires a business name", func() {
		_, err := svc.Onboard(ctx, userID, service.OnboardingInput{BusinessName: " ", PrimaryModuleID: primary.ID})
		Expect(err).To(MatchError(service.ErrBusinessNameEmpty))
	})

	It("resets a user's business with its installs and checklist", func() {
		result, err := svc.Onboard(ctx, userID, service.OnboardingInput{BusinessName: "One", PrimaryModuleID: primary.ID})
		Expect(err).NotTo(HaveOccurred())

		existed, err := svc.ResetUserBusiness(ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(existed).To(BeTrue())
		Expect(db.installRows(result.Business.ID)).To(BeZero())
		Expect(db.checklistRows(result.Business.ID)).To(BeEmpty())

		existed, err = svc.ResetUserBusiness(ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(existed).To(BeFalse())
	})
})

var _ = Describe("Onboarding to dashboard", func() {
	It("tracks progress from a fresh business to the first completed item", func() {
		Expect(id.Init(1)).To(Succeed())
		ctx := context.Background()
		db := newMemDB()
		pub := &mockPublisher{}
		module := db.addModule("landscaping", "Landscaping", "Buy a mower", "Print flyers", "Register an LLC")

		tenants := service.NewTenantService(memBusinessStore{db})
		onboarding := service.NewOnboardingService(db.txRunner(), memBusinessStore{db}, pub)
		checklists := service.NewChecklistService(tenants, memInstallStore{db}, memChecklistStore{db}, db.txRunner(), pub)
		dash := service.NewDashboardService(tenants, memChecklistStore{db})

		const userID int64 = 501
		_, err := onboarding.Onboard(ctx, userID, service.OnboardingInput{
			BusinessName:    "Green Thumb",
			PrimaryModuleID: module.ID,
		})
		Expect(err).NotTo(HaveOccurred())

		summary, err := dash.Summary(ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Progress).To(Equal(0))
		Expect(summary.NextActions).To(HaveLen(3))
		Expect(summary.RecentWins).To(BeEmpty())

		rows, err := checklists.List(ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(checklists.UpdateStatus(ctx, userID, rows[0].ItemID, model.ChecklistComplete)).To(Succeed())

		summary, err = dash.Summary(ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Progress).To(Equal(33))
		Expect(summary.NextActions).To(HaveLen(2))
		Expect(summary.RecentWins).To(HaveLen(1))
		Expect(summary.RecentWins[0].ItemID).To(Equal(rows[0].ItemID))
	})

	It("reports no business before onboarding", func() {
		db := newMemDB()
		dash := service.NewDashboardService(service.NewTenantService(memBusinessStore{db}), memChecklistStore{db})

		_, err := dash.Summary(context.Background(), 8)
		Expect(err).To(MatchError(service.ErrBusinessNotFound))
	})
})
