package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

var _ = Describe("ChecklistService", func() {
	const userID int64 = 3

	var (
		ctx context.Context
		db  *memDB
		pub *mockPublisher
		svc service.ChecklistService
		biz *model.Business
		mod *model.Module
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		pub = &mockPublisher{}
		biz = db.addBusiness(userID)
		mod = db.addModule("consulting", "Consulting", "Pick a niche", "Write a proposal template", "Set rates", "Get insurance")

		svc = service.NewChecklistService(
			service.NewTenantService(memBusinessStore{db}),
			memInstallStore{db},
			memChecklistStore{db},
			db.txRunner(),
			pub,
		)
	})

	Describe("Seed", func() {
		It("creates one not_started row per item", func() {
			created, err := svc.Seed(ctx, biz.ID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(Equal(int64(4)))

			rows := db.checklistRows(biz.ID)
			Expect(rows).To(HaveLen(4))
			for _, r := range rows {
				Expect(db.statusName(r.statusID)).To(Equal(model.ChecklistNotStarted))
				Expect(r.completedAt).To(BeNil())
			}
		})

		It("is idempotent", func() {
			_, err := svc.Seed(ctx, biz.ID, mod.ID)
			Expect(err).NotTo(HaveOccurred())

			created, err := svc.Seed(ctx, biz.ID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeZero())
			Expect(db.checklistRows(biz.ID)).To(HaveLen(4))
		})

		It("surfaces a failed status lookup", func() {
			db.statusLookupErr = errors.New("statement timeout")

			_, err := svc.Seed(ctx, biz.ID, mod.ID)
			Expect(err).To(MatchError(ContainSubstring("statement timeout")))
			Expect(db.seedCalls).To(BeZero())
		})

		It("runs inside one transaction", func() {
			calls := 0
			svc = service.NewChecklistService(
				service.NewTenantService(memBusinessStore{db}),
				memInstallStore{db},
				memChecklistStore{db},
				&mockTxRunner{withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
					calls++
					return fn(db.stores(nil))
				}},
				pub,
			)

			_, err := svc.Seed(ctx, biz.ID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(Equal(1))
		})
	})

	Describe("SeedInstalled", func() {
		It("requires an active install", func() {
			_, err := svc.SeedInstalled(ctx, userID, mod.ID)
			Expect(err).To(MatchError(service.ErrModuleNotInstalled))

			_, err = memInstallStore{db}.Upsert(ctx, biz.ID, mod.ID, model.InstallStatusActive, userID)
			Expect(err).NotTo(HaveOccurred())

			created, err := svc.SeedInstalled(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(Equal(int64(4)))
		})
	})

	Describe("UpdateStatus", func() {
		var itemID uuid.UUID

		BeforeEach(func() {
			_, err := svc.Seed(ctx, biz.ID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			itemID = db.moduleItem[mod.ID][0]
		})

		It("stamps completed_at on complete and clears it otherwise", func() {
			Expect(svc.UpdateStatus(ctx, userID, itemID, model.ChecklistComplete)).To(Succeed())
			row := db.checklist[checklistKey{biz.ID, itemID}]
			Expect(row.completedAt).NotTo(BeNil())

			Expect(svc.UpdateStatus(ctx, userID, itemID, model.ChecklistInProgress)).To(Succeed())
			Expect(row.completedAt).To(BeNil())
			Expect(db.statusName(row.statusID)).To(Equal(model.ChecklistInProgress))
		})

		It("rejects unknown statuses", func() {
			err := svc.UpdateStatus(ctx, userID, itemID, model.ChecklistStatus("done"))
			Expect(errors.Is(err, service.ErrInvalidStatus)).To(BeTrue())
		})

		It("rejects items the business has no row for", func() {
			err := svc.UpdateStatus(ctx, userID, uuid.New(), model.ChecklistComplete)
			Expect(err).To(MatchError(service.ErrItemNotFound))
		})
	})

	Describe("Reset", func() {
		It("deletes every row for the business", func() {
			_, err := svc.Seed(ctx, biz.ID, mod.ID)
			Expect(err).NotTo(HaveOccurred())

			deleted, err := svc.Reset(ctx, biz.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(4)))
			Expect(db.checklistRows(biz.ID)).To(BeEmpty())
		})
	})
})
