package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/queue"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

var _ = Describe("LifecycleService", func() {
	const userID int64 = 7

	var (
		ctx context.Context
		db  *memDB
		pub *mockPublisher
		svc service.LifecycleService
		biz *model.Business
		mod *model.Module
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		pub = &mockPublisher{}
		biz = db.addBusiness(userID)
		mod = db.addModule("restaurant", "Restaurant", "Register the business name", "Get a food permit", "Open a bank account")

		stores := db.stores(nil)
		tenants := service.NewTenantService(stores.Businesses())
		catalog := service.NewCatalogService(stores.Modules(), db.txRunner())
		svc = service.NewLifecycleService(tenants, catalog, stores.Modules(), stores.Installs(), db.txRunner(), pub)
	})

	Describe("Install", func() {
		It("creates exactly one active row and seeds the checklist", func() {
			install, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(install.Status).To(Equal(model.InstallStatusActive))
			Expect(install.InstalledAt).NotTo(BeZero())
			Expect(install.InstalledBy).To(HaveValue(Equal(userID)))
			Expect(db.installRows(biz.ID)).To(Equal(1))
			Expect(db.checklistRows(biz.ID)).To(HaveLen(3))
		})

		It("reactivates a disabled module without duplicating the row", func() {
			first, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())

			disabled, err := svc.Uninstall(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(disabled.Status).To(Equal(model.InstallStatusDisabled))

			again, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Status).To(Equal(model.InstallStatusActive))
			Expect(again.InstalledAt).To(BeTemporally(">", first.InstalledAt))
			Expect(db.installRows(biz.ID)).To(Equal(1))
			Expect(db.checklistRows(biz.ID)).To(HaveLen(3))
		})

		It("publishes dashboard and marketplace invalidations", func() {
			_, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(pub.published).To(HaveLen(1))
			Expect(pub.published[0].BusinessID).To(Equal(biz.ID))
			Expect(pub.published[0].Paths).To(ContainElements(queue.PathDashboard, queue.PathMarketplace))
		})

		It("still succeeds when publishing fails", func() {
			pub.publishErr = errors.New("redis down")

			_, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(db.installRows(biz.ID)).To(Equal(1))
		})

		It("fails when the checklist status lookup fails", func() {
			db.statusLookupErr = errors.New("connection reset")

			_, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).To(MatchError(ContainSubstring("connection reset")))
			Expect(db.checklistRows(biz.ID)).To(BeEmpty())
			Expect(pub.published).To(BeEmpty())
		})

		It("reports an unknown module with its identifier", func() {
			missing := uuid.New()

			_, err := svc.Install(ctx, userID, missing)
			Expect(errors.Is(err, service.ErrModuleNotFound)).To(BeTrue())
			Expect(err.Error()).To(Equal("Module not found: " + missing.String()))
		})

		It("requires a business", func() {
			_, err := svc.Install(ctx, 999, mod.ID)
			Expect(err).To(MatchError(service.ErrBusinessNotFound))
			Expect(err.Error()).To(Equal("No business found for user"))
		})

		It("requires a user", func() {
			_, err := svc.Install(ctx, 0, mod.ID)
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})
	})

	Describe("Stage and Activate", func() {
		It("moves staged to active", func() {
			staged, err := svc.Stage(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(staged.Status).To(Equal(model.InstallStatusStaged))
			Expect(db.checklistRows(biz.ID)).To(BeEmpty())

			active, err := svc.Activate(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(active.Status).To(Equal(model.InstallStatusActive))
			Expect(db.installRows(biz.ID)).To(Equal(1))
		})

		It("seeds the checklist when activating", func() {
			_, err := svc.Stage(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Activate(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(db.checklistRows(biz.ID)).To(HaveLen(3))
			Expect(pub.published).NotTo(BeEmpty())
			Expect(pub.published[len(pub.published)-1].Paths).To(ContainElement(queue.PathChecklist))
		})

		It("leaves an existing row alone when staging", func() {
			_, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			published := len(pub.published)

			row, err := svc.Stage(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(row.Status).To(Equal(model.InstallStatusActive))
			Expect(pub.published).To(HaveLen(published))
		})

		It("rejects activation without a row", func() {
			_, err := svc.Activate(ctx, userID, mod.ID)
			Expect(err).To(MatchError(service.ErrModuleNotInstalled))
		})

		It("rejects activation from a non-staged status", func() {
			_, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Activate(ctx, userID, mod.ID)
			Expect(errors.Is(err, service.ErrInvalidTransition)).To(BeTrue())
		})
	})

	Describe("Uninstall", func() {
		It("keeps the row and the seeded checklist", func() {
			_, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Uninstall(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(db.installRows(biz.ID)).To(Equal(1))
			Expect(db.checklistRows(biz.ID)).To(HaveLen(3))
		})

		It("rejects a module that was never installed", func() {
			_, err := svc.Uninstall(ctx, userID, mod.ID)
			Expect(err).To(MatchError(service.ErrModuleNotInstalled))
		})
	})

	Describe("IsModuleInstalled", func() {
		It("is false when no row exists", func() {
			Expect(svc.IsModuleInstalled(ctx, userID, mod.ID.String(), false)).To(BeFalse())
		})

		It("is false for staged rows", func() {
			_, err := svc.Stage(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(svc.IsModuleInstalled(ctx, userID, mod.Slug, false)).To(BeFalse())
		})

		It("is true only for active rows", func() {
			_, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(svc.IsModuleInstalled(ctx, userID, mod.Slug, false)).To(BeTrue())
			Expect(svc.IsModuleInstalled(ctx, userID, "Restaurant", true)).To(BeTrue())

			_, err = svc.Uninstall(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(svc.IsModuleInstalled(ctx, userID, mod.Slug, false)).To(BeFalse())
		})

		It("swallows resolution failures", func() {
			Expect(svc.IsModuleInstalled(ctx, userID, "no-such-module", false)).To(BeFalse())
			Expect(svc.IsModuleInstalled(ctx, 999, mod.Slug, false)).To(BeFalse())
		})
	})

	Describe("Installs", func() {
		It("lists rows in every status", func() {
			other := db.addModule("retail", "Retail")
			_, err := svc.Install(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.Stage(ctx, userID, other.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.Uninstall(ctx, userID, mod.ID)
			Expect(err).NotTo(HaveOccurred())

			installs, err := svc.Installs(ctx, userID)
			Expect(err).NotTo(HaveOccurred())
			statuses := map[uuid.UUID]model.InstallStatus{}
			for _, inst := range installs {
				statuses[inst.ModuleID] = inst.Status
			}
			Expect(statuses).To(Equal(map[uuid.UUID]model.InstallStatus{
				mod.ID:   model.InstallStatusDisabled,
				other.ID: model.InstallStatusStaged,
			}))
		})
	})

	Describe("Marketplace", func() {
		It("joins modules with the caller's install status", func() {
			other := db.addModule("retail", "Retail")
			_, err := svc.Stage(ctx, userID, other.ID)
			Expect(err).NotTo(HaveOccurred())

			entries, err := svc.Marketplace(ctx, userID)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			for _, e := range entries {
				if e.Module.ID == other.ID {
					Expect(e.Status).To(HaveValue(Equal(model.InstallStatusStaged)))
				} else {
					Expect(e.Status).To(BeNil())
				}
			}
		})
	})
})
