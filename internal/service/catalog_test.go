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

var _ = Describe("CatalogService", func() {
	var (
		ctx context.Context
		db  *memDB
		svc service.CatalogService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		svc = service.NewCatalogService(memModuleStore{db}, db.txRunner())
	})

	Describe("Resolve", func() {
		var mod *model.Module

		BeforeEach(func() {
			mod = db.addModule("food-truck", "Food Truck", "Buy a truck")
		})

		It("resolves a UUID", func() {
			found, err := svc.Resolve(ctx, mod.ID.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(mod.ID))
		})

		It("resolves a slug", func() {
			found, err := svc.Resolve(ctx, "food-truck")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(mod.ID))
		})

		It("falls back to the display name", func() {
			found, err := svc.Resolve(ctx, "Food Truck")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(mod.ID))
		})

		It("picks the newest module when names collide", func() {
			newer := db.addModule("food-truck-v2", "Food Truck")

			found, err := svc.Resolve(ctx, "Food Truck")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(newer.ID))
		})

		It("does not fall back to slug or name for an unknown UUID", func() {
			missing := uuid.New()

			_, err := svc.Resolve(ctx, missing.String())
			var notFound *service.ModuleNotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Identifier).To(Equal(missing.String()))
		})

		It("renders the identifier when nothing matches", func() {
			_, err := svc.Resolve(ctx, "bakery")
			Expect(errors.Is(err, service.ErrModuleNotFound)).To(BeTrue())
			Expect(err.Error()).To(Equal("Module not found: bakery"))
		})
	})

	Describe("UpsertAll", func() {
		defs := []model.ModuleDefinition{
			{
				Slug: "restaurant", Name: "Restaurant", Type: model.ModuleTypeIndustry,
				Version: "1.0.0", PriceTier: "free",
				Items: []model.ItemDefinition{
					{Title: "Register the business name", CategorySlug: "legal", CategoryName: "Legal"},
					{Title: "Get a food permit", CategorySlug: "legal", CategoryName: "Legal"},
				},
			},
			{
				Slug: "restaurant-delivery", Name: "Delivery", Type: model.ModuleTypeSubmodule,
				ParentSlug: "restaurant", Version: "1.0.0", PriceTier: "pro",
				Items: []model.ItemDefinition{{Title: "Sign up with a courier"}},
			},
		}

		It("creates modules with ordered items and parents", func() {
			n, err := svc.UpsertAll(ctx, defs)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))

			detail, err := svc.Get(ctx, "restaurant")
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Items).To(HaveLen(2))
			Expect(detail.Items[0].Title).To(Equal("Register the business name"))
			Expect(detail.Items[0].CategoryID).To(Equal(detail.Items[1].CategoryID))

			child, err := svc.Resolve(ctx, "restaurant-delivery")
			Expect(err).NotTo(HaveOccurred())
			Expect(child.ParentID).To(HaveValue(Equal(detail.Module.ID)))
		})

		It("keeps item ids stable across re-imports", func() {
			_, err := svc.UpsertAll(ctx, defs)
			Expect(err).NotTo(HaveOccurred())
			before, err := svc.Get(ctx, "restaurant")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.UpsertAll(ctx, defs)
			Expect(err).NotTo(HaveOccurred())
			after, err := svc.Get(ctx, "restaurant")
			Expect(err).NotTo(HaveOccurred())

			Expect(after.Module.ID).To(Equal(before.Module.ID))
			Expect(after.Items[0].ItemID).To(Equal(before.Items[0].ItemID))
			Expect(after.Items[1].ItemID).To(Equal(before.Items[1].ItemID))
		})

		It("fails on an unknown parent", func() {
			_, err := svc.Upsert(ctx, model.ModuleDefinition{
				Slug: "orphan", Name: "Orphan", Type: model.ModuleTypeSubmodule, ParentSlug: "missing",
			})
			Expect(err).To(MatchError("Module not found: missing"))
		})
	})
})
