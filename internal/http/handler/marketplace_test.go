package handler_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Forhemit/StarterClub-sub002/internal/http/handler"
	"github.com/Forhemit/StarterClub-sub002/internal/http/middleware"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

var _ = Describe("MarketplaceHandler", func() {
	const userID = int64(7)

	var (
		router     *gin.Engine
		catalog    *mockCatalogService
		lifecycle  *mockLifecycleService
		restaurant model.Module
	)

	BeforeEach(func() {
		restaurant = model.Module{ID: uuid.New(), Slug: "restaurant", Name: "Restaurant", Type: model.ModuleTypeIndustry}
		catalog = &mockCatalogService{modules: []model.Module{restaurant}}
		lifecycle = &mockLifecycleService{}

		router = gin.New()
		router.Use(middleware.SetUserID(userID))
		h := handler.NewMarketplaceHandler(catalog, lifecycle)
		router.GET("/marketplace", h.List)
		router.GET("/marketplace/installs", h.Installs)
		router.GET("/marketplace/:ref/installed", h.Installed)
		router.POST("/marketplace/:ref/install", h.Install)
		router.POST("/marketplace/:ref/stage", h.Stage)
		router.POST("/marketplace/:ref/activate", h.Activate)
		router.POST("/marketplace/:ref/uninstall", h.Uninstall)
	})

	DescribeTable("resolves the ref to the module UUID before calling the service",
		func(op, ref string, status string) {
			if ref == "" {
				ref = restaurant.ID.String()
			}

			w := serve(router, http.MethodPost, fmt.Sprintf("/marketplace/%s/%s", ref, op), nil, nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(lifecycle.calls).To(ConsistOf(lifecycleCall{op: op, userID: userID, moduleID: restaurant.ID}))
			Expect(decodeBody(w)["status"]).To(Equal(status))
		},
		Entry("install by slug", "install", "restaurant", "active"),
		Entry("install by uuid", "install", "", "active"),
		Entry("stage by name", "stage", "Restaurant", "staged"),
		Entry("activate", "activate", "restaurant", "active"),
		Entry("uninstall", "uninstall", "restaurant", "disabled"),
	)

	It("returns 404 with the identifier when the module does not resolve", func() {
		w := serve(router, http.MethodPost, "/marketplace/bakery/install", nil, nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(decodeBody(w)["error"]).To(Equal("Module not found: bakery"))
		Expect(lifecycle.calls).To(BeEmpty())
	})

	It("returns 404 when the caller has no business", func() {
		lifecycle.err = service.ErrBusinessNotFound

		w := serve(router, http.MethodPost, "/marketplace/restaurant/install", nil, nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(decodeBody(w)["error"]).To(Equal("No business found for user"))
	})

	It("returns 409 for an invalid transition", func() {
		lifecycle.err = fmt.Errorf("activating: %w", service.ErrInvalidTransition)

		w := serve(router, http.MethodPost, "/marketplace/restaurant/activate", nil, nil)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("passes by_name through to the installed check", func() {
		lifecycle.installedFn = func(_ context.Context, uid int64, identifier string, byName bool) bool {
			return uid == userID && identifier == "Restaurant" && byName
		}

		w := serve(router, http.MethodGet, "/marketplace/Restaurant/installed?by_name=true", nil, nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decodeBody(w)["installed"]).To(BeTrue())
	})

	It("lists the catalog with the caller's install status", func() {
		active := model.InstallStatusActive
		lifecycle.marketplaceFn = func(context.Context, int64) ([]model.MarketplaceEntry, error) {
			return []model.MarketplaceEntry{{Module: restaurant, Status: &active}}, nil
		}

		w := serve(router, http.MethodGet, "/marketplace", nil, nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		modules := decodeBody(w)["modules"].([]any)
		Expect(modules).To(HaveLen(1))
		Expect(modules[0]).To(HaveKeyWithValue("status", "active"))
	})

	It("returns 401 without an authenticated user", func() {
		bare := gin.New()
		bare.POST("/marketplace/:ref/install", handler.NewMarketplaceHandler(catalog, lifecycle).Install)

		w := serve(bare, http.MethodPost, "/marketplace/restaurant/install", nil, nil)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(decodeBody(w)["error"]).To(Equal("Unauthorized"))
	})

	Describe("Installs", func() {
		It("lists the caller's install rows", func() {
			lifecycle.installsFn = func(_ context.Context, id int64) ([]model.ModuleInstall, error) {
				Expect(id).To(Equal(userID))
				return []model.ModuleInstall{
					{ModuleID: restaurant.ID, Status: model.InstallStatusActive},
					{ModuleID: uuid.New(), Status: model.InstallStatusDisabled},
				}, nil
			}

			w := serve(router, http.MethodGet, "/marketplace/installs", nil, nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			installs := decodeBody(w)["installs"].([]any)
			Expect(installs).To(HaveLen(2))
			Expect(installs[0].(map[string]any)["module_id"]).To(Equal(restaurant.ID.String()))
			Expect(installs[1].(map[string]any)["status"]).To(Equal("disabled"))
		})

		It("answers 404 before onboarding", func() {
			lifecycle.installsFn = func(context.Context, int64) ([]model.ModuleInstall, error) {
				return nil, service.ErrBusinessNotFound
			}

			w := serve(router, http.MethodGet, "/marketplace/installs", nil, nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(w)["error"]).To(Equal("No business found for user"))
		})
	})
})
