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

var _ = Describe("BusinessHandler", func() {
	var (
		router     *gin.Engine
		onboarding *mockOnboardingService
		tenants    *mockTenantService
		restaurant model.Module
		marketing  model.Module
	)

	BeforeEach(func() {
		restaurant = model.Module{ID: uuid.New(), Slug: "restaurant", Name: "Restaurant"}
		marketing = model.Module{ID: uuid.New(), Slug: "marketing", Name: "Marketing"}
		onboarding = &mockOnboardingService{}
		tenants = &mockTenantService{}

		router = gin.New()
		router.Use(middleware.SetUserID(7))
		h := handler.NewBusinessHandler(onboarding, tenants, &mockCatalogService{modules: []model.Module{restaurant, marketing}})
		router.POST("/onboarding", h.Onboard)
		router.GET("/business", h.Get)
	})

	It("resolves module references and onboards", func() {
		onboarding.onboardFn = func(_ context.Context, userID int64, input service.OnboardingInput) (*service.OnboardingResult, error) {
			Expect(userID).To(Equal(int64(7)))
			Expect(input.PrimaryModuleID).To(Equal(restaurant.ID))
			Expect(input.InterestedModules).To(Equal([]uuid.UUID{marketing.ID}))
			return &service.OnboardingResult{
				Business:       &model.Business{ID: 700, Name: input.BusinessName},
				Installs:       []model.ModuleInstall{{ModuleID: restaurant.ID, Status: model.InstallStatusActive}},
				ChecklistItems: 3,
			}, nil
		}

		w := serve(router, http.MethodPost, "/onboarding", map[string]any{
			"business_name":      "Ada's Diner",
			"primary_module":     "Restaurant",
			"interested_modules": []string{marketing.ID.String()},
		}, nil)

		Expect(w.Code).To(Equal(http.StatusCreated))
		resp := decodeBody(w)
		Expect(resp["business"]).To(HaveKeyWithValue("id", "700"))
		Expect(resp["checklist_items"]).To(BeNumerically("==", 3))
	})

	It("returns 404 for an unknown primary module", func() {
		w := serve(router, http.MethodPost, "/onboarding", map[string]any{
			"business_name":  "Ada's Diner",
			"primary_module": "bakery",
		}, nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(decodeBody(w)["error"]).To(Equal("Module not found: bakery"))
	})

	It("returns 409 when the user already has a business", func() {
		onboarding.onboardFn = func(context.Context, int64, service.OnboardingInput) (*service.OnboardingResult, error) {
			return nil, fmt.Errorf("creating business: %w", service.ErrAlreadyOnboarded)
		}

		w := serve(router, http.MethodPost, "/onboarding", map[string]any{
			"business_name":  "Ada's Diner",
			"primary_module": "restaurant",
		}, nil)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("returns 400 without a business name", func() {
		w := serve(router, http.MethodPost, "/onboarding", map[string]any{"primary_module": "restaurant"}, nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns the current business", func() {
		tenants.resolveFn = func(context.Context, int64) (*model.Business, error) {
			return &model.Business{ID: 700, Name: "Ada's Diner"}, nil
		}

		w := serve(router, http.MethodGet, "/business", nil, nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decodeBody(w)["name"]).To(Equal("Ada's Diner"))
	})

	It("surfaces tenant lookup failures as 500", func() {
		tenants.resolveFn = func(context.Context, int64) (*model.Business, error) {
			return nil, fmt.Errorf("getting business: %w", context.DeadlineExceeded)
		}

		w := serve(router, http.MethodGet, "/business", nil, nil)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
