package handler_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Forhemit/StarterClub-sub002/internal/http/handler"
	"github.com/Forhemit/StarterClub-sub002/internal/http/middleware"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

var _ = Describe("AdminHandler", func() {
	const adminAPIKey = "test-admin-key"

	var (
		router     *gin.Engine
		catalog    *mockCatalogService
		leads      *mockLeadService
		apiKeys    *mockAPIKeyService
		checklists *mockChecklistService
		onboarding *mockOnboardingService
		auth       map[string]string
	)

	BeforeEach(func() {
		catalog = &mockCatalogService{}
		leads = &mockLeadService{}
		apiKeys = &mockAPIKeyService{}
		checklists = &mockChecklistService{}
		onboarding = &mockOnboardingService{}
		auth = map[string]string{"X-Admin-API-Key": adminAPIKey}

		h := handler.NewAdminHandler(catalog, leads, &mockIdentityService{}, apiKeys, checklists, onboarding)

		router = gin.New()
		admin := router.Group("/admin")
		admin.Use(middleware.RequireAdmin(adminAPIKey, apiKeys))
		{
			admin.GET("/modules", h.ListModules)
			admin.PUT("/modules/:slug", h.UpsertModule)
			admin.GET("/leads", h.ListLeads)
			admin.POST("/api-keys", h.CreateAPIKey)
			admin.DELETE("/api-keys/:id", h.RevokeAPIKey)
			admin.DELETE("/businesses/:id/checklist", h.ResetChecklist)
			admin.DELETE("/users/:id/business", h.ResetBusiness)
		}
	})

	Describe("authorization", func() {
		It("rejects requests without a key", func() {
			w := serve(router, http.MethodGet, "/admin/modules", nil, nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("accepts the static key as a bearer token", func() {
			w := serve(router, http.MethodGet, "/admin/modules", nil, map[string]string{"Authorization": "Bearer " + adminAPIKey})
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("accepts an issued key", func() {
			apiKeys.verifyFn = func(_ context.Context, token string) (*model.APIKey, error) {
				if token == "sck_abc_def" {
					return &model.APIKey{ID: 1, Name: "ci"}, nil
				}
				return nil, service.ErrInvalidAPIKey
			}

			w := serve(router, http.MethodGet, "/admin/modules", nil, map[string]string{"X-Admin-API-Key": "sck_abc_def"})
			Expect(w.Code).To(Equal(http.StatusOK))

			w = serve(router, http.MethodGet, "/admin/modules", nil, map[string]string{"X-Admin-API-Key": "sck_abc_xyz"})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 500 when key verification fails unexpectedly", func() {
			apiKeys.verifyFn = func(context.Context, string) (*model.APIKey, error) {
				return nil, errors.New("db down")
			}
			w := serve(router, http.MethodGet, "/admin/modules", nil, map[string]string{"X-Admin-API-Key": "sck_abc_def"})
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("UpsertModule", func() {
		It("upserts the module at the path slug with ordered items", func() {
			var got model.ModuleDefinition
			catalog.upsertFn = func(_ context.Context, def model.ModuleDefinition) (*model.Module, error) {
				got = def
				return &model.Module{Slug: def.Slug, Name: def.Name, Type: def.Type}, nil
			}

			w := serve(router, http.MethodPut, "/admin/modules/restaurant", map[string]any{
				"name": "Restaurant",
				"type": "industry",
				"items": []map[string]string{
					{"title": "Register your business name", "category": "Legal"},
					{"title": "Get a food handler permit"},
				},
			}, auth)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got.Slug).To(Equal("restaurant"))
			Expect(got.Version).To(Equal("1.0.0"))
			Expect(got.Items).To(HaveLen(2))
			Expect(got.Items[0].CategorySlug).To(Equal("legal"))
			Expect(got.Items[1].Title).To(Equal("Get a food handler permit"))
		})

		It("rejects an invalid slug", func() {
			w := serve(router, http.MethodPut, "/admin/modules/Not%20A%20Slug", map[string]any{
				"name": "Restaurant",
				"type": "industry",
			}, auth)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for an unknown parent", func() {
			catalog.upsertFn = func(_ context.Context, def model.ModuleDefinition) (*model.Module, error) {
				return nil, &service.ModuleNotFoundError{Identifier: def.ParentSlug}
			}

			w := serve(router, http.MethodPut, "/admin/modules/food-truck", map[string]any{
				"name":   "Food truck",
				"type":   "submodule",
				"parent": "mobile-food",
			}, auth)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(w)["error"]).To(Equal("Module not found: mobile-food"))
		})
	})

	It("filters leads by source", func() {
		var gotSource *model.LeadSource
		var gotLimit int32
		leads.listFn = func(_ context.Context, source *model.LeadSource, limit, _ int32) ([]model.Lead, error) {
			gotSource, gotLimit = source, limit
			return []model.Lead{{ID: 1, Email: "ada@example.com", Source: model.LeadSourcePartner}}, nil
		}

		w := serve(router, http.MethodGet, "/admin/leads?source=partner", nil, auth)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*gotSource).To(Equal(model.LeadSourcePartner))
		Expect(gotLimit).To(Equal(int32(100)))
	})

	It("returns the token once on key creation", func() {
		apiKeys.createFn = func(_ context.Context, name string, _ *int64) (*model.APIKey, string, error) {
			return &model.APIKey{ID: 3, Name: name, Prefix: "abc", CreatedAt: time.Now()}, "sck_abc_secret", nil
		}

		w := serve(router, http.MethodPost, "/admin/api-keys", map[string]string{"name": "ci"}, auth)

		Expect(w.Code).To(Equal(http.StatusCreated))
		resp := decodeBody(w)
		Expect(resp["token"]).To(Equal("sck_abc_secret"))
		Expect(resp["prefix"]).To(Equal("abc"))
		Expect(resp).NotTo(HaveKey("secret_hash"))
	})

	It("returns 404 when revoking an unknown key", func() {
		apiKeys.revokeFn = func(context.Context, int64) error { return service.ErrAPIKeyNotFound }

		w := serve(router, http.MethodDelete, "/admin/api-keys/42", nil, auth)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("resets a business checklist", func() {
		checklists.resetFn = func(_ context.Context, businessID int64) (int64, error) {
			Expect(businessID).To(Equal(int64(700)))
			return 12, nil
		}

		w := serve(router, http.MethodDelete, "/admin/businesses/700/checklist", nil, auth)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decodeBody(w)["deleted"]).To(BeNumerically("==", 12))
	})

	It("returns 404 when the user has no business to reset", func() {
		w := serve(router, http.MethodDelete, "/admin/users/7/business", nil, auth)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
