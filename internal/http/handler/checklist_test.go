package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Forhemit/StarterClub-sub002/internal/dashboard"
	"github.com/Forhemit/StarterClub-sub002/internal/http/handler"
	"github.com/Forhemit/StarterClub-sub002/internal/http/middleware"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

var _ = Describe("ChecklistHandler", func() {
	const userID = int64(7)

	var (
		router     *gin.Engine
		checklists *mockChecklistService
		restaurant model.Module
	)

	BeforeEach(func() {
		restaurant = model.Module{ID: uuid.New(), Slug: "restaurant", Name: "Restaurant"}
		checklists = &mockChecklistService{}

		router = gin.New()
		router.Use(middleware.SetUserID(userID))
		h := handler.NewChecklistHandler(&mockCatalogService{modules: []model.Module{restaurant}}, checklists)
		router.GET("/checklist", h.List)
		router.PATCH("/checklist/:item_id", h.UpdateStatus)
		router.POST("/checklist/seed/:ref", h.Seed)
	})

	Describe("UpdateStatus", func() {
		It("passes the status through", func() {
			itemID := uuid.New()
			var got model.ChecklistStatus
			checklists.updateFn = func(_ context.Context, uid int64, id uuid.UUID, status model.ChecklistStatus) error {
				Expect(uid).To(Equal(userID))
				Expect(id).To(Equal(itemID))
				got = status
				return nil
			}

			w := serve(router, http.MethodPatch, "/checklist/"+itemID.String(), map[string]string{"status": "complete"}, nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got).To(Equal(model.ChecklistComplete))
		})

		It("rejects an unknown status before calling the service", func() {
			called := false
			checklists.updateFn = func(context.Context, int64, uuid.UUID, model.ChecklistStatus) error {
				called = true
				return nil
			}

			w := serve(router, http.MethodPatch, "/checklist/"+uuid.NewString(), map[string]string{"status": "done"}, nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(called).To(BeFalse())
		})

		It("rejects a malformed item id", func() {
			w := serve(router, http.MethodPatch, "/checklist/nope", map[string]string{"status": "complete"}, nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 when the row does not exist", func() {
			checklists.updateFn = func(context.Context, int64, uuid.UUID, model.ChecklistStatus) error {
				return service.ErrItemNotFound
			}
			w := serve(router, http.MethodPatch, "/checklist/"+uuid.NewString(), map[string]string{"status": "in_progress"}, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Seed", func() {
		It("seeds the resolved module and reports created rows", func() {
			checklists.seedInstalledFn = func(_ context.Context, uid int64, moduleID uuid.UUID) (int64, error) {
				Expect(moduleID).To(Equal(restaurant.ID))
				return 3, nil
			}

			w := serve(router, http.MethodPost, "/checklist/seed/restaurant", nil, nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["created"]).To(BeNumerically("==", 3))
		})

		It("returns 409 when the module is not active", func() {
			checklists.seedInstalledFn = func(context.Context, int64, uuid.UUID) (int64, error) {
				return 0, service.ErrModuleNotInstalled
			}
			w := serve(router, http.MethodPost, "/checklist/seed/restaurant", nil, nil)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	It("lists the caller's rows", func() {
		checklists.listFn = func(context.Context, int64) ([]model.ChecklistEntry, error) {
			return []model.ChecklistEntry{{ItemID: uuid.New(), Title: "Register", Status: model.ChecklistNotStarted}}, nil
		}

		w := serve(router, http.MethodGet, "/checklist", nil, nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		items := decodeBody(w)["items"].([]any)
		Expect(items).To(HaveLen(1))
		Expect(items[0]).To(HaveKeyWithValue("status", "not_started"))
	})
})

var _ = Describe("DashboardHandler", func() {
	It("renders the summary", func() {
		done := time.Now()
		svc := &mockDashboardService{summaryFn: func(context.Context, int64) (*dashboard.Summary, error) {
			s := dashboard.Aggregate([]model.ChecklistEntry{
				{Title: "a", Status: model.ChecklistComplete, CompletedAt: &done},
				{Title: "b", Status: model.ChecklistInProgress},
				{Title: "c", Status: model.ChecklistNotStarted},
			})
			return &s, nil
		}}

		router := gin.New()
		router.Use(middleware.SetUserID(7))
		router.GET("/dashboard", handler.NewDashboardHandler(svc).Get)

		w := serve(router, http.MethodGet, "/dashboard", nil, nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decodeBody(w)
		Expect(resp["progress"]).To(BeNumerically("==", 33))
		Expect(resp["next_actions"]).To(HaveLen(2))
		Expect(resp["recent_wins"]).To(HaveLen(1))
	})

	It("returns 404 when the caller has not onboarded", func() {
		svc := &mockDashboardService{summaryFn: func(context.Context, int64) (*dashboard.Summary, error) {
			return nil, service.ErrBusinessNotFound
		}}
		router := gin.New()
		router.Use(middleware.SetUserID(7))
		router.GET("/dashboard", handler.NewDashboardHandler(svc).Get)

		w := serve(router, http.MethodGet, "/dashboard", nil, nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
