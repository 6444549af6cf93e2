package handler_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Forhemit/StarterClub-sub002/internal/http/handler"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockAuthService{}
		h := handler.NewAuthHandler(svc, false)
		router.GET("/auth/url", h.GetAuthURL)
		router.POST("/auth/exchange", h.Exchange)
		router.GET("/auth/session", h.ValidateSession)
		router.POST("/auth/logout", h.LogoutSession)
	})

	It("returns an authorization URL bound to a fresh state", func() {
		w := serve(router, http.MethodGet, "/auth/url", nil, nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decodeBody(w)
		Expect(resp["state"]).NotTo(BeEmpty())
		Expect(resp["authorization_url"]).To(HaveSuffix(resp["state"].(string)))
	})

	Describe("Exchange", func() {
		It("returns the session id and sets the session cookie", func() {
			svc.handleCallbackFn = func(_ context.Context, code string) (*model.User, *model.Session, error) {
				Expect(code).To(Equal("abc"))
				return &model.User{ID: 7, Name: "Ada", Email: "ada@example.com"}, &model.Session{ID: 99, UserID: 7}, nil
			}

			w := serve(router, http.MethodPost, "/auth/exchange", map[string]string{"code": "abc"}, nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decodeBody(w)
			Expect(resp["session_id"]).To(Equal("99"))
			Expect(resp["user"]).To(HaveKeyWithValue("id", "7"))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("starter_session=99"))
		})

		It("returns 400 when code is missing", func() {
			w := serve(router, http.MethodPost, "/auth/exchange", map[string]string{}, nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for an invalid code", func() {
			svc.handleCallbackFn = func(context.Context, string) (*model.User, *model.Session, error) {
				return nil, nil, service.ErrInvalidCode
			}
			w := serve(router, http.MethodPost, "/auth/exchange", map[string]string{"code": "bad"}, nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ValidateSession", func() {
		It("reports the business when the user has onboarded", func() {
			svc.sessionInfoFn = func(_ context.Context, sessionID int64) (*service.SessionInfo, error) {
				Expect(sessionID).To(Equal(int64(99)))
				return &service.SessionInfo{
					User:     &model.User{ID: 7, Email: "ada@example.com"},
					Business: &model.Business{ID: 700},
				}, nil
			}

			w := serve(router, http.MethodGet, "/auth/session", nil, map[string]string{"X-Session-ID": "99"})

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decodeBody(w)
			Expect(resp["has_business"]).To(BeTrue())
			Expect(resp["business_id"]).To(Equal("700"))
		})

		It("reads the session cookie when the header is absent", func() {
			svc.sessionInfoFn = func(context.Context, int64) (*service.SessionInfo, error) {
				return &service.SessionInfo{User: &model.User{ID: 7}}, nil
			}

			w := serve(router, http.MethodGet, "/auth/session", nil, map[string]string{"Cookie": "starter_session=99"})

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decodeBody(w)
			Expect(resp["has_business"]).To(BeFalse())
			Expect(resp).NotTo(HaveKey("business_id"))
		})

		It("returns 401 Unauthorized for an expired session", func() {
			w := serve(router, http.MethodGet, "/auth/session", nil, map[string]string{"X-Session-ID": "99"})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeBody(w)["error"]).To(Equal("Unauthorized"))
		})

		It("returns 500 when the lookup fails", func() {
			svc.sessionInfoFn = func(context.Context, int64) (*service.SessionInfo, error) {
				return nil, errors.New("db down")
			}
			w := serve(router, http.MethodGet, "/auth/session", nil, map[string]string{"X-Session-ID": "99"})
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	It("logs out even when the session is already gone", func() {
		var deleted int64
		svc.logoutFn = func(_ context.Context, sessionID int64) error {
			deleted = sessionID
			return errors.New("not found")
		}

		w := serve(router, http.MethodPost, "/auth/logout", map[string]string{"session_id": "99"}, nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(deleted).To(Equal(int64(99)))
	})
})
