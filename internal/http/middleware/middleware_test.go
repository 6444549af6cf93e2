package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Forhemit/StarterClub-sub002/common/logger"
	"github.com/Forhemit/StarterClub-sub002/common/metrics"
	"github.com/Forhemit/StarterClub-sub002/internal/http/middleware"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

type fakeSessions struct {
	users map[int64]*model.User
	err   error
}

func (f *fakeSessions) ValidateSession(_ context.Context, sessionID int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[sessionID]; ok {
		return u, nil
	}
	return nil, service.ErrSessionExpired
}

var _ = Describe("RequireAuth", func() {
	var (
		router   *gin.Engine
		sessions *fakeSessions
	)

	get := func(headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		sessions = &fakeSessions{users: map[int64]*model.User{99: {ID: 7}}}
		router = gin.New()
		router.Use(middleware.RequireAuth(sessions))
		router.GET("/me", func(c *gin.Context) {
			userID, ok := middleware.UserID(c)
			fields := logger.GetLogFields(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{"user_id": userID, "ok": ok, "logged_user": *fields.UserID})
		})
	})

	It("sets the user from the session header", func() {
		w := get(map[string]string{middleware.SessionIDHeader: "99"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"user_id":7,"ok":true,"logged_user":7}`))
	})

	It("falls back to the session cookie", func() {
		w := get(map[string]string{"Cookie": middleware.SessionCookieName + "=99"})
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	DescribeTable("answers 401 Unauthorized",
		func(headers map[string]string) {
			w := get(headers)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Unauthorized"}`))
		},
		Entry("without a session", map[string]string{}),
		Entry("with a malformed session id", map[string]string{middleware.SessionIDHeader: "abc"}),
		Entry("with an expired session", map[string]string{middleware.SessionIDHeader: "42"}),
	)

	It("answers 500 when the session store fails", func() {
		sessions.err = errors.New("db down")
		w := get(map[string]string{middleware.SessionIDHeader: "99"})
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})

var _ = Describe("Metrics", func() {
	It("counts requests by route template", func() {
		router := gin.New()
		router.Use(middleware.Metrics())
		router.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

		counter := metrics.HTTPErrorsTotal.WithLabelValues(http.MethodGet, "/things/:id", "4xx")
		before := testutil.ToFloat64(counter)

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/1", nil))
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/2", nil))

		Expect(testutil.ToFloat64(counter) - before).To(Equal(2.0))
	})
})

var _ = Describe("CORS", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = gin.New()
		router.Use(middleware.CORS([]string{"https://app.starterclub.test"}))
		router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	})

	It("answers preflight requests for allowed origins", func() {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://app.starterclub.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://app.starterclub.test"))
	})

	It("omits CORS headers for unknown origins", func() {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://evil.test")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})
})
