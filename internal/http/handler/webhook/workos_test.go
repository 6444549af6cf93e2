package webhook_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Forhemit/StarterClub-sub002/internal/http/handler/webhook"
	"github.com/Forhemit/StarterClub-sub002/internal/mapper"
)

var _ = Describe("WorkOSWebhookHandler", func() {
	const signature = "t=1, v1=valid"

	var (
		router   *gin.Engine
		identity *mockIdentityService
	)

	post := func(body, sig string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/workos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if sig != "" {
			req.Header.Set("WorkOS-Signature", sig)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		identity = &mockIdentityService{}
		router = gin.New()
		h := webhook.NewWorkOSWebhookHandler(identity, &fakeWorkOSVerifier{signature: signature})
		router.POST("/webhooks/workos", h.HandleEvent)
	})

	It("applies user.created", func() {
		w := post(`{"id":"event_1","event":"user.created","data":{"id":"user_01","email":"ada@example.com","first_name":"Ada"}}`, signature)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(identity.applied).To(HaveLen(1))
		Expect(identity.applied[0].Type).To(Equal(mapper.EventUserUpserted))
		Expect(identity.applied[0].User.ID).To(Equal("user_01"))
	})

	It("applies user.deleted", func() {
		w := post(`{"id":"event_2","event":"user.deleted","data":{"id":"user_01"}}`, signature)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(identity.applied[0].Type).To(Equal(mapper.EventUserDeleted))
	})

	It("acknowledges events it does not handle", func() {
		w := post(`{"id":"event_3","event":"organization.created","data":{"id":"org_01"}}`, signature)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("event type not supported"))
		Expect(identity.applied).To(BeEmpty())
	})

	It("returns 400 on a bad signature", func() {
		w := post(`{"id":"event_1","event":"user.created","data":{"id":"user_01","email":"ada@example.com"}}`, "t=1, v1=forged")

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(identity.applied).To(BeEmpty())
	})

	It("returns 400 without a signature", func() {
		w := post(`{}`, "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 when processing fails", func() {
		identity.applyErr = errors.New("db down")

		w := post(`{"id":"event_1","event":"user.updated","data":{"id":"user_01","email":"ada@example.com"}}`, signature)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
