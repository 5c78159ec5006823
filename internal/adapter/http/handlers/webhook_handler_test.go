package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"educa_taxista/internal/adapter/http/handlers/mocks"
	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandlePaymentEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *WebhookHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/webhooks/payment", h.HandlePaymentEvent)
		return r
	}

	t.Run("invalid json still answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newRouter(NewWebhookHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response not json: %v", err)
		}
		if body["status"] != "error" {
			t.Fatalf("expected error status, got %v", body["status"])
		}
	})

	t.Run("event forwarded with raw payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newRouter(NewWebhookHandler(uc))

		payload := `{"event":"PAYMENT_CONFIRMED","payment":{"id":"pay_1","value":150,"customer":"cus_1","status":"CONFIRMED"}}`
		uc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, event entities.PaymentEvent) usecase.ReconciliationResult {
				if event.Event != entities.EventPaymentConfirmed || event.Payment.ID != "pay_1" {
					t.Fatalf("unexpected event: %+v", event)
				}
				if string(event.RawPayload) != payload {
					t.Fatal("expected raw payload preserved")
				}
				return usecase.ReconciliationResult{Outcome: usecase.OutcomeSuccess, Message: "ok", EnrollmentID: "e-1"}
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response not json: %v", err)
		}
		if body["status"] != "success" || body["enrollment_id"] != "e-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("every outcome answers 200", func(t *testing.T) {
		outcomes := []usecase.ReconciliationOutcome{
			usecase.OutcomeSuccess, usecase.OutcomeProcessed, usecase.OutcomeWarning,
			usecase.OutcomeIgnored, usecase.OutcomeError,
		}
		for _, outcome := range outcomes {
			t.Run(string(outcome), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIReconciliationUseCase(ctrl)
				r := newRouter(NewWebhookHandler(uc))

				uc.EXPECT().Process(gomock.Any(), gomock.Any()).
					Return(usecase.ReconciliationResult{Outcome: outcome})

				req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payment",
					bytes.NewBufferString(`{"event":"PAYMENT_OVERDUE","payment":{"id":"pay_1"}}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusOK {
					t.Fatalf("expected 200 for outcome %s, got %d", outcome, w.Code)
				}
			})
		}
	})
}
