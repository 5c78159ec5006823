package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives payment gateway webhook events.
//
// The endpoint always answers 200: the gateway retries on non-2xx, and every
// outcome the reconciler produces is final. Even an unreadable body gets a
// 200 with an error outcome.

type WebhookHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewWebhookHandler(uc usecase.IReconciliationUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandlePaymentEvent applies one gateway event to the matching enrollment.
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		c.JSON(http.StatusOK, usecase.ReconciliationResult{
			Outcome: usecase.OutcomeError,
			Message: "failed to read request body",
		})
		return
	}

	var event entities.PaymentEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		log.Printf("[webhook][handler] payload unmarshal failed err=%v", err)
		c.JSON(http.StatusOK, usecase.ReconciliationResult{
			Outcome: usecase.OutcomeError,
			Message: "malformed payload: body is not valid json",
		})
		return
	}
	event.RawPayload = raw

	result := h.usecase.Process(c.Request.Context(), event)
	log.Printf("[webhook][handler] processed event=%q outcome=%s", event.Event, result.Outcome)
	c.JSON(http.StatusOK, result)
}
