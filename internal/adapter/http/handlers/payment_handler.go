package handlers

import (
	"errors"
	"log"
	"net/http"

	response "educa_taxista/internal/adapter/http/dto/response"
	"educa_taxista/internal/usecase"
	"educa_taxista/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for PIX payment sessions.

type PaymentHandler struct {
	usecase usecase.IPaymentSessionUseCase
}

func NewPaymentHandler(uc usecase.IPaymentSessionUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentSession opens a PIX charge for a pending enrollment.
func (h *PaymentHandler) CreatePaymentSession(c *gin.Context) {
	enrollmentID := c.Param("enrollment_id")
	log.Printf("[payment][handler] session start enrollment_id=%s", enrollmentID)

	session, err := h.usecase.CreateSession(c.Request.Context(), enrollmentID)
	if err != nil {
		log.Printf("[payment][handler] session failed enrollment_id=%s err=%v", enrollmentID, err)
		appErr := mapPaymentSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] session success enrollment_id=%s charge_id=%s", enrollmentID, session.Enrollment.ChargeID)

	c.JSON(http.StatusCreated, response.FromPaymentSession(session))
}

func mapPaymentSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEnrollmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEnrollmentNotFound):
		return pkg.NewDomainErrorSimple("ENROLLMENT_NOT_FOUND", "Enrollment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnrollmentPaid):
		return pkg.NewDomainErrorSimple("ENROLLMENT_ALREADY_PAID", "Enrollment is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway request failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
