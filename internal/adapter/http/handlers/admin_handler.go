package handlers

import (
	"errors"
	"log"
	"net/http"

	request "educa_taxista/internal/adapter/http/dto/request"
	response "educa_taxista/internal/adapter/http/dto/response"
	"educa_taxista/internal/usecase"
	"educa_taxista/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the dashboard CRUD surface. Routes are mounted behind
// the admin token middleware.

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) ListEnrollments(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnrollments(items))
}

func (h *AdminHandler) GetEnrollment(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("enrollment_id"))
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnrollment(e))
}

func (h *AdminHandler) ResetPassword(c *gin.Context) {
	enrollmentID := c.Param("enrollment_id")
	log.Printf("[admin][handler] password reset start enrollment_id=%s", enrollmentID)

	result, err := h.usecase.ResetPassword(c.Request.Context(), enrollmentID)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPasswordResetResult(result))
}

func (h *AdminHandler) OverrideStatus(c *gin.Context) {
	var payload request.StatusOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	e, err := h.usecase.OverrideStatus(c.Request.Context(), c.Param("enrollment_id"), payload.Status)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnrollment(e))
}

func (h *AdminHandler) DeleteEnrollment(c *gin.Context) {
	enrollmentID := c.Param("enrollment_id")
	log.Printf("[admin][handler] delete start enrollment_id=%s", enrollmentID)

	removed, err := h.usecase.Delete(c.Request.Context(), enrollmentID)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{Deleted: true, RemovedPayments: removed})
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEnrollmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusOverride):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status is not a valid enrollment status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEnrollmentNotFound):
		return pkg.NewDomainErrorSimple("ENROLLMENT_NOT_FOUND", "Enrollment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
