package handlers

import (
	"errors"
	"net/http"

	request "educa_taxista/internal/adapter/http/dto/request"
	response "educa_taxista/internal/adapter/http/dto/response"
	"educa_taxista/internal/usecase"
	"educa_taxista/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler verifies temporary-password logins.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	e, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			appErr := pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Email or password is incorrect", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Enrollment:   response.FromEnrollment(e),
		CourseAccess: string(e.CourseAccess),
	})
}
