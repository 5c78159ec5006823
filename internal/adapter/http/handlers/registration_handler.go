package handlers

import (
	"errors"
	"log"
	"net/http"

	request "educa_taxista/internal/adapter/http/dto/request"
	response "educa_taxista/internal/adapter/http/dto/response"
	"educa_taxista/internal/domain/validation"
	"educa_taxista/internal/usecase"
	"educa_taxista/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRegistrationPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRATION_INPUT", "Invalid registration payload", http.StatusBadRequest)

// RegistrationHandler handles HTTP requests for driver registration.

type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

// Register validates a registration, scans for duplicates and creates a
// pending enrollment. Duplicate collisions answer 409 with the full conflict
// list.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var payload request.RegistrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistrationPayload.HTTPStatus, errInvalidRegistrationPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		var ce *usecase.ConflictError
		if errors.As(err, &ce) {
			log.Printf("[registration][handler] conflict email=%q fields=%d", payload.Email, len(ce.Conflicts))
			c.JSON(http.StatusConflict, response.FromConflictError(ce))
			return
		}
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRegistrationResult(result))
}

func mapRegistrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrConsentRequired):
		return pkg.NewDomainErrorSimple("CONSENT_REQUIRED", "Data-processing consent is required", http.StatusBadRequest)
	case errors.Is(err, validation.ErrInvalidCPF):
		return pkg.NewDomainErrorSimple("INVALID_CPF", "CPF failed validation", http.StatusBadRequest)
	case errors.Is(err, validation.ErrInvalidName):
		return pkg.NewDomainError("INVALID_NAME", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, validation.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Email address is not valid", http.StatusBadRequest)
	case errors.Is(err, validation.ErrInvalidPlate):
		return pkg.NewDomainErrorSimple("INVALID_PLATE", "Vehicle plate is not in an accepted format", http.StatusBadRequest)
	case errors.Is(err, validation.ErrInvalidLicense):
		return pkg.NewDomainErrorSimple("INVALID_LICENSE", "Taxi license is not in an accepted format", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
