package response

import (
	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase"
)

// RegistrationResponse reports the created enrollment, the one-time plaintext
// password and the per-channel delivery outcome.

type RegistrationResponse struct {
	Enrollment        EnrollmentResponse `json:"enrollment"`
	TemporaryPassword string             `json:"temporary_password"`
	EmailDelivered    bool               `json:"email_delivered"`
	ChatDelivered     bool               `json:"chat_delivered"`
}

func FromRegistrationResult(r usecase.RegistrationResult) RegistrationResponse {
	return RegistrationResponse{
		Enrollment:        FromEnrollment(r.Enrollment),
		TemporaryPassword: r.TemporaryPassword,
		EmailDelivered:    r.EmailDelivered,
		ChatDelivered:     r.ChatDelivered,
	}
}

// ConflictResponse is the 409 body listing every duplicate-field collision.

type ConflictResponse struct {
	Code      string                   `json:"code"`
	Message   string                   `json:"message"`
	Conflicts []entities.FieldConflict `json:"conflicts"`
}

func FromConflictError(ce *usecase.ConflictError) ConflictResponse {
	return ConflictResponse{
		Code:      "DUPLICATE_REGISTRATION",
		Message:   "One or more submitted fields belong to an existing registration",
		Conflicts: ce.Conflicts,
	}
}
