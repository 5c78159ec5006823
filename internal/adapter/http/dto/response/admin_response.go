package response

import "educa_taxista/internal/usecase"

// PasswordResetResponse mirrors RegistrationResponse for the admin reset flow.

type PasswordResetResponse struct {
	Enrollment        EnrollmentResponse `json:"enrollment"`
	TemporaryPassword string             `json:"temporary_password"`
	EmailDelivered    bool               `json:"email_delivered"`
	ChatDelivered     bool               `json:"chat_delivered"`
}

func FromPasswordResetResult(r usecase.PasswordResetResult) PasswordResetResponse {
	return PasswordResetResponse{
		Enrollment:        FromEnrollment(r.Enrollment),
		TemporaryPassword: r.TemporaryPassword,
		EmailDelivered:    r.EmailDelivered,
		ChatDelivered:     r.ChatDelivered,
	}
}

type DeleteResponse struct {
	Deleted         bool `json:"deleted"`
	RemovedPayments int  `json:"removed_payments"`
}
