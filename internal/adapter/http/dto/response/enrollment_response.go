package response

import (
	"time"

	"educa_taxista/internal/domain/entities"
)

// EnrollmentResponse is the public view of an enrollment. The password hash
// never leaves the server.

type EnrollmentResponse struct {
	ID                 string     `json:"id"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	CPF                string     `json:"cpf"`
	Plate              string     `json:"plate,omitempty"`
	License            string     `json:"license,omitempty"`
	City               string     `json:"city,omitempty"`
	Status             string     `json:"status"`
	CourseAccess       string     `json:"course_access"`
	ChargeID           string     `json:"charge_id,omitempty"`
	PaymentAmount      float64    `json:"payment_amount,omitempty"`
	BillingType        string     `json:"billing_type,omitempty"`
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at,omitempty"`
	ConsentAccepted    bool       `json:"consent_accepted"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromEnrollment(e entities.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:                 e.ID,
		FullName:           e.FullName,
		Email:              e.Email,
		Phone:              e.Phone,
		CPF:                e.TaxID,
		Plate:              e.Plate,
		License:            e.License,
		City:               e.City,
		Status:             string(e.Status),
		CourseAccess:       string(e.CourseAccess),
		ChargeID:           e.ChargeID,
		PaymentAmount:      e.PaymentAmount,
		BillingType:        e.BillingType,
		PaymentConfirmedAt: e.PaymentConfirmedAt,
		ConsentAccepted:    e.ConsentAccepted,
		CreatedAt:          e.CreatedAt,
	}
}

func FromEnrollments(items []entities.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEnrollment(e))
	}
	return out
}
