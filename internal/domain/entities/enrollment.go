package entities

import "time"

// EnrollmentStatus represents the payment lifecycle of an enrollment.
//
// Domain notes:
//   - The enrollment-service is the source of truth for enrollment/payment state.
//   - pending -> paid is driven exclusively by gateway webhook events.
//   - paid -> cancelled/overdue are the only reverse transitions, also
//     gateway-driven, never triggered by user action.

type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "pending"
	EnrollmentStatusPaid      EnrollmentStatus = "paid"
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
	EnrollmentStatusOverdue   EnrollmentStatus = "overdue"
)

// CourseAccess gates whether the registrant may use the paid course content.
// Invariant: granted implies status paid (or active/completed).

type CourseAccess string

const (
	CourseAccessDenied  CourseAccess = "denied"
	CourseAccessGranted CourseAccess = "granted"
)

// Enrollment is the central entity: one registrant's application, payment
// linkage and course-access state.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//   - GSI2 (charge_id-index): charge_id
//
// Canonical forms persisted for duplicate detection:
//   - Email lowercase-trimmed, TaxID digits-only, PhoneDigits digits-only,
//     Plate/License uppercase, NameKey whitespace-collapsed lowercase.
//
// PasswordHash holds a bcrypt hash of the temporary password. The plaintext
// is returned once from registration/reset for channel delivery and is
// never persisted.

type Enrollment struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	NameKey  string `json:"name_key"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	// PhoneDigits is the cleaned digits-only form used for fuzzy duplicate matching.
	PhoneDigits string `json:"phone_digits"`
	TaxID       string `json:"tax_id"`
	Plate       string `json:"plate,omitempty"`
	License     string `json:"license,omitempty"`
	City        string `json:"city"`

	Status       EnrollmentStatus `json:"status"`
	CourseAccess CourseAccess     `json:"course_access"`

	PasswordHash string `json:"-"`

	// Payment linkage, populated by the payment session and the reconciler.
	ChargeID           string     `json:"charge_id,omitempty"`
	CustomerID         string     `json:"customer_id,omitempty"`
	PaymentAmount      float64    `json:"payment_amount,omitempty"`
	BillingType        string     `json:"billing_type,omitempty"`
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at,omitempty"`

	ConsentAccepted bool      `json:"consent_accepted"`
	ConsentAt       time.Time `json:"consent_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// HasCourseAccess reports whether the registrant may use the course content.
func (e Enrollment) HasCourseAccess() bool {
	return e.CourseAccess == CourseAccessGranted
}

// FieldConflict describes one duplicate-field collision found during the
// pre-insert scan. The Validator always reports the full list, not just the
// first hit.

type FieldConflict struct {
	Field     string `json:"field"`
	Submitted string `json:"submitted_value"`
	OwnerName string `json:"conflicting_owner_name"`
}
