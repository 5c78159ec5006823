package entities

import "time"

// PaymentRecordStatus mirrors the gateway charge status as last seen.

type PaymentRecordStatus string

const (
	PaymentRecordStatusPending   PaymentRecordStatus = "PENDING"
	PaymentRecordStatusReceived  PaymentRecordStatus = "RECEIVED"
	PaymentRecordStatusConfirmed PaymentRecordStatus = "CONFIRMED"
	PaymentRecordStatusOverdue   PaymentRecordStatus = "OVERDUE"
	PaymentRecordStatusDeleted   PaymentRecordStatus = "DELETED"
)

// PaymentRecord is one gateway charge created for an enrollment.
//
// Storage model (DynamoDB):
//   - PK: charge_id (the gateway id; charges are created by the gateway first)
//   - GSI1 (email-index): email
//
// Email is denormalized so an admin delete of an enrollment can cascade to
// every charge created under the same address.

type PaymentRecord struct {
	ChargeID     string              `json:"charge_id"`
	EnrollmentID string              `json:"enrollment_id"`
	Email        string              `json:"email"`
	Amount       float64             `json:"amount"`
	BillingType  string              `json:"billing_type"`
	Status       PaymentRecordStatus `json:"status"`
	DueDate      string              `json:"due_date,omitempty"`
	InvoiceURL   string              `json:"invoice_url,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// Charge is the gateway's answer to a charge creation request.

type Charge struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	DueDate    string `json:"due_date"`
	InvoiceURL string `json:"invoice_url"`
}

// PixPayload carries the PIX copy-paste code and the base64-encoded QR image.

type PixPayload struct {
	Payload      string `json:"payload"`
	EncodedImage string `json:"encoded_image"`
}
