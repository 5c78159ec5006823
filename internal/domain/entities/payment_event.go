package entities

import (
	"encoding/json"
	"strings"
)

// Gateway webhook event types the reconciler reacts to. Any other event is
// acknowledged and ignored.
const (
	EventPaymentConfirmed = "PAYMENT_CONFIRMED"
	EventPaymentReceived  = "PAYMENT_RECEIVED"
	EventPaymentOverdue   = "PAYMENT_OVERDUE"
	EventPaymentDeleted   = "PAYMENT_DELETED"
)

// PaymentEvent is the inbound gateway webhook payload.
//
// RawPayload keeps the original body (JSON) for traceability/audit, the same
// way the provider response is kept on payment creation.

type PaymentEvent struct {
	Event      string          `json:"event"`
	Payment    WebhookPayment  `json:"payment"`
	RawPayload json.RawMessage `json:"-"`
}

// WebhookPayment is the payment object inside a webhook event.
//
// Customer arrives in one of two shapes depending on the gateway
// configuration: a plain customer-id string, or a nested object carrying an
// email. It is kept raw here and resolved once at the boundary by
// ResolvePaymentRef.

type WebhookPayment struct {
	ID                string          `json:"id"`
	Value             float64         `json:"value"`
	Customer          json.RawMessage `json:"customer,omitempty"`
	BillingType       string          `json:"billingType,omitempty"`
	Status            string          `json:"status,omitempty"`
	ExternalReference string          `json:"externalReference,omitempty"`
}

// ConfirmsPayment reports whether the event carries a payment the reconciler
// should treat as settled. An absent payment status is accepted: some gateway
// configurations omit it on PAYMENT_CONFIRMED deliveries.
func (e PaymentEvent) ConfirmsPayment() bool {
	if e.Event != EventPaymentConfirmed && e.Event != EventPaymentReceived {
		return false
	}
	switch strings.ToUpper(strings.TrimSpace(e.Payment.Status)) {
	case "", "RECEIVED", "CONFIRMED":
		return true
	}
	return false
}

// PaymentRefKind tags the variant of a resolved payment reference.

type PaymentRefKind string

const (
	PaymentRefByChargeID PaymentRefKind = "charge_id"
	PaymentRefByEmail    PaymentRefKind = "email"
)

// PaymentRef is the normalized reference to the enrollment a webhook event
// belongs to: either the gateway charge id stored when the payment session
// was created, or a customer email carried in the payload.

type PaymentRef struct {
	Kind     PaymentRefKind
	ChargeID string
	Email    string
}

// ResolvePaymentRef normalizes the variant shapes of a webhook payment into
// a single tagged reference. It prefers the charge id; the email variant is
// kept as a fallback for events whose customer field is a nested object.
// Returns false when the payload carries nothing usable for matching.
func ResolvePaymentRef(p WebhookPayment) (PaymentRef, bool) {
	ref := PaymentRef{}

	if id := strings.TrimSpace(p.ID); id != "" {
		ref.Kind = PaymentRefByChargeID
		ref.ChargeID = id
	}

	if email := customerEmail(p.Customer); email != "" {
		ref.Email = email
		if ref.Kind == "" {
			ref.Kind = PaymentRefByEmail
		}
	}

	return ref, ref.Kind != ""
}

// CustomerID returns the gateway customer id when the customer field is the
// plain string variant. Empty for the nested-object and email shapes.
func (p WebhookPayment) CustomerID() string {
	var s string
	if err := json.Unmarshal(p.Customer, &s); err == nil {
		s = strings.TrimSpace(s)
		if s != "" && !strings.Contains(s, "@") {
			return s
		}
	}
	return ""
}

func customerEmail(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	// Object variant: {"email": "..."}.
	var obj struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && strings.TrimSpace(obj.Email) != "" {
		return strings.ToLower(strings.TrimSpace(obj.Email))
	}

	// String variant: a customer id, or occasionally an email sent as a
	// bare string by chat-bot driven checkouts.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if strings.Contains(s, "@") {
			return strings.ToLower(s)
		}
	}
	return ""
}
