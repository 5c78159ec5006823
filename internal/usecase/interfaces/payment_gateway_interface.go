package interfaces

import (
	"context"

	"educa_taxista/internal/domain/entities"
)

// ChargeRequest describes the PIX charge to open for an enrollment.
// Reference carries the enrollment id (gateway externalReference) to help
// reconcile webhook events.

type ChargeRequest struct {
	CustomerID  string
	Amount      float64
	Description string
	Reference   string
}

// IPaymentGateway abstracts the external payment provider (Asaas).
//
// The enrollment-service uses it to register the payer, open a PIX charge
// and fetch the copy-paste/QR payload shown to the registrant.

type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, name, email, taxID, phone string) (customerID string, err error)
	CreateCharge(ctx context.Context, req ChargeRequest) (entities.Charge, error)
	GetPixPayload(ctx context.Context, chargeID string) (entities.PixPayload, error)
}
