package interfaces

import (
	"context"

	"educa_taxista/internal/domain/entities"
)

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.
//
// DeleteByEmail supports the admin cascade: removing an enrollment removes
// every charge created under the same address.

type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByChargeID(ctx context.Context, chargeID string) (entities.PaymentRecord, error)
	ListByEmail(ctx context.Context, email string) ([]entities.PaymentRecord, error)
	UpdateStatusByChargeID(ctx context.Context, chargeID string, status entities.PaymentRecordStatus) (entities.PaymentRecord, error)
	DeleteByEmail(ctx context.Context, email string) (int, error)
}
