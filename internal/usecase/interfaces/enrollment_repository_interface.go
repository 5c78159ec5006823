package interfaces

import (
	"context"
	"fmt"
	"strings"
	"time"

	"educa_taxista/internal/domain/entities"
)

// DuplicateProbe carries the canonical field values a new registration is
// checked against. Empty fields are skipped by the scan.

type DuplicateProbe struct {
	Email       string
	TaxID       string
	PhoneDigits string
	Plate       string
	License     string
	NameKey     string
}

// PaymentConfirmation is the metadata stamped on an enrollment when a
// gateway confirmation event is applied.

type PaymentConfirmation struct {
	ChargeID    string
	CustomerID  string
	Amount      float64
	BillingType string
	ConfirmedAt time.Time
}

// UniqueConstraintError reports which unique fields collided at the storage
// layer. It is raised by Create when the conditional write loses a race the
// advisory duplicate scan did not see.

type UniqueConstraintError struct {
	Fields []string
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("unique constraint violated: %s", strings.Join(e.Fields, ", "))
}

// IEnrollmentRepository abstracts DynamoDB persistence for Enrollment.
//
// Update methods return the zero Enrollment (ID == "") when the record does
// not exist; callers translate that to their not-found error.

type IEnrollmentRepository interface {
	Create(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error)
	GetByID(ctx context.Context, id string) (entities.Enrollment, error)
	GetByEmail(ctx context.Context, email string) (entities.Enrollment, error)
	GetByChargeID(ctx context.Context, chargeID string) (entities.Enrollment, error)
	List(ctx context.Context) ([]entities.Enrollment, error)
	FindPotentialDuplicates(ctx context.Context, probe DuplicateProbe) ([]entities.Enrollment, error)
	SetChargeLink(ctx context.Context, id, chargeID, customerID string) (entities.Enrollment, error)
	SetPaymentConfirmed(ctx context.Context, id string, conf PaymentConfirmation) (entities.Enrollment, error)
	SetStatus(ctx context.Context, id string, status entities.EnrollmentStatus, access entities.CourseAccess) (entities.Enrollment, error)
	SetPasswordHash(ctx context.Context, id, hash string) (entities.Enrollment, error)
	Delete(ctx context.Context, id string) error
}
