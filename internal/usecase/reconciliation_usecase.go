package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase/interfaces"
)

// ReconciliationOutcome is the definitive answer given back to the gateway.
// The webhook endpoint always responds 200 with one of these, because the
// gateway retries on non-2xx and every outcome below is final.

type ReconciliationOutcome string

const (
	// OutcomeSuccess: a state transition was applied.
	OutcomeSuccess ReconciliationOutcome = "success"
	// OutcomeProcessed: re-delivery of an event already applied; no-op.
	OutcomeProcessed ReconciliationOutcome = "processed"
	// OutcomeWarning: the event matched no enrollment (foreign/unknown record).
	OutcomeWarning ReconciliationOutcome = "warning"
	// OutcomeIgnored: event type the reconciler does not act on.
	OutcomeIgnored ReconciliationOutcome = "ignored"
	// OutcomeError: malformed payload or a storage failure.
	OutcomeError ReconciliationOutcome = "error"
)

// ReconciliationResult is the webhook response body. The gateway contract
// fixes the wire key for the outcome as "status".
type ReconciliationResult struct {
	Outcome      ReconciliationOutcome `json:"status"`
	Message      string                `json:"message"`
	EnrollmentID string                `json:"enrollment_id,omitempty"`
}

// IReconciliationUseCase applies gateway webhook events to enrollments,
// idempotently with respect to repeated delivery.

type IReconciliationUseCase interface {
	Process(ctx context.Context, event entities.PaymentEvent) ReconciliationResult
}

type ReconciliationUseCase struct {
	repo        interfaces.IEnrollmentRepository
	paymentRepo interfaces.IPaymentRecordRepository
	email       interfaces.INotifier
	chat        interfaces.INotifier
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(repo interfaces.IEnrollmentRepository, paymentRepo interfaces.IPaymentRecordRepository, email, chat interfaces.INotifier) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo, paymentRepo: paymentRepo, email: email, chat: chat}
}

// Process never returns an error: the caller is an automated retry-happy
// gateway, so every condition is converted into a structured result.
func (u *ReconciliationUseCase) Process(ctx context.Context, event entities.PaymentEvent) ReconciliationResult {
	log.Printf("[reconciler][usecase] process start event=%q payment_id=%q", event.Event, event.Payment.ID)

	if event.Event == "" || event.Payment.ID == "" {
		log.Printf("[reconciler][usecase] malformed payload event=%q payment_id=%q", event.Event, event.Payment.ID)
		return ReconciliationResult{Outcome: OutcomeError, Message: "malformed payload: missing event type or payment id"}
	}
	if u.repo == nil {
		return ReconciliationResult{Outcome: OutcomeError, Message: "enrollment repository not configured"}
	}

	switch event.Event {
	case entities.EventPaymentConfirmed, entities.EventPaymentReceived:
		if !event.ConfirmsPayment() {
			log.Printf("[reconciler][usecase] confirmation event with unsettled status payment_id=%s status=%q", event.Payment.ID, event.Payment.Status)
			return ReconciliationResult{Outcome: OutcomeIgnored, Message: "payment status not settled; event acknowledged"}
		}
		return u.applyConfirmation(ctx, event)
	case entities.EventPaymentOverdue:
		return u.applyRevocation(ctx, event, entities.EnrollmentStatusOverdue, entities.PaymentRecordStatusOverdue)
	case entities.EventPaymentDeleted:
		return u.applyRevocation(ctx, event, entities.EnrollmentStatusCancelled, entities.PaymentRecordStatusDeleted)
	default:
		log.Printf("[reconciler][usecase] event ignored event=%q payment_id=%s", event.Event, event.Payment.ID)
		return ReconciliationResult{Outcome: OutcomeIgnored, Message: "event type not handled"}
	}
}

func (u *ReconciliationUseCase) applyConfirmation(ctx context.Context, event entities.PaymentEvent) ReconciliationResult {
	e, res := u.match(ctx, event)
	if res != nil {
		return *res
	}

	if e.Status == entities.EnrollmentStatusPaid && e.HasCourseAccess() {
		// Re-delivery of an already applied confirmation: the state
		// assignment is an unconditional set, so there is nothing to do, and
		// repeating the unlock notification would be a duplicate side effect.
		log.Printf("[reconciler][usecase] confirmation already applied id=%s payment_id=%s", e.ID, event.Payment.ID)
		return ReconciliationResult{Outcome: OutcomeProcessed, Message: "payment already confirmed", EnrollmentID: e.ID}
	}

	conf := interfaces.PaymentConfirmation{
		ChargeID:    event.Payment.ID,
		CustomerID:  event.Payment.CustomerID(),
		Amount:      event.Payment.Value,
		BillingType: event.Payment.BillingType,
		ConfirmedAt: time.Now().UTC(),
	}
	updated, err := u.repo.SetPaymentConfirmed(ctx, e.ID, conf)
	if err != nil {
		log.Printf("[reconciler][usecase] confirmation update failed id=%s err=%v", e.ID, err)
		return ReconciliationResult{Outcome: OutcomeError, Message: "failed to apply payment confirmation", EnrollmentID: e.ID}
	}
	if updated.ID == "" {
		return ReconciliationResult{Outcome: OutcomeWarning, Message: "enrollment disappeared during update", EnrollmentID: e.ID}
	}

	u.updatePaymentRecord(ctx, event.Payment.ID, paymentRecordStatusFor(event))
	u.notifyCourseUnlocked(ctx, updated)

	log.Printf("[reconciler][usecase] payment confirmed id=%s payment_id=%s amount=%.2f", updated.ID, event.Payment.ID, event.Payment.Value)
	return ReconciliationResult{Outcome: OutcomeSuccess, Message: "payment confirmed; course access granted", EnrollmentID: updated.ID}
}

func (u *ReconciliationUseCase) applyRevocation(ctx context.Context, event entities.PaymentEvent, status entities.EnrollmentStatus, recordStatus entities.PaymentRecordStatus) ReconciliationResult {
	e, res := u.match(ctx, event)
	if res != nil {
		return *res
	}

	if e.Status == status && !e.HasCourseAccess() {
		log.Printf("[reconciler][usecase] revocation already applied id=%s status=%s", e.ID, status)
		return ReconciliationResult{Outcome: OutcomeProcessed, Message: "event already applied", EnrollmentID: e.ID}
	}

	updated, err := u.repo.SetStatus(ctx, e.ID, status, entities.CourseAccessDenied)
	if err != nil {
		log.Printf("[reconciler][usecase] revocation update failed id=%s err=%v", e.ID, err)
		return ReconciliationResult{Outcome: OutcomeError, Message: "failed to apply payment event", EnrollmentID: e.ID}
	}
	if updated.ID == "" {
		return ReconciliationResult{Outcome: OutcomeWarning, Message: "enrollment disappeared during update", EnrollmentID: e.ID}
	}

	u.updatePaymentRecord(ctx, event.Payment.ID, recordStatus)

	log.Printf("[reconciler][usecase] payment revoked id=%s status=%s payment_id=%s", updated.ID, status, event.Payment.ID)
	return ReconciliationResult{Outcome: OutcomeSuccess, Message: "payment event applied; course access revoked", EnrollmentID: updated.ID}
}

// match resolves the payload's customer variants into a tagged reference,
// then locates the enrollment by stored charge id first and customer email
// second. A miss is a valid outcome, not an error.
func (u *ReconciliationUseCase) match(ctx context.Context, event entities.PaymentEvent) (entities.Enrollment, *ReconciliationResult) {
	ref, ok := entities.ResolvePaymentRef(event.Payment)
	if !ok {
		return entities.Enrollment{}, &ReconciliationResult{Outcome: OutcomeError, Message: "payload carries no usable payment reference"}
	}

	if ref.ChargeID != "" {
		e, err := u.repo.GetByChargeID(ctx, ref.ChargeID)
		if err != nil {
			log.Printf("[reconciler][usecase] charge lookup failed charge_id=%s err=%v", ref.ChargeID, err)
			return entities.Enrollment{}, &ReconciliationResult{Outcome: OutcomeError, Message: "enrollment lookup failed"}
		}
		if e.ID != "" {
			return e, nil
		}
	}

	if ref.Email != "" {
		e, err := u.repo.GetByEmail(ctx, ref.Email)
		if err != nil {
			log.Printf("[reconciler][usecase] email lookup failed err=%v", err)
			return entities.Enrollment{}, &ReconciliationResult{Outcome: OutcomeError, Message: "enrollment lookup failed"}
		}
		if e.ID != "" {
			return e, nil
		}
	}

	log.Printf("[reconciler][usecase] no matching enrollment charge_id=%s", ref.ChargeID)
	return entities.Enrollment{}, &ReconciliationResult{Outcome: OutcomeWarning, Message: "event matched no enrollment; acknowledged"}
}

func (u *ReconciliationUseCase) updatePaymentRecord(ctx context.Context, chargeID string, status entities.PaymentRecordStatus) {
	if u.paymentRepo == nil {
		return
	}
	if _, err := u.paymentRepo.UpdateStatusByChargeID(ctx, chargeID, status); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[reconciler][usecase] payment record update failed charge_id=%s err=%v", chargeID, err)
	}
}

func (u *ReconciliationUseCase) notifyCourseUnlocked(ctx context.Context, e entities.Enrollment) {
	for channel, n := range map[string]interfaces.INotifier{"email": u.email, "chat": u.chat} {
		if n == nil {
			continue
		}
		if err := n.NotifyCourseUnlocked(ctx, e); err != nil {
			log.Printf("[reconciler][usecase] unlock notification failed channel=%s id=%s err=%v", channel, e.ID, err)
		}
	}
}

func paymentRecordStatusFor(event entities.PaymentEvent) entities.PaymentRecordStatus {
	if event.Event == entities.EventPaymentReceived {
		return entities.PaymentRecordStatusReceived
	}
	return entities.PaymentRecordStatusConfirmed
}
