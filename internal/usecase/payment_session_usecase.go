package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase/interfaces"
)

var (
	ErrInvalidEnrollmentID = errors.New("invalid enrollment id")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrEnrollmentPaid      = errors.New("enrollment already paid")
	ErrPaymentGateway      = errors.New("payment gateway request failed")
)

const (
	defaultCourseAmount      = 150.0
	defaultCourseDescription = "Curso de formação continuada para taxistas"
)

// PaymentSession is everything the client needs to pay: the charge metadata
// and the PIX copy-paste/QR payload.

type PaymentSession struct {
	Enrollment entities.Enrollment
	Record     entities.PaymentRecord
	Pix        entities.PixPayload
}

// IPaymentSessionUseCase opens a PIX charge at the gateway for a pending
// enrollment and stores the linkage the webhook reconciler matches against.

type IPaymentSessionUseCase interface {
	CreateSession(ctx context.Context, enrollmentID string) (PaymentSession, error)
}

type PaymentSessionUseCase struct {
	repo        interfaces.IEnrollmentRepository
	paymentRepo interfaces.IPaymentRecordRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentSessionUseCase = (*PaymentSessionUseCase)(nil)

func NewPaymentSessionUseCase(repo interfaces.IEnrollmentRepository, paymentRepo interfaces.IPaymentRecordRepository, gateway interfaces.IPaymentGateway) *PaymentSessionUseCase {
	return &PaymentSessionUseCase{repo: repo, paymentRepo: paymentRepo, gateway: gateway}
}

func (u *PaymentSessionUseCase) CreateSession(ctx context.Context, enrollmentID string) (PaymentSession, error) {
	enrollmentID = strings.TrimSpace(enrollmentID)
	log.Printf("[payment][usecase] create session start enrollment_id=%s", enrollmentID)
	if enrollmentID == "" {
		return PaymentSession{}, ErrInvalidEnrollmentID
	}
	if u.repo == nil {
		return PaymentSession{}, errors.New("enrollment repository not configured")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured enrollment_id=%s", enrollmentID)
		return PaymentSession{}, errors.New("payment gateway not configured")
	}

	e, err := u.repo.GetByID(ctx, enrollmentID)
	if err != nil {
		log.Printf("[payment][usecase] enrollment lookup failed enrollment_id=%s err=%v", enrollmentID, err)
		return PaymentSession{}, err
	}
	if e.ID == "" {
		return PaymentSession{}, ErrEnrollmentNotFound
	}
	if e.Status == entities.EnrollmentStatusPaid || e.HasCourseAccess() {
		log.Printf("[payment][usecase] enrollment already paid enrollment_id=%s", enrollmentID)
		return PaymentSession{}, ErrEnrollmentPaid
	}

	customerID := e.CustomerID
	if customerID == "" {
		customerID, err = u.gateway.CreateCustomer(ctx, e.FullName, e.Email, e.TaxID, e.Phone)
		if err != nil {
			log.Printf("[payment][usecase] customer creation failed enrollment_id=%s err=%v", enrollmentID, err)
			return PaymentSession{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
		}
		log.Printf("[payment][usecase] customer created enrollment_id=%s customer_id=%s", enrollmentID, customerID)
	}

	amount := courseAmount()
	charge, err := u.gateway.CreateCharge(ctx, interfaces.ChargeRequest{
		CustomerID:  customerID,
		Amount:      amount,
		Description: getenvDefault("COURSE_DESCRIPTION", defaultCourseDescription),
		Reference:   e.ID,
	})
	if err != nil {
		log.Printf("[payment][usecase] charge creation failed enrollment_id=%s err=%v", enrollmentID, err)
		return PaymentSession{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	log.Printf("[payment][usecase] charge created enrollment_id=%s charge_id=%s amount=%.2f", enrollmentID, charge.ID, amount)

	// The PIX payload is what the client renders; a failure here still
	// leaves a payable charge behind, so it aborts the session.
	pix, err := u.gateway.GetPixPayload(ctx, charge.ID)
	if err != nil {
		log.Printf("[payment][usecase] pix payload fetch failed charge_id=%s err=%v", charge.ID, err)
		return PaymentSession{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	updated, err := u.repo.SetChargeLink(ctx, e.ID, charge.ID, customerID)
	if err != nil {
		log.Printf("[payment][usecase] charge link update failed enrollment_id=%s err=%v", e.ID, err)
		return PaymentSession{}, err
	}
	if updated.ID == "" {
		return PaymentSession{}, ErrEnrollmentNotFound
	}

	now := time.Now().UTC()
	record := entities.PaymentRecord{
		ChargeID:     charge.ID,
		EnrollmentID: e.ID,
		Email:        e.Email,
		Amount:       amount,
		BillingType:  "PIX",
		Status:       entities.PaymentRecordStatusPending,
		DueDate:      charge.DueDate,
		InvoiceURL:   charge.InvoiceURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if u.paymentRepo != nil {
		if record, err = u.paymentRepo.Create(ctx, record); err != nil {
			// The charge exists at the gateway and the linkage is stored on
			// the enrollment; the local record is recoverable from webhooks.
			log.Printf("[payment][usecase] payment record create failed charge_id=%s err=%v", charge.ID, err)
		}
	}

	log.Printf("[payment][usecase] create session success enrollment_id=%s charge_id=%s", e.ID, charge.ID)
	return PaymentSession{Enrollment: updated, Record: record, Pix: pix}, nil
}

func courseAmount() float64 {
	if v := os.Getenv("COURSE_PRICE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultCourseAmount
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
