package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/domain/security"
	"educa_taxista/internal/usecase/interfaces"
)

var ErrInvalidStatusOverride = errors.New("invalid status override")

// PasswordResetResult carries the regenerated plaintext (returned once for
// channel delivery) and the per-channel outcome, mirroring registration.

type PasswordResetResult struct {
	Enrollment        entities.Enrollment
	TemporaryPassword string
	EmailDelivered    bool
	ChatDelivered     bool
}

// IAdminUseCase exposes the thin CRUD surface used by the dashboard. These
// are direct wrappers over the repository plus the two mutations the
// reconciler does not own: password reset and direct status override.

type IAdminUseCase interface {
	List(ctx context.Context) ([]entities.Enrollment, error)
	GetByID(ctx context.Context, id string) (entities.Enrollment, error)
	ResetPassword(ctx context.Context, id string) (PasswordResetResult, error)
	OverrideStatus(ctx context.Context, id, status string) (entities.Enrollment, error)
	Delete(ctx context.Context, id string) (removedPayments int, err error)
}

type AdminUseCase struct {
	repo        interfaces.IEnrollmentRepository
	paymentRepo interfaces.IPaymentRecordRepository
	email       interfaces.INotifier
	chat        interfaces.INotifier
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(repo interfaces.IEnrollmentRepository, paymentRepo interfaces.IPaymentRecordRepository, email, chat interfaces.INotifier) *AdminUseCase {
	return &AdminUseCase{repo: repo, paymentRepo: paymentRepo, email: email, chat: chat}
}

func (u *AdminUseCase) List(ctx context.Context) ([]entities.Enrollment, error) {
	return u.repo.List(ctx)
}

func (u *AdminUseCase) GetByID(ctx context.Context, id string) (entities.Enrollment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Enrollment{}, ErrInvalidEnrollmentID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if e.ID == "" {
		return entities.Enrollment{}, ErrEnrollmentNotFound
	}
	return e, nil
}

func (u *AdminUseCase) ResetPassword(ctx context.Context, id string) (PasswordResetResult, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return PasswordResetResult{}, err
	}

	password, err := security.GenerateTemporaryPassword()
	if err != nil {
		return PasswordResetResult{}, err
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return PasswordResetResult{}, err
	}

	updated, err := u.repo.SetPasswordHash(ctx, e.ID, hash)
	if err != nil {
		log.Printf("[admin][usecase] password reset update failed id=%s err=%v", e.ID, err)
		return PasswordResetResult{}, err
	}
	if updated.ID == "" {
		return PasswordResetResult{}, ErrEnrollmentNotFound
	}
	log.Printf("[admin][usecase] password reset id=%s", updated.ID)

	result := PasswordResetResult{Enrollment: updated, TemporaryPassword: password}
	result.EmailDelivered = u.deliver(ctx, u.email, "email", updated, password)
	result.ChatDelivered = u.deliver(ctx, u.chat, "chat", updated, password)
	return result, nil
}

// OverrideStatus sets the enrollment status directly. Course access follows
// the status so the granted-implies-paid invariant cannot be broken from
// the dashboard.
func (u *AdminUseCase) OverrideStatus(ctx context.Context, id, status string) (entities.Enrollment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Enrollment{}, ErrInvalidEnrollmentID
	}

	target := entities.EnrollmentStatus(strings.ToLower(strings.TrimSpace(status)))
	access, ok := accessForStatus(target)
	if !ok {
		return entities.Enrollment{}, ErrInvalidStatusOverride
	}

	updated, err := u.repo.SetStatus(ctx, id, target, access)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if updated.ID == "" {
		return entities.Enrollment{}, ErrEnrollmentNotFound
	}
	log.Printf("[admin][usecase] status override id=%s status=%s access=%s", updated.ID, target, access)
	return updated, nil
}

func (u *AdminUseCase) Delete(ctx context.Context, id string) (int, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	removed := 0
	if u.paymentRepo != nil {
		if removed, err = u.paymentRepo.DeleteByEmail(ctx, e.Email); err != nil {
			log.Printf("[admin][usecase] payment cascade failed id=%s err=%v", e.ID, err)
			return 0, err
		}
	}
	if err := u.repo.Delete(ctx, e.ID); err != nil {
		return removed, err
	}
	log.Printf("[admin][usecase] enrollment deleted id=%s cascaded_payments=%d", e.ID, removed)
	return removed, nil
}

func (u *AdminUseCase) deliver(ctx context.Context, n interfaces.INotifier, channel string, e entities.Enrollment, password string) bool {
	if n == nil {
		return false
	}
	if err := n.DeliverTemporaryPassword(ctx, e, password); err != nil {
		log.Printf("[admin][usecase] %s delivery failed id=%s err=%v", channel, e.ID, err)
		return false
	}
	return true
}

func accessForStatus(s entities.EnrollmentStatus) (entities.CourseAccess, bool) {
	switch s {
	case entities.EnrollmentStatusPaid, entities.EnrollmentStatusActive, entities.EnrollmentStatusCompleted:
		return entities.CourseAccessGranted, true
	case entities.EnrollmentStatusPending, entities.EnrollmentStatusCancelled, entities.EnrollmentStatusOverdue:
		return entities.CourseAccessDenied, true
	}
	return "", false
}
