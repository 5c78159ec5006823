package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/domain/security"
	"educa_taxista/internal/domain/validation"
	"educa_taxista/internal/usecase/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// IAuthUseCase verifies a registrant's temporary password. Storage holds
// only a bcrypt hash; comparison happens through the hash, never against a
// stored plaintext.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Enrollment, error)
}

type AuthUseCase struct {
	repo interfaces.IEnrollmentRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IEnrollmentRepository) *AuthUseCase {
	return &AuthUseCase{repo: repo}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Enrollment, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return entities.Enrollment{}, ErrInvalidCredentials
	}

	e, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("[auth][usecase] lookup failed err=%v", err)
		return entities.Enrollment{}, err
	}
	// Unknown email and wrong password answer identically.
	if e.ID == "" || !security.CheckPassword(e.PasswordHash, password) {
		return entities.Enrollment{}, ErrInvalidCredentials
	}

	log.Printf("[auth][usecase] login success id=%s access=%s", e.ID, e.CourseAccess)
	return e, nil
}
