package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/domain/security"
	"educa_taxista/internal/domain/validation"
	"educa_taxista/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrConsentRequired   = errors.New("consent required")
	ErrEnrollmentMissing = errors.New("enrollment not found")
)

// Conflict field identifiers reported to clients.
const (
	ConflictFieldEmail   = "email"
	ConflictFieldCPF     = "cpf"
	ConflictFieldPhone   = "phone"
	ConflictFieldPlate   = "plate"
	ConflictFieldLicense = "license"
	ConflictFieldName    = "name"
)

// ConflictError carries every duplicate-field collision found for a
// registration, never just the first one.

type ConflictError struct {
	Conflicts []entities.FieldConflict
}

func (e *ConflictError) Error() string {
	fields := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		fields = append(fields, c.Field)
	}
	return fmt.Sprintf("duplicate field(s): %s", strings.Join(fields, ", "))
}

// RegistrationInput is the raw registration data as submitted.

type RegistrationInput struct {
	FullName string
	Email    string
	Phone    string
	TaxID    string
	Plate    string
	License  string
	City     string
	Consent  bool
}

// RegistrationResult reports the created enrollment plus the per-channel
// delivery outcome of the temporary password. The record exists regardless
// of delivery success.

type RegistrationResult struct {
	Enrollment        entities.Enrollment
	TemporaryPassword string
	EmailDelivered    bool
	ChatDelivered     bool
}

// IRegistrationUseCase encapsulates the registration validation pipeline.
//
// Each step is a hard gate except the external tax-id verification, which is
// best effort and logged only.

type IRegistrationUseCase interface {
	Register(ctx context.Context, input RegistrationInput) (RegistrationResult, error)
}

type RegistrationUseCase struct {
	repo     interfaces.IEnrollmentRepository
	verifier interfaces.ITaxIDVerifier
	email    interfaces.INotifier
	chat     interfaces.INotifier
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(repo interfaces.IEnrollmentRepository, verifier interfaces.ITaxIDVerifier, email, chat interfaces.INotifier) *RegistrationUseCase {
	return &RegistrationUseCase{repo: repo, verifier: verifier, email: email, chat: chat}
}

func (u *RegistrationUseCase) Register(ctx context.Context, input RegistrationInput) (RegistrationResult, error) {
	log.Printf("[registration][usecase] register start email=%q", input.Email)
	if u.repo == nil {
		return RegistrationResult{}, errors.New("enrollment repository not configured")
	}

	if !input.Consent {
		log.Printf("[registration][usecase] consent missing email=%q", input.Email)
		return RegistrationResult{}, ErrConsentRequired
	}

	if err := validation.ValidateCPF(input.TaxID); err != nil {
		log.Printf("[registration][usecase] invalid tax id email=%q", input.Email)
		return RegistrationResult{}, err
	}
	taxID := validation.CleanDigits(input.TaxID)

	u.verifyTaxIDBestEffort(ctx, taxID)

	if err := validation.ValidateFullName(input.FullName); err != nil {
		log.Printf("[registration][usecase] invalid name email=%q err=%v", input.Email, err)
		return RegistrationResult{}, err
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		log.Printf("[registration][usecase] invalid email email=%q", input.Email)
		return RegistrationResult{}, err
	}
	if strings.TrimSpace(input.Plate) != "" {
		if err := validation.ValidatePlate(input.Plate); err != nil {
			log.Printf("[registration][usecase] invalid plate email=%q", input.Email)
			return RegistrationResult{}, err
		}
	}
	if strings.TrimSpace(input.License) != "" {
		if err := validation.ValidateLicense(input.License); err != nil {
			log.Printf("[registration][usecase] invalid license email=%q", input.Email)
			return RegistrationResult{}, err
		}
	}

	probe := buildDuplicateProbe(input, taxID)
	candidates, err := u.repo.FindPotentialDuplicates(ctx, probe)
	if err != nil {
		log.Printf("[registration][usecase] duplicate scan failed email=%q err=%v", input.Email, err)
		return RegistrationResult{}, err
	}
	if conflicts := collectConflicts(probe, candidates); len(conflicts) > 0 {
		log.Printf("[registration][usecase] duplicates found email=%q count=%d", input.Email, len(conflicts))
		return RegistrationResult{}, &ConflictError{Conflicts: conflicts}
	}

	password, err := security.GenerateTemporaryPassword()
	if err != nil {
		log.Printf("[registration][usecase] password generation failed err=%v", err)
		return RegistrationResult{}, err
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		log.Printf("[registration][usecase] password hash failed err=%v", err)
		return RegistrationResult{}, err
	}

	now := time.Now().UTC()
	e := entities.Enrollment{
		ID:              uuid.NewString(),
		FullName:        validation.NormalizeName(input.FullName),
		NameKey:         probe.NameKey,
		Email:           probe.Email,
		Phone:           strings.TrimSpace(input.Phone),
		PhoneDigits:     probe.PhoneDigits,
		TaxID:           taxID,
		Plate:           probe.Plate,
		License:         probe.License,
		City:            strings.TrimSpace(input.City),
		Status:          entities.EnrollmentStatusPending,
		CourseAccess:    entities.CourseAccessDenied,
		PasswordHash:    hash,
		ConsentAccepted: true,
		ConsentAt:       now,
		CreatedAt:       now,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		var uce *interfaces.UniqueConstraintError
		if errors.As(err, &uce) {
			// A concurrent registration won the race after the advisory
			// scan; surface it as the same conflict shape.
			log.Printf("[registration][usecase] unique constraint lost race email=%q fields=%v", probe.Email, uce.Fields)
			return RegistrationResult{}, &ConflictError{Conflicts: conflictsFromConstraint(probe, uce)}
		}
		log.Printf("[registration][usecase] repository create failed email=%q err=%v", probe.Email, err)
		return RegistrationResult{}, err
	}
	log.Printf("[registration][usecase] enrollment created id=%s email=%q", created.ID, created.Email)

	result := RegistrationResult{
		Enrollment:        created,
		TemporaryPassword: password,
	}
	result.EmailDelivered = u.deliver(ctx, u.email, "email", created, password)
	result.ChatDelivered = u.deliver(ctx, u.chat, "chat", created, password)

	log.Printf("[registration][usecase] register success id=%s email_delivered=%t chat_delivered=%t", created.ID, result.EmailDelivered, result.ChatDelivered)
	return result, nil
}

// verifyTaxIDBestEffort consults the external validation service without
// ever blocking registration: an unavailable or disagreeing service is
// logged and the local checksum result stands.
func (u *RegistrationUseCase) verifyTaxIDBestEffort(ctx context.Context, taxID string) {
	if u.verifier == nil {
		return
	}
	vctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	ok, err := u.verifier.Verify(vctx, taxID)
	switch {
	case errors.Is(err, interfaces.ErrVerifierUnavailable):
		log.Printf("[registration][usecase] tax id verifier unavailable; using local checksum")
	case err != nil:
		log.Printf("[registration][usecase] tax id verifier error err=%v; using local checksum", err)
	case !ok:
		log.Printf("[registration][usecase] tax id verifier disagreed with local checksum tax_id_len=%d", len(taxID))
	}
}

func (u *RegistrationUseCase) deliver(ctx context.Context, n interfaces.INotifier, channel string, e entities.Enrollment, password string) bool {
	if n == nil {
		log.Printf("[registration][usecase] %s channel not configured id=%s", channel, e.ID)
		return false
	}
	if err := n.DeliverTemporaryPassword(ctx, e, password); err != nil {
		log.Printf("[registration][usecase] %s delivery failed id=%s err=%v", channel, e.ID, err)
		return false
	}
	return true
}

func buildDuplicateProbe(input RegistrationInput, taxID string) interfaces.DuplicateProbe {
	return interfaces.DuplicateProbe{
		Email:       validation.NormalizeEmail(input.Email),
		TaxID:       taxID,
		PhoneDigits: validation.CleanDigits(input.Phone),
		Plate:       validation.NormalizePlate(input.Plate),
		License:     validation.NormalizePlate(input.License),
		NameKey:     validation.NameKey(input.FullName),
	}
}

// collectConflicts compares the probe against every candidate the scan
// returned and reports each colliding field once, with the owner's name.
func collectConflicts(probe interfaces.DuplicateProbe, candidates []entities.Enrollment) []entities.FieldConflict {
	seen := map[string]bool{}
	var conflicts []entities.FieldConflict
	add := func(field, submitted, owner string) {
		if seen[field] {
			return
		}
		seen[field] = true
		conflicts = append(conflicts, entities.FieldConflict{Field: field, Submitted: submitted, OwnerName: owner})
	}

	for _, c := range candidates {
		if probe.Email != "" && c.Email == probe.Email {
			add(ConflictFieldEmail, probe.Email, c.FullName)
		}
		if probe.TaxID != "" && c.TaxID == probe.TaxID {
			add(ConflictFieldCPF, probe.TaxID, c.FullName)
		}
		if phonesOverlap(probe.PhoneDigits, c.PhoneDigits) {
			add(ConflictFieldPhone, probe.PhoneDigits, c.FullName)
		}
		if probe.Plate != "" && c.Plate == probe.Plate {
			add(ConflictFieldPlate, probe.Plate, c.FullName)
		}
		if probe.License != "" && c.License == probe.License {
			add(ConflictFieldLicense, probe.License, c.FullName)
		}
		if probe.NameKey != "" && c.NameKey == probe.NameKey {
			add(ConflictFieldName, probe.NameKey, c.FullName)
		}
	}
	return conflicts
}

// phonesOverlap treats digit-substring containment in either direction as a
// match, so the same number submitted with or without the country prefix
// still collides. False positives for genuinely distinct numbers that embed
// each other are accepted.
func phonesOverlap(submitted, stored string) bool {
	if len(submitted) < 8 || len(stored) < 8 {
		return false
	}
	return strings.Contains(stored, submitted) || strings.Contains(submitted, stored)
}

func conflictsFromConstraint(probe interfaces.DuplicateProbe, uce *interfaces.UniqueConstraintError) []entities.FieldConflict {
	submitted := map[string]string{
		ConflictFieldEmail:   probe.Email,
		ConflictFieldCPF:     probe.TaxID,
		ConflictFieldPhone:   probe.PhoneDigits,
		ConflictFieldPlate:   probe.Plate,
		ConflictFieldLicense: probe.License,
		ConflictFieldName:    probe.NameKey,
	}
	conflicts := make([]entities.FieldConflict, 0, len(uce.Fields))
	for _, f := range uce.Fields {
		conflicts = append(conflicts, entities.FieldConflict{Field: f, Submitted: submitted[f]})
	}
	return conflicts
}
