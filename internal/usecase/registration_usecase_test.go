package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/domain/security"
	"educa_taxista/internal/domain/validation"
	"educa_taxista/internal/usecase/interfaces"
	mock_interfaces "educa_taxista/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validRegistrationInput() RegistrationInput {
	return RegistrationInput{
		FullName: "José da Silva",
		Email:    "Jose.Silva@Example.com",
		Phone:    "+55 11 98765-4321",
		TaxID:    "529.982.247-25",
		Plate:    "abc-1234",
		License:  "12345",
		City:     "São Paulo",
		Consent:  true,
	}
}

func TestRegistrationUseCase_Register_Gates(t *testing.T) {
	t.Run("consent required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		input := validRegistrationInput()
		input.Consent = false

		_, err := uc.Register(context.Background(), input)
		if !errors.Is(err, ErrConsentRequired) {
			t.Fatalf("expected ErrConsentRequired, got %v", err)
		}
	})

	t.Run("invalid cpf short-circuits before duplicate scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		// No FindPotentialDuplicates expectation: the checksum gate must fire first.
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		input := validRegistrationInput()
		input.TaxID = "123.456.789-00"

		_, err := uc.Register(context.Background(), input)
		if !errors.Is(err, validation.ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		input := validRegistrationInput()
		input.FullName = "José"

		_, err := uc.Register(context.Background(), input)
		if !errors.Is(err, validation.ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		input := validRegistrationInput()
		input.Email = "not-an-email"

		_, err := uc.Register(context.Background(), input)
		if !errors.Is(err, validation.ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("invalid plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		input := validRegistrationInput()
		input.Plate = "12-ABCD"

		_, err := uc.Register(context.Background(), input)
		if !errors.Is(err, validation.ErrInvalidPlate) {
			t.Fatalf("expected ErrInvalidPlate, got %v", err)
		}
	})

	t.Run("empty plate and license are allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		input := validRegistrationInput()
		input.Plate = ""
		input.License = ""

		repo.EXPECT().FindPotentialDuplicates(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
				return e, nil
			})

		result, err := uc.Register(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Enrollment.Plate != "" || result.Enrollment.License != "" {
			t.Fatalf("expected empty plate/license, got %q %q", result.Enrollment.Plate, result.Enrollment.License)
		}
	})
}

func TestRegistrationUseCase_Register_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
	verifier := mock_interfaces.NewMockITaxIDVerifier(ctrl)
	email := mock_interfaces.NewMockINotifier(ctrl)
	chat := mock_interfaces.NewMockINotifier(ctrl)
	uc := NewRegistrationUseCase(repo, verifier, email, chat)

	verifier.EXPECT().Verify(gomock.Any(), "52998224725").Return(true, nil)

	repo.EXPECT().FindPotentialDuplicates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, probe interfaces.DuplicateProbe) ([]entities.Enrollment, error) {
			if probe.Email != "jose.silva@example.com" {
				t.Fatalf("expected normalized email in probe, got %q", probe.Email)
			}
			if probe.TaxID != "52998224725" {
				t.Fatalf("expected cleaned tax id in probe, got %q", probe.TaxID)
			}
			if probe.PhoneDigits != "5511987654321" {
				t.Fatalf("expected digit-only phone in probe, got %q", probe.PhoneDigits)
			}
			if probe.Plate != "ABC-1234" {
				t.Fatalf("expected normalized plate in probe, got %q", probe.Plate)
			}
			return nil, nil
		})

	var stored entities.Enrollment
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
			stored = e
			return e, nil
		})

	var deliveredPassword string
	email.EXPECT().DeliverTemporaryPassword(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Enrollment, password string) error {
			deliveredPassword = password
			return nil
		})
	chat.EXPECT().DeliverTemporaryPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Register(context.Background(), validRegistrationInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored.ID == "" {
		t.Fatal("expected generated enrollment id")
	}
	if stored.Status != entities.EnrollmentStatusPending {
		t.Fatalf("expected pending status, got %q", stored.Status)
	}
	if stored.CourseAccess != entities.CourseAccessDenied {
		t.Fatalf("expected denied access, got %q", stored.CourseAccess)
	}
	if stored.FullName != "José da Silva" {
		t.Fatalf("expected normalized name, got %q", stored.FullName)
	}
	if stored.PasswordHash == "" || strings.Contains(stored.PasswordHash, result.TemporaryPassword) {
		t.Fatal("expected password stored only as a hash")
	}
	if !security.CheckPassword(stored.PasswordHash, result.TemporaryPassword) {
		t.Fatal("stored hash does not verify the returned password")
	}
	if len(result.TemporaryPassword) != 10 {
		t.Fatalf("expected 10-char temporary password, got %d", len(result.TemporaryPassword))
	}
	if deliveredPassword != result.TemporaryPassword {
		t.Fatal("delivered password differs from returned password")
	}
	if !result.EmailDelivered || !result.ChatDelivered {
		t.Fatalf("expected both channels delivered, got email=%t chat=%t", result.EmailDelivered, result.ChatDelivered)
	}
	if !stored.ConsentAccepted || stored.ConsentAt.IsZero() {
		t.Fatal("expected consent recorded with timestamp")
	}
}

func TestRegistrationUseCase_Register_VerifierNeverBlocks(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
		err  error
	}{
		{name: "verifier unavailable", err: interfaces.ErrVerifierUnavailable},
		{name: "verifier error", err: errors.New("timeout")},
		{name: "verifier disagrees", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
			verifier := mock_interfaces.NewMockITaxIDVerifier(ctrl)
			uc := NewRegistrationUseCase(repo, verifier, nil, nil)

			verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(tc.ok, tc.err)
			repo.EXPECT().FindPotentialDuplicates(gomock.Any(), gomock.Any()).Return(nil, nil)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
					return e, nil
				})

			if _, err := uc.Register(context.Background(), validRegistrationInput()); err != nil {
				t.Fatalf("verifier outcome must not block registration, got %v", err)
			}
		})
	}
}

func TestRegistrationUseCase_Register_Conflicts(t *testing.T) {
	t.Run("multi-field conflicts reported together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		owner := entities.Enrollment{
			ID:          "e-1",
			FullName:    "Maria Souza",
			Email:       "jose.silva@example.com",
			TaxID:       "52998224725",
			PhoneDigits: "11987654321",
		}
		repo.EXPECT().FindPotentialDuplicates(gomock.Any(), gomock.Any()).Return([]entities.Enrollment{owner}, nil)

		_, err := uc.Register(context.Background(), validRegistrationInput())
		var ce *ConflictError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		if len(ce.Conflicts) != 3 {
			t.Fatalf("expected 3 conflicts (email, cpf, phone), got %d: %v", len(ce.Conflicts), ce.Conflicts)
		}
		got := map[string]string{}
		for _, c := range ce.Conflicts {
			got[c.Field] = c.OwnerName
		}
		for _, field := range []string{ConflictFieldEmail, ConflictFieldCPF, ConflictFieldPhone} {
			if got[field] != "Maria Souza" {
				t.Fatalf("expected %s conflict owned by Maria Souza, got %v", field, got)
			}
		}
	})

	t.Run("phone prefix variant still collides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		// Stored without the country code; submitted with it.
		owner := entities.Enrollment{ID: "e-1", FullName: "Maria Souza", PhoneDigits: "11987654321"}
		repo.EXPECT().FindPotentialDuplicates(gomock.Any(), gomock.Any()).Return([]entities.Enrollment{owner}, nil)

		_, err := uc.Register(context.Background(), validRegistrationInput())
		var ce *ConflictError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		if len(ce.Conflicts) != 1 || ce.Conflicts[0].Field != ConflictFieldPhone {
			t.Fatalf("expected single phone conflict, got %v", ce.Conflicts)
		}
	})

	t.Run("each field reported once across candidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		candidates := []entities.Enrollment{
			{ID: "e-1", FullName: "Maria Souza", Email: "jose.silva@example.com"},
			{ID: "e-2", FullName: "Pedro Lima", Email: "jose.silva@example.com"},
		}
		repo.EXPECT().FindPotentialDuplicates(gomock.Any(), gomock.Any()).Return(candidates, nil)

		_, err := uc.Register(context.Background(), validRegistrationInput())
		var ce *ConflictError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		if len(ce.Conflicts) != 1 {
			t.Fatalf("expected deduplicated email conflict, got %v", ce.Conflicts)
		}
	})

	t.Run("unique constraint race surfaces as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		repo.EXPECT().FindPotentialDuplicates(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Enrollment{},
			&interfaces.UniqueConstraintError{Fields: []string{ConflictFieldEmail, ConflictFieldCPF}})

		_, err := uc.Register(context.Background(), validRegistrationInput())
		var ce *ConflictError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		if len(ce.Conflicts) != 2 {
			t.Fatalf("expected 2 conflicts, got %v", ce.Conflicts)
		}
		if ce.Conflicts[0].Submitted != "jose.silva@example.com" {
			t.Fatalf("expected submitted value carried over, got %q", ce.Conflicts[0].Submitted)
		}
	})

	t.Run("duplicate scan failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewRegistrationUseCase(repo, nil, nil, nil)

		repo.EXPECT().FindPotentialDuplicates(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Register(context.Background(), validRegistrationInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestRegistrationUseCase_Register_DeliveryFailureDoesNotRollBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
	email := mock_interfaces.NewMockINotifier(ctrl)
	chat := mock_interfaces.NewMockINotifier(ctrl)
	uc := NewRegistrationUseCase(repo, nil, email, chat)

	repo.EXPECT().FindPotentialDuplicates(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
			return e, nil
		})
	email.EXPECT().DeliverTemporaryPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	chat.EXPECT().DeliverTemporaryPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Register(context.Background(), validRegistrationInput())
	if err != nil {
		t.Fatalf("delivery failure must not fail registration, got %v", err)
	}
	if result.EmailDelivered {
		t.Fatal("expected email channel marked undelivered")
	}
	if !result.ChatDelivered {
		t.Fatal("expected chat channel marked delivered")
	}
	if result.Enrollment.ID == "" {
		t.Fatal("expected enrollment persisted despite delivery failure")
	}
}

func TestPhonesOverlap(t *testing.T) {
	cases := []struct {
		name      string
		submitted string
		stored    string
		want      bool
	}{
		{"identical", "11987654321", "11987654321", true},
		{"submitted has country code", "5511987654321", "11987654321", true},
		{"stored has country code", "11987654321", "5511987654321", true},
		{"distinct numbers", "11987654321", "21912345678", false},
		{"too short", "1198765", "1198765", false},
		{"empty", "", "11987654321", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := phonesOverlap(tc.submitted, tc.stored); got != tc.want {
				t.Fatalf("phonesOverlap(%q, %q) = %t, want %t", tc.submitted, tc.stored, got, tc.want)
			}
		})
	}
}
