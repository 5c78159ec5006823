package usecase

import (
	"context"
	"errors"
	"testing"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/domain/security"
	mock_interfaces "educa_taxista/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAdminUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidEnrollmentID) {
			t.Fatalf("expected ErrInvalidEnrollmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewAdminUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "e-x").Return(entities.Enrollment{}, nil)

		_, err := uc.GetByID(context.Background(), "e-x")
		if !errors.Is(err, ErrEnrollmentNotFound) {
			t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewAdminUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1"}, nil)

		e, err := uc.GetByID(context.Background(), "e-1")
		if err != nil || e.ID != "e-1" {
			t.Fatalf("expected enrollment e-1, got %+v err=%v", e, err)
		}
	})
}

func TestAdminUseCase_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
	email := mock_interfaces.NewMockINotifier(ctrl)
	chat := mock_interfaces.NewMockINotifier(ctrl)
	uc := NewAdminUseCase(repo, nil, email, chat)

	repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1", Email: "a@b.com"}, nil)

	var storedHash string
	repo.EXPECT().SetPasswordHash(gomock.Any(), "e-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id, hash string) (entities.Enrollment, error) {
			storedHash = hash
			return entities.Enrollment{ID: id, PasswordHash: hash}, nil
		})
	email.EXPECT().DeliverTemporaryPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	chat.EXPECT().DeliverTemporaryPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("whatsapp down"))

	result, err := uc.ResetPassword(context.Background(), "e-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.TemporaryPassword) != 10 {
		t.Fatalf("expected 10-char password, got %d", len(result.TemporaryPassword))
	}
	if !security.CheckPassword(storedHash, result.TemporaryPassword) {
		t.Fatal("stored hash does not verify the regenerated password")
	}
	if !result.EmailDelivered || result.ChatDelivered {
		t.Fatalf("expected email delivered and chat failed, got email=%t chat=%t", result.EmailDelivered, result.ChatDelivered)
	}
}

func TestAdminUseCase_OverrideStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewAdminUseCase(repo, nil, nil, nil)

		_, err := uc.OverrideStatus(context.Background(), "e-1", "refunded")
		if !errors.Is(err, ErrInvalidStatusOverride) {
			t.Fatalf("expected ErrInvalidStatusOverride, got %v", err)
		}
	})

	t.Run("access follows status", func(t *testing.T) {
		cases := []struct {
			status string
			access entities.CourseAccess
		}{
			{"paid", entities.CourseAccessGranted},
			{"active", entities.CourseAccessGranted},
			{"completed", entities.CourseAccessGranted},
			{"pending", entities.CourseAccessDenied},
			{"cancelled", entities.CourseAccessDenied},
			{"overdue", entities.CourseAccessDenied},
		}
		for _, tc := range cases {
			t.Run(tc.status, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
				uc := NewAdminUseCase(repo, nil, nil, nil)

				repo.EXPECT().SetStatus(gomock.Any(), "e-1", entities.EnrollmentStatus(tc.status), tc.access).
					Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatus(tc.status), CourseAccess: tc.access}, nil)

				e, err := uc.OverrideStatus(context.Background(), "e-1", tc.status)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if e.CourseAccess != tc.access {
					t.Fatalf("expected access %q for status %q, got %q", tc.access, tc.status, e.CourseAccess)
				}
			})
		}
	})

	t.Run("status is case-insensitive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		uc := NewAdminUseCase(repo, nil, nil, nil)

		repo.EXPECT().SetStatus(gomock.Any(), "e-1", entities.EnrollmentStatusPaid, entities.CourseAccessGranted).
			Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusPaid}, nil)

		if _, err := uc.OverrideStatus(context.Background(), "e-1", " PAID "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAdminUseCase_Delete(t *testing.T) {
	t.Run("cascades payment records first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewAdminUseCase(repo, payments, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1", Email: "a@b.com"}, nil)
		gomock.InOrder(
			payments.EXPECT().DeleteByEmail(gomock.Any(), "a@b.com").Return(2, nil),
			repo.EXPECT().Delete(gomock.Any(), "e-1").Return(nil),
		)

		removed, err := uc.Delete(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed != 2 {
			t.Fatalf("expected 2 cascaded payments, got %d", removed)
		}
	})

	t.Run("cascade failure aborts the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEnrollmentRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewAdminUseCase(repo, payments, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1", Email: "a@b.com"}, nil)
		payments.EXPECT().DeleteByEmail(gomock.Any(), "a@b.com").Return(0, errors.New("db"))
		// No repo.Delete expectation: the enrollment must survive.

		if _, err := uc.Delete(context.Background(), "e-1"); err == nil {
			t.Fatal("expected error")
		}
	})
}
