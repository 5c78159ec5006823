package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"educa_taxista/internal/adapter/http/handlers/mocks"
	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_ListEnrollments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdminUseCase(ctrl)
	h := NewAdminHandler(uc)

	r := gin.New()
	r.GET("/v1/admin/enrollments", h.ListEnrollments)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Enrollment{{ID: "e-1"}, {ID: "e-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/enrollments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 enrollments, got %d", len(body))
	}
}

func TestAdminHandler_GetEnrollment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/enrollments/:enrollment_id", h.GetEnrollment)

		uc.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/enrollments/e-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/enrollments/:enrollment_id", h.GetEnrollment)

		uc.EXPECT().GetByID(gomock.Any(), "e-x").Return(entities.Enrollment{}, usecase.ErrEnrollmentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/enrollments/e-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAdminHandler_ResetPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdminUseCase(ctrl)
	h := NewAdminHandler(uc)

	r := gin.New()
	r.POST("/v1/admin/enrollments/:enrollment_id/reset-password", h.ResetPassword)

	uc.EXPECT().ResetPassword(gomock.Any(), "e-1").Return(usecase.PasswordResetResult{
		Enrollment:        entities.Enrollment{ID: "e-1"},
		TemporaryPassword: "Kx7#mPq2!w",
		EmailDelivered:    true,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/enrollments/e-1/reset-password", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if body["temporary_password"] != "Kx7#mPq2!w" {
		t.Fatalf("expected regenerated password, got %v", body)
	}
}

func TestAdminHandler_OverrideStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/enrollments/:enrollment_id/status", h.OverrideStatus)

		uc.EXPECT().OverrideStatus(gomock.Any(), "e-1", "paid").
			Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusPaid, CourseAccess: entities.CourseAccessGranted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/enrollments/e-1/status",
			bytes.NewBufferString(`{"status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/enrollments/:enrollment_id/status", h.OverrideStatus)

		uc.EXPECT().OverrideStatus(gomock.Any(), "e-1", "refunded").
			Return(entities.Enrollment{}, usecase.ErrInvalidStatusOverride)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/enrollments/e-1/status",
			bytes.NewBufferString(`{"status":"refunded"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminHandler_DeleteEnrollment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdminUseCase(ctrl)
	h := NewAdminHandler(uc)

	r := gin.New()
	r.DELETE("/v1/admin/enrollments/:enrollment_id", h.DeleteEnrollment)

	uc.EXPECT().Delete(gomock.Any(), "e-1").Return(2, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/enrollments/e-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if body["deleted"] != true || body["removed_payments"] != float64(2) {
		t.Fatalf("unexpected body: %v", body)
	}
}
