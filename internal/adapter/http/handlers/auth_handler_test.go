package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"educa_taxista/internal/adapter/http/handlers/mocks"
	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AuthHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/auth/login", h.Login)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(NewAuthHandler(uc))

		uc.EXPECT().Login(gomock.Any(), "a@b.com", "Kx7#mPq2!w").
			Return(entities.Enrollment{ID: "e-1", CourseAccess: entities.CourseAccessGranted, PasswordHash: "$2a$10$secret"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
			bytes.NewBufferString(`{"email":"a@b.com","password":"Kx7#mPq2!w"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if strings.Contains(w.Body.String(), "secret") {
			t.Fatal("password hash leaked into login response")
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(NewAuthHandler(uc))

		uc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Enrollment{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
			bytes.NewBufferString(`{"email":"a@b.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(NewAuthHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"a@b.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
