package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/auth/transport/middleware"
	"student_portal/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	LoginFunc  func(kind entity.Kind, email, password string) (*usecase.LoginResult, error)
	LogoutFunc    func(token string) error
	LogoutAllFunc func(p entity.Principal) (int64, error)
	MeFunc        func(p entity.Principal) (entity.Identity, error)
}

func (m *mockAuthUsecase) Login(_ context.Context, kind entity.Kind, email, password string, _ usecase.LoginMeta) (*usecase.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(kind, email, password)
	}
	return nil, usecase.ErrInvalidCredentials
}

func (m *mockAuthUsecase) Logout(_ context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(token)
	}
	return nil
}

func (m *mockAuthUsecase) LogoutAll(_ context.Context, p entity.Principal) (int64, error) {
	if m.LogoutAllFunc != nil {
		return m.LogoutAllFunc(p)
	}
	return 0, nil
}

func (m *mockAuthUsecase) Me(_ context.Context, p entity.Principal) (entity.Identity, error) {
	if m.MeFunc != nil {
		return m.MeFunc(p)
	}
	return entity.Identity{}, usecase.ErrUserNotFound
}

var expiresAt = time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	loginFunc := func(kind entity.Kind, email, password string) (*usecase.LoginResult, error) {
		if password != "password123" {
			return nil, usecase.ErrInvalidCredentials
		}
		if email == "boom@example.com" {
			return nil, errors.New("database is down")
		}
		var user entity.Identity
		if kind == entity.KindStudent {
			user = entity.StudentIdentity(&entity.Student{ID: 1, FirstName: "Jane", LastName: "Doe", Email: email, Password: "hash"})
		} else {
			user = entity.AdminIdentity(&entity.Admin{ID: 2, FullName: "Admin User", Email: email, Password: "hash"})
		}
		return &usecase.LoginResult{Token: "tok", ExpiresAt: expiresAt, User: user}, nil
	}

	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success: student login",
			path:           "/student/login",
			body:           `{"email":"student@example.com","password":"password123"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"tok","expires_at":"2025-03-02T12:00:00Z","user_type":"student","user":{"id":1,"first_name":"Jane","last_name":"Doe","email":"student@example.com"}}`,
		},
		{
			name:           "success: admin login",
			path:           "/admin/login",
			body:           `{"email":"admin@example.com","password":"password123"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"tok","expires_at":"2025-03-02T12:00:00Z","user_type":"admin","user":{"id":2,"email":"admin@example.com","full_name":"Admin User"}}`,
		},
		{
			name:           "failure: wrong password",
			path:           "/student/login",
			body:           `{"email":"student@example.com","password":"nope"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"message":"The provided credentials are incorrect.","errors":{"email":["The provided credentials are incorrect."]}}`,
		},
		{
			name:           "failure: missing fields",
			path:           "/admin/login",
			body:           `{}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"message":"The given data was invalid.","errors":{"email":["The email field is required."],"password":["The password field is required."]}}`,
		},
		{
			name:           "failure: invalid email",
			path:           "/student/login",
			body:           `{"email":"not-an-email","password":"password123"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"message":"The given data was invalid.","errors":{"email":["The email field must be a valid email address."]}}`,
		},
		{
			name:           "failure: usecase error",
			path:           "/student/login",
			body:           `{"email":"boom@example.com","password":"password123"}`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{LoginFunc: loginFunc})
			router := gin.New()
			router.POST("/student/login", h.StudentLogin)
			router.POST("/admin/login", h.AdminLogin)

			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// withPrincipal stands in for middleware.RequireAuth.
func withPrincipal(p entity.Principal, token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextPrincipal, p)
		c.Set(middleware.ContextToken, token)
		c.Next()
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var revoked string
	h := NewAuthHandler(&mockAuthUsecase{
		LogoutFunc: func(token string) error {
			if token == "stale" {
				return usecase.ErrUnauthorized
			}
			revoked = token
			return nil
		},
	})

	router := gin.New()
	router.POST("/logout", withPrincipal(entity.Principal{Kind: entity.KindStudent, ID: 1}, "tok"), h.Logout)
	router.POST("/logout-stale", withPrincipal(entity.Principal{Kind: entity.KindStudent, ID: 1}, "stale"), h.Logout)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out."}`, w.Body.String())
	assert.Equal(t, "tok", revoked)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout-stale", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LogoutAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "success", wantStatus: http.StatusOK, wantBody: `{"message":"Logged out of all sessions.","revoked":3}`},
		{name: "store failure", err: errors.New("redis down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got entity.Principal
			h := NewAuthHandler(&mockAuthUsecase{
				LogoutAllFunc: func(p entity.Principal) (int64, error) {
					got = p
					if tt.err != nil {
						return 0, tt.err
					}
					return 3, nil
				},
			})
			router := gin.New()
			router.POST("/logout/all", withPrincipal(entity.Principal{Kind: entity.KindStudent, ID: 7}, "tok"), h.LogoutAll)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout/all", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, entity.Principal{Kind: entity.KindStudent, ID: 7}, got)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}

	router := gin.New()
	router.POST("/logout/all", NewAuthHandler(&mockAuthUsecase{}).LogoutAll)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout/all", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(&mockAuthUsecase{
		MeFunc: func(p entity.Principal) (entity.Identity, error) {
			if p.ID == 1 {
				return entity.AdminIdentity(&entity.Admin{ID: 1, Email: "admin@example.com", FullName: "Admin User"}), nil
			}
			return entity.Identity{}, usecase.ErrUserNotFound
		},
	})

	router := gin.New()
	router.GET("/me", withPrincipal(entity.Principal{Kind: entity.KindAdmin, ID: 1}, "tok"), h.Me)
	router.GET("/me-gone", withPrincipal(entity.Principal{Kind: entity.KindAdmin, ID: 9}, "tok"), h.Me)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_type":"admin","user":{"id":1,"email":"admin@example.com","full_name":"Admin User"}}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me-gone", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
