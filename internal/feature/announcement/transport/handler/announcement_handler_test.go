package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"student_portal/internal/feature/announcement/domain/entity"
	"student_portal/internal/feature/announcement/usecase"
)

// mockAnnouncementUsecase is a mock implementation of AnnouncementUsecase.
type mockAnnouncementUsecase struct {
	ListFunc             func() ([]entity.Announcement, error)
	ListByDepartmentFunc func(department string) ([]entity.Announcement, error)
	CreateFunc           func(in usecase.CreateInput) (*entity.Announcement, error)
}

func (m *mockAnnouncementUsecase) List(_ context.Context) ([]entity.Announcement, error) {
	return m.ListFunc()
}

func (m *mockAnnouncementUsecase) ListByDepartment(_ context.Context, department string) ([]entity.Announcement, error) {
	return m.ListByDepartmentFunc(department)
}

func (m *mockAnnouncementUsecase) Create(_ context.Context, in usecase.CreateInput) (*entity.Announcement, error) {
	return m.CreateFunc(in)
}

var published = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

func newRouter(uc AnnouncementUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAnnouncementHandler(uc)
	r := gin.New()
	r.GET("/announcements", h.List)
	r.GET("/announcements/:department", h.ListByDepartment)
	r.POST("/admin/announcements", h.Create)
	return r
}

func TestAnnouncementHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		listFunc       func() ([]entity.Announcement, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: announcements",
			listFunc: func() ([]entity.Announcement, error) {
				return []entity.Announcement{{ID: 1, Title: "Welcome", Content: "Hello", Display: entity.DepartmentGeneral, Datetime: published}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":1,"title":"Welcome","content":"Hello","display":"general","department_name":"General","datetime":"2025-03-15T09:00:00Z"}]`,
		},
		{
			name:           "success: empty list",
			listFunc:       func() ([]entity.Announcement, error) { return nil, nil },
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "failure: repository error",
			listFunc:       func() ([]entity.Announcement, error) { return nil, errors.New("db down") },
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockAnnouncementUsecase{ListFunc: tt.listFunc})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/announcements", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAnnouncementHandler_ListByDepartment(t *testing.T) {
	uc := &mockAnnouncementUsecase{
		ListByDepartmentFunc: func(department string) ([]entity.Announcement, error) {
			d, err := entity.ParseDepartment(department)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", usecase.ErrInvalidDepartment, department)
			}
			return []entity.Announcement{{ID: 4, Title: "Lab", Content: "c", Display: d, Datetime: published}}, nil
		},
	}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/announcements/computer-science", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":4,"title":"Lab","content":"c","display":"computer_science","department_name":"Computer Science","datetime":"2025-03-15T09:00:00Z"}]`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/announcements/biology", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"message":"The given data was invalid.","errors":{"department":["The selected department is invalid."]}}`, w.Body.String())
}

func TestAnnouncementHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantInput      *usecase.CreateInput
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success: with datetime",
			body:           `{"title":"Seminar","content":"Quantum talk","display":"physics","datetime":"2025-03-15T09:00:00Z"}`,
			wantInput:      &usecase.CreateInput{Title: "Seminar", Content: "Quantum talk", Display: entity.DepartmentPhysics, Datetime: published},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":9,"title":"Seminar","content":"Quantum talk","display":"physics","department_name":"Physics","datetime":"2025-03-15T09:00:00Z"}`,
		},
		{
			name:           "success: datetime-local form",
			body:           `{"title":"Seminar","content":"Quantum talk","display":"physics","datetime":"2025-03-15T09:00"}`,
			wantInput:      &usecase.CreateInput{Title: "Seminar", Content: "Quantum talk", Display: entity.DepartmentPhysics, Datetime: published},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":9,"title":"Seminar","content":"Quantum talk","display":"physics","department_name":"Physics","datetime":"2025-03-15T09:00:00Z"}`,
		},
		{
			name:           "failure: missing fields",
			body:           `{}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"message":"The given data was invalid.","errors":{"title":["The title field is required."],"content":["The content field is required."],"display":["The display field is required."]}}`,
		},
		{
			name:           "failure: unknown department",
			body:           `{"title":"t","content":"c","display":"biology"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"message":"The given data was invalid.","errors":{"display":["The selected display is invalid."]}}`,
		},
		{
			name:           "failure: bad datetime",
			body:           `{"title":"t","content":"c","display":"math","datetime":"yesterday"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"message":"The given data was invalid.","errors":{"datetime":["The datetime field must be a valid date."]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			uc := &mockAnnouncementUsecase{
				CreateFunc: func(in usecase.CreateInput) (*entity.Announcement, error) {
					called = true
					if tt.wantInput != nil {
						assert.Equal(t, tt.wantInput.Title, in.Title)
						assert.Equal(t, tt.wantInput.Display, in.Display)
						assert.True(t, tt.wantInput.Datetime.Equal(in.Datetime))
					}
					return &entity.Announcement{ID: 9, Title: in.Title, Content: in.Content, Display: in.Display, Datetime: in.Datetime}, nil
				},
			}
			r := newRouter(uc)

			req := httptest.NewRequest(http.MethodPost, "/admin/announcements", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.wantInput != nil, called)
		})
	}
}
