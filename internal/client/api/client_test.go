package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL + "/"}, server.Client(), tokens)
}

func TestClient_Login(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		status   int
		body     string
		wantErr  bool
		wantUser User
	}{
		{
			name:     "student",
			kind:     KindStudent,
			status:   http.StatusOK,
			body:     `{"token":"abc","expires_at":"2025-03-02T12:00:00Z","user_type":"student","user":{"id":1,"first_name":"Jane","last_name":"Doe","email":"jane@example.com"}}`,
			wantUser: StudentUser(Student{ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}),
		},
		{
			name:     "admin",
			kind:     KindAdmin,
			status:   http.StatusOK,
			body:     `{"token":"abc","expires_at":"2025-03-02T12:00:00Z","user_type":"admin","user":{"id":3,"email":"admin@example.com","full_name":"Admin User"}}`,
			wantUser: AdminUser(Admin{ID: 3, Email: "admin@example.com", FullName: "Admin User"}),
		},
		{
			name:    "invalid credentials",
			kind:    KindStudent,
			status:  http.StatusUnprocessableEntity,
			body:    `{"message":"The provided credentials are incorrect.","errors":{"email":["The provided credentials are incorrect."]}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/"+string(tt.kind)+"/login", r.URL.Path)
				var creds map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
				assert.Equal(t, "jane@example.com", creds["email"])
				assert.Equal(t, "secret", creds["password"])
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, nil)

			res, err := c.Login(context.Background(), tt.kind, "jane@example.com", "secret")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(err))
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "The provided credentials are incorrect.", apiErr.Message)
				assert.Contains(t, apiErr.Errors, "email")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "abc", res.Token)
			assert.Equal(t, tt.wantUser, res.User)
		})
	}
}

func TestClient_BearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Compiler","description":"d"}]`))
	}, StaticToken("tok-1"))

	projects, err := c.Projects(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, []Project{{ID: 1, Title: "Compiler", Description: "d"}}, projects)

	_, err = c.WithTokens(nil).Projects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_LogoutAll(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/logout/all", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"message":"Logged out of all sessions.","revoked":3}`))
	}, StaticToken("tok-1"))

	n, err := c.LogoutAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestClient_Wishlist(t *testing.T) {
	var calls []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":5,"student_id":1,"project_id":2,"project":{"id":2,"title":"Robot","description":"d"}}]`))
		case r.Method == http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"project_id":2}`, string(body))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":6,"student_id":1,"project_id":2,"project":{"id":2,"title":"Robot","description":"d"}}`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Wishlist item not found."}`))
		}
	}, StaticToken("t"))
	ctx := context.Background()

	items, err := c.Wishlist(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Robot", items[0].Project.Title)

	item, err := c.AddToWishlist(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(6), item.ID)

	err = c.RemoveFromWishlist(ctx, 99)
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.EqualError(t, err, "api: 404 Wishlist item not found.")

	assert.Equal(t, []string{
		"GET /student/1/wishlist",
		"POST /student/1/wishlist",
		"DELETE /student/wishlist/99",
	}, calls)
}

func TestClient_Students_Search(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		_, _ = w.Write([]byte(`[]`))
	}, StaticToken("t"))

	_, err := c.Students(context.Background(), " jane doe ")

	require.NoError(t, err)
	assert.Equal(t, "jane doe", gotQuery)
}

func TestClient_ExportWishlists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("PK\x03\x04"))
	}, StaticToken("t"))

	var buf bytes.Buffer
	require.NoError(t, c.ExportWishlists(context.Background(), &buf))
	assert.Equal(t, "PK\x03\x04", buf.String())
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, nil)

	_, err := c.Me(context.Background())

	assert.True(t, IsUnauthorized(err))
	assert.EqualError(t, err, "api: 401 Unauthorized")
}

func TestDecodeUser(t *testing.T) {
	u, err := DecodeUser(KindStudent, []byte(`{"id":4,"first_name":"A","last_name":"B","email":"a@b.co"}`))
	require.NoError(t, err)
	assert.Equal(t, "A B", u.DisplayName())
	assert.Equal(t, uint(4), u.ID())

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"first_name":"A","last_name":"B","email":"a@b.co"}`, string(raw))

	_, err = DecodeUser("guest", []byte(`{}`))
	assert.Error(t, err)
	_, err = DecodeUser(KindAdmin, []byte(`{"email":"x"}`))
	assert.Error(t, err)
	_, err = DecodeUser(KindAdmin, []byte(`not json`))
	assert.Error(t, err)

	assert.True(t, User{}.IsZero())
	assert.Panics(t, func() { User{}.ID() })
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Status: 422, Message: "The given data was invalid.", Errors: map[string][]string{
		"title": {"The title field is required."},
		"body":  {"x"},
	}}
	assert.Equal(t, "api: 422 The given data was invalid. (body: x; title: The title field is required.)", err.Error())
}

func TestStudent_Number(t *testing.T) {
	assert.Equal(t, "ST000042", Student{ID: 42}.Number())
	assert.Equal(t, "ST000007", Student{ID: 42, StudentNumber: "ST000007"}.Number())
}
