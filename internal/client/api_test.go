package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return New(url, 2*time.Second, nil)
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/token", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@budgetpro.local", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"access": "acc", "refresh": "ref"},
		})
	}))
	defer server.Close()

	pair, err := newTestClient(server.URL).Login(context.Background(), "user@budgetpro.local", "pw")
	require.NoError(t, err)
	assert.Equal(t, "acc", pair.Access)
	assert.Equal(t, "ref", pair.Refresh)
}

func TestLogin_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"invalid credentials", http.StatusUnauthorized, ErrInvalidCredentials},
		{"pending approval", http.StatusForbidden, ErrAccountPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]string{"code": "X", "message": "nope"},
				})
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).Login(context.Background(), "a@b.c", "pw")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLogin_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).Login(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestRegister_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/register", r.URL.Path)

		var form RegistrationForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "DO", form.Role)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"message": "ok"}})
	}))
	defer server.Close()

	err := newTestClient(server.URL).Register(context.Background(), RegistrationForm{
		FirstName: "Ada", LastName: "Obi", Email: "ada@b.c",
		Department: "Finance", Role: "DO", Password: "pw",
	})
	assert.NoError(t, err)
}

func TestRegister_FieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    "VALIDATION_FAILED",
				"message": "registration invalid",
				"details": map[string]string{"email": "required", "department": "required"},
			},
		})
	}))
	defer server.Close()

	err := newTestClient(server.URL).Register(context.Background(), RegistrationForm{})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "required", validation.Fields["email"])
	assert.Equal(t, "required", validation.Fields["department"])
}

func TestPendingRequests_SendsBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/requests", r.URL.Path)
		assert.Equal(t, "Bearer the-access-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"id":             "req-1",
					"user_email":     "new@budgetpro.local",
					"user_fullname":  "New User",
					"requested_role": "HOD",
					"requested_at":   time.Now().UTC().Format(time.RFC3339),
					"status":         "PENDING",
				},
			},
		})
	}))
	defer server.Close()

	pending, err := newTestClient(server.URL).PendingRequests(context.Background(), "the-access-token")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "new@budgetpro.local", pending[0].UserEmail)
	assert.Equal(t, "HOD", pending[0].RequestedRole)
}
