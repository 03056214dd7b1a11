package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/auth"
)

const secret = "test-secret"

func TestVerifier_RoundTrip(t *testing.T) {
	v := auth.NewVerifier(secret)

	user := auth.User{ID: uuid.New(), Email: "jordan@example.com", Name: "Jordan"}

	token, err := v.Sign(user, time.Hour)
	require.NoError(t, err)

	got, err := v.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestVerifier_Parse_Invalid(t *testing.T) {
	v := auth.NewVerifier(secret)

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not-a-token"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Parse(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestVerifier_Parse_WrongSecret(t *testing.T) {
	token, err := auth.NewVerifier("other-secret").Sign(auth.User{ID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	_, err = auth.NewVerifier(secret).Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifier_Parse_Expired(t *testing.T) {
	v := auth.NewVerifier(secret)

	token, err := v.Sign(auth.User{ID: uuid.New()}, -time.Minute)
	require.NoError(t, err)

	_, err = v.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRequireUser(t *testing.T) {
	v := auth.NewVerifier(secret)
	user := auth.User{ID: uuid.New(), Email: "jordan@example.com", Name: "Jordan"}

	token, err := v.Sign(user, time.Hour)
	require.NoError(t, err)

	var seen auth.User

	handler := v.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := auth.UserFrom(r.Context())
		require.True(t, ok)
		seen = got
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"Valid", "Bearer " + token, http.StatusOK},
		{"Missing", "", http.StatusUnauthorized},
		{"NotBearer", "Basic abc123", http.StatusUnauthorized},
		{"EmptyBearer", "Bearer ", http.StatusUnauthorized},
		{"BadToken", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, user, seen)
			}
		})
	}
}

func TestUserFrom_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := auth.UserFrom(req.Context())
	assert.False(t, ok)
}
