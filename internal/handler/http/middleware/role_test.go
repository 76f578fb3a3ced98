package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithRole(t *testing.T, role string) *http.Request {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestRequireHR(t *testing.T) {
	handler := RequireHR(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		role       string
		wantStatus int
	}{
		{role: "hr", wantStatus: http.StatusOK},
		{role: "admin", wantStatus: http.StatusOK},
		{role: "employee", wantStatus: http.StatusForbidden},
		{role: "sales", wantStatus: http.StatusForbidden},
		{role: "superuser", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWithRole(t, tt.role))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("no claims", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
