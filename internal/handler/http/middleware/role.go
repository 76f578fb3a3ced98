package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/orbitdesk/backoffice-go/internal/domain/user"
	"github.com/orbitdesk/backoffice-go/internal/handler/http/response"
)

// RequireHR gates administrative attendance operations (manual marking,
// listing all, regularization review) to the hr and admin roles.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || !user.ValidRole(roleStr) {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		if !user.Role(roleStr).CanReviewAttendance() {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
