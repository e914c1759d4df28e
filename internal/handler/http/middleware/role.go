package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/ojtportal/ojt-backend-go/internal/domain/student"
	"github.com/ojtportal/ojt-backend-go/internal/handler/http/response"
)

// RequireCoordinator restricts a route to program coordinators.
func RequireCoordinator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Coordinator access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(student.RoleCoordinator) {
			response.Forbidden(w, "Coordinator access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
