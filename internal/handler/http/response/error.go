package response

import (
	"errors"
	"net/http"

	"github.com/ojtportal/ojt-backend-go/internal/domain/auth"
	"github.com/ojtportal/ojt-backend-go/internal/domain/punch"
	"github.com/ojtportal/ojt-backend-go/internal/domain/student"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrGoogleAccountUnknown):
		NotFound(w, "No student is registered with this Google account")

	// Student domain errors
	case errors.Is(err, student.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, student.ErrInactiveStudent):
		Forbidden(w, "Student account is not active")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidRange):
		BadRequest(w, "From date must not be after to date", nil)
	case errors.Is(err, timesheet.ErrUnauthorized):
		Forbidden(w, "Not allowed to view this timesheet")
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch event not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
