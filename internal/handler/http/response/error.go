package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/auth"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/employee"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped —
// including storage failures wrapped by the repositories — becomes a 500
// without leaking internals to the client.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		BadRequest(w, "Already clocked in today", nil)
	case errors.Is(err, attendance.ErrNotClockedInYet):
		BadRequest(w, "You have not clocked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		BadRequest(w, "Already clocked out today", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrMissingEmployeeID):
		Unauthorized(w, "Token does not carry an employee identity")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
