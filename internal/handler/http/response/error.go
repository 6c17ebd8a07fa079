package response

import (
	"errors"
	"net/http"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/auth"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/user"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailNotAllowed):
		Forbidden(w, "Email is not on the allow-list")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "No account exists for this identity")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in recorded for today", nil)
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
