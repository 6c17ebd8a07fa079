package user

import (
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	JoiningDate string  `json:"joining_date"`
	Notes       *string `json:"notes,omitempty"`
	IsAdmin     bool    `json:"is_admin"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToResponse converts a User entity to its API shape.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        u.Role,
		JoiningDate: u.JoiningDate.Format("2006-01-02"),
		Notes:       u.Notes,
		IsAdmin:     u.IsAdmin,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateUserRequest represents the admin "add user" action
type CreateUserRequest struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	JoiningDate string  `json:"joining_date"`
	Notes       *string `json:"notes,omitempty"`
	IsAdmin     bool    `json:"is_admin"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if validator.IsEmpty(r.JoiningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining date is required",
		})
	} else if !validator.IsValidISODate(r.JoiningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents a profile edit; nil fields are left unchanged
type UpdateUserRequest struct {
	ID          string  `json:"id"`
	FullName    *string `json:"full_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Role        *string `json:"role,omitempty"`
	JoiningDate *string `json:"joining_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	IsAdmin     *bool   `json:"is_admin,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full name must not be empty",
		})
	}

	if r.Email != nil {
		if validator.IsEmpty(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must not be empty",
			})
		} else if !validator.IsValidEmail(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "invalid email format",
			})
		}
	}

	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must not be empty",
		})
	}

	if r.JoiningDate != nil && !validator.IsValidISODate(*r.JoiningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
