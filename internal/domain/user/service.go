package user

import "context"

// UserService defines business logic for account management (admin only)
type UserService interface {
	// CreateUser adds a user after checking the email is not taken
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// GetUser retrieves a single user by ID; absence is a hard error
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// ListUsers retrieves every user
	ListUsers(ctx context.Context) ([]UserResponse, error)

	// UpdateUser applies a profile edit
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// DeleteUser removes a user and their attendance records
	DeleteUser(ctx context.Context, id string) error
}
