package user

import "time"

// User is an employee account managed by administrators. Role is a job
// title for display (e.g. "Frontend Developer"), not a permission level;
// admin privilege is the separate IsAdmin flag.
type User struct {
	ID           string
	FullName     string
	Email        string
	Role         string
	JoiningDate  time.Time
	Notes        *string
	IsAdmin      bool
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
