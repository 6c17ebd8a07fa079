package attendance

import "errors"

var (
	ErrInvalidDate  = errors.New("date must be zero-padded YYYY-MM-DD")
	ErrNotCheckedIn = errors.New("you have not punched in yet")
)
