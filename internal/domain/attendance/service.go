package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// PunchIn upserts today's record for the authenticated user with
	// check_in set to now
	PunchIn(ctx context.Context, req PunchInRequest) (DayRecordResponse, error)

	// PunchOut sets check_out on today's record for the authenticated user
	PunchOut(ctx context.Context) (DayRecordResponse, error)

	// GetDocument returns a user's full attendance document; a user with
	// no records gets an empty document
	GetDocument(ctx context.Context, userID string) (AttendanceDocumentResponse, error)

	// GetToday returns the tagged single-day lookup for the authenticated
	// user's current date
	GetToday(ctx context.Context, userID string) (DayLookupResult, error)

	// Upsert applies an admin edit to any (user, date) record
	Upsert(ctx context.Context, req UpsertRequest) (DayRecordResponse, error)

	// GetStats reduces a user's records in a window to status counts and
	// time averages
	GetStats(ctx context.Context, req StatsRequest) (Stats, error)

	// GetCalendar projects a user's records onto the month grid
	GetCalendar(ctx context.Context, userID string, year, month int) ([]CalendarCell, error)

	// SweepDefaultLeave marks every user without a record today as on leave
	SweepDefaultLeave(ctx context.Context) (int64, error)
}
