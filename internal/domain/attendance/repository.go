package attendance

import (
	"context"
)

// DayRecordRepository defines data access for per-user day records.
// Dates are zero-padded YYYY-MM-DD strings; range comparisons rely on that
// fixed width, so callers validate before reaching here.
type DayRecordRepository interface {
	// Upsert inserts or replaces the record for (userID, date) in one
	// statement. An existing row keeps its id; status, check_in,
	// check_out and notes are replaced wholesale.
	Upsert(ctx context.Context, record DayRecord) (DayRecord, error)

	// GetByUserID returns every record for a user ordered by date.
	// A user with no records yields an empty slice, not an error.
	GetByUserID(ctx context.Context, userID string) ([]DayRecord, error)

	// GetByUserIDInRange returns a user's records with date in
	// [startDate, endDate] inclusive.
	GetByUserIDInRange(ctx context.Context, userID, startDate, endDate string) ([]DayRecord, error)

	// GetAllInRange returns every user's records with date in
	// [startDate, endDate] inclusive.
	GetAllInRange(ctx context.Context, startDate, endDate string) ([]DayRecord, error)

	// InsertDefaultLeave inserts a leave record for every user missing one
	// on the given date, leaving existing records untouched. Returns the
	// number of records created.
	InsertDefaultLeave(ctx context.Context, date string) (int64, error)

	// DeleteByUserID removes all records for a user.
	DeleteByUserID(ctx context.Context, userID string) error
}
