package attendance

import "time"

// Day record statuses. StatusNoData is synthetic: the calendar projection
// emits it for grid days with no matching record, it is never persisted.
const (
	StatusPresent = "present"
	StatusRemote  = "remote"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
	StatusNoData  = "no-data"
)

// PersistedStatuses are the values a stored day record may carry.
var PersistedStatuses = []string{StatusPresent, StatusRemote, StatusAbsent, StatusLeave}

// DayRecord is one user's attendance entry for one calendar date.
// At most one record exists per (UserID, Date); the database enforces it.
type DayRecord struct {
	ID        string
	UserID    string
	Date      string // YYYY-MM-DD
	Status    string
	CheckIn   *time.Time
	CheckOut  *time.Time
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasWorkHours reports whether the record contributes to time averages.
func (d DayRecord) HasWorkHours() bool {
	return d.CheckIn != nil && d.CheckOut != nil
}
