package attendance

import (
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/validator"
)

// DayRecordResponse is the API shape of a stored day record. CheckIn and
// CheckOut serialize as explicit nulls rather than being omitted so every
// record carries the same schema.
type DayRecordResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Notes    *string `json:"notes"`
}

// AttendanceDocumentResponse is the per-user container shape. A user with
// no records gets an empty list; callers cannot distinguish that from a
// missing document, which is intentional.
type AttendanceDocumentResponse struct {
	UserID      string              `json:"user_id"`
	Attendances []DayRecordResponse `json:"attendances"`
	UpdatedAt   *string             `json:"updated_at,omitempty"`
}

// ToDayRecordResponse converts a DayRecord entity to its API shape.
func ToDayRecordResponse(d DayRecord) DayRecordResponse {
	return DayRecordResponse{
		ID:       d.ID,
		UserID:   d.UserID,
		Date:     d.Date,
		Status:   d.Status,
		CheckIn:  timePtrToRFC3339(d.CheckIn),
		CheckOut: timePtrToRFC3339(d.CheckOut),
		Notes:    d.Notes,
	}
}

// ToDocumentResponse assembles the document shape from a user's records.
func ToDocumentResponse(userID string, records []DayRecord) AttendanceDocumentResponse {
	doc := AttendanceDocumentResponse{
		UserID:      userID,
		Attendances: make([]DayRecordResponse, 0, len(records)),
	}
	var latest time.Time
	for _, r := range records {
		doc.Attendances = append(doc.Attendances, ToDayRecordResponse(r))
		if r.UpdatedAt.After(latest) {
			latest = r.UpdatedAt
		}
	}
	if !latest.IsZero() {
		s := latest.Format(time.RFC3339)
		doc.UpdatedAt = &s
	}
	return doc
}

func timePtrToRFC3339(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// UpsertRequest is the admin edit of a single day record. Omitted check
// times are stored as null. There is deliberately no guard that CheckOut
// follows CheckIn and no status transition rule: attendance correction
// requires unrestricted overwrite.
type UpsertRequest struct {
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Notes    *string `json:"notes"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsValidISODate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be zero-padded YYYY-MM-DD",
		})
	}

	if !validator.IsInSlice(r.Status, PersistedStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, remote, absent, leave",
		})
	}

	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PunchInRequest is the employee self-service check-in for today.
type PunchInRequest struct {
	Status string  `json:"status"` // present or remote
	Notes  *string `json:"notes,omitempty"`
}

func (r *PunchInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status == "" {
		r.Status = StatusPresent
	}
	if r.Status != StatusPresent && r.Status != StatusRemote {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present or remote",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatsRequest selects the window for per-user statistics.
type StatsRequest struct {
	UserID    string
	StartDate string
	EndDate   string
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if !validator.IsValidISODate(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be zero-padded YYYY-MM-DD",
		})
	}
	if !validator.IsValidISODate(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be zero-padded YYYY-MM-DD",
		})
	}
	if len(errs) == 0 && r.StartDate > r.EndDate {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Stats summarizes one user's records over a window.
type Stats struct {
	TotalDays           int     `json:"total_days"`
	Present             int     `json:"present"`
	Remote              int     `json:"remote"`
	Absent              int     `json:"absent"`
	Leave               int     `json:"leave"`
	AverageCheckInTime  *string `json:"average_check_in_time"`
	AverageCheckOutTime *string `json:"average_check_out_time"`
	TotalWorkHours      float64 `json:"total_work_hours"`
}

// CalendarCell is one slot of the 7-column month grid. Leading cells with
// Empty set align day 1 to its weekday; their other fields are zero.
type CalendarCell struct {
	Empty    bool    `json:"empty"`
	Day      int     `json:"day,omitempty"`
	Date     string  `json:"date,omitempty"`
	Status   string  `json:"status,omitempty"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Notes    *string `json:"notes"`
	RecordID *string `json:"record_id"`
	IsToday  bool    `json:"is_today"`
}

// DayLookupKind tags the result of a single-day lookup.
type DayLookupKind string

const (
	// DayRecorded: a stored record exists for the date.
	DayRecorded DayLookupKind = "recorded"
	// DayNoRecord: nothing stored and no default applies.
	DayNoRecord DayLookupKind = "no-record"
	// DayDefaultedLeave: nothing stored but the date is today, so the
	// punch-in view presents a synthetic leave record.
	DayDefaultedLeave DayLookupKind = "defaulted-leave"
)

// DayLookupResult is the unified answer for "what happened on this date",
// consumed by both the calendar and punch-in views.
type DayLookupResult struct {
	Kind   DayLookupKind      `json:"kind"`
	Record *DayRecordResponse `json:"record,omitempty"`
}
