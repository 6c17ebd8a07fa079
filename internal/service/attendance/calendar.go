package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
)

// ProjectMonth expands a (year, month) into the flat Sunday-first grid the
// calendar renders: one empty placeholder per weekday before the 1st, then
// one cell per day of the month. Days with no stored record get the
// synthetic "no-data" status. The caller supplies today's date string so
// the projection stays deterministic.
func ProjectMonth(year int, month time.Month, records []attendance.DayRecord, today string) []attendance.CalendarCell {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()
	firstWeekday := int(firstOfMonth.Weekday()) // 0 = Sunday

	cells := make([]attendance.CalendarCell, 0, firstWeekday+daysInMonth)
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, attendance.CalendarCell{Empty: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)

		cell := attendance.CalendarCell{
			Day:     day,
			Date:    date,
			Status:  attendance.StatusNoData,
			IsToday: date == today,
		}

		if rec, ok := findByDate(records, date); ok {
			resp := attendance.ToDayRecordResponse(rec)
			cell.Status = rec.Status
			cell.CheckIn = resp.CheckIn
			cell.CheckOut = resp.CheckOut
			cell.Notes = rec.Notes
			cell.RecordID = &rec.ID
		}

		cells = append(cells, cell)
	}

	return cells
}

// LookupDay answers "what happened on this date" for the punch-in view.
// A date with no record is NoRecord, except today, which is presented as
// a synthetic defaulted leave record until the user punches in.
func LookupDay(records []attendance.DayRecord, date, today string) attendance.DayLookupResult {
	if rec, ok := findByDate(records, date); ok {
		resp := attendance.ToDayRecordResponse(rec)
		return attendance.DayLookupResult{
			Kind:   attendance.DayRecorded,
			Record: &resp,
		}
	}

	if date == today {
		return attendance.DayLookupResult{
			Kind: attendance.DayDefaultedLeave,
			Record: &attendance.DayRecordResponse{
				Date:   date,
				Status: attendance.StatusLeave,
			},
		}
	}

	return attendance.DayLookupResult{Kind: attendance.DayNoRecord}
}

// findByDate matches on date prefix, tolerating records whose stored date
// still carries a time component.
func findByDate(records []attendance.DayRecord, date string) (attendance.DayRecord, bool) {
	for _, rec := range records {
		if strings.HasPrefix(rec.Date, date) {
			return rec, true
		}
	}
	return attendance.DayRecord{}, false
}
