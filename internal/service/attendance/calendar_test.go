package attendance

import (
	"testing"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestProjectMonth_GridShape(t *testing.T) {
	// April 2025 starts on a Tuesday, so two placeholders pad the first week
	cells := ProjectMonth(2025, time.April, nil, "2025-04-15")

	assert.Len(t, cells, 32)
	assert.True(t, cells[0].Empty)
	assert.True(t, cells[1].Empty)

	dayCells := 0
	for _, cell := range cells {
		if !cell.Empty {
			dayCells++
		}
	}
	assert.Equal(t, 30, dayCells)

	assert.Equal(t, 1, cells[2].Day)
	assert.Equal(t, "2025-04-01", cells[2].Date)
	assert.Equal(t, 30, cells[31].Day)
	assert.Equal(t, "2025-04-30", cells[31].Date)
}

func TestProjectMonth_NoLeadingPadding(t *testing.T) {
	// June 2025 starts on a Sunday
	cells := ProjectMonth(2025, time.June, nil, "2025-01-01")

	assert.Len(t, cells, 30)
	assert.False(t, cells[0].Empty)
	assert.Equal(t, 1, cells[0].Day)
}

func TestProjectMonth_DefaultsToNoData(t *testing.T) {
	cells := ProjectMonth(2025, time.April, nil, "2025-04-15")

	for _, cell := range cells {
		if cell.Empty {
			continue
		}
		assert.Equal(t, attendance.StatusNoData, cell.Status)
		assert.Nil(t, cell.RecordID)
	}
}

func TestProjectMonth_PlacesRecords(t *testing.T) {
	records := []attendance.DayRecord{
		{
			ID:       "rec-1",
			Date:     "2025-04-03",
			Status:   attendance.StatusPresent,
			CheckIn:  mustTime(t, "2025-04-03T09:00:00Z"),
			CheckOut: mustTime(t, "2025-04-03T17:00:00Z"),
		},
		{
			ID:     "rec-2",
			Date:   "2025-04-10",
			Status: attendance.StatusLeave,
		},
	}

	cells := ProjectMonth(2025, time.April, records, "2025-04-15")

	// offset 2 for the leading placeholders
	third := cells[2+2]
	assert.Equal(t, "2025-04-03", third.Date)
	assert.Equal(t, attendance.StatusPresent, third.Status)
	if assert.NotNil(t, third.RecordID) {
		assert.Equal(t, "rec-1", *third.RecordID)
	}
	assert.NotNil(t, third.CheckIn)
	assert.NotNil(t, third.CheckOut)

	tenth := cells[2+9]
	assert.Equal(t, attendance.StatusLeave, tenth.Status)
	assert.Nil(t, tenth.CheckIn)
}

func TestProjectMonth_MarksToday(t *testing.T) {
	cells := ProjectMonth(2025, time.April, nil, "2025-04-15")

	for _, cell := range cells {
		if cell.Date == "2025-04-15" {
			assert.True(t, cell.IsToday)
		} else {
			assert.False(t, cell.IsToday)
		}
	}
}

func TestProjectMonth_TodayOutsideMonth(t *testing.T) {
	cells := ProjectMonth(2025, time.April, nil, "2025-05-02")

	for _, cell := range cells {
		assert.False(t, cell.IsToday)
	}
}

func TestProjectMonth_DatePrefixMatch(t *testing.T) {
	// stored dates sometimes carry a time component; the grid still
	// matches them to their day
	records := []attendance.DayRecord{
		{ID: "rec-1", Date: "2025-04-07T00:00:00Z", Status: attendance.StatusRemote},
	}

	cells := ProjectMonth(2025, time.April, records, "2025-04-15")

	seventh := cells[2+6]
	assert.Equal(t, "2025-04-07", seventh.Date)
	assert.Equal(t, attendance.StatusRemote, seventh.Status)
}

func TestLookupDay(t *testing.T) {
	records := []attendance.DayRecord{
		{
			ID:      "rec-1",
			Date:    "2025-04-14",
			Status:  attendance.StatusPresent,
			CheckIn: mustTime(t, "2025-04-14T09:00:00Z"),
		},
	}

	tests := []struct {
		name     string
		date     string
		today    string
		wantKind attendance.DayLookupKind
	}{
		{
			name:     "recorded day",
			date:     "2025-04-14",
			today:    "2025-04-15",
			wantKind: attendance.DayRecorded,
		},
		{
			name:     "past day without record",
			date:     "2025-04-10",
			today:    "2025-04-15",
			wantKind: attendance.DayNoRecord,
		},
		{
			name:     "today without record defaults to leave",
			date:     "2025-04-15",
			today:    "2025-04-15",
			wantKind: attendance.DayDefaultedLeave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LookupDay(records, tt.date, tt.today)
			assert.Equal(t, tt.wantKind, result.Kind)

			switch tt.wantKind {
			case attendance.DayRecorded:
				if assert.NotNil(t, result.Record) {
					assert.Equal(t, "rec-1", result.Record.ID)
				}
			case attendance.DayDefaultedLeave:
				if assert.NotNil(t, result.Record) {
					assert.Equal(t, attendance.StatusLeave, result.Record.Status)
					assert.Equal(t, tt.date, result.Record.Date)
				}
			case attendance.DayNoRecord:
				assert.Nil(t, result.Record)
			}
		})
	}
}
