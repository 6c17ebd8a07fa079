package attendance

import (
	"fmt"
	"math"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
)

// ComputeStats reduces a list of day records into counts by status plus
// derived time averages, in a single pass. Records missing either check
// time still count toward their status bucket but contribute nothing to
// the averages. With zero qualifying records the averages stay nil and
// total hours stays 0, so there is never a division by zero.
func ComputeStats(records []attendance.DayRecord) attendance.Stats {
	stats := attendance.Stats{
		TotalDays: len(records),
	}

	var totalCheckInMinutes int
	var totalCheckOutMinutes int
	var totalWorkHours float64
	var workHourRecords int

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusRemote:
			stats.Remote++
		case attendance.StatusAbsent:
			stats.Absent++
		case attendance.StatusLeave:
			stats.Leave++
		}

		if !rec.HasWorkHours() {
			continue
		}

		checkIn := rec.CheckIn.UTC()
		checkOut := rec.CheckOut.UTC()

		totalCheckInMinutes += checkIn.Hour()*60 + checkIn.Minute()
		totalCheckOutMinutes += checkOut.Hour()*60 + checkOut.Minute()
		totalWorkHours += checkOut.Sub(checkIn).Hours()
		workHourRecords++
	}

	if workHourRecords > 0 {
		avgIn := formatMinutes(totalCheckInMinutes / workHourRecords)
		avgOut := formatMinutes(totalCheckOutMinutes / workHourRecords)
		stats.AverageCheckInTime = &avgIn
		stats.AverageCheckOutTime = &avgOut
		stats.TotalWorkHours = roundHours(totalWorkHours)
	}

	return stats
}

// formatMinutes renders minutes-since-midnight as zero-padded HH:MM.
func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// roundHours rounds a duration in hours to two decimal places.
func roundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
