package fixtures

import (
	"fmt"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

// seedNamespace makes seeded ids deterministic, so re-running the seeder
// updates the same rows instead of piling up duplicates.
var seedNamespace = uuid.MustParse("7a2f8f60-1f2e-4c4b-9a2e-3d5b1c9e0a11")

func seedID(key string) string {
	return uuid.NewSHA1(seedNamespace, []byte(key)).String()
}

// SampleUsers returns the demo team.
func SampleUsers() []user.User {
	return []user.User{
		{
			ID:          seedID("user/admin@example.com"),
			FullName:    "Admin User",
			Email:       "admin@example.com",
			Role:        "Administrator",
			JoiningDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			IsAdmin:     true,
		},
		{
			ID:          seedID("user/alice@example.com"),
			FullName:    "Alice Johnson",
			Email:       "alice@example.com",
			Role:        "Frontend Developer",
			JoiningDate: time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          seedID("user/bob@example.com"),
			FullName:    "Bob Smith",
			Email:       "bob@example.com",
			Role:        "Backend Developer",
			JoiningDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          seedID("user/carol@example.com"),
			FullName:    "Carol Davis",
			Email:       "carol@example.com",
			Role:        "Designer",
			JoiningDate: time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC),
			Notes:       strPtr("part-time on fridays"),
		},
	}
}

// SampleDayRecords generates a month of records for every non-admin sample
// user: weekdays rotate through present and remote with slightly varied
// punch times, one absence and one leave day per user, weekends skipped.
func SampleDayRecords(year int, month time.Month) []attendance.DayRecord {
	var records []attendance.DayRecord

	users := SampleUsers()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	for i, u := range users {
		if u.IsAdmin {
			continue
		}

		workday := 0
		for day := 1; day <= daysInMonth; day++ {
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			workday++

			dateStr := date.Format("2006-01-02")
			rec := attendance.DayRecord{
				ID:     seedID(fmt.Sprintf("record/%s/%s", u.Email, dateStr)),
				UserID: u.ID,
				Date:   dateStr,
			}

			switch {
			case workday == 5+i:
				rec.Status = attendance.StatusAbsent
				rec.Notes = strPtr("no show")
			case workday == 12+i:
				rec.Status = attendance.StatusLeave
			default:
				if (workday+i)%3 == 0 {
					rec.Status = attendance.StatusRemote
				} else {
					rec.Status = attendance.StatusPresent
				}
				checkIn := date.Add(time.Duration(9)*time.Hour + time.Duration((workday*7+i*11)%30)*time.Minute)
				checkOut := date.Add(time.Duration(17)*time.Hour + time.Duration((workday*13+i*5)%45)*time.Minute)
				rec.CheckIn = &checkIn
				rec.CheckOut = &checkOut
			}

			records = append(records, rec)
		}
	}

	return records
}
