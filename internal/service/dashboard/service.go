package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/dashboard"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/user"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	userRepo      user.UserRepository
	dayRecordRepo attendance.DayRecordRepository
}

func NewDashboardService(userRepo user.UserRepository, dayRecordRepo attendance.DayRecordRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		userRepo:      userRepo,
		dayRecordRepo: dayRecordRepo,
	}
}

func validateRange(startDate, endDate string) error {
	var errs validator.ValidationErrors

	if !validator.IsValidISODate(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be zero-padded YYYY-MM-DD",
		})
	}
	if !validator.IsValidISODate(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be zero-padded YYYY-MM-DD",
		})
	}
	if len(errs) == 0 && startDate > endDate {
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

// GetTeamOverview implements dashboard.DashboardService. Users and records
// load in parallel; the reduction itself is pure.
func (s *DashboardServiceImpl) GetTeamOverview(ctx context.Context, startDate, endDate string) (dashboard.TeamStats, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return dashboard.TeamStats{}, err
	}

	var (
		users   []user.User
		records []attendance.DayRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.userRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.dayRecordRepo.GetAllInRange(gCtx, startDate, endDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.TeamStats{}, err
	}

	today := time.Now().UTC().Format("2006-01-02")
	return ComputeTeamOverview(users, records, startDate, endDate, today), nil
}

// ComputeTeamOverview reduces all users' records over a range into the
// team overview. Percentages are shares of total records in range, so they
// sum to 100 up to rounding, and are all zero for an empty range.
// NotMarkedToday is computed only when the range is exactly the current
// day; today is caller-supplied to keep the reduction deterministic.
func ComputeTeamOverview(users []user.User, records []attendance.DayRecord, startDate, endDate, today string) dashboard.TeamStats {
	stats := dashboard.TeamStats{
		TotalEmployees: len(users),
		UserStats:      make([]dashboard.UserStats, 0, len(users)),
		NotMarkedToday: []dashboard.UnmarkedUser{},
	}

	recordsByUser := make(map[string][]attendance.DayRecord)
	for _, rec := range records {
		recordsByUser[rec.UserID] = append(recordsByUser[rec.UserID], rec)
	}

	if startDate == endDate && startDate == today {
		for _, u := range users {
			if len(recordsByUser[u.ID]) == 0 {
				stats.NotMarkedToday = append(stats.NotMarkedToday, dashboard.UnmarkedUser{
					UserID:   u.ID,
					FullName: u.FullName,
					Role:     u.Role,
				})
			}
		}
	}

	var totalPresent, totalRemote, totalAbsent, totalLeave, totalRecords int
	var totalWorkHours float64

	for _, u := range users {
		userRecords := recordsByUser[u.ID]

		row := dashboard.UserStats{
			UserID:    u.ID,
			FullName:  u.FullName,
			Role:      u.Role,
			TotalDays: len(userRecords),
		}

		var workHours float64
		for _, rec := range userRecords {
			switch rec.Status {
			case attendance.StatusPresent:
				row.Present++
			case attendance.StatusRemote:
				row.Remote++
			case attendance.StatusAbsent:
				row.Absent++
			case attendance.StatusLeave:
				row.Leave++
			}
			if rec.HasWorkHours() {
				workHours += rec.CheckOut.Sub(*rec.CheckIn).Hours()
			}
		}
		row.WorkHours = round2(workHours)

		totalPresent += row.Present
		totalRemote += row.Remote
		totalAbsent += row.Absent
		totalLeave += row.Leave
		totalWorkHours += workHours
		totalRecords += len(userRecords)

		stats.UserStats = append(stats.UserStats, row)
	}

	if totalRecords > 0 {
		stats.PresentPercentage = round2(float64(totalPresent) / float64(totalRecords) * 100)
		stats.RemotePercentage = round2(float64(totalRemote) / float64(totalRecords) * 100)
		stats.AbsentPercentage = round2(float64(totalAbsent) / float64(totalRecords) * 100)
		stats.LeavePercentage = round2(float64(totalLeave) / float64(totalRecords) * 100)
		stats.AverageWorkHours = round2(totalWorkHours / float64(totalRecords))
	}

	return stats
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
