package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/database"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/validator"
	"github.com/checkmate-hq/checkmate-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.DayRecordRepository
}

func NewAttendanceService(db *database.DB, dayRecordRepo attendance.DayRecordRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                  db,
		DayRecordRepository: dayRecordRepo,
	}
}

// userIDFromClaims extracts the authenticated user's id from JWT claims.
func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// PunchIn implements attendance.AttendanceService. Punching in twice on
// the same day replaces the morning record rather than duplicating it; an
// existing check-out survives so a late re-punch cannot erase it.
func (a *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	now := time.Now().UTC()
	date := now.Format("2006-01-02")

	var saved attendance.DayRecord
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		existing, err := a.DayRecordRepository.GetByUserIDInRange(txCtx, userID, date, date)
		if err != nil {
			return err
		}

		record := attendance.DayRecord{
			UserID:  userID,
			Date:    date,
			Status:  req.Status,
			CheckIn: &now,
			Notes:   req.Notes,
		}
		if len(existing) > 0 {
			record.CheckOut = existing[0].CheckOut
			if record.Notes == nil {
				record.Notes = existing[0].Notes
			}
		}

		saved, err = a.DayRecordRepository.Upsert(txCtx, record)
		return err
	})
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	return attendance.ToDayRecordResponse(saved), nil
}

// PunchOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchOut(ctx context.Context) (attendance.DayRecordResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	now := time.Now().UTC()
	date := now.Format("2006-01-02")

	var saved attendance.DayRecord
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		existing, err := a.DayRecordRepository.GetByUserIDInRange(txCtx, userID, date, date)
		if err != nil {
			return err
		}
		if len(existing) == 0 || existing[0].CheckIn == nil {
			return attendance.ErrNotCheckedIn
		}

		record := existing[0]
		record.CheckOut = &now

		saved, err = a.DayRecordRepository.Upsert(txCtx, record)
		return err
	})
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	return attendance.ToDayRecordResponse(saved), nil
}

// GetDocument implements attendance.AttendanceService. A user with no
// records yields an empty document, never a not-found error.
func (a *AttendanceServiceImpl) GetDocument(ctx context.Context, userID string) (attendance.AttendanceDocumentResponse, error) {
	records, err := a.DayRecordRepository.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.AttendanceDocumentResponse{}, err
	}

	return attendance.ToDocumentResponse(userID, records), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, userID string) (attendance.DayLookupResult, error) {
	date := today()

	records, err := a.DayRecordRepository.GetByUserIDInRange(ctx, userID, date, date)
	if err != nil {
		return attendance.DayLookupResult{}, err
	}

	return LookupDay(records, date, date), nil
}

// Upsert implements attendance.AttendanceService. This is the admin
// correction path: any status may replace any other and no chronological
// check is made on the check times.
func (a *AttendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertRequest) (attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	record := attendance.DayRecord{
		UserID: req.UserID,
		Date:   req.Date,
		Status: req.Status,
		Notes:  req.Notes,
	}

	if req.CheckIn != nil {
		t, _ := validator.IsValidDateTime(*req.CheckIn)
		record.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, _ := validator.IsValidDateTime(*req.CheckOut)
		record.CheckOut = &t
	}

	saved, err := a.DayRecordRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	return attendance.ToDayRecordResponse(saved), nil
}

// GetStats implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetStats(ctx context.Context, req attendance.StatsRequest) (attendance.Stats, error) {
	if err := req.Validate(); err != nil {
		return attendance.Stats{}, err
	}

	records, err := a.DayRecordRepository.GetByUserIDInRange(ctx, req.UserID, req.StartDate, req.EndDate)
	if err != nil {
		return attendance.Stats{}, err
	}

	return ComputeStats(records), nil
}

// GetCalendar implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetCalendar(ctx context.Context, userID string, year, month int) ([]attendance.CalendarCell, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, attendance.ErrInvalidDate
	}

	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	startDate := firstOfMonth.Format("2006-01-02")
	endDate := firstOfMonth.AddDate(0, 1, -1).Format("2006-01-02")

	records, err := a.DayRecordRepository.GetByUserIDInRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return ProjectMonth(year, time.Month(month), records, today()), nil
}

// SweepDefaultLeave implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SweepDefaultLeave(ctx context.Context) (int64, error) {
	return a.DayRecordRepository.InsertDefaultLeave(ctx, today())
}
