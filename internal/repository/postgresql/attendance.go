package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dayRecordRepository struct {
	db *database.DB
}

func NewDayRecordRepository(db *database.DB) attendance.DayRecordRepository {
	return &dayRecordRepository{db: db}
}

// Upsert implements attendance.DayRecordRepository. The unique
// (user_id, date) index makes the insert-or-replace a single atomic
// statement, so concurrent editors cannot produce duplicate day rows or
// lose each other's committed writes.
func (r *dayRecordRepository) Upsert(ctx context.Context, record attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_records (user_id, date, status, check_in, check_out, notes)
		VALUES ($1, $2::date, $3, $4, $5, $6)
		ON CONFLICT (user_id, date) DO UPDATE SET
			status     = EXCLUDED.status,
			check_in   = EXCLUDED.check_in,
			check_out  = EXCLUDED.check_out,
			notes      = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, date, created_at, updated_at
	`

	var date time.Time
	err := q.QueryRow(ctx, query,
		record.UserID,
		record.Date,
		record.Status,
		record.CheckIn,
		record.CheckOut,
		record.Notes,
	).Scan(&record.ID, &date, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to upsert day record: %w", err)
	}

	record.Date = date.Format("2006-01-02")
	return record, nil
}

// GetByUserID implements attendance.DayRecordRepository.
func (r *dayRecordRepository) GetByUserID(ctx context.Context, userID string) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, status, check_in, check_out, notes, created_at, updated_at
		FROM day_records
		WHERE user_id = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query day records: %w", err)
	}
	defer rows.Close()

	return scanDayRecords(rows)
}

// GetByUserIDInRange implements attendance.DayRecordRepository.
func (r *dayRecordRepository) GetByUserIDInRange(ctx context.Context, userID, startDate, endDate string) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, status, check_in, check_out, notes, created_at, updated_at
		FROM day_records
		WHERE user_id = $1
		  AND date >= $2::date
		  AND date <= $3::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query day records in range: %w", err)
	}
	defer rows.Close()

	return scanDayRecords(rows)
}

// GetAllInRange implements attendance.DayRecordRepository.
func (r *dayRecordRepository) GetAllInRange(ctx context.Context, startDate, endDate string) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, status, check_in, check_out, notes, created_at, updated_at
		FROM day_records
		WHERE date >= $1::date
		  AND date <= $2::date
		ORDER BY user_id, date ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query day records in range: %w", err)
	}
	defer rows.Close()

	return scanDayRecords(rows)
}

// InsertDefaultLeave implements attendance.DayRecordRepository. Existing
// rows win: the conflict clause leaves records already punched untouched.
func (r *dayRecordRepository) InsertDefaultLeave(ctx context.Context, date string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_records (user_id, date, status)
		SELECT id, $1::date, 'leave'
		FROM users
		ON CONFLICT (user_id, date) DO NOTHING
	`

	commandTag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to insert default leave records: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// DeleteByUserID implements attendance.DayRecordRepository.
func (r *dayRecordRepository) DeleteByUserID(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM day_records WHERE user_id = $1`

	if _, err := q.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete day records: %w", err)
	}

	return nil
}

func scanDayRecords(rows pgx.Rows) ([]attendance.DayRecord, error) {
	records := make([]attendance.DayRecord, 0)
	for rows.Next() {
		var rec attendance.DayRecord
		var date time.Time
		err := rows.Scan(
			&rec.ID, &rec.UserID, &date, &rec.Status, &rec.CheckIn, &rec.CheckOut,
			&rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day record: %w", err)
		}
		rec.Date = date.Format("2006-01-02")
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day records: %w", err)
	}
	return records, nil
}
