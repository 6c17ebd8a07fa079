package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestDayRecordRepository_UpsertInsert(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	userID := createTestUser(t, ctx, db, "Alice Johnson", "alice@example.com")
	repo := postgresql.NewDayRecordRepository(db)

	checkIn := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	saved, err := repo.Upsert(ctx, attendance.DayRecord{
		UserID:  userID,
		Date:    "2025-05-01",
		Status:  attendance.StatusPresent,
		CheckIn: timePtr(checkIn),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, "2025-05-01", saved.Date)
	assert.Equal(t, attendance.StatusPresent, saved.Status)
	require.NotNil(t, saved.CheckIn)
	assert.True(t, saved.CheckIn.Equal(checkIn))
	assert.Nil(t, saved.CheckOut)
}

func TestDayRecordRepository_UpsertIsIdempotentOnDate(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	userID := createTestUser(t, ctx, db, "Alice Johnson", "alice@example.com")
	repo := postgresql.NewDayRecordRepository(db)

	first, err := repo.Upsert(ctx, attendance.DayRecord{
		UserID:  userID,
		Date:    "2025-05-01",
		Status:  attendance.StatusPresent,
		CheckIn: timePtr(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, attendance.DayRecord{
		UserID:   userID,
		Date:     "2025-05-01",
		Status:   attendance.StatusRemote,
		CheckIn:  timePtr(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)),
		CheckOut: timePtr(time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	// same row, second call's values win
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusRemote, second.Status)

	records, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusRemote, records[0].Status)
	require.NotNil(t, records[0].CheckOut)
}

func TestDayRecordRepository_RangeQueriesAreInclusive(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	userID := createTestUser(t, ctx, db, "Alice Johnson", "alice@example.com")
	otherID := createTestUser(t, ctx, db, "Bob Smith", "bob@example.com")
	repo := postgresql.NewDayRecordRepository(db)

	dates := []string{"2025-04-30", "2025-05-01", "2025-05-02", "2025-05-03"}
	for _, date := range dates {
		_, err := repo.Upsert(ctx, attendance.DayRecord{
			UserID: userID,
			Date:   date,
			Status: attendance.StatusPresent,
		})
		require.NoError(t, err)
	}
	_, err := repo.Upsert(ctx, attendance.DayRecord{
		UserID: otherID,
		Date:   "2025-05-01",
		Status: attendance.StatusLeave,
	})
	require.NoError(t, err)

	records, err := repo.GetByUserIDInRange(ctx, userID, "2025-05-01", "2025-05-02")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-05-01", records[0].Date)
	assert.Equal(t, "2025-05-02", records[1].Date)

	all, err := repo.GetAllInRange(ctx, "2025-05-01", "2025-05-01")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDayRecordRepository_GetByUserIDEmptyIsNotError(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	userID := createTestUser(t, ctx, db, "Alice Johnson", "alice@example.com")
	repo := postgresql.NewDayRecordRepository(db)

	records, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDayRecordRepository_InsertDefaultLeave(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	aliceID := createTestUser(t, ctx, db, "Alice Johnson", "alice@example.com")
	bobID := createTestUser(t, ctx, db, "Bob Smith", "bob@example.com")
	repo := postgresql.NewDayRecordRepository(db)

	// Alice already marked today; only Bob should get the default
	_, err := repo.Upsert(ctx, attendance.DayRecord{
		UserID: aliceID,
		Date:   "2025-05-01",
		Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	created, err := repo.InsertDefaultLeave(ctx, "2025-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created)

	bobRecords, err := repo.GetByUserID(ctx, bobID)
	require.NoError(t, err)
	require.Len(t, bobRecords, 1)
	assert.Equal(t, attendance.StatusLeave, bobRecords[0].Status)

	aliceRecords, err := repo.GetByUserID(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, aliceRecords, 1)
	assert.Equal(t, attendance.StatusPresent, aliceRecords[0].Status)

	// sweep is idempotent
	created, err = repo.InsertDefaultLeave(ctx, "2025-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), created)
}

func TestDayRecordRepository_DeleteByUserID(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	userID := createTestUser(t, ctx, db, "Alice Johnson", "alice@example.com")
	repo := postgresql.NewDayRecordRepository(db)

	_, err := repo.Upsert(ctx, attendance.DayRecord{
		UserID: userID,
		Date:   "2025-05-01",
		Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByUserID(ctx, userID))

	records, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, records)
}
