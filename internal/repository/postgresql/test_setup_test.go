package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
	testDBErr  error
)

// requireTestDB connects to the database named by TEST_DATABASE_URL, or
// skips the test when none is configured.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
	})
	if testDBErr != nil {
		t.Fatalf("failed to connect to test database: %v", testDBErr)
	}
	return testDB
}

// truncateTables clears test state between cases.
func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()

	tables := []string{
		"refresh_tokens",
		"day_records",
		"users",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

// createTestUser inserts a user row and returns its id.
func createTestUser(t *testing.T, ctx context.Context, db *database.DB, fullName, email string) string {
	t.Helper()

	var userID string
	err := db.QueryRow(ctx, `
		INSERT INTO users (full_name, email, role, joining_date)
		VALUES ($1, $2, 'Engineer', '2024-01-01')
		RETURNING id
	`, fullName, email).Scan(&userID)
	require.NoError(t, err)
	return userID
}
