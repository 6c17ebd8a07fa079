package postgresql

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRows serves a fixed number of rows and then stops with iterErr, the
// way pgx reports a connection dropped mid-iteration.
type stubRows struct {
	remaining int
	iterErr   error
}

func (s *stubRows) Next() bool {
	if s.remaining == 0 {
		return false
	}
	s.remaining--
	return true
}

func (s *stubRows) Scan(dest ...any) error {
	for _, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = "x"
		case *time.Time:
			*v = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		case **time.Time:
			*v = nil
		case **string:
			*v = nil
		}
	}
	return nil
}

func (s *stubRows) Err() error                                   { return s.iterErr }
func (s *stubRows) Close()                                       {}
func (s *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (s *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (s *stubRows) Values() ([]any, error)                       { return nil, nil }
func (s *stubRows) RawValues() [][]byte                          { return nil }
func (s *stubRows) Conn() *pgx.Conn                              { return nil }

func TestScanDayRecordsSurfacesIterationError(t *testing.T) {
	iterErr := errors.New("unexpected EOF")

	records, err := scanDayRecords(&stubRows{remaining: 2, iterErr: iterErr})

	require.Error(t, err)
	assert.ErrorIs(t, err, iterErr)
	assert.Nil(t, records, "a truncated result set must not be returned as success")
}

func TestScanDayRecordsCleanIteration(t *testing.T) {
	records, err := scanDayRecords(&stubRows{remaining: 2})

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "2025-04-01", records[0].Date)
}
