package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func stubOpen(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	origOpen, origBase := sqlOpen, retryBase
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		assert.Equal(t, "postgres://db", dsn)
		return db, nil
	}
	retryBase = time.Millisecond
	t.Cleanup(func() {
		sqlOpen, retryBase = origOpen, origBase
		db.Close()
	})

	return mock
}

func TestOpen_RetriesUntilReady(t *testing.T) {
	mock := stubOpen(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	db, err := Open(context.Background(), "postgres://db", 5, 5*time.Millisecond, nopLogger{})
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_GivesUpAfterRetries(t *testing.T) {
	mock := stubOpen(t)
	for range 3 {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}
	mock.ExpectClose()

	db, err := Open(context.Background(), "postgres://db", 2, 5*time.Millisecond, nopLogger{})
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_CancelledContext(t *testing.T) {
	mock := stubOpen(t)
	mock.ExpectClose()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, "postgres://db", 5, time.Second, nopLogger{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_DriverError(t *testing.T) {
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("unknown driver") }

	_, err := Open(context.Background(), "x", 1, time.Second, nopLogger{})
	assert.ErrorContains(t, err, "unknown driver")
}
