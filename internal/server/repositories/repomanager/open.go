package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/motorpool/internal/logging"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

// Seams for tests.
var (
	sqlOpen    = sql.Open
	retryBase  = 250 * time.Millisecond
	driverName = "pgx"
)

// Open connects to PostgreSQL and pings until the server answers. Failed
// pings are retried with exponential backoff capped at maxDelay, at most
// retries times, before the last error is returned.
func Open(ctx context.Context, dsn string, retries uint64, maxDelay time.Duration, log logging.Logger) (*sql.DB, error) {
	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	backoff := retry.NewExponential(retryBase)
	if maxDelay > 0 {
		backoff = retry.WithCappedDuration(maxDelay, backoff)
	}
	backoff = retry.WithMaxRetries(retries, backoff)

	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := db.PingContext(ctx); err != nil {
			log.Warn(ctx, "database not ready", "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info(ctx, "Connected to database", "attempts", attempt)
	return db, nil
}
