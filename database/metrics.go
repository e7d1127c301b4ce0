package database

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"gorm.io/gorm/logger"
)

var (
	queriesTotal uint64
	queryErrors  uint64
	busyErrors   uint64
	lockedErrors uint64
)

// Stats is a snapshot of the query counters
type Stats struct {
	Queries      uint64 `json:"queries_total"`
	Errors       uint64 `json:"query_errors_total"`
	BusyErrors   uint64 `json:"sqlite_busy_errors_total"`
	LockedErrors uint64 `json:"sqlite_locked_errors_total"`
}

// metricsLogger wraps the GORM logger and counts queries as they are traced.
type metricsLogger struct {
	inner logger.Interface
}

func (l metricsLogger) LogMode(level logger.LogLevel) logger.Interface {
	return metricsLogger{inner: l.inner.LogMode(level)}
}

func (l metricsLogger) Info(ctx context.Context, s string, args ...interface{}) {
	l.inner.Info(ctx, s, args...)
}

func (l metricsLogger) Warn(ctx context.Context, s string, args ...interface{}) {
	l.inner.Warn(ctx, s, args...)
}

func (l metricsLogger) Error(ctx context.Context, s string, args ...interface{}) {
	l.inner.Error(ctx, s, args...)
}

func (l metricsLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	recordQuery(err)
	l.inner.Trace(ctx, begin, fc, err)
}

func recordQuery(err error) {
	atomic.AddUint64(&queriesTotal, 1)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	atomic.AddUint64(&queryErrors, 1)

	busy, locked := classifySQLiteError(err)
	if busy {
		atomic.AddUint64(&busyErrors, 1)
	}
	if locked {
		atomic.AddUint64(&lockedErrors, 1)
	}
}

func classifySQLiteError(err error) (busy bool, locked bool) {
	if err == nil {
		return false, false
	}
	msg := strings.ToLower(err.Error())
	busy = strings.Contains(msg, "sqlite_busy") || strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy timeout")
	locked = strings.Contains(msg, "sqlite_locked") || strings.Contains(msg, "database table is locked")
	return busy, locked
}

// CurrentStats returns the query counters accumulated since start
func CurrentStats() Stats {
	return Stats{
		Queries:      atomic.LoadUint64(&queriesTotal),
		Errors:       atomic.LoadUint64(&queryErrors),
		BusyErrors:   atomic.LoadUint64(&busyErrors),
		LockedErrors: atomic.LoadUint64(&lockedErrors),
	}
}

// Up pings the database, bounding the check to 200ms when ctx has no deadline.
func Up(ctx context.Context) bool {
	if DB == nil {
		return false
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return false
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()
	}

	return sqlDB.PingContext(ctx) == nil
}
