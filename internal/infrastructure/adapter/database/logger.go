package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold marks queries worth a warning.
const slowQueryThreshold = 200 * time.Millisecond

// gormLoggerBridge forwards GORM's internal logging onto the
// application logger so SQL noise shares one sink with everything else.
type gormLoggerBridge struct {
	logger coreport.Logger
	level  gormlogger.LogLevel
}

// NewGormLogger wraps the application logger for GORM
func NewGormLogger(logger coreport.Logger, level string) gormlogger.Interface {
	gormLevel := gormlogger.Warn
	switch level {
	case "debug", "info":
		gormLevel = gormlogger.Info
	case "warn":
		gormLevel = gormlogger.Warn
	case "error":
		gormLevel = gormlogger.Error
	}
	return &gormLoggerBridge{logger: logger, level: gormLevel}
}

func (l *gormLoggerBridge) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLoggerBridge) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.logger.Info(msg, map[string]any{"args": args})
	}
}

func (l *gormLoggerBridge) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.Warn(msg, map[string]any{"args": args})
	}
}

func (l *gormLoggerBridge) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.logger.Error(msg, map[string]any{"args": args})
	}
}

func (l *gormLoggerBridge) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]any{
		"sql":        sql,
		"rows":       rows,
		"elapsed_ms": elapsed.Milliseconds(),
	}

	switch {
	case err != nil && l.level >= gormlogger.Error:
		fields["error"] = err.Error()
		l.logger.Error("Query failed", fields)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		l.logger.Warn("Slow query", fields)
	case l.level >= gormlogger.Info:
		l.logger.Debug("Query executed", fields)
	}
}
