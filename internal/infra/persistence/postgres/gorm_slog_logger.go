package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"apparel/config"
	deliverycontext "apparel/internal/delivery/context"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output to slog, preferring the request-scoped
// logger in ctx so query logs carry the request ID.
//
// Expected failures stay out of the error log: a missing row is a 404 and
// a unique violation is how code collisions and duplicate e-mails surface.
type gormSlogLogger struct {
	logger *slog.Logger
	level  gormlogger.LogLevel
	slow   time.Duration
}

// newGormSlogLogger logs every statement in debug mode, otherwise only slow
// and failed ones.
func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{logger: base, level: level, slow: slowQueryThreshold}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, needs gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < needs {
		return
	}
	l.from(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)
	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// classify decides whether and how a finished statement is logged.
func (l *gormSlogLogger) classify(elapsed time.Duration, err error) (slog.Level, string, []slog.Attr, bool) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return 0, "", nil, false
	case err != nil && isUniqueConstraintViolation(err):
		if l.level < gormlogger.Warn {
			return 0, "", nil, false
		}

		return slog.LevelWarn, "GORM constraint violation", []slog.Attr{slog.String("constraint", pgConstraintName(err))}, true
	case err != nil:
		if l.level < gormlogger.Error {
			return 0, "", nil, false
		}

		return slog.LevelError, "GORM query failed", []slog.Attr{slog.String("error", err.Error())}, true
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		return slog.LevelWarn, "GORM slow query", []slog.Attr{slog.Duration("threshold", l.slow)}, true
	case l.level >= gormlogger.Info:
		return slog.LevelDebug, "GORM query", nil, true
	default:
		return 0, "", nil, false
	}
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
