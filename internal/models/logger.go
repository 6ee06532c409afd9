package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// logger forwards gorm's log output to zerolog.
type logger struct {
	Logger zerolog.Logger
}

// LogMode is a no-op, the level of the zerolog logger decides what is
// emitted.
func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, msg string, args ...interface{}) {
	l.Logger.Info().Msgf(msg, args...)
}

func (l *logger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.Logger.Warn().Msgf(msg, args...)
}

func (l *logger) Error(_ context.Context, msg string, args ...interface{}) {
	l.Logger.Error().Msgf(msg, args...)
}

// Trace logs every statement at debug level. Failed statements log at
// error level instead, except for not-found lookups: those are an
// expected outcome that the query callback already turns into
// ErrResourceNotFound for the handler to deal with.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := l.Logger.Debug()
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		event = l.Logger.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", time.Since(begin)).
		Msg("query")
}
