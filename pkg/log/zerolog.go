package log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	lrerrors "github.com/aross50/465LinRegression/pkg/errors"
)

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger returns a JSON logger writing to w at the given level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	zl := zerolog.New(w).
		Level(toZerologLevel(level)).
		With().
		Timestamp().
		Logger()
	return &ZerologLogger{logger: zl}
}

// Debug implements Logger.Debug.
func (l *ZerologLogger) Debug(msg string, fields ...any) {
	emit(l.logger.Debug(), msg, fields)
}

// Info implements Logger.Info.
func (l *ZerologLogger) Info(msg string, fields ...any) {
	emit(l.logger.Info(), msg, fields)
}

// Warn implements Logger.Warn.
func (l *ZerologLogger) Warn(msg string, fields ...any) {
	emit(l.logger.Warn(), msg, fields)
}

// Error implements Logger.Error. A leading error field is attached with its
// stack trace and, when the error carries structured detail, that detail.
func (l *ZerologLogger) Error(msg string, fields ...any) {
	e := l.logger.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			e = withError(e, err)
			fields = fields[1:]
		}
	}
	emit(e, msg, fields)
}

// With implements Logger.With.
func (l *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{logger: l.logger.With().Fields(fields).Logger()}
}

// Enabled implements Logger.Enabled.
func (l *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	zl := toZerologLevel(level)
	return zl >= l.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// warn logs a warning raised through pkg/errors.Warn.
func (l *ZerologLogger) warn(w error) {
	e := l.logger.Warn()
	var obj zerolog.LogObjectMarshaler
	if errors.As(w, &obj) {
		e = e.EmbedObject(obj)
	}
	e.Msg(w.Error())
}

func emit(e *zerolog.Event, msg string, fields []any) {
	if e == nil {
		return
	}
	if len(fields) > 0 {
		e = e.Fields(fields)
	}
	e.Msg(msg)
}

func withError(e *zerolog.Event, err error) *zerolog.Event {
	e = e.Err(err)
	if st := extractStacktrace(err); st != "" {
		e = e.Str(StacktraceKey, st)
	}
	var obj zerolog.LogObjectMarshaler
	if errors.As(err, &obj) {
		e = e.Object("error.detail", obj)
	}
	return e
}

// extractStacktrace returns the first stack recorded by cockroachdb/errors
// along the wrap chain.
func extractStacktrace(err error) string {
	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		if details := errors.GetSafeDetails(e).SafeDetails; len(details) > 0 {
			return details[0]
		}
	}
	return ""
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ParseLevel converts "debug", "info", "warn" or "error" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, lrerrors.NewValidationError("log_level", "must be one of debug, info, warn, error", s)
	}
}

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewZerologLogger(os.Stderr, LevelWarn)
)

// GetLogger returns the process-wide logger.
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// GetLoggerWithName returns the process-wide logger tagged with a component.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLogger replaces the process-wide logger.
func SetLogger(l Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// SetupLogger installs a zerolog logger writing to w and routes warnings from
// pkg/errors through it. console selects zerolog's human-readable writer.
func SetupLogger(w io.Writer, level string, console bool) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	out := w
	if console {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logger := NewZerologLogger(out, lvl)
	SetLogger(logger)
	lrerrors.SetZerologWarnFunc(logger.warn)
	return nil
}
