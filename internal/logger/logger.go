package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
	initOnce      sync.Once
)

// Init configures the package logger. Safe to call once; later calls
// are no-ops. A nil output discards everything.
func Init(cfg Config, output io.Writer) {
	initOnce.Do(func() {
		if output == nil {
			output = io.Discard
		}
		cfg.process()

		logLevel = new(slog.LevelVar)
		logLevel.Set(cfg.level)

		opts := slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.SourceKey {
					if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
						source.File = filepath.Base(source.File)
					}
				}
				if a.Key == slog.TimeKey {
					a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
				}
				return a
			},
		}
		base := slog.NewTextHandler(output, &opts)
		defaultLogger = slog.New(newFilteringHandler(base, &cfg))
	})
}

// ensureInitialized installs a discarding logger if Init was never
// called, so library code can log unconditionally.
func ensureInitialized() {
	initOnce.Do(func() {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelInfo)
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	})
}

// logAtLevel logs a formatted record, attributing the source location
// to the caller of the exported wrapper.
func logAtLevel(level slog.Level, format string, attrs []slog.Attr, args ...any) {
	ensureInitialized()
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// skip runtime.Callers, logAtLevel and the wrapper
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	r.AddAttrs(attrs...)
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message with printf formatting.
func Debugf(format string, args ...any) {
	logAtLevel(slog.LevelDebug, format, nil, args...)
}

// DebugTagf logs a debug message carrying a filter tag.
func DebugTagf(tag, format string, args ...any) {
	logAtLevel(slog.LevelDebug, format, []slog.Attr{slog.String(tagKey, tag)}, args...)
}

// Infof logs an info message with printf formatting.
func Infof(format string, args ...any) {
	logAtLevel(slog.LevelInfo, format, nil, args...)
}

// Warnf logs a warning with printf formatting.
func Warnf(format string, args ...any) {
	logAtLevel(slog.LevelWarn, format, nil, args...)
}

// Errorf logs an error with printf formatting.
func Errorf(format string, args ...any) {
	logAtLevel(slog.LevelError, format, nil, args...)
}

// Fatalf logs an error then exits.
func Fatalf(format string, args ...any) {
	logAtLevel(slog.LevelError, format, nil, args...)
	os.Exit(1)
}

// Get returns the configured slog.Logger.
func Get() *slog.Logger {
	ensureInitialized()
	return defaultLogger
}
