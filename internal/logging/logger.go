// =============================================================================
// Overdue Report Compiler - Logging
// =============================================================================
//
// The log file is the only place in-run progress and failures are reported.
// It is an append-only text log rotated by size, kept next to the executable
// by default so the inventory team can read it after a scheduled run.
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// StartMessage is written once when a logger is created.
const StartMessage = "[START] Program started."

// Options configures the rotating log sink.
type Options struct {
	// FilePath is the log file. Rotated generations are kept beside it.
	FilePath string

	// Level is one of "debug", "info", "warn", "error".
	Level string

	// MaxSizeMB is the rotation threshold.
	MaxSizeMB int

	// MaxBackups is the number of rotated generations kept.
	MaxBackups int

	// Console mirrors every line to stderr.
	Console bool
}

// Logger wraps a zap SugaredLogger with key/value style helpers.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
	closer        io.Closer
}

// New opens the rotating log file and returns a Logger writing to it.
func New(opts Options) (*Logger, error) {
	if opts.FilePath == "" {
		return nil, fmt.Errorf("log file path is required")
	}

	level, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(rotator)}
	if opts.Console {
		sinks = append(sinks, zapcore.Lock(os.Stderr))
	}

	encoder := zapcore.NewConsoleEncoder(encoderConfig())
	out := zapcore.NewMultiWriteSyncer(sinks...)

	// The start line is written at info level whatever the configured level.
	zap.New(zapcore.NewCore(encoder, out, zapcore.InfoLevel)).Named("Root").Info(StartMessage)

	core := zapcore.NewCore(encoder, out, zap.NewAtomicLevelAt(level))
	return &Logger{
		SugaredLogger: zap.New(core).Named("Root").Sugar(),
		closer:        rotator,
	}, nil
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

// FromZap wraps an existing zap logger, e.g. one built with zaptest/observer.
func FromZap(z *zap.Logger) *Logger {
	return &Logger{SugaredLogger: z.Sugar()}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = "  "
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""
	return cfg
}

// Sync flushes buffered entries and closes the log file.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
	if l.closer != nil {
		_ = l.closer.Close()
	}
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...), closer: l.closer}
}
