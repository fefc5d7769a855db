// Package applog configures the structured logger used by cmd/tbtctl and
// internal/runner: human-readable console output by default, JSON under
// --debug, with optional rotation to a file via lumberjack. Grounded on
// other_examples/manifests/y3owk1n-neru's zap+lumberjack pairing, the
// pack's only teacher-adjacent CLI-plus-logger dependency set.
package applog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a *zap.SugaredLogger. Banner and progress lines go through
// Info; per-cell detail (when it exists) goes through Debug.
type Logger struct {
	*zap.SugaredLogger

	base *zap.Logger
}

// New builds a Logger. debug selects JSON encoding and Debug level
// instead of console encoding and Info level. When logPath is non-empty,
// output is additionally rotated into that file via lumberjack; stdout
// always receives a copy.
func New(debug bool, logPath string) *Logger {
	level := zapcore.InfoLevel
	encoder := zapcore.NewConsoleEncoder(consoleEncoderConfig())
	if debug {
		level = zapcore.DebugLevel
		encoder = zapcore.NewJSONEncoder(jsonEncoderConfig())
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if logPath != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)
	base := zap.New(core)

	return &Logger{SugaredLogger: base.Sugar(), base: base}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg
}
