// Package logger owns the process-wide structured logger. The frame
// loop reports pacing diagnostics at debug level, so console timestamps
// carry milliseconds; the optional file sink rotates through lumberjack
// to keep long sessions bounded.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the shared logger. Init must run before any logging call.
var Log *zap.Logger

// Sugar is the printf-style view of Log.
var Sugar *zap.SugaredLogger

// Rotation bounds for the file sink. A debug session writes a line or
// two per second, so small caps with a longer tail of backups fit
// better than one large file.
const (
	defaultMaxSizeMB = 20
	fileMaxBackups   = 5
	fileMaxAgeDays   = 14
)

// Options selects the log sinks.
type Options struct {
	// Level is one of debug, info, warn or error. Anything else maps
	// to info.
	Level string

	// File enables a rotating log file at this path when non-empty.
	File string

	// Console mirrors output to stdout.
	Console bool

	// MaxSizeMB overrides the file rotation cap when positive.
	MaxSizeMB int
}

// Init wires the logger with console output plus an optional log file.
func Init(level, file string) error {
	return InitWith(Options{Level: level, File: file, Console: true})
}

// InitWith builds the logger from explicit options. Tests leave
// Console off to keep their output clean.
func InitWith(opts Options) error {
	lvl := parseLevel(opts.Level)

	var cores []zapcore.Core

	if opts.Console {
		enc := zapcore.NewConsoleEncoder(encoderConfig(
			zapcore.TimeEncoderOfLayout("15:04:05.000"),
			zapcore.CapitalColorLevelEncoder,
		))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl))
	}

	if opts.File != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = defaultMaxSizeMB
		}
		sink := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: fileMaxBackups,
			MaxAge:     fileMaxAgeDays,
			Compress:   true,
			LocalTime:  true,
		}
		enc := zapcore.NewConsoleEncoder(encoderConfig(
			zapcore.ISO8601TimeEncoder,
			zapcore.CapitalLevelEncoder,
		))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(sink), lvl))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Sugar = Log.Sugar()
	return nil
}

// encoderConfig is shared by the console and file encoders; only the
// time and level rendering differ between them.
func encoderConfig(time zapcore.TimeEncoder, level zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       time,
		EncodeLevel:      level,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}
}

// parseLevel maps a config string to a zap level, defaulting to info.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes buffered entries. Safe to call before Init.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

// Debug logs at debug level.
func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

// Info logs at info level.
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

// Warn logs at warn level.
func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

// Error logs at error level.
func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}
