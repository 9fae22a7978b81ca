// Package logger writes structured logs to a rotated file. Stdout
// belongs to the TUI, so nothing is ever printed there.
package logger

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	global *zap.Logger
	once   sync.Once
)

type Config struct {
	Level      string
	OutputPath string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func DefaultConfig(dir string) Config {
	return Config{
		Level:      "info",
		OutputPath: filepath.Join(dir, "camview.log"),
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 14,
	}
}

// Init sets up the global logger. Safe to call more than once; only the
// first call takes effect.
func Init(cfg Config) {
	once.Do(func() {
		level := zapcore.InfoLevel
		if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}

		encoderConfig := zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}

		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.OutputPath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})

		core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writer, level)
		global = zap.New(core,
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		)
	})
}

func Debug(msg string, fields ...zap.Field) {
	if global != nil {
		global.Debug(msg, fields...)
	}
}

func Info(msg string, fields ...zap.Field) {
	if global != nil {
		global.Info(msg, fields...)
	}
}

func Warn(msg string, fields ...zap.Field) {
	if global != nil {
		global.Warn(msg, fields...)
	}
}

func Error(msg string, fields ...zap.Field) {
	if global != nil {
		global.Error(msg, fields...)
	}
}

// Field helpers so callers don't need to import zap directly.

func String(key, val string) zap.Field { return zap.String(key, val) }

func Int(key string, val int) zap.Field { return zap.Int(key, val) }

func Int64(key string, val int64) zap.Field { return zap.Int64(key, val) }

func ErrField(err error) zap.Field { return zap.Error(err) }

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
