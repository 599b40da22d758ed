package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log   *zap.Logger
	sugar *zap.SugaredLogger
)

// SetupLogger initializes the process-wide logger. Level and format come from
// the LOG_LEVEL and LOG_FORMAT environment variables ("info"/"json" defaults).
func SetupLogger() error {
	return SetupLoggerWith(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// SetupLoggerWith initializes the logger with an explicit level ("debug",
// "info", "warn", "error") and format ("json" or "console").
func SetupLoggerWith(level string, format string) error {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	base = base.With(zap.String("service_name", "village-admin-service"))
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		base = base.With(zap.String("hostname", hostname))
	}

	log = base
	sugar = base.Sugar()
	return nil
}

// L returns the structured logger for call sites that log fields directly.
func L() *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log
}

// Info logs at info level with printf-style formatting.
func Info(format string, v ...interface{}) {
	s().Infof(format, v...)
}

// Warning logs at warn level with printf-style formatting.
func Warning(format string, v ...interface{}) {
	s().Warnf(format, v...)
}

// Error logs at error level with printf-style formatting.
func Error(format string, v ...interface{}) {
	s().Errorf(format, v...)
}

func s() *zap.SugaredLogger {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return sugar
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
