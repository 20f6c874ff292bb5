package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger

// Init installs the global logger. Debug mode logs everything to stderr in a
// human-readable form; otherwise logging is silenced so the demonstration
// output stays clean.
func Init(debug bool) {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.FatalLevel + 1)
	}

	l, err := config.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = l
}

func SetLogger(l *zap.Logger) {
	Log = l
}

func GetLogger() *zap.Logger {
	if Log == nil {
		Init(false)
	}
	return Log
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
