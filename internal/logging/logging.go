// Package logging builds the application logger. Failures in the storage
// layer are logged and swallowed rather than surfaced to the user, so the log
// file is the only place partial failures become visible.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a SugaredLogger writing JSON to the given file with rotation.
// When debug is true a console core is teed in as well.
func New(path string, debug bool) *zap.SugaredLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     90, // days
		}),
		zap.InfoLevel,
	)

	core := fileCore
	if debug {
		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			zap.DebugLevel,
		)
		core = zapcore.NewTee(fileCore, consoleCore)
	}

	return zap.New(core, zap.AddCaller()).Sugar()
}

// Nop returns a logger that discards everything. Used by tests and as the
// fallback when no logger is supplied.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
