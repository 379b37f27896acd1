package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *zap.Logger

const (
	maxSize    = 50 // the maximum size in megabytes of the log file
	maxBackups = 30 // the maximum number of old log files to retain
	maxAge     = 28 // the maximum number of days to retain old log files based on the timestamp encoded in their filename
)

// SetupLogger builds the application logger for mode and stores it in Logger.
// An empty logFile logs to the console only.
func SetupLogger(logFile, mode string) (logger *zap.Logger, err error) {
	if mode == "release" {
		logger, err = NewProductionLogger(logFile)
	} else {
		logger, err = NewDevelopmentLogger(logFile)
	}
	Logger = logger
	return
}

func rotateWriteSyncer(logFile string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSize, // megabytes
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	})
}

// teeFile adds a JSON core writing to logFile at level.
func teeFile(logFile string, encoder zapcore.EncoderConfig, level zapcore.Level) zap.Option {
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		if logFile == "" {
			return c
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoder),
			rotateWriteSyncer(logFile),
			level,
		)
		return zapcore.NewTee(c, core)
	})
}

func NewProductionLogger(logFile string) (*zap.Logger, error) {
	c := zap.NewProductionConfig()

	c.DisableCaller = true
	c.DisableStacktrace = true

	return c.Build(teeFile(logFile, zap.NewProductionEncoderConfig(), zap.InfoLevel))
}

func NewDevelopmentLogger(logFile string) (*zap.Logger, error) {
	c := zap.NewDevelopmentConfig()

	return c.Build(teeFile(logFile, zap.NewDevelopmentEncoderConfig(), zap.DebugLevel))
}
