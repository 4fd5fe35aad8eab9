package log

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file name per concern.
const (
	ErrorLog   string = "error"
	AccessLog  string = "access"
	WatcherLog string = "deposit-watcher"
)

const (
	logDir     = "./logs"
	maxSizeMB  = 100
	maxBackups = 10
	maxAgeDays = 28
)

// Logger is a logger that supports log levels, context and structured
// logging.
type Logger interface {
	// With returns a logger based off the root logger and decorated with
	// the given context and arguments.
	With(ctx context.Context, args ...interface{}) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type logger struct {
	*zap.SugaredLogger
}

// New creates a zap logger writing to ./logs/<logType>.log with
// rotation. In the local environment it logs to stderr instead, with
// colored development output.
func New(env string, logType string) *zap.Logger {
	if env == "local" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		l, _ := cfg.Build()
		return l
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   fmt.Sprintf("%s/%s.log", logDir, logType),
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	})

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(os.Stderr)),
		zap.InfoLevel,
	)

	return zap.New(core, zap.AddCaller())
}

// NewWithZap creates a new logger using the preconfigured zap logger.
func NewWithZap(l *zap.Logger) Logger {
	return &logger{l.Sugar()}
}

// NewForTest returns a new logger and the corresponding observed logs
// which can be used in unit tests to verify log entries.
func NewForTest() (*zap.Logger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.InfoLevel)
	return zap.New(core), recorded
}

func (l *logger) With(_ context.Context, args ...interface{}) Logger {
	if len(args) > 0 {
		return &logger{l.SugaredLogger.With(args...)}
	}
	return l
}
