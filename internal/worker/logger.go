package worker

import (
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
)

// zapLogger adapts a zap logger to the Temporal SDK logger interface
type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ log.Logger = (*zapLogger)(nil)

// NewLogger wraps logger for use by the Temporal client and worker
func NewLogger(logger *zap.Logger) log.Logger {
	return &zapLogger{sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *zapLogger) Debug(msg string, keyvals ...interface{}) { l.sugar.Debugw(msg, keyvals...) }
func (l *zapLogger) Info(msg string, keyvals ...interface{})  { l.sugar.Infow(msg, keyvals...) }
func (l *zapLogger) Warn(msg string, keyvals ...interface{})  { l.sugar.Warnw(msg, keyvals...) }
func (l *zapLogger) Error(msg string, keyvals ...interface{}) { l.sugar.Errorw(msg, keyvals...) }
