package badgerfx

import (
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// zapLogger routes badger output to zap. Badger reports routine compaction
// and value log activity at info level, so it is demoted to debug.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{
		sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

// Debugf implements badger.Logger.
func (l *zapLogger) Debugf(format string, a ...any) {
	l.sugar.Debugf(format, a...)
}

// Infof implements badger.Logger.
func (l *zapLogger) Infof(format string, a ...any) {
	l.sugar.Debugf(format, a...)
}

// Warningf implements badger.Logger.
func (l *zapLogger) Warningf(format string, a ...any) {
	l.sugar.Warnf(format, a...)
}

// Errorf implements badger.Logger.
func (l *zapLogger) Errorf(format string, a ...any) {
	l.sugar.Errorf(format, a...)
}

var _ badger.Logger = (*zapLogger)(nil)
