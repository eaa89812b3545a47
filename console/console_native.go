//go:build !(js && wasm)

package console

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Native builds have no browser console; messages go to a zap logger.
// The default logger discards everything.

var logger atomic.Pointer[zap.SugaredLogger]

func init() {
	logger.Store(zap.NewNop().Sugar())
}

// SetLogger routes Log, Warn and Error to l. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.WithOptions(zap.AddCallerSkip(1)).Sugar())
}

// Log writes args at info level.
func Log(args ...any) {
	logger.Load().Infoln(args...)
}

// Warn writes args at warn level.
func Warn(args ...any) {
	logger.Load().Warnln(args...)
}

// Error writes args at error level.
func Error(args ...any) {
	logger.Load().Errorln(args...)
}
