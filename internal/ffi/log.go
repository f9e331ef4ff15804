package ffi

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger installs a logger for bootstrap and loader diagnostics. The
// default is a no-op logger; passing nil is ignored.
func SetLogger(l *zap.Logger) {
	if l != nil {
		pkgLogger.Store(l)
	}
}

func logger() *zap.Logger {
	return pkgLogger.Load()
}
