package linalg

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger installs the logger used for executor lifecycle and dispatch
// diagnostics. A nil logger disables logging. Kernels never log per element.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger.Store(l.Named("linalg"))
}

// Logger returns the package logger, for use by executor implementations in
// sub-packages.
func Logger() *zap.Logger {
	return pkgLogger.Load()
}
