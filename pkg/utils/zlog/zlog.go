// Package zlog holds the process-wide sugared logger.
package zlog

import (
	"go.uber.org/zap"
)

// Logger is the logging handle shared across packages.
type Logger = *zap.SugaredLogger

var dft Logger = zap.NewNop().Sugar()

// Set installs the process logger. Call it once from main before serving.
func Set(logger Logger) {
	if logger != nil {
		dft = logger
	}
}

// Get returns the current process logger, a nop until Set is called.
func Get() Logger {
	return dft
}
