package logging

import (
	"sync"
)

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Default returns the process-wide logger, building a console-only
// logger from config.Default() on first use.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		// The default config always validates
		defaultLogger, _ = New(nil)
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger and returns the previous
// one, or nil if none existed.
func SetDefault(l *Logger) *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultLogger
	defaultLogger = l
	return prev
}
