package photonmap

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/exp/slog"
)

var (
	logMu  sync.RWMutex
	logger *slog.Logger
	once   sync.Once
)

// Logger returns the package logger, creating a stderr text logger on first use.
// The level follows Debug at creation time.
func Logger() *slog.Logger {
	logMu.RLock()
	l := logger
	logMu.RUnlock()
	if l != nil {
		return l
	}
	logMu.Lock()
	defer logMu.Unlock()
	if logger == nil {
		level := slog.LevelInfo
		if Debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	return logger
}

// SetLogger replaces the package logger; nil restores the default on next use.
func SetLogger(l *slog.Logger) {
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	Logger().Debug(fmt.Sprintf(format, args...))
}

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		Logger().Debug(fmt.Sprintf(format, args...))
	})
}
