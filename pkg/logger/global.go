package logger

import (
	"os"
	"sync"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the global logger instance, initializing it from the
// environment on first use.
func GetLogger() *Logger {
	once.Do(func() {
		if globalLogger == nil {
			defaultLevel := "info"
			if os.Getenv("DEBUG") == "true" {
				defaultLevel = "debug"
			} else if os.Getenv("LOG_LEVEL") != "" {
				defaultLevel = os.Getenv("LOG_LEVEL")
			}

			globalLogger = New(Config{
				Level:      defaultLevel,
				Format:     "console",
				Output:     "stdout",
				TimeFormat: "",
			})
		}
	})
	return globalLogger
}

// SetLogger sets the global logger instance
func SetLogger(logger *Logger) {
	globalLogger = logger
}
