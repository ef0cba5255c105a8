package sfoglia

import (
	"log/slog"

	"github.com/dvecchia/sfoglia/pkg/sfoglia/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the shared structured logger.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the shared logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g. "debug",
// "info", "error").
func SetRawLogLevel(level string) {
	internal.SetLogLevel(internal.ParseLevel(level))
}

// CloseLogger closes the log file, if one was opened. Call once at program
// exit, after the last Core is closed.
func CloseLogger() {
	internal.CloseLogger()
}
