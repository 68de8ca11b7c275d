// Package lazysplit is an adaptive multi-pane navigation controller.
//
// One navigation state drives up to three panes: a menu of main routes, the
// content of the selected main route, and a detail pane for split routes.
// A full-screen history covers all of them. The layout adapts to the width
// class of the window without losing navigation depth.
//
// The sub-packages hold the pieces: router (routes, catalog, pane history),
// nav (state machine, layout resolver, controller), bus (event broadcast),
// i18n (titles), replay (headless scripts) and shell (a terminal renderer).
// This package wires them together from a TOML config.
package lazysplit

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/internal"
)

// Options configures logging before an App is built.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // "debug", "info", "warn" or "error"; LAZYSPLIT_LOG_LEVEL wins when set
	Debug    bool   // Log lazysplit's own decisions (ignored pushes, no-op pops) at debug level
}

// Init sets up logging. Call it once, before New.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetRawLogLevel(level)

	if options.Debug || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
