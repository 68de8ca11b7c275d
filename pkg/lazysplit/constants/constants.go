// Package constants defines shared constants, types, and configuration values
// used throughout the lazysplit navigation shell.
package constants

import (
	"os"
	"strings"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// EnvironmentEnvVar selects the build flavour. Set it to Development to make
// configuration bugs (unknown routes, broken invariants) fatal.
const EnvironmentEnvVar = "LAZYSPLIT_ENV"

// LogLevelEnvVar overrides the configured log level.
const LogLevelEnvVar = "LAZYSPLIT_LOG_LEVEL"

// IsDevMode returns true if running in development mode (LAZYSPLIT_ENV=DEV).
func IsDevMode() bool {
	return strings.EqualFold(os.Getenv(EnvironmentEnvVar), Development)
}

// VirtualButton represents an abstract navigation input, mapped from physical keys.
// This abstraction lets the shell bind different keyboards to the same intents.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonMenu
	VirtualButtonQuit
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Default breakpoints, in terminal columns.
const (
	DefaultCompactMaxWidth  = 99  // <= 99 columns shows one pane at a time
	DefaultExpandedMinWidth = 140 // >= 140 columns renders the menu beside content
	DefaultLandscapeRatio   = 2.0 // width/height above this counts as landscape (cells are ~2:1)
)

// DefaultBusBuffer is the per-subscriber queue length of the event bus.
const DefaultBusBuffer = 16
