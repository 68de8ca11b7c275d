package lazysplit

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// ConfigError reports a configuration that cannot be turned into a working
// navigation setup: an unreadable file, unknown keys, bad breakpoints or a
// malformed route catalog.
type ConfigError struct {
	Op  string // Stage that failed (e.g., "read", "decode", "catalog")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lazysplit: config %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("lazysplit: config %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsUnknownRoute checks if an error names a route missing from the catalog.
func IsUnknownRoute(err error) bool {
	return errors.Is(err, router.ErrUnknownRoute)
}
