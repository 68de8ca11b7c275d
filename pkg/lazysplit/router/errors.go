package router

import "errors"

var (
	// ErrUnknownRoute indicates a route identifier that is not in the catalog.
	// It is a configuration bug, not a runtime condition.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrInvalidCatalog indicates a catalog that cannot be built.
	ErrInvalidCatalog = errors.New("invalid route catalog")
)
