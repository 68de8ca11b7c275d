package router

import (
	"fmt"
	"strings"
)

// RouteID is a type-safe identifier for screens.
// Applications should define their own RouteID constants.
type RouteID string

// Route identifies a screen plus the data it was opened with.
type Route struct {
	ID      RouteID `json:"id" toml:"id"`
	Payload string  `json:"payload,omitempty" toml:"payload,omitempty"`
}

// NewRoute builds a route without payload.
func NewRoute(id RouteID) Route {
	return Route{ID: id}
}

// WithPayload builds a route carrying a string parameter.
func WithPayload(id RouteID, payload string) Route {
	return Route{ID: id, Payload: payload}
}

// IsZero reports whether the route is unset.
func (r Route) IsZero() bool {
	return r.ID == ""
}

func (r Route) String() string {
	if r.Payload == "" {
		return string(r.ID)
	}
	return fmt.Sprintf("%s(%s)", r.ID, r.Payload)
}

// PaneRequirement says how many panes a main route needs.
type PaneRequirement int

const (
	// PaneSingle routes fill the whole non-menu area.
	PaneSingle PaneRequirement = iota
	// PaneSplit routes need a content pane plus a detail pane to the right.
	PaneSplit
)

func (p PaneRequirement) String() string {
	switch p {
	case PaneSingle:
		return "single"
	case PaneSplit:
		return "split"
	default:
		return "unknown"
	}
}

// ParsePaneRequirement parses "single" or "split". Empty input means single.
func ParsePaneRequirement(s string) (PaneRequirement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return PaneSingle, nil
	case "split":
		return PaneSplit, nil
	default:
		return PaneSingle, fmt.Errorf("%w: pane requirement %q", ErrInvalidCatalog, s)
	}
}

func (p PaneRequirement) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PaneRequirement) UnmarshalText(text []byte) error {
	v, err := ParsePaneRequirement(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Target names the history a pushed route lands in.
type Target int

const (
	// TargetUnset defers to the catalog default: primary for main routes,
	// detail for everything else.
	TargetUnset Target = iota
	// TargetPrimary is the full-screen stack in front of everything.
	TargetPrimary
	// TargetDetail is the right-hand pane of a split main route.
	TargetDetail
)

func (t Target) String() string {
	switch t {
	case TargetPrimary:
		return "primary"
	case TargetDetail:
		return "detail"
	default:
		return "unset"
	}
}

// ParseTarget parses "primary" or "detail". Empty input means unset.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TargetUnset, nil
	case "primary":
		return TargetPrimary, nil
	case "detail":
		return TargetDetail, nil
	default:
		return TargetUnset, fmt.Errorf("%w: target %q", ErrInvalidCatalog, s)
	}
}

func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Target) UnmarshalText(text []byte) error {
	v, err := ParseTarget(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
