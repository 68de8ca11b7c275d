package nav

import (
	"fmt"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// Event is a navigation request. The set of events is closed; Machine.Apply
// knows how to handle every one of them.
type Event interface {
	fmt.Stringer
	isEvent()
}

// SelectMainRoute switches to a top-level destination, discarding all
// drill-in state.
type SelectMainRoute struct {
	Route router.Route
}

// ToggleMenu opens or closes the menu pane.
type ToggleMenu struct{}

// PushFullScreen pushes a route in front of everything.
type PushFullScreen struct {
	Route router.Route
}

// PushIntoSplit pushes a route into the detail pane of a split main route.
type PushIntoSplit struct {
	Route router.Route
}

// Pop goes back one step.
type Pop struct{}

// DeviceClassChanged reports a new width class or orientation. Width is the
// raw window width; zero keeps the last known width.
type DeviceClassChanged struct {
	Compact   bool
	Landscape bool
	Width     int
}

// Navigate routes to a screen using the catalog's default target, or the
// Override target when it is set.
type Navigate struct {
	Route    router.Route
	Override router.Target
}

func (SelectMainRoute) isEvent()    {}
func (ToggleMenu) isEvent()         {}
func (PushFullScreen) isEvent()     {}
func (PushIntoSplit) isEvent()      {}
func (Pop) isEvent()                {}
func (DeviceClassChanged) isEvent() {}
func (Navigate) isEvent()           {}

func (e SelectMainRoute) String() string { return "select " + e.Route.String() }
func (ToggleMenu) String() string        { return "menu" }
func (e PushFullScreen) String() string  { return "push " + e.Route.String() }
func (e PushIntoSplit) String() string   { return "split " + e.Route.String() }
func (Pop) String() string               { return "pop" }

func (e DeviceClassChanged) String() string {
	class, orientation := "regular", "portrait"
	if e.Compact {
		class = "compact"
	}
	if e.Landscape {
		orientation = "landscape"
	}
	return fmt.Sprintf("device %s %s %d", class, orientation, e.Width)
}

func (e Navigate) String() string {
	if e.Override == router.TargetUnset {
		return "nav " + e.Route.String()
	}
	return fmt.Sprintf("nav %s %s", e.Route, e.Override)
}
