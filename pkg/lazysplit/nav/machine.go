package nav

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/internal"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// Machine holds the transition rules. It is stateless apart from the catalog
// and options, so one Machine can serve any number of States.
type Machine struct {
	catalog *router.Catalog
	log     *slog.Logger
	strict  bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for ignored and rejected events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithStrict makes unknown routes panic instead of being ignored.
// Defaults to constants.IsDevMode().
func WithStrict(strict bool) Option {
	return func(m *Machine) {
		m.strict = strict
	}
}

// NewMachine creates a Machine over the given catalog.
func NewMachine(catalog *router.Catalog, opts ...Option) *Machine {
	m := &Machine{
		catalog: catalog,
		log:     internal.GetInternalLogger(),
		strict:  constants.IsDevMode(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Catalog returns the catalog the machine routes against.
func (m *Machine) Catalog() *router.Catalog {
	return m.catalog
}

// Strict reports whether configuration errors are fatal.
func (m *Machine) Strict() bool {
	return m.strict
}

// Apply is the single transition function: it dispatches an event to the
// matching operation.
func (m *Machine) Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case SelectMainRoute:
		return m.SelectMainRoute(s, e.Route)
	case ToggleMenu:
		return m.ToggleMenu(s)
	case PushFullScreen:
		return m.PushFullScreen(s, e.Route)
	case PushIntoSplit:
		return m.PushIntoSplit(s, e.Route)
	case Pop:
		return m.Pop(s)
	case DeviceClassChanged:
		return m.DeviceClassChanged(s, e.Compact, e.Landscape, e.Width)
	case Navigate:
		return m.Navigate(s, e.Route, e.Override)
	default:
		m.log.Warn("unhandled navigation event", "event", fmt.Sprintf("%T", ev))
		return s
	}
}

// SelectMainRoute makes r the main route. Both histories and the detail root
// are cleared and the menu closes, even when r is already the main route.
func (m *Machine) SelectMainRoute(s State, r router.Route) State {
	spec, err := m.catalog.Lookup(r)
	if err != nil {
		return m.unknownRoute("select", s, err)
	}
	if !spec.Main {
		m.log.Debug("select of non-main route ignored", "route", r.String())
		return s
	}

	next := s
	next.MainRoute = r
	next.MainRequirement = spec.Requirement
	next.MenuOpen = false
	next.Primary.Reset()
	next.Detail.Reset()
	next.DetailRoot = nil
	next.ShowContentFirst = spec.Requirement == router.PaneSplit
	return next
}

// ToggleMenu flips the menu. Opening the menu of a split route on compact
// width drops the detail pane, since the menu replaces the focused pane.
// The menu cannot open while a full-screen route covers the app.
func (m *Machine) ToggleMenu(s State) State {
	next := s
	if s.MenuOpen {
		next.MenuOpen = false
		return next
	}

	if !s.Primary.IsEmpty() {
		m.log.Debug("menu toggle ignored under full-screen route", "top", s.Primary.Top().String())
		return s
	}
	next.MenuOpen = true
	if s.IsSplit() && s.Compact {
		next.DetailRoot = nil
		next.Detail.Reset()
	}
	return next
}

// PushFullScreen pushes r onto the primary history and closes the menu.
func (m *Machine) PushFullScreen(s State, r router.Route) State {
	if _, err := m.catalog.Lookup(r); err != nil {
		return m.unknownRoute("push", s, err)
	}

	next := s
	next.MenuOpen = false
	if !next.Primary.Push(r) {
		m.log.Debug("duplicate push ignored", "pane", PanePrimary.String(), "route", r.String())
	}
	return next
}

// PushIntoSplit pushes r into the detail pane of a split main route: the
// first push sets the detail root, later pushes stack on top of it.
//
// On compact width there is no detail pane to receive r, and while a
// full-screen route is showing the user is looking at that stack, so in both
// cases r goes to the primary history instead.
func (m *Machine) PushIntoSplit(s State, r router.Route) State {
	if _, err := m.catalog.Lookup(r); err != nil {
		return m.unknownRoute("split", s, err)
	}
	if !s.IsSplit() {
		m.log.Debug("split push on single-pane route ignored", "main", s.MainRoute.String(), "route", r.String())
		return s
	}
	if s.Compact || !s.Primary.IsEmpty() {
		return m.PushFullScreen(s, r)
	}

	next := s
	switch {
	case s.DetailRoot == nil:
		root := r
		next.DetailRoot = &root
		next.ShowContentFirst = false
	case s.Detail.IsEmpty() && *s.DetailRoot == r:
		m.log.Debug("duplicate push ignored", "pane", PaneDetail.String(), "route", r.String())
	default:
		if !next.Detail.Push(r) {
			m.log.Debug("duplicate push ignored", "pane", PaneDetail.String(), "route", r.String())
		}
	}
	return next
}

// Pop goes back one step: the primary history first, since it sits in front
// of everything, then the detail history, then the detail root. With nothing
// left to pop the state is returned unchanged.
func (m *Machine) Pop(s State) State {
	next := s
	switch {
	case next.Primary.Pop():
	case next.Detail.Pop():
	case next.DetailRoot != nil:
		next.DetailRoot = nil
	default:
		m.log.Debug("pop with empty histories ignored")
	}
	return next
}

// DeviceClassChanged records a new width class and orientation. Histories are
// never touched, so rotating the device keeps navigation depth. Any compact
// notification closes a menu left open over a single-pane route, whether or
// not the previous class was already compact.
func (m *Machine) DeviceClassChanged(s State, compact, landscape bool, width int) State {
	next := s
	next.Compact = compact
	next.Landscape = landscape
	if width > 0 {
		next.Width = width
	}
	if compact && s.MenuOpen && !s.IsSplit() {
		next.MenuOpen = false
	}
	return next
}

// Navigate sends r where it belongs. A main route aimed at the primary
// history becomes the new main route. Otherwise the target (override, or the
// catalog default) decides: primary pushes full screen, detail pushes into
// the split when there is one and full screen when the main route is single.
func (m *Machine) Navigate(s State, r router.Route, override router.Target) State {
	spec, err := m.catalog.Lookup(r)
	if err != nil {
		return m.unknownRoute("nav", s, err)
	}

	target := spec.Target
	if override != router.TargetUnset {
		target = override
	}

	switch {
	case spec.Main && target == router.TargetPrimary:
		return m.SelectMainRoute(s, r)
	case target == router.TargetDetail && s.IsSplit():
		return m.PushIntoSplit(s, r)
	default:
		return m.PushFullScreen(s, r)
	}
}

func (m *Machine) unknownRoute(op string, s State, err error) State {
	if m.strict {
		panic(fmt.Errorf("nav: %s: %w", op, err))
	}
	m.log.Error("navigation to unknown route ignored", "op", op, "error", err)
	return s
}
