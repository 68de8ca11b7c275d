package nav

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// ErrInvariant is wrapped by every error State.Validate reports.
var ErrInvariant = errors.New("navigation invariant violated")

// State is the single source of truth for navigation.
//
// Only a Machine should produce new States. The histories have value
// semantics and DetailRoot is never written through, so copying a State is
// enough to snapshot it.
type State struct {
	MainRoute       router.Route
	MainRequirement router.PaneRequirement
	MenuOpen        bool

	// Primary is the full-screen stack. While it is non-empty its top covers
	// the whole app, menu included.
	Primary router.PaneHistory

	// DetailRoot anchors the right-hand pane of a split main route; Detail
	// holds what was pushed after it.
	DetailRoot *router.Route
	Detail     router.PaneHistory

	// ShowContentFirst is set when a split main route is selected and cleared
	// once its detail pane receives a route. While set, compact width shows
	// the content pane even if a detail root exists.
	ShowContentFirst bool

	Compact   bool
	Landscape bool
	Width     int
}

// NewState returns the start-of-session state: the catalog's default main
// route, empty histories, menu closed.
func NewState(catalog *router.Catalog) State {
	main := catalog.Default()
	req, _ := catalog.RequirementFor(main)
	return State{
		MainRoute:        main,
		MainRequirement:  req,
		ShowContentFirst: req == router.PaneSplit,
	}
}

// IsSplit reports whether the main route wants a detail pane.
func (s State) IsSplit() bool {
	return s.MainRequirement == router.PaneSplit
}

// CanPop reports whether Pop would change anything. Chrome should only offer
// a back affordance when this is true.
func (s State) CanPop() bool {
	return !s.Primary.IsEmpty() || !s.Detail.IsEmpty() || s.DetailRoot != nil
}

// DetailTop returns the route the detail pane shows, if any.
func (s State) DetailTop() *router.Route {
	if top := s.Detail.Top(); top != nil {
		return top
	}
	if s.DetailRoot != nil {
		r := *s.DetailRoot
		return &r
	}
	return nil
}

// RouteFor returns the route a pane renders. The menu pane has no route.
func (s State) RouteFor(pane PaneKind) (router.Route, bool) {
	switch pane {
	case PanePrimary:
		if top := s.Primary.Top(); top != nil {
			return *top, true
		}
	case PaneDetail:
		if top := s.DetailTop(); top != nil {
			return *top, true
		}
	case PaneContent:
		return s.MainRoute, !s.MainRoute.IsZero()
	}
	return router.Route{}, false
}

// Equal compares two states field by field.
func (s State) Equal(o State) bool {
	if (s.DetailRoot == nil) != (o.DetailRoot == nil) {
		return false
	}
	if s.DetailRoot != nil && *s.DetailRoot != *o.DetailRoot {
		return false
	}
	return s.MainRoute == o.MainRoute &&
		s.MainRequirement == o.MainRequirement &&
		s.MenuOpen == o.MenuOpen &&
		s.Primary.Equal(o.Primary) &&
		s.Detail.Equal(o.Detail) &&
		s.ShowContentFirst == o.ShowContentFirst &&
		s.Compact == o.Compact &&
		s.Landscape == o.Landscape &&
		s.Width == o.Width
}

// Validate checks the structural invariants that must hold for every state.
func (s State) Validate() error {
	var errs []error
	if !s.IsSplit() && (s.DetailRoot != nil || !s.Detail.IsEmpty()) {
		errs = append(errs, fmt.Errorf("%w: single-pane route %s has a detail pane", ErrInvariant, s.MainRoute))
	}
	if !s.Detail.IsEmpty() && s.DetailRoot == nil {
		errs = append(errs, fmt.Errorf("%w: detail history %s without a detail root", ErrInvariant, s.Detail))
	}
	if s.MenuOpen && !s.Primary.IsEmpty() {
		errs = append(errs, fmt.Errorf("%w: menu open under full-screen route %s", ErrInvariant, s.Primary.Top()))
	}
	return errors.Join(errs...)
}

func (s State) String() string {
	root := "-"
	if s.DetailRoot != nil {
		root = s.DetailRoot.String()
	}
	return fmt.Sprintf("main=%s(%s) menu=%t primary=%s root=%s detail=%s compact=%t landscape=%t",
		s.MainRoute, s.MainRequirement, s.MenuOpen, s.Primary, root, s.Detail, s.Compact, s.Landscape)
}
