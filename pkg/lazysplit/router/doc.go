// Package router describes where screens live: the static route catalog and
// the per-pane back-stacks.
//
// A Route names a screen and carries an optional payload. Routes are plain
// values and compare with ==, so two routes with the same identifier and
// payload are the same route.
//
// The Catalog is the one piece of configuration the navigation core needs. It
// answers two questions for any registered route: how many panes the route
// needs when it is the main route (PaneSingle or PaneSplit), and which history
// a freshly pushed route lands in by default (TargetPrimary or TargetDetail).
//
// # Basic Usage
//
//	const (
//	    Home     router.RouteID = "home"
//	    Settings router.RouteID = "settings"
//	    Detail   router.RouteID = "detail"
//	)
//
//	catalog, err := router.NewCatalog(
//	    router.RouteSpec{ID: Home, Main: true},
//	    router.RouteSpec{ID: Settings, Main: true, Requirement: router.PaneSplit},
//	    router.RouteSpec{ID: Detail},
//	)
//	if err != nil {
//	    return err
//	}
//
//	req, err := catalog.RequirementFor(router.NewRoute(Settings)) // PaneSplit
//
// # Pane History
//
// PaneHistory is the back-stack of one pane, oldest first. Pushing the route
// that is already on top is rejected, so a double tap never stacks the same
// screen twice. Popping an empty history reports false instead of failing.
//
// PaneHistory has value semantics: copying it and mutating the copy never
// changes the original.
package router
