// Package nav is the pane-visibility and history state machine behind the
// lazysplit shell.
//
// All navigation state lives in one value, State. A Machine turns a State and
// an event into the next State; it never mutates its input, so callers can
// keep old snapshots around and compare them. A Resolver derives the visible
// layout (which panes, which one has focus, menu density, chrome) from a
// State in one pure function.
//
// # Basic Usage
//
//	catalog := router.MustCatalog(...)
//	m := nav.NewMachine(catalog)
//	s := nav.NewState(catalog)
//
//	s = m.SelectMainRoute(s, router.NewRoute("settings"))
//	s = m.PushIntoSplit(s, router.NewRoute("detail"))
//	plan := nav.NewResolver(140).Resolve(s)
//
// # Controller
//
// Applications hold exactly one Controller. It owns the current State and
// applies events one at a time, whether they come from direct calls to Apply
// or from a queue drained by Listen. Two events are never applied against the
// same snapshot.
//
//	ctrl := nav.NewController(m, nav.DefaultBreakpoints().Resolver(), s)
//	ctrl.Apply(nav.ToggleMenu{})
//	if ctrl.CanPop() {
//	    // render a back button
//	}
//
// # Failure Semantics
//
// Every operation returns a valid State. Operations that make no sense for
// the current state (popping an empty stack, pushing into the detail pane of
// a single-pane route) return the state unchanged. The only hard error is a
// route missing from the catalog: in development mode (LAZYSPLIT_ENV=DEV or
// WithStrict) the machine panics, otherwise it logs and ignores the event.
package nav
