package nav

import (
	"io"
	"log/slog"
	"testing"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

var (
	home     = router.NewRoute("home")
	other    = router.NewRoute("other")
	settings = router.NewRoute("settings")
	detail   = router.NewRoute("detail")
	subX     = router.WithPayload("subdetail", "x")
	subY     = router.WithPayload("subdetail", "y")
	about    = router.NewRoute("about")
	unknown  = router.NewRoute("nowhere")

	mainRoutes = []router.Route{home, other, settings}
	allRoutes  = []router.Route{home, other, settings, detail, subX, subY, about}
)

func testCatalog() *router.Catalog {
	return router.MustCatalog(
		router.RouteSpec{ID: "home", Main: true},
		router.RouteSpec{ID: "other", Main: true},
		router.RouteSpec{ID: "settings", Main: true, Requirement: router.PaneSplit},
		router.RouteSpec{ID: "detail"},
		router.RouteSpec{ID: "subdetail"},
		router.RouteSpec{ID: "about", Target: router.TargetPrimary},
	)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMachine() *Machine {
	return NewMachine(testCatalog(), WithStrict(false), WithLogger(quietLogger()))
}

// run applies events in order starting from the catalog's initial state.
func run(t testing.TB, m *Machine, events ...Event) State {
	t.Helper()
	s := NewState(m.Catalog())
	for _, ev := range events {
		s = m.Apply(s, ev)
		if err := s.Validate(); err != nil {
			t.Fatalf("after %s: %v", ev, err)
		}
	}
	return s
}

func routeOf(t testing.TB, r *router.Route) router.Route {
	t.Helper()
	if r == nil {
		t.Fatal("expected a route, got nil")
	}
	return *r
}
