package router_test

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// Route identifiers - use typed constants for compile-time safety
const (
	RouteHome      router.RouteID = "home"
	RouteSettings  router.RouteID = "settings"
	RouteDetail    router.RouteID = "detail"
	RouteSubDetail router.RouteID = "subdetail"
)

// Example demonstrates building a catalog and asking it where routes go.
func Example() {
	catalog := router.MustCatalog(
		router.RouteSpec{ID: RouteHome, Main: true},
		router.RouteSpec{ID: RouteSettings, Main: true, Requirement: router.PaneSplit},
		router.RouteSpec{ID: RouteDetail},
		router.RouteSpec{ID: RouteSubDetail},
	)

	for _, r := range []router.Route{
		router.NewRoute(RouteHome),
		router.NewRoute(RouteSettings),
		router.WithPayload(RouteSubDetail, "x"),
	} {
		req, _ := catalog.RequirementFor(r)
		target, _ := catalog.DefaultTarget(r)
		fmt.Printf("%s: %s, %s\n", r, req, target)
	}

	_, err := catalog.RequirementFor(router.NewRoute("missing"))
	fmt.Println(errors.Is(err, router.ErrUnknownRoute))

	// Output:
	// home: single, primary
	// settings: split, primary
	// subdetail(x): single, detail
	// true
}

// Example_paneHistory demonstrates duplicate-push protection and speculative pops.
func Example_paneHistory() {
	var h router.PaneHistory

	fmt.Println(h.Push(router.NewRoute(RouteDetail)))
	fmt.Println(h.Push(router.NewRoute(RouteDetail))) // repeated tap
	fmt.Println(h.Push(router.WithPayload(RouteSubDetail, "x")))
	fmt.Println(h)

	fmt.Println(h.Pop(), h.Pop(), h.Pop())

	// Output:
	// true
	// false
	// true
	// [detail subdetail(x)]
	// true true false
}
