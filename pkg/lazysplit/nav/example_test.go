package nav_test

import (
	"fmt"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

func Example() {
	catalog := router.MustCatalog(
		router.RouteSpec{ID: "home", Main: true},
		router.RouteSpec{ID: "settings", Main: true, Requirement: router.PaneSplit},
		router.RouteSpec{ID: "detail"},
	)
	machine := nav.NewMachine(catalog, nav.WithStrict(false))
	ctrl := nav.NewController(machine, nav.NewResolver(140), nav.NewState(catalog))

	ctrl.Apply(nav.DeviceClassChanged{Width: 160, Landscape: true})
	ctrl.Apply(nav.SelectMainRoute{Route: router.NewRoute("settings")})
	ctrl.Apply(nav.Navigate{Route: router.NewRoute("detail")})

	plan := ctrl.CurrentLayoutPlan()
	fmt.Println(plan.Visible, plan.Focus)

	ctrl.Apply(nav.DeviceClassChanged{Compact: true, Width: 60})
	plan = ctrl.CurrentLayoutPlan()
	fmt.Println(plan.Visible, plan.Chrome.BackVisible)

	// Output:
	// [content detail] detail
	// [detail] true
}
