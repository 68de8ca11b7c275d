package lazysplit

import (
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/i18n"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// MenuItem is one entry of the menu pane.
type MenuItem struct {
	Route    router.Route // Main route selected by this item
	Text     string       // Localized title
	Icon     string       // Glyph drawn before the title
	Selected bool         // Whether this is the current main route
}

// MenuItems lists the main routes in catalog order.
func MenuItems(catalog *router.Catalog, s nav.State, tr *i18n.Translator) []MenuItem {
	specs := catalog.MainRoutes()
	items := make([]MenuItem, 0, len(specs))
	for _, spec := range specs {
		r := router.NewRoute(spec.ID)
		items = append(items, MenuItem{
			Route:    r,
			Text:     tr.Title(spec, r),
			Icon:     spec.Icon,
			Selected: s.MainRoute.ID == spec.ID,
		})
	}
	return items
}
