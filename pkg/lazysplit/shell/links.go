package shell

import (
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// Link is a navigation action offered inside a pane.
type Link struct {
	Label string // message id of the link text
	Event nav.Event
}

// Links maps route ids to the links their screens offer.
type Links map[router.RouteID][]Link

// DefaultLinks returns the links of the demo routes. Main routes link to
// Detail with its default target, so Settings (split) opens it in the detail
// pane while Home opens it full screen. Detail offers SubDetail both ways.
func DefaultLinks() Links {
	toDetail := Link{Label: "link_detail", Event: nav.Navigate{Route: router.NewRoute("detail")}}
	return Links{
		"home":     {toDetail},
		"other":    {toDetail},
		"settings": {toDetail},
		"detail": {
			{Label: "link_subdetail_detail", Event: nav.PushIntoSplit{Route: router.WithPayload("subdetail", "Here's lots more data")}},
			{Label: "link_subdetail_primary", Event: nav.PushFullScreen{Route: router.WithPayload("subdetail", "Here's a few more pieces of data")}},
		},
	}
}

// For returns the links of r whose destinations exist in the catalog.
func (l Links) For(r router.Route, catalog *router.Catalog) []Link {
	var out []Link
	for _, link := range l[r.ID] {
		if dest, ok := destination(link.Event); ok {
			if _, err := catalog.Lookup(dest); err != nil {
				continue
			}
		}
		out = append(out, link)
	}
	return out
}

func destination(ev nav.Event) (router.Route, bool) {
	switch e := ev.(type) {
	case nav.Navigate:
		return e.Route, true
	case nav.PushFullScreen:
		return e.Route, true
	case nav.PushIntoSplit:
		return e.Route, true
	case nav.SelectMainRoute:
		return e.Route, true
	default:
		return router.Route{}, false
	}
}

// fullScreen turns a link into the same navigation aimed at the primary
// history.
func fullScreen(ev nav.Event) nav.Event {
	if r, ok := destination(ev); ok {
		if _, isSelect := ev.(nav.SelectMainRoute); !isSelect {
			return nav.PushFullScreen{Route: r}
		}
	}
	return ev
}
