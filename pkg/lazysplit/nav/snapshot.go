package nav

import (
	"github.com/goccy/go-json"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// Snapshot is a flattened, serializable view of a State and its Plan.
type Snapshot struct {
	Revision    int64                   `json:"revision"`
	Event       string                  `json:"event,omitempty"`
	MainRoute   router.Route            `json:"main_route"`
	Requirement router.PaneRequirement  `json:"requirement"`
	MenuOpen    bool                    `json:"menu_open"`
	Primary     []router.Route          `json:"primary"`
	DetailRoot  *router.Route           `json:"detail_root"`
	Detail      []router.Route          `json:"detail"`
	Compact     bool                    `json:"compact"`
	Landscape   bool                    `json:"landscape"`
	Width       int                     `json:"width,omitempty"`
	CanPop      bool                    `json:"can_pop"`
	Plan        Plan                    `json:"plan"`
	Panes       map[string]router.Route `json:"panes"`
}

// NewSnapshot flattens s and p.
func NewSnapshot(s State, p Plan, revision int64) Snapshot {
	snap := Snapshot{
		Revision:    revision,
		MainRoute:   s.MainRoute,
		Requirement: s.MainRequirement,
		MenuOpen:    s.MenuOpen,
		Primary:     nonNil(s.Primary.Entries()),
		Detail:      nonNil(s.Detail.Entries()),
		Compact:     s.Compact,
		Landscape:   s.Landscape,
		Width:       s.Width,
		CanPop:      s.CanPop(),
		Plan:        p,
		Panes:       make(map[string]router.Route, len(p.Visible)),
	}
	if s.DetailRoot != nil {
		root := *s.DetailRoot
		snap.DetailRoot = &root
	}
	for _, pane := range p.Visible {
		if r, ok := s.RouteFor(pane); ok {
			snap.Panes[pane.String()] = r
		}
	}
	return snap
}

// JSON encodes the snapshot on a single line.
func (s Snapshot) JSON() ([]byte, error) {
	return json.Marshal(s)
}

func nonNil(routes []router.Route) []router.Route {
	if routes == nil {
		return []router.Route{}
	}
	return routes
}
