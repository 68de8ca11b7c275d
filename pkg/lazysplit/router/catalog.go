package router

import "fmt"

// RouteSpec is one catalog entry.
type RouteSpec struct {
	ID          RouteID         `toml:"id"`
	Requirement PaneRequirement `toml:"requirement"`
	Target      Target          `toml:"target"`
	Main        bool            `toml:"main"`  // reachable from the menu
	Title       string          `toml:"title"` // message id for the localized title
	Icon        string          `toml:"icon"`
}

// Catalog maps route identifiers to their pane requirement and default target.
// It is built once at startup and never changes afterwards, so it is safe to
// share between goroutines.
type Catalog struct {
	specs map[RouteID]RouteSpec
	order []RouteID
	mains []RouteID
}

// NewCatalog validates the given specs and builds a catalog.
// The first main route is the default main route.
func NewCatalog(specs ...RouteSpec) (*Catalog, error) {
	c := &Catalog{
		specs: make(map[RouteID]RouteSpec, len(specs)),
		order: make([]RouteID, 0, len(specs)),
	}

	for _, spec := range specs {
		if spec.ID == "" {
			return nil, fmt.Errorf("%w: route with empty id", ErrInvalidCatalog)
		}
		if _, dup := c.specs[spec.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate route %q", ErrInvalidCatalog, spec.ID)
		}
		if spec.Target == TargetUnset {
			spec.Target = TargetDetail
			if spec.Main {
				spec.Target = TargetPrimary
			}
		}
		if spec.Main && spec.Target != TargetPrimary {
			return nil, fmt.Errorf("%w: main route %q must target primary", ErrInvalidCatalog, spec.ID)
		}
		if spec.Title == "" {
			spec.Title = "route_" + string(spec.ID)
		}

		c.specs[spec.ID] = spec
		c.order = append(c.order, spec.ID)
		if spec.Main {
			c.mains = append(c.mains, spec.ID)
		}
	}

	if len(c.mains) == 0 {
		return nil, fmt.Errorf("%w: no main route", ErrInvalidCatalog)
	}
	return c, nil
}

// MustCatalog is NewCatalog for static tables; it panics on error.
func MustCatalog(specs ...RouteSpec) *Catalog {
	c, err := NewCatalog(specs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the spec registered for the route's identifier.
func (c *Catalog) Lookup(r Route) (RouteSpec, error) {
	spec, ok := c.specs[r.ID]
	if !ok {
		return RouteSpec{}, fmt.Errorf("%w: %q", ErrUnknownRoute, r.ID)
	}
	return spec, nil
}

// RequirementFor returns how many panes the route needs as a main route.
func (c *Catalog) RequirementFor(r Route) (PaneRequirement, error) {
	spec, err := c.Lookup(r)
	if err != nil {
		return PaneSingle, err
	}
	return spec.Requirement, nil
}

// DefaultTarget returns the history a pushed route lands in by default.
func (c *Catalog) DefaultTarget(r Route) (Target, error) {
	spec, err := c.Lookup(r)
	if err != nil {
		return TargetUnset, err
	}
	return spec.Target, nil
}

// IsMain reports whether the route is a registered main route.
func (c *Catalog) IsMain(r Route) bool {
	spec, ok := c.specs[r.ID]
	return ok && spec.Main
}

// Default returns the first main route.
func (c *Catalog) Default() Route {
	return NewRoute(c.mains[0])
}

// MainRoutes returns the main routes in registration order.
func (c *Catalog) MainRoutes() []RouteSpec {
	out := make([]RouteSpec, 0, len(c.mains))
	for _, id := range c.mains {
		out = append(out, c.specs[id])
	}
	return out
}

// Routes returns every registered route in registration order.
func (c *Catalog) Routes() []RouteSpec {
	out := make([]RouteSpec, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.specs[id])
	}
	return out
}

// Len returns the number of registered routes.
func (c *Catalog) Len() int {
	return len(c.order)
}
