package nav

import (
	"slices"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"
)

// PaneKind names a rectangular region that can show a route.
type PaneKind int

const (
	PaneMenu    PaneKind = iota // Main route list
	PaneContent                 // The main route itself
	PaneDetail                  // Right-hand pane of a split main route
	PanePrimary                 // Full-screen stack, covers everything
)

func (k PaneKind) String() string {
	switch k {
	case PaneMenu:
		return "menu"
	case PaneContent:
		return "content"
	case PaneDetail:
		return "detail"
	case PanePrimary:
		return "primary"
	default:
		return "unknown"
	}
}

func (k PaneKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Density controls how the menu is drawn next to content on regular width:
// side by side when expanded, overlapping when compact.
type Density int

const (
	DensityExpanded Density = iota
	DensityCompact
)

func (d Density) String() string {
	if d == DensityCompact {
		return "compact"
	}
	return "expanded"
}

func (d Density) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ToggleIcon is the face of the menu toggle button.
type ToggleIcon int

const (
	IconMenu ToggleIcon = iota
	IconClose
)

// Glyph returns the character drawn for the icon.
func (i ToggleIcon) Glyph() string {
	if i == IconClose {
		return constants.CloseGlyph
	}
	return constants.MenuGlyph
}

func (i ToggleIcon) MarshalText() ([]byte, error) {
	if i == IconClose {
		return []byte("close"), nil
	}
	return []byte("menu"), nil
}

// Chrome describes the navigation buttons around the panes.
type Chrome struct {
	BackVisible    bool       `json:"back_visible"`
	ToggleVisible  bool       `json:"toggle_visible"`
	ToggleIcon     ToggleIcon `json:"toggle_icon"`
	ToolbarVisible bool       `json:"toolbar_visible"`
}

// Plan is the concrete layout for one State.
type Plan struct {
	// Visible lists the shown panes left to right. On compact width it holds
	// exactly one pane.
	Visible []PaneKind `json:"visible"`
	// Focus is the pane that receives input. On compact width it is the one
	// visible pane.
	Focus   PaneKind `json:"focus"`
	Density Density  `json:"density"`
	Chrome  Chrome   `json:"chrome"`
}

// Shows reports whether the pane is visible.
func (p Plan) Shows(k PaneKind) bool {
	return slices.Contains(p.Visible, k)
}

// Resolver maps a State to a Plan. It is a pure function of its input.
type Resolver struct {
	// ExpandedMinWidth is the narrowest regular-width window that draws the
	// menu beside the content instead of over it. A State with unknown width
	// (zero) counts as wide enough.
	ExpandedMinWidth int
}

// NewResolver creates a Resolver with the given density threshold.
func NewResolver(expandedMinWidth int) Resolver {
	return Resolver{ExpandedMinWidth: expandedMinWidth}
}

// Resolve computes the layout for s.
func (r Resolver) Resolve(s State) Plan {
	var p Plan
	if s.Compact {
		p.Focus = compactFocus(s)
		p.Visible = []PaneKind{p.Focus}
		p.Density = DensityCompact
	} else {
		p.Visible, p.Focus = regularPanes(s)
		p.Density = DensityExpanded
		if s.Width > 0 && s.Width < r.ExpandedMinWidth {
			p.Density = DensityCompact
		}
	}

	covered := !s.Primary.IsEmpty()
	p.Chrome = Chrome{
		BackVisible:    s.CanPop(),
		ToggleVisible:  !covered,
		ToggleIcon:     IconMenu,
		ToolbarVisible: !s.MenuOpen,
	}
	if s.Compact && s.MenuOpen {
		p.Chrome.ToggleIcon = IconClose
	}
	return p
}

func compactFocus(s State) PaneKind {
	switch {
	case !s.Primary.IsEmpty():
		return PanePrimary
	case s.MenuOpen:
		return PaneMenu
	case s.MainRoute.IsZero():
		return PaneMenu
	case s.IsSplit() && s.DetailRoot != nil && !s.ShowContentFirst:
		return PaneDetail
	default:
		return PaneContent
	}
}

func regularPanes(s State) ([]PaneKind, PaneKind) {
	if !s.Primary.IsEmpty() {
		return []PaneKind{PanePrimary}, PanePrimary
	}

	panes := make([]PaneKind, 0, 3)
	if s.MenuOpen {
		panes = append(panes, PaneMenu)
	}
	panes = append(panes, PaneContent)
	focus := PaneContent
	if s.IsSplit() {
		panes = append(panes, PaneDetail)
		if s.DetailRoot != nil {
			focus = PaneDetail
		}
	}
	return panes, focus
}
