package nav

import "github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"

// Breakpoints turn a raw window size into device-class flags.
type Breakpoints struct {
	CompactMaxWidth  int     // widths up to this are compact
	ExpandedMinWidth int     // widths from this draw the menu beside content
	LandscapeRatio   float64 // width/height at or above this is landscape
}

// DefaultBreakpoints returns terminal-column breakpoints.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		CompactMaxWidth:  constants.DefaultCompactMaxWidth,
		ExpandedMinWidth: constants.DefaultExpandedMinWidth,
		LandscapeRatio:   constants.DefaultLandscapeRatio,
	}
}

// Classify builds the DeviceClassChanged event for a window size.
func (b Breakpoints) Classify(width, height int) DeviceClassChanged {
	landscape := false
	if height > 0 {
		landscape = float64(width) >= b.LandscapeRatio*float64(height)
	}
	return DeviceClassChanged{
		Compact:   width <= b.CompactMaxWidth,
		Landscape: landscape,
		Width:     width,
	}
}

// Resolver returns a Resolver using the expanded-density breakpoint.
func (b Breakpoints) Resolver() Resolver {
	return NewResolver(b.ExpandedMinWidth)
}
