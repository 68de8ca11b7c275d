package constants

// Glyphs used by the navigation chrome. Plain Unicode so they render in any
// terminal font.
const (
	MenuGlyph  = "☰" // Menu toggle, menu closed
	CloseGlyph = "✕" // Menu toggle, menu open on compact width
	BackGlyph  = "‹" // Back affordance

	HomeIcon     = "⌂"
	SettingsIcon = "⚙"
	OtherIcon    = "◇"
	DetailIcon   = "▸"
)
