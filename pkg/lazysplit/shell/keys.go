package shell

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"
)

// KeyMap binds terminal keys to virtual buttons.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding // A: follow the highlighted link
	Back       key.Binding // B
	FullScreen key.Binding // X: follow the highlighted link full screen
	Menu       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns arrow/vim keys plus m, b and x.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
		Back:       key.NewBinding(key.WithKeys("b", "esc", "backspace", "left", "h"), key.WithHelp("b", "back")),
		FullScreen: key.NewBinding(key.WithKeys("x", "f"), key.WithHelp("x", "open full screen")),
		Menu:       key.NewBinding(key.WithKeys("m", "tab"), key.WithHelp("m", "menu")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Button maps a key press to its virtual button.
func (k KeyMap) Button(msg tea.KeyMsg) constants.VirtualButton {
	switch {
	case key.Matches(msg, k.Up):
		return constants.VirtualButtonUp
	case key.Matches(msg, k.Down):
		return constants.VirtualButtonDown
	case key.Matches(msg, k.Open):
		return constants.VirtualButtonA
	case key.Matches(msg, k.Back):
		return constants.VirtualButtonB
	case key.Matches(msg, k.FullScreen):
		return constants.VirtualButtonX
	case key.Matches(msg, k.Menu):
		return constants.VirtualButtonMenu
	case key.Matches(msg, k.Quit):
		return constants.VirtualButtonQuit
	default:
		return constants.VirtualButtonUnassigned
	}
}

// Digit returns 0-based n for the keys 1-9.
func Digit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(string(msg.Runes))
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
