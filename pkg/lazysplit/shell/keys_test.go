package shell

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"
)

func TestKeyMapButtons(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want constants.VirtualButton
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, constants.VirtualButtonUp},
		{runes("j"), constants.VirtualButtonDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, constants.VirtualButtonA},
		{tea.KeyMsg{Type: tea.KeyEsc}, constants.VirtualButtonB},
		{runes("x"), constants.VirtualButtonX},
		{tea.KeyMsg{Type: tea.KeyTab}, constants.VirtualButtonMenu},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, constants.VirtualButtonQuit},
		{runes("z"), constants.VirtualButtonUnassigned},
	}
	for _, tt := range tests {
		if got := k.Button(tt.msg); got != tt.want {
			t.Errorf("Button(%q) = %s, want %s", tt.msg.String(), got.GetName(), tt.want.GetName())
		}
	}
}

func TestDigit(t *testing.T) {
	if n, ok := Digit(runes("1")); !ok || n != 0 {
		t.Errorf("Digit(1) = %d, %t", n, ok)
	}
	if n, ok := Digit(runes("9")); !ok || n != 8 {
		t.Errorf("Digit(9) = %d, %t", n, ok)
	}
	for _, s := range []string{"0", "a", "12"} {
		if _, ok := Digit(runes(s)); ok {
			t.Errorf("Digit(%q) should not match", s)
		}
	}
}
