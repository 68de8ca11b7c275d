package nav

import "testing"

func TestClassify(t *testing.T) {
	b := DefaultBreakpoints()
	tests := []struct {
		w, h      int
		compact   bool
		landscape bool
	}{
		{60, 40, true, false},
		{99, 30, true, true},
		{100, 60, false, false},
		{200, 50, false, true},
		{120, 0, false, false},
	}
	for _, tt := range tests {
		got := b.Classify(tt.w, tt.h)
		if got.Compact != tt.compact || got.Landscape != tt.landscape || got.Width != tt.w {
			t.Errorf("Classify(%d, %d) = %+v, want compact=%t landscape=%t", tt.w, tt.h, got, tt.compact, tt.landscape)
		}
	}
}

func TestBreakpointsResolver(t *testing.T) {
	b := Breakpoints{CompactMaxWidth: 50, ExpandedMinWidth: 80, LandscapeRatio: 1}
	s := NewState(testCatalog())
	s.Width = 70
	if got := b.Resolver().Resolve(s).Density; got != DensityCompact {
		t.Fatalf("Density = %v, want compact", got)
	}
	s.Width = 90
	if got := b.Resolver().Resolve(s).Density; got != DensityExpanded {
		t.Fatalf("Density = %v, want expanded", got)
	}
}
