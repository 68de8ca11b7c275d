package router

import "slices"

// PaneHistory is the back-stack of one pane. The last entry is the route the
// pane currently shows. The zero value is an empty history.
//
// Every mutation leaves the backing array of earlier copies untouched, so a
// PaneHistory can be copied like any other value.
type PaneHistory struct {
	entries []Route
}

// NewPaneHistory creates a history holding the given routes, oldest first.
// Consecutive duplicates are collapsed the same way Push would.
func NewPaneHistory(routes ...Route) PaneHistory {
	var h PaneHistory
	for _, r := range routes {
		h.Push(r)
	}
	return h
}

// Push appends a route. It returns false, leaving the history unchanged, when
// the route is already on top.
func (h *PaneHistory) Push(r Route) bool {
	if n := len(h.entries); n > 0 && h.entries[n-1] == r {
		return false
	}
	n := len(h.entries)
	h.entries = append(h.entries[:n:n], r)
	return true
}

// Pop removes the top entry. Returns false if the history is already empty.
func (h *PaneHistory) Pop() bool {
	n := len(h.entries)
	if n == 0 {
		return false
	}
	h.entries = h.entries[: n-1 : n-1]
	return true
}

// Reset removes all entries.
func (h *PaneHistory) Reset() {
	h.entries = nil
}

// Top returns the top entry without removing it.
// Returns nil if the history is empty.
func (h PaneHistory) Top() *Route {
	if len(h.entries) == 0 {
		return nil
	}
	top := h.entries[len(h.entries)-1]
	return &top
}

// IsEmpty returns true if the history has no entries.
func (h PaneHistory) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of entries in the history.
func (h PaneHistory) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, oldest first.
func (h PaneHistory) Entries() []Route {
	return slices.Clone(h.entries)
}

// Equal reports whether both histories hold the same routes in the same order.
func (h PaneHistory) Equal(other PaneHistory) bool {
	return slices.Equal(h.entries, other.entries)
}

func (h PaneHistory) String() string {
	s := "["
	for i, r := range h.entries {
		if i > 0 {
			s += " "
		}
		s += r.String()
	}
	return s + "]"
}
