// Package shell renders a lazysplit App in the terminal with bubbletea.
//
// The shell is a plain consumer of the navigation layer: key presses and
// window resizes are published on the App's bus, and the model drains the
// bus inside the bubbletea loop, applying each event to the controller and
// re-rendering the resolved layout plan.
package shell

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/internal"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
)

type (
	// eventMsg carries one event taken off the bus.
	eventMsg struct{ ev nav.Event }
	// publishedMsg reports the outcome of publishing an event.
	publishedMsg struct{ err error }
	// busClosedMsg means the app was closed and the shell should exit.
	busClosedMsg struct{}
)

// Model is the bubbletea model of the shell.
type Model struct {
	ctx    context.Context
	app    *lazysplit.App
	events <-chan nav.Event
	keys   KeyMap
	links  Links
	cache  *RenderCache
	styles styles
	log    *slog.Logger

	width, height int
	cursor        int // highlighted choice in the focused pane

	// outbox holds events in gesture order. Only its head is ever being
	// published, so the bus sees them in the same order.
	outbox  []nav.Event
	sending bool
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithLinks replaces the demo links.
func WithLinks(l Links) Option {
	return func(m *Model) { m.links = l }
}

// New creates a shell for app. The shell consumes app.Events, so app.Run
// must not run at the same time.
func New(ctx context.Context, app *lazysplit.App, opts ...Option) *Model {
	m := &Model{
		ctx:    ctx,
		app:    app,
		events: app.Events(),
		keys:   DefaultKeyMap(),
		links:  DefaultLinks(),
		cache:  NewRenderCache(),
		styles: defaultStyles(),
		log:    internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case ev, ok := <-m.events:
			if !ok {
				return busClosedMsg{}
			}
			return eventMsg{ev: ev}
		case <-m.ctx.Done():
			return busClosedMsg{}
		}
	}
}

// enqueue appends ev to the outbox and starts publishing if idle. It must
// only be called from Update.
func (m *Model) enqueue(ev nav.Event) tea.Cmd {
	m.outbox = append(m.outbox, ev)
	if m.sending {
		return nil
	}
	return m.publishHead()
}

func (m *Model) publishHead() tea.Cmd {
	if len(m.outbox) == 0 {
		m.sending = false
		return nil
	}
	m.sending = true
	ev := m.outbox[0]
	return func() tea.Msg {
		return publishedMsg{err: m.app.Emit(m.ctx, ev)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.enqueue(m.app.Breakpoints.Classify(msg.Width, msg.Height))

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case eventMsg:
		before := m.app.Controller.CurrentLayoutPlan().Focus
		m.app.Controller.Apply(msg.ev)
		if after := m.app.Controller.CurrentLayoutPlan().Focus; after != before || !isResize(msg.ev) {
			m.cursor = 0
		}
		return m, m.waitForEvent()

	case publishedMsg:
		if msg.err != nil {
			m.log.Warn("navigation event not delivered", "event", m.outbox[0].String(), "error", msg.err)
		}
		m.outbox = m.outbox[1:]
		return m, m.publishHead()

	case busClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func isResize(ev nav.Event) bool {
	_, ok := ev.(nav.DeviceClassChanged)
	return ok
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if n, ok := Digit(msg); ok {
		items := m.app.MenuItems()
		if n < len(items) {
			return m.enqueue(nav.SelectMainRoute{Route: items[n].Route})
		}
		return nil
	}

	switch m.keys.Button(msg) {
	case constants.VirtualButtonQuit:
		return tea.Quit
	case constants.VirtualButtonMenu:
		return m.enqueue(nav.ToggleMenu{})
	case constants.VirtualButtonB:
		// Back closes an open menu only when there is nothing to pop and no
		// queued event that could add something; otherwise it pops.
		s := m.app.Controller.State()
		if s.MenuOpen && !s.CanPop() && len(m.outbox) == 0 {
			return m.enqueue(nav.ToggleMenu{})
		}
		return m.enqueue(nav.Pop{})
	case constants.VirtualButtonUp:
		m.moveCursor(-1)
	case constants.VirtualButtonDown:
		m.moveCursor(1)
	case constants.VirtualButtonA:
		if ev, ok := m.highlighted(); ok {
			return m.enqueue(ev)
		}
	case constants.VirtualButtonX:
		if ev, ok := m.highlighted(); ok {
			return m.enqueue(fullScreen(ev))
		}
	}
	return nil
}

// choices returns the selectable events of the focused pane.
func (m *Model) choices() []nav.Event {
	s := m.app.Controller.State()
	plan := m.app.Controller.CurrentLayoutPlan()

	if plan.Focus == nav.PaneMenu {
		items := m.app.MenuItems()
		out := make([]nav.Event, 0, len(items))
		for _, it := range items {
			out = append(out, nav.SelectMainRoute{Route: it.Route})
		}
		return out
	}

	r, ok := s.RouteFor(plan.Focus)
	if !ok {
		return nil
	}
	links := m.links.For(r, m.app.Catalog)
	out := make([]nav.Event, 0, len(links))
	for _, l := range links {
		out = append(out, l.Event)
	}
	return out
}

func (m *Model) moveCursor(delta int) {
	n := len(m.choices())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) highlighted() (nav.Event, bool) {
	choices := m.choices()
	if m.cursor < 0 || m.cursor >= len(choices) {
		return nil, false
	}
	return choices[m.cursor], true
}
