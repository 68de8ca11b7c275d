package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

const (
	menuWidth     = 26
	minPaneHeight = 5
)

type styles struct {
	header   lipgloss.Style
	footer   lipgloss.Style
	pane     lipgloss.Style
	focused  lipgloss.Style
	overlay  lipgloss.Style
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	cursor   lipgloss.Style
	dim      lipgloss.Style
}

func defaultStyles() styles {
	accent := lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		footer:   lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle).Padding(0, 1),
		focused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		overlay:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(accent).Padding(0, 1),
		title:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		item:     lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		cursor:   lipgloss.NewStyle().Reverse(true),
		dim:      lipgloss.NewStyle().Faint(true),
	}
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	s := m.app.Controller.State()
	plan := m.app.Controller.CurrentLayoutPlan()

	header := m.renderHeader(s, plan)
	footer := m.styles.footer.Render(m.app.Translator.Message("chrome_help", nil))
	height := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), minPaneHeight)

	widths := m.paneWidths(plan)
	panes := make([]string, 0, len(plan.Visible))
	for i, kind := range plan.Visible {
		panes = append(panes, m.renderPane(s, plan, kind, widths[i], height))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
		footer,
	)
}

func (m *Model) renderHeader(s nav.State, plan nav.Plan) string {
	var left []string
	if plan.Chrome.BackVisible {
		left = append(left, constants.BackGlyph+" "+m.app.Translator.Message("chrome_back", nil))
	}
	if plan.Chrome.ToggleVisible {
		left = append(left, plan.Chrome.ToggleIcon.Glyph())
	}
	if r, ok := s.RouteFor(plan.Focus); ok {
		left = append(left, m.title(r))
	} else {
		left = append(left, m.app.Translator.Message("chrome_menu", nil))
	}

	line := strings.Join(left, "  ")
	if plan.Chrome.ToolbarVisible {
		toolbar := fmt.Sprintf("%s · #%d", m.app.Translator.LanguageName(), m.app.Controller.Revision())
		gap := m.width - lipgloss.Width(line) - lipgloss.Width(toolbar) - 2
		if gap > 0 {
			line += strings.Repeat(" ", gap) + toolbar
		}
	}
	return m.styles.header.Render(line)
}

// paneWidths splits the window between the visible panes. The menu keeps a
// fixed width; content and detail share the rest 2:3.
func (m *Model) paneWidths(plan nav.Plan) []int {
	widths := make([]int, len(plan.Visible))
	rest := m.width
	flexible := 0
	for i, kind := range plan.Visible {
		if kind == nav.PaneMenu && len(plan.Visible) > 1 {
			widths[i] = min(menuWidth, m.width/3)
			rest -= widths[i]
			continue
		}
		flexible++
	}

	switch flexible {
	case 1:
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = rest
			}
		}
	case 2:
		content := rest * 2 / 5
		for i, kind := range plan.Visible {
			switch kind {
			case nav.PaneContent:
				widths[i] = content
			case nav.PaneDetail:
				widths[i] = rest - content
			}
		}
	}
	return widths
}

func (m *Model) renderPane(s nav.State, plan nav.Plan, kind nav.PaneKind, width, height int) string {
	style := m.styles.pane
	switch {
	case kind == nav.PaneMenu && plan.Density == nav.DensityCompact && len(plan.Visible) > 1:
		style = m.styles.overlay
	case kind == plan.Focus:
		style = m.styles.focused
	}
	inner := max(width-style.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-style.GetVerticalBorderSize(), 1)

	var body string
	if kind == nav.PaneMenu {
		body = m.renderMenu(kind == plan.Focus)
	} else if r, ok := s.RouteFor(kind); ok {
		body = m.renderRoute(r, inner, kind == plan.Focus)
	} else {
		body = m.styles.dim.Render(m.app.Translator.Message("chrome_empty_detail", nil))
	}

	if kind == nav.PaneContent && plan.Density == nav.DensityCompact && plan.Shows(nav.PaneMenu) {
		body = m.styles.dim.Render(body)
	}
	return style.
		Width(max(width-style.GetHorizontalBorderSize(), 1)).
		Height(innerHeight).
		MaxHeight(height).
		Render(body)
}

func (m *Model) renderMenu(focused bool) string {
	items := m.app.MenuItems()
	lines := make([]string, 0, len(items))
	for i, it := range items {
		text := fmt.Sprintf("%d %s %s", i+1, it.Icon, it.Text)
		style := m.styles.item
		if it.Selected {
			style = m.styles.selected
		}
		if focused && i == m.cursor {
			style = style.Inherit(m.styles.cursor)
		}
		lines = append(lines, style.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRoute(r router.Route, width int, focused bool) string {
	key := fmt.Sprintf("%s|%s|%d", r, m.app.Translator.Language(), width)
	body := m.cache.GetOrRender(key, func() string {
		text := m.app.Translator.Body(r)
		return lipgloss.NewStyle().Width(width).Render(text)
	})

	parts := []string{m.styles.title.Render(m.title(r)), body}
	for i, l := range m.links.For(r, m.app.Catalog) {
		style := m.styles.item
		if focused && i == m.cursor {
			style = m.styles.cursor
		}
		parts = append(parts, style.Render(constants.DetailIcon+" "+m.app.Translator.Message(l.Label, nil)))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) title(r router.Route) string {
	spec, err := m.app.Catalog.Lookup(r)
	if err != nil {
		return r.String()
	}
	if spec.Icon != "" {
		return spec.Icon + " " + m.app.Translator.Title(spec, r)
	}
	return m.app.Translator.Title(spec, r)
}
