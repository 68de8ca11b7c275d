package replay

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

const script = `
# split route drill-in
device regular landscape 160
select settings
split detail
split subdetail x
nav about
pop
pop
resize 60 40
`

func testController(t *testing.T) *nav.Controller {
	t.Helper()
	catalog, err := router.NewCatalog(
		router.RouteSpec{ID: "home", Main: true},
		router.RouteSpec{ID: "settings", Main: true, Requirement: router.PaneSplit},
		router.RouteSpec{ID: "detail"},
		router.RouteSpec{ID: "subdetail"},
		router.RouteSpec{ID: "about", Target: router.TargetPrimary},
	)
	require.NoError(t, err)
	m := nav.NewMachine(catalog,
		nav.WithStrict(false),
		nav.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return nav.NewController(m, nav.NewResolver(140), nav.NewState(catalog))
}

func TestParse(t *testing.T) {
	events, err := Parse(strings.NewReader(script))
	require.NoError(t, err)
	require.Equal(t, []nav.Event{
		nav.DeviceClassChanged{Compact: false, Landscape: true, Width: 160},
		nav.SelectMainRoute{Route: router.NewRoute("settings")},
		nav.PushIntoSplit{Route: router.NewRoute("detail")},
		nav.PushIntoSplit{Route: router.WithPayload("subdetail", "x")},
		nav.Navigate{Route: router.NewRoute("about")},
		nav.Pop{},
		nav.Pop{},
		nav.DeviceClassChanged{Compact: true, Landscape: false, Width: 60},
	}, events)
}

func TestParseLineForms(t *testing.T) {
	p := Parser{Breakpoints: nav.DefaultBreakpoints()}
	tests := []struct {
		line string
		want nav.Event
	}{
		{"menu", nav.ToggleMenu{}},
		{"back", nav.Pop{}},
		{"push subdetail(ab)", nav.PushFullScreen{Route: router.WithPayload("subdetail", "ab")}},
		{"push subdetail y", nav.PushFullScreen{Route: router.WithPayload("subdetail", "y")}},
		{"split subdetail(Here's lots more data)", nav.PushIntoSplit{Route: router.WithPayload("subdetail", "Here's lots more data")}},
		{"nav subdetail(a b) primary", nav.Navigate{Route: router.WithPayload("subdetail", "a b"), Override: router.TargetPrimary}},
		{"select home()", nav.SelectMainRoute{Route: router.WithPayload("home", "")}},
		{"nav detail primary", nav.Navigate{Route: router.NewRoute("detail"), Override: router.TargetPrimary}},
		{"nav subdetail x detail", nav.Navigate{Route: router.WithPayload("subdetail", "x"), Override: router.TargetDetail}},
		{"nav subdetail x", nav.Navigate{Route: router.WithPayload("subdetail", "x")}},
		{"device compact", nav.DeviceClassChanged{Compact: true}},
		{"DEVICE regular 120 portrait", nav.DeviceClassChanged{Width: 120}},
	}
	for _, tt := range tests {
		got, err := p.ParseLine(tt.line)
		require.NoError(t, err, tt.line)
		require.Equal(t, tt.want, got, tt.line)
	}
}

func TestEventStringsParseBack(t *testing.T) {
	p := Parser{Breakpoints: nav.DefaultBreakpoints()}
	events := []nav.Event{
		nav.SelectMainRoute{Route: router.NewRoute("home")},
		nav.ToggleMenu{},
		nav.PushFullScreen{Route: router.WithPayload("subdetail", "x")},
		nav.PushIntoSplit{Route: router.NewRoute("detail")},
		nav.PushIntoSplit{Route: router.WithPayload("subdetail", "Here's lots more data")},
		nav.Navigate{Route: router.WithPayload("subdetail", "two words"), Override: router.TargetDetail},
		nav.Pop{},
		nav.DeviceClassChanged{Compact: true, Landscape: true, Width: 80},
		nav.Navigate{Route: router.NewRoute("detail"), Override: router.TargetPrimary},
	}
	for _, ev := range events {
		got, err := p.ParseLine(ev.String())
		require.NoError(t, err, ev.String())
		require.Equal(t, ev, got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		script string
		line   int
		err    error
	}{
		{"menu\njump home", 2, ErrUnknownCommand},
		{"select", 1, ErrArguments},
		{"\n\npop now", 3, ErrArguments},
		{"device sideways", 1, ErrArguments},
		{"device compact tilted", 1, ErrArguments},
		{"resize 10", 1, ErrArguments},
		{"push sub(x", 1, ErrArguments},
		{"split sub(two words", 1, ErrArguments},
		{"push (x y)", 1, ErrArguments},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.script))
		var perr *ParseError
		require.ErrorAs(t, err, &perr, tt.script)
		require.Equal(t, tt.line, perr.Line, tt.script)
		require.ErrorIs(t, err, tt.err, tt.script)
	}
}

func TestRun(t *testing.T) {
	events, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(testController(t), events, &out))

	var snaps []nav.Snapshot
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var s struct {
			Revision int64                   `json:"revision"`
			Event    string                  `json:"event"`
			Primary  []router.Route          `json:"primary"`
			Root     *router.Route           `json:"detail_root"`
			CanPop   bool                    `json:"can_pop"`
			Panes    map[string]router.Route `json:"panes"`
		}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &s))
		snaps = append(snaps, nav.Snapshot{
			Revision:   s.Revision,
			Event:      s.Event,
			Primary:    s.Primary,
			DetailRoot: s.Root,
			CanPop:     s.CanPop,
			Panes:      s.Panes,
		})
	}
	require.Len(t, snaps, len(events))

	require.Equal(t, "split subdetail(x)", snaps[3].Event)
	require.Equal(t, router.WithPayload("subdetail", "x"), snaps[3].Panes["detail"])

	// about targets primary, so it covers the split.
	require.Equal(t, []router.Route{router.NewRoute("about")}, snaps[4].Primary)
	require.Equal(t, router.NewRoute("about"), snaps[4].Panes["primary"])

	// Two pops: about, then the sub detail. The detail root remains.
	require.Empty(t, snaps[6].Primary)
	require.Equal(t, router.NewRoute("detail"), *snaps[6].DetailRoot)
	require.True(t, snaps[6].CanPop)

	// Compact width shows only the detail pane.
	require.Equal(t, map[string]router.Route{"detail": router.NewRoute("detail")}, snaps[7].Panes)
	require.Equal(t, int64(8), snaps[7].Revision)
}
