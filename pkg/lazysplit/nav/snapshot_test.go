package nav

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestSnapshotJSON(t *testing.T) {
	c := newTestController()
	c.Apply(regular)
	c.Apply(SelectMainRoute{Route: settings})
	c.Apply(PushIntoSplit{Route: detail})
	c.Apply(PushIntoSplit{Route: subX})

	snap := c.Snapshot()
	require.Equal(t, int64(4), snap.Revision)
	require.Equal(t, settings, snap.Panes["content"])
	require.Equal(t, subX, snap.Panes["detail"])
	require.NotContains(t, snap.Panes, "menu")

	raw, err := snap.JSON()
	require.NoError(t, err)
	require.Contains(t, string(raw), `"primary":[]`)
	require.Contains(t, string(raw), `"requirement":"split"`)
	require.Contains(t, string(raw), `"visible":["content","detail"]`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, true, decoded["can_pop"])
	require.Equal(t, "detail", decoded["plan"].(map[string]any)["focus"])
}

func TestSnapshotDoesNotAliasState(t *testing.T) {
	m := newTestMachine()
	s := run(t, m, regular, SelectMainRoute{Route: settings}, PushIntoSplit{Route: detail})
	snap := NewSnapshot(s, NewResolver(140).Resolve(s), 0)

	snap.DetailRoot.ID = "changed"
	require.Equal(t, detail, routeOf(t, s.DetailRoot))
}
