package nav

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

func newTestController() *Controller {
	m := newTestMachine()
	return NewController(m, NewResolver(140), NewState(m.Catalog()))
}

func TestControllerApply(t *testing.T) {
	c := newTestController()
	require.Equal(t, int64(0), c.Revision())
	require.False(t, c.CanPop())

	s := c.Apply(regular)
	s = c.Apply(SelectMainRoute{Route: settings})
	require.Equal(t, settings, s.MainRoute)

	c.Apply(PushIntoSplit{Route: detail})
	require.True(t, c.CanPop())
	require.Equal(t, int64(3), c.Revision())

	p := c.CurrentLayoutPlan()
	require.Equal(t, []PaneKind{PaneContent, PaneDetail}, p.Visible)
	require.Equal(t, PaneDetail, p.Focus)
	require.True(t, p.Chrome.BackVisible)
}

func TestControllerRejectsInvalidState(t *testing.T) {
	m := newTestMachine()
	bad := NewState(m.Catalog())
	bad.Primary = router.NewPaneHistory(about)
	bad.MenuOpen = true

	c := NewController(m, NewResolver(140), bad)
	got := c.Apply(regular)
	require.True(t, got.Equal(bad), "invalid transition should keep the previous state")
	require.Equal(t, int64(0), c.Revision())

	strict := NewMachine(m.Catalog(), WithStrict(true), WithLogger(quietLogger()))
	c = NewController(strict, NewResolver(140), bad)
	require.Panics(t, func() { c.Apply(regular) })
}

func TestControllerListen(t *testing.T) {
	c := newTestController()
	events := make(chan Event, 4)
	events <- regular
	events <- SelectMainRoute{Route: settings}
	events <- PushIntoSplit{Route: detail}
	events <- PushFullScreen{Route: about}
	close(events)

	require.NoError(t, c.Listen(context.Background(), events))
	s := c.State()
	require.Equal(t, detail, routeOf(t, s.DetailRoot))
	require.Equal(t, about, routeOf(t, s.Primary.Top()))
	require.Equal(t, int64(4), c.Revision())
}

func TestControllerListenStopsOnCancel(t *testing.T) {
	c := newTestController()
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan Event)

	done := make(chan error, 1)
	go func() { done <- c.Listen(ctx, events) }()

	events <- ToggleMenu{}
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Listen did not return after cancel")
	}
	require.True(t, c.State().MenuOpen)
}

func TestControllerConcurrentApply(t *testing.T) {
	c := newTestController()
	c.Apply(regular)
	c.Apply(SelectMainRoute{Route: settings})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int64 = 2
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n := int64(0)
			defer func() {
				mu.Lock()
				applied += n
				mu.Unlock()
			}()
			for j := 0; j < 50; j++ {
				switch (i + j) % 4 {
				case 0:
					c.Apply(PushIntoSplit{Route: subX})
					n++
				case 1:
					c.Apply(PushIntoSplit{Route: subY})
					n++
				case 2:
					c.Apply(Pop{})
					n++
				default:
					_ = c.CurrentLayoutPlan()
				}
			}
		}(i)
	}
	wg.Wait()

	require.NoError(t, c.State().Validate())
	require.Equal(t, applied, c.Revision())
}
