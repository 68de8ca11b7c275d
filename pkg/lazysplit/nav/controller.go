package nav

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// Controller owns the one navigation State of a session and serializes every
// event applied to it. Platform notifications and user gestures may arrive on
// different goroutines; each is applied atomically against the latest state.
type Controller struct {
	mu       sync.Mutex
	machine  *Machine
	resolver Resolver
	state    State
	revision *atomic.Int64
}

// NewController creates a controller starting from initial.
func NewController(m *Machine, r Resolver, initial State) *Controller {
	return &Controller{
		machine:  m,
		resolver: r,
		state:    initial,
		revision: atomic.NewInt64(0),
	}
}

// Apply applies one event and returns the resulting state.
func (c *Controller) Apply(ev Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.machine.Apply(c.state, ev)
	if err := next.Validate(); err != nil {
		if c.machine.strict {
			panic(err)
		}
		c.machine.log.Error("navigation event produced an invalid state, keeping previous", "event", ev.String(), "error", err)
		return c.state
	}

	c.state = next
	c.revision.Inc()
	return next
}

// Listen applies events from a queue in arrival order until the queue is
// closed (returns nil) or ctx is done (returns ctx.Err()).
func (c *Controller) Listen(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.Apply(ev)
		}
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanPop reports whether a back affordance would do anything.
func (c *Controller) CanPop() bool {
	return c.State().CanPop()
}

// CurrentLayoutPlan resolves the layout of the current state.
func (c *Controller) CurrentLayoutPlan() Plan {
	return c.resolver.Resolve(c.State())
}

// Snapshot captures the current state, its plan and the revision together.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	s := c.state
	rev := c.revision.Load()
	c.mu.Unlock()
	return NewSnapshot(s, c.resolver.Resolve(s), rev)
}

// Revision counts applied events. It is safe to read without the lock.
func (c *Controller) Revision() int64 {
	return c.revision.Load()
}

// Machine returns the machine the controller applies events with.
func (c *Controller) Machine() *Machine {
	return c.machine
}
