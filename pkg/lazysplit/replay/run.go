package replay

import (
	"fmt"
	"io"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
)

// Run applies events in order and writes one JSON snapshot line per event.
func Run(ctrl *nav.Controller, events []nav.Event, w io.Writer) error {
	for i, ev := range events {
		ctrl.Apply(ev)
		snap := ctrl.Snapshot()
		snap.Event = ev.String()

		line, err := snap.JSON()
		if err != nil {
			return fmt.Errorf("replay: event %d (%s): %w", i+1, ev, err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}
