package lazysplit

import (
	"context"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/bus"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/i18n"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/internal"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// App bundles everything one navigation session needs. Screens get the Bus
// (or App.Emit) to request navigation; the shell reads the Controller.
type App struct {
	Config      Config
	Catalog     *router.Catalog
	Breakpoints nav.Breakpoints
	Machine     *nav.Machine
	Controller  *nav.Controller
	Bus         *bus.Bus[nav.Event]
	Translator  *i18n.Translator

	sub *bus.Subscription[nav.Event]
}

// New builds an App from cfg. Machine options (strictness, logger) pass
// through to nav.NewMachine.
func New(cfg Config, opts ...nav.Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	tr, err := i18n.New(cfg.Language)
	if err != nil {
		return nil, NewConfigError("language", err)
	}

	bp := cfg.Breakpoints()
	machine := nav.NewMachine(catalog, opts...)
	b := bus.New[nav.Event](constants.DefaultBusBuffer, internal.GetInternalLogger())

	return &App{
		Config:      cfg,
		Catalog:     catalog,
		Breakpoints: bp,
		Machine:     machine,
		Controller:  nav.NewController(machine, bp.Resolver(), nav.NewState(catalog)),
		Bus:         b,
		Translator:  tr,
		sub:         b.Subscribe(),
	}, nil
}

// Run feeds bus events into the controller until the bus is closed or ctx
// is done.
func (a *App) Run(ctx context.Context) error {
	return a.Controller.Listen(ctx, a.sub.C)
}

// Events returns the app's bus subscription. Run drains it; an interactive
// shell may drain it instead, but not both at once.
func (a *App) Events() <-chan nav.Event {
	return a.sub.C
}

// Emit publishes a navigation event on the bus.
func (a *App) Emit(ctx context.Context, ev nav.Event) error {
	return a.Bus.Publish(ctx, ev)
}

// MenuItems lists the menu for the current state.
func (a *App) MenuItems() []MenuItem {
	return MenuItems(a.Catalog, a.Controller.State(), a.Translator)
}

// Close shuts the bus down; Run returns once the queued events are applied.
func (a *App) Close() {
	a.Bus.Close()
}
