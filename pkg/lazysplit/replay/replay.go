// Package replay drives a navigation controller from a line-oriented script
// and records a JSON snapshot after every event. It is used for headless
// demos and for reproducing navigation bugs.
//
// Script lines:
//
//	select <route> [payload]
//	menu
//	push <route> [payload]
//	split <route> [payload]
//	nav <route> [payload] [primary|detail]
//	pop
//	device compact|regular [landscape|portrait] [width]
//	resize <width> <height>
//
// A route may also be written as id(payload), the form events print in.
// Payloads containing spaces must use that form; runs of blanks inside them
// read back as a single space.
// Blank lines and lines starting with # are ignored.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("bad arguments")
)

// ParseError reports the script line that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("replay: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser turns script lines into events.
type Parser struct {
	// Breakpoints classify resize lines.
	Breakpoints nav.Breakpoints
}

// Parse reads a script using the default breakpoints.
func Parse(r io.Reader) ([]nav.Event, error) {
	return Parser{Breakpoints: nav.DefaultBreakpoints()}.Parse(r)
}

// Parse reads every event in the script. It stops at the first bad line.
func (p Parser) Parse(r io.Reader) ([]nav.Event, error) {
	var events []nav.Event
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := p.ParseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// ParseLine parses a single script line.
func (p Parser) ParseLine(text string) (nav.Event, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, ErrArguments
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "menu":
		if len(args) != 0 {
			return nil, ErrArguments
		}
		return nav.ToggleMenu{}, nil
	case "pop", "back":
		if len(args) != 0 {
			return nil, ErrArguments
		}
		return nav.Pop{}, nil
	case "select":
		r, err := parseRoute(args)
		if err != nil {
			return nil, err
		}
		return nav.SelectMainRoute{Route: r}, nil
	case "push":
		r, err := parseRoute(args)
		if err != nil {
			return nil, err
		}
		return nav.PushFullScreen{Route: r}, nil
	case "split":
		r, err := parseRoute(args)
		if err != nil {
			return nil, err
		}
		return nav.PushIntoSplit{Route: r}, nil
	case "nav":
		override := router.TargetUnset
		if len(args) > 1 {
			if t, err := router.ParseTarget(args[len(args)-1]); err == nil {
				override = t
				args = args[:len(args)-1]
			}
		}
		r, err := parseRoute(args)
		if err != nil {
			return nil, err
		}
		return nav.Navigate{Route: r, Override: override}, nil
	case "device":
		return parseDevice(args)
	case "resize":
		if len(args) != 2 {
			return nil, ErrArguments
		}
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: width: %v", ErrArguments, err)
		}
		h, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("%w: height: %v", ErrArguments, err)
		}
		return p.Breakpoints.Classify(w, h), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func parseRoute(args []string) (router.Route, error) {
	if len(args) > 0 && strings.Contains(args[0], "(") {
		// id(payload) may span fields when the payload has spaces.
		text := strings.Join(args, " ")
		id, payload, _ := strings.Cut(text, "(")
		if !strings.HasSuffix(payload, ")") || id == "" {
			return router.Route{}, fmt.Errorf("%w: route %q", ErrArguments, text)
		}
		return router.WithPayload(router.RouteID(id), strings.TrimSuffix(payload, ")")), nil
	}
	switch len(args) {
	case 1:
		return router.NewRoute(router.RouteID(args[0])), nil
	case 2:
		return router.WithPayload(router.RouteID(args[0]), args[1]), nil
	default:
		return router.Route{}, fmt.Errorf("%w: want <route> [payload]", ErrArguments)
	}
}

func parseDevice(args []string) (nav.Event, error) {
	if len(args) == 0 || len(args) > 3 {
		return nil, fmt.Errorf("%w: want compact|regular [landscape|portrait] [width]", ErrArguments)
	}

	var ev nav.DeviceClassChanged
	switch strings.ToLower(args[0]) {
	case "compact":
		ev.Compact = true
	case "regular":
	default:
		return nil, fmt.Errorf("%w: width class %q", ErrArguments, args[0])
	}

	for _, a := range args[1:] {
		switch strings.ToLower(a) {
		case "landscape":
			ev.Landscape = true
		case "portrait":
		default:
			w, err := strconv.Atoi(a)
			if err != nil || w < 0 {
				return nil, fmt.Errorf("%w: %q is not an orientation or width", ErrArguments, a)
			}
			ev.Width = w
		}
	}
	return ev, nil
}
