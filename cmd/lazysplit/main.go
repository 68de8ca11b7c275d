package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/replay"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/shell"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run holds everything main does so deferred cleanup always happens before
// the process exits.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lazysplit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file (routes, breakpoints, language)")
	lang := fs.String("lang", "", "Language for titles, overrides the config (e.g. 'en', 'es')")
	script := fs.String("script", "", "Replay a navigation script and print one JSON snapshot per event ('-' reads stdin)")
	logPath := fs.String("log", "", "Write logs to this file")
	help := fs.Bool("help", false, "Show help")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *help {
		fmt.Fprintln(stdout, "Usage: lazysplit [options]")
		fmt.Fprintln(stdout, "\nAn adaptive split-pane navigation demo. Resize the terminal to switch layouts.")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return nil
	}

	cfg := lazysplit.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = lazysplit.LoadConfig(*configPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	if *lang != "" {
		cfg.Language = *lang
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}

	lazysplit.Init(lazysplit.Options{LogPath: cfg.LogPath, LogLevel: cfg.LogLevel})
	defer lazysplit.Close()

	app, err := lazysplit.New(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if *script != "" {
		if err := runScript(app, *script, stdin, stdout); err != nil {
			lazysplit.GetLogger().Error("script failed", "script", *script, "error", err)
			return err
		}
		return nil
	}

	out, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(out.Fd())) {
		return errors.New("the interactive shell needs a terminal; use -script for headless runs")
	}

	if err := runShell(app); err != nil {
		return fmt.Errorf("running shell: %w", err)
	}
	return nil
}

func runScript(app *lazysplit.App, path string, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	events, err := replay.Parser{Breakpoints: app.Breakpoints}.Parse(in)
	if err != nil {
		return err
	}
	return replay.Run(app.Controller, events, stdout)
}

func runShell(app *lazysplit.App) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(
		shell.New(ctx, app),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}
