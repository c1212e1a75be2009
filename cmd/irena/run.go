package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/germanamz/irena/cmd/irena/internal/app"
	"github.com/germanamz/irena/cmd/irena/internal/format"
	"github.com/germanamz/irena/cmd/irena/internal/msgs"
	"github.com/germanamz/irena/pkg/forms"
	"github.com/germanamz/irena/pkg/site"
)

// run opens the storefront page and, when the catalog comes from a file,
// watches that file until the page is closed.
func run(parent context.Context, opts *rootOptions) error {
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logPath, err := opts.logPath()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(logPath, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	cfg, source, err := site.Resolve(opts.sitePath())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Info("catalog loaded", "source", source, "products", len(cfg.Products), "collections", len(cfg.Collections))

	// Detect the background before bubbletea owns the terminal so glamour
	// never queries it mid-run.
	format.IsDarkBG = lipgloss.HasDarkBackground()

	model, err := app.New(ctx, cfg,
		app.WithLogger(log),
		app.WithSubmitter(forms.NewSubmitter(forms.WithSubmitLogger(log))),
	)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	// Send the program reference so carousels can notify it from their timers.
	g.Go(func() error {
		p.Send(msgs.ProgramReadyMsg{Program: p})
		return nil
	})

	if source != "embedded" {
		w := site.NewWatcher(source,
			func(cfg site.Config) { p.Send(msgs.SiteReloadedMsg{Config: cfg}) },
			site.WithWatchLogger(log),
			site.WithErrorHandler(func(err error) { p.Send(msgs.SiteReloadFailedMsg{Err: err}) }),
		)
		g.Go(func() error { return w.Run(gctx) })
	}

	return g.Wait()
}
