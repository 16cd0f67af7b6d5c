package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"contribcard/internal/card"
	"contribcard/internal/datasource"
	"contribcard/internal/eventbus"
	"contribcard/internal/ui"
	"contribcard/internal/watcher"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Interactive contributor search (default)",
	Args:  cobra.NoArgs,
	RunE:  runSearch,
}

// events the UI renders
var uiEvents = []eventbus.EventType{
	eventbus.EventDirectoryLoaded,
	eventbus.EventDirectoryLoadFailed,
	eventbus.EventCardLoaded,
	eventbus.EventCardNotFound,
	eventbus.EventCardFailed,
	eventbus.EventError,
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.closeLog()
	cfg := a.cfg

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Initialize services
	selector := card.NewSelector(bus)
	cardSvc := card.NewService(bus, a.client, cfg.Data.Timeout())
	defer cardSvc.Close()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, selector)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, et := range uiEvents {
		unsubscribe := bus.Subscribe(et, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			case <-ctx.Done():
			default:
				log.WithField("event", e.Type()).Warn("Event channel full, dropping event")
			}
		})
		defer unsubscribe()
	}

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	// Initial directory load
	go func() {
		loadCtx, loadCancel := context.WithTimeout(ctx, cfg.Data.Timeout())
		defer loadCancel()
		_, _ = watcher.Reload(loadCtx, a.client, bus)
	}()

	if fsSource, ok := a.source.(*datasource.FSSource); ok && cfg.Data.Watch {
		w, err := watcher.New(fsSource.IndexFile(), a.client, bus, watcher.Options{Timeout: cfg.Data.Timeout()})
		if err != nil {
			log.WithError(err).Warn("watcher disabled")
		} else {
			defer w.Close()
			go func() {
				if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.WithError(err).Warn("watcher stopped")
				}
			}()
		}
	}

	// Run the UI
	log.Info("Starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.WithError(err).Error("Error running program")
		return err
	}
	log.Info("UI exited normally")

	uiModel.Controller().Close()
	return nil
}
