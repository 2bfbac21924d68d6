package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/routelab/agenttop/internal/api"
	"github.com/routelab/agenttop/internal/config"
	"github.com/routelab/agenttop/internal/storage"
	"github.com/routelab/agenttop/internal/tui"
	"github.com/routelab/agenttop/internal/viewmodel"
)

func main() {
	configFlag := flag.String("config", "", "Path to the config file (default ~/.config/agenttop/config.toml)")
	flag.Parse()

	var loadResult *config.LoadResult
	var err error
	if *configFlag != "" {
		loadResult, err = config.LoadFrom(*configFlag)
	} else {
		loadResult, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "agenttop: config error: %v\n", err)
		os.Exit(1)
	}
	cfg := loadResult.Config

	for _, w := range loadResult.Warnings {
		fmt.Fprintf(os.Stderr, "agenttop: config warning: %s\n", w)
	}

	store, isPersistent := storage.NewFromPath(cfg.Storage.DBPath)
	if isPersistent {
		if err := store.Prune(cfg.Storage.RetentionDays); err != nil {
			fmt.Fprintf(os.Stderr, "agenttop: prune warning: %v\n", err)
		}
	}

	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(time.Duration(cfg.API.TimeoutMS)*time.Millisecond),
	)

	vms := viewmodel.NewSet(client, viewmodel.Options{
		WindowDays:      cfg.Display.WindowDays,
		ExecutionsLimit: cfg.Display.ExecutionsLimit,
		ModelPeriod:     cfg.Display.ModelPeriod,
		HistoryCapacity: cfg.Display.HistoryCapacity,
		Store:           store,
	})
	vms.Classify.LoadPersisted()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// The TUI owns the terminal from here on.
	log.SetOutput(io.Discard)

	model := tui.NewModel(cfg, vms,
		tui.WithPersistenceFlag(isPersistent),
		tui.WithOnShutdown(func() {
			if store != nil {
				_ = store.Close()
			}
		}),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
	)

	go func() {
		select {
		case <-sigCh:
			if store != nil {
				_ = store.Close()
			}
			p.Quit()
		case <-ctx.Done():
			return
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "agenttop: %v\n", err)
		os.Exit(1)
	}
}
