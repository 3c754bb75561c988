// Product catalog dashboard.
//
// Architecture overview:
//   Data (internal/catalog)  - HTTP client and fetch state machine
//   View (internal/view)     - pure filter/sort/paginate pipeline
//   UI (internal/ui)         - Bubble Tea components
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/catalog"
	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/config"
	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/logging"
	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Initialize logging
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		logging.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}
	logging.Info("Config loaded", "baseURL", cfg.Catalog.BaseURL, "pageSize", cfg.UI.PageSize)

	client := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.ListLimit, cfg.RequestTimeout())
	timeout := cfg.RequestTimeout()

	// Fetch command constructors. Each carries its generation back so the
	// state machine can discard results from superseded requests.
	fetchAll := func(gen int) tea.Cmd {
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			products, total, err := client.FetchAll(ctx)
			return ui.ProductsLoaded{Gen: gen, Products: products, Total: total, Err: err}
		}
	}

	fetchOne := func(gen, id int) tea.Cmd {
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			product, err := client.FetchOne(ctx, id)
			return ui.ProductLoaded{Gen: gen, Product: product, Err: err}
		}
	}

	app := ui.NewApp(fetchAll, fetchOne, cfg.UI.PageSize).
		WithSkeletonDelays(cfg.ListSkeletonDelay(), cfg.DetailSkeletonDelay())

	p := tea.NewProgram(app, tea.WithAltScreen())

	logging.Info("Starting UI")
	if _, err := p.Run(); err != nil {
		logging.Error("Application error", "error", err)
		fatal("Error: %v", err)
	}

	logging.Info("Dashboard exiting normally")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
