// Command ls-orrery is a terminal orrery: it animates a star system from
// exoplanet catalog parameters using Kepler-derived orbits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/config"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/polar"
	"github.com/litescript/ls-orrery/internal/ui"
	"github.com/litescript/ls-orrery/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	snapshotPath  string
	watchInterval time.Duration
	showVersion   bool
)

func main() {
	configPath := flag.String("config", "", "Config file (YAML or TOML)")
	catalogPath := flag.String("catalog", "", "Exoplanet catalog CSV (default: built-in TRAPPIST-1)")
	scale := flag.Float64("scale", 0, "Initial display scale in px/AU (0 = config or fit)")
	accel := flag.Float64("accel", 0, "Simulated seconds per wall second (0 = config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 5s)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-orrery", version.Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override config file values.
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if *scale > 0 {
		cfg.ScalePxPerAU = *scale
	}
	if *accel > 0 {
		cfg.TimeAccel = *accel
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	// Load the catalog.
	var star catalog.StarRecord
	var planets []catalog.PlanetRecord
	if cfg.CatalogPath != "" {
		star, planets, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("Loaded %s: %d planets", star.HostName, len(planets))
	} else {
		star, planets = catalog.Default()
		logger.Info("No catalog given, using built-in %s system", star.HostName)
	}

	sys, err := orrery.NewSystem(polar.Point{}, star, planets, cfg.ScalePxPerAU)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if watchInterval > 0 && !summaryMode && snapshotPath == "" {
		summaryMode = true // -watch alone means repeated summaries
	}

	if summaryMode || snapshotPath != "" {
		runHeadless(ctx, sys, cfg)
		return
	}

	model := ui.New(sys, cfg.TickRate, cfg.TimeAccel, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles -summary and -snapshot-path without starting the TUI.
func runHeadless(ctx context.Context, sys *orrery.System, cfg config.Config) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	outputOnce := func() error {
		if snapshotPath != "" {
			export := orrery.ExportSnapshot(sys, time.Now())
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			orrery.WriteSummary(os.Stdout, sys)
		}
		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: advance simulated time between outputs.
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sys.Advance(watchInterval.Seconds() * cfg.TimeAccel)
			if summaryMode && isTTY {
				fmt.Println() // blank line between tables
			}
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
