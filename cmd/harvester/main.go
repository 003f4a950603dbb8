// cmd/harvester/main.go - CLI entry point for harvest runs
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/valeran/harvester/internal/config"
	"github.com/valeran/harvester/internal/fetch"
	"github.com/valeran/harvester/internal/harvest"
	"github.com/valeran/harvester/internal/monitoring"
	"github.com/valeran/harvester/internal/output"
	"github.com/valeran/harvester/internal/record"
)

// Version information (set by build flags)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// main handles CLI arguments and routes to the appropriate command.
func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "run":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Error: config file required\n")
			fmt.Fprintf(os.Stderr, "Usage: harvester run <config.yaml>\n")
			os.Exit(1)
		}
		runHarvest(os.Args[2])

	case "validate":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Error: config file required\n")
			fmt.Fprintf(os.Stderr, "Usage: harvester validate <config.yaml>\n")
			os.Exit(1)
		}
		validateConfig(os.Args[2])

	case "version", "--version", "-v":
		printVersion()

	case "help", "--help", "-h":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command '%s'\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runHarvest(configFile string) {
	verbose := hasFlag("-v") || hasFlag("--verbose")

	if err := executeHarvest(configFile, verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validateConfig(configFile string) {
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if hasFlag("-v") || hasFlag("--verbose") {
		fmt.Printf("Configuration details:\n")
		fmt.Printf("  Name: %s\n", cfg.Name)
		fmt.Printf("  Mode: %s\n", cfg.Mode)
		fmt.Printf("  Output format: %s\n", cfg.Output.Format)
	}

	fmt.Printf("✓ Configuration file '%s' is valid\n", configFile)
}

// executeHarvest runs one complete harvest: configuration, engine, sink.
func executeHarvest(configFile string, verbose bool) error {
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(registry)

	if cfg.Metrics.Enabled {
		server := monitoring.NewServer(cfg.Metrics.Addr, registry)
		server.Start()
		defer server.Shutdown(context.Background())
		logger.Info("metrics server listening", zap.String("addr", cfg.Metrics.Addr))
	}

	fetcher := fetch.New(cfg.Headers)
	defer fetcher.Close()

	engine := harvest.NewEngine(fetcher, logger, metrics)

	logger.Info("starting harvest",
		zap.String("name", cfg.Name),
		zap.String("mode", cfg.Mode),
	)

	headers, records, err := harvestByMode(cfg, engine)
	if err != nil {
		return fmt.Errorf("harvest failed: %w", err)
	}

	manager, err := output.NewManager(&cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create output manager: %w", err)
	}
	if err := manager.Write(headers, records); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	logger.Info("harvest complete",
		zap.Int("records", len(records)),
		zap.String("format", cfg.Output.Format),
	)
	if cfg.Output.File != "" {
		fmt.Printf("Harvest completed successfully. %d records saved to %s\n", len(records), cfg.Output.File)
	}

	return nil
}

// harvestByMode dispatches to the catalog or directory pipeline and returns
// the header row matching the mode's record shape.
func harvestByMode(cfg *config.HarvestConfig, engine *harvest.Engine) ([]string, []record.Record, error) {
	ctx := context.Background()

	switch cfg.Mode {
	case config.ModeCatalog:
		extractor := &harvest.ListExtractor{ItemSelector: cfg.Catalog.ItemSelector}
		pages := harvest.NewPageSet(cfg.Catalog.URLs)
		records, err := engine.HarvestCatalog(ctx, pages, extractor, harvest.AdmitAll, cfg.Concurrency)
		if err != nil {
			return nil, nil, err
		}
		return record.CatalogItem{}.Headers(), records, nil

	case config.ModeDirectory:
		endpoints := harvest.Endpoints{Base: cfg.Directory.BaseURL}
		records, err := engine.HarvestDirectory(ctx, endpoints, cfg.Directory.StartPage, cfg.Directory.PageSize, harvest.PublicOnly)
		if err != nil {
			return nil, nil, err
		}
		return record.Organization{}.Headers(), records, nil

	default:
		return nil, nil, fmt.Errorf("unsupported mode: %s", cfg.Mode)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// hasFlag checks if a flag is present in command line arguments
func hasFlag(flag string) bool {
	for _, arg := range os.Args {
		if arg == flag {
			return true
		}
	}
	return false
}

// printUsage displays help information
func printUsage() {
	fmt.Println("Harvester - Paginated Record Harvesting Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  harvester run <config.yaml>        Run harvest with configuration file")
	fmt.Println("  harvester validate <config.yaml>   Validate configuration file")
	fmt.Println("  harvester version                  Show version information")
	fmt.Println("  harvester help                     Show this help message")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -v, --verbose                      Enable verbose output")
}

// printVersion displays version information
func printVersion() {
	fmt.Printf("Harvester %s\n", version)
	fmt.Printf("Build time: %s\n", buildTime)
	fmt.Printf("Git commit: %s\n", gitCommit)
}
