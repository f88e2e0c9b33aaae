// Package main provides the interactive probability calculator.
// It wires configuration, logging, the distribution catalog, and the
// menu session over standard input and output.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sred02/probcalc/internal/config"
	"github.com/sred02/probcalc/internal/menu"
	"github.com/sred02/probcalc/internal/observability"
	"github.com/sred02/probcalc/internal/terminal"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file (optional)")
	catalogPath := flag.String("catalog", "", "path to a distribution catalog YAML file (default: built-in)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	catalog, err := menu.DefaultCatalog()
	if *catalogPath != "" {
		catalog, err = menu.LoadCatalog(*catalogPath)
	}
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	color := cfg.Display.Color
	if os.Getenv("NO_COLOR") != "" {
		color = false
	}
	console := terminal.NewConsole(os.Stdin, os.Stdout, color)
	session := menu.NewSession(console, catalog, cfg.Display, logger)

	// Ctrl+C exits cleanly with a goodbye, matching the explicit exit path.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Printf("\n\nThanks for using %s. Goodbye!\n", menu.AppName)
		logger.Info("interrupted", zap.Duration("uptime", time.Since(start)))
		_ = logger.Sync()
		os.Exit(0)
	}()

	logger.Info("calculator initialized",
		zap.Duration("startup", time.Since(start)),
		zap.Int("decimals", cfg.Display.Decimals),
	)

	if err := session.Run(); err != nil {
		logger.Fatal("session error", zap.Error(err))
	}
}
