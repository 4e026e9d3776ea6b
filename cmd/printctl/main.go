package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/openfab/printctl/internal/cli"
	"github.com/openfab/printctl/internal/infrastructure/api"
	"github.com/openfab/printctl/internal/infrastructure/config"
	"github.com/openfab/printctl/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "printctl:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		serverURL  string
		logLevel   string
		jsonLogs   bool
	)
	flags := pflag.NewFlagSet("printctl", pflag.ContinueOnError)
	flags.StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	flags.StringVar(&serverURL, "server", "", "base URL of the print service (overrides config)")
	flags.StringVar(&logLevel, "log-level", "", "minimum log level: trace, debug, info, warn, error")
	flags.BoolVar(&jsonLogs, "json-logs", false, "emit JSON log lines instead of console output")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if jsonLogs {
		cfg.JSONLogs = true
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, JSON: cfg.JSONLogs})

	client, err := api.New(cfg.ServerURL, cfg.RequestTimeout, log)
	if err != nil {
		return err
	}

	app := cli.NewApp(cli.Deps{
		Auth:     api.NewAuthClient(client),
		Requests: api.NewPrintRequestClient(client),
		Admin:    api.NewAdminClient(client),
		Spoolman: api.NewSpoolmanClient(client),
		Log:      log,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	app.Run(ctx)
	return nil
}
