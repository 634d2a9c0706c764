// Command api runs the expense reconciliation HTTP server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/bakertreasury/expense-reconciler/internal/adapters/ledger"
	"github.com/bakertreasury/expense-reconciler/internal/api"
	"github.com/bakertreasury/expense-reconciler/internal/application/service"
	"github.com/bakertreasury/expense-reconciler/internal/domain/reconciler"
	"github.com/bakertreasury/expense-reconciler/internal/infrastructure/config"
	"github.com/bakertreasury/expense-reconciler/internal/infrastructure/logging"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	cfg := config.LoadOrEnvWithPath(*configPath)
	logger := logging.NewLogger(cfg.Logging)

	if cfg.Ledger.SpreadsheetURL == "" {
		logger.Error("no spreadsheet URL configured; set ledger.spreadsheet_url or SPREADSHEET_URL")
		os.Exit(1)
	}

	ledgerClient := ledger.NewClient(
		cfg.Ledger.Worksheet,
		time.Duration(cfg.Ledger.CacheTTLMinutes)*time.Minute,
		logger.With("system", "ledger"),
	)

	matchingDefaults := reconciler.Config{
		PriceTolerance:      decimal.NewFromFloat(cfg.Matching.PriceTolerance),
		SimilarityThreshold: cfg.Matching.SimilarityThreshold,
	}

	svc := service.NewReconcileService(ledgerClient, cfg.Ledger.SpreadsheetURL, matchingDefaults, logger)

	server := api.NewServer(api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, svc, logger.With("system", "api"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("received signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
