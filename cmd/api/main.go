package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/banco-aurora-ledger/internal/api"
	"github.com/banco-aurora-ledger/internal/api/service"
	"github.com/banco-aurora-ledger/internal/bank"
	"github.com/banco-aurora-ledger/internal/config"
	"github.com/banco-aurora-ledger/internal/logger"
	"github.com/banco-aurora-ledger/internal/storage"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig("api")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Restore the previous bank state if a snapshot exists
	snapshotFile := storage.NewSnapshotFile(cfg.Snapshot.Path)
	var b *bank.Bank
	if snapshotFile.Exists() {
		data, err := snapshotFile.Load()
		if err != nil {
			log.Error("Failed to read snapshot", "path", snapshotFile.Path(), "error", err)
			os.Exit(1)
		}
		b, err = bank.LoadJSON(data)
		if err != nil {
			log.Error("Failed to restore bank from snapshot", "path", snapshotFile.Path(), "error", err)
			os.Exit(1)
		}
		log.Info("Bank restored from snapshot", "path", snapshotFile.Path(), "accounts", len(b.AccountIDs()))
	} else {
		b = bank.New(cfg.Bank.Name)
		log.Info("Starting with a fresh bank", "bank", cfg.Bank.Name)
	}

	// Initialize the settlement worker pool
	runner, err := bank.NewEndOfDayRunner(log, cfg.WorkerPool.Size)
	if err != nil {
		log.Error("Failed to initialize settlement pool", "error", err)
		os.Exit(1)
	}

	// Initialize services
	bankService := service.NewBankService(log, b, runner, cfg.Bank.DefaultCurrency)

	// Initialize REST server
	server := api.NewServer(log, cfg, bankService, bankService, bankService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	// Persist the final bank state
	if data, dumpErr := bankService.DumpSnapshot(shutdownCtx); dumpErr != nil {
		log.Error("Failed to dump final snapshot", "error", dumpErr)
	} else if saveErr := snapshotFile.Save(data); saveErr != nil {
		log.Error("Failed to save final snapshot", "path", snapshotFile.Path(), "error", saveErr)
	} else {
		log.Info("Final snapshot saved", "path", snapshotFile.Path())
	}

	// Release the settlement pool
	runner.Shutdown()

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
