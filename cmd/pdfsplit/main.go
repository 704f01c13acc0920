// Command pdfsplit splits the single PDF in the input folder into chunk files
// of at most PDFSPLIT_PAGES_PER_CHUNK pages (30 by default), written to the
// working folder as chunk_01.pdf, chunk_02.pdf and so on.
//
// Exit status is 0 on success, 1 when the PDF cannot be read or a chunk cannot
// be written, and 2 when the input folder holds no PDF or more than one.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Epistemic-Technology/pdfsplit/internal/config"
	"github.com/Epistemic-Technology/pdfsplit/internal/discovery"
	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/internal/operations"
	"github.com/Epistemic-Technology/pdfsplit/internal/storage"
)

const (
	exitFailure   = 1
	exitDiscovery = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env may set LOG_*, so it is loaded before the logger exists
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stdout, err)
		return exitFailure
	}

	log, err := logger.NewLogger(logger.LogConfig{Fallback: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stdout, "Invalid logging configuration: %v\n", err)
		return exitFailure
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("Invalid configuration: %v", err)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store storage.Store
	if cfg.DBPath != "" {
		sqliteStore, err := storage.NewSQLiteStore(cfg.DBPath, log)
		if err != nil {
			log.Error("Failed to open run history: %v", err)
			return exitFailure
		}
		defer sqliteStore.Close()
		store = sqliteStore
	}

	_, err = operations.RunFromInputDir(ctx, cfg, store, log)
	if err == nil {
		return 0
	}

	var multi *discovery.MultipleInputsError
	switch {
	case errors.Is(err, discovery.ErrNoInput):
		log.Error("No PDF files found in '%s/' folder.", cfg.InputDir)
		log.Info("Please place the PDF to split in the '%s/' folder.", cfg.InputDir)
		return exitDiscovery
	case errors.As(err, &multi):
		log.Error("Found multiple PDFs in '%s/':", cfg.InputDir)
		for _, path := range multi.Paths {
			log.Info("  - %s", path)
		}
		log.Info("Please keep only one PDF in the input folder.")
		return exitDiscovery
	default:
		log.Error("%v", err)
		return exitFailure
	}
}
