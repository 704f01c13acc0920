package main

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdfsplit/internal/config"
	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs default to stderr
	log, err := logger.NewLogger(logger.LogConfig{Fallback: "stderr"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid logging configuration: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: %v", err)
	}

	log.Info("Starting pdfsplit MCP server")

	srv, store, err := server.CreateServer(cfg, log)
	if err != nil {
		log.Fatal("%v", err)
	}

	err = srv.Run(context.Background(), &mcp.StdioTransport{})
	store.Close()
	if err != nil {
		log.Fatal("Server failed: %v", err)
	}
}
