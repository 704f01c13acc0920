package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdfsplit/internal/config"
	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/internal/storage"
	"github.com/Epistemic-Technology/pdfsplit/resources"
	"github.com/Epistemic-Technology/pdfsplit/tools"
)

// CreateServer opens the run history and builds the MCP server around it.
// The caller owns the returned store and closes it when the server stops.
func CreateServer(cfg config.Config, log logger.Logger) (*mcp.Server, storage.Store, error) {
	store, err := initializeStorage(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return newServer(cfg, store, log), store, nil
}

func newServer(cfg config.Config, store storage.Store, log logger.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "pdfsplit", Version: "v0.1.0"}, nil)

	runResourceHandler := resources.NewRunResourceHandler(store)

	mcp.AddTool(server, tools.PDFSplitTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.PDFSplitQuery) (*mcp.CallToolResult, *tools.PDFSplitResponse, error) {
		return tools.PDFSplitToolHandler(ctx, req, query, store, cfg, log)
	})

	mcp.AddTool(server, tools.PDFPageCountTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.PDFPageCountQuery) (*mcp.CallToolResult, *tools.PDFPageCountResponse, error) {
		return tools.PDFPageCountToolHandler(ctx, req, query, cfg, log)
	})

	mcp.AddTool(server, tools.SplitHistoryTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.SplitHistoryQuery) (*mcp.CallToolResult, *tools.SplitHistoryResponse, error) {
		return tools.SplitHistoryToolHandler(ctx, req, query, store, log)
	})

	mcp.AddTool(server, tools.SplitRunTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.SplitRunQuery) (*mcp.CallToolResult, *tools.SplitRunResponse, error) {
		return tools.SplitRunToolHandler(ctx, req, query, store, log)
	})

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "split://{runId}",
		Name:        "split-run",
		Description: "A recorded split run with its source and chunk files",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return runResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "split://{runId}/chunks",
		Name:        "split-chunks",
		Description: "All chunk files written by a split run",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return runResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "split://{runId}/chunks/{chunkNumber}",
		Name:        "split-chunk",
		Description: "A specific chunk file of a split run (1-indexed)",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return runResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	return server
}

// initializeStorage creates the run history store. The server always keeps
// history, defaulting to ~/.pdfsplit/history.db.
func initializeStorage(cfg config.Config, log logger.Logger) (storage.Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dbDir := filepath.Join(homeDir, ".pdfsplit")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dbPath = filepath.Join(dbDir, "history.db")
	}

	log.Info("Initializing SQLite database at: %s", dbPath)

	store, err := storage.NewSQLiteStore(dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQLite store: %w", err)
	}

	return store, nil
}
