package tools

import (
	"context"
	"errors"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/internal/storage"
	"github.com/Epistemic-Technology/pdfsplit/models"
)

var errNoHistory = errors.New("run history is disabled")

type SplitHistoryQuery struct {
	Limit int `json:"limit,omitempty"` // Max runs returned (default 20)
}

type SplitHistoryResponse struct {
	Runs  []models.SplitRun `json:"runs"`
	Count int               `json:"count"`
}

func SplitHistoryTool() *mcp.Tool {
	inputschema, err := jsonschema.For[SplitHistoryQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "split-history",
		Description: "List previous pdf-split runs, newest first, with their source, output directory and chunk counts.",
		InputSchema: inputschema,
	}
}

func SplitHistoryToolHandler(ctx context.Context, req *mcp.CallToolRequest, query SplitHistoryQuery, store storage.Store, log logger.Logger) (*mcp.CallToolResult, *SplitHistoryResponse, error) {
	log.Info("split-history tool called")
	if store == nil {
		return nil, nil, errNoHistory
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}

	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		log.Error("split-history tool failed: %v", err)
		return nil, nil, err
	}

	return nil, &SplitHistoryResponse{Runs: runs, Count: len(runs)}, nil
}

type SplitRunQuery struct {
	RunID string `json:"run_id"`
}

type SplitRunResponse struct {
	Run *models.SplitRun `json:"run"`
}

func SplitRunTool() *mcp.Tool {
	inputschema, err := jsonschema.For[SplitRunQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "split-run",
		Description: "Get one recorded pdf-split run with the path and page range of every chunk file.",
		InputSchema: inputschema,
	}
}

func SplitRunToolHandler(ctx context.Context, req *mcp.CallToolRequest, query SplitRunQuery, store storage.Store, log logger.Logger) (*mcp.CallToolResult, *SplitRunResponse, error) {
	log.Info("split-run tool called")
	if store == nil {
		return nil, nil, errNoHistory
	}
	if query.RunID == "" {
		return nil, nil, errors.New("run_id is required")
	}

	run, err := store.GetRun(ctx, query.RunID)
	if err != nil {
		return nil, nil, err
	}

	return nil, &SplitRunResponse{Run: run}, nil
}
