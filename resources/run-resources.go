package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdfsplit/internal/storage"
)

// RunResourceHandler handles resource requests for recorded split runs
type RunResourceHandler struct {
	store storage.Store
}

// NewRunResourceHandler creates a new run resource handler
func NewRunResourceHandler(store storage.Store) *RunResourceHandler {
	return &RunResourceHandler{store: store}
}

// ReadResource reads a specific resource by URI
func (h *RunResourceHandler) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	// Parse URI: split://run_id/chunks/optional_number
	if !strings.HasPrefix(uri, "split://") {
		return nil, fmt.Errorf("invalid URI scheme, expected split://")
	}

	parts := strings.Split(strings.TrimPrefix(uri, "split://"), "/")
	runID := parts[0]
	if runID == "" {
		return nil, fmt.Errorf("invalid URI, missing run ID")
	}

	run, err := h.store.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	var content any
	switch {
	case len(parts) == 1:
		content = run
	case parts[1] == "chunks" && len(parts) == 2:
		content = run.Chunks
	case parts[1] == "chunks" && len(parts) == 3:
		number, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid chunk number: %s", parts[2])
		}
		if number < 1 || number > len(run.Chunks) {
			return nil, fmt.Errorf("chunk not found: %s chunk %d", runID, number)
		}
		content = run.Chunks[number-1]
	default:
		return nil, fmt.Errorf("unknown resource: %s", uri)
	}

	text, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(text),
			},
		},
	}, nil
}
