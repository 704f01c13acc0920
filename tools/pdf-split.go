package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdfsplit/internal/config"
	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/internal/operations"
	"github.com/Epistemic-Technology/pdfsplit/internal/pdf"
	"github.com/Epistemic-Technology/pdfsplit/internal/storage"
	"github.com/Epistemic-Technology/pdfsplit/models"
)

type PDFSplitQuery struct {
	Path          string `json:"path,omitempty"`            // Local file path
	URL           string `json:"url,omitempty"`             // URL to download the PDF from
	ZoteroID      string `json:"zotero_id,omitempty"`       // Zotero attachment key
	OutputDir     string `json:"output_dir,omitempty"`      // Defaults to the configured working directory
	PagesPerChunk int    `json:"pages_per_chunk,omitempty"` // Defaults to the configured chunk size
}

type PDFSplitResponse struct {
	RunID         string             `json:"run_id,omitempty"`
	ResourcePaths []string           `json:"resource_paths,omitempty"`
	PageCount     int                `json:"page_count"`
	ChunkCount    int                `json:"chunk_count"`
	OutputDir     string             `json:"output_dir"`
	Chunks        []models.ChunkFile `json:"chunks"`
}

func PDFSplitTool() *mcp.Tool {
	inputschema, err := jsonschema.For[PDFSplitQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "pdf-split",
		Description: "Split a PDF into consecutive chunk files of at most pages_per_chunk pages each, named chunk_01.pdf, chunk_02.pdf and so on. The PDF can be given as a local path, a URL or a Zotero attachment key.",
		InputSchema: inputschema,
	}
}

func PDFSplitToolHandler(ctx context.Context, req *mcp.CallToolRequest, query PDFSplitQuery, store storage.Store, cfg config.Config, log logger.Logger) (*mcp.CallToolResult, *PDFSplitResponse, error) {
	log.Info("pdf-split tool called")

	splitReq := operations.SplitRequest{
		Source: models.SourceInfo{
			Path:     query.Path,
			URL:      query.URL,
			ZoteroID: query.ZoteroID,
		},
		OutputDir:     query.OutputDir,
		PagesPerChunk: query.PagesPerChunk,
		Zotero: pdf.ZoteroCredentials{
			APIKey:    cfg.ZoteroAPIKey,
			LibraryID: cfg.ZoteroLibraryID,
		},
	}
	if splitReq.OutputDir == "" {
		splitReq.OutputDir = cfg.WorkingDir
	}
	if splitReq.PagesPerChunk == 0 {
		splitReq.PagesPerChunk = cfg.PagesPerChunk
	}

	run, err := operations.SplitDocument(ctx, splitReq, store, log)
	if err != nil {
		log.Error("pdf-split tool failed: %v", err)
		return nil, nil, err
	}

	responseData := &PDFSplitResponse{
		RunID:      run.RunID,
		PageCount:  run.PageCount,
		ChunkCount: run.ChunkCount,
		OutputDir:  run.OutputDir,
		Chunks:     run.Chunks,
	}
	if run.RunID != "" {
		responseData.ResourcePaths = storage.CalculateResourcePaths(run)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Split %d pages into %d chunk files in %s.", run.PageCount, run.ChunkCount, run.OutputDir)
	for _, c := range run.Chunks {
		fmt.Fprintf(&text, "\n%s: pages %d-%d (%d pages)", c.Path, c.FirstPage, c.LastPage, c.PageCount())
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text.String()},
		},
	}

	return result, responseData, nil
}
