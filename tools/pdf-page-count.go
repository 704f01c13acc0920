package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdfsplit/internal/chunker"
	"github.com/Epistemic-Technology/pdfsplit/internal/config"
	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/internal/operations"
	"github.com/Epistemic-Technology/pdfsplit/internal/pdf"
	"github.com/Epistemic-Technology/pdfsplit/models"
)

type PDFPageCountQuery struct {
	Path          string `json:"path,omitempty"`
	URL           string `json:"url,omitempty"`
	ZoteroID      string `json:"zotero_id,omitempty"`
	PagesPerChunk int    `json:"pages_per_chunk,omitempty"`
}

type PDFPageCountResponse struct {
	PageCount     int `json:"page_count"`
	PagesPerChunk int `json:"pages_per_chunk"`
	ChunkCount    int `json:"chunk_count"`
}

func PDFPageCountTool() *mcp.Tool {
	inputschema, err := jsonschema.For[PDFPageCountQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "pdf-page-count",
		Description: "Count the pages of a PDF and report how many chunk files pdf-split would produce, without writing anything.",
		InputSchema: inputschema,
	}
}

func PDFPageCountToolHandler(ctx context.Context, req *mcp.CallToolRequest, query PDFPageCountQuery, cfg config.Config, log logger.Logger) (*mcp.CallToolResult, *PDFPageCountResponse, error) {
	log.Info("pdf-page-count tool called")

	size := query.PagesPerChunk
	if size == 0 {
		size = cfg.PagesPerChunk
	}
	if size < 1 {
		return nil, nil, chunker.ErrInvalidChunkSize
	}

	doc, err := operations.LoadDocument(ctx, models.SourceInfo{
		Path:     query.Path,
		URL:      query.URL,
		ZoteroID: query.ZoteroID,
	}, pdf.ZoteroCredentials{APIKey: cfg.ZoteroAPIKey, LibraryID: cfg.ZoteroLibraryID})
	if err != nil {
		log.Error("pdf-page-count tool failed: %v", err)
		return nil, nil, err
	}

	return nil, &PDFPageCountResponse{
		PageCount:     doc.PageCount(),
		PagesPerChunk: size,
		ChunkCount:    chunker.Count(doc.PageCount(), size),
	}, nil
}
