package operations

import (
	"context"
	"fmt"

	"github.com/Epistemic-Technology/pdfsplit/internal/chunker"
	"github.com/Epistemic-Technology/pdfsplit/internal/config"
	"github.com/Epistemic-Technology/pdfsplit/internal/discovery"
	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/internal/pdf"
	"github.com/Epistemic-Technology/pdfsplit/internal/storage"
	"github.com/Epistemic-Technology/pdfsplit/models"
)

// SplitRequest describes one split of a source document
type SplitRequest struct {
	Source        models.SourceInfo
	OutputDir     string
	PagesPerChunk int
	Zotero        pdf.ZoteroCredentials
}

// LoadDocument fetches and parses the document named by source
func LoadDocument(ctx context.Context, source models.SourceInfo, creds pdf.ZoteroCredentials) (*pdf.Document, error) {
	if source.Path != "" && source.URL == "" && source.ZoteroID == "" {
		return pdf.Open(source.Path)
	}

	data, err := pdf.GetData(ctx, source, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PDF data: %w", err)
	}
	return pdf.Read(data)
}

// SplitDocument reads the source, writes its chunks into the output directory
// and records the run when store is non-nil.
//
// Parameters:
//   - ctx: Context for cancellation, checked between chunks
//   - req: Source, output directory and chunk size
//   - store: Optional run history; nil skips recording
//   - log: Receives progress notices
//
// Returns the run, including the chunks written before any failure.
func SplitDocument(ctx context.Context, req SplitRequest, store storage.Store, log logger.Logger) (*models.SplitRun, error) {
	splitter, err := chunker.NewSplitter(req.PagesPerChunk, log)
	if err != nil {
		return nil, err
	}

	doc, err := LoadDocument(ctx, req.Source, req.Zotero)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	result, splitErr := splitter.Split(ctx, doc, req.OutputDir)
	run := &models.SplitRun{
		Source:        req.Source,
		OutputDir:     req.OutputDir,
		PagesPerChunk: req.PagesPerChunk,
		PageCount:     doc.PageCount(),
	}
	if result != nil {
		run.Chunks = result.Files
	}
	run.ChunkCount = len(run.Chunks)

	if splitErr != nil {
		return run, splitErr
	}

	if store != nil {
		if _, err := store.RecordRun(ctx, run); err != nil {
			// The chunks are on disk; losing the history entry is not fatal
			log.Warn("Failed to record run: %v", err)
		}
	}

	return run, nil
}

// RunFromInputDir finds the single input document and splits it into the
// working directory. Discovery errors are returned unchanged so callers can
// tell them apart with errors.Is and errors.As.
func RunFromInputDir(ctx context.Context, cfg config.Config, store storage.Store, log logger.Logger) (*models.SplitRun, error) {
	inputPath, err := discovery.FindInput(cfg.InputDir, cfg.InputExt)
	if err != nil {
		return nil, err
	}
	log.Info("Found: %s", inputPath)

	return SplitDocument(ctx, SplitRequest{
		Source:        models.SourceInfo{Path: inputPath},
		OutputDir:     cfg.WorkingDir,
		PagesPerChunk: cfg.PagesPerChunk,
		Zotero: pdf.ZoteroCredentials{
			APIKey:    cfg.ZoteroAPIKey,
			LibraryID: cfg.ZoteroLibraryID,
		},
	}, store, log)
}
