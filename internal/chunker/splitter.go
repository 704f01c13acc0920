package chunker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/models"
)

// Source is a page-indexed document that can copy a range of its pages,
// in order, into a new document written to w.
type Source interface {
	PageCount() int
	WriteRange(w io.Writer, start, end int) error
}

// Result describes the files written by one split
type Result struct {
	OutputDir string
	PageCount int
	Files     []models.ChunkFile
}

// Splitter writes a source document as a sequence of chunk files
type Splitter struct {
	pagesPerChunk int
	log           logger.Logger
}

// NewSplitter creates a splitter producing chunks of at most pagesPerChunk pages
func NewSplitter(pagesPerChunk int, log logger.Logger) (*Splitter, error) {
	if pagesPerChunk < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidChunkSize, pagesPerChunk)
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Splitter{pagesPerChunk: pagesPerChunk, log: log}, nil
}

// Split writes one file per chunk of src into outDir, creating the directory
// if needed. On failure the files written so far are left in place and
// returned alongside the error.
func (s *Splitter) Split(ctx context.Context, src Source, outDir string) (*Result, error) {
	total := src.PageCount()
	s.log.Info("Total pages in PDF: %d", total)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &Result{OutputDir: outDir, PageCount: total}
	var buf bytes.Buffer

	for chunk := range Chunks(total, s.pagesPerChunk) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		buf.Reset()
		if err := src.WriteRange(&buf, chunk.Start, chunk.End); err != nil {
			return result, fmt.Errorf("failed to build chunk %d: %w", chunk.Number, err)
		}

		path := filepath.Join(outDir, chunk.FileName())
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return result, fmt.Errorf("failed to write chunk %d: %w", chunk.Number, err)
		}

		s.log.Info("Created %s (pages %d-%d)", path, chunk.Start+1, chunk.End)
		result.Files = append(result.Files, models.ChunkFile{
			Number:    chunk.Number,
			Path:      path,
			FirstPage: chunk.Start + 1,
			LastPage:  chunk.End,
		})
	}

	s.log.Info("Done! Created %d chunk files in %s/", len(result.Files), outDir)
	return result, nil
}
