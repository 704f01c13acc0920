package models

import "time"

type PdfData []byte

// SourceInfo contains information about where the PDF came from.
// Exactly one of the fields is expected to be set.
type SourceInfo struct {
	Path     string `json:"path,omitempty"`
	ZoteroID string `json:"zotero_id,omitempty"`
	URL      string `json:"url,omitempty"`
}

// ChunkFile describes one written chunk. Pages are 1-based and inclusive.
type ChunkFile struct {
	Number    int    `json:"number"`
	Path      string `json:"path"`
	FirstPage int    `json:"first_page"`
	LastPage  int    `json:"last_page"`
}

// PageCount returns the number of pages held by the chunk file
func (c ChunkFile) PageCount() int {
	return c.LastPage - c.FirstPage + 1
}

// SplitRun is the record of one split of a source document into chunk files
type SplitRun struct {
	RunID         string      `json:"run_id"`
	Source        SourceInfo  `json:"source"`
	OutputDir     string      `json:"output_dir"`
	PagesPerChunk int         `json:"pages_per_chunk"`
	PageCount     int         `json:"page_count"`
	ChunkCount    int         `json:"chunk_count"`
	Chunks        []ChunkFile `json:"chunks,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
