package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/internal/storage"
	"github.com/Epistemic-Technology/pdfsplit/models"
)

func newHandler(t *testing.T) (*RunResourceHandler, string) {
	t.Helper()
	store, err := storage.NewSQLiteStore(":memory:", logger.NewNoOpLogger())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runID, err := store.RecordRun(context.Background(), &models.SplitRun{
		Source:        models.SourceInfo{Path: "input/doc.pdf"},
		OutputDir:     "working",
		PagesPerChunk: 30,
		PageCount:     40,
		Chunks: []models.ChunkFile{
			{Number: 1, Path: "working/chunk_01.pdf", FirstPage: 1, LastPage: 30},
			{Number: 2, Path: "working/chunk_02.pdf", FirstPage: 31, LastPage: 40},
		},
	})
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	return NewRunResourceHandler(store), runID
}

func TestReadResource(t *testing.T) {
	h, runID := newHandler(t)
	ctx := context.Background()

	result, err := h.ReadResource(ctx, "split://"+runID)
	if err != nil {
		t.Fatalf("ReadResource failed: %v", err)
	}
	var run models.SplitRun
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &run); err != nil {
		t.Fatalf("Run resource is not JSON: %v", err)
	}
	if run.RunID != runID || len(run.Chunks) != 2 {
		t.Errorf("Unexpected run resource: %+v", run)
	}

	result, err = h.ReadResource(ctx, "split://"+runID+"/chunks/2")
	if err != nil {
		t.Fatalf("ReadResource chunk failed: %v", err)
	}
	var chunk models.ChunkFile
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &chunk); err != nil {
		t.Fatalf("Chunk resource is not JSON: %v", err)
	}
	if chunk.FirstPage != 31 || chunk.LastPage != 40 {
		t.Errorf("Chunk 2 covers %d-%d, want 31-40", chunk.FirstPage, chunk.LastPage)
	}

	if _, err := h.ReadResource(ctx, "split://"+runID+"/chunks"); err != nil {
		t.Errorf("ReadResource chunks failed: %v", err)
	}
}

func TestReadResource_Errors(t *testing.T) {
	h, runID := newHandler(t)
	ctx := context.Background()

	uris := []string{
		"pdf://" + runID,
		"split://",
		"split://missing",
		"split://" + runID + "/chunks/3",
		"split://" + runID + "/chunks/abc",
		"split://" + runID + "/pages",
	}
	for _, uri := range uris {
		if _, err := h.ReadResource(ctx, uri); err == nil {
			t.Errorf("ReadResource(%q) should fail", uri)
		}
	}
}
