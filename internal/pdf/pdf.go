package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Epistemic-Technology/pdfsplit/models"
)

// ErrNotPDF is returned for input that does not carry a PDF header
var ErrNotPDF = errors.New("not a PDF document")

// Document is a parsed PDF held in memory
type Document struct {
	ctx *model.Context
}

// Open reads and parses the PDF at path
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Read parses PDF bytes
func Read(data models.PdfData) (*Document, error) {
	if !bytes.Contains(data[:min(len(data), 1024)], []byte("%PDF-")) {
		return nil, ErrNotPDF
	}
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}
	return &Document{ctx: ctx}, nil
}

// PageCount returns the number of pages in the document
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// ExtractRange returns a new document holding the pages with 0-based
// indices in [start, end), in their original order
func (d *Document) ExtractRange(start, end int) (*Document, error) {
	if start < 0 || end > d.PageCount() || start >= end {
		return nil, fmt.Errorf("invalid page range [%d, %d) for %d pages", start, end, d.PageCount())
	}

	pageNrs := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		pageNrs = append(pageNrs, i+1)
	}

	ctx, err := pdfcpu.ExtractPages(d.ctx, pageNrs, false)
	if err != nil {
		return nil, fmt.Errorf("failed to extract pages %d-%d: %w", start+1, end, err)
	}
	return &Document{ctx: ctx}, nil
}

// Write serializes the document to w
func (d *Document) Write(w io.Writer) error {
	return api.WriteContext(d.ctx, w)
}

// WriteRange writes the pages in [start, end) to w as a standalone PDF
func (d *Document) WriteRange(w io.Writer, start, end int) error {
	part, err := d.ExtractRange(start, end)
	if err != nil {
		return err
	}
	return part.Write(w)
}
