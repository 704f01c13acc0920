package pdftest

import (
	"bytes"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func TestBuild(t *testing.T) {
	data := Blank(t, 4)

	if err := api.Validate(bytes.NewReader(data), nil); err != nil {
		t.Fatalf("Generated PDF does not validate: %v", err)
	}

	dims, err := api.PageDims(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatalf("PageDims failed: %v", err)
	}
	if len(dims) != 4 {
		t.Fatalf("Expected 4 pages, got %d", len(dims))
	}
	for i, d := range dims {
		if int(d.Width+0.5) != PageWidth(i+1) || int(d.Height+0.5) != PageHeight {
			t.Errorf("Page %d is %.0fx%.0f, want %dx%d", i+1, d.Width, d.Height, PageWidth(i+1), PageHeight)
		}
	}
}
