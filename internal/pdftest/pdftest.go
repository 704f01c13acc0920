// Package pdftest builds small PDF documents for tests.
package pdftest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PageHeight is the media box height of every generated page
const PageHeight = 200

// PageWidth returns the media box width of 1-based page n, so that pages can
// be told apart after they are copied into another document.
func PageWidth(n int) int {
	return 100 + n
}

// Build returns a PDF with the given number of empty pages, each carrying its
// own media box of PageWidth(n) x PageHeight.
func Build(pages int) ([]byte, error) {
	xRefTable, err := pdfcpu.CreateDemoXRef()
	if err != nil {
		return nil, err
	}
	rootDict, err := xRefTable.Catalog()
	if err != nil {
		return nil, err
	}

	pagesDict := types.Dict(
		map[string]types.Object{
			"Type":  types.Name("Pages"),
			"Count": types.Integer(pages),
		},
	)
	pagesIndRef, err := xRefTable.IndRefForNewObject(pagesDict)
	if err != nil {
		return nil, err
	}

	kids := types.Array{}
	for n := 1; n <= pages; n++ {
		sd, err := xRefTable.NewStreamDictForBuf([]byte("q Q"))
		if err != nil {
			return nil, err
		}
		if err := sd.Encode(); err != nil {
			return nil, err
		}
		contentIndRef, err := xRefTable.IndRefForNewObject(*sd)
		if err != nil {
			return nil, err
		}

		pageDict := types.Dict(
			map[string]types.Object{
				"Type":      types.Name("Page"),
				"Parent":    *pagesIndRef,
				"MediaBox":  types.RectForDim(float64(PageWidth(n)), PageHeight).Array(),
				"Resources": types.NewDict(),
				"Contents":  *contentIndRef,
			},
		)
		pageIndRef, err := xRefTable.IndRefForNewObject(pageDict)
		if err != nil {
			return nil, err
		}
		kids = append(kids, *pageIndRef)
	}

	pagesDict.Insert("Kids", kids)
	rootDict.Insert("Pages", *pagesIndRef)
	xRefTable.PageCount = pages

	var buf bytes.Buffer
	ctx := pdfcpu.CreateContext(xRefTable, model.NewDefaultConfiguration())
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Blank is Build for tests; a build failure fails the test
func Blank(t testing.TB, pages int) []byte {
	t.Helper()
	data, err := Build(pages)
	if err != nil {
		t.Fatalf("Failed to build %d-page PDF: %v", pages, err)
	}
	return data
}

// WriteBlank writes a blank PDF with the given number of pages to dir/name
// and returns its path
func WriteBlank(t testing.TB, dir, name string, pages int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Blank(t, pages), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
