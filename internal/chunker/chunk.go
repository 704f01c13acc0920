// Package chunker partitions a document's pages into fixed-size ranges and
// writes one PDF per range.
package chunker

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidChunkSize is returned when the pages per chunk is below one
var ErrInvalidChunkSize = errors.New("chunk size must be at least 1")

// Chunk is the half-open page index range [Start, End) of one output file.
// Number is the 1-based position of the chunk in the sequence.
type Chunk struct {
	Number int
	Start  int
	End    int
}

// Len returns the number of pages in the chunk
func (c Chunk) Len() int {
	return c.End - c.Start
}

// FileName is the name of the output file for the chunk
func (c Chunk) FileName() string {
	return FileName(c.Number)
}

// FileName formats the output file name for a 1-based chunk number
func FileName(number int) string {
	return fmt.Sprintf("chunk_%02d.pdf", number)
}

// Count returns ceil(totalPages / size), or 0 when there is nothing to split
func Count(totalPages, size int) int {
	if totalPages <= 0 || size < 1 {
		return 0
	}
	return (totalPages + size - 1) / size
}

// Chunks lazily yields the chunks covering [0, totalPages) in order.
// A size below one yields nothing; use Plan to get an error instead.
func Chunks(totalPages, size int) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		if size < 1 {
			return
		}
		number := 1
		for start := 0; start < totalPages; {
			end := min(start+size, totalPages)
			if !yield(Chunk{Number: number, Start: start, End: end}) {
				return
			}
			start = end
			number++
		}
	}
}

// Plan returns every chunk for a document of totalPages pages
func Plan(totalPages, size int) ([]Chunk, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidChunkSize, size)
	}
	if totalPages < 0 {
		return nil, fmt.Errorf("page count must not be negative, got %d", totalPages)
	}

	chunks := make([]Chunk, 0, Count(totalPages, size))
	for c := range Chunks(totalPages, size) {
		chunks = append(chunks, c)
	}
	return chunks, nil
}
