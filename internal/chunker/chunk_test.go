package chunker

import (
	"errors"
	"testing"
)

func TestPlan_Properties(t *testing.T) {
	for total := 0; total <= 70; total++ {
		for _, size := range []int{1, 2, 7, 29, 30, 31, 100} {
			chunks, err := Plan(total, size)
			if err != nil {
				t.Fatalf("Plan(%d, %d) failed: %v", total, size, err)
			}

			wantCount := (total + size - 1) / size
			if len(chunks) != wantCount {
				t.Fatalf("Plan(%d, %d) produced %d chunks, want %d", total, size, len(chunks), wantCount)
			}
			if Count(total, size) != wantCount {
				t.Fatalf("Count(%d, %d) = %d, want %d", total, size, Count(total, size), wantCount)
			}

			next := 0
			for i, c := range chunks {
				if c.Number != i+1 {
					t.Fatalf("chunk %d has number %d", i, c.Number)
				}
				if c.Start != next {
					t.Fatalf("Plan(%d, %d): chunk %d starts at %d, want %d", total, size, c.Number, c.Start, next)
				}
				if i < len(chunks)-1 && c.Len() != size {
					t.Fatalf("Plan(%d, %d): chunk %d has %d pages, want %d", total, size, c.Number, c.Len(), size)
				}
				next = c.End
			}
			if next != total {
				t.Fatalf("Plan(%d, %d) covers [0, %d), want [0, %d)", total, size, next, total)
			}

			if len(chunks) > 0 {
				last := chunks[len(chunks)-1].Len()
				want := total % size
				if want == 0 {
					want = size
				}
				if last != want {
					t.Fatalf("Plan(%d, %d): last chunk has %d pages, want %d", total, size, last, want)
				}
			}
		}
	}
}

func TestPlan_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		total int
		size  int
		want  []Chunk
	}{
		{
			name:  "65 pages by 30",
			total: 65,
			size:  30,
			want: []Chunk{
				{Number: 1, Start: 0, End: 30},
				{Number: 2, Start: 30, End: 60},
				{Number: 3, Start: 60, End: 65},
			},
		},
		{
			name:  "exactly one chunk",
			total: 30,
			size:  30,
			want:  []Chunk{{Number: 1, Start: 0, End: 30}},
		},
		{
			name:  "empty document",
			total: 0,
			size:  30,
			want:  []Chunk{},
		},
		{
			name:  "fewer pages than chunk size",
			total: 4,
			size:  30,
			want:  []Chunk{{Number: 1, Start: 0, End: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(tt.total, tt.size)
			if err != nil {
				t.Fatalf("Plan failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Plan returned %d chunks, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlan_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := Plan(10, size); !errors.Is(err, ErrInvalidChunkSize) {
			t.Errorf("Plan(10, %d) error = %v, want ErrInvalidChunkSize", size, err)
		}
	}
	if _, err := Plan(-1, 30); err == nil {
		t.Error("Expected error for negative page count")
	}
}

func TestChunks_StopsEarly(t *testing.T) {
	var seen []int
	for c := range Chunks(100, 10) {
		seen = append(seen, c.Number)
		if c.Number == 3 {
			break
		}
	}
	if len(seen) != 3 {
		t.Errorf("Expected iteration to stop after 3 chunks, saw %v", seen)
	}

	count := 0
	for range Chunks(10, 0) {
		count++
	}
	if count != 0 {
		t.Errorf("Chunks with size 0 yielded %d chunks", count)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		number int
		want   string
	}{
		{1, "chunk_01.pdf"},
		{9, "chunk_09.pdf"},
		{10, "chunk_10.pdf"},
		{99, "chunk_99.pdf"},
		{100, "chunk_100.pdf"},
	}
	for _, tt := range tests {
		if got := FileName(tt.number); got != tt.want {
			t.Errorf("FileName(%d) = %q, want %q", tt.number, got, tt.want)
		}
	}

	prev := ""
	for c := range Chunks(99*3, 3) {
		name := c.FileName()
		if name <= prev {
			t.Fatalf("File names not strictly increasing: %q after %q", name, prev)
		}
		prev = name
	}
}
