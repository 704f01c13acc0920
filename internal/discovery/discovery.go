// Package discovery locates the single document to split in an input directory.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoInput is returned when the input directory holds no matching file
var ErrNoInput = errors.New("no input file found")

// MultipleInputsError is returned when more than one candidate file exists
type MultipleInputsError struct {
	Dir   string
	Paths []string
}

func (e *MultipleInputsError) Error() string {
	return fmt.Sprintf("found %d input files in %s: %s", len(e.Paths), e.Dir, strings.Join(e.Paths, ", "))
}

// FindInput returns the only regular file in dir whose extension matches ext.
// The comparison ignores case and the directory is not walked recursively.
func FindInput(dir, ext string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: directory %s does not exist", ErrNoInput, dir)
		}
		return "", fmt.Errorf("failed to read input directory: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		matches = append(matches, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w in %s", ErrNoInput, dir)
	case 1:
		return matches[0], nil
	default:
		return "", &MultipleInputsError{Dir: dir, Paths: matches}
	}
}
