// Package loader handles source file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned for source files that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("source is not valid UTF-8")

// Loader handles loading source files from disk.
type Loader struct{}

// New creates a new source loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete source file. The returned text is owned by the
// caller and outlives all tokens produced from it.
func (l *Loader) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes converts raw source bytes into source text.
func LoadFromBytes(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
