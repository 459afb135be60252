// Package detector handles input file classification.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8asm/internal/config"
	"github.com/retroenv/retrogolib/log"
)

// Kind is the detected content kind of an input file.
type Kind int

// Input file kinds.
const (
	Source  Kind = iota // assembly source text
	Binary              // assembled CHIP-8 program
	Listing             // listing written by the assembler
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Listing:
		return "listing"
	default:
		return "source"
	}
}

// Detector handles input kind detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new input detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the kind of the input file from its extension.
// Unknown extensions are treated as source files.
func (d *Detector) Detect(filename string) Kind {
	kind := detectFromFile(filename)
	d.logger.Debug("Detected input kind",
		log.Stringer("kind", kind),
		log.String("file", filename))
	return kind
}

// detectFromFile determines the input kind based on file extension.
func detectFromFile(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case config.BinaryExtension, ".rom", ".c8":
		return Binary
	case config.ListingExtension:
		return Listing
	default:
		return Source
	}
}
