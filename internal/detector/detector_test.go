package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name      string
		inputFile string
		wantKind  Kind
	}{
		{"source extension", "game.c8s", Source},
		{"asm extension", "game.asm", Source},
		{"no extension", "game", Source},
		{"ch8 extension", "game.ch8", Binary},
		{"uppercase ch8 extension", "GAME.CH8", Binary},
		{"rom extension", "game.rom", Binary},
		{"c8 extension", "dir/game.c8", Binary},
		{"listing extension", "game.lst", Listing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, d.Detect(tt.inputFile))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "source", Source.String())
	assert.Equal(t, "binary", Binary.String())
	assert.Equal(t, "listing", Listing.String())
}
