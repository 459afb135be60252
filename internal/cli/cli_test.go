package cli

import (
	"errors"
	"testing"

	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/spf13/cobra"
)

//nolint:funlen // test functions can be long
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "input only",
			args: []string{"game.c8s"},
			want: options.Program{Parameters: options.Parameters{Input: "game.c8s"}},
		},
		{
			name: "output and listing",
			args: []string{"-o", "out.ch8", "--listing", "out.lst", "game.c8s"},
			want: options.Program{Parameters: options.Parameters{
				Input: "game.c8s", Output: "out.ch8", Listing: "out.lst",
			}},
		},
		{
			name: "batch",
			args: []string{"--batch", "*.c8s"},
			want: options.Program{Parameters: options.Parameters{Batch: "*.c8s"}},
		},
		{
			name: "flags",
			args: []string{"--verify", "--dump", "--debug", "-q", "game.c8s"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.c8s"},
				Flags:      options.Flags{Verify: true, Dump: true, Debug: true, Quiet: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no input", nil},
		{"too many inputs", []string{"a.c8s", "b.c8s"}},
		{"input and batch", []string{"--batch", "*.c8s", "a.c8s"}},
		{"listing in batch mode", []string{"--batch", "*.c8s", "-l", "out.lst"}},
		{"unknown flag", []string{"--unknown", "a.c8s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			assert.Error(t, err)
		})
	}

	_, err := ParseArgs(nil)
	assert.True(t, errors.Is(err, ErrMissingInput))
}

func TestNewCommand_RunError(t *testing.T) {
	errRun := errors.New("run failed")
	cmd := NewCommand("1.0.0", func(_ *cobra.Command, _ options.Program) error {
		return errRun
	})
	cmd.SetArgs([]string{"game.c8s"})

	err := cmd.Execute()
	assert.True(t, errors.Is(err, errRun))
	assert.Equal(t, "1.0.0", cmd.Version)
}
