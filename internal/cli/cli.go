// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"

	"github.com/retroenv/chip8asm/internal/options"
	"github.com/spf13/cobra"
)

// ErrMissingInput is returned if neither a source file nor a batch pattern is given.
var ErrMissingInput = errors.New("no source file to assemble given")

// RunFunc is called with the parsed options of a valid command line.
type RunFunc func(cmd *cobra.Command, opts options.Program) error

// NewCommand returns the root command of the assembler.
func NewCommand(version string, run RunFunc) *cobra.Command {
	var opts options.Program

	cmd := &cobra.Command{
		Use:   "chip8asm [options] <file to assemble>",
		Short: "Assembler for CHIP-8 programs",
		Long: `chip8asm assembles CHIP-8 assembly source into a binary program that is
loaded at address $200.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyArgs(&opts, args); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return run(cmd, opts)
		},
	}

	readOptionFlags(cmd, &opts)
	return cmd
}

// ParseArgs parses the given arguments without running the assembler.
func ParseArgs(args []string) (options.Program, error) {
	var parsed options.Program
	cmd := NewCommand("", func(_ *cobra.Command, opts options.Program) error {
		parsed = opts
		return nil
	})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err != nil {
		return parsed, fmt.Errorf("parsing arguments: %w", err)
	}
	return parsed, nil
}

// applyArgs sets the input from the positional arguments and validates the
// option combination.
func applyArgs(opts *options.Program, args []string) error {
	if len(args) > 0 {
		if opts.Batch != "" {
			return fmt.Errorf("source file %s can not be combined with a batch pattern", args[0])
		}
		opts.Input = args[0]
	}
	if opts.Input == "" && opts.Batch == "" {
		return ErrMissingInput
	}
	if opts.Batch != "" && opts.Listing != "" {
		return errors.New("a listing file can not be combined with a batch pattern")
	}
	return nil
}

func readOptionFlags(cmd *cobra.Command, opts *options.Program) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", "", "name of the output .ch8 file, derived from the source file name if not given")
	flags.StringVarP(&opts.Listing, "listing", "l", "", "name of an assembly listing file to write")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .ch8 file naming, for example *.c8s, a directory selects all .c8s files in it")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by decoding every instruction")
	flags.BoolVar(&opts.Dump, "dump", false, "print the parsed program and label table to stderr")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")
}
