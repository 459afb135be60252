// Package main implements the main entry point for a CHIP-8 assembler
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8asm/internal/cli"
	"github.com/retroenv/chip8asm/internal/config"
	"github.com/retroenv/chip8asm/internal/fileprocessor"
	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	var parsed options.Program
	cmd := cli.NewCommand(fileprocessor.VersionString(version, commit), func(cmd *cobra.Command, opts options.Program) error {
		parsed = opts
		return run(cmd.Context(), opts)
	})

	if err := cmd.ExecuteContext(ctx); err != nil {
		logger := config.CreateLogger(parsed.Debug, parsed.Quiet)
		reportError(logger, err)
		os.Exit(1)
	}
}

// reportError logs a failed command run. Cancellation was already reported
// while processing the files.
func reportError(logger *log.Logger, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	logger.Error("Command failed", log.Err(err))
}

func run(ctx context.Context, opts options.Program) error {
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match pattern %s", opts.Batch)
	}

	var failed int
	for _, file := range files {
		opts.Input = file
		if len(files) > 1 || opts.Output == "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return err
			}
			logger.Error("Assembling failed", log.Err(err))
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to assemble", failed, len(files))
	}
	return nil
}
