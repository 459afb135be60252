// Package fileprocessor handles file selection and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8asm/internal/config"
	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/chip8asm/internal/pipeline"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile assembles a single source file.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts); err != nil {
		return fmt.Errorf("assembling %s: %w", opts.Input, err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options.
// A batch pattern that names a directory selects all source files in it.
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		pattern := opts.Batch
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			pattern = filepath.Join(pattern, "*"+config.SourceExtension)
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + config.BinaryExtension
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8asm", log.String("version", VersionString(version, commit)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// VersionString returns the version with the abbreviated commit appended.
func VersionString(version, commit string) string {
	if commit == "" {
		return version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}
