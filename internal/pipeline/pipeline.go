// Package pipeline orchestrates the assembly workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/k0kubun/pp/v3"
	"github.com/retroenv/chip8asm/internal/detector"
	"github.com/retroenv/chip8asm/internal/instruction"
	"github.com/retroenv/chip8asm/internal/linker"
	"github.com/retroenv/chip8asm/internal/loader"
	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/chip8asm/internal/parser"
	"github.com/retroenv/chip8asm/internal/verification"
	"github.com/retroenv/chip8asm/internal/writer"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete assembly workflow.
type Pipeline struct {
	logger     *log.Logger
	detector   *detector.Detector
	loader     *loader.Loader
	linker     *linker.Linker
	dumpWriter io.Writer
}

// New creates a new assembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:     logger,
		detector:   detector.New(logger),
		loader:     loader.New(),
		linker:     linker.New(logger),
		dumpWriter: os.Stderr,
	}
}

// Execute runs the complete assembly pipeline. The output file is only
// written if all stages before it succeeded.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (*linker.Result, error) {
	if err := p.validateFiles(opts); err != nil {
		return nil, err
	}

	text, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}

	p.printInfo(opts)

	result, err := p.Assemble(ctx, text, opts)
	if err != nil {
		return nil, err
	}

	if err := writeOutput(opts.Output, result.Code); err != nil {
		return nil, err
	}

	if opts.Verify {
		if err := verification.VerifyOutput(p.logger, result, opts.Output); err != nil {
			_ = os.Remove(opts.Output)
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	if opts.Listing != "" {
		if err := writeListing(opts.Listing, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Assemble parses and links the given source text.
func (p *Pipeline) Assemble(ctx context.Context, text string, opts options.Program) (*linker.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	items, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	if opts.Dump {
		p.dumpProgram(items)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("linking: %w", err)
	}

	result, err := p.linker.Link(items)
	if err != nil {
		return nil, fmt.Errorf("linking: %w", err)
	}
	if opts.Dump {
		p.dumpLabels(result)
	}

	p.logger.Info("Assembled program",
		log.Int("instructions", len(result.Words)),
		log.Int("bytes", len(result.Code)),
		log.Int("labels", result.Labels.Len()),
	)
	return result, nil
}

// validateFiles rejects inputs that are not assembly source and output or
// listing paths that would overwrite another file of the run.
func (p *Pipeline) validateFiles(opts options.Program) error {
	if opts.Output == "" {
		return errors.New("no output file given")
	}
	switch p.detector.Detect(opts.Input) {
	case detector.Binary:
		return fmt.Errorf("input file %s looks like an assembled program", opts.Input)
	case detector.Listing:
		return fmt.Errorf("input file %s looks like an assembly listing", opts.Input)
	case detector.Source:
	}
	if samePath(opts.Input, opts.Output) {
		return fmt.Errorf("output file %s would overwrite the input file", opts.Output)
	}
	if opts.Listing == "" {
		return nil
	}
	if samePath(opts.Listing, opts.Input) {
		return fmt.Errorf("listing file %s would overwrite the input file", opts.Listing)
	}
	if samePath(opts.Listing, opts.Output) {
		return fmt.Errorf("listing file %s would overwrite the output file", opts.Listing)
	}
	return nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// printInfo prints information about the source being processed.
func (p *Pipeline) printInfo(opts options.Program) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing source",
		log.String("file", opts.Input),
		log.String("system", string(arch.CHIP8System)),
		log.String("output", opts.Output),
	)
}

func (p *Pipeline) dumpProgram(items []instruction.Assembly) {
	_, _ = pp.Fprintln(p.dumpWriter, items)
}

func (p *Pipeline) dumpLabels(result *linker.Result) {
	_, _ = pp.Fprintln(p.dumpWriter, result.Labels.Sorted())
}

func writeOutput(path string, code []byte) error {
	if err := os.WriteFile(path, code, 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return nil
}

func writeListing(path string, result *linker.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating listing file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	w := writer.New(result, file, writer.Options{
		OpcodeComments: true,
		SymbolTable:    true,
	})
	if err := w.Write(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}
