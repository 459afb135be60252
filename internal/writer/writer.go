// Package writer implements the assembly listing output.
package writer

import (
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/retroenv/chip8asm/internal/arch/chip8"
	"github.com/retroenv/chip8asm/internal/instruction"
	"github.com/retroenv/chip8asm/internal/linker"
)

// Writer writes a listing of an assembled program.
type Writer struct {
	result  *linker.Result
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	OpcodeComments bool // append the canonical CHIP-8 mnemonic as comment
	SymbolTable    bool // append the label table sorted by address
}

// New creates a new listing writer.
func New(result *linker.Result, writer io.Writer, options Options) *Writer {
	return &Writer{
		result:  result,
		options: options,
		writer:  writer,
	}
}

// Write writes the complete listing.
func (w Writer) Write() error {
	if err := w.writeCommentHeader(); err != nil {
		return err
	}

	// a jump or return ends a block, the next instruction is separated by an empty line
	var blockEnd bool
	for i, entry := range w.result.Entries {
		switch item := entry.Item.(type) {
		case *instruction.Label:
			if err := w.writeLabel(i, item); err != nil {
				return err
			}
			blockEnd = false

		case *instruction.Instruction:
			if blockEnd {
				if _, err := fmt.Fprintln(w.writer); err != nil {
					return fmt.Errorf("writing line: %w", err)
				}
			}

			opcode, _ := chip8.Identify(entry.Word)
			if err := w.writeCodeLine(entry, item, opcode); err != nil {
				return err
			}
			blockEnd = opcode.IsJump() || opcode.IsReturn()
		}
	}

	if w.options.SymbolTable {
		return w.writeSymbolTable()
	}
	return nil
}

// writeCommentHeader writes the load address, size and CRC32 checksum as comments.
func (w Writer) writeCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; CHIP-8 assembly listing\n"); err != nil {
		return fmt.Errorf("writing header comment: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Code base address: $%04X\n", chip8.ProgramStart); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Code size: %d bytes\n", len(w.result.Code)); err != nil {
		return fmt.Errorf("writing code size: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n\n", crc32.ChecksumIEEE(w.result.Code)); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	return nil
}

func (w Writer) writeLabel(index int, label *instruction.Label) error {
	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if w.result.Labels.IsUsed(label.Name) {
		if _, err := fmt.Fprintf(w.writer, "%s:\n", label.Name); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "%-32s ; unreferenced\n", label.Name+":"); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w Writer) writeCodeLine(entry linker.Entry, ins *instruction.Instruction, opcode chip8.Opcode) error {
	line := fmt.Sprintf("$%04X  %02X %02X  %s", entry.Address, entry.Word>>8, entry.Word&0xFF, ins.Op)

	comment := ""
	if w.options.OpcodeComments {
		comment = opcodeComment(opcode)
	}

	if comment == "" {
		if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
			return fmt.Errorf("writing code line: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(w.writer, "%-40s ; %s\n", line, comment); err != nil {
			return fmt.Errorf("writing code line with comment: %w", err)
		}
	}
	return nil
}

// opcodeComment returns the canonical notation of the opcode followed by
// notes about its effect on control flow and memory.
func opcodeComment(opcode chip8.Opcode) string {
	comment := opcode.String()
	if comment == "" {
		return ""
	}

	var notes []string
	if opcode.IsSkip() {
		notes = append(notes, "skips next")
	}
	if opcode.IsCall() {
		notes = append(notes, "subroutine")
	}
	if opcode.ReadsMemory() {
		notes = append(notes, "reads [I]")
	}
	if opcode.WritesMemory() {
		notes = append(notes, "writes [I]")
	}
	if len(notes) > 0 {
		comment += " (" + strings.Join(notes, ", ") + ")"
	}
	return comment
}

// writeSymbolTable outputs all labels sorted by address.
func (w Writer) writeSymbolTable() error {
	symbols := w.result.Labels.Sorted()
	if len(symbols) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "\n; Symbols\n"); err != nil {
		return fmt.Errorf("writing symbol table header: %w", err)
	}

	for _, sym := range symbols {
		if _, err := fmt.Fprintf(w.writer, "%s = $%04X\n", sym.Name, sym.Address); err != nil {
			return fmt.Errorf("writing symbol: %w", err)
		}
	}
	return nil
}
