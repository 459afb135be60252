// Package linker resolves label addresses and encodes the parsed program into
// CHIP-8 machine code.
package linker

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/retroenv/chip8asm/internal/arch/chip8"
	"github.com/retroenv/chip8asm/internal/instruction"
	"github.com/retroenv/chip8asm/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// Errors returned by the linker.
var (
	ErrDuplicateLabel    = errors.New("duplicate label")
	ErrUndefinedLabel    = errors.New("undefined label")
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrValueOutOfRange   = errors.New("value out of range")
	ErrProgramTooLarge   = errors.New("program exceeds memory")
)

// Entry is a program item together with its address. Word contains the
// encoded opcode for instructions and is 0 for labels.
type Entry struct {
	Item    instruction.Assembly
	Address uint16
	Word    uint16
}

// Result is the output of a successful link.
type Result struct {
	Entries []Entry
	Words   []uint16 // opcodes in program order
	Code    []byte   // big-endian serialized opcodes
	Labels  *symbols.Table
}

// Linker runs both passes over a parsed program.
type Linker struct {
	logger *log.Logger
}

// New returns a new linker.
func New(logger *log.Logger) *Linker {
	return &Linker{
		logger: logger,
	}
}

// Link resolves all label addresses and encodes every instruction.
// Any error aborts the link, no partial result is returned.
func (l *Linker) Link(items []instruction.Assembly) (*Result, error) {
	labels, err := ResolveAddresses(items)
	if err != nil {
		return nil, fmt.Errorf("resolving addresses: %w", err)
	}

	for _, sym := range labels.Sorted() {
		l.logger.Debug("Label address",
			log.String("label", sym.Name),
			log.Hex("address", sym.Address))
	}

	result := &Result{
		Entries: make([]Entry, 0, len(items)),
		Labels:  labels,
	}

	address := uint16(chip8.ProgramStart)
	for _, item := range items {
		entry := Entry{
			Item:    item,
			Address: address,
		}

		if ins, ok := item.(*instruction.Instruction); ok {
			word, err := Encode(ins.Op, labels)
			if err != nil {
				return nil, fmt.Errorf("%s: encoding '%s': %w", ins.Pos, ins.Op, err)
			}
			entry.Word = word
			result.Words = append(result.Words, word)
			address += instruction.Size
		}

		result.Entries = append(result.Entries, entry)
	}

	for _, sym := range labels.Unused() {
		l.logger.Warn("Label is never referenced",
			log.String("label", sym.Name),
			log.String("position", sym.Pos.String()))
	}

	result.Code = Bytes(result.Words)
	return result, nil
}

// ResolveAddresses runs the addressing pass: it assigns every label the
// address of the instruction following it, starting at the program load
// address. Instructions advance the address by their size. Label references
// are recorded in the returned table, which is not modified afterwards.
func ResolveAddresses(items []instruction.Assembly) (*symbols.Table, error) {
	labels := symbols.New()
	address := chip8.ProgramStart

	for _, item := range items {
		switch item := item.(type) {
		case *instruction.Label:
			sym := symbols.Symbol{
				Name:    item.Name,
				Address: uint16(address),
				Pos:     item.Pos,
			}
			if existing, ok := labels.Declare(sym); !ok {
				return nil, fmt.Errorf("%s: %w '%s', first declared at %s",
					item.Pos, ErrDuplicateLabel, item.Name, existing.Pos)
			}

		case *instruction.Instruction:
			if address-chip8.ProgramStart+instruction.Size > chip8.ProgramSpace {
				return nil, fmt.Errorf("%s: %w, instruction '%s' would be placed at $%04X",
					item.Pos, ErrProgramTooLarge, item.Op, address)
			}
			if ref, ok := item.Op.(instruction.LabelReference); ok {
				labels.Reference(ref.Target())
			}
			address += instruction.Size
		}
	}

	return labels, nil
}

// Bytes serializes opcodes in big-endian order.
func Bytes(words []uint16) []byte {
	code := make([]byte, 0, len(words)*instruction.Size)
	for _, word := range words {
		code = binary.BigEndian.AppendUint16(code, word)
	}
	return code
}
