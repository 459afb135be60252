package linker

import (
	"fmt"

	"github.com/retroenv/chip8asm/internal/arch/chip8"
	"github.com/retroenv/chip8asm/internal/instruction"
	"github.com/retroenv/chip8asm/internal/symbols"
)

// Encode returns the 16 bit opcode of an operation. Label references are
// resolved using the given label table.
func Encode(op instruction.Op, labels *symbols.Table) (uint16, error) {
	switch op := op.(type) {
	case instruction.LoadIndex:
		return address(0xA, op.Address)
	case instruction.SetDelayTimer:
		return nibbles(0xF, op.Src.Code(), 0x1, 0x5)
	case instruction.SetSoundTimer:
		return nibbles(0xF, op.Src.Code(), 0x1, 0x8)
	case instruction.GetDelayTimer:
		return nibbles(0xF, op.Dst.Code(), 0x0, 0x7)
	case instruction.LoadByte:
		return immediate(0x6, op.Dst, op.Value)
	case instruction.Move:
		return nibbles(0x8, op.Dst.Code(), op.Src.Code(), 0x0)
	case instruction.Draw:
		return nibbles(0xD, op.X.Code(), op.Y.Code(), op.Height)
	case instruction.Jump:
		return labelAddress(0x1, op.Label, labels)
	case instruction.AddIndex:
		return nibbles(0xF, op.Src.Code(), 0x1, 0xE)
	case instruction.AddByte:
		return immediate(0x7, op.Dst, op.Value)
	case instruction.Add:
		return nibbles(0x8, op.Dst.Code(), op.Src.Code(), 0x4)
	case instruction.SkipEqualByte:
		return immediate(0x3, op.X, op.Value)
	case instruction.SkipEqual:
		return nibbles(0x5, op.X.Code(), op.Y.Code(), 0x0)
	case instruction.SkipNotEqualByte:
		return immediate(0x4, op.X, op.Value)
	case instruction.SkipNotEqual:
		return nibbles(0x9, op.X.Code(), op.Y.Code(), 0x0)
	case instruction.ClearScreen:
		return 0x00E0, nil
	case instruction.LoadFont:
		return nibbles(0xF, op.Src.Code(), 0x2, 0x9)
	case instruction.Call:
		return labelAddress(0x2, op.Label, labels)
	case instruction.Random:
		return immediate(0xC, op.Dst, op.Mask)
	case instruction.SkipKeyNotPressed:
		return nibbles(0xE, op.Key.Code(), 0xA, 0x1)
	case instruction.And:
		return nibbles(0x8, op.Dst.Code(), op.Src.Code(), 0x2)
	case instruction.Sub:
		return nibbles(0x8, op.Dst.Code(), op.Src.Code(), 0x5)
	case instruction.StoreBCD:
		return nibbles(0xF, op.Src.Code(), 0x3, 0x3)
	case instruction.StoreRegisters:
		return nibbles(0xF, op.Last.Code(), 0x6, 0x5)
	case instruction.Return:
		return 0x00EE, nil
	case instruction.NoOp:
		return 0x0000, nil
	default:
		return 0, fmt.Errorf("unsupported operation type %T", op)
	}
}

// nibbles assembles four 4 bit fields into an opcode, n0 being the highest.
// Operand fields that do not fit into 4 bits are rejected.
func nibbles(n0, n1, n2, n3 uint8) (uint16, error) {
	for _, n := range [...]uint8{n1, n2, n3} {
		if n > 0xF {
			return 0, fmt.Errorf("%w: $%X does not fit into 4 bits", ErrValueOutOfRange, n)
		}
	}
	return uint16(n0)<<12 | uint16(n1)<<8 | uint16(n2)<<4 | uint16(n3), nil
}

// immediate encodes the opcode form with a register and an 8 bit literal.
func immediate(n0 uint8, reg instruction.V, value uint8) (uint16, error) {
	return nibbles(n0, reg.Code(), value>>4, value&0xF)
}

// address encodes the opcode form with a 12 bit address.
func address(n0 uint8, addr uint16) (uint16, error) {
	if addr > chip8.MaxAddress {
		return 0, fmt.Errorf("%w: $%04X does not fit into 12 bits", ErrAddressOutOfRange, addr)
	}
	return nibbles(n0, uint8(addr>>8), uint8(addr>>4)&0xF, uint8(addr)&0xF)
}

func labelAddress(n0 uint8, name string, labels *symbols.Table) (uint16, error) {
	addr, ok := labels.Resolve(name)
	if !ok {
		return 0, fmt.Errorf("%w '%s'", ErrUndefinedLabel, name)
	}
	return address(n0, addr)
}
