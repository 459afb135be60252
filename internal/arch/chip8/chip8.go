package chip8

import (
	"errors"
	"fmt"

	"github.com/retroenv/chip8asm/internal/instruction"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// ProgramStart is the memory address of the first program instruction.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	// ProgramSpace is the number of bytes available to a program.
	ProgramSpace = MaxAddress - ProgramStart + 1
)

// ErrUnsupportedOpcode is returned for words that no assembler instruction encodes to.
var ErrUnsupportedOpcode = errors.New("unsupported opcode")

// AddressName names a jump or call target by its address.
func AddressName(address uint16) string {
	return fmt.Sprintf("$%03X", address)
}

// Decode returns the operation that is encoded in the given word. The name
// function is used to turn jump and call targets into label names.
func Decode(word uint16, name func(address uint16) string) (instruction.Op, error) {
	x := extractRegisterX(word)
	y := extractRegisterY(word)
	n := uint8(word & 0x000F)
	kk := uint8(word & 0x00FF)
	nnn := word & 0x0FFF

	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x0000:
			return instruction.NoOp{}, nil
		case 0x00E0:
			return instruction.ClearScreen{}, nil
		case 0x00EE:
			return instruction.Return{}, nil
		}

	case 0x1000:
		return instruction.Jump{Label: name(nnn)}, nil
	case 0x2000:
		return instruction.Call{Label: name(nnn)}, nil
	case 0x3000:
		return instruction.SkipEqualByte{X: x, Value: kk}, nil
	case 0x4000:
		return instruction.SkipNotEqualByte{X: x, Value: kk}, nil
	case 0x5000:
		if n == 0 {
			return instruction.SkipEqual{X: x, Y: y}, nil
		}
	case 0x6000:
		return instruction.LoadByte{Dst: x, Value: kk}, nil
	case 0x7000:
		return instruction.AddByte{Dst: x, Value: kk}, nil

	case 0x8000:
		switch n {
		case 0x0:
			return instruction.Move{Dst: x, Src: y}, nil
		case 0x2:
			return instruction.And{Dst: x, Src: y}, nil
		case 0x4:
			return instruction.Add{Dst: x, Src: y}, nil
		case 0x5:
			return instruction.Sub{Dst: x, Src: y}, nil
		}

	case 0x9000:
		if n == 0 {
			return instruction.SkipNotEqual{X: x, Y: y}, nil
		}
	case 0xA000:
		return instruction.LoadIndex{Address: nnn}, nil
	case 0xC000:
		return instruction.Random{Dst: x, Mask: kk}, nil
	case 0xD000:
		return instruction.Draw{X: x, Y: y, Height: n}, nil

	case 0xE000:
		if kk == 0xA1 {
			return instruction.SkipKeyNotPressed{Key: x}, nil
		}

	case 0xF000:
		return decodeMisc(word, x)
	}

	return nil, fmt.Errorf("%w $%04X", ErrUnsupportedOpcode, word)
}

// decodeMisc decodes the Fx.. opcode family.
func decodeMisc(word uint16, x instruction.V) (instruction.Op, error) {
	switch word & 0x00FF {
	case 0x07:
		return instruction.GetDelayTimer{Dst: x}, nil
	case 0x15:
		return instruction.SetDelayTimer{Src: x}, nil
	case 0x18:
		return instruction.SetSoundTimer{Src: x}, nil
	case 0x1E:
		return instruction.AddIndex{Src: x}, nil
	case 0x29:
		return instruction.LoadFont{Src: x}, nil
	case 0x33:
		return instruction.StoreBCD{Src: x}, nil
	case 0x65:
		return instruction.StoreRegisters{Last: x}, nil
	}
	return nil, fmt.Errorf("%w $%04X", ErrUnsupportedOpcode, word)
}

// extractRegisterX extracts the X register nibble from a CHIP-8 opcode.
func extractRegisterX(opcode uint16) instruction.V {
	return instruction.V((opcode & 0x0F00) >> 8)
}

// extractRegisterY extracts the Y register nibble from a CHIP-8 opcode.
func extractRegisterY(opcode uint16) instruction.V {
	return instruction.V((opcode & 0x00F0) >> 4)
}
