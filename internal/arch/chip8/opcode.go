package chip8

import (
	"github.com/retroenv/chip8asm/internal/instruction"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Opcode is an instruction word identified by the CHIP-8 opcode table.
type Opcode struct {
	op   chip8.Opcode
	word uint16
}

// Identify looks up the instruction of a word in the CHIP-8 opcode table.
func Identify(word uint16) (Opcode, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			return Opcode{op: op, word: word}, op.Instruction != nil
		}
	}
	return Opcode{word: word}, false
}

// Instruction returns the identified instruction.
func (o Opcode) Instruction() *chip8.Instruction {
	return o.op.Instruction
}

// Name returns the canonical instruction name.
func (o Opcode) Name() string {
	if o.op.Instruction == nil {
		return ""
	}
	return o.op.Instruction.Name
}

// IsJump returns true if the instruction is a jump instruction.
func (o Opcode) IsJump() bool {
	return o.op.Instruction == chip8.JpInst
}

// IsCall returns true if the instruction is a call instruction.
func (o Opcode) IsCall() bool {
	return o.op.Instruction == chip8.CallInst
}

// IsReturn returns true if the instruction is a return instruction.
func (o Opcode) IsReturn() bool {
	return o.op.Instruction == chip8.RetInst
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (o Opcode) IsSkip() bool {
	if o.op.Instruction == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(o.op.Instruction.Name)
}

// ReadsMemory returns true if the instruction reads from memory at I. The
// opcode table groups all ld forms together, so the word decides.
func (o Opcode) ReadsMemory() bool {
	if o.op.Instruction == nil || !chip8.MemoryReadInstructions.Contains(o.op.Instruction.Name) {
		return false
	}
	return o.word&0xF000 == 0xD000 || o.word&0xF0FF == 0xF065
}

// WritesMemory returns true if the instruction writes to memory at I.
func (o Opcode) WritesMemory() bool {
	if o.op.Instruction == nil || !chip8.MemoryWriteInstructions.Contains(o.op.Instruction.Name) {
		return false
	}
	return o.word&0xF0FF == 0xF055 || o.word&0xF0FF == 0xF033
}

// String returns the instruction in canonical CHIP-8 notation, for example
// "ld V0, $05".
func (o Opcode) String() string {
	name := o.Name()
	if name == "" {
		return ""
	}
	if params := formatInstruction(name, o.word); params != "" {
		return name + " " + params
	}
	return name
}

// ExpectedInstruction returns the opcode table instruction that an operation
// encodes to. The no-op word is not part of the table and returns nil.
func ExpectedInstruction(op instruction.Op) *chip8.Instruction {
	switch op.(type) {
	case instruction.ClearScreen:
		return chip8.ClsInst
	case instruction.Return:
		return chip8.RetInst
	case instruction.Jump:
		return chip8.JpInst
	case instruction.Call:
		return chip8.CallInst
	case instruction.SkipEqualByte, instruction.SkipEqual:
		return chip8.SeInst
	case instruction.SkipNotEqualByte, instruction.SkipNotEqual:
		return chip8.SneInst
	case instruction.LoadIndex, instruction.LoadByte, instruction.Move,
		instruction.SetDelayTimer, instruction.SetSoundTimer, instruction.GetDelayTimer,
		instruction.LoadFont, instruction.StoreBCD, instruction.StoreRegisters:
		return chip8.LdInst
	case instruction.AddByte, instruction.Add, instruction.AddIndex:
		return chip8.AddInst
	case instruction.And:
		return chip8.AndInst
	case instruction.Sub:
		return chip8.SubInst
	case instruction.Random:
		return chip8.RndInst
	case instruction.Draw:
		return chip8.DrwInst
	case instruction.SkipKeyNotPressed:
		return chip8.SknpInst
	default:
		return nil
	}
}
