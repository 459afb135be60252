// Package instruction contains the data model of the assembler: registers,
// operands, the closed set of CHIP-8 operations and the parsed program items.
package instruction

import (
	"fmt"

	"github.com/retroenv/chip8asm/internal/source"
)

// Size is the size of every encoded instruction in bytes.
const Size = 2

// Data is the right hand operand of move, arithmetic and comparison
// instructions: either a register reference or an integer literal.
type Data struct {
	Register  Register
	Value     uint16
	IsLiteral bool
}

// RegisterData returns a register operand.
func RegisterData(reg Register) Data {
	return Data{Register: reg}
}

// LiteralData returns an integer literal operand.
func LiteralData(value uint16) Data {
	return Data{Value: value, IsLiteral: true}
}

// String implements the fmt.Stringer interface.
func (d Data) String() string {
	if d.IsLiteral {
		return fmt.Sprintf("%d", d.Value)
	}
	return d.Register.String()
}

// Assembly is a single item of a parsed program, either an *Instruction or a
// *Label.
type Assembly interface {
	// Position returns the source position of the item.
	Position() source.Position

	isAssembly()
}

// Instruction is an executable operation that occupies Size bytes.
type Instruction struct {
	Op  Op
	Pos source.Position
}

// Position returns the source position of the mnemonic.
func (i *Instruction) Position() source.Position {
	return i.Pos
}

func (i *Instruction) isAssembly() {}

// Label marks the address of the next instruction. It occupies no space.
type Label struct {
	Name string
	Pos  source.Position
}

// Position returns the source position of the label declaration.
func (l *Label) Position() source.Position {
	return l.Pos
}

func (l *Label) isAssembly() {}
