package instruction

import "fmt"

// Op is one operation of the closed CHIP-8 instruction set. Every variant
// carries exactly the operands that its encoding needs.
type Op interface {
	// Mnemonic returns the source mnemonic of the operation.
	Mnemonic() string
	// String returns the operation in source notation.
	String() string

	isOp()
}

// LabelReference is implemented by operations that target a label address.
type LabelReference interface {
	Op
	// Target returns the name of the referenced label.
	Target() string
}

// LoadIndex loads a 12 bit address into I.
type LoadIndex struct {
	Address uint16
}

// SetDelayTimer sets the delay timer from a register.
type SetDelayTimer struct {
	Src V
}

// SetSoundTimer sets the sound timer from a register.
type SetSoundTimer struct {
	Src V
}

// GetDelayTimer reads the delay timer into a register.
type GetDelayTimer struct {
	Dst V
}

// LoadByte loads an 8 bit literal into a register.
type LoadByte struct {
	Dst   V
	Value uint8
}

// Move copies a register into another register.
type Move struct {
	Dst V
	Src V
}

// Draw draws a sprite of Height rows at the coordinates in X and Y.
type Draw struct {
	X      V
	Y      V
	Height uint8
}

// Jump jumps to a label.
type Jump struct {
	Label string
}

// AddIndex adds a register to I.
type AddIndex struct {
	Src V
}

// AddByte adds an 8 bit literal to a register.
type AddByte struct {
	Dst   V
	Value uint8
}

// Add adds a register to another register.
type Add struct {
	Dst V
	Src V
}

// SkipEqualByte skips the next instruction if the register equals the literal.
type SkipEqualByte struct {
	X     V
	Value uint8
}

// SkipEqual skips the next instruction if both registers are equal.
type SkipEqual struct {
	X V
	Y V
}

// SkipNotEqualByte skips the next instruction if the register does not equal the literal.
type SkipNotEqualByte struct {
	X     V
	Value uint8
}

// SkipNotEqual skips the next instruction if the registers are not equal.
type SkipNotEqual struct {
	X V
	Y V
}

// ClearScreen clears the display.
type ClearScreen struct{}

// LoadFont points I at the built-in font sprite for the digit in a register.
type LoadFont struct {
	Src V
}

// Call calls the subroutine at a label.
type Call struct {
	Label string
}

// Random sets a register to a random byte masked with Mask.
type Random struct {
	Dst  V
	Mask uint8
}

// SkipKeyNotPressed skips the next instruction if the key in the register is not pressed.
type SkipKeyNotPressed struct {
	Key V
}

// And stores the bitwise and of both registers in Dst.
type And struct {
	Dst V
	Src V
}

// Sub subtracts Src from Dst.
type Sub struct {
	Dst V
	Src V
}

// StoreBCD stores the binary-coded decimal of a register at I, I+1 and I+2.
type StoreBCD struct {
	Src V
}

// StoreRegisters stores V0 up to and including Last at I.
type StoreRegisters struct {
	Last V
}

// Return returns from a subroutine.
type Return struct{}

// NoOp does nothing.
type NoOp struct{}

func (LoadIndex) Mnemonic() string         { return "mov" }
func (SetDelayTimer) Mnemonic() string     { return "mov" }
func (SetSoundTimer) Mnemonic() string     { return "mov" }
func (GetDelayTimer) Mnemonic() string     { return "mov" }
func (LoadByte) Mnemonic() string          { return "mov" }
func (Move) Mnemonic() string              { return "mov" }
func (Draw) Mnemonic() string              { return "draw" }
func (Jump) Mnemonic() string              { return "jump" }
func (AddIndex) Mnemonic() string          { return "add" }
func (AddByte) Mnemonic() string           { return "add" }
func (Add) Mnemonic() string               { return "add" }
func (SkipEqualByte) Mnemonic() string     { return "se" }
func (SkipEqual) Mnemonic() string         { return "se" }
func (SkipNotEqualByte) Mnemonic() string  { return "sne" }
func (SkipNotEqual) Mnemonic() string      { return "sne" }
func (ClearScreen) Mnemonic() string       { return "clr" }
func (LoadFont) Mnemonic() string          { return "ldfadr" }
func (Call) Mnemonic() string              { return "call" }
func (Random) Mnemonic() string            { return "getrand" }
func (SkipKeyNotPressed) Mnemonic() string { return "sknp" }
func (And) Mnemonic() string               { return "and" }
func (Sub) Mnemonic() string               { return "sub" }
func (StoreBCD) Mnemonic() string          { return "bcd" }
func (StoreRegisters) Mnemonic() string    { return "store" }
func (Return) Mnemonic() string            { return "ret" }
func (NoOp) Mnemonic() string              { return "nop" }

func (o LoadIndex) String() string     { return format(o, I.Name(), o.Address) }
func (o SetDelayTimer) String() string { return format(o, DT.Name(), o.Src.Register()) }
func (o SetSoundTimer) String() string { return format(o, ST.Name(), o.Src.Register()) }
func (o GetDelayTimer) String() string { return format(o, o.Dst.Register(), DT.Name()) }
func (o LoadByte) String() string      { return format(o, o.Dst.Register(), o.Value) }
func (o Move) String() string          { return format(o, o.Dst.Register(), o.Src.Register()) }
func (o Draw) String() string {
	return format(o, o.X.Register(), o.Y.Register(), o.Height)
}
func (o Jump) String() string             { return format(o, "."+o.Label) }
func (o AddIndex) String() string         { return format(o, I.Name(), o.Src.Register()) }
func (o AddByte) String() string          { return format(o, o.Dst.Register(), o.Value) }
func (o Add) String() string              { return format(o, o.Dst.Register(), o.Src.Register()) }
func (o SkipEqualByte) String() string    { return format(o, o.X.Register(), o.Value) }
func (o SkipEqual) String() string        { return format(o, o.X.Register(), o.Y.Register()) }
func (o SkipNotEqualByte) String() string { return format(o, o.X.Register(), o.Value) }
func (o SkipNotEqual) String() string     { return format(o, o.X.Register(), o.Y.Register()) }
func (o ClearScreen) String() string      { return format(o) }
func (o LoadFont) String() string         { return format(o, o.Src.Register()) }
func (o Call) String() string             { return format(o, "."+o.Label) }
func (o Random) String() string           { return format(o, o.Dst.Register(), o.Mask) }
func (o SkipKeyNotPressed) String() string {
	return format(o, o.Key.Register())
}
func (o And) String() string            { return format(o, o.Dst.Register(), o.Src.Register()) }
func (o Sub) String() string            { return format(o, o.Dst.Register(), o.Src.Register()) }
func (o StoreBCD) String() string       { return format(o, o.Src.Register()) }
func (o StoreRegisters) String() string { return format(o, o.Last.Register()) }
func (o Return) String() string         { return format(o) }
func (o NoOp) String() string           { return format(o) }

// Target returns the name of the jump destination.
func (o Jump) Target() string { return o.Label }

// Target returns the name of the called subroutine.
func (o Call) Target() string { return o.Label }

func (LoadIndex) isOp()         {}
func (SetDelayTimer) isOp()     {}
func (SetSoundTimer) isOp()     {}
func (GetDelayTimer) isOp()     {}
func (LoadByte) isOp()          {}
func (Move) isOp()              {}
func (Draw) isOp()              {}
func (Jump) isOp()              {}
func (AddIndex) isOp()          {}
func (AddByte) isOp()           {}
func (Add) isOp()               {}
func (SkipEqualByte) isOp()     {}
func (SkipEqual) isOp()         {}
func (SkipNotEqualByte) isOp()  {}
func (SkipNotEqual) isOp()      {}
func (ClearScreen) isOp()       {}
func (LoadFont) isOp()          {}
func (Call) isOp()              {}
func (Random) isOp()            {}
func (SkipKeyNotPressed) isOp() {}
func (And) isOp()               {}
func (Sub) isOp()               {}
func (StoreBCD) isOp()          {}
func (StoreRegisters) isOp()    {}
func (Return) isOp()            {}
func (NoOp) isOp()              {}

// format renders an operation in source notation.
func format(op Op, operands ...any) string {
	s := op.Mnemonic()
	for _, operand := range operands {
		s += fmt.Sprintf(" %v", operand)
	}
	return s
}
