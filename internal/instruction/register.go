package instruction

import "fmt"

// Register is a machine register as it can be named in source code.
// It covers the 16 general purpose registers and the special registers.
type Register uint8

// All registers that can be named in source code.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
	I  // index register
	DT // delay timer
	ST // sound timer
)

// registerNames maps the source spelling to the register.
var registerNames = map[string]Register{
	"rv0": V0,
	"rv1": V1,
	"rv2": V2,
	"rv3": V3,
	"rv4": V4,
	"rv5": V5,
	"rv6": V6,
	"rv7": V7,
	"rv8": V8,
	"rv9": V9,
	"rva": VA,
	"rvb": VB,
	"rvc": VC,
	"rvd": VD,
	"rve": VE,
	"rvf": VF,
	"irg": I,
	"rdt": DT,
	"rst": ST,
}

// RegisterFromName returns the register for the given source spelling.
// Names are case-sensitive.
func RegisterFromName(name string) (Register, bool) {
	reg, ok := registerNames[name]
	return reg, ok
}

// IsGeneral returns whether the register is one of V0-VF.
func (r Register) IsGeneral() bool {
	return r <= VF
}

// General returns the general purpose register for r. It returns false for
// the special registers I, DT and ST.
func (r Register) General() (V, bool) {
	if !r.IsGeneral() {
		return 0, false
	}
	return V(r), true
}

// Name returns the source spelling of the register.
func (r Register) Name() string {
	switch {
	case r.IsGeneral():
		return fmt.Sprintf("rv%x", uint8(r))
	case r == I:
		return "irg"
	case r == DT:
		return "rdt"
	case r == ST:
		return "rst"
	default:
		return fmt.Sprintf("register(%d)", uint8(r))
	}
}

// String implements the fmt.Stringer interface.
func (r Register) String() string {
	return r.Name()
}

// V is a general purpose register V0-VF. Only values 0-15 are valid, which is
// guaranteed by constructing it through Register.General or NewV.
type V uint8

// NewV returns the general purpose register for the 4 bit code.
func NewV(code uint8) (V, bool) {
	if code > 0xF {
		return 0, false
	}
	return V(code), true
}

// Code returns the 4 bit encoding of the register.
func (v V) Code() uint8 {
	return uint8(v)
}

// Register returns the symbolic register of v.
func (v V) Register() Register {
	return Register(v)
}

// String implements the fmt.Stringer interface.
func (v V) String() string {
	return fmt.Sprintf("V%X", v.Code())
}
