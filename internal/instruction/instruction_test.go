package instruction

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRegisterFromName(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected Register
		valid    bool
	}{
		{"first general register", "rv0", V0, true},
		{"decimal digit register", "rv9", V9, true},
		{"hex digit register", "rva", VA, true},
		{"last general register", "rvf", VF, true},
		{"index register", "irg", I, true},
		{"delay timer", "rdt", DT, true},
		{"sound timer", "rst", ST, true},
		{"upper case is rejected", "RV0", 0, false},
		{"assembler style name is rejected", "V0", 0, false},
		{"out of range register", "rvg", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, ok := RegisterFromName(tt.source)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.expected, reg)
		})
	}
}

func TestRegister_NameRoundTrip(t *testing.T) {
	for reg := V0; reg <= ST; reg++ {
		got, ok := RegisterFromName(reg.Name())
		assert.True(t, ok, reg.Name())
		assert.Equal(t, reg, got)
	}
}

func TestRegister_General(t *testing.T) {
	for reg := V0; reg <= VF; reg++ {
		v, ok := reg.General()
		assert.True(t, ok)
		assert.Equal(t, uint8(reg), v.Code())
		assert.Equal(t, reg, v.Register())
	}

	for _, reg := range []Register{I, DT, ST} {
		_, ok := reg.General()
		assert.False(t, ok, reg.Name())
		assert.False(t, reg.IsGeneral())
	}
}

func TestNewV(t *testing.T) {
	v, ok := NewV(0xF)
	assert.True(t, ok)
	assert.Equal(t, "VF", v.String())

	_, ok = NewV(0x10)
	assert.False(t, ok)
}

func TestOp_String(t *testing.T) {
	tests := []struct {
		op       Op
		expected string
	}{
		{LoadIndex{Address: 0x300}, "mov irg 768"},
		{SetDelayTimer{Src: 3}, "mov rdt rv3"},
		{SetSoundTimer{Src: 4}, "mov rst rv4"},
		{GetDelayTimer{Dst: 5}, "mov rv5 rdt"},
		{LoadByte{Dst: 0, Value: 5}, "mov rv0 5"},
		{Move{Dst: 1, Src: 0xA}, "mov rv1 rva"},
		{Draw{X: 1, Y: 2, Height: 15}, "draw rv1 rv2 15"},
		{Jump{Label: "start"}, "jump .start"},
		{AddIndex{Src: 2}, "add irg rv2"},
		{AddByte{Dst: 2, Value: 1}, "add rv2 1"},
		{Add{Dst: 2, Src: 3}, "add rv2 rv3"},
		{SkipEqualByte{X: 1, Value: 9}, "se rv1 9"},
		{SkipEqual{X: 1, Y: 2}, "se rv1 rv2"},
		{SkipNotEqualByte{X: 1, Value: 9}, "sne rv1 9"},
		{SkipNotEqual{X: 1, Y: 2}, "sne rv1 rv2"},
		{ClearScreen{}, "clr"},
		{LoadFont{Src: 0xB}, "ldfadr rvb"},
		{Call{Label: "sub"}, "call .sub"},
		{Random{Dst: 7, Mask: 255}, "getrand rv7 255"},
		{SkipKeyNotPressed{Key: 0xE}, "sknp rve"},
		{And{Dst: 1, Src: 2}, "and rv1 rv2"},
		{Sub{Dst: 1, Src: 2}, "sub rv1 rv2"},
		{StoreBCD{Src: 3}, "bcd rv3"},
		{StoreRegisters{Last: 0xF}, "store rvf"},
		{Return{}, "ret"},
		{NoOp{}, "nop"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.op.String())
		})
	}
}

func TestData_String(t *testing.T) {
	assert.Equal(t, "42", LiteralData(42).String())
	assert.Equal(t, "rvc", RegisterData(VC).String())
}
