package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/chip8asm/internal/instruction"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestDecode(t *testing.T) {
	tests := []struct {
		word     uint16
		expected instruction.Op
	}{
		{0x0000, instruction.NoOp{}},
		{0x00E0, instruction.ClearScreen{}},
		{0x00EE, instruction.Return{}},
		{0x1234, instruction.Jump{Label: "$234"}},
		{0x2FFF, instruction.Call{Label: "$FFF"}},
		{0x3109, instruction.SkipEqualByte{X: 1, Value: 9}},
		{0x4109, instruction.SkipNotEqualByte{X: 1, Value: 9}},
		{0x5120, instruction.SkipEqual{X: 1, Y: 2}},
		{0x6A42, instruction.LoadByte{Dst: 0xA, Value: 0x42}},
		{0x7201, instruction.AddByte{Dst: 2, Value: 1}},
		{0x8120, instruction.Move{Dst: 1, Src: 2}},
		{0x8122, instruction.And{Dst: 1, Src: 2}},
		{0x8234, instruction.Add{Dst: 2, Src: 3}},
		{0x8125, instruction.Sub{Dst: 1, Src: 2}},
		{0x9120, instruction.SkipNotEqual{X: 1, Y: 2}},
		{0xA300, instruction.LoadIndex{Address: 0x300}},
		{0xC70F, instruction.Random{Dst: 7, Mask: 0x0F}},
		{0xD12F, instruction.Draw{X: 1, Y: 2, Height: 15}},
		{0xEEA1, instruction.SkipKeyNotPressed{Key: 0xE}},
		{0xF507, instruction.GetDelayTimer{Dst: 5}},
		{0xF315, instruction.SetDelayTimer{Src: 3}},
		{0xF418, instruction.SetSoundTimer{Src: 4}},
		{0xF61E, instruction.AddIndex{Src: 6}},
		{0xFB29, instruction.LoadFont{Src: 0xB}},
		{0xF333, instruction.StoreBCD{Src: 3}},
		{0xFF65, instruction.StoreRegisters{Last: 0xF}},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			op, err := Decode(tt.word, AddressName)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestDecode_Unsupported(t *testing.T) {
	words := []uint16{
		0x0123, // sys
		0x5121, // se with non-zero low nibble
		0x8121, // or
		0x8123, // xor
		0x8126, // shr
		0x9121, // sne with non-zero low nibble
		0xB200, // jp V0
		0xE19E, // skp
		0xF10A, // ld Vx, K
		0xF155, // ld [I], Vx
	}

	for _, word := range words {
		_, err := Decode(word, AddressName)
		assert.True(t, errors.Is(err, ErrUnsupportedOpcode), AddressName(word))
	}
}

func TestDecode_TargetNames(t *testing.T) {
	names := map[uint16]string{0x204: "loop"}
	op, err := Decode(0x1204, func(address uint16) string {
		return names[address]
	})
	assert.NoError(t, err)
	assert.Equal(t, "jump .loop", op.String())
}

func TestMemoryLayout(t *testing.T) {
	assert.Equal(t, 0x200, ProgramStart)
	assert.Equal(t, 3584, ProgramSpace)
}
