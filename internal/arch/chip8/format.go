package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// formatInstruction formats the parameters of a CHIP-8 instruction word.
func formatInstruction(name string, opcode uint16) string {
	switch name {
	case chip8.ClsInst.Name, chip8.RetInst.Name:
		return ""
	case chip8.JpInst.Name:
		return formatJumpInstruction(opcode)
	case chip8.CallInst.Name:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.SeInst.Name, chip8.SneInst.Name:
		return formatCompareInstruction(opcode)
	case chip8.LdInst.Name:
		return formatLoadInstruction(opcode)
	case chip8.AddInst.Name:
		return formatAddInstruction(opcode)
	case chip8.OrInst.Name, chip8.AndInst.Name, chip8.XorInst.Name, chip8.SubInst.Name, chip8.SubnInst.Name:
		return fmt.Sprintf("%s, %s", extractRegisterX(opcode), extractRegisterY(opcode))
	case chip8.ShrInst.Name, chip8.ShlInst.Name, chip8.SkpInst.Name, chip8.SknpInst.Name:
		return extractRegisterX(opcode).String()
	case chip8.RndInst.Name:
		return fmt.Sprintf("%s, $%02X", extractRegisterX(opcode), opcode&0x00FF)
	case chip8.DrwInst.Name:
		return fmt.Sprintf("%s, %s, $%X", extractRegisterX(opcode), extractRegisterY(opcode), opcode&0x000F)
	}
	return ""
}

// formatJumpInstruction formats jump instructions (JP addr, JP V0+addr).
func formatJumpInstruction(opcode uint16) string {
	switch opcode & 0xF000 {
	case 0x1000:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return ""
}

// formatCompareInstruction formats comparison instructions (SE, SNE).
func formatCompareInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("%s, $%02X", x, opcode&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("%s, %s", x, extractRegisterY(opcode))
	}
	return ""
}

// formatLoadInstruction formats the load instruction forms.
func formatLoadInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("%s, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("%s, %s", x, extractRegisterY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF000:
		return formatMiscLoad(opcode)
	}
	return ""
}

// formatMiscLoad formats the Fx.. load forms that access timers, keys and memory at I.
func formatMiscLoad(opcode uint16) string {
	x := extractRegisterX(opcode)
	switch opcode & 0x00FF {
	case 0x07:
		return fmt.Sprintf("%s, DT", x)
	case 0x0A:
		return fmt.Sprintf("%s, K", x)
	case 0x15:
		return fmt.Sprintf("DT, %s", x)
	case 0x18:
		return fmt.Sprintf("ST, %s", x)
	case 0x29:
		return fmt.Sprintf("F, %s", x)
	case 0x33:
		return fmt.Sprintf("B, %s", x)
	case 0x55:
		return fmt.Sprintf("[I], %s", x)
	case 0x65:
		return fmt.Sprintf("%s, [I]", x)
	}
	return ""
}

// formatAddInstruction formats add instructions (ADD Vx, byte/Vy, ADD I, Vx).
func formatAddInstruction(opcode uint16) string {
	x := extractRegisterX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("%s, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("%s, %s", x, extractRegisterY(opcode))
	case 0xF000:
		return fmt.Sprintf("I, %s", x)
	}
	return ""
}
