// Package chip8 provides the CHIP-8 machine specifics of the assembler.
//
// # Memory Layout
//
// CHIP-8 systems have 4KB of memory (0x000-MaxAddress):
//   - 0x000-0x1FF: Interpreter and font data, not used by programs
//   - ProgramStart-MaxAddress: Program code and data
//
// Assembled programs are stored starting at file offset 0 but are loaded
// and executed at ProgramStart, which is therefore the address of the first
// instruction.
//
// # Instruction Words
//
// All instructions are 16 bit words stored big-endian. Decode is the inverse
// of the linker encoding and is used to verify an assembled program.
// Identify looks up a word in the CHIP-8 opcode table of retrogolib, which
// names the instruction independently of the assembler's own encoder.
//
// # Usage Example
//
//	op, err := chip8.Decode(0x6005, chip8.AddressName)
//	if err != nil {
//		return fmt.Errorf("decoding opcode: %w", err)
//	}
//	fmt.Println(op) // mov rv0 5
//
//	opcode, ok := chip8.Identify(0x6005)
//	if ok {
//		fmt.Println(opcode) // ld V0, $05
//	}
package chip8
