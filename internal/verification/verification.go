// Package verification verifies that an assembled program decodes back to
// the instructions it was assembled from.
package verification

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8asm/internal/arch/chip8"
	"github.com/retroenv/chip8asm/internal/instruction"
	"github.com/retroenv/chip8asm/internal/linker"
	"github.com/retroenv/retrogolib/log"
)

// maxReportedMismatches limits the number of logged mismatches.
const maxReportedMismatches = 10

// VerifyOutput verifies that the output file contains the exact assembled
// program and that the program decodes back to its source instructions.
func VerifyOutput(logger *log.Logger, result *linker.Result, outputFile string) error {
	if outputFile == "" {
		return errors.New("can not verify without output file")
	}

	written, err := os.ReadFile(outputFile)
	if err != nil {
		return fmt.Errorf("reading output file for comparison: %w", err)
	}

	if err := checkBufferEqual(logger, result.Code, written); err != nil {
		return fmt.Errorf("comparing output file: %w", err)
	}

	return VerifyProgram(logger, result)
}

// VerifyProgram decodes every emitted word and compares it against the
// instruction that produced it. It also checks that the CHIP-8 opcode table
// identifies the word as the expected instruction.
func VerifyProgram(logger *log.Logger, result *linker.Result) error {
	if err := checkBufferEqual(logger, linker.Bytes(result.Words), result.Code); err != nil {
		return fmt.Errorf("comparing serialized words: %w", err)
	}

	var diffs uint64
	for _, entry := range result.Entries {
		ins, ok := entry.Item.(*instruction.Instruction)
		if !ok {
			continue
		}

		if err := verifyWord(result, ins, entry.Word); err != nil {
			diffs++
			if diffs <= maxReportedMismatches {
				logger.Error("Instruction mismatch",
					log.Hex("address", entry.Address),
					log.Hex("word", entry.Word),
					log.String("position", ins.Pos.String()),
					log.Err(err))
			}
		}
	}

	if diffs == 0 {
		logger.Debug("Verified program", log.Int("instructions", len(result.Words)))
		return nil
	}
	return fmt.Errorf("%d instruction mismatches", diffs)
}

func verifyWord(result *linker.Result, ins *instruction.Instruction, word uint16) error {
	decoded, err := chip8.Decode(word, chip8.AddressName)
	if err != nil {
		return fmt.Errorf("decoding word: %w", err)
	}

	expected, err := normalize(ins.Op, result)
	if err != nil {
		return err
	}
	if decoded != expected {
		return fmt.Errorf("decoded '%s', expected '%s'", decoded, expected)
	}

	expectedIns := chip8.ExpectedInstruction(ins.Op)
	if expectedIns == nil {
		return nil
	}
	opcode, ok := chip8.Identify(word)
	if !ok {
		return errors.New("word not found in opcode table")
	}
	if opcode.Instruction() != expectedIns {
		return fmt.Errorf("opcode table identifies '%s', expected '%s'", opcode.Name(), expectedIns.Name)
	}
	return nil
}

// normalize replaces label names of jump and call operations by the name
// that decoding assigns to their resolved address.
func normalize(op instruction.Op, result *linker.Result) (instruction.Op, error) {
	ref, ok := op.(instruction.LabelReference)
	if !ok {
		return op, nil
	}

	sym, ok := result.Labels.Get(ref.Target())
	if !ok {
		return nil, fmt.Errorf("%w '%s'", linker.ErrUndefinedLabel, ref.Target())
	}
	name := chip8.AddressName(sym.Address)

	switch op.(type) {
	case instruction.Jump:
		return instruction.Jump{Label: name}, nil
	default:
		return instruction.Call{Label: name}, nil
	}
}

func checkBufferEqual(logger *log.Logger, expected, got []byte) error {
	if len(expected) != len(got) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(expected), len(got))
	}

	var diffs uint64
	for i := range expected {
		if expected[i] == got[i] {
			continue
		}

		diffs++
		if diffs <= maxReportedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", expected[i]),
				log.Hex("got", got[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
