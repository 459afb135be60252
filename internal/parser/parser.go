// Package parser converts assembler source text into an ordered list of
// instructions and label declarations.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/chip8asm/internal/instruction"
	"github.com/retroenv/chip8asm/internal/source"
)

const (
	labelDeclaration = ':' // prefix of a label declaration
	labelReference   = '.' // prefix of a label used as operand

	maxNibble  = 0xF
	maxByte    = 0xFF
	maxAddress = 0xFFF
)

var errInvalidData = fmt.Errorf("%w or register", ErrInvalidLiteral)

// Parser consumes tokens one instruction at a time.
type Parser struct {
	tokens *source.Tokenizer
}

// New returns a parser for the given source text.
func New(text string) *Parser {
	return &Parser{
		tokens: source.NewTokenizer(text),
	}
}

// Parse parses the complete source text.
func Parse(text string) ([]instruction.Assembly, error) {
	return New(text).Parse()
}

// Parse parses all remaining tokens. The first error aborts parsing.
func (p *Parser) Parse() ([]instruction.Assembly, error) {
	var items []instruction.Assembly
	for {
		item, err := p.next()
		if err != nil {
			return nil, err
		}
		if item == nil {
			return items, nil
		}
		items = append(items, item)
	}
}

// next parses the next label or instruction. It returns nil at end of input.
func (p *Parser) next() (instruction.Assembly, error) {
	tok, ok := p.tokens.Next()
	if !ok {
		return nil, nil
	}

	if name, found := strings.CutPrefix(tok.Text, string(labelDeclaration)); found {
		if name == "" {
			return nil, newError(tok, ErrInvalidLabel)
		}
		return &instruction.Label{Name: name, Pos: tok.Pos}, nil
	}

	op, err := p.instruction(tok)
	if err != nil {
		return nil, err
	}
	return &instruction.Instruction{Op: op, Pos: tok.Pos}, nil
}

// instruction dispatches on the mnemonic and reads its operands.
func (p *Parser) instruction(mnemonic source.Token) (instruction.Op, error) {
	switch mnemonic.Text {
	case "mov":
		return p.parseMove(mnemonic)
	case "draw":
		return p.parseDraw(mnemonic)
	case "jump":
		label, err := p.label(mnemonic)
		if err != nil {
			return nil, err
		}
		return instruction.Jump{Label: label}, nil
	case "add":
		return p.parseAdd(mnemonic)
	case "se", "sne":
		return p.parseSkip(mnemonic)
	case "clr":
		return instruction.ClearScreen{}, nil
	case "ldfadr":
		v, err := p.general(mnemonic)
		if err != nil {
			return nil, err
		}
		return instruction.LoadFont{Src: v}, nil
	case "call":
		label, err := p.label(mnemonic)
		if err != nil {
			return nil, err
		}
		return instruction.Call{Label: label}, nil
	case "getrand":
		return p.parseRandom(mnemonic)
	case "sknp":
		v, err := p.general(mnemonic)
		if err != nil {
			return nil, err
		}
		return instruction.SkipKeyNotPressed{Key: v}, nil
	case "and", "sub":
		return p.parseLogic(mnemonic)
	case "bcd":
		v, err := p.general(mnemonic)
		if err != nil {
			return nil, err
		}
		return instruction.StoreBCD{Src: v}, nil
	case "store":
		v, err := p.general(mnemonic)
		if err != nil {
			return nil, err
		}
		return instruction.StoreRegisters{Last: v}, nil
	case "ret":
		return instruction.Return{}, nil
	case "nop":
		return instruction.NoOp{}, nil
	default:
		return nil, newError(mnemonic, ErrUnknownMnemonic)
	}
}

func (p *Parser) parseMove(mnemonic source.Token) (instruction.Op, error) {
	dst, dstTok, err := p.register(mnemonic)
	if err != nil {
		return nil, err
	}
	src, srcTok, err := p.data(mnemonic)
	if err != nil {
		return nil, err
	}

	switch dst {
	case instruction.I:
		if src.IsLiteral {
			if src.Value > maxAddress {
				return nil, rangeError(srcTok, maxAddress)
			}
			return instruction.LoadIndex{Address: src.Value}, nil
		}

	case instruction.DT, instruction.ST:
		if v, ok := src.Register.General(); ok && !src.IsLiteral {
			if dst == instruction.DT {
				return instruction.SetDelayTimer{Src: v}, nil
			}
			return instruction.SetSoundTimer{Src: v}, nil
		}

	default:
		x, _ := dst.General()
		switch {
		case src.IsLiteral:
			if src.Value > maxByte {
				return nil, rangeError(srcTok, maxByte)
			}
			return instruction.LoadByte{Dst: x, Value: uint8(src.Value)}, nil
		case src.Register == instruction.DT:
			return instruction.GetDelayTimer{Dst: x}, nil
		case src.Register.IsGeneral():
			y, _ := src.Register.General()
			return instruction.Move{Dst: x, Src: y}, nil
		}
	}

	return nil, operandsError(mnemonic, dstTok, srcTok)
}

func (p *Parser) parseAdd(mnemonic source.Token) (instruction.Op, error) {
	dst, dstTok, err := p.register(mnemonic)
	if err != nil {
		return nil, err
	}
	src, srcTok, err := p.data(mnemonic)
	if err != nil {
		return nil, err
	}

	switch {
	case dst == instruction.I:
		if v, ok := src.Register.General(); ok && !src.IsLiteral {
			return instruction.AddIndex{Src: v}, nil
		}

	case dst.IsGeneral():
		x, _ := dst.General()
		if src.IsLiteral {
			if src.Value > maxByte {
				return nil, rangeError(srcTok, maxByte)
			}
			return instruction.AddByte{Dst: x, Value: uint8(src.Value)}, nil
		}
		if y, ok := src.Register.General(); ok {
			return instruction.Add{Dst: x, Src: y}, nil
		}
	}

	return nil, operandsError(mnemonic, dstTok, srcTok)
}

// parseSkip parses the se and sne instructions.
func (p *Parser) parseSkip(mnemonic source.Token) (instruction.Op, error) {
	reg, regTok, err := p.register(mnemonic)
	if err != nil {
		return nil, err
	}
	src, srcTok, err := p.data(mnemonic)
	if err != nil {
		return nil, err
	}

	x, ok := reg.General()
	if !ok {
		return nil, operandsError(mnemonic, regTok, srcTok)
	}
	equal := mnemonic.Text == "se"

	if src.IsLiteral {
		if src.Value > maxByte {
			return nil, rangeError(srcTok, maxByte)
		}
		if equal {
			return instruction.SkipEqualByte{X: x, Value: uint8(src.Value)}, nil
		}
		return instruction.SkipNotEqualByte{X: x, Value: uint8(src.Value)}, nil
	}

	y, ok := src.Register.General()
	if !ok {
		return nil, operandsError(mnemonic, regTok, srcTok)
	}
	if equal {
		return instruction.SkipEqual{X: x, Y: y}, nil
	}
	return instruction.SkipNotEqual{X: x, Y: y}, nil
}

func (p *Parser) parseDraw(mnemonic source.Token) (instruction.Op, error) {
	x, err := p.general(mnemonic)
	if err != nil {
		return nil, err
	}
	y, err := p.general(mnemonic)
	if err != nil {
		return nil, err
	}
	height, tok, err := p.literal(mnemonic)
	if err != nil {
		return nil, err
	}
	if height > maxNibble {
		return nil, rangeError(tok, maxNibble)
	}
	return instruction.Draw{X: x, Y: y, Height: uint8(height)}, nil
}

func (p *Parser) parseRandom(mnemonic source.Token) (instruction.Op, error) {
	x, err := p.general(mnemonic)
	if err != nil {
		return nil, err
	}
	mask, tok, err := p.literal(mnemonic)
	if err != nil {
		return nil, err
	}
	if mask > maxByte {
		return nil, rangeError(tok, maxByte)
	}
	return instruction.Random{Dst: x, Mask: uint8(mask)}, nil
}

// parseLogic parses the register to register and and sub instructions.
func (p *Parser) parseLogic(mnemonic source.Token) (instruction.Op, error) {
	x, err := p.general(mnemonic)
	if err != nil {
		return nil, err
	}
	y, err := p.general(mnemonic)
	if err != nil {
		return nil, err
	}
	if mnemonic.Text == "and" {
		return instruction.And{Dst: x, Src: y}, nil
	}
	return instruction.Sub{Dst: x, Src: y}, nil
}

// operand returns the next token as operand of the given mnemonic.
func (p *Parser) operand(mnemonic source.Token) (source.Token, error) {
	tok, ok := p.tokens.Next()
	if !ok {
		return tok, &Error{
			Pos: p.tokens.Position(),
			Err: fmt.Errorf("%w for '%s'", ErrMissingOperand, mnemonic.Text),
		}
	}
	return tok, nil
}

// register resolves the next token as any of the named registers.
func (p *Parser) register(mnemonic source.Token) (instruction.Register, source.Token, error) {
	tok, err := p.operand(mnemonic)
	if err != nil {
		return 0, tok, err
	}
	reg, ok := instruction.RegisterFromName(tok.Text)
	if !ok {
		return 0, tok, newError(tok, ErrInvalidRegister)
	}
	return reg, tok, nil
}

// general resolves the next token as a general purpose register.
func (p *Parser) general(mnemonic source.Token) (instruction.V, error) {
	reg, tok, err := p.register(mnemonic)
	if err != nil {
		return 0, err
	}
	v, ok := reg.General()
	if !ok {
		return 0, operandsError(mnemonic, tok)
	}
	return v, nil
}

// label resolves the next token as a label reference.
func (p *Parser) label(mnemonic source.Token) (string, error) {
	tok, err := p.operand(mnemonic)
	if err != nil {
		return "", err
	}
	name, found := strings.CutPrefix(tok.Text, string(labelReference))
	if !found || name == "" {
		return "", newError(tok, ErrInvalidLabel)
	}
	return name, nil
}

// data resolves the next token as a register, or otherwise as a literal.
func (p *Parser) data(mnemonic source.Token) (instruction.Data, source.Token, error) {
	tok, err := p.operand(mnemonic)
	if err != nil {
		return instruction.Data{}, tok, err
	}
	if reg, ok := instruction.RegisterFromName(tok.Text); ok {
		return instruction.RegisterData(reg), tok, nil
	}

	value, err := parseLiteral(tok)
	if err != nil {
		if errors.Is(err, ErrInvalidLiteral) {
			return instruction.Data{}, tok, newError(tok, errInvalidData)
		}
		return instruction.Data{}, tok, err
	}
	return instruction.LiteralData(value), tok, nil
}

// literal resolves the next token as an unsigned integer.
func (p *Parser) literal(mnemonic source.Token) (uint16, source.Token, error) {
	tok, err := p.operand(mnemonic)
	if err != nil {
		return 0, tok, err
	}
	value, err := parseLiteral(tok)
	if err != nil {
		return 0, tok, err
	}
	return value, tok, nil
}

// parseLiteral parses a decimal literal or a hexadecimal literal prefixed
// by 0x or $.
func parseLiteral(tok source.Token) (uint16, error) {
	text := tok.Text
	base := 10
	for _, prefix := range []string{"0x", "0X", "$"} {
		if s, found := strings.CutPrefix(text, prefix); found {
			text = s
			base = 16
			break
		}
	}

	value, err := strconv.ParseUint(text, base, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, rangeError(tok, 0xFFFF)
		}
		return 0, newError(tok, ErrInvalidLiteral)
	}
	return uint16(value), nil
}

func rangeError(tok source.Token, limit int) *Error {
	return newError(tok, fmt.Errorf("%w, maximum is %d", ErrOutOfRange, limit))
}

// operandsError reports operands that are valid on their own but have no
// encoding in this combination.
func operandsError(mnemonic source.Token, operands ...source.Token) *Error {
	texts := []string{mnemonic.Text}
	for _, operand := range operands {
		texts = append(texts, operand.Text)
	}
	return &Error{
		Pos:   mnemonic.Pos,
		Token: strings.Join(texts, " "),
		Err:   ErrInvalidOperands,
	}
}
