package parser

import (
	"errors"
	"fmt"

	"github.com/retroenv/chip8asm/internal/source"
)

// Errors returned by the parser, wrapped in an *Error.
var (
	ErrUnknownMnemonic = errors.New("unrecognized instruction")
	ErrMissingOperand  = errors.New("missing operand")
	ErrInvalidRegister = errors.New("not a register")
	ErrInvalidLiteral  = errors.New("not an unsigned integer")
	ErrInvalidLabel    = errors.New("not a valid label")
	ErrInvalidOperands = errors.New("invalid operand combination")
	ErrOutOfRange      = errors.New("literal out of range")
)

// Error describes a parse failure at a position of the source.
type Error struct {
	Pos   source.Position
	Token string // offending token, empty at end of input
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Err)
	}
	return fmt.Sprintf("%s: %s '%s'", e.Pos, e.Err, e.Token)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(token source.Token, err error) *Error {
	return &Error{
		Pos:   token.Pos,
		Token: token.Text,
		Err:   err,
	}
}
