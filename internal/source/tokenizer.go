// Package source provides the tokenizer that splits assembler source text into
// whitespace delimited tokens.
package source

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Position describes the location of a token in the source text.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column in runes, starting at 1
}

// String returns the position in line:column notation.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a maximal run of non whitespace characters.
// Text is a substring of the source that was passed to the tokenizer.
type Token struct {
	Text string
	Pos  Position
}

// Tokenizer is a forward only cursor over source text.
type Tokenizer struct {
	text   string
	offset int
	line   int
	column int
}

// NewTokenizer returns a tokenizer positioned at the start of the given text.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{
		text:   text,
		line:   1,
		column: 1,
	}
}

// Next returns the next token of the source text. It returns false once the
// end of the input is reached.
func (t *Tokenizer) Next() (Token, bool) {
	t.skipSpace()
	if t.offset >= len(t.text) {
		return Token{}, false
	}

	pos := Position{
		Offset: t.offset,
		Line:   t.line,
		Column: t.column,
	}

	for t.offset < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.offset:])
		if unicode.IsSpace(r) {
			break
		}
		t.offset += size
		t.column++
	}

	return Token{
		Text: t.text[pos.Offset:t.offset],
		Pos:  pos,
	}, true
}

// Position returns the current cursor position.
func (t *Tokenizer) Position() Position {
	return Position{
		Offset: t.offset,
		Line:   t.line,
		Column: t.column,
	}
}

func (t *Tokenizer) skipSpace() {
	for t.offset < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.offset:])
		if !unicode.IsSpace(r) {
			return
		}

		t.offset += size
		if r == '\n' {
			t.line++
			t.column = 1
		} else {
			t.column++
		}
	}
}
