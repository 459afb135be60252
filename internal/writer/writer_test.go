package writer

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"strings"
	"testing"

	"github.com/retroenv/chip8asm/internal/linker"
	"github.com/retroenv/chip8asm/internal/parser"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func assemble(t *testing.T, text string) *linker.Result {
	t.Helper()

	items, err := parser.Parse(text)
	assert.NoError(t, err)

	result, err := linker.New(log.NewTestLogger(t)).Link(items)
	assert.NoError(t, err)
	return result
}

func TestWriter_Plain(t *testing.T) {
	result := assemble(t, ":start clr\njump .start")

	var buf bytes.Buffer
	w := New(result, &buf, Options{})
	assert.NoError(t, w.Write())

	expected := fmt.Sprintf(`; CHIP-8 assembly listing
; Code base address: $0200
; Code size: 4 bytes
; CRC32 checksum: %08x

start:
$0200  00 E0  clr
$0202  12 00  jump .start
`, crc32.ChecksumIEEE([]byte{0x00, 0xE0, 0x12, 0x00}))
	assert.Equal(t, expected, buf.String())
}

func TestWriter_Options(t *testing.T) {
	result := assemble(t, ":start mov irg 0x300\n:loop draw rv0 rv1 5\njump .loop\n:end")

	var buf bytes.Buffer
	w := New(result, &buf, Options{
		OpcodeComments: true,
		SymbolTable:    true,
	})
	assert.NoError(t, w.Write())

	output := buf.String()
	lines := strings.Split(output, "\n")

	assert.Contains(t, output, "; ld I, $300")
	assert.Contains(t, output, "; drw V0, V1, $5")
	assert.Contains(t, output, "; jp $202")
	assert.True(t, strings.HasPrefix(findLine(lines, "start:"), "start:"))
	assert.Contains(t, findLine(lines, "start:"), "; unreferenced")
	assert.Equal(t, "loop:", findLine(lines, "loop:"))
	assert.Contains(t, output, "\n; Symbols\nstart = $0200\nloop = $0202\nend = $0206\n")
}

func TestWriter_OpcodeNotes(t *testing.T) {
	result := assemble(t, ":main se rv0 1\ncall .sub\ndraw rv0 rv1 3\nbcd rv2\nstore rv3\njump .main\nclr\n:sub ret\nnop")

	var buf bytes.Buffer
	w := New(result, &buf, Options{OpcodeComments: true})
	assert.NoError(t, w.Write())

	lines := strings.Split(buf.String(), "\n")
	assert.Contains(t, findLine(lines, "$0200"), "; se V0, $01 (skips next)")
	assert.Contains(t, findLine(lines, "$0202"), "; call $20E (subroutine)")
	assert.Contains(t, findLine(lines, "$0204"), "; drw V0, V1, $3 (reads [I])")
	assert.Contains(t, findLine(lines, "$0206"), "; ld B, V2 (writes [I])")
	assert.Contains(t, findLine(lines, "$0208"), "; ld V3, [I] (reads [I])")
	assert.True(t, strings.HasSuffix(findLine(lines, "$020C"), "; cls"))

	// jump and return end a block
	assert.Contains(t, buf.String(), "; jp $200\n\n$020C")
	assert.Contains(t, buf.String(), "; ret\n\n$0210  00 00  nop\n")
}

func TestWriter_EmptyProgram(t *testing.T) {
	result := assemble(t, "")

	var buf bytes.Buffer
	w := New(result, &buf, Options{SymbolTable: true})
	assert.NoError(t, w.Write())
	assert.Contains(t, buf.String(), "; Code size: 0 bytes")
	assert.False(t, strings.Contains(buf.String(), "; Symbols"))
}

func findLine(lines []string, prefix string) string {
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	return ""
}
