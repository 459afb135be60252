// Package symbols provides the label table that maps label names to addresses.
package symbols

import (
	"sort"

	"github.com/retroenv/chip8asm/internal/source"
	"github.com/retroenv/retrogolib/set"
)

// Symbol is a declared label.
type Symbol struct {
	Name    string
	Address uint16
	Pos     source.Position // position of the declaration
}

// Table tracks declared labels and which of them are referenced. It is
// filled by the addressing pass and only read afterwards.
type Table struct {
	items map[string]Symbol
	used  set.Set[string]
}

// New creates a new empty label table.
func New() *Table {
	return &Table{
		items: make(map[string]Symbol),
		used:  set.New[string](),
	}
}

// Declare adds a label to the table. It returns the existing symbol and false
// if a label with the same name was already declared.
func (t *Table) Declare(sym Symbol) (Symbol, bool) {
	if existing, ok := t.items[sym.Name]; ok {
		return existing, false
	}
	t.items[sym.Name] = sym
	return sym, true
}

// Get returns the symbol with the given name.
func (t *Table) Get(name string) (Symbol, bool) {
	sym, ok := t.items[name]
	return sym, ok
}

// Reference records a reference to the label with the given name. The label
// does not need to be declared yet.
func (t *Table) Reference(name string) {
	t.used.Add(name)
}

// Resolve returns the address of the label.
func (t *Table) Resolve(name string) (uint16, bool) {
	sym, ok := t.items[name]
	if !ok {
		return 0, false
	}
	return sym.Address, true
}

// Len returns the number of declared labels.
func (t *Table) Len() int {
	return len(t.items)
}

// IsUsed returns whether the label is referenced at least once.
func (t *Table) IsUsed(name string) bool {
	return t.used.Contains(name)
}

// Sorted returns all symbols sorted by address, labels at the same address
// are sorted by name.
func (t *Table) Sorted() []Symbol {
	symbols := make([]Symbol, 0, len(t.items))
	for _, sym := range t.items {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool {
		if symbols[i].Address != symbols[j].Address {
			return symbols[i].Address < symbols[j].Address
		}
		return symbols[i].Name < symbols[j].Name
	})
	return symbols
}

// Unused returns all symbols that are never referenced, sorted by address.
func (t *Table) Unused() []Symbol {
	var unused []Symbol
	for _, sym := range t.Sorted() {
		if !t.used.Contains(sym.Name) {
			unused = append(unused, sym)
		}
	}
	return unused
}
