// Package symtab maps identifiers to their payload during a traversal.
//
// The value table backs interpretation, the address table backs code
// generation. A table belongs to exactly one traversal and is not safe for
// concurrent use.
package symtab

import "fmt"

// Address stride and base: the n-th distinct identifier lives at 4*n.
const (
	AddressStride = 4
	FrameRegister = "rbp"
	StackRegister = "rsp"
)

// Table maps names to payloads and remembers first-insertion order.
type Table[T any] struct {
	entries map[string]T
	order   []string
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{entries: map[string]T{}}
}

// Lookup returns the payload bound to name.
func (t *Table[T]) Lookup(name string) (T, bool) {
	v, ok := t.entries[name]
	return v, ok
}

// Bind associates name with v, overwriting any previous binding.
func (t *Table[T]) Bind(name string, v T) {
	if _, ok := t.entries[name]; !ok {
		t.order = append(t.order, name)
	}
	t.entries[name] = v
}

// Len returns the number of distinct names.
func (t *Table[T]) Len() int { return len(t.order) }

// Names returns the names in order of first binding.
func (t *Table[T]) Names() []string {
	return append([]string(nil), t.order...)
}

// ValueTable holds the last value assigned to each identifier.
type ValueTable struct {
	*Table[float64]
}

// NewValueTable creates an empty value table.
func NewValueTable() *ValueTable {
	return &ValueTable{Table: NewTable[float64]()}
}

// AddressTable assigns storage addresses to identifiers on first reference.
type AddressTable struct {
	*Table[int]

	scratch int // Current scratch depth.
}

// NewAddressTable creates an empty address table.
func NewAddressTable() *AddressTable {
	return &AddressTable{Table: NewTable[int]()}
}

// Resolve returns the address of name, allocating the next one if name is new.
func (t *AddressTable) Resolve(name string) int {
	if addr, ok := t.Lookup(name); ok {
		return addr
	}
	addr := AddressStride * (t.Len() + 1)
	t.Bind(name, addr)
	return addr
}

// Label is the memory operand of the storage reserved for name.
func (t *AddressTable) Label(name string) string {
	return Label(t.Resolve(name))
}

// Label formats an identifier address as a memory operand.
func Label(addr int) string {
	return fmt.Sprintf("[%s-%d]", FrameRegister, addr)
}

// AcquireScratch reserves a spill slot for an intermediate value.
// Slots are depth indexed: release them in reverse order of acquisition.
func (t *AddressTable) AcquireScratch() string {
	slot := fmt.Sprintf("[%s+%d]", StackRegister, AddressStride*t.scratch)
	t.scratch++
	return slot
}

// ReleaseScratch frees the most recently acquired spill slot.
func (t *AddressTable) ReleaseScratch() {
	if t.scratch == 0 {
		panic("symtab: scratch slot released twice")
	}
	t.scratch--
}
