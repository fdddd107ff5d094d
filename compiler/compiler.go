// Package compiler generates machine listings: it threads a fresh address
// table through the syntax tree and assembles the resulting fragments.
package compiler

import (
	"fmt"
	"log/slog"
	"strings"

	"go.creack.net/polish/ast"
	"go.creack.net/polish/machine"
	"go.creack.net/polish/symtab"
)

// Options control the listing layout.
type Options struct {
	Comments bool // Prefix each statement with its source as a comment.
}

// Symbol is the storage reserved for an identifier.
type Symbol struct {
	Name    string
	Address int
	Label   string
}

// Listing is the output of a compilation pass.
type Listing struct {
	Text    string
	Symbols []Symbol // In order of first reference.
}

// Lookup returns the symbol reserved for name.
func (l *Listing) Lookup(name string) (Symbol, bool) {
	for _, s := range l.Symbols {
		if s.Name == name {
			return s, true
		}
	}
	return Symbol{}, false
}

// Compiler runs compilation passes. The zero value is ready to use.
type Compiler struct {
	Options Options
	Logger  *slog.Logger // Defaults to slog.Default().
}

// Generate compiles prog against a fresh address table.
// Compilation has no failure mode: semantic errors such as a division by
// zero or an unassigned identifier only surface when the code runs.
func (c *Compiler) Generate(prog *ast.Program) *Listing {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	at := symtab.NewAddressTable()
	frag := prog.Compile(at)

	var lines []string
	for _, line := range frag.Code {
		if !c.Options.Comments && machine.IsComment(line) {
			continue
		}
		lines = append(lines, line)
	}

	listing := &Listing{Text: strings.Join(lines, "\n")}
	if len(lines) > 0 {
		listing.Text += "\n"
	}
	for _, name := range at.Names() {
		addr, _ := at.Lookup(name)
		listing.Symbols = append(listing.Symbols, Symbol{Name: name, Address: addr, Label: symtab.Label(addr)})
		logger.Debug("symbol", "identifier", name, "address", addr)
	}
	logger.Debug("compile done", "statements", len(prog.Statements), "lines", len(lines), "symbols", len(listing.Symbols))
	return listing
}

// Compile compiles prog with the given options.
func Compile(prog *ast.Program, opts Options) *Listing {
	return (&Compiler{Options: opts}).Generate(prog)
}

// Simulate runs a listing on a fresh machine.
func Simulate(listing *Listing) (*machine.CPU, error) {
	cpu, err := machine.Exec(listing.Text)
	if err != nil {
		return cpu, fmt.Errorf("simulate: %w", err)
	}
	return cpu, nil
}
