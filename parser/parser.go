// Package parser is the entry point of the pipeline: it drives the lexer and
// builds the program syntax tree.
package parser

import (
	"fmt"
	"io"

	"go.creack.net/polish/ast"
	"go.creack.net/polish/lexer"
)

// Parse builds the program from the lexer. Parsing stops at the first error.
// No semantic check is done here: undefined identifiers are only reported
// when the program is interpreted.
func Parse(lex *lexer.Lexer) (*ast.Program, error) {
	prog := &ast.Program{}
	if err := prog.Parse(lex); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return prog, nil
}

// ParseString parses source text.
func ParseString(src string) (*ast.Program, error) {
	return Parse(lexer.New(src))
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader) (*ast.Program, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return ParseString(string(buf))
}
