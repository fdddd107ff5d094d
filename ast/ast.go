// Package ast holds the syntax tree of the polish statement language.
//
// Grammar, operators in prefix position:
//
//	program    : statement*
//	statement  : IDENTIFIER '=' expression
//	           | 'output' expression
//	expression : NUMBER
//	           | IDENTIFIER
//	           | ARITHMETIC_OPERATOR expression expression
//
// Every node parses itself from a lexer, evaluates itself against a value
// table and compiles itself against an address table.
package ast

import (
	"fmt"
	"strings"

	"go.creack.net/polish/lexer"
	"go.creack.net/polish/machine"
	"go.creack.net/polish/symtab"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Parse(lex *lexer.Lexer) error
	Dump() string // Canonical prefix source.
	Tree() *Tree  // Debug view.
}

// Expression is a node producing a value.
type Expression interface {
	Node
	Interpret(vt *symtab.ValueTable) (float64, error)
	Compile(at *symtab.AddressTable) Fragment
	expr()
}

// Statement is a node with an effect.
type Statement interface {
	Node
	Interpret(vt *symtab.ValueTable, out Sink) error
	Compile(at *symtab.AddressTable) Fragment
	stmt()
}

// Sink receives the values of output statements, in program order.
type Sink interface {
	Output(v float64) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(float64) error

func (f SinkFunc) Output(v float64) error { return f(v) }

// Pos is the source position of a node's first lexeme.
type Pos struct {
	Line int
	Col  int
}

func posOf(lex lexer.Lexeme) Pos { return Pos{Line: lex.Line, Col: lex.Col} }

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// Fragment is compiled code.
// Leaves compile to an Operand (immediate or memory reference) and no Code.
// Other nodes compile to Code which leaves their value in the accumulator.
type Fragment struct {
	Operand string
	Code    []string
}

// IsOperand reports whether the fragment is a directly addressable operand.
func (f Fragment) IsOperand() bool { return f.Operand != "" }

// LoadInto returns code leaving the fragment's value in reg.
func (f Fragment) LoadInto(reg string) []string {
	if f.IsOperand() {
		return []string{machine.MoveInstr(reg, f.Operand)}
	}
	code := append([]string(nil), f.Code...)
	if reg != machine.Accumulator {
		code = append(code, machine.MoveInstr(reg, machine.Accumulator))
	}
	return code
}

func (f Fragment) String() string {
	if f.IsOperand() {
		return f.Operand
	}
	return strings.Join(f.Code, "\n")
}

// ParseExpression picks the expression variant from the next lexeme and parses it.
func ParseExpression(lex *lexer.Lexer) (Expression, error) {
	var e Expression
	switch lex.PeekKind() {
	case lexer.KindNumber:
		e = &NumberExpression{}
	case lexer.KindIdentifier:
		e = &IdentifierExpression{}
	case lexer.KindArithmetic:
		e = &ArithmeticExpression{}
	default:
		return nil, lexer.Unexpected(lex.Peek())
	}
	if err := e.Parse(lex); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseStatement picks the statement variant from the next lexeme and parses it.
func ParseStatement(lex *lexer.Lexer) (Statement, error) {
	var s Statement
	switch lex.PeekKind() {
	case lexer.KindOutput:
		s = &OutputStatement{}
	case lexer.KindIdentifier:
		s = &AssignmentStatement{}
	default:
		return nil, lexer.Unexpected(lex.Peek())
	}
	if err := s.Parse(lex); err != nil {
		return nil, err
	}
	return s, nil
}

// Program is the parse root: statements in textual order.
type Program struct {
	Statements []Statement
}

// Parse reads statements until the end of input.
func (p *Program) Parse(lex *lexer.Lexer) error {
	for lex.PeekKind() != lexer.KindEOF {
		s, err := ParseStatement(lex)
		if err != nil {
			return err
		}
		p.Statements = append(p.Statements, s)
	}
	return nil
}

func (p *Program) Dump() string {
	result := ""
	for _, s := range p.Statements {
		result += fmt.Sprintf("%s\n", s.Dump())
	}
	return result
}

func (p *Program) Tree() *Tree {
	t := Branch("<program>")
	for _, s := range p.Statements {
		t.Children = append(t.Children, s.Tree())
	}
	return t
}

// Interpret runs the statements in order, stopping at the first error.
func (p *Program) Interpret(vt *symtab.ValueTable, out Sink) error {
	for _, s := range p.Statements {
		if err := s.Interpret(vt, out); err != nil {
			return err
		}
	}
	return nil
}

// Compile concatenates the code of every statement.
func (p *Program) Compile(at *symtab.AddressTable) Fragment {
	var code []string
	for _, s := range p.Statements {
		code = append(code, s.Compile(at).Code...)
	}
	return Fragment{Code: code}
}
