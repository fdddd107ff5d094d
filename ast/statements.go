package ast

import (
	"fmt"

	"go.creack.net/polish/lexer"
	"go.creack.net/polish/machine"
	"go.creack.net/polish/symtab"
)

// AssignmentStatement binds the value of Expression to Identifier.
type AssignmentStatement struct {
	Pos        Pos
	Identifier string
	Expression Expression
}

func (*AssignmentStatement) stmt() {}

func (s *AssignmentStatement) Parse(lex *lexer.Lexer) error {
	tok, err := lex.Expect(lexer.KindIdentifier)
	if err != nil {
		return err
	}
	s.Pos, s.Identifier = posOf(tok), tok.Text

	if _, err := lex.Expect(lexer.KindAssign); err != nil {
		return err
	}

	s.Expression, err = ParseExpression(lex)
	return err
}

func (s *AssignmentStatement) Dump() string {
	return fmt.Sprintf("%s = %s", s.Identifier, s.Expression.Dump())
}

func (s *AssignmentStatement) Tree() *Tree {
	return Branch("<assignment_statement>",
		Branch("<identifier>", Leaf(s.Identifier)),
		Leaf("="),
		s.Expression.Tree(),
	)
}

// Interpret evaluates the expression then (re)binds the identifier.
func (s *AssignmentStatement) Interpret(vt *symtab.ValueTable, _ Sink) error {
	v, err := s.Expression.Interpret(vt)
	if err != nil {
		return err
	}
	vt.Bind(s.Identifier, v)
	return nil
}

// Compile resolves the target address first so addresses follow textual order.
func (s *AssignmentStatement) Compile(at *symtab.AddressTable) Fragment {
	target := at.Label(s.Identifier)

	code := []string{machine.Comment(s.Dump())}
	code = append(code, s.Expression.Compile(at).LoadInto(machine.Accumulator)...)
	code = append(code, machine.StoreInstr(target))
	return Fragment{Code: code}
}

// OutputStatement emits the value of Expression.
type OutputStatement struct {
	Pos        Pos
	Expression Expression
}

func (*OutputStatement) stmt() {}

func (s *OutputStatement) Parse(lex *lexer.Lexer) error {
	tok, err := lex.Expect(lexer.KindOutput)
	if err != nil {
		return err
	}
	s.Pos = posOf(tok)

	s.Expression, err = ParseExpression(lex)
	return err
}

func (s *OutputStatement) Dump() string {
	return fmt.Sprintf("%s %s", lexer.KeywordOutput, s.Expression.Dump())
}

func (s *OutputStatement) Tree() *Tree {
	return Branch("<output_statement>",
		Leaf(lexer.KeywordOutput),
		s.Expression.Tree(),
	)
}

// Interpret evaluates the expression and forwards it to out. A nil out drops the value.
func (s *OutputStatement) Interpret(vt *symtab.ValueTable, out Sink) error {
	v, err := s.Expression.Interpret(vt)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := out.Output(v); err != nil {
		return fmt.Errorf("output %s: %w", s.Dump(), err)
	}
	return nil
}

func (s *OutputStatement) Compile(at *symtab.AddressTable) Fragment {
	code := []string{machine.Comment(s.Dump())}
	code = append(code, s.Expression.Compile(at).LoadInto(machine.Accumulator)...)
	code = append(code, machine.OutInstr())
	return Fragment{Code: code}
}
