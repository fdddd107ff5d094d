package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/polish/lexer"
	"go.creack.net/polish/machine"
	"go.creack.net/polish/symtab"
)

// NumberExpression is a numeric literal.
type NumberExpression struct {
	Pos     Pos
	Literal string
}

func (*NumberExpression) expr() {}

func (e *NumberExpression) Parse(lex *lexer.Lexer) error {
	tok, err := lex.Expect(lexer.KindNumber)
	if err != nil {
		return err
	}
	e.Pos, e.Literal = posOf(tok), tok.Text
	return nil
}

func (e *NumberExpression) Dump() string { return e.Literal }

func (e *NumberExpression) Tree() *Tree { return Branch("<number>", Leaf(e.Literal)) }

func (e *NumberExpression) Interpret(*symtab.ValueTable) (float64, error) {
	v, err := strconv.ParseFloat(e.Literal, 64)
	if err != nil {
		return 0, &EvalError{Err: fmt.Errorf("%w: %w", ErrMalformedNumber, err), Pos: e.Pos, Node: e.Literal}
	}
	return v, nil
}

// Compile emits the literal as an immediate operand.
func (e *NumberExpression) Compile(*symtab.AddressTable) Fragment {
	return Fragment{Operand: e.Literal}
}

// IdentifierExpression reads a variable.
type IdentifierExpression struct {
	Pos  Pos
	Name string
}

func (*IdentifierExpression) expr() {}

func (e *IdentifierExpression) Parse(lex *lexer.Lexer) error {
	tok, err := lex.Expect(lexer.KindIdentifier)
	if err != nil {
		return err
	}
	e.Pos, e.Name = posOf(tok), tok.Text
	return nil
}

func (e *IdentifierExpression) Dump() string { return e.Name }

func (e *IdentifierExpression) Tree() *Tree { return Branch("<identifier>", Leaf(e.Name)) }

func (e *IdentifierExpression) Interpret(vt *symtab.ValueTable) (float64, error) {
	v, ok := vt.Lookup(e.Name)
	if !ok {
		return 0, &EvalError{Err: ErrUndefinedIdentifier, Pos: e.Pos, Node: e.Name}
	}
	return v, nil
}

// Compile emits a memory reference, allocating the address on first use.
func (e *IdentifierExpression) Compile(at *symtab.AddressTable) Fragment {
	return Fragment{Operand: at.Label(e.Name)}
}

// ArithmeticExpression applies Operator to its two operands.
type ArithmeticExpression struct {
	Pos      Pos
	Operator string
	Operand1 Expression
	Operand2 Expression
}

func (*ArithmeticExpression) expr() {}

var mnemonics = map[string]string{
	lexer.OpAdd:      machine.Add,
	lexer.OpSubtract: machine.Sub,
	lexer.OpMultiply: machine.Mul,
	lexer.OpDivide:   machine.Div,
}

func (e *ArithmeticExpression) Parse(lex *lexer.Lexer) error {
	tok, err := lex.Expect(lexer.KindArithmetic)
	if err != nil {
		return err
	}
	e.Pos, e.Operator = posOf(tok), tok.Text
	if e.Operand1, err = ParseExpression(lex); err != nil {
		return err
	}
	if e.Operand2, err = ParseExpression(lex); err != nil {
		return err
	}
	return nil
}

func (e *ArithmeticExpression) Dump() string {
	return fmt.Sprintf("%s %s %s", e.Operator, e.Operand1.Dump(), e.Operand2.Dump())
}

func (e *ArithmeticExpression) Tree() *Tree {
	return Branch("<arithmetic_expression>",
		Branch(e.Operator, e.Operand1.Tree(), e.Operand2.Tree()),
	)
}

func (e *ArithmeticExpression) Interpret(vt *symtab.ValueTable) (float64, error) {
	left, err := e.Operand1.Interpret(vt)
	if err != nil {
		return 0, err
	}
	right, err := e.Operand2.Interpret(vt)
	if err != nil {
		return 0, err
	}

	switch e.Operator {
	case lexer.OpAdd:
		return left + right, nil
	case lexer.OpSubtract:
		return left - right, nil
	case lexer.OpMultiply:
		return left * right, nil
	case lexer.OpDivide:
		if right == 0 {
			return 0, &EvalError{Err: ErrDivisionByZero, Pos: e.Pos, Node: e.Dump()}
		}
		return left / right, nil
	}
	panic(fmt.Errorf("unsupported operator %q", e.Operator))
}

// Compile leaves Operand1 in the accumulator and Operand2 in the operand
// register, then combines them. A nested right operand would clobber the
// accumulator, so the left value is spilled to a scratch slot around it.
func (e *ArithmeticExpression) Compile(at *symtab.AddressTable) Fragment {
	mnemonic, ok := mnemonics[e.Operator]
	if !ok {
		panic(fmt.Errorf("unsupported operator %q", e.Operator))
	}

	code := e.Operand1.Compile(at).LoadInto(machine.Accumulator)

	// Reserve the slot before compiling the right operand so its own spills nest below it.
	slot := at.AcquireScratch()
	right := e.Operand2.Compile(at)
	if right.IsOperand() {
		code = append(code, right.LoadInto(machine.Operand)...)
	} else {
		code = append(code, machine.StoreInstr(slot))
		code = append(code, right.LoadInto(machine.Operand)...)
		code = append(code, machine.MoveInstr(machine.Accumulator, slot))
	}
	at.ReleaseScratch()

	code = append(code, machine.CombineInstr(mnemonic))
	return Fragment{Code: code}
}
