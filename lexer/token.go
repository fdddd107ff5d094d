package lexer

import (
	"fmt"
	"slices"
)

// Kind is the category of a lexeme.
type Kind int

// Lexeme kinds as constants.
const (
	KindIllegal Kind = iota
	KindEOF

	// Identifiers + literals.
	KindIdentifier
	KindNumber

	// Operators.
	KindAssign     // '='.
	KindArithmetic // '+', '-', '@', '%'.

	// Keywords.
	KindOutput

	// End of kinds.
	FinalKind
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Map of kinds to their string representation for diagnostics.
var kindStrings = map[Kind]string{
	KindIllegal: "ILLEGAL",
	KindEOF:     "EOF",

	KindIdentifier: "IDENTIFIER",
	KindNumber:     "NUMBER",

	KindAssign:     "ASSIGNMENT_OPERATOR",
	KindArithmetic: "ARITHMETIC_OPERATOR",

	KindOutput: "OUTPUT_KEYWORD",
}

// IsOneOf reports whether k is any of the given kinds.
func (k Kind) IsOneOf(kinds ...Kind) bool {
	return slices.Contains(kinds, k)
}

// Arithmetic operator glyphs. Multiply and divide are '@' and '%', not '*' and '/'.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "@"
	OpDivide   = "%"
)

// KeywordOutput is the reserved word introducing an output statement.
const KeywordOutput = "output"

// Lexeme is a classified piece of source text. Lexemes are values and are never mutated.
type Lexeme struct {
	Kind Kind
	Text string

	Pos  int // Byte offset of the first character.
	Line int // 1-based.
	Col  int // 1-based, in runes.
}

// Is reports whether the lexeme is of the given kind.
func (l Lexeme) Is(kind Kind) bool {
	return l.Kind == kind
}

func (l Lexeme) String() string {
	switch {
	case l.Kind == KindEOF:
		return "EOF"
	case len(l.Text) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", l.Kind, l.Line, l.Col, l.Text)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", l.Kind, l.Line, l.Col, l.Text)
}
