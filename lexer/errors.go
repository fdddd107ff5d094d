package lexer

import (
	"errors"
	"fmt"
)

// Parse time error categories. A *SyntaxError unwraps to one of these.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrExpectedToken   = errors.New("expected token")
	ErrEndOfInput      = errors.New("unexpected end of input")
)

// SyntaxError reports a lexeme that does not fit the grammar.
type SyntaxError struct {
	Err      error  // One of ErrUnexpectedToken, ErrExpectedToken or ErrEndOfInput.
	Lexeme   Lexeme // The offending lexeme (EOF for ErrEndOfInput).
	Expected Kind   // Set for ErrExpectedToken, and for ErrEndOfInput when a kind was required.
}

func (e *SyntaxError) Error() string {
	pos := fmt.Sprintf("%d:%d", e.Lexeme.Line, e.Lexeme.Col)
	switch {
	case errors.Is(e.Err, ErrExpectedToken):
		return fmt.Sprintf("%s: expected %s instead of %q", pos, e.Expected, e.Lexeme.Text)
	case errors.Is(e.Err, ErrEndOfInput) && e.Expected != KindIllegal:
		return fmt.Sprintf("%s: %s, expected %s", pos, e.Err, e.Expected)
	case errors.Is(e.Err, ErrEndOfInput):
		return fmt.Sprintf("%s: %s", pos, e.Err)
	}
	return fmt.Sprintf("%s: %s %q", pos, e.Err, e.Lexeme.Text)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Unexpected builds the error for a lookahead lexeme that matches no grammar alternative.
func Unexpected(lex Lexeme) error {
	if lex.Kind == KindEOF {
		return &SyntaxError{Err: ErrEndOfInput, Lexeme: lex}
	}
	return &SyntaxError{Err: ErrUnexpectedToken, Lexeme: lex}
}
