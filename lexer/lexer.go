// Package lexer provides the lexical analyzer for the polish statement language.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const eof = -1

const (
	digits           = "0123456789"
	letters          = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	identifierChars  = letters + digits + "_"
	arithmeticGlyphs = OpAdd + OpSubtract + OpMultiply + OpDivide
	layoutChars      = " \t\r\n"
)

// Lexer produces lexemes on demand with one lexeme of lookahead.
// It cannot be rewound: once exhausted, create a new one.
type Lexer struct {
	input string

	peeked *Lexeme // Lookahead buffer.
	cur    Lexeme  // Lexeme emitted by the last state function.

	pos     int // Current position in input.
	width   int // Width of the last rune read, 0 at end of input.
	line    int // Current line in input.
	col     int // Column of the next rune.
	prevCol int // Column before the last newline, for backup.

	start     int // Position of the start of the current lexeme.
	startLine int // Line where the current lexeme started.
	startCol  int // Column where the current lexeme started.
}

// New creates a new Lexer for the given source text.
func New(input string) *Lexer {
	return &Lexer{
		input:     input,
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
}

// Peek returns the next lexeme without consuming it.
func (l *Lexer) Peek() Lexeme {
	if l.peeked == nil {
		lex := l.scan()
		l.peeked = &lex
	}
	return *l.peeked
}

// PeekKind returns the kind of the next lexeme without consuming it.
func (l *Lexer) PeekKind() Kind {
	return l.Peek().Kind
}

// NextLexeme consumes and returns the next lexeme.
// It fails with ErrEndOfInput when the stream is exhausted.
func (l *Lexer) NextLexeme() (Lexeme, error) {
	lex := l.Peek()
	if lex.Kind == KindEOF {
		return lex, &SyntaxError{Err: ErrEndOfInput, Lexeme: lex}
	}
	l.peeked = nil
	return lex, nil
}

// Expect consumes the next lexeme and requires it to be of the given kind.
func (l *Lexer) Expect(kind Kind) (Lexeme, error) {
	lex := l.Peek()
	if lex.Kind == KindEOF {
		return lex, &SyntaxError{Err: ErrEndOfInput, Lexeme: lex, Expected: kind}
	}
	l.peeked = nil
	if lex.Kind != kind {
		return lex, &SyntaxError{Err: ErrExpectedToken, Lexeme: lex, Expected: kind}
	}
	return lex, nil
}

// All drains the lexer. The last lexeme is always EOF.
func (l *Lexer) All() []Lexeme {
	var out []Lexeme
	for {
		lex := l.Peek()
		l.peeked = nil
		out = append(out, lex)
		if lex.Kind == KindEOF {
			return out
		}
	}
}

func (l *Lexer) scan() Lexeme {
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.cur
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = n
	l.pos += n
	if r == '\n' {
		l.line++
		l.prevCol = l.col
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup() {
	if l.width == 0 {
		return
	}
	l.pos -= l.width
	l.width = 0
	if l.input[l.pos] == '\n' {
		l.line--
		l.col = l.prevCol
		return
	}
	l.col--
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisLexeme(kind Kind) Lexeme {
	lex := Lexeme{
		Kind: kind,
		Text: l.input[l.start:l.pos],
		Pos:  l.start,
		Line: l.startLine,
		Col:  l.startCol,
	}
	l.ignore()
	return lex
}

func (l *Lexer) emit(kind Kind) stateFn {
	l.cur = l.thisLexeme(kind)
	return nil
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startLine = l.line
	l.startCol = l.col
}
