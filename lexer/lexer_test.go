package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to test the lexer.
func testLexer(t *testing.T, input string, expected []Lexeme) {
	t.Helper()

	lexemes := New(input).All()
	require.Len(t, lexemes, len(expected), "lexemes: %v", lexemes)
	for i, want := range expected {
		got := lexemes[i]
		assert.Equal(t, want.Kind, got.Kind, "tests[%d] - wrong kind (%s)", i, got)
		assert.Equal(t, want.Text, got.Text, "tests[%d] - wrong text (%s)", i, got)
	}
}

func TestKindString(t *testing.T) {
	if len(kindStrings) != int(FinalKind) {
		t.Fatalf("Expected %d kinds in kindStrings, got %d", FinalKind, len(kindStrings))
	}
	assert.Equal(t, "KIND(42)", Kind(42).String())
}

func TestLexerAssignment(t *testing.T) {
	testLexer(t, "x = + 2 3", []Lexeme{
		{Kind: KindIdentifier, Text: "x"},
		{Kind: KindAssign, Text: "="},
		{Kind: KindArithmetic, Text: "+"},
		{Kind: KindNumber, Text: "2"},
		{Kind: KindNumber, Text: "3"},
		{Kind: KindEOF, Text: ""},
	})
}

func TestLexerCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Lexeme
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: []Lexeme{{Kind: KindEOF}},
		},
		{
			name:     "Only layout",
			input:    "  \t\r\n\n ",
			expected: []Lexeme{{Kind: KindEOF}},
		},
		{
			name:  "Output keyword",
			input: "output x",
			expected: []Lexeme{
				{Kind: KindOutput, Text: "output"},
				{Kind: KindIdentifier, Text: "x"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "Keyword prefix is an identifier",
			input: "outputs output_1 outputx",
			expected: []Lexeme{
				{Kind: KindIdentifier, Text: "outputs"},
				{Kind: KindIdentifier, Text: "output_1"},
				{Kind: KindIdentifier, Text: "outputx"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "All arithmetic glyphs",
			input: "+-@%",
			expected: []Lexeme{
				{Kind: KindArithmetic, Text: "+"},
				{Kind: KindArithmetic, Text: "-"},
				{Kind: KindArithmetic, Text: "@"},
				{Kind: KindArithmetic, Text: "%"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "Conventional glyphs are illegal",
			input: "* /",
			expected: []Lexeme{
				{Kind: KindIllegal, Text: "*"},
				{Kind: KindIllegal, Text: "/"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "Unicode glyph is illegal",
			input: "× 2",
			expected: []Lexeme{
				{Kind: KindIllegal, Text: "×"},
				{Kind: KindNumber, Text: "2"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "Decimal number",
			input: "3.25 10",
			expected: []Lexeme{
				{Kind: KindNumber, Text: "3.25"},
				{Kind: KindNumber, Text: "10"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "Trailing dot is not a fraction",
			input: "3.",
			expected: []Lexeme{
				{Kind: KindNumber, Text: "3"},
				{Kind: KindIllegal, Text: "."},
				{Kind: KindEOF},
			},
		},
		{
			name:  "Number then identifier without space",
			input: "2x",
			expected: []Lexeme{
				{Kind: KindNumber, Text: "2"},
				{Kind: KindIdentifier, Text: "x"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "Statements without separators",
			input: "a=1 b=a",
			expected: []Lexeme{
				{Kind: KindIdentifier, Text: "a"},
				{Kind: KindAssign, Text: "="},
				{Kind: KindNumber, Text: "1"},
				{Kind: KindIdentifier, Text: "b"},
				{Kind: KindAssign, Text: "="},
				{Kind: KindIdentifier, Text: "a"},
				{Kind: KindEOF},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLexer(t, tt.input, tt.expected)
		})
	}
}

func TestLexerPositions(t *testing.T) {
	lexemes := New("x = 2\n  output x").All()
	require.Len(t, lexemes, 6)

	type pos struct{ pos, line, col int }
	expected := []pos{
		{0, 1, 1},
		{2, 1, 3},
		{4, 1, 5},
		{8, 2, 3},
		{15, 2, 10},
		{16, 2, 11},
	}
	for i, want := range expected {
		got := pos{lexemes[i].Pos, lexemes[i].Line, lexemes[i].Col}
		assert.Equal(t, want, got, "lexeme %d (%s)", i, lexemes[i])
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lex := New("output 1")
	assert.Equal(t, KindOutput, lex.PeekKind())
	assert.Equal(t, KindOutput, lex.PeekKind())

	tok, err := lex.NextLexeme()
	require.NoError(t, err)
	assert.Equal(t, "output", tok.Text)
	assert.Equal(t, KindNumber, lex.PeekKind())
}

func TestLexerEndOfInput(t *testing.T) {
	lex := New("x")
	_, err := lex.NextLexeme()
	require.NoError(t, err)

	assert.Equal(t, KindEOF, lex.PeekKind())
	_, err = lex.NextLexeme()
	require.ErrorIs(t, err, ErrEndOfInput)

	// Exhausted lexers stay exhausted.
	_, err = lex.NextLexeme()
	require.ErrorIs(t, err, ErrEndOfInput)
}

func TestLexerExpect(t *testing.T) {
	lex := New("x + 3")

	tok, err := lex.Expect(KindIdentifier)
	require.NoError(t, err)
	assert.Equal(t, "x", tok.Text)

	_, err = lex.Expect(KindAssign)
	require.ErrorIs(t, err, ErrExpectedToken)

	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, KindAssign, synErr.Expected)
	assert.Equal(t, "+", synErr.Lexeme.Text)
	assert.Equal(t, `1:3: expected ASSIGNMENT_OPERATOR instead of "+"`, err.Error())

	_, err = lex.Expect(KindNumber)
	require.NoError(t, err)

	_, err = lex.Expect(KindNumber)
	require.ErrorIs(t, err, ErrEndOfInput)
	assert.Equal(t, "1:6: unexpected end of input, expected NUMBER", err.Error())
}

func TestUnexpected(t *testing.T) {
	err := Unexpected(Lexeme{Kind: KindAssign, Text: "=", Line: 2, Col: 4})
	require.ErrorIs(t, err, ErrUnexpectedToken)
	assert.Equal(t, `2:4: unexpected token "="`, err.Error())

	err = Unexpected(Lexeme{Kind: KindEOF, Line: 1, Col: 1})
	require.ErrorIs(t, err, ErrEndOfInput)
}
