package executor_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/polish/ast"
	"go.creack.net/polish/executor"
	"go.creack.net/polish/lexer"
	"go.creack.net/polish/parser"
)

type testCase struct {
	name     string
	input    string
	stdout   string
	bindings []executor.Binding
	err      error
}

func TestExecutor(t *testing.T) {
	tests := []testCase{
		{name: "empty", input: "", stdout: ""},
		{name: "empty line", input: "\n", stdout: ""},
		{name: "addition output", input: "x = + 2 3\noutput x", stdout: "5\n", bindings: []executor.Binding{{Name: "x", Value: 5}}},
		{name: "multiply glyph", input: "x = 2\ny = @ x 4", bindings: []executor.Binding{{Name: "x", Value: 2}, {Name: "y", Value: 8}}},
		{name: "reassignment", input: "x = 1 y = x x = 7 output x output y", stdout: "7\n1\n", bindings: []executor.Binding{{Name: "x", Value: 7}, {Name: "y", Value: 1}}},
		{name: "fraction", input: "output % 1 4", stdout: "0.25\n"},
		{name: "negative", input: "output - 0 12", stdout: "-12\n"},
		{name: "output expression", input: "output + 1 @ 2 3", stdout: "7\n"},
		{name: "division by zero", input: "y = % 10 0", err: ast.ErrDivisionByZero},
		{name: "undefined identifier", input: "output y", err: ast.ErrUndefinedIdentifier},
		{name: "partial output", input: "x = 3 output x output q", stdout: "3\n", bindings: []executor.Binding{{Name: "x", Value: 3}}, err: ast.ErrUndefinedIdentifier},
		{name: "syntax error", input: "x + 3", err: lexer.ErrExpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := bytes.NewBuffer(nil)
			result, err := executor.Run(strings.NewReader(tt.input), stdout)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.stdout, stdout.String())
			if result != nil {
				assert.Equal(t, tt.bindings, result.Bindings)
			}
		})
	}
}

func TestInterpretResult(t *testing.T) {
	prog, err := parser.ParseString("a = 1 b = + a 1 output b a = 10")
	require.NoError(t, err)

	result, err := executor.Interpret(prog)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, result.Outputs)

	v, ok := result.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 10.0, v)
	_, ok = result.Lookup("c")
	assert.False(t, ok)
}

func TestExecutorIndependentPasses(t *testing.T) {
	prog, err := parser.ParseString("x = 1")
	require.NoError(t, err)
	prog2, err := parser.ParseString("output x")
	require.NoError(t, err)

	_, err = executor.Interpret(prog)
	require.NoError(t, err)

	// Each pass owns a fresh table: nothing leaks from the previous run.
	_, err = executor.Interpret(prog2)
	require.ErrorIs(t, err, ast.ErrUndefinedIdentifier)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExecutorWriteError(t *testing.T) {
	_, err := executor.Run(strings.NewReader("output 1"), failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestExecutorLogging(t *testing.T) {
	logs := bytes.NewBuffer(nil)
	e := &executor.Executor{Logger: slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	prog, err := parser.ParseString("x = 4 output x")
	require.NoError(t, err)
	_, err = e.Evaluate(prog)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "msg=binding identifier=x value=4")
	assert.Contains(t, logs.String(), "msg=output index=0 value=4")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "5", executor.FormatValue(5))
	assert.Equal(t, "3.5", executor.FormatValue(3.5))
	assert.Equal(t, "-0.25", executor.FormatValue(-0.25))
}
