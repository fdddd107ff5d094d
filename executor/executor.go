// Package executor interprets programs: it threads a fresh value table
// through the syntax tree and collects what the program outputs.
package executor

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"go.creack.net/polish/ast"
	"go.creack.net/polish/parser"
	"go.creack.net/polish/symtab"
)

// Binding is the final value of an identifier.
type Binding struct {
	Name  string
	Value float64
}

// Result of an interpretation pass.
type Result struct {
	Bindings []Binding // In order of first assignment.
	Outputs  []float64 // In program order.
}

// Lookup returns the final value of name.
func (r *Result) Lookup(name string) (float64, bool) {
	for _, b := range r.Bindings {
		if b.Name == name {
			return b.Value, true
		}
	}
	return 0, false
}

// Executor runs interpretation passes. The zero value is ready to use.
type Executor struct {
	Stdout io.Writer    // Receives each output value on its own line. Optional.
	Logger *slog.Logger // Defaults to slog.Default().
}

// FormatValue renders a value the way output statements print it.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (e *Executor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Evaluate interprets prog against a fresh value table.
// On error, the result holds what was produced before the failing statement.
func (e *Executor) Evaluate(prog *ast.Program) (*Result, error) {
	logger := e.logger()
	vt := symtab.NewValueTable()
	result := &Result{}

	sink := ast.SinkFunc(func(v float64) error {
		logger.Debug("output", "index", len(result.Outputs), "value", v)
		result.Outputs = append(result.Outputs, v)
		if e.Stdout == nil {
			return nil
		}
		if _, err := fmt.Fprintln(e.Stdout, FormatValue(v)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	})

	logger.Debug("interpret start", "statements", len(prog.Statements))
	err := prog.Interpret(vt, sink)
	for _, name := range vt.Names() {
		v, _ := vt.Lookup(name)
		result.Bindings = append(result.Bindings, Binding{Name: name, Value: v})
		logger.Debug("binding", "identifier", name, "value", v)
	}
	if err != nil {
		logger.Debug("interpret failed", "error", err)
		return result, fmt.Errorf("interpret: %w", err)
	}
	logger.Debug("interpret done", "bindings", len(result.Bindings), "outputs", len(result.Outputs))
	return result, nil
}

// Interpret evaluates prog with a default executor.
func Interpret(prog *ast.Program) (*Result, error) {
	return (&Executor{}).Evaluate(prog)
}

// Run parses the source read from input and interprets it, printing
// outputs to stdout.
func Run(input io.Reader, stdout io.Writer) (*Result, error) {
	prog, err := parser.ParseReader(input)
	if err != nil {
		return nil, err
	}
	return (&Executor{Stdout: stdout}).Evaluate(prog)
}
