package ast

import (
	"errors"
	"fmt"
)

// Traversal errors. An *EvalError unwraps to one of these.
var (
	ErrUndefinedIdentifier = errors.New("undefined identifier")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrMalformedNumber     = errors.New("malformed number")
)

// EvalError reports the node whose evaluation failed.
type EvalError struct {
	Err  error
	Pos  Pos
	Node string // Source of the failing node.
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Err, e.Node)
}

func (e *EvalError) Unwrap() error { return e.Err }
