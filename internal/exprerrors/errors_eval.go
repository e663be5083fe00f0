package exprerrors

import (
	"errors"
	"fmt"
)

var (
	ErrUnboundVariable = errors.New("unbound variable")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidBinding  = errors.New("invalid binding")
)

// Node is the part of an expression node an EvalError needs to describe
// where evaluation stopped. Every expr.Expr satisfies it via fmt.Stringer.
type Node interface {
	fmt.Stringer
}

func NewEvalError(node Node, cause error) error {
	return &EvalError{node: node, cause: cause}
}

// EvalError aborts an evaluation pass. The cause is one of the sentinel
// errors above, possibly wrapped with details.
type EvalError struct {
	node  Node
	cause error
}

// Error implements error.
func (e *EvalError) Error() string {
	if e.node == nil {
		return fmt.Sprintf("eval error: %v", e.cause)
	}
	return fmt.Sprintf("eval error at %s: %v", e.node, e.cause)
}

func (e *EvalError) Unwrap() error {
	return e.cause
}

// Node returns the expression node that failed.
func (e *EvalError) Node() Node {
	return e.node
}

func ErrUnboundVariableName(name string) error {
	return fmt.Errorf("%w '%s'", ErrUnboundVariable, name)
}

var _ error = (*EvalError)(nil)
