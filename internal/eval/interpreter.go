package eval

import (
	"strconv"

	"github.com/leonardinius/goarith/internal/expr"
	"github.com/leonardinius/goarith/internal/exprerrors"
)

type Interpreter interface {
	// Evaluate evaluates the given expression.
	// Returns the value of the expression or the error that aborted the pass.
	//
	// Safe for concurrent use.
	Evaluate(e expr.Expr) (int64, error)

	// Interpret evaluates the given expression and stringifies the result.
	// Failures are also sent to the configured error reporter.
	Interpret(e expr.Expr) (string, error)

	// Environment returns the bindings the interpreter evaluates against.
	Environment() *Environment
}

type interpreter struct {
	visitor  *EvaluationVisitor
	reporter exprerrors.ErrReporter
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	opts := newInterpreterOpts(options...)
	return &interpreter{
		visitor:  NewEvaluationVisitor(opts.env),
		reporter: opts.reporter,
	}
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(e expr.Expr) (int64, error) {
	return expr.Apply[int64](e, i.visitor)
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(e expr.Expr) (string, error) {
	value, err := i.Evaluate(e)
	if err != nil {
		i.reporter.ReportError(err)
		return "", err
	}
	return i.stringify(value), nil
}

// Environment implements Interpreter.
func (i *interpreter) Environment() *Environment {
	return i.visitor.Environment()
}

func (i *interpreter) stringify(v int64) string {
	return strconv.FormatInt(v, 10)
}

var _ Interpreter = (*interpreter)(nil)
