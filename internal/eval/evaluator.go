package eval

import (
	"github.com/leonardinius/goarith/internal/expr"
	"github.com/leonardinius/goarith/internal/exprerrors"
)

// EvaluationVisitor computes the integer value of a tree under a fixed
// Environment. It holds no per-pass state, so a single instance may serve
// concurrent passes.
type EvaluationVisitor struct {
	env *Environment
}

func NewEvaluationVisitor(env *Environment) *EvaluationVisitor {
	return &EvaluationVisitor{env: env}
}

// Evaluate applies a fresh EvaluationVisitor bound to env to e.
func Evaluate(e expr.Expr, env *Environment) (int64, error) {
	return expr.Apply[int64](e, NewEvaluationVisitor(env))
}

func (v *EvaluationVisitor) Environment() *Environment {
	return v.env
}

// VisitVariable implements expr.Visitor.
func (v *EvaluationVisitor) VisitVariable(e *expr.Variable) (int64, error) {
	value, err := v.env.Get(e.Name())
	if err != nil {
		return 0, exprerrors.NewEvalError(e, err)
	}
	return value, nil
}

// VisitConstant implements expr.Visitor.
func (v *EvaluationVisitor) VisitConstant(e *expr.Constant) (int64, error) {
	return e.Value(), nil
}

// VisitAdd implements expr.Visitor.
func (v *EvaluationVisitor) VisitAdd(e *expr.Add) (int64, error) {
	left, right, err := v.operands(e)
	if err != nil {
		return 0, err
	}
	return left + right, nil
}

// VisitMultiply implements expr.Visitor.
func (v *EvaluationVisitor) VisitMultiply(e *expr.Multiply) (int64, error) {
	left, right, err := v.operands(e)
	if err != nil {
		return 0, err
	}
	return left * right, nil
}

// VisitSubtract implements expr.Visitor.
func (v *EvaluationVisitor) VisitSubtract(e *expr.Subtract) (int64, error) {
	left, right, err := v.operands(e)
	if err != nil {
		return 0, err
	}
	return left - right, nil
}

// VisitDivide implements expr.Visitor.
func (v *EvaluationVisitor) VisitDivide(e *expr.Divide) (int64, error) {
	left, right, err := v.operands(e)
	if err != nil {
		return 0, err
	}
	if right == 0 {
		return 0, exprerrors.NewEvalError(e, exprerrors.ErrDivisionByZero)
	}
	return FloorDiv(left, right), nil
}

// operands evaluates child1 strictly before child2.
func (v *EvaluationVisitor) operands(e expr.BinaryExpr) (int64, int64, error) {
	left, err := v.evaluate(e.Child1())
	if err != nil {
		return 0, 0, err
	}
	right, err := v.evaluate(e.Child2())
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

func (v *EvaluationVisitor) evaluate(e expr.Expr) (int64, error) {
	return expr.Apply[int64](e, v)
}

var _ expr.Visitor[int64] = (*EvaluationVisitor)(nil)
