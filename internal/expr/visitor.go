package expr

import "fmt"

// Visitor is the interface that wraps one Visit method per Expr kind.
//
// A node calls exactly the method matching its own kind. Each method returns
// the visitor's result type R, or an error that aborts the whole pass.
type Visitor[R any] interface {
	VisitVariable(e *Variable) (R, error)
	VisitConstant(e *Constant) (R, error)
	VisitAdd(e *Add) (R, error)
	VisitMultiply(e *Multiply) (R, error)
	VisitSubtract(e *Subtract) (R, error)
	VisitDivide(e *Divide) (R, error)
}

// Apply dispatches e to v and returns the typed result.
// On error the zero R is returned; there is no partial result.
func Apply[R any](e Expr, v Visitor[R]) (R, error) {
	var zero R

	out, err := e.Accept(erase(v))
	if err != nil {
		return zero, err
	}

	// nil is the zero value of an interface R.
	if out == nil {
		return zero, nil
	}
	r, ok := out.(R)
	if !ok {
		panic(fmt.Sprintf("expr: visitor result %T is not %T", out, zero))
	}
	return r, nil
}

func erase[R any](v Visitor[R]) Visitor[any] {
	if av, ok := any(v).(Visitor[any]); ok {
		return av
	}
	return erased[R]{v}
}

// erased adapts a Visitor[R] to the Visitor[any] that nodes accept.
type erased[R any] struct {
	v Visitor[R]
}

func (a erased[R]) VisitVariable(e *Variable) (any, error) {
	return toAny[R](a.v.VisitVariable(e))
}

func (a erased[R]) VisitConstant(e *Constant) (any, error) {
	return toAny[R](a.v.VisitConstant(e))
}

func (a erased[R]) VisitAdd(e *Add) (any, error) {
	return toAny[R](a.v.VisitAdd(e))
}

func (a erased[R]) VisitMultiply(e *Multiply) (any, error) {
	return toAny[R](a.v.VisitMultiply(e))
}

func (a erased[R]) VisitSubtract(e *Subtract) (any, error) {
	return toAny[R](a.v.VisitSubtract(e))
}

func (a erased[R]) VisitDivide(e *Divide) (any, error) {
	return toAny[R](a.v.VisitDivide(e))
}

func toAny[R any](r R, err error) (any, error) {
	return r, err
}

var _ Visitor[any] = erased[int64]{}
