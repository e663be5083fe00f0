package expr

import (
	"strconv"
)

const (
	precSum = iota + 1
	precProduct
	precAtom
)

// InfixPrinter renders a tree in conventional infix notation using as few
// parentheses as the evaluation order allows, e.g. "(1 + 2) * (x + 3) - 7".
type InfixPrinter struct{}

func NewInfixPrinter() *InfixPrinter {
	return &InfixPrinter{}
}

// Infix is a shortcut for NewInfixPrinter().Print(e).
func Infix(e Expr) string {
	return NewInfixPrinter().Print(e)
}

// VisitVariable implements Visitor.
func (p *InfixPrinter) VisitVariable(e *Variable) (string, error) {
	return e.Name(), nil
}

// VisitConstant implements Visitor.
func (p *InfixPrinter) VisitConstant(e *Constant) (string, error) {
	return strconv.FormatInt(e.Value(), 10), nil
}

// VisitAdd implements Visitor.
func (p *InfixPrinter) VisitAdd(e *Add) (string, error) {
	return p.operation(e, "+", precSum), nil
}

// VisitMultiply implements Visitor.
func (p *InfixPrinter) VisitMultiply(e *Multiply) (string, error) {
	return p.operation(e, "*", precProduct), nil
}

// VisitSubtract implements Visitor.
func (p *InfixPrinter) VisitSubtract(e *Subtract) (string, error) {
	return p.operation(e, "-", precSum), nil
}

// VisitDivide implements Visitor.
func (p *InfixPrinter) VisitDivide(e *Divide) (string, error) {
	return p.operation(e, "/", precProduct), nil
}

func (p *InfixPrinter) Print(e Expr) string {
	s, _ := Apply[string](e, p)
	return s
}

// The left operand keeps its parentheses only when it binds looser than the
// operator. The right operand also keeps them on equal precedence, except
// for a+(b+c) and a*(b*c) which regroup without changing the result.
func (p *InfixPrinter) operation(e BinaryExpr, op string, prec int) string {
	left, right := e.Child1(), e.Child2()

	l := p.Print(left)
	if precedence(left) < prec {
		l = "(" + l + ")"
	}

	r := p.Print(right)
	if rp := precedence(right); rp < prec || (rp == prec && !sameAssociative(e, right)) {
		r = "(" + r + ")"
	}

	return l + " " + op + " " + r
}

func sameAssociative(parent, child Expr) bool {
	switch parent.(type) {
	case *Add:
		_, ok := child.(*Add)
		return ok
	case *Multiply:
		_, ok := child.(*Multiply)
		return ok
	}
	return false
}

func precedence(e Expr) int {
	prec, _ := Apply[int](e, precedenceVisitor{})
	return prec
}

type precedenceVisitor struct{}

func (precedenceVisitor) VisitVariable(*Variable) (int, error) { return precAtom, nil }
func (precedenceVisitor) VisitConstant(*Constant) (int, error) { return precAtom, nil }
func (precedenceVisitor) VisitAdd(*Add) (int, error)           { return precSum, nil }
func (precedenceVisitor) VisitMultiply(*Multiply) (int, error) { return precProduct, nil }
func (precedenceVisitor) VisitSubtract(*Subtract) (int, error) { return precSum, nil }
func (precedenceVisitor) VisitDivide(*Divide) (int, error)     { return precProduct, nil }

var (
	_ Visitor[string] = (*InfixPrinter)(nil)
	_ Visitor[int]    = precedenceVisitor{}
)
