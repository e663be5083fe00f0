package expr

import (
	"strconv"
	"strings"
)

// RPNPrinter renders a tree in reverse Polish notation, e.g. "1 x +".
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitVariable implements Visitor.
func (p *RPNPrinter) VisitVariable(e *Variable) (string, error) {
	return e.Name(), nil
}

// VisitConstant implements Visitor.
func (p *RPNPrinter) VisitConstant(e *Constant) (string, error) {
	return strconv.FormatInt(e.Value(), 10), nil
}

// VisitAdd implements Visitor.
func (p *RPNPrinter) VisitAdd(e *Add) (string, error) {
	return p.reverse("+", e.Child1(), e.Child2()), nil
}

// VisitMultiply implements Visitor.
func (p *RPNPrinter) VisitMultiply(e *Multiply) (string, error) {
	return p.reverse("*", e.Child1(), e.Child2()), nil
}

// VisitSubtract implements Visitor.
func (p *RPNPrinter) VisitSubtract(e *Subtract) (string, error) {
	return p.reverse("-", e.Child1(), e.Child2()), nil
}

// VisitDivide implements Visitor.
func (p *RPNPrinter) VisitDivide(e *Divide) (string, error) {
	return p.reverse("/", e.Child1(), e.Child2()), nil
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, e := range exprs {
		_, _ = out.WriteString(p.Print(e))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	return out.String()
}

func (p *RPNPrinter) Print(e Expr) string {
	s, _ := Apply[string](e, p)
	return s
}

var _ Visitor[string] = (*RPNPrinter)(nil)
