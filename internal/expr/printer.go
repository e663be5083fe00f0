package expr

import (
	"strconv"
	"strings"
)

// AstPrinter renders a tree as a prefix S-expression, e.g. "(+ 1 x)".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitVariable implements Visitor.
func (p *AstPrinter) VisitVariable(e *Variable) (string, error) {
	return e.Name(), nil
}

// VisitConstant implements Visitor.
func (p *AstPrinter) VisitConstant(e *Constant) (string, error) {
	return strconv.FormatInt(e.Value(), 10), nil
}

// VisitAdd implements Visitor.
func (p *AstPrinter) VisitAdd(e *Add) (string, error) {
	return p.parenthesize("+", e.Child1(), e.Child2()), nil
}

// VisitMultiply implements Visitor.
func (p *AstPrinter) VisitMultiply(e *Multiply) (string, error) {
	return p.parenthesize("*", e.Child1(), e.Child2()), nil
}

// VisitSubtract implements Visitor.
func (p *AstPrinter) VisitSubtract(e *Subtract) (string, error) {
	return p.parenthesize("-", e.Child1(), e.Child2()), nil
}

// VisitDivide implements Visitor.
func (p *AstPrinter) VisitDivide(e *Divide) (string, error) {
	return p.parenthesize("/", e.Child1(), e.Child2()), nil
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, e := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.Print(e))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) Print(e Expr) string {
	s, _ := Apply[string](e, p)
	return s
}

var _ Visitor[string] = (*AstPrinter)(nil)
