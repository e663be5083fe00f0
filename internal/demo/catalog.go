package demo

import (
	"github.com/leonardinius/goarith/internal/expr"
)

// Example is an expression with the value it has under Section.Assumed.
type Example struct {
	Expr     expr.Expr
	Expected int64
}

type Section struct {
	Title    string
	Examples []Example
}

// Assumed holds the bindings the catalog's expected values were computed with.
var Assumed = map[string]int64{"x": 5, "y": 7, "z": 3}

// Catalog returns the labeled demonstration examples.
func Catalog() []Section {
	var (
		c   = expr.NewConstant
		v   = expr.NewVariable
		add = func(a, b expr.Expr) expr.Expr { return expr.NewAdd(a, b) }
		mul = func(a, b expr.Expr) expr.Expr { return expr.NewMultiply(a, b) }
		sub = func(a, b expr.Expr) expr.Expr { return expr.NewSubtract(a, b) }
		div = func(a, b expr.Expr) expr.Expr { return expr.NewDivide(a, b) }
	)

	return []Section{
		{
			Title: "Constants",
			Examples: []Example{
				{c(1), 1},
				{c(5), 5},
			},
		},
		{
			Title: "Variables",
			Examples: []Example{
				{v("x"), 5},
				{v("y"), 7},
				{v("z"), 3},
			},
		},
		{
			Title: "Simple examples",
			Examples: []Example{
				{add(c(1), c(2)), 3},
				{mul(v("x"), c(5)), 25},
				{div(c(7), v("z")), 2},
				{sub(v("y"), v("z")), 4},
			},
		},
		{
			Title: "More complex examples",
			Examples: []Example{
				{sub(mul(add(c(1), c(2)), add(v("x"), c(3))), c(7)), 17},
				{div(
					mul(add(v("z"), c(7)), add(v("y"), c(3))),
					sub(mul(c(5), v("x")), c(4)),
				), 4},
			},
		},
	}
}
