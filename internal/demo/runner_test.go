package demo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonardinius/goarith/internal/demo"
	"github.com/leonardinius/goarith/internal/eval"
	"github.com/leonardinius/goarith/internal/expr"
	"github.com/leonardinius/goarith/internal/exprerrors"
)

const expectedDemo = `Assuming: x = 5, y = 7 and z = 3.

Constants:
1 = 1 ok
5 = 5 ok

Variables:
x = 5 ok
y = 7 ok
z = 3 ok

Simple examples:
1 + 2 = 3 ok
x * 5 = 25 ok
7 / z = 2 ok
y - z = 4 ok

More complex examples:
(1 + 2) * (x + 3) - 7 = 17 ok
(z + 7) * (y + 3) / (5 * x - 4) = 4 ok

`

func run(bindings map[string]int64) (string, demo.Report) {
	out := strings.Builder{}
	interp := eval.NewInterpreter(
		eval.WithBindings(bindings),
		eval.WithErrorReporter(exprerrors.NopReporter{}),
	)
	report := demo.Run(&out, interp, demo.Catalog(), demo.WithColor(false))
	return out.String(), report
}

func TestRunAssumedBindings(t *testing.T) {
	out, report := run(demo.Assumed)
	assert.Equal(t, expectedDemo, out)
	assert.True(t, report.OK())
	assert.Equal(t, demo.Report{Passed: 11}, report)
	assert.Equal(t, 11, report.Total())
	assert.Equal(t, "11 passed, 0 failed, 0 errors, 0 unchecked", report.String())
}

func TestRunOtherBindings(t *testing.T) {
	out, report := run(map[string]int64{"x": 5, "y": 7, "z": 0})

	assert.Contains(t, out, "Assuming: x = 5, y = 7 and z = 0.\n")
	assert.Contains(t, out, "z = 0\n")
	assert.Contains(t, out, "7 / z = eval error at 7 / z: division by zero\n")
	assert.Contains(t, out, "x * 5 = 25 ok\n")
	assert.False(t, report.OK())
	assert.Equal(t, demo.Report{Passed: 7, Errors: 1, Unchecked: 3}, report)
}

func TestRunUnboundVariables(t *testing.T) {
	out, report := run(map[string]int64{"x": 5})

	assert.Contains(t, out, "Assuming: x = 5, y unbound and z unbound.\n")
	assert.Contains(t, out, "y - z = eval error at y: unbound variable 'y'\n")
	assert.Equal(t, demo.Report{Passed: 6, Errors: 5}, report)
}

func TestRunDetectsWrongExpectation(t *testing.T) {
	out := strings.Builder{}
	sections := []demo.Section{{
		Title:    "Broken",
		Examples: []demo.Example{{Expr: demo.Catalog()[0].Examples[0].Expr, Expected: 2}},
	}}

	report := demo.Run(&out, eval.NewInterpreter(), sections)
	assert.Equal(t, "Assuming: no variables.\n\nBroken:\n1 = 1 FAIL want 2\n\n", out.String())
	assert.Equal(t, demo.Report{Failed: 1}, report)
}

func TestRunColor(t *testing.T) {
	out := strings.Builder{}
	demo.Run(&out, eval.NewInterpreter(eval.WithBindings(demo.Assumed)), demo.Catalog(), demo.WithColor(true))
	assert.Contains(t, out.String(), "\x1b[32mok\x1b[0m")
}

func TestRunVariableOutsideAssumedIsUnchecked(t *testing.T) {
	out := strings.Builder{}
	sections := []demo.Section{{
		Title:    "Extra",
		Examples: []demo.Example{{Expr: expr.NewVariable("w"), Expected: 0}},
	}}

	interp := eval.NewInterpreter(eval.WithBindings(map[string]int64{"w": 0}))
	report := demo.Run(&out, interp, sections)
	assert.Equal(t, demo.Report{Unchecked: 1}, report)
	assert.Contains(t, out.String(), "w = 0\n")
}
