package demo

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/leonardinius/goarith/internal/eval"
	"github.com/leonardinius/goarith/internal/expr"
)

// Report counts the outcome of a Run.
//
// An example is checked only when every variable it uses is bound to its
// Assumed value; otherwise it is counted as Unchecked.
type Report struct {
	Passed    int
	Failed    int
	Errors    int
	Unchecked int
}

func (r Report) Total() int {
	return r.Passed + r.Failed + r.Errors + r.Unchecked
}

func (r Report) OK() bool {
	return r.Failed == 0 && r.Errors == 0
}

func (r Report) String() string {
	return fmt.Sprintf("%d passed, %d failed, %d errors, %d unchecked", r.Passed, r.Failed, r.Errors, r.Unchecked)
}

type runnerOpts struct {
	color bool
}

type RunOption func(*runnerOpts)

func WithColor(enabled bool) RunOption {
	return func(opts *runnerOpts) {
		opts.color = enabled
	}
}

type palette struct {
	title func(a ...interface{}) string
	pass  func(a ...interface{}) string
	fail  func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		title: mk(color.Bold),
		pass:  mk(color.FgGreen),
		fail:  mk(color.FgRed, color.Bold),
	}
}

// Run evaluates every example with interp, writing one "<infix> = <value>"
// line per example to w.
func Run(w io.Writer, interp eval.Interpreter, sections []Section, options ...RunOption) Report {
	opts := runnerOpts{}
	for _, opt := range options {
		opt(&opts)
	}
	p := newPalette(opts.color)
	env := interp.Environment()

	var report Report

	fmt.Fprintf(w, "Assuming: %s.\n\n", assumption(env, sections))
	for _, section := range sections {
		fmt.Fprintln(w, p.title(section.Title+":"))
		for _, ex := range section.Examples {
			label := expr.Infix(ex.Expr)
			value, err := interp.Evaluate(ex.Expr)
			switch {
			case err != nil:
				report.Errors++
				fmt.Fprintf(w, "%s = %s\n", label, p.fail(err))
			case !checkable(env, ex.Expr):
				report.Unchecked++
				fmt.Fprintf(w, "%s = %d\n", label, value)
			case value == ex.Expected:
				report.Passed++
				fmt.Fprintf(w, "%s = %d %s\n", label, value, p.pass("ok"))
			default:
				report.Failed++
				fmt.Fprintf(w, "%s = %d %s\n", label, value, p.fail(fmt.Sprintf("FAIL want %d", ex.Expected)))
			}
		}
		fmt.Fprintln(w)
	}

	return report
}

func checkable(env *eval.Environment, e expr.Expr) bool {
	for _, name := range expr.Variables(e) {
		want, ok := Assumed[name]
		if !ok {
			return false
		}
		value, err := env.Get(name)
		if err != nil || value != want {
			return false
		}
	}
	return true
}

// assumption renders the bindings of every variable the sections use,
// e.g. "x = 5, y = 7 and z = 3".
func assumption(env *eval.Environment, sections []Section) string {
	var names []string
	for _, section := range sections {
		for _, ex := range section.Examples {
			for _, name := range expr.Variables(ex.Expr) {
				if !slices.Contains(names, name) {
					names = append(names, name)
				}
			}
		}
	}
	slices.Sort(names)

	if len(names) == 0 {
		return "no variables"
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		if value, err := env.Get(name); err == nil {
			parts = append(parts, fmt.Sprintf("%s = %d", name, value))
		} else {
			parts = append(parts, name+" unbound")
		}
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
