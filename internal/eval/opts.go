package eval

import (
	"os"

	"github.com/leonardinius/goarith/internal/exprerrors"
)

type interpreterOpts struct {
	env      *Environment
	reporter exprerrors.ErrReporter
}

var defaultInterpreterOpts = interpreterOpts{
	reporter: exprerrors.NewErrReporter(os.Stderr),
}

type InterpreterOption func(*interpreterOpts)

func WithEnvironment(env *Environment) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.env = env
	}
}

// WithBindings is WithEnvironment(NewEnvironment(bindings)).
func WithBindings(bindings map[string]int64) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.env = NewEnvironment(bindings)
	}
}

func WithErrorReporter(r exprerrors.ErrReporter) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.reporter = r
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.env == nil {
		opts.env = NewEnvironment(nil)
	}
	if opts.reporter == nil {
		opts.reporter = exprerrors.NopReporter{}
	}

	return &opts
}
