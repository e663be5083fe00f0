package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/leonardinius/goarith/internal/config"
	"github.com/leonardinius/goarith/internal/demo"
	"github.com/leonardinius/goarith/internal/eval"
	"github.com/leonardinius/goarith/internal/exprerrors"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 64
)

type ArithApp struct {
	stdin    io.ReadCloser
	stdout   io.Writer
	stderr   io.Writer
	reporter exprerrors.ErrReporter
	cfg      *config.Config
	env      *eval.Environment
}

type AppOption func(*ArithApp)

func WithStdin(stdin io.ReadCloser) AppOption {
	return func(app *ArithApp) {
		app.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(app *ArithApp) {
		app.stdout = stdout
	}
}

// WithStderr also redirects the error reporter.
func WithStderr(stderr io.Writer) AppOption {
	return func(app *ArithApp) {
		app.stderr = stderr
		app.reporter = exprerrors.NewErrReporter(stderr)
	}
}

func NewArithApp(options ...AppOption) *ArithApp {
	app := &ArithApp{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		reporter: exprerrors.NewErrReporter(os.Stderr),
	}
	for _, opt := range options {
		opt(app)
	}
	return app
}

func (app *ArithApp) Main(args []string) int {
	cfg, err := config.ParseFlags(args, app.stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		app.reporter.ReportError(err)
		return exitUsage
	}
	app.cfg = cfg

	env, err := cfg.Environment()
	if err != nil {
		app.reporter.ReportError(err)
		return exitUsage
	}
	app.env = env

	if cfg.Interactive {
		if err := app.runPrompt(); err != nil {
			app.reporter.ReportPanic(err)
			return exitFailure
		}
		return exitOK
	}

	if report := app.runDemo(); !report.OK() {
		return exitFailure
	}
	return exitOK
}

func (app *ArithApp) interpreter() eval.Interpreter {
	return eval.NewInterpreter(
		eval.WithEnvironment(app.env),
		eval.WithErrorReporter(app.reporter),
	)
}

func (app *ArithApp) runDemo() demo.Report {
	report := demo.Run(app.stdout, app.interpreter(), demo.Catalog(), demo.WithColor(app.cfg.UseColor(app.stdout)))
	fmt.Fprintln(app.stdout, report)
	return report
}
