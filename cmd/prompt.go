package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/goarith/internal/config"
	"github.com/leonardinius/goarith/internal/demo"
	"github.com/leonardinius/goarith/internal/expr"
)

const promptHelp = `Commands:
  let NAME VALUE   bind NAME to the integer VALUE
  unset NAME       remove the binding for NAME
  env              show the current bindings
  list             list the demonstration examples
  run N            evaluate example N
  demo             evaluate every example
  help             show this help
  quit             leave`

var errQuit = errors.New("quit")

func (app *ArithApp) runPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
		Stdin:  app.stdin,
		Stdout: app.stdout,
		Stderr: app.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}

		err = app.command(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			app.reporter.ReportError(err)
		}
	}
}

func (app *ArithApp) command(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "let":
		if len(args) != 2 {
			return fmt.Errorf("usage: let NAME VALUE")
		}
		name, value, err := config.ParseBinding(args[0] + "=" + args[1])
		if err != nil {
			return err
		}
		app.env = app.env.With(name, value)
	case "unset":
		if len(args) != 1 {
			return fmt.Errorf("usage: unset NAME")
		}
		app.env = app.env.Without(args[0])
	case "env":
		fmt.Fprintln(app.stdout, app.env)
	case "list":
		for i, e := range examples() {
			fmt.Fprintf(app.stdout, "%2d  %s\n", i+1, expr.Infix(e))
		}
	case "run":
		return app.runExample(args)
	case "demo":
		app.runDemo()
	case "help":
		fmt.Fprintln(app.stdout, promptHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}

	return nil
}

func (app *ArithApp) runExample(args []string) error {
	all := examples()
	if len(args) != 1 {
		return fmt.Errorf("usage: run N")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(all) {
		return fmt.Errorf("no example %q, want 1..%d", args[0], len(all))
	}

	e := all[n-1]
	out, err := app.interpreter().Interpret(e)
	if err != nil {
		// already reported by the interpreter
		return nil
	}
	fmt.Fprintf(app.stdout, "%s = %s\n", expr.Infix(e), out)
	return nil
}

func examples() []expr.Expr {
	var all []expr.Expr
	for _, section := range demo.Catalog() {
		for _, ex := range section.Examples {
			all = append(all, ex.Expr)
		}
	}
	return all
}
