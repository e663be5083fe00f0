package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"golang.org/x/exp/maps"

	"github.com/leonardinius/goarith/internal/eval"
	"github.com/leonardinius/goarith/internal/exprerrors"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultBindings are used when neither --env nor --var is given.
var DefaultBindings = map[string]int64{"x": 5, "y": 7, "z": 3}

type Config struct {
	EnvFile     string
	Vars        []string
	Color       string
	Interactive bool
}

// ParseFlags parses command line arguments. Usage and flag errors are
// written to output. pflag.ErrHelp is returned for -h/--help.
func ParseFlags(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("goarith", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.EnvFile, "env", "", "YAML file mapping variable names to integers")
	fs.StringArrayVar(&cfg.Vars, "var", nil, "variable binding name=value, overrides --env (repeatable)")
	fs.StringVar(&cfg.Color, "color", ColorAuto, "colorize output: auto, always or never")
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", false, "start an interactive session")
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: goarith [flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("invalid --color %q: want auto, always or never", cfg.Color)
	}

	return cfg, nil
}

// Environment builds the evaluation environment: the --env file first, then
// --var bindings on top. DefaultBindings apply when both are absent.
func (c *Config) Environment() (*eval.Environment, error) {
	if c.EnvFile == "" && len(c.Vars) == 0 {
		return eval.NewEnvironment(DefaultBindings), nil
	}

	bindings := map[string]int64{}
	if c.EnvFile != "" {
		loaded, err := LoadEnvironmentFile(c.EnvFile)
		if err != nil {
			return nil, err
		}
		maps.Copy(bindings, loaded)
	}

	for _, v := range c.Vars {
		name, value, err := ParseBinding(v)
		if err != nil {
			return nil, err
		}
		bindings[name] = value
	}

	return eval.NewEnvironment(bindings), nil
}

// UseColor reports whether output written to w should be colorized.
func (c *Config) UseColor(w io.Writer) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseBinding parses "name=value".
func ParseBinding(s string) (string, int64, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("%w %q: want name=value", exprerrors.ErrInvalidBinding, s)
	}
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return "", 0, err
	}

	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w %q: %w", exprerrors.ErrInvalidBinding, s, err)
	}

	return name, value, nil
}

// ValidateName accepts identifiers: a letter or underscore followed by
// letters, digits or underscores.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty variable name", exprerrors.ErrInvalidBinding)
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return fmt.Errorf("%w: invalid variable name %q", exprerrors.ErrInvalidBinding, name)
	}
	return nil
}
