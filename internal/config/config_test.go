package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/goarith/internal/config"
	"github.com/leonardinius/goarith/internal/exprerrors"
)

func TestParseFlags(t *testing.T) {
	out := strings.Builder{}
	cfg, err := config.ParseFlags([]string{"--env", "vars.yaml", "--var", "x=1", "--var=y=2", "-i", "--color", "never"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "vars.yaml", cfg.EnvFile)
	assert.Equal(t, []string{"x=1", "y=2"}, cfg.Vars)
	assert.True(t, cfg.Interactive)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Empty(t, out.String())
}

func TestParseFlagsErrors(t *testing.T) {
	testcases := []struct {
		name string
		args []string
		err  string
	}{
		{name: `unknown flag`, args: []string{"--nope"}, err: `unknown flag: --nope`},
		{name: `positional`, args: []string{"x=1"}, err: `unexpected arguments: x=1`},
		{name: `bad color`, args: []string{"--color", "pink"}, err: `invalid --color "pink"`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.ParseFlags(tc.args, &strings.Builder{})
			assert.ErrorContains(t, err, tc.err)
		})
	}

	out := strings.Builder{}
	_, err := config.ParseFlags([]string{"-h"}, &out)
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, out.String(), "Usage: goarith")
}

func TestParseBinding(t *testing.T) {
	testcases := []struct {
		in    string
		name  string
		value int64
		err   string
	}{
		{in: `x=5`, name: `x`, value: 5},
		{in: ` long_name = -12 `, name: `long_name`, value: -12},
		{in: `_1=0`, name: `_1`, value: 0},
		{in: `x`, err: `invalid binding "x": want name=value`},
		{in: `=5`, err: `invalid binding: empty variable name`},
		{in: `1x=5`, err: `invalid binding: invalid variable name "1x"`},
		{in: `x=five`, err: `invalid binding "x=five"`},
		{in: `x=1.5`, err: `invalid binding "x=1.5"`},
	}

	for _, tc := range testcases {
		t.Run(tc.in, func(t *testing.T) {
			name, value, err := config.ParseBinding(tc.in)
			if tc.err != "" {
				assert.ErrorIs(t, err, exprerrors.ErrInvalidBinding)
				assert.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.name, name)
			assert.Equal(t, tc.value, value)
		})
	}
}

func TestEnvironment(t *testing.T) {
	env, err := (&config.Config{}).Environment()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBindings, env.Bindings())

	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x: 10\ny: -2\n"), 0o600))

	env, err = (&config.Config{EnvFile: path, Vars: []string{"y=3", "w=4"}}).Environment()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"x": 10, "y": 3, "w": 4}, env.Bindings())

	_, err = (&config.Config{Vars: []string{"nope"}}).Environment()
	assert.ErrorIs(t, err, exprerrors.ErrInvalidBinding)

	_, err = (&config.Config{EnvFile: filepath.Join(t.TempDir(), "missing.yaml")}).Environment()
	assert.ErrorContains(t, err, "error opening env file")
}

func TestUseColor(t *testing.T) {
	assert.True(t, (&config.Config{Color: config.ColorAlways}).UseColor(&strings.Builder{}))
	assert.False(t, (&config.Config{Color: config.ColorNever}).UseColor(os.Stdout))
	assert.False(t, (&config.Config{Color: config.ColorAuto}).UseColor(&strings.Builder{}))
}
