package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/goarith/internal/eval"
	"github.com/leonardinius/goarith/internal/exprerrors"
)

func TestEnvironmentGet(t *testing.T) {
	env := xyz()

	value, err := env.Get("y")
	require.NoError(t, err)
	assert.Equal(t, int64(7), value)

	_, err = env.Get("w")
	assert.ErrorIs(t, err, exprerrors.ErrUnboundVariable)
	assert.EqualError(t, err, "unbound variable 'w'")

	var empty *eval.Environment
	_, err = empty.Get("x")
	assert.ErrorIs(t, err, exprerrors.ErrUnboundVariable)
	assert.Zero(t, empty.Len())
}

func TestEnvironmentCopiesInput(t *testing.T) {
	bindings := map[string]int64{"x": 1}
	env := eval.NewEnvironment(bindings)
	bindings["x"] = 2
	bindings["y"] = 3

	value, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), value)
	assert.False(t, env.Has("y"))

	out := env.Bindings()
	out["x"] = 100
	assert.Equal(t, map[string]int64{"x": 1}, env.Bindings())
}

func TestEnvironmentWithWithout(t *testing.T) {
	env := xyz()

	more := env.With("w", -1)
	assert.True(t, more.Has("w"))
	assert.False(t, env.Has("w"))
	assert.Equal(t, 4, more.Len())

	less := env.Without("x")
	assert.False(t, less.Has("x"))
	assert.True(t, env.Has("x"))
	assert.Equal(t, []string{"y", "z"}, less.Names())

	var empty *eval.Environment
	assert.Equal(t, []string{"a"}, empty.With("a", 1).Names())
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "{x=5, y=7, z=3}", xyz().String())
	assert.Equal(t, "{}", eval.NewEnvironment(nil).String())
	assert.Equal(t, []string{"x", "y", "z"}, xyz().Names())
}
