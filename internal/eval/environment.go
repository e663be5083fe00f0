package eval

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/leonardinius/goarith/internal/exprerrors"
)

// Environment binds variable names to integer values.
//
// An Environment never changes after construction, so it can be shared by
// concurrent evaluation passes. With and Without return modified copies.
type Environment struct {
	values map[string]int64
}

// NewEnvironment copies bindings into a new Environment.
func NewEnvironment(bindings map[string]int64) *Environment {
	values := make(map[string]int64, len(bindings))
	maps.Copy(values, bindings)
	return &Environment{values: values}
}

// Get returns the value bound to name or an error wrapping
// exprerrors.ErrUnboundVariable.
func (e *Environment) Get(name string) (int64, error) {
	if e != nil {
		if value, ok := e.values[name]; ok {
			return value, nil
		}
	}

	return 0, exprerrors.ErrUnboundVariableName(name)
}

func (e *Environment) Has(name string) bool {
	if e == nil {
		return false
	}
	_, ok := e.values[name]
	return ok
}

// With returns a copy of e with name bound to value.
func (e *Environment) With(name string, value int64) *Environment {
	env := NewEnvironment(e.bindings())
	env.values[name] = value
	return env
}

// Without returns a copy of e without a binding for name.
func (e *Environment) Without(name string) *Environment {
	env := NewEnvironment(e.bindings())
	delete(env.values, name)
	return env
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := maps.Keys(e.bindings())
	slices.Sort(names)
	return names
}

func (e *Environment) Len() int {
	return len(e.bindings())
}

// Bindings returns a copy of the name to value mapping.
func (e *Environment) Bindings() map[string]int64 {
	return maps.Clone(e.bindings())
}

func (e *Environment) bindings() map[string]int64 {
	if e == nil {
		return nil
	}
	return e.values
}

func (e *Environment) String() string {
	w := new(strings.Builder)
	w.WriteString("{")
	for i, name := range e.Names() {
		if i > 0 {
			w.WriteString(", ")
		}
		fmt.Fprintf(w, "%s=%d", name, e.values[name])
	}
	w.WriteString("}")
	return w.String()
}

var _ fmt.Stringer = (*Environment)(nil)
