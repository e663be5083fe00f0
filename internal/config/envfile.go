package config

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/leonardinius/goarith/internal/exprerrors"
)

// LoadEnvironmentFile reads a YAML mapping of variable names to integers:
//
//	x: 5
//	y: 7
func LoadEnvironmentFile(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening env file: %w", err)
	}
	defer f.Close()

	bindings, err := DecodeEnvironment(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bindings, nil
}

// DecodeEnvironment accepts only integer values. Floats, quoted numbers and
// other scalars are rejected rather than converted.
func DecodeEnvironment(r io.Reader) (map[string]int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding env: %w", err)
	}
	bindings := map[string]int64{}
	if doc == nil {
		return bindings, nil
	}
	switch doc.(type) {
	case map[string]any, map[any]any:
	default:
		return nil, fmt.Errorf("error decoding env: want a mapping of names to integers, got %T", doc)
	}

	var items yaml.MapSlice
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("error decoding env: %w", err)
	}
	for _, item := range items {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: invalid variable name %v", exprerrors.ErrInvalidBinding, item.Key)
		}
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		value, err := integerValue(name, item.Value)
		if err != nil {
			return nil, err
		}
		bindings[name] = value
	}

	return bindings, nil
}

func integerValue(name string, v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), nil
		}
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), nil
		}
	}
	return 0, fmt.Errorf("%w %s: %v (%T) is not an int64", exprerrors.ErrInvalidBinding, name, v, v)
}
