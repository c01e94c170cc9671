package conditional

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromValues turns a value table into a conditional table whose producers return constants.
func FromValues[T any](values map[string]T) Conditionals[T] {
	c := make(Conditionals[T], len(values))
	for k, v := range values {
		c[k] = constant(v)
	}
	return c
}

// DecodeValuesYAML decodes a YAML mapping of string keys to T into a conditional table.
func DecodeValuesYAML[T any](data []byte) (Conditionals[T], error) {
	var values map[string]T
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse yaml conditional values: %w", err)
	}
	return FromValues(values), nil
}

func constant[T any](v T) Producer[T] {
	return func() T { return v }
}
