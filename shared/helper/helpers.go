package helper

import (
	"fmt"
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// Must is the panic-on-failure variant of a (T, error) producing function.
// Use when failure should be fatal (e.g., when the key is guaranteed to be present).
func Must[T any](fn func() (T, error)) T {
	res, err := fn()
	if err != nil {
		panic(err)
	}
	return res
}

// OptionalOne flattens a variadic optional argument into a single value.
//
// Accepts either 0 or 1 values. Panics if more than one is passed,
// naming the argument in the panic message.
func OptionalOne[T any](opts []T, name string) (opt T, ok bool) {
	switch len(opts) {
	case 1:
		return opts[0], true
	case 0:
		return
	default:
		panic(fmt.Sprintf("only one or zero %s allowed, got %d", name, len(opts)))
	}
}
