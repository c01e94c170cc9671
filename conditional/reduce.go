package conditional

import (
	"fmt"

	"github.com/on-the-ground/conditional_reduce/shared/helper"
)

// Producer is a zero-argument branch of a conditional table.
type Producer[T any] func() T

// DefaultCase is invoked with the original value when no branch matches.
type DefaultCase[T any] func(value string) T

// Source is a string-keyed store of producers.
type Source[T any] interface {
	Producer(value string) (Producer[T], bool)
}

// Conditionals is the plain map form of a conditional table.
type Conditionals[T any] map[string]Producer[T]

func (c Conditionals[T]) Producer(value string) (Producer[T], bool) {
	p, ok := c[value]
	return p, ok
}

var ErrInvalidConditionalValue = fmt.Errorf("invalid conditional value")

type outcome string

const (
	outcomeMatched   outcome = "matched"
	outcomeDefault   outcome = "default"
	outcomeUnmatched outcome = "unmatched"
)

// Reduce invokes the producer registered under value and returns its result.
//
// A missing entry and an entry holding a nil producer are treated alike:
// defaultCase is invoked with value if given, otherwise an error wrapping
// ErrInvalidConditionalValue is returned. At most one defaultCase may be passed.
func Reduce[T any](value string, conditionals Conditionals[T], defaultCase ...DefaultCase[T]) (T, error) {
	return ReduceFrom[T](value, conditionals, defaultCase...)
}

// ReduceFrom is Reduce over an arbitrary Source.
func ReduceFrom[T any](value string, source Source[T], defaultCase ...DefaultCase[T]) (T, error) {
	dc, _ := helper.OptionalOne(defaultCase, "default cases")
	res, _, err := reduce(value, source, dc)
	return res, err
}

// MustReduce is the panic-on-failure variant of Reduce.
func MustReduce[T any](value string, conditionals Conditionals[T], defaultCase ...DefaultCase[T]) T {
	return helper.Must(func() (T, error) {
		return Reduce(value, conditionals, defaultCase...)
	})
}

// ReduceAs reduces over a table of untyped producers and asserts the result to T.
// Useful for tables decoded from configuration where branches yield mixed types.
func ReduceAs[T any](value string, source Source[any], defaultCase ...DefaultCase[any]) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return ReduceFrom(value, source, defaultCase...)
	})
}

func reduce[T any](value string, source Source[T], defaultCase DefaultCase[T]) (res T, out outcome, err error) {
	if source != nil {
		if producer, ok := source.Producer(value); ok && producer != nil {
			return producer(), outcomeMatched, nil
		}
	}
	if defaultCase != nil {
		return defaultCase(value), outcomeDefault, nil
	}
	return res, outcomeUnmatched, fmt.Errorf("%w %q", ErrInvalidConditionalValue, value)
}
