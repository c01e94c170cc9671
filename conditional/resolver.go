package conditional

import (
	"github.com/google/uuid"
	"github.com/on-the-ground/conditional_reduce/shared/helper"
	"go.uber.org/zap"
)

// Resolver is a conditional table with its fallback bound ahead of time.
//
// The source is held by reference: entries added to a Conditionals map after
// Curry are visible to later calls. A Resolver is safe for concurrent use
// as long as its source is.
type Resolver[T any] struct {
	id          uuid.UUID
	source      Source[T]
	defaultCase DefaultCase[T]
	logger      *zap.Logger
}

// Curry binds conditionals and an optional defaultCase into a Resolver.
//
// Usage:
//
//	r := Curry(conditionals, defaultCase)
//	v, err := r.Reduce("key")
func Curry[T any](conditionals Conditionals[T], defaultCase ...DefaultCase[T]) *Resolver[T] {
	return CurryFrom[T](conditionals, defaultCase...)
}

// CurryFrom is Curry over an arbitrary Source.
func CurryFrom[T any](source Source[T], defaultCase ...DefaultCase[T]) *Resolver[T] {
	dc, _ := helper.OptionalOne(defaultCase, "default cases")
	return &Resolver[T]{
		id:          uuid.New(),
		source:      source,
		defaultCase: dc,
		logger:      zap.NewNop(),
	}
}

// WithLogger returns a copy of the resolver that reports every reduction at debug level.
// A nil logger disables logging.
func (r *Resolver[T]) WithLogger(logger *zap.Logger) *Resolver[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	cp := *r
	cp.logger = logger
	return &cp
}

func (r *Resolver[T]) ID() uuid.UUID {
	return r.id
}

// Reduce follows the same contract as the package-level Reduce, using the bound state.
func (r *Resolver[T]) Reduce(value string) (T, error) {
	res, out, err := reduce(value, r.source, r.defaultCase)
	if ce := r.logger.Check(zap.DebugLevel, "conditional reduced"); ce != nil {
		ce.Write(
			zap.Stringer("resolver_id", r.id),
			zap.String("value", value),
			zap.String("outcome", string(out)),
		)
	}
	return res, err
}

// MustReduce is the panic-on-failure variant of Reduce.
func (r *Resolver[T]) MustReduce(value string) T {
	return helper.Must(func() (T, error) {
		return r.Reduce(value)
	})
}

// Func exposes the resolver as a plain unary function.
func (r *Resolver[T]) Func() func(string) (T, error) {
	return r.Reduce
}
