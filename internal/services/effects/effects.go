// Package effects models deferred, possibly failing computations as values
// that can be composed before being run. A constructed Effect performs no
// work; each Run invocation executes the underlying computation anew, which
// is what lets retry simply re-invoke. Cross-cutting behavior (timeout,
// retry, recovery, structured logging with correlation IDs) layers on via
// combinators without the computation knowing about any of it.
package effects

import "context"

// Kind classifies an effect's side-effect category. It exists for the
// logging layer to label entries; all kinds share the same runtime
// semantics.
type Kind string

// Effect kinds
const (
	KindPure Kind = "pure"
	KindIO   Kind = "io"
	KindLog  Kind = "log"
	KindTime Kind = "time"
)

// Effect is a deferred computation producing a T or an error.
// The zero value is not runnable; build one with a constructor.
type Effect[T any] struct {
	kind Kind
	run  func(ctx context.Context) (T, error)
}

// New builds a pure-kind effect from fn
func New[T any](fn func(ctx context.Context) (T, error)) Effect[T] {
	return Effect[T]{kind: KindPure, run: fn}
}

// IO builds an io-kind effect, for computations that touch the outside world
func IO[T any](fn func(ctx context.Context) (T, error)) Effect[T] {
	return Effect[T]{kind: KindIO, run: fn}
}

// Log builds a log-kind effect, for computations whose work is emitting logs
func Log[T any](fn func(ctx context.Context) (T, error)) Effect[T] {
	return Effect[T]{kind: KindLog, run: fn}
}

// Timed builds a time-kind effect, for timer or clock driven computations
func Timed[T any](fn func(ctx context.Context) (T, error)) Effect[T] {
	return Effect[T]{kind: KindTime, run: fn}
}

// Succeed is the constant effect that yields v
func Succeed[T any](v T) Effect[T] {
	return Effect[T]{kind: KindPure, run: func(context.Context) (T, error) {
		return v, nil
	}}
}

// Fail is the constant effect that fails with err
func Fail[T any](err error) Effect[T] {
	return Effect[T]{kind: KindPure, run: func(context.Context) (T, error) {
		var zero T
		return zero, err
	}}
}

// Kind reports the effect's side-effect category
func (e Effect[T]) Kind() Kind { return e.kind }

// Run executes the computation. A context already done fails fast without
// invoking the body.
func (e Effect[T]) Run(ctx context.Context) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return e.run(ctx)
}

// Map runs e and applies fn to its result; failure propagates untouched
func Map[T, U any](e Effect[T], fn func(T) U) Effect[U] {
	return Effect[U]{kind: e.kind, run: func(ctx context.Context) (U, error) {
		v, err := e.Run(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	}}
}

// FlatMap runs e and feeds its result into fn, running the effect fn
// returns. This is the core sequencing primitive; failure at either stage
// propagates.
func FlatMap[T, U any](e Effect[T], fn func(T) Effect[U]) Effect[U] {
	return Effect[U]{kind: e.kind, run: func(ctx context.Context) (U, error) {
		v, err := e.Run(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v).Run(ctx)
	}}
}
