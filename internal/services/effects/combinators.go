package effects

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// TimeoutError is the failure WithTimeout raises when the budget elapses
// before the wrapped effect settles
type TimeoutError struct {
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("operation timed out after %s", e.Budget)
}

// Parallel starts every effect concurrently and waits for all of them.
// Results preserve input index order regardless of completion order. On
// failure the combined effect fails with the first error observed and the
// shared context is cancelled so siblings can stop early.
func Parallel[T any](effs []Effect[T]) Effect[[]T] {
	return Effect[[]T]{kind: KindPure, run: func(ctx context.Context) ([]T, error) {
		g, gctx := errgroup.WithContext(ctx)
		out := make([]T, len(effs))
		for i, e := range effs {
			i, e := i, e
			g.Go(func() error {
				v, err := e.Run(gctx)
				if err != nil {
					return err
				}
				out[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	}}
}

// Sequence runs the effects strictly one after another. The first failure
// stops the chain; later effects never start. Result order matches input
// order.
func Sequence[T any](effs []Effect[T]) Effect[[]T] {
	return Effect[[]T]{kind: KindPure, run: func(ctx context.Context) ([]T, error) {
		out := make([]T, 0, len(effs))
		for _, e := range effs {
			v, err := e.Run(ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}}
}

// WithTimeout races e against budget. When the timer wins the effect fails
// with a *TimeoutError and the derived context is cancelled, so a
// context-aware computation stops instead of running on unobserved.
func WithTimeout[T any](e Effect[T], budget time.Duration) Effect[T] {
	return Effect[T]{kind: e.kind, run: func(ctx context.Context) (T, error) {
		var zero T
		tctx, cancel := context.WithTimeout(ctx, budget)
		defer cancel()

		type outcome struct {
			v   T
			err error
		}
		done := make(chan outcome, 1)
		go func() {
			v, err := e.Run(tctx)
			done <- outcome{v: v, err: err}
		}()

		select {
		case o := <-done:
			return o.v, o.err
		case <-tctx.Done():
			// the parent being done is not a timeout
			if ctx.Err() != nil {
				return zero, ctx.Err()
			}
			return zero, &TimeoutError{Budget: budget}
		}
	}}
}

// DefaultRetryDelay is the backoff base when WithRetry gets a non-positive
// delay
const DefaultRetryDelay = time.Second

// WithRetry re-invokes e up to maxAttempts times, waiting delay*attempt
// between failures (linear backoff). The last error surfaces once attempts
// are exhausted; waits respect context cancellation.
func WithRetry[T any](e Effect[T], maxAttempts int, delay time.Duration) Effect[T] {
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	return Effect[T]{kind: e.kind, run: func(ctx context.Context) (T, error) {
		var zero T
		var last error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			v, err := e.Run(ctx)
			if err == nil {
				return v, nil
			}
			last = err
			if attempt < maxAttempts {
				if err := sleep(ctx, delay*time.Duration(attempt)); err != nil {
					return zero, err
				}
			}
		}
		return zero, last
	}}
}

// Catch recovers a failed e by computing a fallback from the error
func Catch[T any](e Effect[T], recover func(error) T) Effect[T] {
	return Effect[T]{kind: e.kind, run: func(ctx context.Context) (T, error) {
		v, err := e.Run(ctx)
		if err != nil {
			return recover(err), nil
		}
		return v, nil
	}}
}

// Tap runs e, then runs the effect fn builds from the result purely for its
// side effect, returning the original result. The side effect is skipped
// when e fails; a failing side effect does surface.
func Tap[T, U any](e Effect[T], fn func(T) Effect[U]) Effect[T] {
	return Effect[T]{kind: e.kind, run: func(ctx context.Context) (T, error) {
		v, err := e.Run(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if _, err := fn(v).Run(ctx); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}}
}

// ZipRight runs first then second, keeping second's result
func ZipRight[A, B any](first Effect[A], second Effect[B]) Effect[B] {
	return FlatMap(first, func(A) Effect[B] { return second })
}

// ZipLeft runs first then second, keeping first's result
func ZipLeft[A, B any](first Effect[A], second Effect[B]) Effect[A] {
	return FlatMap(first, func(a A) Effect[A] {
		return Map(second, func(B) A { return a })
	})
}

// sleep waits for d or for the context, whichever ends first
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
