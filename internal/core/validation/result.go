// Package validation turns untyped summary-request payloads into validated
// domain values, collecting every violation in one pass instead of failing
// on the first. Consumers are form UIs and the API boundary, which must show
// the user everything wrong at once.
package validation

// Result is a tagged union of a success value or a failure payload.
// Exactly one side is populated, never both, and a Result is immutable
// once constructed.
type Result[T, E any] struct {
	ok    bool
	value T
	fail  E
}

// Ok builds a success Result
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{ok: true, value: v} }

// Err builds a failure Result
func Err[T, E any](e E) Result[T, E] { return Result[T, E]{fail: e} }

// IsOk reports whether the Result holds a success value
func (r Result[T, E]) IsOk() bool { return r.ok }

// Value returns the success value; the zero value on failure
func (r Result[T, E]) Value() T { return r.value }

// Failure returns the failure payload; the zero value on success
func (r Result[T, E]) Failure() E { return r.fail }

// Unpack returns both sides along with the success flag so callers are
// forced to branch explicitly
func (r Result[T, E]) Unpack() (T, E, bool) { return r.value, r.fail, r.ok }
