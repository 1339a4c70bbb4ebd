package effects

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitpulse/internal/platform/logger"
)

// LogContext identifies one logical operation for tracing. Contexts form a
// chain through Parent: a child minted under an active parent inherits its
// correlation ID, so every log line of a causally related effect tree shares
// one ID. Propagation rides on context.Context, never on shared mutable
// state, so concurrent unrelated effect trees cannot observe each other.
type LogContext struct {
	CorrelationID string
	Operation     string
	StartTime     time.Time
	Parent        *LogContext
}

type logCtxKey struct{}

// NewCorrelationID mints a fresh correlation identifier
func NewCorrelationID() string { return uuid.NewString() }

// NewLogContext builds a context for operation. A supplied correlationID is
// reused for propagation; empty mints a fresh one.
func NewLogContext(operation, correlationID string, parent *LogContext) *LogContext {
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}
	return &LogContext{
		CorrelationID: correlationID,
		Operation:     operation,
		StartTime:     time.Now(),
		Parent:        parent,
	}
}

// FromContext returns the active LogContext on ctx, if any
func FromContext(ctx context.Context) (*LogContext, bool) {
	lc, ok := ctx.Value(logCtxKey{}).(*LogContext)
	return lc, ok
}

// ContextWith installs lc as the active LogContext and tags the ambient
// logger with its correlation ID
func ContextWith(ctx context.Context, lc *LogContext) context.Context {
	ctx = context.WithValue(ctx, logCtxKey{}, lc)
	return logger.WithCorrelation(ctx, lc.CorrelationID)
}

// WithLogging wraps e so its start, completion (with elapsed time and a
// result snapshot), or failure (with elapsed time and error detail) is
// emitted as structured log entries sharing one correlation ID. An active
// parent context is propagated with only the operation label changing;
// otherwise a fresh context is minted. The wrapped effect's outcome is never
// altered by logging.
func WithLogging[T any](e Effect[T], operation string) Effect[T] {
	return Effect[T]{kind: e.kind, run: func(ctx context.Context) (T, error) {
		var lc *LogContext
		if parent, ok := FromContext(ctx); ok {
			lc = NewLogContext(operation, parent.CorrelationID, parent)
		} else {
			lc = NewLogContext(operation, "", nil)
		}
		ctx = ContextWith(ctx, lc)

		log := logger.C(ctx)
		log.Info().
			Str("operation", operation).
			Str("effect_kind", string(e.kind)).
			Msg("effect started")

		v, err := e.Run(ctx)
		elapsed := time.Since(lc.StartTime)
		if err != nil {
			log.Error().
				Str("operation", operation).
				Dur("elapsed", elapsed).
				Err(err).
				Msg("effect failed")
			var zero T
			return zero, err
		}

		log.Info().
			Str("operation", operation).
			Dur("elapsed", elapsed).
			Interface("result", v).
			Msg("effect completed")
		return v, nil
	}}
}

// WithCorrelation forces lc to be the active context for the duration of e,
// threading one correlation ID through an explicit chain of otherwise
// independent WithLogging-wrapped steps
func WithCorrelation[T any](e Effect[T], lc *LogContext) Effect[T] {
	return Effect[T]{kind: e.kind, run: func(ctx context.Context) (T, error) {
		return e.Run(ContextWith(ctx, lc))
	}}
}
