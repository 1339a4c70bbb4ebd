// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"

	"gitpulse/internal/platform/logger"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, correlationID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
		ctx = logger.WithRequest(ctx, reqID)
	}
	if correlationID != "" {
		ctx = logger.WithCorrelation(ctx, correlationID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// CorrelationID returns the correlation id on the context if present
func CorrelationID(ctx context.Context) string {
	return logger.CorrelationID(ctx)
}
