package module

import (
	"context"

	"gitpulse/internal/services/api/summary/domain"
	summarysvc "gitpulse/internal/services/api/summary/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptSummaryPort struct{ svc summarysvc.Service }

// Summarize computes commit activity stats for a validated request
func (a adaptSummaryPort) Summarize(ctx context.Context, payload any) (domain.SummaryResponse, error) {
	return a.svc.Summarize(ctx, payload)
}

// Validate runs the validation pipeline without touching GitHub
func (a adaptSummaryPort) Validate(ctx context.Context, payload any) (domain.ValidateResponse, error) {
	return a.svc.Validate(ctx, payload)
}
