package domain

import "context"

// ServicePort is consumed by handlers and other modules. Payloads stay
// untyped so the validation pipeline can judge the shape itself and report
// every problem in one pass
type ServicePort interface {
	Summarize(ctx context.Context, payload any) (SummaryResponse, error)
	Validate(ctx context.Context, payload any) (ValidateResponse, error)
}
