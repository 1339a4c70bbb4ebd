// Package service contains the commit summary workflows
package service

import (
	"context"
	"time"

	"gitpulse/internal/adapters/github"
	"gitpulse/internal/core/summary"
	"gitpulse/internal/core/validation"
	perr "gitpulse/internal/platform/errors"
	"gitpulse/internal/platform/logger"
	"gitpulse/internal/services/api/summary/domain"
	"gitpulse/internal/services/effects"
)

// Service defines the summary service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the summary service
type Svc struct {
	commits   github.Provider
	validator *validation.Validator

	// knobs for the fetch pipeline, tunable per deployment
	fetchTimeout  time.Duration
	retryAttempts int
	retryDelay    time.Duration
}

// Option tunes the service pipeline
type Option func(*Svc)

// WithFetchTimeout caps the time budget for a single repository fetch
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Svc) { s.fetchTimeout = d }
}

// WithRetry sets attempts and base delay for transient fetch failures
func WithRetry(attempts int, delay time.Duration) Option {
	return func(s *Svc) {
		s.retryAttempts = attempts
		s.retryDelay = delay
	}
}

// New constructs a summary service
func New(commits github.Provider, v *validation.Validator, opts ...Option) *Svc {
	if commits == nil {
		panic("summary.Service requires a non nil commit provider")
	}
	if v == nil {
		panic("summary.Service requires a non nil validator")
	}
	s := &Svc{
		commits:       commits,
		validator:     v,
		fetchTimeout:  30 * time.Second,
		retryAttempts: 3,
		retryDelay:    effects.DefaultRetryDelay,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Validate runs the full validation pipeline without touching GitHub
func (s *Svc) Validate(ctx context.Context, payload any) (domain.ValidateResponse, error) {
	if _, errs, ok := s.validator.SummaryRequest(payload).Unpack(); !ok {
		return domain.ValidateResponse{Valid: false, Errors: errs}, nil
	}
	return domain.ValidateResponse{Valid: true}, nil
}

// Summarize validates the payload, fetches commits for every repository in
// parallel, and folds them into activity stats
func (s *Svc) Summarize(ctx context.Context, payload any) (domain.SummaryResponse, error) {
	lc, ok := effects.FromContext(ctx)
	if !ok {
		// the transport middleware may have minted an id already; reuse it so
		// the response header, logs, and body all agree
		id := logger.CorrelationID(ctx)
		if id == "" {
			id = effects.NewCorrelationID()
		}
		lc = effects.NewLogContext("summary.request", id, nil)
		ctx = effects.ContextWith(ctx, lc)
	}

	req, errs, valid := s.validator.SummaryRequest(payload).Unpack()
	if !valid {
		return domain.SummaryResponse{}, perr.ValidationFailed(violations(errs))
	}

	pipeline := effects.WithLogging(
		effects.Map(s.fetchAll(req), func(commits []summary.Commit) domain.SummaryResponse {
			return domain.SummaryResponse{
				CorrelationID: lc.CorrelationID,
				Range:         req.DateRange,
				Repositories:  req.Repositories,
				Users:         req.Users,
				Branch:        req.Branch,
				Stats:         summary.Summarize(req.DateRange, commits),
			}
		}),
		"summary.summarize",
	)

	return pipeline.Run(ctx)
}

// fetchAll builds one effect per repository and runs them in parallel,
// flattening the results in request order
func (s *Svc) fetchAll(req validation.SummaryRequest) effects.Effect[[]summary.Commit] {
	effs := make([]effects.Effect[[]summary.Commit], 0, len(req.Repositories))
	for _, repo := range req.Repositories {
		sub := req
		sub.Repositories = []string{repo}

		fetch := effects.IO(func(ctx context.Context) ([]summary.Commit, error) {
			return s.commits.FetchCommits(ctx, sub)
		})
		fetch = effects.WithTimeout(fetch, s.fetchTimeout)
		fetch = effects.WithRetry(fetch, s.retryAttempts, s.retryDelay)
		fetch = effects.WithLogging(fetch, "github.fetch_commits")

		effs = append(effs, fetch)
	}

	return effects.Map(effects.Parallel(effs), func(batches [][]summary.Commit) []summary.Commit {
		var all []summary.Commit
		for _, b := range batches {
			all = append(all, b...)
		}
		return all
	})
}

// violations flattens accumulated field errors into wire violations
func violations(errs []validation.FieldError) []perr.Violation {
	out := make([]perr.Violation, 0, len(errs))
	for _, e := range errs {
		out = append(out, perr.Violation{Field: e.Field, Code: e.Code, Message: e.Message})
	}
	return out
}
