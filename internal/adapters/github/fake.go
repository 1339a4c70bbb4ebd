package github

import (
	"context"
	"sync"
	"time"

	"gitpulse/internal/core/summary"
	"gitpulse/internal/core/validation"
)

// FakeProvider is an in-memory Provider for tests and local development.
// Commits are served per repository, filtered the way the real client
// filters (date range, branch, author), and calls are recorded for
// assertions.
type FakeProvider struct {
	mu      sync.Mutex
	commits map[string][]summary.Commit

	// Err, when set, fails every call
	Err error
	// PingErr fails only Ping
	PingErr error

	calls []validation.SummaryRequest
}

// NewFakeProvider builds an empty fake
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{commits: make(map[string][]summary.Commit)}
}

// Seed registers commits for a repository, replacing earlier seeds
func (f *FakeProvider) Seed(repo string, commits ...summary.Commit) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commits[repo] = commits
}

// Calls returns a copy of every request FetchCommits has seen
func (f *FakeProvider) Calls() []validation.SummaryRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]validation.SummaryRequest(nil), f.calls...)
}

// FetchCommits serves seeded commits matching the request filters
func (f *FakeProvider) FetchCommits(_ context.Context, req validation.SummaryRequest) ([]summary.Commit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)

	if f.Err != nil {
		return nil, f.Err
	}

	users := make(map[string]bool, len(req.Users))
	for _, u := range req.Users {
		users[u] = true
	}

	var out []summary.Commit
	for _, repo := range req.Repositories {
		for _, c := range f.commits[repo] {
			if c.Date.Before(req.DateRange.Start) || c.Date.After(req.DateRange.End.Add(24*time.Hour)) {
				continue
			}
			if len(users) > 0 && !users[c.Author] {
				continue
			}
			out = append(out, c)
		}
	}
	return out, nil
}

// Ping reports the configured health
func (f *FakeProvider) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PingErr != nil {
		return f.PingErr
	}
	return f.Err
}
