// Package validation turns untyped summary-request payloads into validated
// domain values. Validators accumulate every violation they can find in one
// pass instead of stopping at the first, so a caller can surface all problems
// to the user at once. All functions are pure: inputs are never mutated and
// repeated calls yield equal results.
package validation

import "time"

// now is swapped in tests that exercise the future-date check
var now = time.Now

// Validator binds a policy Config and a message Catalog. The zero value is
// not usable; construct with New.
type Validator struct {
	cfg Config
	cat Catalog
}

// New builds a Validator over cfg with the default English catalog
func New(cfg Config) *Validator {
	return &Validator{cfg: cfg, cat: defaultCatalog}
}

// WithCatalog returns a copy of v that renders messages through cat
func (v *Validator) WithCatalog(cat Catalog) *Validator {
	return &Validator{cfg: v.cfg, cat: cat}
}

// Config returns the policy the validator was built with
func (v *Validator) Config() Config { return v.cfg }

// ValidateDateRange is a convenience wrapper over New(cfg).DateRange
func ValidateDateRange(start, end time.Time, cfg Config) Result[DateRange, []string] {
	return New(cfg).DateRange(start, end)
}

// ValidateRepositories is a convenience wrapper over New(cfg).Repositories
func ValidateRepositories(repos []string, cfg Config) Result[[]string, []string] {
	return New(cfg).Repositories(repos)
}

// ValidateUsers is a convenience wrapper over New(cfg).Users
func ValidateUsers(users []string, cfg Config) Result[[]string, []string] {
	return New(cfg).Users(users)
}

// ValidateSummaryRequest is a convenience wrapper over New(cfg).SummaryRequest
func ValidateSummaryRequest(payload any, cfg Config) Result[SummaryRequest, []FieldError] {
	return New(cfg).SummaryRequest(payload)
}
