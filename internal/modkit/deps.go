// Package modkit provides module wiring and core deps
package modkit

import (
	"gitpulse/internal/adapters/github"
	"gitpulse/internal/core/validation"
	"gitpulse/internal/platform/config"
	"gitpulse/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// Commits is the injected data provider for the summary workflow
	Commits github.Provider
	// Validator carries the request validation policy
	Validator *validation.Validator
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional collaborators
func (d Deps) ZeroOK() bool { return true }
