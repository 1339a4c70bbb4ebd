// Package domain holds DTOs for summary http and service contracts
package domain

import (
	"gitpulse/internal/core/summary"
	"gitpulse/internal/core/validation"
)

// SummaryRequest documents the expected request shape. Handlers decode the
// body untyped and hand it to the validation pipeline, which reports every
// shape problem at once instead of failing on the first decode error
// swagger:model
type SummaryRequest struct {
	Repositories   []string `json:"repositories"             example:"golang/go"`
	DateRange      struct {
		Start string `json:"start" example:"2024-01-01"`
		End   string `json:"end"   example:"2024-01-31"`
	} `json:"dateRange"`
	Users          []string `json:"users,omitempty"          example:"octocat"`
	Branch         string   `json:"branch,omitempty"         example:"main"`
	IncludePrivate bool     `json:"includePrivate,omitempty" example:"false"`
}

// ValidateResponse reports the outcome of running the validation pipeline
// without touching GitHub
// swagger:model
type ValidateResponse struct {
	Valid  bool                    `json:"valid"            example:"true"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// SummaryResponse pairs the validated request with its computed activity stats
// swagger:model
type SummaryResponse struct {
	CorrelationID string               `json:"correlationId"    example:"9b2f1c44-0f7e-4a58-9c1d-2a6f3e8b5d10"`
	Range         validation.DateRange `json:"range"`
	Repositories  []string             `json:"repositories"`
	Users         []string             `json:"users,omitempty"`
	Branch        string               `json:"branch,omitempty" example:"main"`
	Stats         summary.Stats        `json:"stats"`
}
