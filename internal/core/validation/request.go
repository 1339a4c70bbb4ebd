package validation

import (
	"fmt"
	"time"
)

// SummaryRequest is the validated request for a commit-activity summary.
// Instances are produced only by the validation success path and treated as
// immutable values downstream.
type SummaryRequest struct {
	Repositories   []string  `json:"repositories"`
	DateRange      DateRange `json:"dateRange"`
	Users          []string  `json:"users,omitempty"`
	Branch         string    `json:"branch,omitempty"`
	IncludePrivate bool      `json:"includePrivate"`
}

// FieldError is a violation addressed to one request field, so an API
// consumer can map it back to the offending form input. Order is
// meaningful: errors are reported in validation order.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// FieldError codes
const (
	CodeInvalidType         = "INVALID_TYPE"
	CodeMissingField        = "MISSING_FIELD"
	CodeInvalidDateRange    = "INVALID_DATE_RANGE"
	CodeInvalidRepositories = "INVALID_REPOSITORIES"
	CodeInvalidUsers        = "INVALID_USERS"
	CodeInvalidBranch       = "INVALID_BRANCH"
)

// dateLayouts accepted for dateRange.start / dateRange.end
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// SummaryRequest validates an untyped JSON payload (as decoded into
// map[string]any) into a SummaryRequest. All four field groups are checked
// regardless of earlier failures so the caller sees every problem at once;
// only a non-object payload short-circuits, with a single "request" error.
func (v *Validator) SummaryRequest(payload any) Result[SummaryRequest, []FieldError] {
	obj, ok := payload.(map[string]any)
	if !ok || obj == nil {
		return Err[SummaryRequest, []FieldError]([]FieldError{{
			Field:   "request",
			Message: v.cat.Message(msgRequestNotObject, nil),
			Code:    CodeInvalidType,
		}})
	}

	var errs []FieldError
	var req SummaryRequest

	// dateRange (required)
	if raw, present := obj["dateRange"]; !present {
		errs = append(errs, FieldError{
			Field:   "dateRange",
			Message: v.cat.Message(msgDateRangeMissing, nil),
			Code:    CodeMissingField,
		})
	} else if rng, ok := raw.(map[string]any); !ok {
		errs = append(errs, FieldError{
			Field:   "dateRange",
			Message: v.cat.Message(msgDateRangeNotObject, nil),
			Code:    CodeInvalidType,
		})
	} else {
		start := coerceDate(rng["start"])
		end := coerceDate(rng["end"])
		res := v.DateRange(start, end)
		if dr, msgs, ok := res.Unpack(); ok {
			req.DateRange = dr
		} else {
			errs = append(errs, fieldErrors("dateRange", CodeInvalidDateRange, msgs)...)
		}
	}

	// repositories (required)
	if raw, present := obj["repositories"]; !present {
		errs = append(errs, FieldError{
			Field:   "repositories",
			Message: v.cat.Message(msgReposMissing, nil),
			Code:    CodeMissingField,
		})
	} else if list, ok := coerceStrings(raw); !ok {
		errs = append(errs, FieldError{
			Field:   "repositories",
			Message: v.cat.Message(msgReposNotArray, nil),
			Code:    CodeInvalidType,
		})
	} else {
		res := v.Repositories(list)
		if repos, msgs, ok := res.Unpack(); ok {
			req.Repositories = repos
		} else {
			errs = append(errs, fieldErrors("repositories", CodeInvalidRepositories, msgs)...)
		}
	}

	// users (optional)
	if raw, present := obj["users"]; present {
		if list, ok := coerceStrings(raw); !ok {
			errs = append(errs, FieldError{
				Field:   "users",
				Message: v.cat.Message(msgUsersNotArray, nil),
				Code:    CodeInvalidType,
			})
		} else {
			if list == nil {
				list = []string{}
			}
			res := v.Users(list)
			if users, msgs, ok := res.Unpack(); ok {
				req.Users = users
			} else {
				errs = append(errs, fieldErrors("users", CodeInvalidUsers, msgs)...)
			}
		}
	}

	// branch (optional)
	if raw, present := obj["branch"]; present {
		if s, ok := raw.(string); !ok {
			errs = append(errs, FieldError{
				Field:   "branch",
				Message: v.cat.Message(msgBranchNotString, nil),
				Code:    CodeInvalidType,
			})
		} else {
			res := v.Branch(&s)
			if b, msgs, ok := res.Unpack(); ok && b != nil {
				req.Branch = *b
			} else if !ok {
				errs = append(errs, fieldErrors("branch", CodeInvalidBranch, msgs)...)
			}
		}
	}

	// includePrivate coerces to bool, absent or non-bool means false
	req.IncludePrivate, _ = obj["includePrivate"].(bool)

	if len(errs) > 0 {
		return Err[SummaryRequest, []FieldError](errs)
	}
	return Ok[SummaryRequest, []FieldError](req)
}

// fieldErrors flattens a validator's string errors into FieldError records
func fieldErrors(field, code string, msgs []string) []FieldError {
	out := make([]FieldError, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FieldError{Field: field, Message: m, Code: code})
	}
	return out
}

// coerceDate parses a JSON date value; anything unparseable maps to the zero
// time, which the date validator reports as invalid
func coerceDate(raw any) time.Time {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// coerceStrings accepts []any or []string; non-string elements are rendered
// with %v so they surface as malformed entries rather than type errors
func coerceStrings(raw any) ([]string, bool) {
	switch t := raw.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprintf("%v", e))
		}
		return out, true
	default:
		return nil, false
	}
}
