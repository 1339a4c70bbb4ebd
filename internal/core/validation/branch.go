package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// ref charset accepted for a branch filter
var branchPattern = regexp.MustCompile(`^[A-Za-z0-9/_.-]+$`)

// defaultMaxBranchLength backs the standalone ValidateBranch helper
const defaultMaxBranchLength = 250

// ValidateBranch validates an optional branch filter against the default
// length limit. nil passes through untouched.
func ValidateBranch(branch *string) Result[*string, []string] {
	return validateBranch(branch, defaultMaxBranchLength, defaultCatalog)
}

// Branch validates an optional branch filter against the policy limit
func (v *Validator) Branch(branch *string) Result[*string, []string] {
	return validateBranch(branch, v.cfg.MaxBranchLength, v.cat)
}

func validateBranch(branch *string, maxLen int, cat Catalog) Result[*string, []string] {
	if branch == nil {
		return Ok[*string, []string](nil)
	}

	b := *branch
	if strings.TrimSpace(b) == "" {
		return Err[*string, []string]([]string{cat.Message(msgBranchEmpty, nil)})
	}

	// length and charset both report when both are violated
	var errs []string
	if len(b) > maxLen {
		errs = append(errs, cat.Message(msgBranchTooLong, map[string]string{
			"max": strconv.Itoa(maxLen),
		}))
	}
	if !branchPattern.MatchString(b) {
		errs = append(errs, cat.Message(msgBranchCharset, nil))
	}

	if len(errs) > 0 {
		return Err[*string, []string](errs)
	}
	return Ok[*string, []string](branch)
}
