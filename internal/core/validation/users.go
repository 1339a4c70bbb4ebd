package validation

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// GitHub login shape: 1-39 chars, alphanumeric with internal hyphens and
// underscores, no leading or trailing hyphen
var userPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9_-]{0,37}[A-Za-z0-9])?$`)

// userFolder implements Unicode case folding for duplicate detection
var userFolder = cases.Fold()

// Users validates the optional author filter. A nil slice means no filter and
// passes through as nil; an empty slice is a valid, explicit empty filter.
// Count, shape, and case-insensitive duplicate violations accumulate. The
// input slice is never mutated.
func (v *Validator) Users(users []string) Result[[]string, []string] {
	if users == nil {
		return Ok[[]string, []string](nil)
	}

	var errs []string
	if len(users) > v.cfg.MaxUsers {
		errs = append(errs, v.cat.Message(msgUsersTooMany, map[string]string{
			"max":    strconv.Itoa(v.cfg.MaxUsers),
			"actual": strconv.Itoa(len(users)),
		}))
	}

	var invalid []string
	seen := make(map[string]bool, len(users))
	var dupes []string
	dupeSeen := make(map[string]bool)
	for _, u := range users {
		if !userPattern.MatchString(u) {
			invalid = append(invalid, u)
		}
		folded := userFolder.String(u)
		if seen[folded] && !dupeSeen[folded] {
			dupes = append(dupes, u)
			dupeSeen[folded] = true
		}
		seen[folded] = true
	}

	if len(invalid) > 0 {
		errs = append(errs, v.cat.Message(msgUsersInvalid, map[string]string{
			"names": truncateList(invalid, invalidListCap),
		}))
	}
	if len(dupes) > 0 {
		errs = append(errs, v.cat.Message(msgUsersDupes, map[string]string{
			"names": strings.Join(dupes, ", "),
		}))
	}

	if len(errs) > 0 {
		return Err[[]string, []string](errs)
	}
	return Ok[[]string, []string](users)
}
