package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// owner/name, one slash, GitHub's repo charset on both sides
var repoPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// invalidListCap bounds how many offending entries a message names
const invalidListCap = 3

// Repositories validates the repository list. An empty (or nil) list fails
// alone since nothing else can be checked; otherwise the count, shape, and
// duplicate checks all run and their violations accumulate. The input slice
// is never mutated and is returned as-is on success.
func (v *Validator) Repositories(repos []string) Result[[]string, []string] {
	if len(repos) == 0 {
		return Err[[]string, []string]([]string{v.cat.Message(msgReposEmpty, nil)})
	}

	var errs []string
	if len(repos) > v.cfg.MaxRepositories {
		errs = append(errs, v.cat.Message(msgReposTooMany, map[string]string{
			"max":    strconv.Itoa(v.cfg.MaxRepositories),
			"actual": strconv.Itoa(len(repos)),
		}))
	}

	var invalid []string
	seen := make(map[string]bool, len(repos))
	var dupes []string
	dupeSeen := make(map[string]bool)
	for _, r := range repos {
		if !repoPattern.MatchString(r) {
			invalid = append(invalid, r)
		}
		if seen[r] && !dupeSeen[r] {
			dupes = append(dupes, r)
			dupeSeen[r] = true
		}
		seen[r] = true
	}

	if len(invalid) > 0 {
		errs = append(errs, v.cat.Message(msgReposInvalid, map[string]string{
			"names": truncateList(invalid, invalidListCap),
		}))
	}
	if len(dupes) > 0 {
		errs = append(errs, v.cat.Message(msgReposDupes, map[string]string{
			"names": strings.Join(dupes, ", "),
		}))
	}

	if len(errs) > 0 {
		return Err[[]string, []string](errs)
	}
	return Ok[[]string, []string](repos)
}

// truncateList joins up to limit names, marking the remainder with an ellipsis
func truncateList(names []string, limit int) string {
	if len(names) <= limit {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:limit], ", ") + ", ..."
}
