// Package summary computes aggregate commit-activity statistics. Summarize
// is a pure function over fetched commits; providers and transport live
// elsewhere.
package summary

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"gitpulse/internal/core/validation"
)

// Commit is one fetched commit, normalized across repositories
type Commit struct {
	SHA        string    `json:"sha"`
	Repository string    `json:"repository"`
	Author     string    `json:"author"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
	Additions  int       `json:"additions"`
	Deletions  int       `json:"deletions"`
}

// DailyActivity pairs a calendar day with its commit count
type DailyActivity struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
}

// Stats is the aggregate view rendered to the caller
type Stats struct {
	TotalCommits   int            `json:"totalCommits"`
	TotalAdditions int            `json:"totalAdditions"`
	TotalDeletions int            `json:"totalDeletions"`
	UniqueAuthors  int            `json:"uniqueAuthors"`

	ByRepository map[string]int `json:"byRepository"`
	ByAuthor     map[string]int `json:"byAuthor"`

	// Daily covers every day of the requested range, zero-filled
	Daily []DailyActivity `json:"daily"`

	// per-day distribution over the requested range
	MeanPerDay   float64 `json:"meanPerDay"`
	MedianPerDay float64 `json:"medianPerDay"`
	MaxPerDay    float64 `json:"maxPerDay"`
	P90PerDay    float64 `json:"p90PerDay"`

	BusiestDay  string     `json:"busiestDay,omitempty"`
	FirstCommit *time.Time `json:"firstCommit,omitempty"`
	LastCommit  *time.Time `json:"lastCommit,omitempty"`
}

const dayLayout = "2006-01-02"

// Summarize aggregates commits over the requested range. The input slice is
// not mutated; commits outside the range still count toward totals but the
// daily series covers exactly the range's days.
func Summarize(rng validation.DateRange, commits []Commit) Stats {
	s := Stats{
		TotalCommits: len(commits),
		ByRepository: make(map[string]int),
		ByAuthor:     make(map[string]int),
	}

	perDay := make(map[string]int)
	for _, c := range commits {
		s.TotalAdditions += c.Additions
		s.TotalDeletions += c.Deletions
		s.ByRepository[c.Repository]++
		if c.Author != "" {
			s.ByAuthor[c.Author]++
		}
		perDay[c.Date.Format(dayLayout)]++

		if s.FirstCommit == nil || c.Date.Before(*s.FirstCommit) {
			d := c.Date
			s.FirstCommit = &d
		}
		if s.LastCommit == nil || c.Date.After(*s.LastCommit) {
			d := c.Date
			s.LastCommit = &d
		}
	}
	s.UniqueAuthors = len(s.ByAuthor)

	s.Daily = dailySeries(rng, perDay)
	s.fillDistribution()
	return s
}

// dailySeries zero-fills one entry per day of the closed range
func dailySeries(rng validation.DateRange, perDay map[string]int) []DailyActivity {
	var out []DailyActivity
	start := rng.Start.Truncate(24 * time.Hour)
	end := rng.End.Truncate(24 * time.Hour)
	for d := start; !d.After(end); d = d.Add(24 * time.Hour) {
		key := d.Format(dayLayout)
		out = append(out, DailyActivity{Date: key, Commits: perDay[key]})
	}
	return out
}

func (s *Stats) fillDistribution() {
	if len(s.Daily) == 0 {
		return
	}

	data := make(stats.Float64Data, 0, len(s.Daily))
	busiest := s.Daily[0]
	for _, d := range s.Daily {
		data = append(data, float64(d.Commits))
		if d.Commits > busiest.Commits {
			busiest = d
		}
	}
	if busiest.Commits > 0 {
		s.BusiestDay = busiest.Date
	}

	// stats errors only on empty input, which is excluded above
	s.MeanPerDay, _ = stats.Mean(data)
	s.MedianPerDay, _ = stats.Median(data)
	s.MaxPerDay, _ = stats.Max(data)
	s.P90PerDay, _ = stats.Percentile(data, 90)
}

// TopRepositories returns up to n repositories ordered by commit count,
// ties broken by name for stable output
func (s Stats) TopRepositories(n int) []string {
	names := make([]string, 0, len(s.ByRepository))
	for name := range s.ByRepository {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := s.ByRepository[names[i]], s.ByRepository[names[j]]
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	if n < len(names) {
		names = names[:n]
	}
	return names
}
