package validation

import (
	"strings"
	"testing"
	"time"

	"gitpulse/internal/platform/testkit"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// fixedNow pins the future-date check for deterministic assertions
func fixedNow(t *testing.T) {
	t.Helper()
	testkit.Serial(t)
	testkit.Swap(t, &now, func() time.Time { return day("2023-06-15") })
}

func TestDateRangeValid(t *testing.T) {
	fixedNow(t)

	start, end := day("2023-01-01"), day("2023-01-31")
	res := ValidateDateRange(start, end, DefaultConfig())
	if !res.IsOk() {
		t.Fatalf("expected success, got %v", res.Failure())
	}
	if dr := res.Value(); !dr.Start.Equal(start) || !dr.End.Equal(end) {
		t.Fatalf("range altered: %+v", dr)
	}
}

func TestDateRangeSingleDay(t *testing.T) {
	fixedNow(t)

	d := day("2023-03-03")
	res := ValidateDateRange(d, d, DefaultConfig())
	if !res.IsOk() {
		t.Fatalf("single-day range must be valid, got %v", res.Failure())
	}
	if span := res.Value().SpanDays(); span != 0 {
		t.Fatalf("span = %d, want 0", span)
	}
}

func TestDateRangeFailures(t *testing.T) {
	fixedNow(t)

	cases := []struct {
		name       string
		start, end time.Time
		cfg        Config
		want       []string
	}{
		{
			name:  "start after end",
			start: day("2023-01-05"),
			end:   day("2023-01-01"),
			cfg:   DefaultConfig(),
			want:  []string{"Start date must be before end date"},
		},
		{
			name:  "end in the future",
			start: day("2023-06-01"),
			end:   day("2023-07-01"),
			cfg:   DefaultConfig(),
			want:  []string{"Dates cannot be in the future"},
		},
		{
			name:  "both dates invalid",
			start: time.Time{},
			end:   time.Time{},
			cfg:   DefaultConfig(),
			want: []string{
				"Start date is not a valid date",
				"End date is not a valid date",
			},
		},
		{
			name:  "span over the limit",
			start: day("2020-01-01"),
			end:   day("2023-01-01"),
			cfg:   DefaultConfig(),
			want:  []string{"Date range cannot exceed 365 days (selected 1096 days)"},
		},
		{
			name:  "span under the minimum",
			start: day("2023-01-01"),
			end:   day("2023-01-03"),
			cfg:   DefaultConfig(),
			want:  []string{"Date range must span at least 7 days"},
		},
	}
	minDays := 7
	cases[4].cfg = NewConfig(Overrides{MinDateRangeDays: &minDays})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateDateRange(tc.start, tc.end, tc.cfg)
			if res.IsOk() {
				t.Fatalf("expected failure")
			}
			got := res.Failure()
			if len(got) != len(tc.want) {
				t.Fatalf("errors = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("errors[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestDateRangeInvalidDatesSkipRangeChecks(t *testing.T) {
	fixedNow(t)

	res := ValidateDateRange(time.Time{}, day("2023-01-01"), DefaultConfig())
	if res.IsOk() {
		t.Fatal("expected failure")
	}
	for _, msg := range res.Failure() {
		if strings.Contains(msg, "exceed") || strings.Contains(msg, "before end") {
			t.Fatalf("range checks must be skipped on invalid dates, got %q", msg)
		}
	}
}

func TestDateRangeAllowFuture(t *testing.T) {
	fixedNow(t)

	allow := true
	cfg := NewConfig(Overrides{AllowFutureDates: &allow})
	res := ValidateDateRange(day("2023-06-01"), day("2023-07-01"), cfg)
	if !res.IsOk() {
		t.Fatalf("future end must pass with AllowFutureDates, got %v", res.Failure())
	}
}

func TestDateRangeIdempotent(t *testing.T) {
	fixedNow(t)

	start, end := day("2023-01-05"), day("2023-01-01")
	first := ValidateDateRange(start, end, DefaultConfig())
	second := ValidateDateRange(start, end, DefaultConfig())
	if first.IsOk() != second.IsOk() {
		t.Fatal("repeated calls disagree")
	}
	f1, f2 := first.Failure(), second.Failure()
	if len(f1) != len(f2) {
		t.Fatalf("repeated calls disagree: %v vs %v", f1, f2)
	}
	for i := range f1 {
		if f1[i] != f2[i] {
			t.Fatalf("repeated calls disagree at %d: %q vs %q", i, f1[i], f2[i])
		}
	}
}
