package validation

// Config is the validation policy: the numeric and boolean limits that decide
// what counts as an acceptable summary request. Values are immutable once
// built; construct one per app-config load (or per call in tests).
type Config struct {
	// MaxRepositories caps how many repositories one request may query
	MaxRepositories int
	// MaxDateRangeDays caps the selected window, in whole days
	MaxDateRangeDays int
	// MinDateRangeDays is the smallest allowed window; 0 admits single-day ranges
	MinDateRangeDays int
	// MaxUsers caps the optional author filter
	MaxUsers int
	// MaxBranchLength caps the optional branch name
	MaxBranchLength int
	// AllowFutureDates admits ranges ending after "now" when true
	AllowFutureDates bool
}

// DefaultConfig returns the canonical policy defaults.
// There is exactly one default table; MinDateRangeDays is 0 so a single-day
// range is valid out of the box.
func DefaultConfig() Config {
	return Config{
		MaxRepositories:  10,
		MaxDateRangeDays: 365,
		MinDateRangeDays: 0,
		MaxUsers:         25,
		MaxBranchLength:  250,
		AllowFutureDates: false,
	}
}

// Overrides is a partial policy: nil fields fall back to DefaultConfig.
// The struct is read-only to NewConfig; callers keep ownership.
type Overrides struct {
	MaxRepositories  *int  `json:"maxRepositories,omitempty" validate:"omitempty,min=1"`
	MaxDateRangeDays *int  `json:"maxDateRangeDays,omitempty" validate:"omitempty,min=1"`
	MinDateRangeDays *int  `json:"minDateRangeDays,omitempty" validate:"omitempty,min=0"`
	MaxUsers         *int  `json:"maxUsers,omitempty" validate:"omitempty,min=1"`
	MaxBranchLength  *int  `json:"maxBranchLength,omitempty" validate:"omitempty,min=1"`
	AllowFutureDates *bool `json:"allowFutureDates,omitempty"`
}

// NewConfig merges overrides over the defaults without mutating the argument
func NewConfig(o Overrides) Config {
	c := DefaultConfig()
	if o.MaxRepositories != nil {
		c.MaxRepositories = *o.MaxRepositories
	}
	if o.MaxDateRangeDays != nil {
		c.MaxDateRangeDays = *o.MaxDateRangeDays
	}
	if o.MinDateRangeDays != nil {
		c.MinDateRangeDays = *o.MinDateRangeDays
	}
	if o.MaxUsers != nil {
		c.MaxUsers = *o.MaxUsers
	}
	if o.MaxBranchLength != nil {
		c.MaxBranchLength = *o.MaxBranchLength
	}
	if o.AllowFutureDates != nil {
		c.AllowFutureDates = *o.AllowFutureDates
	}
	return c
}
