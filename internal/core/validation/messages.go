package validation

import "strings"

// Catalog resolves a message key plus params into human-readable text.
// The default English catalog is used unless a caller supplies its own,
// which is the seam for localization or product-specific copy.
type Catalog interface {
	// Message renders key with {param} placeholders substituted.
	// Unknown keys render as the key itself so failures stay visible
	Message(key string, params map[string]string) string
}

// mapCatalog is the built-in English catalog
type mapCatalog map[string]string

// Message keys understood by the default catalog
const (
	msgRequestNotObject = "request.not_object"

	msgDateRangeMissing   = "daterange.missing"
	msgDateRangeNotObject = "daterange.not_object"
	msgDateStartInvalid   = "daterange.start_invalid"
	msgDateEndInvalid     = "daterange.end_invalid"
	msgDateOrder          = "daterange.order"
	msgDateFuture         = "daterange.future"
	msgRangeTooLong       = "daterange.too_long"
	msgRangeTooShort      = "daterange.too_short"

	msgReposMissing  = "repositories.missing"
	msgReposNotArray = "repositories.not_array"
	msgReposEmpty    = "repositories.empty"
	msgReposTooMany  = "repositories.too_many"
	msgReposInvalid  = "repositories.invalid"
	msgReposDupes    = "repositories.duplicate"

	msgUsersNotArray = "users.not_array"
	msgUsersTooMany  = "users.too_many"
	msgUsersInvalid  = "users.invalid"
	msgUsersDupes    = "users.duplicate"

	msgBranchNotString = "branch.not_string"
	msgBranchEmpty     = "branch.empty"
	msgBranchTooLong   = "branch.too_long"
	msgBranchCharset   = "branch.charset"
)

var defaultCatalog = mapCatalog{
	msgRequestNotObject: "Request must be an object",

	msgDateRangeMissing:   "Date range is required",
	msgDateRangeNotObject: "Date range must be an object",
	msgDateStartInvalid:   "Start date is not a valid date",
	msgDateEndInvalid:     "End date is not a valid date",
	msgDateOrder:          "Start date must be before end date",
	msgDateFuture:         "Dates cannot be in the future",
	msgRangeTooLong:       "Date range cannot exceed {max} days (selected {actual} days)",
	msgRangeTooShort:      "Date range must span at least {min} days",

	msgReposMissing:  "Repositories are required",
	msgReposNotArray: "Repositories must be provided as an array",
	msgReposEmpty:    "At least one repository must be selected",
	msgReposTooMany:  "Cannot select more than {max} repositories (selected {actual})",
	msgReposInvalid:  "Invalid repository format: {names}",
	msgReposDupes:    "Duplicate repositories are not allowed: {names}",

	msgUsersNotArray: "Users must be provided as an array",
	msgUsersTooMany:  "Cannot filter by more than {max} users (selected {actual})",
	msgUsersInvalid:  "Invalid username format: {names}",
	msgUsersDupes:    "Duplicate users are not allowed: {names}",

	msgBranchNotString: "Branch must be a string",
	msgBranchEmpty:     "Branch name cannot be empty",
	msgBranchTooLong:   "Branch name cannot exceed {max} characters",
	msgBranchCharset:   "Branch name contains invalid characters",
}

// DefaultCatalog returns the built-in English catalog
func DefaultCatalog() Catalog { return defaultCatalog }

func (m mapCatalog) Message(key string, params map[string]string) string {
	tpl, ok := m[key]
	if !ok {
		return key
	}
	for k, v := range params {
		tpl = strings.ReplaceAll(tpl, "{"+k+"}", v)
	}
	return tpl
}
