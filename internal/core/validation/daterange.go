package validation

import (
	"strconv"
	"time"
)

// DateRange is a closed calendar interval. After validation Start <= End and
// both are non-zero instants.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SpanDays is the range width in whole days, rounded up.
// A single-day range (Start == End) spans 0 days.
func (r DateRange) SpanDays() int {
	return spanDays(r.Start, r.End)
}

func spanDays(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// DateRange validates start and end against the policy, accumulating every
// violation. Zero times are treated as invalid dates; when either date is
// invalid the ordering and span checks are skipped since they would be
// meaningless. The returned range carries the input instants unchanged.
func (v *Validator) DateRange(start, end time.Time) Result[DateRange, []string] {
	var errs []string
	if start.IsZero() {
		errs = append(errs, v.cat.Message(msgDateStartInvalid, nil))
	}
	if end.IsZero() {
		errs = append(errs, v.cat.Message(msgDateEndInvalid, nil))
	}
	if len(errs) > 0 {
		return Err[DateRange, []string](errs)
	}

	ordered := !start.After(end)
	if !ordered {
		errs = append(errs, v.cat.Message(msgDateOrder, nil))
	}
	if !v.cfg.AllowFutureDates && end.After(now()) {
		errs = append(errs, v.cat.Message(msgDateFuture, nil))
	}

	// span checks only make sense on an ordered range
	if ordered {
		span := spanDays(start, end)
		if span > v.cfg.MaxDateRangeDays {
			errs = append(errs, v.cat.Message(msgRangeTooLong, map[string]string{
				"max":    strconv.Itoa(v.cfg.MaxDateRangeDays),
				"actual": strconv.Itoa(span),
			}))
		}
		if span < v.cfg.MinDateRangeDays {
			errs = append(errs, v.cat.Message(msgRangeTooShort, map[string]string{
				"min": strconv.Itoa(v.cfg.MinDateRangeDays),
			}))
		}
	}

	if len(errs) > 0 {
		return Err[DateRange, []string](errs)
	}
	return Ok[DateRange, []string](DateRange{Start: start, End: end})
}
