package report

import "time"

// Range is an optional inclusive date window. A nil bound means unbounded on
// that side.
type Range struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether no bound is set, in which case filtering is a no-op.
func (r Range) IsZero() bool {
	return r.From == nil && r.To == nil
}

// TruncateDay zeroes the time-of-day component so comparisons work at day
// granularity.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// InRange reports whether a record date falls inside the range. Bounds are
// inclusive and compared at day granularity. A zero record date never passes
// a present bound; it only passes when the range is unbounded.
func InRange(date time.Time, r Range) bool {
	if r.IsZero() {
		return true
	}
	if date.IsZero() {
		return false
	}

	day := TruncateDay(date)
	if r.From != nil && day.Before(TruncateDay(*r.From)) {
		return false
	}
	if r.To != nil && day.After(TruncateDay(*r.To)) {
		return false
	}
	return true
}

// Filter returns the records whose date, read through the accessor, falls
// within the range. With no bounds set the input is returned unchanged.
func Filter[T any](records []T, r Range, date func(T) time.Time) []T {
	if r.IsZero() {
		return records
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if InRange(date(rec), r) {
			out = append(out, rec)
		}
	}
	return out
}
