package selection

import (
	"fmt"

	"github.com/swipecal/swipecal/internal/date"
)

// DateRange is an inclusive date span. A nil End marks a range in progress:
// only its start has been picked so far. Construction keeps Start <= End, so
// callers never have to pre-sort the bounds.
type DateRange struct {
	Start date.Date
	End   *date.Date
}

// NewRange returns a closed range over a and b in chronological order.
func NewRange(a, b date.Date) DateRange {
	if b.Before(a) {
		a, b = b, a
	}
	end := b
	return DateRange{Start: a, End: &end}
}

// OpenRange returns a range with only its start picked.
func OpenRange(start date.Date) DateRange {
	return DateRange{Start: start}
}

// Closed reports whether both bounds are set.
func (r DateRange) Closed() bool {
	return r.End != nil
}

// Degenerate reports whether the range covers at most a single day: either
// the end is still unset or both bounds name the same date.
func (r DateRange) Degenerate() bool {
	return r.End == nil || r.Start.Same(*r.End)
}

// EffectiveEnd returns the end bound, falling back to the start for a range
// in progress.
func (r DateRange) EffectiveEnd() date.Date {
	if r.End == nil {
		return r.Start
	}
	return *r.End
}

// Contains reports whether d falls inside the range, bounds included.
func (r DateRange) Contains(d date.Date) bool {
	return d.SameOrAfter(r.Start) && d.SameOrBefore(r.EffectiveEnd())
}

// Intercepts reports whether r and o overlap in any way that the multi-range
// resolution pass treats as a conflict: a shared endpoint, one range nested
// in the other, or any day in common.
func (r DateRange) Intercepts(o DateRange) bool {
	return r.Start.SameOrBefore(o.EffectiveEnd()) && o.Start.SameOrBefore(r.EffectiveEnd())
}

// Equal reports value equality of the two ranges.
func (r DateRange) Equal(o DateRange) bool {
	if !r.Start.Same(o.Start) {
		return false
	}
	if (r.End == nil) != (o.End == nil) {
		return false
	}
	return r.End == nil || r.End.Same(*o.End)
}

func (r DateRange) String() string {
	if r.End == nil {
		return fmt.Sprintf("[%s, _]", r.Start)
	}
	return fmt.Sprintf("[%s, %s]", r.Start, *r.End)
}

// rangesEqual compares two range sequences element-wise.
func rangesEqual(a, b []DateRange) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// datesEqual compares two date sequences element-wise, order included.
func datesEqual(a, b []date.Date) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}
