package selection

import (
	"github.com/swipecal/swipecal/internal/date"
)

// Rules gates which dates are pickable at all. Picks outside [Min, Max] or on
// a blackout date are silent no-ops: no container changes, no notification.
type Rules struct {
	// Toggle makes re-picking the current single selection deselect it.
	Toggle bool
	// Min and Max bound pickable dates inclusively. Zero values are
	// unbounded.
	Min date.Date
	Max date.Date
	// IsBlackout reports explicitly disabled dates. May be nil.
	IsBlackout func(date.Date) bool
}

// Allowed reports whether d may take part in a selection at all.
func (r Rules) Allowed(d date.Date) bool {
	if !r.Min.IsZero() && d.Before(r.Min) {
		return false
	}
	if !r.Max.IsZero() && d.After(r.Max) {
		return false
	}
	if r.IsBlackout != nil && r.IsBlackout(d) {
		return false
	}
	return true
}

// Selection is the tagged container union. Only the container matching Mode
// is meaningful; the rest stay empty.
type Selection struct {
	Mode   Mode
	Date   *date.Date
	Dates  []date.Date
	Range  *DateRange
	Ranges []DateRange
}

// New returns an empty selection for the given mode.
func New(mode Mode) Selection {
	return Selection{Mode: mode}
}

// WithMode returns an empty selection in the new mode. Switching modes
// resets every container; selections do not survive a mode change.
func (s Selection) WithMode(mode Mode) Selection {
	if mode == s.Mode {
		return s
	}
	return Selection{Mode: mode}
}

// Clone returns a deep copy so snapshots can be handed out without sharing
// backing arrays with the live selection.
func (s Selection) Clone() Selection {
	out := Selection{Mode: s.Mode}
	if s.Date != nil {
		d := *s.Date
		out.Date = &d
	}
	if s.Dates != nil {
		out.Dates = append([]date.Date(nil), s.Dates...)
	}
	if s.Range != nil {
		r := cloneRange(*s.Range)
		out.Range = &r
	}
	if s.Ranges != nil {
		out.Ranges = make([]DateRange, len(s.Ranges))
		for i, r := range s.Ranges {
			out.Ranges[i] = cloneRange(r)
		}
	}
	return out
}

func cloneRange(r DateRange) DateRange {
	if r.End == nil {
		return DateRange{Start: r.Start}
	}
	end := *r.End
	return DateRange{Start: r.Start, End: &end}
}

// Equal reports value equality between two selections.
func (s Selection) Equal(o Selection) bool {
	if s.Mode != o.Mode {
		return false
	}
	if (s.Date == nil) != (o.Date == nil) {
		return false
	}
	if s.Date != nil && !s.Date.Same(*o.Date) {
		return false
	}
	if !datesEqual(s.Dates, o.Dates) {
		return false
	}
	if (s.Range == nil) != (o.Range == nil) {
		return false
	}
	if s.Range != nil && !s.Range.Equal(*o.Range) {
		return false
	}
	return rangesEqual(s.Ranges, o.Ranges)
}

// Pick applies one pick at the given view level and returns the resulting
// selection. The boolean reports whether anything changed; disallowed picks
// and picks that resolve to the current value leave the selection untouched.
func Pick(sel Selection, picked date.Date, view date.View, rules Rules) (Selection, bool) {
	if !rules.Allowed(picked) {
		return sel, false
	}

	switch sel.Mode {
	case ModeSingle:
		return pickSingle(sel, picked, rules)
	case ModeMultiple:
		return pickMultiple(sel, picked)
	case ModeRange:
		return pickRange(sel, picked, view, rules)
	case ModeMultiRange:
		return pickMultiRange(sel, picked, view, rules)
	case ModeExtendableRange:
		return pickExtendable(sel, picked, view, rules)
	default:
		return sel, false
	}
}

func pickSingle(sel Selection, picked date.Date, rules Rules) (Selection, bool) {
	if sel.Date != nil && sel.Date.Same(picked) {
		if !rules.Toggle {
			return sel, false
		}
		out := sel.Clone()
		out.Date = nil
		return out, true
	}
	out := sel.Clone()
	d := picked
	out.Date = &d
	return out, true
}

func pickMultiple(sel Selection, picked date.Date) (Selection, bool) {
	out := sel.Clone()
	for i, d := range out.Dates {
		if d.Same(picked) {
			out.Dates = append(out.Dates[:i], out.Dates[i+1:]...)
			return out, true
		}
	}
	out.Dates = append(out.Dates, picked)
	return out, true
}

func pickRange(sel Selection, picked date.Date, view date.View, rules Rules) (Selection, bool) {
	out := sel.Clone()
	next := advanceRange(out.Range, picked, view, rules)
	if out.Range != nil && out.Range.Equal(next) {
		return sel, false
	}
	out.Range = &next
	return out, true
}

// advanceRange applies the shared bound logic: a missing range, or one that
// is already closed over more than one day, starts fresh at the pick; an
// open or single-day range receives its other bound, ordered chronologically.
func advanceRange(cur *DateRange, picked date.Date, view date.View, rules Rules) DateRange {
	if cur == nil || (cur.Closed() && !cur.Degenerate()) {
		return OpenRange(picked)
	}
	return closeRange(cur.Start, picked, view, rules)
}

// closeRange builds the closed range over the existing start cell and the
// picked cell. At year, decade and century levels the chronologically later
// cell contributes its last sub-date as the end bound; both bounds clamp to
// the pickable window.
func closeRange(existing, picked date.Date, view date.View, rules Rules) DateRange {
	startCell, endCell := existing, picked
	if picked.Before(existing) {
		startCell, endCell = picked, existing
	}
	start := startCell.Clamp(rules.Min, date.Date{})
	end := date.CellEnd(endCell, view).Clamp(date.Date{}, rules.Max)
	return DateRange{Start: start, End: &end}
}

func pickMultiRange(sel Selection, picked date.Date, view date.View, rules Rules) (Selection, bool) {
	out := sel.Clone()
	ranges := out.Ranges

	var updated DateRange
	updatedIdx := -1
	switch {
	case len(ranges) == 0:
		updated = OpenRange(picked)
		ranges = append(ranges, updated)
		updatedIdx = 0
	default:
		last := ranges[len(ranges)-1]
		updated = advanceRange(&last, picked, view, rules)
		if !updated.Closed() && (last.Closed() && !last.Degenerate()) {
			ranges = append(ranges, updated)
		} else {
			ranges[len(ranges)-1] = updated
		}
		updatedIdx = len(ranges) - 1
	}

	// Overlap resolution: the just-updated range wins over every earlier
	// range it intercepts. If stripping interceptions leaves the updated
	// range degenerate, it is dropped as well, so a pick inside an existing
	// range acts as pure deselection.
	kept := ranges[:0]
	removed := false
	for i, r := range ranges {
		if i != updatedIdx && r.Intercepts(updated) {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if removed && updated.Degenerate() {
		trimmed := kept[:0]
		for _, r := range kept {
			if r.Equal(updated) {
				continue
			}
			trimmed = append(trimmed, r)
		}
		kept = trimmed
	}

	out.Ranges = kept
	if rangesEqual(sel.Ranges, out.Ranges) {
		return sel, false
	}
	return out, true
}

func pickExtendable(sel Selection, picked date.Date, view date.View, rules Rules) (Selection, bool) {
	cur := sel.Range
	if cur == nil || !cur.Closed() {
		return pickRange(sel, picked, view, rules)
	}

	distStart := date.DaysBetween(cur.Start, picked)
	if distStart < 0 {
		distStart = -distStart
	}
	distEnd := date.DaysBetween(*cur.End, picked)
	if distEnd < 0 {
		distEnd = -distEnd
	}

	next := cloneRange(*cur)
	if distStart < distEnd {
		next.Start = picked.Clamp(rules.Min, date.Date{})
	} else {
		// Equidistant picks extend the end bound.
		end := date.CellEnd(picked, view).Clamp(date.Date{}, rules.Max)
		next.End = &end
	}
	if next.End.Before(next.Start) {
		next.Start, *next.End = *next.End, next.Start
	}

	if cur.Equal(next) {
		return sel, false
	}
	out := sel.Clone()
	out.Range = &next
	return out, true
}
