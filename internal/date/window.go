package date

import (
	"fmt"
	"time"
)

// Cell counts for the year-level grids. Decade and century windows carry one
// extra sentinel cell (the start of the following period) used for boundary
// arithmetic; the render layer shows only the first YearLevelCells entries.
const (
	YearViewCells    = 12
	DecadeViewCells  = 10
	CenturyViewCells = 10
)

// MonthCells returns the number of cells a month window occupies for the
// given number of week rows.
func MonthCells(weeksInView int) int {
	return weeksInView * 7
}

// VisibleDatesForMonth returns cellCount consecutive dates for a month-level
// window anchored at anchor. For a full six-row grid (42 cells) the window
// starts at the week containing the first of anchor's month, so leading and
// trailing dates from the adjacent months fill the grid. For shorter windows
// the window starts at the week containing anchor itself.
func VisibleDatesForMonth(anchor Date, firstDayOfWeek time.Weekday, cellCount int) []Date {
	start := anchor.WeekStart(firstDayOfWeek)
	if cellCount == MonthCells(6) {
		start = anchor.FirstOfMonth().WeekStart(firstDayOfWeek)
	}
	dates := make([]Date, cellCount)
	for i := range dates {
		dates[i] = start.AddDays(i)
	}
	return dates
}

// VisibleDatesForYearLevel returns the window for a year, decade or century
// view. Year windows hold the 12 first-of-month dates of anchor's year.
// Decade windows hold the 10 first-of-year dates of the containing decade,
// century windows the 10 decade-start dates of the containing century; both
// carry one trailing sentinel (the next period start).
func VisibleDatesForYearLevel(anchor Date, view View) []Date {
	switch view {
	case ViewYear:
		dates := make([]Date, YearViewCells)
		for m := time.January; m <= time.December; m++ {
			dates[m-1] = Date{Year: anchor.Year, Month: m, Day: 1}
		}
		return dates
	case ViewDecade:
		start := decadeStart(anchor.Year)
		dates := make([]Date, DecadeViewCells+1)
		for i := range dates {
			dates[i] = Date{Year: start + i, Month: time.January, Day: 1}
		}
		return dates
	case ViewCentury:
		start := centuryStart(anchor.Year)
		dates := make([]Date, CenturyViewCells+1)
		for i := range dates {
			dates[i] = Date{Year: start + i*10, Month: time.January, Day: 1}
		}
		return dates
	default:
		return nil
	}
}

// NextViewStart computes the first date of the view following the one
// anchored at anchor. Under RTL the carousel's forward direction points
// backwards in time, so next and previous semantics swap.
func NextViewStart(view View, weeksInView int, anchor Date, rtl bool) Date {
	if rtl {
		return shiftViewStart(view, weeksInView, anchor, -1)
	}
	return shiftViewStart(view, weeksInView, anchor, +1)
}

// PreviousViewStart computes the first date of the view preceding the one
// anchored at anchor, with the same RTL swap as NextViewStart.
func PreviousViewStart(view View, weeksInView int, anchor Date, rtl bool) Date {
	if rtl {
		return shiftViewStart(view, weeksInView, anchor, +1)
	}
	return shiftViewStart(view, weeksInView, anchor, -1)
}

// shiftViewStart moves anchor by dir logical views. dir is +1 or -1.
func shiftViewStart(view View, weeksInView int, anchor Date, dir int) Date {
	switch view {
	case ViewMonth:
		if weeksInView == 6 {
			return anchor.FirstOfMonth().AddMonths(dir)
		}
		return anchor.AddDays(dir * MonthCells(weeksInView))
	case ViewYear:
		return Date{Year: anchor.Year + dir, Month: time.January, Day: 1}
	case ViewDecade:
		return Date{Year: decadeStart(anchor.Year) + dir*10, Month: time.January, Day: 1}
	case ViewCentury:
		return Date{Year: centuryStart(anchor.Year) + dir*100, Month: time.January, Day: 1}
	default:
		return anchor
	}
}

// CanMoveNext reports whether advancing from the given visible window would
// still show at least one in-range date. The window that the advance would
// reveal (two views ahead of the earliest shown view in multi-view mode)
// must start on or before maxDate. For six-row month grids only whole months
// matter: leading and trailing cells never block navigation.
func CanMoveNext(view View, weeksInView int, maxDate Date, visible []Date, multiView bool) bool {
	if len(visible) == 0 {
		return false
	}
	if maxDate.IsZero() {
		return true
	}
	anchor := latestAnchor(view, weeksInView, visible)
	revealed := shiftViewStart(view, weeksInView, anchor, +1)
	return revealed.SameOrBefore(maxDate)
}

// CanMovePrevious is the backwards counterpart of CanMoveNext: the last date
// of the view revealed by retreating must fall on or after minDate.
func CanMovePrevious(view View, weeksInView int, minDate Date, visible []Date, multiView bool) bool {
	if len(visible) == 0 {
		return false
	}
	if minDate.IsZero() {
		return true
	}
	anchor := earliestAnchor(view, weeksInView, visible)
	revealedEnd := anchor.AddDays(-1)
	return revealedEnd.SameOrAfter(minDate)
}

// windowAnchors extracts the logical start date of each concatenated view in
// a visible window. Multi-view windows concatenate two views, possibly in
// reverse order under RTL, so anchors are returned unordered.
func windowAnchors(view View, weeksInView int, visible []Date) []Date {
	chunk := chunkSize(view, weeksInView)
	if chunk <= 0 || len(visible) < chunk {
		return []Date{anchorOfChunk(view, visible)}
	}
	anchors := make([]Date, 0, 2)
	for i := 0; i+chunk <= len(visible); i += chunk {
		anchors = append(anchors, anchorOfChunk(view, visible[i:i+chunk]))
	}
	return anchors
}

func earliestAnchor(view View, weeksInView int, visible []Date) Date {
	anchors := windowAnchors(view, weeksInView, visible)
	earliest := anchors[0]
	for _, a := range anchors[1:] {
		earliest = Min(earliest, a)
	}
	return earliest
}

func latestAnchor(view View, weeksInView int, visible []Date) Date {
	anchors := windowAnchors(view, weeksInView, visible)
	latest := anchors[0]
	for _, a := range anchors[1:] {
		latest = Max(latest, a)
	}
	return latest
}

func chunkSize(view View, weeksInView int) int {
	switch view {
	case ViewMonth:
		return MonthCells(weeksInView)
	case ViewYear:
		return YearViewCells
	default:
		return DecadeViewCells + 1
	}
}

// anchorOfChunk derives the logical start of a single view's window. For
// six-row month grids the center cell decides the month, so leading and
// trailing cells don't shift the anchor.
func anchorOfChunk(view View, chunk []Date) Date {
	if len(chunk) == 0 {
		return Date{}
	}
	switch view {
	case ViewMonth:
		if len(chunk) == MonthCells(6) {
			return chunk[len(chunk)/2].FirstOfMonth()
		}
		return Min(chunk[0], chunk[len(chunk)-1])
	case ViewYear:
		return Date{Year: chunk[0].Year, Month: time.January, Day: 1}
	case ViewDecade:
		return Date{Year: decadeStart(chunk[0].Year), Month: time.January, Day: 1}
	default:
		return Date{Year: centuryStart(chunk[0].Year), Month: time.January, Day: 1}
	}
}

// CellEnd returns the last sub-date of the cell starting at cellStart for the
// given view level: the same day at month level, the last day of the month in
// a year view, December 31st in a decade view, and December 31st of the
// decade's final year in a century view.
func CellEnd(cellStart Date, view View) Date {
	switch view {
	case ViewYear:
		return cellStart.LastOfMonth()
	case ViewDecade:
		return Date{Year: cellStart.Year, Month: time.December, Day: 31}
	case ViewCentury:
		return Date{Year: decadeStart(cellStart.Year) + 9, Month: time.December, Day: 31}
	default:
		return cellStart
	}
}

// CellStep returns the calendar distance between adjacent cells at the given
// view level, expressed as a function to apply to a date.
func CellStep(view View, cells int) func(Date) Date {
	switch view {
	case ViewYear:
		return func(d Date) Date { return d.AddMonths(cells) }
	case ViewDecade:
		return func(d Date) Date { return d.AddYears(cells) }
	case ViewCentury:
		return func(d Date) Date { return d.AddYears(cells * 10) }
	default:
		return func(d Date) Date { return d.AddDays(cells) }
	}
}

// HeaderText renders the view header label for a window anchored at anchor.
func HeaderText(view View, anchor Date) string {
	switch view {
	case ViewMonth:
		return anchor.Time().Format("January 2006")
	case ViewYear:
		return fmt.Sprintf("%d", anchor.Year)
	case ViewDecade:
		start := decadeStart(anchor.Year)
		return fmt.Sprintf("%d - %d", start, start+9)
	case ViewCentury:
		start := centuryStart(anchor.Year)
		return fmt.Sprintf("%d - %d", start, start+99)
	default:
		return ""
	}
}

func decadeStart(year int) int {
	return year - year%10
}

func centuryStart(year int) int {
	return year - year%100
}
