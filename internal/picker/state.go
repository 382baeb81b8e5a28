package picker

import (
	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/selection"
)

// State is the exchange unit passed between the view-window manager and the
// controller on every sync. It is constructed fresh per call and never
// retained, so holders may read it without worrying about later mutation.
type State struct {
	CurrentDate    date.Date
	SelectedDate   *date.Date
	SelectedDates  []date.Date
	SelectedRange  *selection.DateRange
	SelectedRanges []selection.DateRange
	VisibleDates   []date.Date
	View           date.View
}

// Selection reassembles the tagged selection union for the given mode from
// the snapshot's flattened containers.
func (s State) Selection(mode selection.Mode) selection.Selection {
	sel := selection.Selection{
		Mode:   mode,
		Date:   s.SelectedDate,
		Dates:  s.SelectedDates,
		Range:  s.SelectedRange,
		Ranges: s.SelectedRanges,
	}
	return sel.Clone()
}

// stateFromSelection flattens a selection into the snapshot fields.
func stateFromSelection(sel selection.Selection) State {
	cp := sel.Clone()
	return State{
		SelectedDate:   cp.Date,
		SelectedDates:  cp.Dates,
		SelectedRange:  cp.Range,
		SelectedRanges: cp.Ranges,
	}
}
