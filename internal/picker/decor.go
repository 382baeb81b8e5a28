package picker

import (
	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/selection"
)

// CellFlags are the per-cell decoration hints handed to the render layer.
// The core computes them; drawing them is the renderer's business.
type CellFlags struct {
	Selected  bool
	InRange   bool
	RangeEdge bool
	Today     bool
	Blackout  bool
	Disabled  bool
	Trailing  bool
}

// DecorateOptions carries the context a cell is judged against.
type DecorateOptions struct {
	// Anchor identifies the logical period the window belongs to, so
	// leading/trailing cells can be told apart at month level.
	Anchor date.Date
	View   date.View
	Rules  selection.Rules
	Today  date.Date
	// TrailingSelectable keeps leading/trailing cells interactive. When
	// false they render but ignore picks.
	TrailingSelectable bool
}

// Decorate computes the decoration flags for one cell.
func Decorate(cell date.Date, sel selection.Selection, opts DecorateOptions) CellFlags {
	var f CellFlags

	if opts.View == date.ViewMonth {
		f.Trailing = cell.Month != opts.Anchor.Month || cell.Year != opts.Anchor.Year
	}
	f.Today = cell.Same(opts.Today)
	if opts.Rules.IsBlackout != nil && opts.Rules.IsBlackout(cell) {
		f.Blackout = true
	}
	f.Disabled = !opts.Rules.Allowed(cell) || (f.Trailing && !opts.TrailingSelectable)

	switch sel.Mode {
	case selection.ModeSingle:
		f.Selected = sel.Date != nil && sel.Date.Same(cell)
	case selection.ModeMultiple:
		for _, d := range sel.Dates {
			if d.Same(cell) {
				f.Selected = true
				break
			}
		}
	case selection.ModeRange, selection.ModeExtendableRange:
		if sel.Range != nil {
			markRange(&f, *sel.Range, cell)
		}
	case selection.ModeMultiRange:
		for _, r := range sel.Ranges {
			markRange(&f, r, cell)
			if f.Selected || f.InRange {
				break
			}
		}
	}
	return f
}

func markRange(f *CellFlags, r selection.DateRange, cell date.Date) {
	if cell.Same(r.Start) || cell.Same(r.EffectiveEnd()) {
		f.Selected = true
		f.RangeEdge = true
		return
	}
	if r.Contains(cell) {
		f.InRange = true
	}
}
