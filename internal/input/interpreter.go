package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/selection"
)

// Action is the kind of intent a key press resolves to.
type Action int

const (
	ActionNone Action = iota
	// ActionFocusMove moves the focused cell to Target, paging the carousel
	// by Page first when Target lies outside the current window.
	ActionFocusMove
	// ActionExtend moves the focused cell like ActionFocusMove and picks the
	// landing cell, growing the active selection.
	ActionExtend
	// ActionPick selects the focused cell.
	ActionPick
	ActionPageNext
	ActionPagePrevious
	ActionToday
	// ActionZoomIn drills into the focused cell one view level down.
	ActionZoomIn
	ActionZoomOut
	// ActionSetView jumps straight to the View level.
	ActionSetView
	ActionQuit
)

// Intent is the resolved meaning of one key press. Invalid presses resolve to
// ActionNone rather than an error.
type Intent struct {
	Action Action
	Target date.Date
	View   date.View
	// Page is -1, 0 or +1: the carousel step needed to reveal Target.
	Page int
}

// Context is the picker state a key press is interpreted against. The
// interpreter is pure: it reads the context and emits an intent, and the
// caller applies it.
type Context struct {
	Focused     date.Date
	View        date.View
	WeeksInView int
	// WindowStart and WindowEnd delimit the dates the current window shows.
	WindowStart date.Date
	WindowEnd   date.Date
	Min         date.Date
	Max         date.Date
	Rules       selection.Rules
	// CanNext and CanPrevious gate focus moves that would cross a window
	// edge, mirroring the carousel's own navigation gates.
	CanNext     bool
	CanPrevious bool
	// RTL swaps the horizontal arrows' calendar direction.
	RTL bool
}

// columnsFor is the grid width cursor rows move over. Month grids are a week
// wide; year-level grids render three columns.
func columnsFor(view date.View) int {
	if view == date.ViewMonth {
		return 7
	}
	return 3
}

// Interpret resolves one key press. Unknown keys and moves that would leave
// [Min, Max] resolve to ActionNone.
func Interpret(msg tea.KeyMsg, km KeyMap, ctx Context) Intent {
	switch {
	case key.Matches(msg, km.Quit):
		return Intent{Action: ActionQuit}

	case key.Matches(msg, km.Pick):
		return Intent{Action: ActionPick, Target: ctx.Focused}

	case key.Matches(msg, km.Today):
		return Intent{Action: ActionToday, Target: date.Today().Clamp(ctx.Min, ctx.Max)}

	case key.Matches(msg, km.ZoomIn):
		if _, ok := ctx.View.ZoomIn(); !ok {
			return Intent{}
		}
		return Intent{Action: ActionZoomIn, Target: ctx.Focused}

	case key.Matches(msg, km.ZoomOut):
		if _, ok := ctx.View.ZoomOut(); !ok {
			return Intent{}
		}
		return Intent{Action: ActionZoomOut}

	case key.Matches(msg, km.PageNext):
		if !ctx.CanNext {
			return Intent{}
		}
		return Intent{Action: ActionPageNext}

	case key.Matches(msg, km.PagePrevious):
		if !ctx.CanPrevious {
			return Intent{}
		}
		return Intent{Action: ActionPagePrevious}

	case key.Matches(msg, km.ViewMonth):
		return Intent{Action: ActionSetView, View: date.ViewMonth}
	case key.Matches(msg, km.ViewYear):
		return Intent{Action: ActionSetView, View: date.ViewYear}
	case key.Matches(msg, km.ViewDecade):
		return Intent{Action: ActionSetView, View: date.ViewDecade}
	case key.Matches(msg, km.ViewCentury):
		return Intent{Action: ActionSetView, View: date.ViewCentury}

	case key.Matches(msg, km.ExtendLeft):
		return extend(moveFocus(ctx, -horizontalStep(ctx)))
	case key.Matches(msg, km.ExtendRight):
		return extend(moveFocus(ctx, horizontalStep(ctx)))
	case key.Matches(msg, km.ExtendUp):
		return extend(moveFocus(ctx, -columnsFor(ctx.View)))
	case key.Matches(msg, km.ExtendDown):
		return extend(moveFocus(ctx, columnsFor(ctx.View)))

	case key.Matches(msg, km.Left):
		return moveFocus(ctx, -horizontalStep(ctx))
	case key.Matches(msg, km.Right):
		return moveFocus(ctx, horizontalStep(ctx))
	case key.Matches(msg, km.Up):
		return moveFocus(ctx, -columnsFor(ctx.View))
	case key.Matches(msg, km.Down):
		return moveFocus(ctx, columnsFor(ctx.View))
	}
	return Intent{}
}

func extend(in Intent) Intent {
	if in.Action == ActionFocusMove {
		in.Action = ActionExtend
	}
	return in
}

func horizontalStep(ctx Context) int {
	if ctx.RTL {
		return -1
	}
	return 1
}

// moveFocus steps the focused cell by cells, skipping blackout dates in the
// movement direction. Landing outside [Min, Max], or needing a page the
// carousel cannot take, resolves to ActionNone.
func moveFocus(ctx Context, cells int) Intent {
	if cells == 0 {
		return Intent{}
	}
	step := date.CellStep(ctx.View, cells)
	unit := date.CellStep(ctx.View, sign(cells))

	target := step(ctx.Focused)
	for skips := 0; ctx.Rules.IsBlackout != nil && ctx.Rules.IsBlackout(target); skips++ {
		if skips > 366 {
			return Intent{}
		}
		target = unit(target)
	}
	if !ctx.Min.IsZero() && target.Before(ctx.Min) {
		return Intent{}
	}
	if !ctx.Max.IsZero() && target.After(ctx.Max) {
		return Intent{}
	}

	page := 0
	if target.Before(ctx.WindowStart) {
		page = -1
		if !ctx.CanPrevious {
			return Intent{}
		}
	}
	if target.After(ctx.WindowEnd) {
		page = 1
		if !ctx.CanNext {
			return Intent{}
		}
	}
	return Intent{Action: ActionFocusMove, Target: target, Page: page}
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
