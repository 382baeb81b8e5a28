package pickerui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/picker"
	"github.com/swipecal/swipecal/internal/selection"
)

// View renders the picker. It satisfies the tea.Model interface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.styles.Title.Render(m.mgr.HeaderText()),
	}
	if m.mgr.View() == date.ViewMonth {
		sections = append(sections, m.styles.Weekday.Render(m.headerSticky))
	}
	sections = append(sections,
		m.renderWindows(),
		m.styles.Status.Render(m.selectionSummary()),
		m.styles.Footer.Render(m.help.View(m.keys)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWindows draws the current buffer. Multi-view buffers hold two
// concatenated windows, drawn side by side in buffer order.
func (m Model) renderWindows() string {
	dates := m.mgr.Current().Dates
	chunk := len(dates)
	if m.settings.MultiView {
		chunk = len(dates) / 2
	}

	var grids []string
	for i := 0; i+chunk <= len(dates); i += chunk {
		grids = append(grids, m.renderGrid(dates[i:i+chunk]))
	}
	if len(grids) == 1 {
		return grids[0]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, grids...)
}

func (m Model) renderGrid(window []date.Date) string {
	view := m.mgr.View()
	cols := 7
	cells := window
	if view != date.ViewMonth {
		cols = 3
		// Decade and century windows carry a trailing sentinel cell.
		if view != date.ViewYear && len(cells) > date.DecadeViewCells {
			cells = cells[:date.DecadeViewCells]
		}
	}

	sel := m.ctrl.Selection()
	opts := picker.DecorateOptions{
		Anchor:             anchorOf(window, view),
		View:               view,
		Rules:              m.settings.Rules(),
		Today:              m.today,
		TrailingSelectable: m.settings.TrailingSelectable,
	}

	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := i + cols
		if end > len(cells) {
			end = len(cells)
		}
		var row []string
		for _, cell := range cells[i:end] {
			row = append(row, m.renderCell(cell, sel, opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(cell date.Date, sel selection.Selection, opts picker.DecorateOptions) string {
	flags := picker.Decorate(cell, sel, opts)
	text := cellText(cell, opts.View)

	style := m.styles.Cell
	switch {
	case cell.Same(m.focused):
		style = m.styles.Focused
	case flags.RangeEdge:
		style = m.styles.RangeEdge
	case flags.Selected:
		style = m.styles.Selected
	case flags.InRange:
		style = m.styles.InRange
	case flags.Blackout, flags.Disabled:
		style = m.styles.Disabled
	case flags.Today:
		style = m.styles.Today
	case flags.Trailing:
		style = m.styles.Muted
	}
	return style.Render(text)
}

func cellText(cell date.Date, view date.View) string {
	switch view {
	case date.ViewMonth:
		return fmt.Sprintf("%2d", cell.Day)
	case date.ViewYear:
		return cell.Month.String()[:3]
	case date.ViewDecade:
		return fmt.Sprintf("%d", cell.Year)
	default:
		return fmt.Sprintf("%ds", cell.Year)
	}
}

// anchorOf mirrors the carousel's anchor derivation for one rendered window.
func anchorOf(window []date.Date, view date.View) date.Date {
	if len(window) == 0 {
		return date.Date{}
	}
	if view == date.ViewMonth && len(window) == date.MonthCells(6) {
		return window[len(window)/2].FirstOfMonth()
	}
	return window[0]
}

func (m Model) selectionSummary() string {
	sel := m.ctrl.Selection()
	switch sel.Mode {
	case selection.ModeSingle:
		if sel.Date == nil {
			return "nothing selected"
		}
		return "selected: " + sel.Date.String()
	case selection.ModeMultiple:
		if len(sel.Dates) == 0 {
			return "nothing selected"
		}
		return fmt.Sprintf("selected: %d dates", len(sel.Dates))
	case selection.ModeRange, selection.ModeExtendableRange:
		if sel.Range == nil {
			return "nothing selected"
		}
		return "selected: " + sel.Range.String()
	case selection.ModeMultiRange:
		if len(sel.Ranges) == 0 {
			return "nothing selected"
		}
		parts := make([]string, len(sel.Ranges))
		for i, r := range sel.Ranges {
			parts[i] = r.String()
		}
		return "selected: " + strings.Join(parts, " ")
	}
	return ""
}

// weekdayHeader renders the sticky day-of-week labels starting on first.
func weekdayHeader(first time.Weekday) string {
	names := make([]string, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(first) + i) % 7)
		names[i] = wd.String()[:2]
	}
	return strings.Join(names, "  ")
}
