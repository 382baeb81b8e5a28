package pickerui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/swipecal/swipecal/internal/input"
	"github.com/swipecal/swipecal/internal/selection"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case frameMsg:
		if m.mgr.Tick(time.Time(msg)) {
			return m, frameCmd()
		}
		m.focused = m.focused.Clamp(m.mgr.Current().Anchor, m.windowEnd())
		if *m.headerDirty {
			*m.headerDirty = false
			return m, func() tea.Msg { return headerRefreshMsg{} }
		}
		return m, nil

	case headerRefreshMsg:
		m.headerSticky = weekdayHeader(m.settings.FirstDayOfWeek)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := input.Interpret(msg, m.keys, m.inputContext())

	switch intent.Action {
	case input.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case input.ActionFocusMove:
		m.focused = intent.Target
		switch intent.Page {
		case 1:
			m.mgr.MoveNext()
			return m, frameCmd()
		case -1:
			m.mgr.MovePrevious()
			return m, frameCmd()
		}
		return m, nil

	case input.ActionExtend:
		m.focused = intent.Target
		if !m.inertTrailing(intent.Target) {
			rules := m.settings.Rules()
			next, changed := selection.Pick(m.ctrl.Selection(), intent.Target, m.mgr.View(), rules)
			if changed {
				m.ctrl.SetSelection(next)
			}
		}
		switch intent.Page {
		case 1:
			m.mgr.MoveNext()
			return m, frameCmd()
		case -1:
			m.mgr.MovePrevious()
			return m, frameCmd()
		}
		return m, nil

	case input.ActionPick:
		if m.inertTrailing(intent.Target) {
			return m, nil
		}
		rules := m.settings.Rules()
		next, changed := selection.Pick(m.ctrl.Selection(), intent.Target, m.mgr.View(), rules)
		if changed {
			m.ctrl.SetSelection(next)
		}
		return m, nil

	case input.ActionPageNext:
		m.mgr.MoveNext()
		return m, frameCmd()

	case input.ActionPagePrevious:
		m.mgr.MovePrevious()
		return m, frameCmd()

	case input.ActionToday:
		m.mgr.JumpTo(intent.Target)
		m.focused = intent.Target
		return m, nil

	case input.ActionZoomIn:
		m.mgr.ZoomIn(intent.Target)
		m.focused = m.ctrl.DisplayDate()
		return m, nil

	case input.ActionZoomOut:
		m.mgr.ZoomOut()
		m.focused = m.ctrl.DisplayDate()
		return m, nil

	case input.ActionSetView:
		m.mgr.SetView(intent.View)
		m.focused = m.ctrl.DisplayDate()
		return m, nil
	}

	return m, nil
}
