package pickerui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swipecal/swipecal/internal/carousel"
	"github.com/swipecal/swipecal/internal/config"
	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/input"
	"github.com/swipecal/swipecal/internal/logger"
	"github.com/swipecal/swipecal/internal/picker"
)

// Model is the main picker model.
type Model struct {
	// Core state
	settings config.Settings
	ctrl     *picker.Controller
	mgr      *carousel.Manager

	// UI state
	focused      date.Date
	today        date.Date
	headerSticky string

	// Component state
	keys   input.KeyMap
	help   help.Model
	styles Styles

	// Dimensions
	width  int
	height int

	quitting bool

	// headerDirty is set by the carousel's header-refresh callback during
	// Tick; shared by pointer because bubbletea copies the model by value.
	headerDirty *bool

	log *logger.Logger
}

// NewModel builds the picker from resolved settings.
func NewModel(settings config.Settings, log *logger.Logger) (Model, error) {
	ctrl, err := picker.NewController(picker.Options{
		Min:         settings.Min,
		Max:         settings.Max,
		View:        settings.View,
		DisplayDate: settings.DisplayDate,
		Mode:        settings.Mode,
		Logger:      log,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		settings: settings,
		ctrl:     ctrl,
		today:    date.Today(),
		keys:     input.DefaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(settings.Theme),
		width:    80,
		height:   24,
		log:      log,
	}

	// The manager re-anchors the display date to the window start, so the
	// requested date is captured for initial focus first.
	initialFocus := ctrl.DisplayDate()

	m.headerDirty = new(bool)
	dirty := m.headerDirty
	m.mgr = carousel.New(carousel.Config{
		WeeksInView:     settings.WeeksInView,
		FirstDayOfWeek:  settings.FirstDayOfWeek,
		Min:             settings.Min,
		Max:             settings.Max,
		MultiView:       settings.MultiView,
		RTL:             settings.RTL,
		Vertical:        settings.Vertical,
		ViewportExtent:  1,
		Logger:          log,
		OnHeaderRefresh: func() { *dirty = true },
	}, ctrl)

	m.focused = initialFocus.Clamp(settings.Min, settings.Max)
	m.headerSticky = weekdayHeader(settings.FirstDayOfWeek)
	return m, nil
}

// inertTrailing reports whether target is a leading/trailing cell that
// ignores picks under the current policy. The window half containing the
// target is judged against its own anchor, mirroring the render layer.
func (m Model) inertTrailing(target date.Date) bool {
	if m.settings.TrailingSelectable || m.mgr.View() != date.ViewMonth {
		return false
	}
	dates := m.mgr.Current().Dates
	chunk := len(dates)
	if m.settings.MultiView && chunk%2 == 0 {
		chunk /= 2
	}
	for i := 0; i+chunk <= len(dates); i += chunk {
		window := dates[i : i+chunk]
		if target.Before(window[0]) || target.After(window[len(window)-1]) {
			continue
		}
		anchor := anchorOf(window, date.ViewMonth)
		return target.Month != anchor.Month || target.Year != anchor.Year
	}
	return false
}

// windowEnd is the last selectable date the current window covers.
func (m Model) windowEnd() date.Date {
	dates := m.mgr.Current().Dates
	if len(dates) == 0 {
		return date.Date{}
	}
	return date.CellEnd(dates[len(dates)-1], m.mgr.View())
}

// Init satisfies the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// inputContext assembles the state a key press is judged against.
func (m Model) inputContext() input.Context {
	dates := m.mgr.Current().Dates
	var start, end date.Date
	if len(dates) > 0 {
		start = dates[0]
		end = date.CellEnd(dates[len(dates)-1], m.mgr.View())
	}
	return input.Context{
		Focused:     m.focused,
		View:        m.mgr.View(),
		WeeksInView: m.settings.WeeksInView,
		WindowStart: start,
		WindowEnd:   end,
		Min:         m.settings.Min,
		Max:         m.settings.Max,
		Rules:       m.settings.Rules(),
		CanNext:     m.mgr.CanMoveNext(),
		CanPrevious: m.mgr.CanMovePrevious(),
		RTL:         m.settings.RTL,
	}
}
