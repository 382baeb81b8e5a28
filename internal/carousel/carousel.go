package carousel

import (
	"time"

	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/logger"
	"github.com/swipecal/swipecal/internal/picker"
)

// Transition durations. Programmatic navigation animates slower than a
// committed gesture, which has momentum to honor.
const (
	ProgrammaticDuration = 500 * time.Millisecond
	GestureDuration      = 250 * time.Millisecond
)

// commitFraction is the share of the viewport extent a drag must cover on
// release to commit the navigation instead of snapping back.
const commitFraction = 0.5

// Buffer is one of the three window slots. Anchor is the logical start date
// of the window's (first) view; Dates is the full visible window, including
// the adjacent view's dates in multi-view mode.
type Buffer struct {
	Anchor date.Date
	Dates  []date.Date
}

// Config configures a Manager.
type Config struct {
	// WeeksInView is the number of week rows a month window shows, 1 to 6.
	// Zero means 6.
	WeeksInView int
	// FirstDayOfWeek sets the column the month grid starts on.
	FirstDayOfWeek time.Weekday
	// Min and Max bound navigation. Zero values are unbounded.
	Min date.Date
	Max date.Date
	// MultiView doubles each window by concatenating the adjacent view.
	MultiView bool
	// RTL flips the carousel's forward direction to point backwards in time
	// and reverses multi-view concatenation order.
	RTL bool
	// Vertical marks the navigation axis. Only month-level vertical
	// navigation triggers weekday header refreshes.
	Vertical bool
	// ViewportExtent is the size of one page along the navigation axis, in
	// whatever unit the renderer measures offsets in. Zero means 1.
	ViewportExtent float64
	// Clock samples transition time. Nil means the system clock.
	Clock Clock
	// Logger is optional.
	Logger *logger.Logger

	// OnHeaderRefresh fires after a vertical month-level navigation lands on
	// a different month, so the sticky weekday header can repaint. It never
	// fires redundantly.
	OnHeaderRefresh func()
}

type direction int

const (
	dirNone     direction = 0
	dirForward  direction = 1
	dirBackward direction = -1
)

// transition is one animation in flight. dir == dirNone is a snap-back.
type transition struct {
	dir      direction
	start    time.Time
	duration time.Duration
	from, to float64
	gesture  bool
}

// Manager owns the three-slot window carousel and drives its transitions.
// It is the only writer of the buffers; the controller stays the single
// source of truth for everything else, written exclusively through its
// setters via snapshot sync. Not safe for concurrent use.
type Manager struct {
	cfg   Config
	ctrl  *picker.Controller
	log   *logger.Logger
	clock Clock

	view    date.View
	buffers [3]Buffer
	current int

	trans    *transition
	offset   float64
	dragging bool
}

// New builds a manager around ctrl's current display date and view, fills the
// three buffers and pushes the initial visible window to the controller.
func New(cfg Config, ctrl *picker.Controller) *Manager {
	if cfg.WeeksInView <= 0 || cfg.WeeksInView > 6 {
		cfg.WeeksInView = 6
	}
	if cfg.ViewportExtent <= 0 {
		cfg.ViewportExtent = 1
	}
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}
	m := &Manager{
		cfg:   cfg,
		ctrl:  ctrl,
		log:   cfg.Logger,
		clock: clock,
		view:  ctrl.View(),
	}
	m.rebuild(ctrl.DisplayDate())
	m.sync()
	return m
}

// View returns the manager's current zoom level.
func (m *Manager) View() date.View { return m.view }

// Current returns the logically-current buffer.
func (m *Manager) Current() Buffer { return m.buffers[m.current] }

// Previous returns the buffer one carousel step behind current.
func (m *Manager) Previous() Buffer { return m.buffers[(m.current+2)%3] }

// Next returns the buffer one carousel step ahead of current.
func (m *Manager) Next() Buffer { return m.buffers[(m.current+1)%3] }

// CurrentIndex exposes the rotating index for tests and diagnostics.
func (m *Manager) CurrentIndex() int { return m.current }

// Offset is the raw offset along the navigation axis, zero at rest.
func (m *Manager) Offset() float64 { return m.offset }

// InTransition reports whether an animation is in flight.
func (m *Manager) InTransition() bool { return m.trans != nil }

// CanMoveNext reports whether a forward step stays within bounds. Under RTL
// the carousel's forward direction points backwards in time, so the min bound
// gates it instead of the max.
func (m *Manager) CanMoveNext() bool {
	visible := m.buffers[m.current].Dates
	if m.cfg.RTL {
		return date.CanMovePrevious(m.view, m.cfg.WeeksInView, m.cfg.Min, visible, m.cfg.MultiView)
	}
	return date.CanMoveNext(m.view, m.cfg.WeeksInView, m.cfg.Max, visible, m.cfg.MultiView)
}

// CanMovePrevious is the backward counterpart of CanMoveNext.
func (m *Manager) CanMovePrevious() bool {
	visible := m.buffers[m.current].Dates
	if m.cfg.RTL {
		return date.CanMoveNext(m.view, m.cfg.WeeksInView, m.cfg.Max, visible, m.cfg.MultiView)
	}
	return date.CanMovePrevious(m.view, m.cfg.WeeksInView, m.cfg.Min, visible, m.cfg.MultiView)
}

// MoveNext starts a forward transition. Requests while a transition is in
// flight or beyond the bounds are ignored, not queued.
func (m *Manager) MoveNext() {
	m.move(dirForward, false)
}

// MovePrevious starts a backward transition under the same rules as MoveNext.
func (m *Manager) MovePrevious() {
	m.move(dirBackward, false)
}

func (m *Manager) move(dir direction, gesture bool) {
	if m.trans != nil || m.dragging {
		m.debug("navigation ignored, transition in flight")
		return
	}
	if dir == dirForward && !m.CanMoveNext() {
		m.debug("navigation ignored, at max bound")
		return
	}
	if dir == dirBackward && !m.CanMovePrevious() {
		m.debug("navigation ignored, at min bound")
		return
	}
	m.startTransition(dir, gesture)
}

func (m *Manager) startTransition(dir direction, gesture bool) {
	duration := ProgrammaticDuration
	if gesture {
		duration = GestureDuration
	}
	to := 0.0
	switch dir {
	case dirForward:
		to = -m.cfg.ViewportExtent
	case dirBackward:
		to = m.cfg.ViewportExtent
	}
	m.trans = &transition{
		dir:      dir,
		start:    m.clock.Now(),
		duration: duration,
		from:     m.offset,
		to:       to,
		gesture:  gesture,
	}
}

// Tick samples the in-flight transition at now, updating the offset and
// completing the transition when its duration has elapsed. It returns true
// while an animation is still running.
func (m *Manager) Tick(now time.Time) bool {
	if m.trans == nil {
		return false
	}
	elapsed := now.Sub(m.trans.start)
	if elapsed >= m.trans.duration {
		m.complete()
		return false
	}
	t := float64(elapsed) / float64(m.trans.duration)
	t = t * t * (3 - 2*t)
	m.offset = m.trans.from + (m.trans.to-m.trans.from)*t
	return true
}

// complete lands the transition: rotate the index, refill the slot that just
// went stale, zero the offset and push the new window to the controller.
func (m *Manager) complete() {
	dir := m.trans.dir
	m.trans = nil
	m.offset = 0

	if dir == dirNone {
		return
	}

	before := m.buffers[m.current].Anchor
	switch dir {
	case dirForward:
		m.current = (m.current + 1) % 3
		next := (m.current + 1) % 3
		anchor := m.nextAnchor(m.buffers[m.current].Anchor)
		m.buffers[next] = m.buildBuffer(anchor)
	case dirBackward:
		m.current = (m.current + 2) % 3
		prev := (m.current + 2) % 3
		anchor := m.previousAnchor(m.buffers[m.current].Anchor)
		m.buffers[prev] = m.buildBuffer(anchor)
	}
	after := m.buffers[m.current].Anchor

	m.sync()
	if m.cfg.OnHeaderRefresh != nil && m.cfg.Vertical && m.view == date.ViewMonth &&
		(before.Month != after.Month || before.Year != after.Year) {
		m.cfg.OnHeaderRefresh()
	}
}

// DragStart begins gesture tracking. Starting a drag during an animation is
// ignored, like any other navigation request.
func (m *Manager) DragStart() {
	if m.trans != nil {
		return
	}
	m.dragging = true
}

// DragUpdate accumulates a drag delta. The offset is clamped to zero on the
// side where navigation is out of bounds, so the window never exposes a page
// that cannot be committed.
func (m *Manager) DragUpdate(delta float64) {
	if !m.dragging {
		return
	}
	m.offset += delta
	if m.offset < 0 && !m.CanMoveNext() {
		m.offset = 0
	}
	if m.offset > 0 && !m.CanMovePrevious() {
		m.offset = 0
	}
}

// DragEnd releases the gesture. Displacement past half the viewport extent
// commits; failing that, a fling of at least one viewport extent per second
// commits in the fling's direction. Anything else snaps back. The
// displacement check runs first, so a slow drag past the threshold wins even
// when the release velocity points the other way.
func (m *Manager) DragEnd(velocity float64) {
	if !m.dragging {
		return
	}
	m.dragging = false

	dir := dirNone
	switch {
	case m.offset <= -commitFraction*m.cfg.ViewportExtent:
		dir = dirForward
	case m.offset >= commitFraction*m.cfg.ViewportExtent:
		dir = dirBackward
	case velocity <= -m.cfg.ViewportExtent:
		dir = dirForward
	case velocity >= m.cfg.ViewportExtent:
		dir = dirBackward
	}

	if dir == dirForward && !m.CanMoveNext() {
		dir = dirNone
	}
	if dir == dirBackward && !m.CanMovePrevious() {
		dir = dirNone
	}
	if dir == dirNone && m.offset == 0 {
		return
	}
	m.startTransition(dir, true)
}

// SetView switches the zoom level. Not an animated transition: the in-flight
// animation, if any, is dropped, all three buffers are discarded and rebuilt
// around the display date for the new level.
func (m *Manager) SetView(v date.View) {
	if !v.Valid() || v == m.view {
		return
	}
	m.trans = nil
	m.dragging = false
	m.offset = 0
	m.view = v
	m.rebuild(m.ctrl.DisplayDate())
	m.ctrl.SetView(v)
	m.sync()
}

// JumpTo recenters the carousel on d without animation. Used for "go to
// today" and for landing after a drill-down or drill-up.
func (m *Manager) JumpTo(d date.Date) {
	min, max := m.ctrl.Bounds()
	d = d.Clamp(min, max)
	m.trans = nil
	m.dragging = false
	m.offset = 0
	m.rebuild(d)
	m.sync()
}

// ZoomOut moves one level up (month to year and so on), keeping the display
// date. At century level it is a no-op.
func (m *Manager) ZoomOut() {
	if v, ok := m.view.ZoomOut(); ok {
		m.SetView(v)
	}
}

// ZoomIn drills into the cell starting at cellStart one level down. At month
// level it is a no-op.
func (m *Manager) ZoomIn(cellStart date.Date) {
	v, ok := m.view.ZoomIn()
	if !ok {
		return
	}
	min, max := m.ctrl.Bounds()
	m.ctrl.SetDisplayDate(cellStart.Clamp(min, max))
	m.SetView(v)
}

// HeaderText returns the header label for the current window.
func (m *Manager) HeaderText() string {
	return date.HeaderText(m.view, m.buffers[m.current].Anchor)
}

// rebuild recomputes all three buffers around d's view for the current level.
func (m *Manager) rebuild(d date.Date) {
	anchor := m.viewAnchor(d)
	m.current = 0
	m.buffers[0] = m.buildBuffer(anchor)
	m.buffers[1] = m.buildBuffer(m.nextAnchor(anchor))
	m.buffers[2] = m.buildBuffer(m.previousAnchor(anchor))
}

// viewAnchor normalizes a date to the logical start of its view window.
func (m *Manager) viewAnchor(d date.Date) date.Date {
	switch m.view {
	case date.ViewMonth:
		if m.cfg.WeeksInView == 6 {
			return d.FirstOfMonth()
		}
		return d.WeekStart(m.cfg.FirstDayOfWeek)
	default:
		window := date.VisibleDatesForYearLevel(d, m.view)
		if len(window) == 0 {
			return d
		}
		return window[0]
	}
}

// nextAnchor and previousAnchor follow the carousel's forward axis, which RTL
// flips relative to calendar time.
func (m *Manager) nextAnchor(anchor date.Date) date.Date {
	return date.NextViewStart(m.view, m.cfg.WeeksInView, anchor, m.cfg.RTL)
}

func (m *Manager) previousAnchor(anchor date.Date) date.Date {
	return date.PreviousViewStart(m.view, m.cfg.WeeksInView, anchor, m.cfg.RTL)
}

// buildBuffer computes the visible window for one buffer. Multi-view mode
// concatenates the adjacent calendar view's window, in reverse order under
// RTL so the later view still renders on the trailing side.
func (m *Manager) buildBuffer(anchor date.Date) Buffer {
	first := m.singleWindow(anchor)
	if !m.cfg.MultiView {
		return Buffer{Anchor: anchor, Dates: first}
	}
	laterAnchor := date.NextViewStart(m.view, m.cfg.WeeksInView, anchor, false)
	second := m.singleWindow(laterAnchor)
	if m.cfg.RTL {
		return Buffer{Anchor: anchor, Dates: append(second, first...)}
	}
	return Buffer{Anchor: anchor, Dates: append(first, second...)}
}

func (m *Manager) singleWindow(anchor date.Date) []date.Date {
	if m.view == date.ViewMonth {
		return date.VisibleDatesForMonth(anchor, m.cfg.FirstDayOfWeek, date.MonthCells(m.cfg.WeeksInView))
	}
	return date.VisibleDatesForYearLevel(anchor, m.view)
}

// sync pushes the current window into the controller through the snapshot
// protocol, so every field change goes through a setter and dedupes.
func (m *Manager) sync() {
	cur := m.buffers[m.current]
	st := m.ctrl.Snapshot()
	st.CurrentDate = cur.Anchor
	st.View = m.view
	st.VisibleDates = append([]date.Date(nil), cur.Dates...)
	m.ctrl.Apply(st)
}

func (m *Manager) debug(msg string) {
	if m.log != nil {
		m.log.WithFields(map[string]any{
			"view":   m.view.String(),
			"anchor": m.buffers[m.current].Anchor.String(),
		}).Debug(msg)
	}
}
