package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/picker"
)

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func day(y int, m time.Month, d int) date.Date {
	return date.New(y, m, d)
}

func newTestManager(t *testing.T, cfg Config, opts picker.Options) (*Manager, *picker.Controller, *fakeClock) {
	t.Helper()
	if opts.DisplayDate.IsZero() {
		opts.DisplayDate = day(2024, time.March, 15)
	}
	ctrl, err := picker.NewController(opts)
	require.NoError(t, err)
	clock := newFakeClock()
	cfg.Clock = clock
	return New(cfg, ctrl), ctrl, clock
}

// finish runs the in-flight transition to completion.
func finish(m *Manager, clock *fakeClock, d time.Duration) {
	clock.advance(d)
	m.Tick(clock.Now())
}

func TestNewFillsThreeConsecutiveWindows(t *testing.T) {
	m, ctrl, _ := newTestManager(t, Config{}, picker.Options{})

	assert.Equal(t, day(2024, time.March, 1), m.Current().Anchor)
	assert.Equal(t, day(2024, time.April, 1), m.Next().Anchor)
	assert.Equal(t, day(2024, time.February, 1), m.Previous().Anchor)
	assert.Len(t, m.Current().Dates, 42)

	// Initial window already pushed to the controller.
	assert.Equal(t, day(2024, time.March, 1), ctrl.DisplayDate())
	assert.Len(t, ctrl.VisibleDates(), 42)
}

func TestMoveNextRotationClosure(t *testing.T) {
	m, ctrl, clock := newTestManager(t, Config{}, picker.Options{})
	start := m.CurrentIndex()

	for i := 0; i < 3; i++ {
		m.MoveNext()
		require.True(t, m.InTransition())
		finish(m, clock, ProgrammaticDuration)
		require.False(t, m.InTransition())
	}

	assert.Equal(t, start, m.CurrentIndex(), "cycle length is 3")
	assert.Equal(t, day(2024, time.June, 1), m.Current().Anchor)

	// The slot's content equals a window computed fresh for the new anchor.
	want := date.VisibleDatesForMonth(day(2024, time.June, 1), time.Sunday, 42)
	assert.Equal(t, want, m.Current().Dates)
	assert.Equal(t, want, ctrl.VisibleDates())
	assert.Equal(t, 0.0, m.Offset())
}

func TestMovePreviousRewinds(t *testing.T) {
	m, _, clock := newTestManager(t, Config{}, picker.Options{})

	m.MovePrevious()
	finish(m, clock, ProgrammaticDuration)

	assert.Equal(t, day(2024, time.February, 1), m.Current().Anchor)
	assert.Equal(t, day(2024, time.January, 1), m.Previous().Anchor)
	assert.Equal(t, day(2024, time.March, 1), m.Next().Anchor)
}

func TestRequestsDuringTransitionIgnoredNotQueued(t *testing.T) {
	m, _, clock := newTestManager(t, Config{}, picker.Options{})

	m.MoveNext()
	m.MoveNext()
	m.MovePrevious()
	finish(m, clock, ProgrammaticDuration)

	assert.Equal(t, day(2024, time.April, 1), m.Current().Anchor)
	assert.False(t, m.InTransition(), "ignored requests must not queue up")
}

func TestMoveNextAtMaxBoundIsNoOp(t *testing.T) {
	m, _, _ := newTestManager(t, Config{Max: day(2024, time.December, 31)}, picker.Options{
		Max:         day(2024, time.December, 31),
		DisplayDate: day(2024, time.December, 15),
	})

	assert.False(t, m.CanMoveNext())
	m.MoveNext()
	assert.False(t, m.InTransition())
	assert.Equal(t, day(2024, time.December, 1), m.Current().Anchor)
}

func TestMovePreviousAtMinBoundIsNoOp(t *testing.T) {
	m, _, _ := newTestManager(t, Config{
		Min: day(2020, time.January, 1),
		Max: day(2020, time.January, 31),
	}, picker.Options{
		Min:         day(2020, time.January, 1),
		Max:         day(2020, time.January, 31),
		DisplayDate: day(2020, time.January, 15),
	})

	assert.False(t, m.CanMovePrevious())
	m.MovePrevious()
	assert.False(t, m.InTransition())
	assert.Equal(t, day(2020, time.January, 1), m.Current().Anchor)
}

func TestTickEasesOffsetTowardTarget(t *testing.T) {
	m, _, clock := newTestManager(t, Config{ViewportExtent: 100}, picker.Options{})

	m.MoveNext()
	clock.advance(ProgrammaticDuration / 2)
	assert.True(t, m.Tick(clock.Now()))
	assert.Less(t, m.Offset(), 0.0)
	assert.Greater(t, m.Offset(), -100.0)

	clock.advance(ProgrammaticDuration)
	assert.False(t, m.Tick(clock.Now()))
	assert.Equal(t, 0.0, m.Offset(), "offset resets on completion")
}

func TestDragCommitPastHalfExtent(t *testing.T) {
	m, _, clock := newTestManager(t, Config{ViewportExtent: 100}, picker.Options{})

	m.DragStart()
	m.DragUpdate(-30)
	m.DragUpdate(-25)
	m.DragEnd(0)

	require.True(t, m.InTransition())
	finish(m, clock, GestureDuration)
	assert.Equal(t, day(2024, time.April, 1), m.Current().Anchor)
}

func TestDragSnapBackUnderThreshold(t *testing.T) {
	m, _, clock := newTestManager(t, Config{ViewportExtent: 100}, picker.Options{})

	m.DragStart()
	m.DragUpdate(-40)
	m.DragEnd(0)

	require.True(t, m.InTransition())
	finish(m, clock, GestureDuration)
	assert.Equal(t, day(2024, time.March, 1), m.Current().Anchor)
	assert.Equal(t, 0.0, m.Offset())
}

func TestFlingCommitsRegardlessOfDisplacement(t *testing.T) {
	m, _, clock := newTestManager(t, Config{ViewportExtent: 100}, picker.Options{})

	m.DragStart()
	m.DragUpdate(-5)
	m.DragEnd(-150) // well past one extent per second

	require.True(t, m.InTransition())
	finish(m, clock, GestureDuration)
	assert.Equal(t, day(2024, time.April, 1), m.Current().Anchor)
}

func TestDisplacementWinsOverOpposingFling(t *testing.T) {
	m, _, clock := newTestManager(t, Config{ViewportExtent: 100}, picker.Options{})

	m.DragStart()
	m.DragUpdate(-60)
	// Release velocity points backward, but the drag already crossed the
	// forward threshold; displacement is checked first.
	m.DragEnd(120)

	finish(m, clock, GestureDuration)
	assert.Equal(t, day(2024, time.April, 1), m.Current().Anchor)
}

func TestDragClampedAtBoundary(t *testing.T) {
	m, _, _ := newTestManager(t, Config{
		ViewportExtent: 100,
		Max:            day(2024, time.March, 31),
	}, picker.Options{
		Max:         day(2024, time.March, 31),
		DisplayDate: day(2024, time.March, 15),
	})

	m.DragStart()
	m.DragUpdate(-80)
	assert.Equal(t, 0.0, m.Offset(), "cannot drag toward an out-of-range page")

	m.DragEnd(-500)
	assert.False(t, m.InTransition())
	assert.Equal(t, day(2024, time.March, 1), m.Current().Anchor)
}

func TestSetViewDiscardsBuffersWithoutAnimation(t *testing.T) {
	m, ctrl, _ := newTestManager(t, Config{}, picker.Options{})

	m.MoveNext() // in flight, must be dropped
	m.SetView(date.ViewYear)

	assert.False(t, m.InTransition())
	assert.Equal(t, date.ViewYear, ctrl.View())
	assert.Equal(t, day(2024, time.January, 1), m.Current().Anchor)
	assert.Len(t, m.Current().Dates, date.YearViewCells)
	assert.Equal(t, day(2025, time.January, 1), m.Next().Anchor)
	assert.Equal(t, day(2023, time.January, 1), m.Previous().Anchor)
}

func TestMultiViewConcatenatesAdjacentWindow(t *testing.T) {
	m, _, _ := newTestManager(t, Config{MultiView: true}, picker.Options{})

	dates := m.Current().Dates
	require.Len(t, dates, 84)
	march := date.VisibleDatesForMonth(day(2024, time.March, 1), time.Sunday, 42)
	april := date.VisibleDatesForMonth(day(2024, time.April, 1), time.Sunday, 42)
	assert.Equal(t, march, dates[:42])
	assert.Equal(t, april, dates[42:])
}

func TestMultiViewRTLReversesConcatenation(t *testing.T) {
	m, _, _ := newTestManager(t, Config{MultiView: true, RTL: true}, picker.Options{})

	dates := m.Current().Dates
	require.Len(t, dates, 84)
	march := date.VisibleDatesForMonth(day(2024, time.March, 1), time.Sunday, 42)
	april := date.VisibleDatesForMonth(day(2024, time.April, 1), time.Sunday, 42)
	assert.Equal(t, april, dates[:42])
	assert.Equal(t, march, dates[42:])
}

func TestRTLForwardMovesBackInTime(t *testing.T) {
	m, _, clock := newTestManager(t, Config{RTL: true}, picker.Options{})

	m.MoveNext()
	finish(m, clock, ProgrammaticDuration)
	assert.Equal(t, day(2024, time.February, 1), m.Current().Anchor)
}

func TestHeaderRefreshOnlyWhenMonthChanges(t *testing.T) {
	var refreshed int
	cfg := Config{
		WeeksInView:    1,
		Vertical:       true,
		ViewportExtent: 10,
	}
	cfg.OnHeaderRefresh = func() { refreshed++ }
	m, _, clock := newTestManager(t, cfg, picker.Options{
		DisplayDate: day(2024, time.March, 3),
	})

	// One-week windows: advancing within March must not refresh.
	m.MoveNext()
	finish(m, clock, ProgrammaticDuration)
	assert.Equal(t, 0, refreshed)

	// Keep advancing until the anchor leaves March.
	for m.Current().Anchor.Month == time.March {
		m.MoveNext()
		finish(m, clock, ProgrammaticDuration)
	}
	assert.Equal(t, 1, refreshed)
}

func TestJumpToRecentersWithoutAnimation(t *testing.T) {
	m, ctrl, _ := newTestManager(t, Config{}, picker.Options{})

	m.JumpTo(day(2030, time.July, 20))
	assert.False(t, m.InTransition())
	assert.Equal(t, day(2030, time.July, 1), m.Current().Anchor)
	assert.Equal(t, day(2030, time.July, 1), ctrl.DisplayDate())
}

func TestZoomInDrillsIntoCell(t *testing.T) {
	m, ctrl, _ := newTestManager(t, Config{}, picker.Options{View: date.ViewYear})

	require.Equal(t, date.ViewYear, m.View())
	m.ZoomIn(day(2024, time.June, 1))

	assert.Equal(t, date.ViewMonth, m.View())
	assert.Equal(t, date.ViewMonth, ctrl.View())
	assert.Equal(t, day(2024, time.June, 1), m.Current().Anchor)
}

func TestZoomOutStopsAtCentury(t *testing.T) {
	m, _, _ := newTestManager(t, Config{}, picker.Options{View: date.ViewCentury})

	m.ZoomOut()
	assert.Equal(t, date.ViewCentury, m.View())
}
