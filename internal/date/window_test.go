package date

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleDatesForMonthSixRows(t *testing.T) {
	anchor := New(2024, time.March, 15)
	dates := VisibleDatesForMonth(anchor, time.Sunday, 42)

	require.Len(t, dates, 42)
	// March 1st 2024 is a Friday; the Sunday-aligned grid starts Feb 25.
	assert.Equal(t, New(2024, time.February, 25), dates[0])
	assert.Equal(t, New(2024, time.April, 6), dates[41])

	// Consecutive days throughout.
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDays(1), dates[i])
	}
}

func TestVisibleDatesForMonthLengthInvariant(t *testing.T) {
	anchor := New(2024, time.March, 15)
	for weeks := 1; weeks <= 6; weeks++ {
		dates := VisibleDatesForMonth(anchor, time.Monday, MonthCells(weeks))
		assert.Len(t, dates, weeks*7)
	}
}

func TestVisibleDatesForMonthPartialWeeks(t *testing.T) {
	// 2024-03-13 is a Wednesday; a two-week window starts at its week start.
	anchor := New(2024, time.March, 13)
	dates := VisibleDatesForMonth(anchor, time.Sunday, MonthCells(2))

	require.Len(t, dates, 14)
	assert.Equal(t, New(2024, time.March, 10), dates[0])
	assert.Equal(t, New(2024, time.March, 23), dates[13])
}

func TestVisibleDatesForYearLevel(t *testing.T) {
	anchor := New(2024, time.July, 9)

	year := VisibleDatesForYearLevel(anchor, ViewYear)
	require.Len(t, year, 12)
	assert.Equal(t, New(2024, time.January, 1), year[0])
	assert.Equal(t, New(2024, time.December, 1), year[11])

	decade := VisibleDatesForYearLevel(anchor, ViewDecade)
	require.Len(t, decade, 11, "ten cells plus overflow sentinel")
	assert.Equal(t, New(2020, time.January, 1), decade[0])
	assert.Equal(t, New(2029, time.January, 1), decade[9])
	assert.Equal(t, New(2030, time.January, 1), decade[10])

	century := VisibleDatesForYearLevel(anchor, ViewCentury)
	require.Len(t, century, 11)
	assert.Equal(t, New(2000, time.January, 1), century[0])
	assert.Equal(t, New(2090, time.January, 1), century[9])
	assert.Equal(t, New(2100, time.January, 1), century[10])
}

func TestNextPreviousViewStart(t *testing.T) {
	anchor := New(2024, time.March, 15)

	assert.Equal(t, New(2024, time.April, 1), NextViewStart(ViewMonth, 6, anchor, false))
	assert.Equal(t, New(2024, time.February, 1), PreviousViewStart(ViewMonth, 6, anchor, false))

	// Partial-week month windows page by the window length.
	weekAnchor := New(2024, time.March, 10)
	assert.Equal(t, New(2024, time.March, 24), NextViewStart(ViewMonth, 2, weekAnchor, false))
	assert.Equal(t, New(2024, time.February, 25), PreviousViewStart(ViewMonth, 2, weekAnchor, false))

	assert.Equal(t, New(2025, time.January, 1), NextViewStart(ViewYear, 6, anchor, false))
	assert.Equal(t, New(2030, time.January, 1), NextViewStart(ViewDecade, 6, anchor, false))
	assert.Equal(t, New(2100, time.January, 1), NextViewStart(ViewCentury, 6, anchor, false))
	assert.Equal(t, New(2010, time.January, 1), PreviousViewStart(ViewDecade, 6, anchor, false))
	assert.Equal(t, New(1900, time.January, 1), PreviousViewStart(ViewCentury, 6, anchor, false))
}

func TestViewStartRTLSwapsDirection(t *testing.T) {
	anchor := New(2024, time.March, 15)
	assert.Equal(t, New(2024, time.February, 1), NextViewStart(ViewMonth, 6, anchor, true))
	assert.Equal(t, New(2024, time.April, 1), PreviousViewStart(ViewMonth, 6, anchor, true))
}

func TestCanMoveNextAtMaxDate(t *testing.T) {
	maxDate := New(2024, time.December, 31)
	visible := VisibleDatesForMonth(New(2024, time.December, 1), time.Sunday, 42)

	assert.False(t, CanMoveNext(ViewMonth, 6, maxDate, visible, false))

	// One month earlier navigation is still allowed.
	nov := VisibleDatesForMonth(New(2024, time.November, 1), time.Sunday, 42)
	assert.True(t, CanMoveNext(ViewMonth, 6, maxDate, nov, false))
}

func TestCanMovePreviousAtMinDate(t *testing.T) {
	minDate := New(2020, time.January, 1)
	visible := VisibleDatesForMonth(New(2020, time.January, 15), time.Sunday, 42)

	// The January grid shows trailing December 2019 cells, but only whole
	// months count: retreating would reveal December 2019 entirely.
	assert.False(t, CanMovePrevious(ViewMonth, 6, minDate, visible, false))

	feb := VisibleDatesForMonth(New(2020, time.February, 10), time.Sunday, 42)
	assert.True(t, CanMovePrevious(ViewMonth, 6, minDate, feb, false))
}

func TestCanMoveUnboundedWithoutLimits(t *testing.T) {
	visible := VisibleDatesForMonth(New(2024, time.June, 1), time.Sunday, 42)
	assert.True(t, CanMoveNext(ViewMonth, 6, Date{}, visible, false))
	assert.True(t, CanMovePrevious(ViewMonth, 6, Date{}, visible, false))
}

func TestCanMoveNextMultiView(t *testing.T) {
	maxDate := New(2024, time.December, 31)

	// Multi-view November+December: the advance would reveal January 2025.
	nov := VisibleDatesForMonth(New(2024, time.November, 1), time.Sunday, 42)
	dec := VisibleDatesForMonth(New(2024, time.December, 1), time.Sunday, 42)
	visible := append(append([]Date{}, nov...), dec...)

	assert.False(t, CanMoveNext(ViewMonth, 6, maxDate, visible, true))

	// The same pair reversed (RTL concatenation order) behaves identically.
	reversed := append(append([]Date{}, dec...), nov...)
	assert.False(t, CanMoveNext(ViewMonth, 6, maxDate, reversed, true))

	oct := VisibleDatesForMonth(New(2024, time.October, 1), time.Sunday, 42)
	visible = append(append([]Date{}, oct...), nov...)
	assert.True(t, CanMoveNext(ViewMonth, 6, maxDate, visible, true))
}

func TestCanMoveYearLevels(t *testing.T) {
	maxDate := New(2029, time.December, 31)
	decade := VisibleDatesForYearLevel(New(2024, time.June, 1), ViewDecade)
	assert.False(t, CanMoveNext(ViewDecade, 6, maxDate, decade, false))

	minDate := New(2020, time.January, 1)
	assert.False(t, CanMovePrevious(ViewDecade, 6, minDate, decade, false))

	year := VisibleDatesForYearLevel(New(2024, time.June, 1), ViewYear)
	assert.True(t, CanMoveNext(ViewYear, 6, maxDate, year, false))
	assert.True(t, CanMovePrevious(ViewYear, 6, minDate, year, false))
}

func TestCellEnd(t *testing.T) {
	assert.Equal(t, New(2024, time.March, 5), CellEnd(New(2024, time.March, 5), ViewMonth))
	assert.Equal(t, New(2024, time.February, 29), CellEnd(New(2024, time.February, 1), ViewYear))
	assert.Equal(t, New(2024, time.December, 31), CellEnd(New(2024, time.January, 1), ViewDecade))
	assert.Equal(t, New(2029, time.December, 31), CellEnd(New(2020, time.January, 1), ViewCentury))
}

func TestCellStep(t *testing.T) {
	d := New(2024, time.March, 15)
	assert.Equal(t, d.AddDays(3), CellStep(ViewMonth, 3)(d))
	assert.Equal(t, d.AddMonths(1), CellStep(ViewYear, 1)(d))
	assert.Equal(t, d.AddYears(-1), CellStep(ViewDecade, -1)(d))
	assert.Equal(t, d.AddYears(10), CellStep(ViewCentury, 1)(d))
}

func TestHeaderText(t *testing.T) {
	anchor := New(2024, time.March, 15)
	assert.Equal(t, "March 2024", HeaderText(ViewMonth, anchor))
	assert.Equal(t, "2024", HeaderText(ViewYear, anchor))
	assert.Equal(t, "2020 - 2029", HeaderText(ViewDecade, anchor))
	assert.Equal(t, "2000 - 2099", HeaderText(ViewCentury, anchor))
}

func TestViewZoom(t *testing.T) {
	v, ok := ViewCentury.ZoomIn()
	require.True(t, ok)
	assert.Equal(t, ViewDecade, v)

	v, ok = ViewMonth.ZoomIn()
	assert.False(t, ok)
	assert.Equal(t, ViewMonth, v)

	v, ok = ViewMonth.ZoomOut()
	require.True(t, ok)
	assert.Equal(t, ViewYear, v)

	v, ok = ViewCentury.ZoomOut()
	assert.False(t, ok)
	assert.Equal(t, ViewCentury, v)
}

func TestParseView(t *testing.T) {
	for name, want := range map[string]View{
		"month": ViewMonth, "year": ViewYear, "decade": ViewDecade, "century": ViewCentury,
	} {
		got, err := ParseView(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseView("week")
	assert.Error(t, err)
}
