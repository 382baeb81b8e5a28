package picker

import (
	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/logger"
	"github.com/swipecal/swipecal/internal/selection"
	apperrors "github.com/swipecal/swipecal/pkg/errors"
)

// Property names a controller field for change notifications. The values
// match the property names hosts see in callbacks and logs.
type Property string

const (
	PropertyView           Property = "view"
	PropertyDisplayDate    Property = "displayDate"
	PropertySelectedDate   Property = "selectedDate"
	PropertySelectedDates  Property = "selectedDates"
	PropertySelectedRange  Property = "selectedRange"
	PropertySelectedRanges Property = "selectedRanges"
	PropertyVisibleDates   Property = "visibleDates"
)

// PropertyEvent is delivered to listeners once per logical property change.
type PropertyEvent struct {
	Property Property
}

// ListenerFunc receives property change events.
type ListenerFunc func(PropertyEvent)

// Options configures a controller at construction time.
type Options struct {
	// Min and Max bound the display date and every selection. Zero values
	// are unbounded. Min after Max is a configuration error.
	Min date.Date
	Max date.Date
	// View is the initial zoom level.
	View date.View
	// DisplayDate is the initial anchor; it is clamped into [Min, Max].
	// Zero means today.
	DisplayDate date.Date
	// Mode selects the active selection container.
	Mode selection.Mode
	// Logger is optional; a nil logger disables controller logging.
	Logger *logger.Logger

	// OnSelectionChanged is invoked after the active selection changes,
	// at most once per logical change.
	OnSelectionChanged func(selection.Selection)
	// OnViewChanged is invoked after the visible window or zoom level
	// changes, at most once per logical change.
	OnViewChanged func(visible []date.Date, view date.View)
}

type registration struct {
	id string
	fn ListenerFunc
}

// Controller is the single source of truth for the picker's authoritative
// view, display date and selection. All mutation goes through its setters so
// the one-notification-per-change contract holds; the carousel never writes
// its fields directly. It is not safe for concurrent use: the picker runs a
// single-threaded, event-driven model.
type Controller struct {
	min, max date.Date
	view     date.View
	display  date.Date
	sel      selection.Selection
	visible  []date.Date

	listeners []registration
	log       *logger.Logger

	onSelectionChanged func(selection.Selection)
	onViewChanged      func([]date.Date, date.View)
}

// NewController validates opts and returns a controller. A Min after Max is
// reported as a fatal configuration error, not recovered.
func NewController(opts Options) (*Controller, error) {
	if !opts.Min.IsZero() && !opts.Max.IsZero() && opts.Min.After(opts.Max) {
		return nil, apperrors.NewValidationError("min_date",
			"min_date must not be after max_date", nil)
	}
	display := opts.DisplayDate
	if display.IsZero() {
		display = date.Today()
	}
	view := opts.View
	if !view.Valid() {
		view = date.ViewMonth
	}
	c := &Controller{
		min:                opts.Min,
		max:                opts.Max,
		view:               view,
		display:            display.Clamp(opts.Min, opts.Max),
		sel:                selection.New(opts.Mode),
		log:                opts.Logger,
		onSelectionChanged: opts.OnSelectionChanged,
		onViewChanged:      opts.OnViewChanged,
	}
	return c, nil
}

// AddListener registers fn under id. Registration is idempotent: a second
// registration under the same id replaces the function but keeps the
// original notification position.
func (c *Controller) AddListener(id string, fn ListenerFunc) {
	for i, reg := range c.listeners {
		if reg.id == id {
			c.listeners[i].fn = fn
			return
		}
	}
	c.listeners = append(c.listeners, registration{id: id, fn: fn})
}

// RemoveListener deregisters id. Removing an unknown id is a no-op.
func (c *Controller) RemoveListener(id string) {
	for i, reg := range c.listeners {
		if reg.id == id {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// notify fans an event out in registration order. The listener slice is
// copied first so a listener mutating registrations mid-notification cannot
// corrupt the walk.
func (c *Controller) notify(p Property) {
	if c.log != nil {
		c.log.WithFields(map[string]any{"property": string(p)}).Debug("property changed")
	}
	regs := append([]registration(nil), c.listeners...)
	for _, reg := range regs {
		reg.fn(PropertyEvent{Property: p})
	}
}

// Bounds returns the configured min and max dates.
func (c *Controller) Bounds() (min, max date.Date) {
	return c.min, c.max
}

// View returns the current zoom level.
func (c *Controller) View() date.View {
	return c.view
}

// SetView changes the zoom level. Setting the current value is a no-op.
func (c *Controller) SetView(v date.View) {
	if !v.Valid() || v == c.view {
		return
	}
	c.view = v
	c.notify(PropertyView)
	if c.onViewChanged != nil {
		c.onViewChanged(append([]date.Date(nil), c.visible...), c.view)
	}
}

// DisplayDate returns the current anchor date.
func (c *Controller) DisplayDate() date.Date {
	return c.display
}

// SetDisplayDate moves the anchor. Values outside [Min, Max] are clamped to
// the nearer bound before any observer sees them.
func (c *Controller) SetDisplayDate(d date.Date) {
	d = d.Clamp(c.min, c.max)
	if d.Same(c.display) {
		return
	}
	c.display = d
	c.notify(PropertyDisplayDate)
}

// Mode returns the active selection mode.
func (c *Controller) Mode() selection.Mode {
	return c.sel.Mode
}

// SetMode switches the selection mode, resetting every container when the
// mode actually changes.
func (c *Controller) SetMode(mode selection.Mode) {
	if mode == c.sel.Mode {
		return
	}
	c.setSelection(c.sel.WithMode(mode))
}

// Selection returns a deep copy of the active selection.
func (c *Controller) Selection() selection.Selection {
	return c.sel.Clone()
}

// SetSelection replaces the active selection, firing one event named after
// the container the current mode observes. Equal values fire nothing.
func (c *Controller) SetSelection(sel selection.Selection) {
	c.setSelection(sel)
}

func (c *Controller) setSelection(sel selection.Selection) {
	if c.sel.Equal(sel) {
		return
	}
	c.sel = sel.Clone()
	c.notify(selectionProperty(c.sel.Mode))
	if c.onSelectionChanged != nil {
		c.onSelectionChanged(c.sel.Clone())
	}
}

// SetSelectedDate sets the single-mode container.
func (c *Controller) SetSelectedDate(d *date.Date) {
	sel := c.sel.Clone()
	sel.Date = d
	c.setSelection(sel)
}

// SetSelectedDates sets the multiple-mode container.
func (c *Controller) SetSelectedDates(dates []date.Date) {
	sel := c.sel.Clone()
	sel.Dates = append([]date.Date(nil), dates...)
	c.setSelection(sel)
}

// SetSelectedRange sets the range-mode container.
func (c *Controller) SetSelectedRange(r *selection.DateRange) {
	sel := c.sel.Clone()
	sel.Range = r
	c.setSelection(sel)
}

// SetSelectedRanges sets the multi-range container.
func (c *Controller) SetSelectedRanges(ranges []selection.DateRange) {
	sel := c.sel.Clone()
	sel.Ranges = append([]selection.DateRange(nil), ranges...)
	c.setSelection(sel)
}

func selectionProperty(mode selection.Mode) Property {
	switch mode {
	case selection.ModeMultiple:
		return PropertySelectedDates
	case selection.ModeRange, selection.ModeExtendableRange:
		return PropertySelectedRange
	case selection.ModeMultiRange:
		return PropertySelectedRanges
	default:
		return PropertySelectedDate
	}
}

// VisibleDates returns the current visible window.
func (c *Controller) VisibleDates() []date.Date {
	return append([]date.Date(nil), c.visible...)
}

// SetVisibleDates records the window the carousel currently shows.
func (c *Controller) SetVisibleDates(dates []date.Date) {
	if sameDates(c.visible, dates) {
		return
	}
	c.visible = append([]date.Date(nil), dates...)
	c.notify(PropertyVisibleDates)
	if c.onViewChanged != nil {
		c.onViewChanged(append([]date.Date(nil), c.visible...), c.view)
	}
}

func sameDates(a, b []date.Date) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}

// Snapshot builds a fresh state exchange unit from the current values. The
// returned snapshot shares nothing with the controller.
func (c *Controller) Snapshot() State {
	st := stateFromSelection(c.sel)
	st.CurrentDate = c.display
	st.View = c.view
	st.VisibleDates = append([]date.Date(nil), c.visible...)
	return st
}

// Apply commits a snapshot back into the controller. Each field goes through
// its setter, so deduplication and per-property notification hold; pushing a
// snapshot equal to the current state fires nothing.
func (c *Controller) Apply(st State) {
	c.SetView(st.View)
	c.SetDisplayDate(st.CurrentDate)
	c.SetVisibleDates(st.VisibleDates)
	c.SetSelection(st.Selection(c.sel.Mode))
}
