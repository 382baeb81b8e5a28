package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/selection"
	apperrors "github.com/swipecal/swipecal/pkg/errors"
)

// Settings is the parsed, typed form of the document, ready to wire into the
// controller and the window manager.
type Settings struct {
	View        date.View
	Mode        selection.Mode
	DisplayDate date.Date
	Min         date.Date
	Max         date.Date

	WeeksInView    int
	FirstDayOfWeek time.Weekday

	MultiView          bool
	RTL                bool
	Vertical           bool
	TrailingSelectable bool

	IsBlackout func(date.Date) bool

	Theme   Theme
	Logging Logging
}

// Defaults returns the settings an empty document resolves to.
func Defaults() Settings {
	return Settings{
		View:               date.ViewMonth,
		Mode:               selection.ModeSingle,
		WeeksInView:        6,
		FirstDayOfWeek:     time.Sunday,
		TrailingSelectable: true,
	}
}

// ToSettings converts a validated document into typed settings, applying
// defaults for absent fields.
func ToSettings(cfg *Config) (Settings, error) {
	s := Defaults()
	if cfg == nil {
		return s, nil
	}

	var err error
	if cfg.Picker.View != "" {
		if s.View, err = date.ParseView(cfg.Picker.View); err != nil {
			return s, apperrors.NewValidationError("picker.view", err.Error(), err)
		}
	}
	if cfg.Picker.Mode != "" {
		if s.Mode, err = selection.ParseMode(cfg.Picker.Mode); err != nil {
			return s, apperrors.NewValidationError("picker.mode", err.Error(), err)
		}
	}
	if s.DisplayDate, err = parseOptionalDate(cfg.Picker.DisplayDate, "picker.display_date"); err != nil {
		return s, err
	}
	if s.Min, err = parseOptionalDate(cfg.Picker.MinDate, "picker.min_date"); err != nil {
		return s, err
	}
	if s.Max, err = parseOptionalDate(cfg.Picker.MaxDate, "picker.max_date"); err != nil {
		return s, err
	}
	if !s.Min.IsZero() && !s.Max.IsZero() && s.Min.After(s.Max) {
		return s, apperrors.NewValidationError("min_date",
			"min_date must not be after max_date", nil)
	}

	if cfg.Picker.WeeksInView != 0 {
		s.WeeksInView = cfg.Picker.WeeksInView
	}
	if cfg.Picker.FirstDayOfWeek != "" {
		if s.FirstDayOfWeek, err = ParseWeekday(cfg.Picker.FirstDayOfWeek); err != nil {
			return s, apperrors.NewValidationError("picker.first_day_of_week", err.Error(), err)
		}
	}
	s.MultiView = cfg.Picker.MultiView
	s.RTL = cfg.Picker.RTL
	s.Vertical = cfg.Picker.Vertical
	if cfg.Picker.TrailingSelectable != nil {
		s.TrailingSelectable = *cfg.Picker.TrailingSelectable
	}

	if s.IsBlackout, err = blackoutFunc(cfg.Blackout); err != nil {
		return s, err
	}

	s.Theme = cfg.Theme
	s.Logging = cfg.Logging
	return s, nil
}

// Rules assembles the selection rules the settings imply.
func (s Settings) Rules() selection.Rules {
	return selection.Rules{
		Toggle:     true,
		Min:        s.Min,
		Max:        s.Max,
		IsBlackout: s.IsBlackout,
	}
}

func parseOptionalDate(raw, field string) (date.Date, error) {
	if raw == "" {
		return date.Date{}, nil
	}
	d, err := date.Parse(raw)
	if err != nil {
		return date.Date{}, apperrors.NewValidationError(field, err.Error(), err)
	}
	return d, nil
}

// blackoutFunc compiles the blackout lists into a single membership check.
func blackoutFunc(b Blackout) (func(date.Date) bool, error) {
	if len(b.Dates) == 0 && len(b.Weekdays) == 0 {
		return nil, nil
	}

	days := make(map[date.Date]struct{}, len(b.Dates))
	for _, raw := range b.Dates {
		d, err := date.Parse(raw)
		if err != nil {
			return nil, apperrors.NewValidationError("blackout.dates", err.Error(), err)
		}
		days[d] = struct{}{}
	}
	var weekdays [7]bool
	for _, raw := range b.Weekdays {
		wd, err := ParseWeekday(raw)
		if err != nil {
			return nil, apperrors.NewValidationError("blackout.weekdays", err.Error(), err)
		}
		weekdays[wd] = true
	}

	return func(d date.Date) bool {
		if _, ok := days[d]; ok {
			return true
		}
		return weekdays[d.Weekday()]
	}, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves a lowercase or capitalized English weekday name.
func ParseWeekday(raw string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(raw)]
	if !ok {
		return time.Sunday, fmt.Errorf("unknown weekday %q", raw)
	}
	return wd, nil
}
