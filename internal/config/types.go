package config

// Config represents the full picker configuration document.
type Config struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Picker      Picker   `yaml:"picker,omitempty"`
	Blackout    Blackout `yaml:"blackout,omitempty"`
	Theme       Theme    `yaml:"theme,omitempty"`
	Logging     Logging  `yaml:"logging,omitempty"`
}

// Picker holds the calendar behaviour settings.
type Picker struct {
	View        string `yaml:"view,omitempty" validate:"omitempty,pickerview"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,pickermode"`
	DisplayDate string `yaml:"display_date,omitempty" validate:"omitempty,pickerdate"`
	MinDate     string `yaml:"min_date,omitempty" validate:"omitempty,pickerdate"`
	MaxDate     string `yaml:"max_date,omitempty" validate:"omitempty,pickerdate"`

	WeeksInView    int    `yaml:"weeks_in_view,omitempty" validate:"omitempty,min=1,max=6"`
	FirstDayOfWeek string `yaml:"first_day_of_week,omitempty" validate:"omitempty,weekday"`

	MultiView bool `yaml:"multi_view,omitempty"`
	RTL       bool `yaml:"rtl,omitempty"`
	Vertical  bool `yaml:"vertical,omitempty"`
	// TrailingSelectable defaults to true, so absence must be told apart
	// from an explicit false.
	TrailingSelectable *bool `yaml:"trailing_selectable,omitempty"`
}

// Blackout lists dates the picker refuses to select.
type Blackout struct {
	Dates    []string `yaml:"dates,omitempty" validate:"omitempty,dive,pickerdate"`
	Weekdays []string `yaml:"weekdays,omitempty" validate:"omitempty,dive,weekday"`
}

// Theme holds the terminal color overrides. Values are ANSI color numbers or
// hex strings, passed through to lipgloss untouched.
type Theme struct {
	AccentColor   string `yaml:"accent_color,omitempty"`
	SelectedColor string `yaml:"selected_color,omitempty"`
	RangeColor    string `yaml:"range_color,omitempty"`
	TodayColor    string `yaml:"today_color,omitempty"`
	MutedColor    string `yaml:"muted_color,omitempty"`
}

// Logging controls the diagnostic output.
type Logging struct {
	Verbose bool   `yaml:"verbose,omitempty"`
	File    string `yaml:"file,omitempty"`
}
