package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/swipecal/swipecal/internal/config"
	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/logger"
	"github.com/swipecal/swipecal/internal/selection"
	"github.com/swipecal/swipecal/internal/tui/pickerui"
)

func runPicker(flags *rootFlags) error {
	settings, err := resolveSettings(flags)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(flags.verbose, settings.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("swipecal needs an interactive terminal")
	}

	m, err := pickerui.NewModel(settings, log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "picker execution failed")
		return fmt.Errorf("failed to run picker: %w", err)
	}
	return nil
}

// resolveSettings loads the config file when given and lets flags override
// individual fields.
func resolveSettings(flags *rootFlags) (config.Settings, error) {
	var cfg *config.Config
	if flags.configPath != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return config.Settings{}, err
		}
		cfg = parsed
	}

	settings, err := config.ToSettings(cfg)
	if err != nil {
		return config.Settings{}, err
	}

	if flags.view != "" {
		if settings.View, err = date.ParseView(flags.view); err != nil {
			return config.Settings{}, err
		}
	}
	if flags.mode != "" {
		if settings.Mode, err = selection.ParseMode(flags.mode); err != nil {
			return config.Settings{}, err
		}
	}
	if flags.rtl {
		settings.RTL = true
	}
	if flags.multiView {
		settings.MultiView = true
	}
	if flags.weeks != 0 {
		if flags.weeks < 1 || flags.weeks > 6 {
			return config.Settings{}, fmt.Errorf("weeks must be between 1 and 6, got %d", flags.weeks)
		}
		settings.WeeksInView = flags.weeks
	}
	if flags.firstDay != "" {
		wd, err := config.ParseWeekday(flags.firstDay)
		if err != nil {
			return config.Settings{}, err
		}
		settings.FirstDayOfWeek = wd
	}

	return settings, nil
}

// newLogger builds the diagnostic logger. Interactive runs log to a file (or
// nowhere) so output never corrupts the TUI.
func newLogger(verbose bool, cfg config.Logging) (*logger.Logger, func(), error) {
	noop := func() {}
	if !verbose && !cfg.Verbose {
		return logger.Nop(), noop, nil
	}

	var w io.Writer = os.Stderr
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, err
		}
		log, err := logger.New(logger.Options{Level: "debug", Writer: f})
		if err != nil {
			f.Close()
			return nil, noop, err
		}
		return log, func() { f.Close() }, nil
	}

	log, err := logger.New(logger.Options{Level: "debug", Writer: w})
	if err != nil {
		return nil, noop, err
	}
	return log, noop, nil
}
