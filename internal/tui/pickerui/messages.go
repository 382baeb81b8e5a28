package pickerui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg drives transition sampling while an animation is in flight.
type frameMsg time.Time

const frameInterval = time.Second / 60

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// headerRefreshMsg indicates the weekday header must repaint after a vertical
// month change.
type headerRefreshMsg struct{}
