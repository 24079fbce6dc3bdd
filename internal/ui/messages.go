package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"glassui/internal/config"
)

// frameMsg drives one host frame: posted callbacks, pre-draw, render.
type frameMsg struct{}

func scheduleFrame(fps int) tea.Cmd {
	if fps <= 0 {
		fps = config.GetInt(config.KeyFPS)
	}
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
