package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if err := m.layout(msg.Width, msg.Height); err != nil {
			m.lastError = err.Error()
		}
		return m, nil
	case frameMsg:
		m.step()
		return m, scheduleFrame(m.cfg.FPS)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// The help overlay swallows the key that closes it.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = true
		return m, nil
	}
	if !m.ready {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveBy(0, -moveStep)
	case key.Matches(msg, m.keys.Down):
		m.moveBy(0, moveStep)
	case key.Matches(msg, m.keys.Left):
		m.moveBy(-moveStep, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveBy(moveStep, 0)
	case key.Matches(msg, m.keys.Grow):
		m.resizeBy(resizeStepX, resizeStepY)
	case key.Matches(msg, m.keys.Shrink):
		m.resizeBy(-resizeStepX, -resizeStepY)
	case key.Matches(msg, m.keys.Refresh):
		m.refreshPanel()
	case key.Matches(msg, m.keys.Attach):
		m.toggleAttach()
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Copy):
		m.copyStatus()
	}
	return m, nil
}
