package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// helpSection represents a group of keybindings for display.
type helpSection struct {
	title string
	rows  [][]string // Each row: [keys, description]
}

// getHelpSections returns the help content organized into sections.
// Text is derived from binding.Help() so the key map stays the single source.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "PANEL",
			rows: [][]string{
				{keys.Up.Help().Key, keys.Up.Help().Desc},
				{keys.Left.Help().Key, keys.Left.Help().Desc},
				{keys.Grow.Help().Key, keys.Grow.Help().Desc},
				{keys.Refresh.Help().Key, keys.Refresh.Help().Desc},
				{keys.Attach.Help().Key, keys.Attach.Help().Desc},
			},
		},
		{
			title: "SCENE",
			rows: [][]string{
				{keys.Theme.Help().Key, keys.Theme.Help().Desc},
				{keys.Pause.Help().Key, keys.Pause.Help().Desc},
				{keys.Copy.Help().Key, keys.Copy.Help().Desc},
				{keys.Help.Help().Key, keys.Help.Help().Desc},
				{keys.Quit.Help().Key, keys.Quit.Help().Desc},
			},
		},
	}
}

// renderHelpOverlay builds the bordered help box. Placement is left to the
// caller.
func renderHelpOverlay(keys KeyMap) string {
	sections := getHelpSections(keys)
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		renderHelpSectionTable(sections[0]),
		"    ",
		renderHelpSectionTable(sections[1]),
	)

	title := styleHelpTitle().Render("✦ GLASS HELP ✦")
	dividerWidth := lipgloss.Width(columns)
	if dividerWidth < 30 {
		dividerWidth = 30
	}
	divider := styleHelpDesc().Render(strings.Repeat("─", dividerWidth))
	footer := styleHelpFooter().Render("Press any key to close")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		divider,
		"",
		columns,
		"",
		footer,
	)
	return styleHelpOverlay().Render(content)
}

// renderHelpSectionTable renders a single help section using lipgloss/table.
func renderHelpSectionTable(section helpSection) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey().Width(12)
			}
			return styleHelpDesc()
		}).
		Rows(section.rows...)

	header := styleHelpTitle().Render(section.title)
	underline := styleHelpDesc().Render(strings.Repeat("─", len(section.title)))

	// Hidden borders add an empty top row.
	tableStr := strings.TrimPrefix(t.String(), "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		underline,
		tableStr,
	)
}
