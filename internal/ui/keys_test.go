package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"k", runes("k"), km.Up},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"j", runes("j"), km.Down},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, km.Left},
		{"h", runes("h"), km.Left},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, km.Right},
		{"l", runes("l"), km.Right},
		{"plus", runes("+"), km.Grow},
		{"equals", runes("="), km.Grow},
		{"minus", runes("-"), km.Shrink},
		{"r", runes("r"), km.Refresh},
		{"a", runes("a"), km.Attach},
		{"t", runes("t"), km.Theme},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, km.Pause},
		{"y", runes("y"), km.Copy},
		{"?", runes("?"), km.Help},
		{"q", runes("q"), km.Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%s should match %q", tt.name, tt.binding.Help().Desc)
			}
		})
	}
}

func TestKeyMapHasNoDuplicateKeys(t *testing.T) {
	km := DefaultKeyMap()
	seen := map[string]string{}
	for _, b := range []key.Binding{
		km.Up, km.Down, km.Left, km.Right, km.Grow, km.Shrink,
		km.Refresh, km.Attach, km.Theme, km.Pause, km.Copy, km.Help, km.Quit,
	} {
		for _, k := range b.Keys() {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Help().Desc)
			}
			seen[k] = b.Help().Desc
		}
	}
}

func TestHelpOverlayListsEveryBinding(t *testing.T) {
	out := ansi.Strip(renderHelpOverlay(DefaultKeyMap()))
	for _, section := range getHelpSections(DefaultKeyMap()) {
		if !strings.Contains(out, section.title) {
			t.Errorf("help missing section %q", section.title)
		}
		for _, row := range section.rows {
			if !strings.Contains(out, row[1]) {
				t.Errorf("help missing %q", row[1])
			}
		}
	}
}

func TestTrimHintsToFit(t *testing.T) {
	all := renderHints(footerHints)
	if got := trimHintsToFit(footerHints, 1000); len(got) != len(footerHints) {
		t.Fatalf("wide bar dropped hints: %d", len(got))
	}
	got := trimHintsToFit(footerHints, ansi.StringWidth(all)/2)
	if len(got) == 0 || len(got) >= len(footerHints) {
		t.Fatalf("expected a partial hint list, got %d", len(got))
	}
	if got[0] != footerHints[0] {
		t.Fatal("the most important hint should survive")
	}
	if got := trimHintsToFit(footerHints, 0); len(got) != 0 {
		t.Fatalf("zero width should drop every hint, got %d", len(got))
	}
}
