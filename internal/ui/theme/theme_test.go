package theme

import (
	"image/color"
	"testing"
)

func TestBuiltinThemesRegistered(t *testing.T) {
	want := []string{"dracula", "gruvbox", "nord", "tokyonight"}
	got := Available()
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Available() = %v, want %v", got, want)
		}
	}
}

func TestPalettesParse(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			if !SetTheme(name) {
				t.Fatalf("SetTheme(%q) failed", name)
			}
			th := Current()
			if len(th.Backdrop()) < 2 {
				t.Errorf("backdrop needs at least two stops, got %d", len(th.Backdrop()))
			}
			if a := th.Tint().A; a == 0 || a == 0xff {
				t.Errorf("tint should be translucent, alpha=%d", a)
			}
			if th.Chip().A != 0xff {
				t.Errorf("chip should be opaque")
			}
		})
	}
}

func TestCycleThemeWraps(t *testing.T) {
	names := Available()
	if !SetTheme(names[len(names)-1]) {
		t.Fatal("SetTheme failed")
	}
	if got := CycleTheme(); got != names[0] {
		t.Fatalf("CycleTheme() = %q, want wrap to %q", got, names[0])
	}
	if CurrentName() != names[0] {
		t.Fatalf("CurrentName() = %q after cycle", CurrentName())
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000", 0x40)
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c != (color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x40}) {
		t.Fatalf("ParseHex = %+v", c)
	}
	for _, bad := range []string{"", "ff8000", "#ff80", "#gg0000"} {
		if _, err := ParseHex(bad, 0xff); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}
