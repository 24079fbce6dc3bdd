package ui

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"glassui/internal/config"
	"glassui/internal/debug"
	"glassui/internal/glass"
	"glassui/internal/term"
	"glassui/internal/ui/theme"
)

const (
	minPanelWidth  = 16
	minPanelHeight = 14
	moveStep       = 2
	resizeStepX    = 4
	resizeStepY    = 2
	chipWidth      = 8
	chipHeight     = 4
	toastDuration  = 3 * time.Second
)

const captionMarkdown = `## Frosted glass

Whatever lies **behind** this panel is captured, saturated and blurred on every frame. Move it with the arrow keys, or press *a* to detach it.`

// Swapped out by tests.
var (
	writeClipboard = clipboard.WriteAll
	saveTheme      = config.SaveTheme
)

// Config configures the UI application.
type Config struct {
	Glass        glass.Config
	Blur         bool
	OutlineClip  bool
	CornerRadius float64
	FPS          int
	Profile      termenv.Profile
	CaptionStyle string
	Version      string // Version string to display in the status bar
}

// App implements the Bubble Tea model for the glass demo. It owns a term
// Window holding an animated backdrop and one glass panel, steps the window
// once per frame tick and rasterises the result.
type App struct {
	cfg  Config
	keys KeyMap

	width  int
	height int
	ready  bool

	window    *term.Window
	backdrop  *Backdrop
	panel     *glass.Container
	card      *Card
	chip      *Chip
	panelRect image.Rectangle
	detached  bool
	paused    bool
	showHelp  bool

	frame  *image.RGBA
	frames int

	caption      string
	captionWidth int
	captionTheme string

	toast      string
	toastStart time.Time
	lastError  string
}

// NewApp creates the demo model. The scene is built on the first window size
// message.
func NewApp(cfg Config) *App {
	if cfg.FPS <= 0 {
		cfg.FPS = config.DefaultFPS
	}
	return &App{
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		backdrop: NewBackdrop(theme.Current()),
	}
}

func (m *App) Init() tea.Cmd {
	return scheduleFrame(m.cfg.FPS)
}

// Panel returns the glass container currently on screen.
func (m *App) Panel() *glass.Container {
	return m.panel
}

// Window returns the host window, nil before the first layout.
func (m *App) Window() *term.Window {
	return m.window
}

// layout rebuilds the window for a terminal of width×height cells. The last
// row is the status bar; every other row holds two pixel rows.
func (m *App) layout(width, height int) error {
	m.width, m.height = width, height
	rows := height - 1
	if width <= 0 || rows <= 0 {
		m.ready = false
		return nil
	}
	w, err := term.NewWindow(width, rows*2, m.windowOptions()...)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if m.window != nil {
		m.window.Hide()
	}
	w.SetBackground(m.backdrop)
	m.window = w
	m.panelRect = m.fitPanel(m.panelRect)
	m.panel = m.newPanel()
	if !m.detached {
		w.Add(m.panel, m.panelRect)
	}
	w.Show()
	m.frame = nil
	m.ready = true
	debug.Logf("ui: layout %dx%d cells, panel %v", width, height, m.panelRect)
	return nil
}

func (m *App) windowOptions() []term.Option {
	return []term.Option{
		term.WithBlur(m.cfg.Blur),
		term.WithOutlineClip(m.cfg.OutlineClip),
		term.WithCornerRadius(m.cfg.CornerRadius),
		term.WithOverlayTint(theme.Current().Tint()),
	}
}

// newPanel builds a glass container for the current window with a caption
// card and an accent chip as its user children.
func (m *App) newPanel() *glass.Container {
	c := glass.NewContainer(m.window, glass.WithConfig(m.cfg.Glass))
	m.card = &Card{}
	m.chip = NewChip(theme.Current().Chip())
	c.AddView(m.card)
	c.AddViewWithParams(m.chip, glass.LayoutParams{
		Offset: image.Pt(cardMarginX, 2),
		Width:  chipWidth,
		Height: chipHeight,
	})
	return c
}

// fitPanel clamps want into the window, centring a default-sized panel when
// want is empty.
func (m *App) fitPanel(want image.Rectangle) image.Rectangle {
	win := m.window.Size()
	size := want.Size()
	if want.Empty() {
		size = image.Pt(win.X*3/5, win.Y*3/5)
	}
	size.X = clamp(size.X, minPanelWidth, win.X)
	size.Y = clamp(size.Y, minPanelHeight, win.Y)

	origin := want.Min
	if want.Empty() {
		// Even rows keep the panel edge on a cell boundary.
		origin = image.Pt((win.X-size.X)/2, ((win.Y-size.Y)/2)&^1)
	}
	origin.X = clamp(origin.X, 0, win.X-size.X)
	origin.Y = clamp(origin.Y, 0, win.Y-size.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

func (m *App) moveBy(dx, dy int) {
	target := m.fitPanel(m.panelRect.Add(image.Pt(dx, dy)))
	if target == m.panelRect {
		return
	}
	m.panelRect = target
	if m.detached {
		return
	}
	if err := m.window.Move(m.panel, target.Min); err != nil {
		m.lastError = err.Error()
	}
}

func (m *App) resizeBy(dx, dy int) {
	grown := image.Rectangle{Min: m.panelRect.Min, Max: m.panelRect.Max.Add(image.Pt(dx, dy))}
	if grown.Dx() < minPanelWidth || grown.Dy() < minPanelHeight {
		m.showToast("panel is at its minimum size")
		return
	}
	target := m.fitPanel(grown)
	if target == m.panelRect {
		return
	}
	m.panelRect = target
	if m.detached {
		return
	}
	if err := m.window.Move(m.panel, target.Min); err != nil {
		m.lastError = err.Error()
		return
	}
	if err := m.window.Resize(m.panel, target.Size()); err != nil {
		m.lastError = err.Error()
	}
}

func (m *App) toggleAttach() {
	if m.detached {
		m.window.Add(m.panel, m.panelRect)
		m.detached = false
		m.showToast(fmt.Sprintf("panel attached, %d pre-draw listener(s)", m.window.PreDrawListeners()))
		return
	}
	m.window.Remove(m.panel)
	m.detached = true
	m.showToast(fmt.Sprintf("panel detached, %d pre-draw listener(s)", m.window.PreDrawListeners()))
}

// refreshPanel asks the panel for a new snapshot. In manual mode an
// unchanged size keeps the current one.
func (m *App) refreshPanel() {
	before := m.panel.Snapshot().Bitmap()
	m.panel.Refresh()
	if m.panel.Snapshot().Bitmap() == before {
		m.showToast("snapshot unchanged")
		return
	}
	m.showToast("snapshot refreshed")
}

// cycleTheme switches to the next theme. The overlay tint is fixed at
// construction, so the panel is rebuilt with the new tint.
func (m *App) cycleTheme() {
	name := theme.CycleTheme()
	if err := saveTheme(name); err != nil {
		debug.Logf("ui: save theme: %v", err)
	}
	t := theme.Current()
	m.backdrop.SetTheme(t)
	m.window.SetOverlayTint(t.Tint())

	if !m.detached {
		m.window.Remove(m.panel)
	}
	m.panel = m.newPanel()
	if !m.detached {
		m.window.Add(m.panel, m.panelRect)
	}
	m.showToast("theme: " + name)
}

func (m *App) copyStatus() {
	status := m.statusLine()
	if err := writeClipboard(status); err != nil {
		m.showToast("clipboard unavailable")
		debug.Logf("ui: clipboard: %v", err)
		return
	}
	m.showToast("copied status to clipboard")
}

func (m *App) showToast(msg string) {
	m.toast = msg
	m.toastStart = time.Now()
}

// step runs one host frame: posted refreshes first, then the pre-draw pass
// and the render.
func (m *App) step() {
	if !m.ready {
		return
	}
	if !m.paused {
		m.backdrop.Advance()
	}
	m.window.RunPending()
	m.frame = m.window.Frame()
	m.frames++
	if m.toast != "" && time.Since(m.toastStart) >= toastDuration {
		m.toast = ""
	}
}

// statusLine summarises the panel configuration and lifecycle state.
func (m *App) statusLine() string {
	if m.panel == nil {
		return ""
	}
	cfg := m.panel.Config()
	parts := make([]string, 0, 8)
	if m.panel.BlurSupported() {
		parts = append(parts, fmt.Sprintf("blur %.0f", cfg.BlurRadius))
	} else {
		parts = append(parts, "blur off")
	}
	if cfg.Vibrancy {
		parts = append(parts, fmt.Sprintf("sat %.2f", cfg.Saturation), fmt.Sprintf("lift %.0f", cfg.BrightnessLift))
	} else {
		parts = append(parts, "vibrancy off")
	}
	if cfg.AutoUpdate {
		parts = append(parts, "auto")
	} else {
		parts = append(parts, "manual")
	}
	if m.detached {
		parts = append(parts, "detached")
	} else {
		parts = append(parts, "attached")
	}
	parts = append(parts, fmt.Sprintf("listeners %d", m.window.PreDrawListeners()))
	parts = append(parts, theme.CurrentName())
	if m.paused {
		parts = append(parts, "paused")
	}
	if m.lastError != "" {
		parts = append(parts, "error: "+m.lastError)
	}
	return strings.Join(parts, " · ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
