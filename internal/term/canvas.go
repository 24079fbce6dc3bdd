package term

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/muesli/termenv"
)

// upperHalf paints the top pixel as foreground and the bottom one as
// background, giving two square-ish pixels per cell.
const upperHalf = "▀"

// shades is the luminance ramp used when the terminal has no colour.
var shades = []string{" ", "░", "▒", "▓", "█"}

// Canvas composes a pixel frame and text captions into a cellbuf screen and
// turns the result into a string for Bubble Tea.
type Canvas struct {
	screen  *cellbuf.Screen
	writer  *cellbuf.ScreenWriter
	width   int
	height  int
	profile termenv.Profile
}

// NewCanvas returns a canvas of cols×rows cells rendering colours for profile.
func NewCanvas(cols, rows int, profile termenv.Profile) *Canvas {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	screen := cellbuf.NewScreen(io.Discard, cols, rows, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen:  screen,
		writer:  cellbuf.NewScreenWriter(screen),
		width:   cols,
		height:  rows,
		profile: profile,
	}
}

// PixelSize returns the pixel frame size that exactly fills the canvas.
func (c *Canvas) PixelSize() image.Point {
	return image.Pt(c.width, c.height*2)
}

// DrawPixels rasterises img, two pixel rows per cell row, starting at the
// top-left cell.
func (c *Canvas) DrawPixels(img *image.RGBA) {
	if c == nil || img == nil {
		return
	}
	b := img.Bounds()
	var line strings.Builder
	for row := 0; row < c.height; row++ {
		y := b.Min.Y + row*2
		if y >= b.Max.Y {
			break
		}
		line.Reset()
		for col := 0; col < c.width && b.Min.X+col < b.Max.X; col++ {
			x := b.Min.X + col
			top := pixelAt(img, x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = pixelAt(img, x, y+1)
			}
			line.WriteString(c.cell(top, bottom))
		}
		c.writer.PrintCropAt(0, row, line.String(), "")
	}
}

func (c *Canvas) cell(top, bottom [3]uint8) string {
	if c.profile == termenv.Ascii {
		l := (luma(top) + luma(bottom)) / 2
		return shades[l*len(shades)/256]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(top))).
		Background(lipgloss.Color(hex(bottom))).
		Render(upperHalf)
}

// DrawStringAt writes block starting at cell x,y. Lines wider than the canvas
// are truncated.
func (c *Canvas) DrawStringAt(x, y int, block string) {
	if block == "" || c == nil || c.writer == nil {
		return
	}
	avail := c.width - x
	if avail <= 0 {
		return
	}
	for i, line := range splitLines(block) {
		row := y + i
		if row >= c.height {
			break
		}
		if row < 0 || line == "" {
			continue
		}
		if ansi.StringWidth(line) > avail {
			line = ansi.Truncate(line, avail, "…")
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame as a newline-delimited string.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func pixelAt(img *image.RGBA, x, y int) [3]uint8 {
	o := img.PixOffset(x, y)
	// Frames are composited over an opaque background, so premultiplied
	// values are the displayed colour.
	return [3]uint8{img.Pix[o], img.Pix[o+1], img.Pix[o+2]}
}

func luma(p [3]uint8) int {
	return (213*int(p[0]) + 715*int(p[1]) + 72*int(p[2])) / 1000
}

func hex(p [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", p[0], p[1], p[2])
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
