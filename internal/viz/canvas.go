package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille patterns: 2x4 dots per terminal cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const emptyCell = rune(0x2800)

type textCell struct {
	ch    rune
	color lipgloss.Color
}

// Canvas is a braille-cell drawing surface with one color per cell and a
// text overlay for labels. Subpixel coordinates span (Width*2, Height*4).
type Canvas struct {
	Width, Height int
	grid          [][]rune
	colors        [][]lipgloss.Color
	text          map[[2]int]textCell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		grid:   make([][]rune, h),
		colors: make([][]lipgloss.Color, h),
		text:   make(map[[2]int]textCell),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.colors[i] = make([]lipgloss.Color, w)
		for j := range c.grid[i] {
			c.grid[i][j] = emptyCell
		}
	}
	return c
}

// SubWidth is the drawable width in subpixels.
func (c *Canvas) SubWidth() int { return c.Width * 2 }

// SubHeight is the drawable height in subpixels.
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set lights the subpixel at (x, y). The cell takes the given color;
// later writes win, so layers drawn last stay on top.
func (c *Canvas) Set(x, y int, color lipgloss.Color) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= pixelMap[y%4][x%2]
	c.colors[row][col] = color
}

// Clear resets every cell and drops the text overlay.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = emptyCell
			c.colors[i][j] = ""
		}
	}
	clear(c.text)
}

// DrawLine draws a line in subpixel space using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color lipgloss.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawEllipse strokes an axis-aligned ellipse centered at (cx, cy).
func (c *Canvas) DrawEllipse(cx, cy, rx, ry int, color lipgloss.Color) {
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}
	// Enough parametric steps that adjacent points touch.
	steps := 4 * (rx + ry)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(float64(rx)*math.Cos(a)))
		y := cy + int(math.Round(float64(ry)*math.Sin(a)))
		c.Set(x, y, color)
	}
}

// FillRect fills the subpixel rectangle at (x, y) with size (w, h).
func (c *Canvas) FillRect(x, y, w, h int, color lipgloss.Color) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.Set(x+dx, y+dy, color)
		}
	}
}

// WriteText overlays a label starting at the given cell (not subpixel)
// coordinates. Text wins over braille content when rendering.
func (c *Canvas) WriteText(col, row int, s string, color lipgloss.Color) {
	for i, ch := range s {
		p := [2]int{col + i, row}
		if p[0] < 0 || p[0] >= c.Width || row < 0 || row >= c.Height {
			continue
		}
		c.text[p] = textCell{ch: ch, color: color}
	}
}

// String renders the canvas with per-cell lipgloss coloring.
func (c *Canvas) String() string {
	var b strings.Builder
	style := lipgloss.NewStyle()
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if tc, ok := c.text[[2]int{col, row}]; ok {
				b.WriteString(style.Foreground(tc.color).Render(string(tc.ch)))
				continue
			}
			r := c.grid[row][col]
			if r == emptyCell || c.colors[row][col] == "" {
				b.WriteRune(r)
				continue
			}
			b.WriteString(style.Foreground(c.colors[row][col]).Render(string(r)))
		}
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
