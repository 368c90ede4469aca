package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 5)

	if c.SubWidth() != 20 || c.SubHeight() != 20 {
		t.Fatalf("subpixel dims = %dx%d", c.SubWidth(), c.SubHeight())
	}

	c.Set(0, 0, "#ffffff")
	if c.grid[0][0] == emptyCell {
		t.Error("Set(0,0) left cell empty")
	}

	// Out of bounds must be ignored, not panic.
	c.Set(-1, 0, "#ffffff")
	c.Set(0, -1, "#ffffff")
	c.Set(100, 100, "#ffffff")
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(3, 3, "#ff0000")
	c.WriteText(0, 0, "N", "#ff0000")
	c.Clear()

	for row := range c.grid {
		for col := range c.grid[row] {
			if c.grid[row][col] != emptyCell {
				t.Fatalf("cell (%d,%d) not cleared", col, row)
			}
		}
	}
	if len(c.text) != 0 {
		t.Error("text overlay not cleared")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawLine(0, 0, 30, 20, "#00ff00")

	if c.grid[0][0] == emptyCell {
		t.Error("line start not set")
	}
	if c.grid[20/4][30/2] == emptyCell {
		t.Error("line end not set")
	}
}

func TestDrawEllipseOnBounds(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawEllipse(20, 20, 8, 10, "#00ff00")

	// Leftmost, rightmost, top, bottom extremes are stroked.
	for _, pt := range [][2]int{{12, 20}, {28, 20}, {20, 10}, {20, 30}} {
		if c.grid[pt[1]/4][pt[0]/2] == emptyCell {
			t.Errorf("ellipse missing point (%d,%d)", pt[0], pt[1])
		}
	}
}

func TestWriteTextWins(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillRect(0, 0, 20, 20, "#333333")
	c.WriteText(2, 1, "NS", "#ffffff")

	out := c.String()
	if !strings.Contains(out, "N") || !strings.Contains(out, "S") {
		t.Error("labels not rendered over filled cells")
	}
}
