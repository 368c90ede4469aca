package viz

import (
	"math"

	"github.com/danahmedkhan/faraday/internal/engine"
	"github.com/danahmedkhan/faraday/internal/induction"
)

// Renderer layout constants, in subpixels unless noted.
const (
	coilTurns     = 7
	fieldStepX    = 18
	fieldStepY    = 16
	fieldSoften   = 60.0 // keeps the falloff denominator positive
	fieldGain     = 9000.0
	maxFieldLen   = 7.0
	magnetHeight  = 20
	scopeMargin   = 6
	scopeScale    = 14.0
	travelFrac    = 0.35 // peak magnet travel as a fraction of height
	sparkFadeLife = 0.4  // below this life a particle draws in the fade color
)

// Renderer turns engine snapshots into styled terminal frames. It is
// stateless apart from the canvas it reuses between frames and the
// active theme.
type Renderer struct {
	theme  Theme
	canvas *Canvas
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

func (r *Renderer) SetTheme(t Theme) { r.theme = t }
func (r *Renderer) Theme() Theme     { return r.theme }

// Draw renders one frame, back to front: field grid, coil, particles,
// magnet, oscilloscope trace. A zero-size viewport means the surface is
// not available yet; the frame is skipped and the next one will retry.
func (r *Renderer) Draw(s engine.Snapshot) string {
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return ""
	}
	r.ensureCanvas(s.Viewport)
	r.canvas.Clear()

	r.drawField(s)
	r.drawCoil(s)
	r.drawSparks(s)
	r.drawMagnet(s)
	r.drawScope(s)

	return r.canvas.String()
}

// ensureCanvas rebuilds the backing canvas when the viewport changed.
// Must run before any drawing in the frame.
func (r *Renderer) ensureCanvas(v engine.Viewport) {
	cols := v.Width / 2
	rows := v.Height / 4
	if r.canvas == nil || r.canvas.Width != cols || r.canvas.Height != rows {
		r.canvas = NewCanvas(cols, rows)
	}
}

// magnetCenter maps the physics displacement onto the viewport. The
// amplitude is fixed in physics units; the screen travel scales with the
// surface so the magnet never leaves it.
func (r *Renderer) magnetCenter(s engine.Snapshot) (int, int) {
	cx := s.Viewport.Width / 2
	travel := float64(s.Viewport.Height) * travelFrac
	cy := float64(s.Viewport.Height)/2 + s.Displacement/induction.Amplitude*travel
	return cx, int(cy)
}

// drawField paints the decorative vector grid. Each vector points from
// the magnet's center toward its grid cell with an inverse-square-like,
// capped length. Not a field solution.
func (r *Renderer) drawField(s engine.Snapshot) {
	mx, my := r.magnetCenter(s)
	for gy := fieldStepY / 2; gy < s.Viewport.Height; gy += fieldStepY {
		for gx := fieldStepX / 2; gx < s.Viewport.Width; gx += fieldStepX {
			dx := float64(gx - mx)
			dy := float64(gy - my)
			d2 := dx*dx + dy*dy + fieldSoften
			length := fieldGain / d2
			if length > maxFieldLen {
				length = maxFieldLen
			}
			if length < 1 {
				continue
			}
			angle := math.Atan2(dy, dx)
			ex := gx + int(math.Round(length*math.Cos(angle)))
			ey := gy + int(math.Round(length*math.Sin(angle)))
			r.canvas.DrawLine(gx, gy, ex, ey, r.theme.Field)
		}
	}
}

// drawCoil strokes the solenoid as horizontally stacked ellipses. The
// stroke brightens with glow intensity, and a halo ring appears near
// full glow.
func (r *Renderer) drawCoil(s engine.Snapshot) {
	region := engine.CoilRegion(s.Viewport)
	cy := int(region.Y + region.H/2)
	ry := int(region.H / 2)
	rx := ry / 4
	if rx < 2 {
		rx = 2
	}

	color := r.theme.CoilDim
	switch {
	case s.Glow > 0.66:
		color = r.theme.PolarityColor(s.Polarity)
	case s.Glow > 0.33:
		color = r.theme.Coil
	}

	spacing := region.W / float64(coilTurns-1)
	for i := 0; i < coilTurns; i++ {
		cx := int(region.X + float64(i)*spacing)
		if s.Glow > 0.85 {
			r.canvas.DrawEllipse(cx, cy, rx+1, ry+2, r.theme.CoilDim)
		}
		r.canvas.DrawEllipse(cx, cy, rx, ry, color)
	}
}

func (r *Renderer) drawSparks(s engine.Snapshot) {
	for _, p := range s.Particles {
		color := r.theme.PolarityColor(p.Polarity)
		if p.Life < sparkFadeLife {
			color = r.theme.Fade
		}
		r.canvas.Set(int(p.X), int(p.Y), color)
	}
}

// drawMagnet draws the two-pole bar magnet at its current offset. Pole
// assignment is fixed: north is always the top half.
func (r *Renderer) drawMagnet(s engine.Snapshot) {
	cx, cy := r.magnetCenter(s)
	w := s.Viewport.Width / 8
	if w < 8 {
		w = 8
	}
	h := magnetHeight
	x0 := cx - w/2
	y0 := cy - h/2

	r.canvas.FillRect(x0, y0, w, h/2, r.theme.PoleNorth)
	r.canvas.FillRect(x0, y0+h/2, w, h-h/2, r.theme.PoleSouth)
	// Highlight strip down the left face.
	r.canvas.DrawLine(x0+1, y0, x0+1, y0+h-1, r.theme.Highlight)

	labelCol := cx / 2
	r.canvas.WriteText(labelCol, (y0+h/4)/4, "N", r.theme.Highlight)
	r.canvas.WriteText(labelCol, (y0+3*h/4)/4, "S", r.theme.Highlight)
}

// drawScope strokes the oscilloscope polyline over the velocity history,
// right-aligned at two subpixels per sample.
func (r *Renderer) drawScope(s engine.Snapshot) {
	n := len(s.Trace)
	if n < 2 {
		return
	}
	baseline := s.Viewport.Height - scopeMargin
	color := r.theme.PolarityColor(s.Polarity)

	prevX, prevY := -1, 0
	for i := 0; i < n; i++ {
		x := s.Viewport.Width - 1 - 2*(n-1-i)
		if x < 0 {
			continue
		}
		y := baseline - int(math.Round(s.Trace[i]/induction.MaxSpeed*scopeScale))
		if prevX >= 0 {
			r.canvas.DrawLine(prevX, prevY, x, y, color)
		}
		prevX, prevY = x, y
	}
}
