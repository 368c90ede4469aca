package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChargeGauge is the battery-style meter outside the canvas. The engine
// owns nothing here; it holds a reference and writes the percentage
// directly each frame, skipping the Bubble Tea update path entirely.
// SetPercent is a plain field write so the hot path stays O(1).
type ChargeGauge struct {
	percent float64
}

func (g *ChargeGauge) SetPercent(p float64) { g.percent = p }
func (g *ChargeGauge) Percent() float64     { return g.percent }

// View renders the gauge as a vertical bar of the given height in cells,
// filled bottom-up.
func (g *ChargeGauge) View(height int) string {
	if height < 1 {
		height = 1
	}
	filled := int(g.percent / 100 * float64(height))
	if filled > height {
		filled = height
	}

	color := chargeLow
	switch {
	case g.percent > 80:
		color = chargeHigh
	case g.percent > 40:
		color = chargeMid
	}
	style := lipgloss.NewStyle().Foreground(color)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		if row <= filled {
			b.WriteString(style.Render("██"))
		} else {
			b.WriteString(mutedStyle.Render("░░"))
		}
		b.WriteString("\n")
	}
	b.WriteString(style.Render(fmt.Sprintf("%3.0f%%", g.percent)))
	return b.String()
}
