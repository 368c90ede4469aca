package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/danahmedkhan/faraday/internal/engine"
)

const (
	sidebarWidth  = 36
	sidebarGraphW = 28
)

type TickMsg time.Time

// Model is the live view. Each tick runs one engine frame and re-arms
// the timer; quitting simply stops re-arming, so an in-flight frame
// always completes.
type Model struct {
	eng      *engine.Engine
	renderer *Renderer
	gauge    *ChargeGauge
	fps      int
	themeIdx int

	paused bool
	ready  bool
	frame  string
	snap   engine.Snapshot
}

// NewModel wires the engine to the display. The gauge handle is handed
// to the engine so charge updates bypass Update entirely.
func NewModel(eng *engine.Engine, theme Theme, fps int) Model {
	gauge := &ChargeGauge{}
	eng.Publish(gauge)

	idx := 0
	for i, t := range Themes {
		if t.Name == theme.Name {
			idx = i
		}
	}

	return Model{
		eng:      eng,
		renderer: NewRenderer(theme),
		gauge:    gauge,
		fps:      fps,
		themeIdx: idx,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.eng.Reset()
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(Themes)
			m.renderer.SetTheme(Themes[m.themeIdx])
		}
		return m, nil

	case tea.WindowSizeMsg:
		cols := msg.Width - sidebarWidth - 3
		rows := msg.Height - 1
		m.ready = cols >= 20 && rows >= 10
		if m.ready {
			m.eng.Resize(cols*2, rows*4)
		}
		return m, nil

	case TickMsg:
		// The surface may not exist yet; skip the frame and let the
		// next tick retry once a window size arrives.
		if m.ready && !m.paused {
			m.snap = m.eng.Frame()
			m.frame = m.renderer.Draw(m.snap)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "waiting for terminal size..."
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.frame),
		statsStyle.Render(m.sidebar()),
	)
}

func (m Model) sidebar() string {
	theme := m.renderer.Theme()
	var s strings.Builder

	s.WriteString(headerStyle.Render("FARADAY INDUCTION") + "\n")
	if m.paused {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	}

	emfStyle := lipgloss.NewStyle().Foreground(theme.PolarityColor(m.snap.Polarity)).Bold(true)
	s.WriteString(labelStyle.Render("EMF") + emfStyle.Render(fmt.Sprintf("%+.2f V", m.snap.EMF)) + "\n")
	s.WriteString(labelStyle.Render("Polarity") + valueStyle.Render(m.snap.Polarity.String()) + "\n")
	s.WriteString(labelStyle.Render("Glow") + valueStyle.Render(ProgressBar(m.snap.Glow, 16)) + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.snap.Clock)) + "\n")
	s.WriteString(labelStyle.Render("Sparks") + valueStyle.Render(fmt.Sprintf("%d", len(m.snap.Particles))) + "\n")

	// Charge meter: the value comes from the gauge handle the engine
	// writes into, not from the snapshot.
	s.WriteString("\n" + labelStyle.Render("CHARGE") + "\n")
	s.WriteString(m.gauge.View(4) + "\n")

	if len(m.snap.Trace) > 1 {
		trace := m.snap.Trace
		if len(trace) > 2*sidebarGraphW {
			trace = trace[len(trace)-2*sidebarGraphW:]
		}
		chart := asciigraph.Plot(trace,
			asciigraph.Height(4),
			asciigraph.Width(sidebarGraphW),
			asciigraph.Caption("velocity"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset T:Theme Q:Quit"))
	return s.String()
}

// RunLive starts the live visualization and blocks until quit.
func RunLive(eng *engine.Engine, theme Theme, fps int) error {
	p := tea.NewProgram(NewModel(eng, theme, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var _ engine.Gauge = (*ChargeGauge)(nil)
