// Package tui is the interactive front end: a parameter editor that
// recomputes the force model and top-speed estimate on every change and
// renders the result as vectors.
package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/windlab/sailforce/internal/config"
	"github.com/windlab/sailforce/internal/rig"
	"github.com/windlab/sailforce/internal/solver"
	"github.com/windlab/sailforce/internal/store"
	"github.com/windlab/sailforce/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type param struct {
	name string
	step float64
	min  float64
	max  float64
}

var paramDefs = []param{
	{"wind", 0.5, 0, 40},
	{"course", 5, 0, 180},
	{"board", 0.5, 0, 30},
	{"area", 0.5, 1, 15},
	{"sheeting", 2, -85, 85},
	{"downhaul", 0.1, 0, 1},
	{"outhaul", 0.1, 0, 1},
	{"water c0", 5, 0, 400},
	{"water c2", 0.1, 0, 10},
}

var paramInfo = map[string]string{
	"wind":     "true wind speed m/s",
	"course":   "0 downwind, 180 upwind",
	"board":    "board speed m/s",
	"area":     "sail area m²",
	"sheeting": "sail angle deg",
	"downhaul": "trim 0..1",
	"outhaul":  "trim 0..1",
	"water c0": "baseline water drag N",
	"water c2": "quadratic water drag",
}

type model struct {
	params map[string]float64
	cursor int

	editing bool
	editBuf string

	naming  bool
	nameBuf string

	out      rig.Outputs
	topSpeed solver.Result
	sweep    []float64 // drive vs sheeting, for the sparkline

	presets    []string
	presetIdx  int
	store      *store.Store
	statusLine string

	width  int
	height int
}

func NewApp(cfg *config.Config, st *store.Store) *model {
	names := config.ListPresets()
	sort.Strings(names)

	m := &model{
		params: map[string]float64{
			"wind":     cfg.Wind,
			"course":   cfg.Course,
			"board":    cfg.Board,
			"area":     cfg.Rig.Area,
			"sheeting": cfg.Rig.Sheeting,
			"downhaul": cfg.Rig.Downhaul,
			"outhaul":  cfg.Rig.Outhaul,
			"water c0": cfg.Water.C0,
			"water c2": cfg.Water.C2,
		},
		presets:   names,
		presetIdx: -1,
		store:     st,
		width:     80,
		height:    24,
	}
	m.recompute()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m *model) inputs() rig.Inputs {
	return rig.Inputs{
		TrueWindSpeed:  m.params["wind"],
		CourseAngleDeg: m.params["course"],
		BoardSpeed:     m.params["board"],
		SailArea:       m.params["area"],
		SheetingDeg:    m.params["sheeting"],
		Downhaul:       m.params["downhaul"],
		Outhaul:        m.params["outhaul"],
	}
}

func (m *model) recompute() {
	in := m.inputs()
	m.out = rig.Compute(in)
	m.topSpeed = solver.TopSpeed(in, m.params["water c0"], m.params["water c2"])

	m.sweep = m.sweep[:0]
	for sheet := -85.0; sheet <= 85; sheet += 5 {
		in.SheetingDeg = sheet
		out := rig.Compute(in)
		m.sweep = append(m.sweep, math.Max(0, -out.DriveN))
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}
	if m.naming {
		return m.nameKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(paramDefs)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", m.params[paramDefs[m.cursor].name])
	case "p":
		m.cyclePreset()
	case "s":
		m.naming = true
		m.nameBuf = ""
	case "r":
		m.applyConfig(config.DefaultConfig())
		m.presetIdx = -1
		m.statusLine = "reset to defaults"
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var val float64
		if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
			p := paramDefs[m.cursor]
			m.params[p.name] = clampParam(val, p)
			m.recompute()
		}
		m.editing = false
		m.editBuf = ""
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m model) nameKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.nameBuf != "" && m.store != nil {
			if err := m.store.Save(m.nameBuf, m.inputs()); err != nil {
				m.statusLine = red.Render(err.Error())
			} else {
				m.statusLine = "saved preset " + m.nameBuf
			}
		}
		m.naming = false
		m.nameBuf = ""
	case "esc":
		m.naming = false
		m.nameBuf = ""
	case "backspace":
		if len(m.nameBuf) > 0 {
			m.nameBuf = m.nameBuf[:len(m.nameBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && s != " " {
			m.nameBuf += s
		}
	}
	return m, nil
}

func (m *model) adjust(dir float64) {
	p := paramDefs[m.cursor]
	m.params[p.name] = clampParam(m.params[p.name]+dir*p.step, p)
	m.recompute()
}

func (m *model) cyclePreset() {
	if len(m.presets) == 0 {
		return
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	name := m.presets[m.presetIdx]
	if cfg := config.GetPreset(name); cfg != nil {
		m.applyConfig(cfg)
		m.statusLine = "preset " + name
	}
}

func (m *model) applyConfig(cfg *config.Config) {
	m.params["wind"] = cfg.Wind
	m.params["course"] = cfg.Course
	m.params["board"] = cfg.Board
	m.params["area"] = cfg.Rig.Area
	m.params["sheeting"] = cfg.Rig.Sheeting
	m.params["downhaul"] = cfg.Rig.Downhaul
	m.params["outhaul"] = cfg.Rig.Outhaul
	m.params["water c0"] = cfg.Water.C0
	m.params["water c2"] = cfg.Water.C2
	m.recompute()
}

func clampParam(v float64, p param) float64 {
	if v < p.min {
		return p.min
	}
	if v > p.max {
		return p.max
	}
	return v
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("s a i l f o r c e") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	params := m.viewParams()
	canvas := m.viewCanvas()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, params, "   ", canvas))

	b.WriteString("\n")
	b.WriteString(m.viewTelemetry())

	if m.naming {
		b.WriteString("\n   " + yellow.Render("save as: ") + white.Render(m.nameBuf+"▋") + "\n")
	} else if m.statusLine != "" {
		b.WriteString("\n   " + dim.Render(m.statusLine) + "\n")
	}

	b.WriteString("\n" + dim.Render("   ↑↓ select  ←→ adjust  enter edit  p preset  s save  r reset  q quit") + "\n")

	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder
	for i, p := range paramDefs {
		val := fmt.Sprintf("%8.2f", m.params[p.name])
		if m.editing && i == m.cursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.cursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", p.name)) + magenta.Render(val))
			b.WriteString("  " + dimmer.Render(paramInfo[p.name]) + "\n")
		} else {
			b.WriteString("     " + dim.Render(fmt.Sprintf("%-10s", p.name)) + dim.Render(val) + "\n")
		}
	}
	return b.String()
}

func (m model) viewCanvas() string {
	cw := (m.width - 52) / 2
	if cw < 16 {
		cw = 16
	}
	if cw > 30 {
		cw = 30
	}
	ch := cw / 2

	canvas := viz.RenderForces(m.out, cw, ch)
	scene := strings.TrimRight(canvas.String(), "\n")

	legend := dim.Render("  ") +
		cyan.Render("Va") + dim.Render(fmt.Sprintf(" %.1fm/s  ", m.out.ApparentWindSpeed)) +
		green.Render("L") + dim.Render(fmt.Sprintf(" %.0fN  ", m.out.LiftN)) +
		red.Render("D") + dim.Render(fmt.Sprintf(" %.0fN", m.out.DragN))

	return cyan.Render(scene) + "\n" + legend
}

func (m model) viewTelemetry() string {
	var b strings.Builder

	drive := math.Max(0, -m.out.DriveN)

	b.WriteString(fmt.Sprintf("   %s %s   %s %s   %s %s\n",
		dim.Render("awa"), white.Render(fmt.Sprintf("%.1f°", m.out.ApparentWindAngleDeg)),
		dim.Render("alpha"), white.Render(fmt.Sprintf("%.1f°", m.out.AlphaDeg)),
		dim.Render("cl/cd"), white.Render(fmt.Sprintf("%.2f/%.3f", m.out.Cl, m.out.Cd))))

	b.WriteString(fmt.Sprintf("   %s %s   %s %s   %s %s\n",
		dim.Render("drive"), green.Render(fmt.Sprintf("%.0fN", drive)),
		dim.Render("side"), yellow.Render(fmt.Sprintf("%.0fN", m.out.SideN)),
		dim.Render("power"), white.Render(fmt.Sprintf("%.0fW", m.out.PowerW))))

	ratio := m.topSpeed.Speed / solver.SweepMax
	b.WriteString(fmt.Sprintf("   %s %s %s\n",
		dim.Render("top speed"),
		viz.Bar(ratio, 24),
		white.Render(fmt.Sprintf("%.1f m/s", m.topSpeed.Speed))))

	if len(m.sweep) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s %s\n",
			dim.Render("drive vs sheeting"),
			viz.Sparkline(m.sweep, 35),
			dimmer.Render("-85°..85°")))
	}

	return b.String()
}

// RunInteractive starts the estimator TUI with the given starting scenario
// and preset store.
func RunInteractive(cfg *config.Config, st *store.Store) error {
	p := tea.NewProgram(NewApp(cfg, st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
