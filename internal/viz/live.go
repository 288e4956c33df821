package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/helix/internal/anim"
	"github.com/san-kum/helix/internal/chain"
	"github.com/san-kum/helix/internal/metrics"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model is the Bubble Tea model for the live chain view. It owns the
// animation driver, the parameter store, and the render state; the whole
// loop runs on the single Bubble Tea goroutine, so frame N completes before
// frame N+1 starts.
type Model struct {
	driver   *anim.Driver
	store    *chain.Store
	canvas   *Canvas
	camera   *Camera
	theme    Theme
	fps      int
	frame    anim.Frame
	history  []float64
	selected int
	paused   bool
	spun     bool
	showHelp bool

	recording bool
	gifFrames []*image.Paletted
}

// NewModel wires a parameter store and driver into the live view.
func NewModel(store *chain.Store, driver *anim.Driver, fps int, themeName string) Model {
	if fps < 1 {
		fps = 60
	}
	return Model{
		driver:  driver,
		store:   store,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		camera:  NewCamera(),
		theme:   GetTheme(themeName),
		fps:     fps,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input and advances the animation one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.driver.Restart()
			m.history = m.history[:0]
		case "tab":
			m.selected = (m.selected + 1) % len(chain.Specs)
		case "shift+tab":
			m.selected = (m.selected + len(chain.Specs) - 1) % len(chain.Specs)
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "left", "h":
			m.adjustParam(-10)
		case "right", "l":
			m.adjustParam(10)
		case "f":
			p := m.store.Snapshot()
			if p.ForceMode == chain.ForceDecay {
				m.store.SetForceMode(chain.ForceConstant)
			} else {
				m.store.SetForceMode(chain.ForceDecay)
			}
		case "x":
			m.camera.RotateX(0.1)
			m.spun = true
		case "X":
			m.camera.RotateX(-0.1)
			m.spun = true
		case "y":
			m.camera.RotateY(0.1)
			m.spun = true
		case "Y":
			m.camera.RotateY(-0.1)
			m.spun = true
		case "z":
			m.camera.RotateZ(0.1)
			m.spun = true
		case "Z":
			m.camera.RotateZ(-0.1)
			m.spun = true
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "c":
			m.camera.Reset()
			m.spun = false
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.gifFrames = nil
			} else {
				m.recording = true
				m.gifFrames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		if !m.paused {
			m.frame = m.driver.Tick()
			m.pushHistory(metrics.EndToEnd(m.frame.Points))
			// slow spin until the user takes the camera
			if !m.spun {
				m.camera.RotateY(0.004)
			}
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) adjustParam(steps int) {
	// clamped at the edit boundary; rejected values never reach the
	// generator, so there is nothing to report per-keypress
	_ = m.store.Adjust(chain.Specs[m.selected].Name, steps)
}

func (m *Model) pushHistory(v float64) {
	m.history = append(m.history, v)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	DrawChain(m.canvas, m.camera, m.frame.Points)
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).MarginBottom(1)
	activeStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary).Bold(true)
	graphStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Padding(1, 0)

	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("WORM-LIKE CHAIN") + "\n")

	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	if m.recording {
		status += "  REC"
	}
	s.WriteString(status + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("end-to-end"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", m.driver.Time())) + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.driver.Seq())) + "\n")
	s.WriteString(labelStyle.Render("End-to-end") + valueStyle.Render(fmt.Sprintf("%.2f", metrics.EndToEnd(m.frame.Points))) + "\n")
	s.WriteString(labelStyle.Render("Rg") + valueStyle.Render(fmt.Sprintf("%.2f", metrics.RadiusOfGyration(m.frame.Points))) + "\n")
	s.WriteString(labelStyle.Render("Contour") + valueStyle.Render(fmt.Sprintf("%.2f", metrics.ContourLength(m.frame.Points))) + "\n")
	s.WriteString(labelStyle.Render("Force mode") + valueStyle.Render(m.store.Snapshot().ForceMode.String()) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for i, spec := range chain.Specs {
		val, _ := m.store.Get(spec.Name)
		barWidth := 10
		ratio := (val - spec.Min) / (spec.Max - spec.Min)
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-12s %s %.1f", spec.Name, bar, val)
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Restart Q:Quit\nTab:Select ↑↓:Tune F:Force-Mode\nT:Theme G:Record ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume animation   ║
║  R        - Restart from time zero   ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase by one step     ║
║  Down/J   - Decrease by one step     ║
║  ←/→      - Adjust by ten steps      ║
║  F        - Toggle force decay mode  ║
║  X/Y/Z    - Rotate camera            ║
║  C        - Reset camera             ║
║  +/-      - Zoom                     ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// captureFrame rasterizes the Braille canvas into a paletted image for GIF
// output, one dot block per Braille bit.
func (m *Model) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := m.canvas.Width*charW, m.canvas.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	for row := 0; row < m.canvas.Height; row++ {
		for col := 0; col < m.canvas.Width; col++ {
			r := m.canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	m.gifFrames = append(m.gifFrames, img)
}

func (m *Model) saveGIF() {
	if len(m.gifFrames) == 0 {
		return
	}
	out := gif.GIF{LoopCount: 0}
	for _, frame := range m.gifFrames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, 100/m.fps)
	}
	f, err := os.Create("helix.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &out)
}
