package ui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/waytap/internal/events"
	"github.com/bnema/waytap/internal/host"
	"github.com/bnema/waytap/internal/tap"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	monitorHeaderHeight = 3
	monitorFooterHeight = 1
)

// MonitorModel is a full-screen TUI that treats the terminal as a mouse-only
// host: terminal mouse reports are dispatched to a gesture engine as
// mousedown, mousemove and mouseup events and the resulting gestures are
// listed in a scrolling log.
type MonitorModel struct {
	// Engine
	host   *host.Host
	window *host.Surface
	tap    *tap.Tap
	subs   []events.Subscription
	done   bool

	// Last terminal cell reported, used to derive movement
	cell    tap.Vector2
	hasCell bool

	// Counters
	counts map[tap.Phase]int

	// A down is outstanding and the mouse moved since
	dragging bool

	// UI components
	viewport viewport.Model
	ready    bool

	// Window dimensions
	windowWidth  int
	windowHeight int

	// Log buffer
	logs      []string
	maxLogs   int
	engineLog *lineWriter
}

// NewMonitorModel creates a monitor whose engine attaches the given families.
func NewMonitorModel(families []tap.Family, maxLogs int) *MonitorModel {
	if maxLogs <= 0 {
		maxLogs = 500
	}

	engineLog := &lineWriter{}
	logger := log.New(engineLog)
	logger.SetLevel(log.DebugLevel)

	h := host.New(tap.Capabilities{MouseEvents: true}, logger.WithPrefix("terminal"))

	m := &MonitorModel{
		host:      h,
		window:    h.Window(),
		counts:    make(map[tap.Phase]int),
		logs:      make([]string, 0),
		maxLogs:   maxLogs,
		engineLog: engineLog,
	}

	opts := []tap.Option{tap.WithLogger(logger.WithPrefix("tap"))}
	if len(families) > 0 {
		opts = append(opts, tap.WithFamilies(families...))
	}
	m.tap = tap.New(h, nil, opts...)
	m.subs = []events.Subscription{
		m.tap.OnDown(m.record),
		m.tap.OnMove(m.record),
		m.tap.OnUp(m.record),
	}
	m.drainEngineLog()

	return m
}

// Tap exposes the engine driven by the monitor.
func (m *MonitorModel) Tap() *tap.Tap {
	return m.tap
}

// Logs returns the current gesture log lines.
func (m *MonitorModel) Logs() []string {
	return m.logs
}

// Count returns the number of gestures of phase p received since the last clear.
func (m *MonitorModel) Count(p tap.Phase) int {
	return m.counts[p]
}

// Close tears the engine down. It is safe to call more than once.
func (m *MonitorModel) Close() {
	if m.done {
		return
	}
	m.done = true
	for _, sub := range m.subs {
		sub.Cancel()
	}
	m.tap.Destroy()
}

// Init initializes the model
func (m *MonitorModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages
func (m *MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height

		height := msg.Height - monitorHeaderHeight - monitorFooterHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.YPosition = monitorHeaderHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Close()
			return m, tea.Quit
		case "p":
			if m.done {
				break
			}
			if m.tap.IsPaused() {
				m.tap.Resume()
				m.addLog(InfoStyle.Render("resumed"))
			} else {
				m.tap.Pause()
				m.addLog(WarningStyle.Render("paused"))
			}
			m.refresh()
		case "c":
			m.logs = m.logs[:0]
			m.counts = make(map[tap.Phase]int)
			m.refresh()
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		}

	case tea.MouseMsg:
		if m.done {
			break
		}
		if ev := m.translate(msg); ev != nil {
			m.window.Dispatch(ev)
			m.trackDrag(ev)
			m.drainEngineLog()
			m.refresh()
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// translate converts a terminal mouse report into a raw mouse event, or nil
// for reports the engine has no use for (wheel, unknown actions).
func (m *MonitorModel) translate(msg tea.MouseMsg) tap.RawEvent {
	var name string
	switch msg.Action {
	case tea.MouseActionPress:
		if tea.MouseEvent(msg).IsWheel() {
			return nil
		}
		name = "mousedown"
	case tea.MouseActionRelease:
		name = "mouseup"
	case tea.MouseActionMotion:
		name = "mousemove"
	default:
		return nil
	}

	client := tap.Vector2{X: float64(msg.X), Y: float64(msg.Y)}
	var movement tap.Vector2
	if m.hasCell {
		movement = tap.Vector2{X: client.X - m.cell.X, Y: client.Y - m.cell.Y}
	}
	m.cell = client
	m.hasCell = true

	buttons := 0
	if name != "mouseup" {
		buttons = buttonMask(msg.Button)
	}

	return &tap.MouseEvent{
		Type:     name,
		Buttons:  buttons,
		Client:   tap.Point(client.X, client.Y),
		Movement: movement,
	}
}

// buttonMask maps a terminal button to the mouse event buttons bitmask.
func buttonMask(b tea.MouseButton) int {
	switch b {
	case tea.MouseButtonLeft:
		return 1
	case tea.MouseButtonRight:
		return 2
	case tea.MouseButtonMiddle:
		return 4
	default:
		return 0
	}
}

// trackDrag follows engine state rather than delivered gestures, so pausing
// does not leave a stale drag flag behind.
func (m *MonitorModel) trackDrag(ev tap.RawEvent) {
	if !m.tap.IsDown() {
		m.dragging = false
		return
	}
	if ev.Name() == "mousemove" {
		m.dragging = true
	}
}

func (m *MonitorModel) record(g tap.Gesture) {
	m.counts[g.Phase]++

	line := fmt.Sprintf("%s %s at %s", FormatPhase(g.Phase), SubtleStyle.Render(g.Event.Name()), g.Position)
	if g.IsDragging() {
		line += " " + InfoStyle.Render("dragging")
	}
	m.addLog(line)
}

func (m *MonitorModel) drainEngineLog() {
	for _, line := range m.engineLog.Lines() {
		m.addLog(SubtleStyle.Render(line))
	}
}

// addLog appends a timestamped line, trimming the oldest past maxLogs
func (m *MonitorModel) addLog(message string) {
	timestamp := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(time.Now().Format("15:04:05"))
	m.logs = append(m.logs, timestamp+" "+message)

	if len(m.logs) > m.maxLogs {
		m.logs = m.logs[len(m.logs)-m.maxLogs:]
	}
}

func (m *MonitorModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderLogs())
	m.viewport.GotoBottom()
}

// View renders the UI
func (m *MonitorModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m *MonitorModel) renderHeader() string {
	title := TitleStyle.Width(m.windowWidth).Render("WAYTAP MONITOR")

	state := SuccessStyle.Render("running")
	if m.done {
		state = ErrorStyle.Render("stopped")
	} else if m.tap.IsPaused() {
		state = WarningStyle.Render("paused")
	}

	var position, last string
	down := false
	var families []string
	if !m.done {
		position = m.tap.CurrentPosition().String()
		last = m.tap.LastPosition().String()
		down = m.tap.IsDown()

		active := m.tap.ActiveFamilies()
		seen := m.tap.SeenFamilies()
		for _, f := range tap.Families {
			families = append(families, FormatFamily(f, containsFamily(active, f), containsFamily(seen, f)))
		}
	}

	status := StatusBarStyle.Width(m.windowWidth).Render(strings.Join([]string{
		state,
		"pos " + position,
		"last " + last,
		fmt.Sprintf("down %t", down),
		fmt.Sprintf("dragging %t", down && m.dragging),
	}, " │ "))

	line := lipgloss.NewStyle().Width(m.windowWidth).Padding(0, 1).Render(strings.Join(families, "   "))

	return fmt.Sprintf("%s\n%s\n%s", title, status, line)
}

func (m *MonitorModel) renderStatusBar() string {
	controls := strings.Join([]string{
		FormatControl("p", "pause"),
		FormatControl("c", "clear"),
		FormatControl("q", "quit"),
	}, " │ ")

	counts := fmt.Sprintf("down %d  move %d  up %d",
		m.counts[tap.PhaseDown], m.counts[tap.PhaseMove], m.counts[tap.PhaseUp])

	return lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("240")).
		Width(m.windowWidth).
		Padding(0, 1).
		Render(counts + " │ " + controls)
}

func (m *MonitorModel) renderLogs() string {
	if len(m.logs) == 0 {
		return lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true).
			Render("  Click or drag in the terminal...")
	}
	return strings.Join(m.logs, "\n")
}

func containsFamily(list []tap.Family, f tap.Family) bool {
	for _, x := range list {
		if x == f {
			return true
		}
	}
	return false
}

// lineWriter collects complete lines written by a logger.
type lineWriter struct {
	buf   bytes.Buffer
	lines []string
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// incomplete line, keep it for the next write
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.lines = append(w.lines, strings.TrimRight(line, "\n"))
	}
	return len(p), nil
}

// Lines returns and clears the complete lines collected so far.
func (w *lineWriter) Lines() []string {
	lines := w.lines
	w.lines = nil
	return lines
}
