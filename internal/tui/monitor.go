// Package tui renders the live strand state in a terminal. It is a pure
// monitor: the command path into the controller stays on the serial
// protocol, this client only watches the mirror stream.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/websocket"

	"github.com/buswatch/buslights/internal/lrucache"
	"github.com/buswatch/buslights/internal/protocol"
	"github.com/buswatch/buslights/internal/strand"
)

// tickMsg is sent every 1/30th second so bursts of snapshots collapse into
// at most one redraw per frame.
type tickMsg struct{}

// sgrPrefixCache caches just the SGR prefix for a given color (no reset),
// used by the RLE renderer.
var sgrPrefixCache = lrucache.New[strand.Color, string](512)

type Model struct {
	host      string
	conn      *websocket.Conn
	connected bool
	err       error

	snap        protocol.Snapshot
	frames      uint64
	pendingData []byte
	termWidth   int
	spinner     spinner.Model
}

func New(host string) *Model {
	return &Model{
		host:      host,
		termWidth: 80,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205")))),
	}
}

// tick returns a command that sends a tickMsg every 1/30th second (30 FPS)
func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// getSGRPrefix returns the ANSI SGR prefix for a color without reset, cached
// and bounded
func getSGRPrefix(c strand.Color) string {
	if s, ok := sgrPrefixCache.Get(c); ok {
		return s
	}
	prefix := fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R(), c.G(), c.B())
	sgrPrefixCache.Add(c, prefix)
	return prefix
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(connect(m.host), m.spinner.Tick, tick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.conn != nil {
				m.conn.Close(websocket.StatusNormalClosure, "")
				m.conn = nil
			}
			return m, tea.Quit
		}
	case connectionResult:
		m.connected = msg.Err == nil
		m.err = msg.Err
		m.conn = msg.Conn
		if m.isConnected() {
			return m, listen(m.conn)
		}
	case wsMessage:
		if msg.Err != nil {
			m.err = msg.Err
			m.connected = false
			return m, nil
		}

		// Cache the latest data instead of processing immediately
		m.pendingData = msg.Data

		if m.isConnected() {
			return m, listen(m.conn)
		}
	case tickMsg:
		// Process pending data at 30 FPS
		if m.pendingData != nil {
			snap, err := decodeSnapshot(m.pendingData)
			if err != nil {
				m.err = err
			} else {
				m.snap = snap
				m.frames++
				m.err = nil
			}
			m.pendingData = nil
		}
		return m, tick()
	case spinner.TickMsg:
		if !m.connected {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
	}
	return m, nil
}

func (m *Model) View() string {
	var s strings.Builder

	title := titleStyle.Render("Bus Lights")
	if !m.connected {
		title += fmt.Sprintf(" %s", m.spinner.View())
	}

	statusText := fmt.Sprintf("%s • %d px • %d frames • %s",
		stateLabel(m.snap), len(m.snap.Pixels), m.frames, connectedStatus(m.connected))
	status := statusStyle.Render(statusText)

	availableWidth := m.termWidth - 2
	titleWidth := lipgloss.Width(title)

	headerWithPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(m.termWidth)

	headerContent := lipgloss.JoinHorizontal(lipgloss.Top,
		title,
		lipgloss.NewStyle().Width(availableWidth-titleWidth-lipgloss.Width(status)).Render(""),
		status)

	s.WriteString(headerWithPadding.Render(headerContent))
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}

	s.WriteString(frameStyle.Render(m.renderStrand()))

	return s.String()
}

func stateLabel(snap protocol.Snapshot) string {
	if snap.EventActive {
		return fmt.Sprintf("Event: %s", snap.Event)
	}
	return fmt.Sprintf("Shift: %s • Idle: %s", snap.Shift, snap.IdleType)
}

// renderStrand draws the pixel row using run-length emission of ANSI
// sequences to reduce SGR count.
func (m *Model) renderStrand() string {
	pixels := m.snap.Pixels
	if len(pixels) == 0 {
		return statusStyle.Render("waiting for frames...")
	}

	var b strings.Builder
	b.Grow(len(pixels)*2 + 64)

	var runColor strand.Color
	runLen := 0

	flush := func() {
		if runLen == 0 {
			return
		}
		if runColor == 0 {
			b.WriteString(strings.Repeat("  ", runLen))
		} else {
			b.WriteString(getSGRPrefix(runColor))
			b.WriteString(strings.Repeat("██", runLen))
			b.WriteString("\x1b[0m")
		}
		runLen = 0
	}

	for _, p := range pixels {
		if runLen == 0 {
			runColor = p
			runLen = 1
			continue
		}
		if p == runColor {
			runLen++
		} else {
			flush()
			runColor = p
			runLen = 1
		}
	}
	flush()

	return b.String()
}

func (m *Model) isConnected() bool {
	return m.connected && m.conn != nil
}
