package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bincodec/wire"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	consumedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505050"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	src     *wire.BufferSource
	data    []byte
	history []readEntry
	gotoIn  textinput.Model
	state   inspectState
	err     error
}

type readEntry struct {
	offset int
	kind   string
	value  string
	failed bool
}

type inspectState int

const (
	stateBrowse inspectState = iota
	stateGoto
)

// keyKinds maps single-key shortcuts to value types for readAs.
var keyKinds = map[string]string{
	"1": "u8",
	"2": "u16",
	"4": "u32",
	"8": "u64",
	"6": "u128",
	"f": "f32",
	"d": "f64",
	"b": "bool",
	"s": "string",
	"r": "rune",
	"t": "tag",
	"c": "count",
}

const historyLimit = 12

func newInspectModel(data []byte, ctx wire.Context) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "offset"
	ti.Prompt = "go to: "
	ti.Width = 12
	return &inspectModel{
		src:    wire.NewBufferSourceWithContext(data, ctx),
		data:   data,
		gotoIn: ti,
		state:  stateBrowse,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateGoto {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.applyGoto()
			m.state = stateBrowse
			m.gotoIn.Blur()
		case "esc":
			m.state = stateBrowse
			m.gotoIn.Blur()
		default:
			var cmd tea.Cmd
			m.gotoIn, cmd = m.gotoIn.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch s := key.String(); s {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "g":
		m.state = stateGoto
		m.gotoIn.SetValue("")
		m.gotoIn.Focus()

	case "0":
		m.src.SetPosition(0)
		m.err = nil

	default:
		if kind, ok := keyKinds[s]; ok {
			m.readValue(kind)
		}
	}

	return m, nil
}

func (m *inspectModel) applyGoto() {
	pos, err := strconv.Atoi(strings.TrimSpace(m.gotoIn.Value()))
	if err != nil {
		m.err = fmt.Errorf("bad offset %q", m.gotoIn.Value())
		return
	}
	m.src.SetPosition(pos)
	m.err = nil
}

func (m *inspectModel) readValue(kind string) {
	offset := m.src.Position()
	value, err := readAs(m.src, kind)
	entry := readEntry{offset: offset, kind: kind}
	if err != nil {
		entry.value = err.Error()
		entry.failed = true
		m.err = err
	} else {
		entry.value = value
		m.err = nil
	}
	m.history = append(m.history, entry)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("binspect"))
	b.WriteString(fmt.Sprintf("  %s  position %d  remaining %d\n\n",
		m.src.Context().Order, m.src.Position(), m.src.Remaining()))

	b.WriteString(m.renderHex())
	b.WriteString("\n")

	if len(m.history) > 0 {
		for _, e := range m.history {
			line := fmt.Sprintf("%08x  %s  ", e.offset, kindStyle.Render(fmt.Sprintf("%-7s", e.kind)))
			if e.failed {
				line += errorStyle.Render(e.value)
			} else {
				line += valueStyle.Render(e.value)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.state == stateGoto {
		b.WriteString(m.gotoIn.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter jump • esc cancel"))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("1/2/4/8 u8-u64 • 6 u128 • f/d float • b bool • s string • t tag • c count • r rune • g goto • 0 rewind • q quit"))
	return b.String()
}

// renderHex shows the buffer with consumed bytes dimmed and the cursor byte
// highlighted.
func (m *inspectModel) renderHex() string {
	pos := m.src.Position()
	var b strings.Builder

	for off := 0; off < len(m.data); off += bytesPerRow {
		end := off + bytesPerRow
		if end > len(m.data) {
			end = len(m.data)
		}

		b.WriteString(offsetStyle.Render(fmt.Sprintf("%08x  ", off)))
		for i := off; i < end; i++ {
			if i == bytesPerRow/2+off {
				b.WriteByte(' ')
			}
			cell := fmt.Sprintf("%02x", m.data[i])
			switch {
			case i == pos:
				b.WriteString(cursorStyle.Render(cell))
			case i < pos:
				b.WriteString(consumedStyle.Render(cell))
			default:
				b.WriteString(cell)
			}
			b.WriteByte(' ')
		}
		b.WriteString("\n")
	}

	if pos >= len(m.data) {
		b.WriteString(offsetStyle.Render(fmt.Sprintf("%08x  ", len(m.data))))
		b.WriteString(cursorStyle.Render("end"))
		b.WriteString("\n")
	}
	return b.String()
}

func runInteractive(data []byte, ctx wire.Context) error {
	p := tea.NewProgram(newInspectModel(data, ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
