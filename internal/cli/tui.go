package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/payload"
	"gatewheel/pkg/wheel"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// gateRow is one precomputed list entry. Everything shown in the browser
// derives from immutable tables, so rows are built once at startup.
type gateRow struct {
	gate    hexagram.Gate
	name    string
	quarter string
	face    string
	angle   float64
}

// gateListModel is the bubbletea model for the interactive gate browser.
// Gates are listed in wheel order so scrolling follows the rim.
type gateListModel struct {
	rows   []gateRow
	seq    string
	cursor int
	height int
	offset int
}

func newGateListModel(seq *wheel.Sequence) gateListModel {
	set := payload.Default()
	rows := make([]gateRow, 0, hexagram.GateCount)
	for _, g := range seq.Ordering() {
		c, err := wheel.Classify(g)
		if err != nil {
			continue
		}
		pos, err := wheel.Position(g, seq)
		if err != nil {
			continue
		}
		name := ""
		if info, err := set.Gate(g); err == nil {
			name = info.Name
		}
		rows = append(rows, gateRow{
			gate:    g,
			name:    name,
			quarter: c.Quarter.String(),
			face:    c.Face.String(),
			angle:   pos.AngleDegrees,
		})
	}
	return gateListModel{rows: rows, seq: seq.Name(), height: 15}
}

func (m gateListModel) Init() tea.Cmd {
	return nil
}

func (m gateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m gateListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Gate Browser · %s", m.seq)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		line := fmt.Sprintf("%7.3f°  %2d  %s", r.angle, r.gate, r.name)

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(m.rows) > 0 {
		r := m.rows[m.cursor]
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("quarter %s · face %s", r.quarter, r.face)))
		b.WriteString("\n")
	}
	return b.String()
}
