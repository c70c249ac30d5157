package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lszabadkai/quarterback/internal/timeline"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	gutterStyle   = lipgloss.NewStyle().Width(gutterWidth).Foreground(lipgloss.Color("250"))
	currentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)

	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("75"))
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
	backlogStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))

	heatStyles = map[timeline.HeatLevel]lipgloss.Style{
		timeline.HeatLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		timeline.HeatMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		timeline.HeatHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		timeline.HeatOver:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeForm && m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.renderWeekHeader())
	b.WriteString(m.renderHeatRow())
	b.WriteString(m.renderLanes())
	b.WriteString(m.renderBacklog())
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	title := fmt.Sprintf(" %s  ·  %s view", m.engine.Period().Label(), m.view)
	return titleStyle.Render(title) + "\n"
}

func (m boardModel) renderWeekHeader() string {
	weeks := m.engine.Weeks()
	cells := make([]string, len(weeks))
	for i, w := range weeks {
		label := w.Start.Format("Jan 2")
		if w.IsCurrent {
			label = currentStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}
		cells[i] = padCell(label, m.weekColWidth(), lipgloss.Width)
	}
	return strings.Repeat(" ", gutterWidth) + strings.Join(cells, "") + "\n"
}

func (m boardModel) renderHeatRow() string {
	heat := m.engine.Heat()
	cells := make([]string, len(heat))
	for i, h := range heat {
		label := fmt.Sprintf("%.0f%%", h.Utilization)
		cells[i] = padCell(heatStyles[h.Level].Render(label), m.weekColWidth(), lipgloss.Width)
	}
	return gutterStyle.Render(" capacity") + strings.Join(cells, "") + "\n"
}

func (m boardModel) renderLanes() string {
	var b strings.Builder
	preview, hasPreview := m.engine.Preview()

	for _, person := range m.people {
		label := fmt.Sprintf(" %-3s %s", person.Avatar, truncate(person.Name, gutterWidth-6))
		b.WriteString(gutterStyle.Render(label))

		cells := newLaneCells(m.gridWidth())
		for _, bar := range m.engine.Bars() {
			if bar.Lane != person.ID {
				continue
			}
			style := barStyle
			if bar.ProjectID == m.selectedID {
				style = selectedStyle
			}
			m.paintBar(cells, bar.Pos, m.projectName(bar.ProjectID), style)
		}
		if hasPreview && preview.Lane == person.ID && !preview.OverBacklog {
			m.paintBar(cells, preview.Pos, m.projectName(preview.ProjectID), previewStyle)
		}

		b.WriteString(renderLaneCells(cells))
		b.WriteString("\n\n")
	}

	if len(m.people) == 0 {
		b.WriteString(dimStyle.Render("  No people yet: quarterback team add --name <name>"))
		b.WriteString("\n\n")
	}
	return b.String()
}

// laneCell is one grid column of a lane row; a nil style renders the
// empty-track dot.
type laneCell struct {
	ch    rune
	style *lipgloss.Style
}

func newLaneCells(width int) []laneCell {
	cells := make([]laneCell, width)
	for i := range cells {
		cells[i] = laneCell{ch: '·'}
	}
	return cells
}

// paintBar writes a bar's label into the cell buffer at its percent
// position. Later paints win, so the preview is painted last.
func (m boardModel) paintBar(cells []laneCell, pos timeline.BarPosition, name string, style lipgloss.Style) {
	left, right := m.barCols(pos)
	left -= gutterWidth
	right -= gutterWidth

	label := []rune(truncate(name, right-left+1))
	for col := left; col <= right && col < len(cells); col++ {
		if col < 0 {
			continue
		}
		ch := ' '
		if i := col - left; i < len(label) {
			ch = label[i]
		}
		cells[col] = laneCell{ch: ch, style: &style}
	}
}

// renderLaneCells flushes the buffer into a styled string, batching
// adjacent cells that share a style into one Render call.
func renderLaneCells(cells []laneCell) string {
	var b strings.Builder
	var run []rune
	var runStyle *lipgloss.Style

	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle != nil {
			b.WriteString(runStyle.Render(string(run)))
		} else {
			b.WriteString(dimStyle.Render(string(run)))
		}
		run = run[:0]
	}

	for _, c := range cells {
		if c.style != runStyle {
			flush()
			runStyle = c.style
		}
		run = append(run, c.ch)
	}
	flush()
	return b.String()
}

func (m boardModel) renderBacklog() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(" ── backlog " + strings.Repeat("─", maxInt(0, m.width-12))))
	b.WriteString("\n")

	backlog := m.backlogProjects()
	if len(backlog) == 0 {
		b.WriteString(dimStyle.Render("  (empty)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range backlog {
		if i >= backlogRows-1 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(backlog)-i)))
			b.WriteString("\n")
			break
		}
		score := "   -"
		if v, ok := p.IceScore(); ok {
			score = fmt.Sprintf("%4.1f", v)
		}
		label := fmt.Sprintf("  %s  ICE %s  %s", truncate(p.Name, 30), score, dimStyle.Render(string(p.Status)))
		if p.ID == m.pendingID {
			label = backlogStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
	}
	return b.String()
}

func (m boardModel) renderFooter() string {
	if m.err != nil {
		return errorStyle.Render(" " + m.err.Error())
	}
	if m.statusLine != "" {
		return dimStyle.Render(" " + m.statusLine)
	}
	return " " + m.helpView.View(m.keys)
}

func (m boardModel) weekColWidth() int {
	weeks := m.engine.Weeks()
	if len(weeks) == 0 {
		return m.gridWidth()
	}
	return m.gridWidth() / len(weeks)
}

func padCell(s string, width int, measure func(string) int) string {
	if pad := width - measure(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
