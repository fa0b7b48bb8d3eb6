package button

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// RowPoints is how many points one terminal row spans. Cells are roughly
// twice as tall as they are wide, so a W == H button renders round.
const RowPoints = 2

// View renders the button at its current presentation values
func (m *Model) View() string {
	now := m.clock()

	bg := m.background
	if !m.enabled {
		bg = m.disabledBackground
	}

	if scale := m.Scale(now); scale > 1 {
		return m.viewExpanded(m.Width(now)*scale, m.frame.H*scale, bg)
	}

	cols := max(int(math.Round(m.Width(now))), 1)
	rows := max(int(math.Round(m.frame.H/RowPoints)), 1)

	style := lipgloss.NewStyle().
		Foreground(m.foreground).
		Background(bg).
		Align(lipgloss.Center, lipgloss.Center)

	innerW, innerH := cols, rows
	if cols >= 3 && rows >= 3 {
		border := lipgloss.NormalBorder()
		if m.CornerRadius(now) > 0 {
			border = lipgloss.RoundedBorder()
		}
		style = style.Border(border).BorderForeground(bg)
		innerW, innerH = cols-2, rows-2
	}

	box := style.Width(innerW).Height(innerH).Render(m.label(innerW))

	if !m.layer.Has(keyPosition) {
		return box
	}
	return m.shift(box, m.OffsetX(now))
}

func (m *Model) label(width int) string {
	if m.spinner.Visible() {
		return m.spinner.View()
	}

	text := m.title
	if m.image != "" {
		if text == "" {
			text = m.image
		} else {
			text = m.image + " " + text
		}
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "…")
	}
	return text
}

// shift pads the box so that its left edge moves by offset columns while the
// total width stays the same; the host keeps centring a constant block.
func (m *Model) shift(box string, offset float64) string {
	amplitude := int(math.Ceil(m.profile.ShakeAmplitude))
	off := int(math.Round(offset))
	left := max(amplitude+off, 0)
	right := max(amplitude-off, 0)

	lines := strings.Split(box, "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", left) + line + strings.Repeat(" ", right)
	}
	return strings.Join(lines, "\n")
}

// viewExpanded fills the scaled area, clamped to the viewport when known
func (m *Model) viewExpanded(w, h float64, bg lipgloss.TerminalColor) string {
	vp := m.viewport.Size()
	if vp.W > 0 {
		w = math.Min(w, vp.W)
	}
	if vp.H > 0 {
		h = math.Min(h, vp.H)
	}

	cols := max(int(math.Round(w)), 1)
	rows := max(int(math.Round(h/RowPoints)), 1)
	return lipgloss.NewStyle().
		Background(bg).
		Width(cols).
		Height(rows).
		Render("")
}
