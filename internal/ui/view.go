package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/sonirico/pathctl/internal/pathlist"
	uistate "github.com/sonirico/pathctl/internal/ui/state"
)

const (
	defaultWidth  = 80
	panelChrome   = 2 // top + bottom border rows
	inputPanelH   = 3
	keysPanelH    = 3
	minListPanelH = 3
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. It is a projection of the session: it reads the
// list, selection and mode and never changes them.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	composing, isComposing := m.session.Composing()

	var sections []string
	listH := m.listPanelHeight(isComposing)
	sections = append(sections, m.renderListPanel(width, listH))
	if isComposing {
		title := "Insert After"
		if composing.Side == pathlist.Before {
			title = "Insert Before"
		}
		input := styledLine{text: m.composePrompt(composing.Buffer), raw: true}
		sections = append(sections, renderPanel(title, "", []styledLine{input}, width, inputPanelH))
	}
	sections = append(sections, m.renderKeysPanel(width, isComposing))
	if m.status != "" {
		status := applyWidth([]styledLine{{text: m.status, style: styles.Error}}, width)
		sections = append(sections, renderLines(status)...)
	}
	return strings.Join(sections, "\n")
}

// listPanelHeight returns the total rows for the list panel, or 0 when the
// terminal height is unknown and the panel should grow to fit.
func (m *Model) listPanelHeight(composing bool) int {
	if m.height <= 0 {
		return 0
	}
	used := keysPanelH
	if composing {
		used += inputPanelH
	}
	if m.status != "" {
		used++
	}
	remain := m.height - used
	if remain < minListPanelH {
		return minListPanelH
	}
	return remain
}

func (m *Model) renderListPanel(width, height int) string {
	list := m.session.List()
	title := fmt.Sprintf("%s Entries", m.varName)
	total := list.Len()
	selected, hasSelection := list.Selected()
	if !hasSelection {
		selected = -1
	}
	visible := 0
	if height > 0 {
		visible = height - panelChrome
		if visible < 1 {
			visible = 1
		}
	}
	lines := make([]styledLine, 0, total)
	if total == 0 {
		lines = append(lines, styledLine{text: "(no entries)", style: styles.Info})
	} else {
		start, end := uistate.Window(total, selected, visible)
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.buildEntryLine(idx, idx == selected))
		}
	}
	if height <= 0 {
		height = len(lines) + panelChrome
	}
	return renderPanel(title, uistate.PageInfo(selected, total), lines, width, height)
}

// buildEntryLine constructs a single styledLine for a list entry.
func (m *Model) buildEntryLine(idx int, selected bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	label := m.session.List().At(idx)
	var tags []string
	if idx < len(m.notes) {
		note := m.notes[idx]
		if note.Empty {
			label = `""`
			tags = append(tags, "(empty: current dir)")
		}
		if note.Missing {
			tags = append(tags, "(missing)")
			lineStyle = styles.Missing
		}
		if note.Duplicate {
			tags = append(tags, "(dup)")
		}
	}
	if len(tags) > 0 {
		label += "  " + strings.Join(tags, " ")
	}
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	return styledLine{
		text:          indicator + " " + label,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) renderKeysPanel(width int, composing bool) string {
	bindings := m.keys.Nav.ShortHelp()
	if composing {
		bindings = m.keys.Compose.ShortHelp()
	}
	m.help.Width = width - 2
	line := styledLine{text: m.help.ShortHelpView(bindings), raw: true}
	return renderPanel("Keys", "", []styledLine{line}, width, keysPanelH)
}

// renderPanel draws a rounded box of exactly height rows and totalWidth
// columns with title and info set into the top border.
func renderPanel(title, info string, lines []styledLine, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - panelChrome
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	titleSeg := ""
	if title != "" {
		titleSeg = " " + title + " "
	}
	infoSeg := ""
	if info != "" {
		infoSeg = " " + info + " "
	}
	dashes := totalWidth - 4 - len([]rune(titleSeg)) - len([]rune(infoSeg))
	if dashes < 0 {
		infoSeg = ""
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		titleSeg = " … "
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := renderStyle(styles.PanelBorder, tlc+hz) +
		renderStyle(styles.PanelTitle, titleSeg) +
		renderStyle(styles.PanelBorder, strings.Repeat(hz, dashes)) +
		renderStyle(styles.PanelScroll, infoSeg) +
		renderStyle(styles.PanelBorder, hz+trc)
	bottomLine := renderStyle(styles.PanelBorder, blc+strings.Repeat(hz, innerW)+brc)

	body := renderLines(applyWidth(lines, innerW))
	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(body) {
			content = body[i]
		}
		if w := lipgloss.Width(content); w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, renderStyle(styles.PanelBorder, vt)+content+renderStyle(styles.PanelBorder, vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

func renderStyle(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return out
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
