package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/placetui/feed"
	"github.com/qyinm/placetui/types"
)

// View renders the screen, with the detail modal on top when one is open
func (m Model) View() string {
	base := lipgloss.JoinVertical(lipgloss.Left, m.topView(), m.listView(), m.bottomView())
	if !m.selection.IsOpen() {
		return base
	}
	return placeOverlay(base, m.modalView(), m.width, m.height)
}

func (m Model) topView() string {
	greeting := GreetingStyle.Render(fmt.Sprintf("Hai, %s! 👋", m.userName))
	subtitle := SubtitleStyle.Render("Berita baru hari ini!")

	return lipgloss.JoinVertical(lipgloss.Left,
		greeting,
		subtitle,
		"",
		sectionHeader("Breaking News", m.width),
		m.headlinesView(),
		m.chipsView(),
		m.searchView(),
		sectionHeader("Recommendation", m.width),
	)
}

func (m Model) bottomView() string {
	var helpView string
	if m.selection.IsOpen() {
		helpView = m.help.View(modalKeyMap{m.keys})
	} else {
		helpView = m.help.View(m.keys)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.statusView(), helpView)
}

// sectionHeader renders a title with an inert "View all" link on the right.
func sectionHeader(title string, width int) string {
	left := SectionTitleStyle.Render(title)
	right := ViewAllStyle.Render("View all")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) headlinesView() string {
	if m.loading && len(m.items) == 0 {
		return m.spinner.View() + " " + StatusBarStyle.Render("Loading...")
	}
	headlines := feed.Headlines(m.items, m.headlines)
	if len(headlines) == 0 {
		return StatusBarStyle.Render("—")
	}

	frameW, _ := HeadlineCardStyle.GetFrameSize()
	cardW := m.width/len(headlines) - frameW
	if cardW < 8 {
		cardW = 8
	}
	cards := make([]string, 0, len(headlines))
	for _, it := range headlines {
		content := lipgloss.JoinVertical(lipgloss.Left,
			HeadlineNameStyle.Render(ansi.Truncate(it.Name(), cardW, "…")),
			ImageRefStyle.Render(ansi.Truncate(it.Image(), cardW, "…")),
		)
		cards = append(cards, HeadlineCardStyle.Width(cardW+2).Render(content))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return cutLines(row, m.width)
}

func (m Model) chipsView() string {
	active := m.chipIndex()
	chips := make([]string, 0, len(m.categories)+1)
	for i, label := range m.chipLabels() {
		style := InactiveChipStyle
		if i == active {
			style = ActiveChipStyle
		}
		chips = append(chips, style.Render(label))
	}
	row := strings.Join(chips, " ")
	if m.width > 0 {
		row = ansi.Truncate(row, m.width, "…")
	}
	return row
}

// chipLabels returns "Terbaru" followed by the loaded category names.
func (m Model) chipLabels() []string {
	labels := make([]string, 0, len(m.categories)+1)
	labels = append(labels, latestLabel)
	for _, c := range m.categories {
		labels = append(labels, c.Name())
	}
	return labels
}

func (m Model) searchView() string {
	style := SearchBoxStyle
	if m.focus == FocusSearch {
		style = SearchBoxFocusedStyle
	}
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(m.search.View())
}

func (m Model) listView() string {
	height := m.list.Height()
	if len(m.list.Items()) > 0 {
		return m.list.View()
	}

	var msg string
	switch {
	case m.loading:
		msg = m.spinner.View() + " Loading places..."
	case len(m.items) == 0:
		msg = "Tidak ada tempat untuk ditampilkan."
		if m.err != nil {
			msg += "\nPress r to try again."
		}
	default:
		msg = "No places match the current filter."
		if s := feed.Suggest(m.items, m.filter.Query, suggestCount); len(s) > 0 {
			msg += "\nDid you mean: " + strings.Join(s, ", ") + "?"
		}
	}
	return EmptyStateStyle.Height(max(height, 0)).Render(msg)
}

func (m Model) statusView() string {
	left := StatusBarStyle.Render(m.statusMsg)
	if m.err != nil {
		left = ErrorStyle.Render(m.statusMsg + ": " + strings.ReplaceAll(m.err.Error(), "\n", "; "))
	}
	right := StatusBarStyle.Render(fmt.Sprintf("%d/%d", len(m.list.Items()), len(m.items)))

	leftW := m.width - lipgloss.Width(right) - 1
	if leftW > 0 && lipgloss.Width(left) > leftW {
		left = ansi.Truncate(left, leftW, "…")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) modalView() string {
	item, ok := m.selection.Current()
	if !ok {
		return ""
	}
	w, _ := m.modalSize()

	category := item.Category()
	if category == "" {
		category = "—"
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		DetailTitleStyle.Render(ansi.Truncate(item.Name(), w, "…")),
		DetailCategoryStyle.Render(ansi.Truncate(category, w, "…")),
		ImageRefStyle.Render(ansi.Truncate("▣ "+item.Image(), w, "…")),
		"",
		m.viewport.View(),
		"",
		CloseButtonStyle.Render("Close")+"  "+StatusBarStyle.Render("y copy image url"),
	)
	return ModalStyle.Width(w + ModalStyle.GetHorizontalPadding()).Render(content)
}

// modalBody wraps the description to the modal width.
func (m Model) modalBody(item types.ViewItem) string {
	text := item.Description()
	if text == "" {
		text = "(no description)"
	}
	return lipgloss.NewStyle().Width(m.viewport.Width).Render(text)
}

// cutLines truncates every line of s to width cells.
func cutLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Cut(line, 0, width)
		}
	}
	return strings.Join(lines, "\n")
}
