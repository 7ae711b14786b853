package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/placetui/types"
)

// PlaceDelegate is a custom list delegate for rendering ViewItems
type PlaceDelegate struct{}

// Height returns the height of a list item (3 lines)
func (d PlaceDelegate) Height() int {
	return 3
}

// Spacing returns the spacing between list items
func (d PlaceDelegate) Spacing() int {
	return 1
}

// Update handles updates for the delegate (no-op for places)
func (d PlaceDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single place item
func (d PlaceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	place, ok := item.(types.ViewItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	width := m.Width()
	indent := "  "

	// Line 1: Name + category, category right-aligned
	category := place.Category()
	nameAvailable := width - len(indent) - lipgloss.Width(category) - 1
	if nameAvailable < 1 {
		nameAvailable = 1
	}
	name := ansi.Truncate(place.Name(), nameAvailable, "…")
	gap := nameAvailable - lipgloss.Width(name)
	if gap < 0 {
		gap = 0
	}

	nameStyle := lipgloss.NewStyle().Foreground(DraculaForeground).Bold(true)
	categoryStyle := lipgloss.NewStyle().Foreground(DraculaComment)
	marker := indent
	if isSelected {
		nameStyle = nameStyle.Foreground(DraculaPink)
		categoryStyle = categoryStyle.Foreground(DraculaCyan)
		marker = lipgloss.NewStyle().Foreground(DraculaPink).Render("▌ ")
	}
	line1 := marker + nameStyle.Render(name) + strings.Repeat(" ", gap+1) + categoryStyle.Render(category)

	// Line 2: first line of the description
	summary := firstLine(place.Description())
	summary = ansi.Truncate(summary, max(width-len(indent), 0), "…")
	line2 := indent + lipgloss.NewStyle().Foreground(DraculaForeground).Faint(!isSelected).Render(summary)

	// Line 3: image reference
	image := ansi.Truncate("▣ "+place.Image(), max(width-len(indent), 0), "…")
	line3 := indent + ImageRefStyle.Render(image)

	fmt.Fprint(w, line1+"\n"+line2+"\n"+line3)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
