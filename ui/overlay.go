package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// placeOverlay draws box centered on top of base. base is padded or cut to
// exactly width x height cells; box lines wider than width are cut.
func placeOverlay(base, box string, width, height int) string {
	if width <= 0 || height <= 0 || box == "" {
		return base
	}

	boxLines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	boxW := 0
	for _, line := range boxLines {
		if w := lipgloss.Width(line); w > boxW {
			boxW = w
		}
	}
	if boxW > width {
		boxW = width
	}
	if len(boxLines) > height {
		boxLines = boxLines[:height]
	}
	boxH := len(boxLines)

	top := (height - boxH) / 2
	left := (width - boxW) / 2

	lines := normalizeBase(base, width, height)
	for i, line := range boxLines {
		row := top + i
		lineW := lipgloss.Width(line)
		if lineW > boxW {
			line = ansi.Cut(line, 0, boxW)
			lineW = boxW
		}
		if lineW < boxW {
			line += strings.Repeat(" ", boxW-lineW)
		}
		leftSlice := ansi.Cut(lines[row], 0, left)
		rightSlice := ansi.Cut(lines[row], left+boxW, width)
		lines[row] = leftSlice + ansi.ResetStyle + line + ansi.ResetStyle + rightSlice
	}

	return strings.Join(lines, "\n")
}

func normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
