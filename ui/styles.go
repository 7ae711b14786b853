package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaBackground = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	DraculaBlue       = lipgloss.AdaptiveColor{Light: "12", Dark: "12"}

	// Header
	GreetingStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)

	// Section titles with the inert "View all" link
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaForeground).
				Bold(true)
	ViewAllStyle = lipgloss.NewStyle().
			Foreground(DraculaBlue)

	// Breaking news cards
	HeadlineCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DraculaComment).
				Padding(0, 1).
				MarginRight(1)
	HeadlineNameStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Bold(true)

	// Category chips
	ActiveChipStyle = lipgloss.NewStyle().
			Foreground(DraculaBackground).
			Background(DraculaPink).
			Bold(true).
			Padding(0, 1)
	InactiveChipStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Padding(0, 1)

	// Search box
	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 1)
	SearchBoxFocusedStyle = SearchBoxStyle.
				BorderForeground(DraculaPink)

	// Detail modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaPink).
			Padding(1, 2)
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	DetailCategoryStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Italic(true)
	CloseButtonStyle = lipgloss.NewStyle().
				Foreground(DraculaForeground).
				Background(DraculaBlue).
				Bold(true).
				Padding(0, 1)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Italic(true).
			Padding(1, 2)

	// Image references are URLs, rendered dimmed
	ImageRefStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
)
