package ui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/placetui/feed"
)

// Message types for async operations

type feedLoadedMsg struct {
	requestID int
	result    feed.Result
}

type clipboardMsg struct {
	text string
	err  error
}

// loadFeed returns a tea.Cmd that runs the places + categories load.
// The loader never fails; partial results come back in the Result.
func loadFeed(ctx context.Context, loader *feed.Loader, requestID int) tea.Cmd {
	return func() tea.Msg {
		return feedLoadedMsg{requestID: requestID, result: loader.Load(ctx)}
	}
}

// copyToClipboard returns a tea.Cmd writing text to the system clipboard.
func copyToClipboard(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: write(text)}
	}
}

var writeClipboard = clipboard.WriteAll
