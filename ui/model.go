package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/placetui/feed"
	"github.com/qyinm/placetui/types"
)

// Focus is the component receiving key presses on the main screen
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
)

const (
	latestLabel  = "Terbaru"
	maxModalW    = 72
	suggestCount = 3
)

// Options configures the screen.
type Options struct {
	UserName  string
	Headlines int
}

// Model is the main TUI model
type Model struct {
	ctx        context.Context
	loader     *feed.Loader
	list       list.Model
	search     textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	help       help.Model
	keys       keyMap
	focus      Focus
	items      []types.ViewItem
	categories []types.Category
	filter     feed.FilterState
	selection  feed.Selection
	userName   string
	headlines  int
	width      int
	height     int
	loading    bool
	requestID  int
	err        error
	statusMsg  string
	clipboard  func(string) error
}

// NewModel creates a new Model. ctx bounds every load the screen starts and
// should be cancelled when the program exits.
func NewModel(ctx context.Context, loader *feed.Loader, opts Options) Model {
	l := list.New([]list.Item{}, PlaceDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 100

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(DraculaPink)

	headlines := opts.Headlines
	if headlines < 0 {
		headlines = 0
	}

	return Model{
		ctx:       ctx,
		loader:    loader,
		list:      l,
		search:    ti,
		viewport:  viewport.New(0, 0),
		spinner:   s,
		help:      help.New(),
		keys:      keys,
		focus:     FocusList,
		userName:  opts.UserName,
		headlines: headlines,
		loading:   true,
		requestID: 1,
		statusMsg: "Loading places...",
		clipboard: writeClipboard,
	}
}

// Init starts the initial load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadFeed(m.ctx, m.loader, m.requestID))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case feedLoadedMsg:
		if msg.requestID != m.requestID {
			return m, nil
		}
		m.applyResult(msg.result)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.statusMsg = "Copied " + msg.text
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.selection.IsOpen() {
			return m.updateModal(msg)
		}
		if m.focus == FocusSearch {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.focus = FocusSearch
		m.resizePanes()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.NextCategory):
		m.cycleCategory(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleCategory(-1)
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.list.SelectedItem().(types.ViewItem); ok {
			m.openItem(item)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.filter.Query != "" {
			m.search.SetValue("")
			m.setQuery("")
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.requestID++
		m.loading = true
		m.statusMsg = "Reloading..."
		return m, tea.Batch(m.spinner.Tick, loadFeed(m.ctx, m.loader, m.requestID))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab:
		m.search.Blur()
		m.focus = FocusList
		m.resizePanes()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.filter.Query {
		m.setQuery(v)
	}
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.selection.Close()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		item, _ := m.selection.Current()
		return m, copyToClipboard(m.clipboard, item.Image())
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// applyResult replaces each collection whose fetch succeeded. Items keep
// the category names they were fetched with.
func (m *Model) applyResult(res feed.Result) {
	m.loading = false
	if res.CategoriesLoaded() {
		m.categories = res.Categories
	}
	if res.ItemsLoaded() {
		m.items = res.Items
	}
	m.err = res.Err()
	if m.err != nil {
		m.statusMsg = "Load failed"
	} else {
		m.statusMsg = fmt.Sprintf("%d places, %d categories", len(m.items), len(m.categories))
	}
	m.refreshList()
	m.resizePanes()
}

// cycleCategory moves the chip selection by delta, wrapping around.
// Chip 0 is the synthetic "Terbaru" option.
func (m *Model) cycleCategory(delta int) {
	n := len(m.categories) + 1
	idx := m.chipIndex()
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+delta)%n + n) % n
	}
	if idx == 0 {
		m.filter.Select(feed.Latest())
	} else {
		m.filter.Select(feed.CategoryOf(m.categories[idx-1].ID()))
	}
	m.refreshList()
}

// chipIndex returns the chip of the current selection, -1 when the selected
// id is not among the loaded categories.
func (m Model) chipIndex() int {
	id, ok := m.filter.Category.ID()
	if !ok {
		return 0
	}
	for i, c := range m.categories {
		if c.ID() == id {
			return i + 1
		}
	}
	return -1
}

func (m *Model) setQuery(q string) {
	m.filter.SetQuery(q)
	m.refreshList()
}

// refreshList re-derives the visible subset from the full collection.
func (m *Model) refreshList() {
	visible := feed.Visible(m.items, m.categories, m.filter)
	items := make([]list.Item, 0, len(visible))
	for _, it := range visible {
		items = append(items, it)
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
}

func (m *Model) openItem(item types.ViewItem) {
	m.selection.Open(item)
	m.resizeModal()
	m.viewport.SetContent(m.modalBody(item))
	m.viewport.GotoTop()
}

// resizePanes adjusts the list and modal to the window size
func (m *Model) resizePanes() {
	m.search.Width = max(m.width-8, 10)
	m.help.Width = m.width

	chrome := lipgloss.Height(m.topView()) + lipgloss.Height(m.bottomView())
	available := m.height - chrome
	if available < 0 {
		available = 0
	}
	m.list.SetSize(m.width, available)
	m.resizeModal()
}

func (m *Model) resizeModal() {
	w, h := m.modalSize()
	m.viewport.Width = w
	m.viewport.Height = h
	if item, ok := m.selection.Current(); ok {
		m.viewport.SetContent(m.modalBody(item))
	}
}

// modalSize returns the inner size of the scrollable description area.
func (m Model) modalSize() (int, int) {
	frameW, frameH := ModalStyle.GetFrameSize()
	w := min(m.width-4, maxModalW) - frameW
	// title, category, image, blank line, blank line, close button
	h := m.height - 4 - frameH - 6
	return max(w, 10), max(h, 3)
}

// Visible returns the items currently shown in the list.
func (m Model) Visible() []types.ViewItem {
	return feed.Visible(m.items, m.categories, m.filter)
}

// Selected returns the item open in the detail modal.
func (m Model) Selected() (types.ViewItem, bool) {
	return m.selection.Current()
}

// Filter returns the current filter state.
func (m Model) Filter() feed.FilterState {
	return m.filter
}

// Err returns the error of the last load, if any.
func (m Model) Err() error {
	return m.err
}
