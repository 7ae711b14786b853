package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/placetui/feed"
	"github.com/qyinm/placetui/types"
)

type fakeSource struct {
	places     []types.Place
	categories []types.Category
	failPlaces bool
	failCats   bool
}

func (f *fakeSource) GetPlaces(context.Context) ([]types.Place, error) {
	if f.failPlaces {
		return nil, errors.New("upstream places error")
	}
	return f.places, nil
}

func (f *fakeSource) GetCategories(context.Context) ([]types.Category, error) {
	if f.failCats {
		return nil, errors.New("upstream categories error")
	}
	return f.categories, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		places: []types.Place{
			types.NewPlace(1, "https://img.example/borobudur.jpg", "Borobudur", "Candi Buddha terbesar.\nMagelang", types.NewCategoryRef(1, "Temple")),
			types.NewPlace(2, "", "Bali Beach", "Pantai berpasir putih", types.NewCategoryRef(2, "Beach")),
		},
		categories: []types.Category{
			types.NewCategory(1, "Temple", "temple"),
			types.NewCategory(2, "Beach", "beach"),
		},
	}
}

func newLoadedModel(t *testing.T, src *fakeSource) Model {
	t.Helper()
	ctx := context.Background()
	loader := feed.NewLoader(src)
	m := NewModel(ctx, loader, Options{UserName: "Rizalramzi", Headlines: 3})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated, _ = updated.(Model).Update(feedLoadedMsg{requestID: 1, result: loader.Load(ctx)})
	return updated.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func visibleNames(m Model) []string {
	var out []string
	for _, it := range m.Visible() {
		out = append(out, it.Name())
	}
	return out
}

func TestInitialLoadPopulatesList(t *testing.T) {
	m := newLoadedModel(t, newFakeSource())

	if m.loading {
		t.Fatal("expected loading to finish")
	}
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("list items = %d, want 2", got)
	}
	if m.items[1].Image() != types.PlaceholderImage {
		t.Fatalf("missing photo should map to placeholder, got %q", m.items[1].Image())
	}
}

func TestCategoryChipsCycle(t *testing.T) {
	m := newLoadedModel(t, newFakeSource())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := visibleNames(m); len(got) != 1 || got[0] != "Borobudur" {
		t.Fatalf("after tab visible = %v, want [Borobudur]", got)
	}
	if m.chipIndex() != 1 {
		t.Fatalf("chip = %d, want 1", m.chipIndex())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if !m.Filter().Category.IsLatest() {
		t.Fatal("shift+tab should return to Terbaru")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := visibleNames(m); len(got) != 1 || got[0] != "Bali Beach" {
		t.Fatalf("wrapping back should select Beach, visible = %v", got)
	}
}

func TestSearchFiltersLive(t *testing.T) {
	m := newLoadedModel(t, newFakeSource())

	m, _ = press(t, m, runes("/"))
	if m.focus != FocusSearch {
		t.Fatal("expected search focus after /")
	}

	m, _ = press(t, m, runes("b"))
	if got := len(m.Visible()); got != 2 {
		t.Fatalf("query b visible = %d, want 2", got)
	}
	m, _ = press(t, m, runes("each"))
	if got := visibleNames(m); len(got) != 1 || got[0] != "Bali Beach" {
		t.Fatalf("query beach visible = %v", got)
	}
	if m.Filter().Query != "beach" {
		t.Fatalf("query = %q", m.Filter().Query)
	}

	// q is text while searching, not quit
	m, cmd := press(t, m, runes("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("typing q in search must not quit")
		}
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != FocusList {
		t.Fatal("esc should leave the search field")
	}

	// category and query must both hold
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Visible(); len(got) != 0 {
		t.Fatalf("Temple + beach should be empty, got %d", len(got))
	}
	if !strings.Contains(ansi.Strip(m.View()), "No places match") {
		t.Fatal("expected empty-state message")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Filter().Query != "" {
		t.Fatalf("esc on the list should clear the query, got %q", m.Filter().Query)
	}
}

func TestOpenAndCloseModal(t *testing.T) {
	m := newLoadedModel(t, newFakeSource())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	item, ok := m.Selected()
	if !ok || item.Name() != "Borobudur" {
		t.Fatalf("selected = %q,%v, want Borobudur", item.Name(), ok)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Candi Buddha terbesar.") || !strings.Contains(view, "Close") {
		t.Fatalf("modal should show description and close button:\n%s", view)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.Selected(); ok {
		t.Fatal("esc should close the modal")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	item, _ = m.Selected()
	if item.Name() != "Bali Beach" {
		t.Fatalf("reopened item = %q, want Bali Beach", item.Name())
	}
	m, _ = press(t, m, runes("c"))
	if _, ok := m.Selected(); ok {
		t.Fatal("c should close the modal")
	}
}

func TestCopyImageURL(t *testing.T) {
	m := newLoadedModel(t, newFakeSource())
	var copied string
	m.clipboard = func(s string) error {
		copied = s
		return nil
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := press(t, m, runes("y"))
	if cmd == nil {
		t.Fatal("expected clipboard command")
	}
	updated, _ := m.Update(cmd())
	m = updated.(Model)

	if copied != "https://img.example/borobudur.jpg" {
		t.Fatalf("copied %q", copied)
	}
	if !strings.Contains(m.statusMsg, "Copied") {
		t.Fatalf("status = %q", m.statusMsg)
	}
	if _, ok := m.Selected(); !ok {
		t.Fatal("copying must keep the modal open")
	}
}

func TestStaleLoadIgnored(t *testing.T) {
	src := newFakeSource()
	m := newLoadedModel(t, src)

	m, _ = press(t, m, runes("r"))
	if !m.loading || m.requestID != 2 {
		t.Fatalf("refresh should start request 2, got loading=%v id=%d", m.loading, m.requestID)
	}

	stale := feed.Result{Items: []types.ViewItem{types.NewViewItem(9, "", "Old", "", "")}, Categories: []types.Category{}}
	updated, _ := m.Update(feedLoadedMsg{requestID: 1, result: stale})
	m = updated.(Model)
	if len(m.items) != 2 {
		t.Fatalf("stale result replaced items: %d", len(m.items))
	}
	if !m.loading {
		t.Fatal("stale result must not end loading")
	}
}

func TestPartialLoadKeepsScreenInteractive(t *testing.T) {
	src := newFakeSource()
	src.failCats = true
	m := newLoadedModel(t, src)

	if len(m.items) != 2 {
		t.Fatalf("items = %d, want 2", len(m.items))
	}
	if len(m.categories) != 0 {
		t.Fatalf("categories = %d, want 0", len(m.categories))
	}
	if m.Err() == nil {
		t.Fatal("expected load error to be recorded")
	}

	// Only Terbaru exists, so tab stays on it
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.Filter().Category.IsLatest() {
		t.Fatal("with no categories the selection must stay Latest")
	}
	if got := len(m.Visible()); got != 2 {
		t.Fatalf("visible = %d, want 2", got)
	}
}

func TestFailedReloadKeepsSnapshotNames(t *testing.T) {
	src := newFakeSource()
	m := newLoadedModel(t, src)

	src.failPlaces = true
	src.categories = []types.Category{types.NewCategory(1, "Candi", "candi")}
	m, cmd := press(t, m, runes("r"))
	updated, _ := m.Update(feedLoadedMsg{requestID: m.requestID, result: feed.NewLoader(src).Load(context.Background())})
	m = updated.(Model)
	_ = cmd

	if m.items[0].Category() != "Temple" {
		t.Fatalf("item category = %q, want snapshot Temple", m.items[0].Category())
	}
	if m.categories[0].Name() != "Candi" {
		t.Fatalf("categories should be replaced, got %q", m.categories[0].Name())
	}
}

func TestEmptyLoadShowsPlaceholder(t *testing.T) {
	src := newFakeSource()
	src.failPlaces = true
	src.failCats = true
	m := newLoadedModel(t, src)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Tidak ada tempat untuk ditampilkan.") {
		t.Fatalf("expected empty placeholder:\n%s", view)
	}
	if !strings.Contains(view, "Load failed") {
		t.Fatalf("expected error in status bar:\n%s", view)
	}
}

func TestViewChrome(t *testing.T) {
	m := newLoadedModel(t, newFakeSource())
	view := ansi.Strip(m.View())

	for _, want := range []string{"Hai, Rizalramzi!", "Berita baru hari ini!", "Breaking News", "Recommendation", "View all", "Terbaru", "Temple", "Beach"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newLoadedModel(t, newFakeSource())
	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit from the list")
	}
}
