package feed

import (
	"testing"

	"github.com/qyinm/placetui/types"
)

func sampleItems() []types.ViewItem {
	return []types.ViewItem{
		types.NewViewItem(1, "https://img.example/borobudur.jpg", "Borobudur", "Candi Buddha terbesar", "Temple"),
		types.NewViewItem(2, types.PlaceholderImage, "Bali Beach", "Pantai berpasir putih", "Beach"),
	}
}

func sampleCategories() []types.Category {
	return []types.Category{
		types.NewCategory(1, "Temple", "temple"),
		types.NewCategory(2, "Beach", "beach"),
	}
}

func names(items []types.ViewItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name())
	}
	return out
}

func equalNames(got []types.ViewItem, want ...string) bool {
	g := names(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func TestIncludeUnfiltered(t *testing.T) {
	items := append(sampleItems(), types.NewViewItem(3, "", "", "", ""))
	state := FilterState{}
	for _, it := range items {
		if !Include(it, state, nil) {
			t.Errorf("item %q excluded with empty filter state", it.Name())
		}
	}
}

func TestMatchesCategoryMismatchIgnoresQuery(t *testing.T) {
	cats := sampleCategories()
	item := sampleItems()[0] // Temple
	for _, q := range []string{"", "boro", "zzz"} {
		state := FilterState{Category: CategoryOf(2), Query: q}
		if Include(item, state, cats) {
			t.Errorf("Include with mismatched category and query %q = true, want false", q)
		}
	}
}

func TestMatchesCategoryUnresolvableID(t *testing.T) {
	item := types.NewViewItem(1, "", "Nameless", "", "")
	if MatchesCategory(item, CategoryOf(99), sampleCategories()) {
		t.Fatal("unresolvable category id must not match, even an empty category name")
	}
	if MatchesCategory(item, CategoryOf(1), nil) {
		t.Fatal("no categories loaded must not match a set selection")
	}
}

func TestMatchesSearch(t *testing.T) {
	item := types.NewViewItem(1, "", "Grand Canyon", "", "Park")

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"canyon", true},
		{"and", true},
		{"GRAND", true},
		{"Grand Canyon", true},
		{"canyons", false},
		{" ", true},
		{"  ", false},
	}
	for _, tt := range tests {
		if got := MatchesSearch(item, tt.query); got != tt.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestMatchesSearchCaseInsensitive(t *testing.T) {
	for _, it := range []types.ViewItem{
		types.NewViewItem(1, "", "ABC Park", "", ""),
		types.NewViewItem(2, "", "abc park", "", ""),
		types.NewViewItem(3, "", "Xyz", "", ""),
	} {
		if MatchesSearch(it, "ABC") != MatchesSearch(it, "abc") {
			t.Errorf("case changes result for %q", it.Name())
		}
	}
}

func TestVisibleScenario(t *testing.T) {
	items := sampleItems()
	cats := sampleCategories()

	tests := []struct {
		name  string
		state FilterState
		want  []string
	}{
		{"temple category", FilterState{Category: CategoryOf(1)}, []string{"Borobudur"}},
		{"beach query", FilterState{Query: "beach"}, []string{"Bali Beach"}},
		{"temple and beach", FilterState{Category: CategoryOf(1), Query: "beach"}, nil},
		{"latest", FilterState{Category: Latest()}, []string{"Borobudur", "Bali Beach"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(items, cats, tt.state)
			if !equalNames(got, tt.want...) {
				t.Fatalf("Visible = %v, want %v", names(got), tt.want)
			}
		})
	}
}

func TestVisiblePreservesOrder(t *testing.T) {
	items := []types.ViewItem{
		types.NewViewItem(3, "", "Pantai Kuta", "", "Beach"),
		types.NewViewItem(1, "", "Prambanan", "", "Temple"),
		types.NewViewItem(2, "", "Pantai Sanur", "", "Beach"),
	}
	got := Visible(items, sampleCategories(), FilterState{Category: CategoryOf(2)})
	if !equalNames(got, "Pantai Kuta", "Pantai Sanur") {
		t.Fatalf("Visible = %v", names(got))
	}
}

func TestFilterStateSetters(t *testing.T) {
	var f FilterState
	f.Select(CategoryOf(4))
	f.SetQuery("kuta")
	if id, ok := f.Category.ID(); !ok || id != 4 {
		t.Fatalf("category = %d,%v, want 4,true", id, ok)
	}
	f.Select(Latest())
	if !f.Category.IsLatest() {
		t.Fatal("expected Latest after Select(Latest())")
	}
	if f.Query != "kuta" {
		t.Fatalf("query = %q", f.Query)
	}
}

func TestHeadlines(t *testing.T) {
	items := sampleItems()
	if got := Headlines(items, 3); len(got) != 2 {
		t.Fatalf("Headlines(3) len = %d, want 2", len(got))
	}
	if got := Headlines(items, 1); !equalNames(got, "Borobudur") {
		t.Fatalf("Headlines(1) = %v", names(got))
	}
	if got := Headlines(items, 0); got != nil {
		t.Fatalf("Headlines(0) = %v, want nil", names(got))
	}
}

func TestSuggest(t *testing.T) {
	items := sampleItems()
	got := Suggest(items, "brbdr", 3)
	if len(got) != 1 || got[0] != "Borobudur" {
		t.Fatalf("Suggest = %v, want [Borobudur]", got)
	}
	if got := Suggest(items, "", 3); got != nil {
		t.Fatalf("Suggest with empty query = %v, want nil", got)
	}
}
