// Package feed holds the screen state shared by every frontend: loading,
// filtering and the open-item selection.
package feed

import (
	"strings"

	"github.com/qyinm/placetui/types"
)

// CategorySelection is either Latest (no category filter) or a category id.
type CategorySelection struct {
	id  int
	set bool
}

// Latest returns the unfiltered selection ("Terbaru").
func Latest() CategorySelection {
	return CategorySelection{}
}

// CategoryOf returns a selection filtering on the category with the given id.
func CategoryOf(id int) CategorySelection {
	return CategorySelection{id: id, set: true}
}

// ID returns the selected category id, or false for Latest.
func (c CategorySelection) ID() (int, bool) { return c.id, c.set }

// IsLatest reports whether no category is selected.
func (c CategorySelection) IsLatest() bool { return !c.set }

// FilterState is the current category selection and search text.
type FilterState struct {
	Category CategorySelection
	Query    string
}

// Select replaces the category selection.
func (f *FilterState) Select(sel CategorySelection) {
	f.Category = sel
}

// SetQuery replaces the search text.
func (f *FilterState) SetQuery(q string) {
	f.Query = q
}

// MatchesCategory reports whether the item belongs to the selected category.
// The selected id is resolved to a name through categories; an id that does
// not resolve never matches.
func MatchesCategory(item types.ViewItem, sel CategorySelection, categories []types.Category) bool {
	id, ok := sel.ID()
	if !ok {
		return true
	}
	for _, c := range categories {
		if c.ID() == id {
			return item.Category() == c.Name()
		}
	}
	return false
}

// MatchesSearch reports whether the item name contains query, ignoring case.
func MatchesSearch(item types.ViewItem, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name()), strings.ToLower(query))
}

// Include reports whether the item is visible under the filter state.
func Include(item types.ViewItem, state FilterState, categories []types.Category) bool {
	return MatchesCategory(item, state.Category, categories) && MatchesSearch(item, state.Query)
}

// Visible returns the items included by the filter state, in fetch order.
func Visible(items []types.ViewItem, categories []types.Category, state FilterState) []types.ViewItem {
	out := make([]types.ViewItem, 0, len(items))
	for _, item := range items {
		if Include(item, state, categories) {
			out = append(out, item)
		}
	}
	return out
}

// Headlines returns the first n loaded items, ignoring the filter.
func Headlines(items []types.ViewItem, n int) []types.ViewItem {
	if n <= 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// CategoryName returns the name of the category with the given id.
func CategoryName(categories []types.Category, id int) (string, bool) {
	for _, c := range categories {
		if c.ID() == id {
			return c.Name(), true
		}
	}
	return "", false
}
