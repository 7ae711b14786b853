package feed

import (
	"github.com/qyinm/placetui/types"
	"github.com/sahilm/fuzzy"
)

type itemNames []types.ViewItem

func (n itemNames) String(i int) string { return n[i].Name() }
func (n itemNames) Len() int            { return len(n) }

// Suggest returns up to n item names that fuzzily match query, best first.
// It is only a hint for empty search results; it never changes Visible.
func Suggest(items []types.ViewItem, query string, n int) []string {
	if query == "" || n <= 0 || len(items) == 0 {
		return nil
	}
	matches := fuzzy.FindFrom(query, itemNames(items))
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for _, m := range matches {
		name := items[m.Index].Name()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
		if len(out) == n {
			break
		}
	}
	return out
}
