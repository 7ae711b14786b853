package dto

import "github.com/qyinm/placetui/types"

func FromViewItem(it types.ViewItem) Place {
	return Place{
		ID:          it.ID(),
		Name:        it.Name(),
		Image:       it.Image(),
		Category:    it.Category(),
		Description: it.Description(),
	}
}

func FromViewItems(items []types.ViewItem) []Place {
	out := make([]Place, 0, len(items))
	for _, it := range items {
		out = append(out, FromViewItem(it))
	}
	return out
}

func FromCategory(c types.Category) Category {
	return Category{ID: c.ID(), Name: c.Name(), Slug: c.Slug()}
}

func FromCategories(categories []types.Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, FromCategory(c))
	}
	return out
}
