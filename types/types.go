package types

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
)

// PlaceholderImage is shown for places published without a photo.
const PlaceholderImage = "https://via.placeholder.com/300"

// CategoryRef is the category embedded in a place record
type CategoryRef struct {
	id   int
	name string
}

// NewCategoryRef creates a new CategoryRef
func NewCategoryRef(id int, name string) CategoryRef {
	return CategoryRef{id: id, name: name}
}

func (c CategoryRef) ID() int      { return c.id }
func (c CategoryRef) Name() string { return c.name }

// Place is a point of interest as published by the content API
type Place struct {
	id          int
	photo       string
	name        string
	description string
	category    CategoryRef
}

// NewPlace creates a new Place. An empty photo means the place has none.
func NewPlace(id int, photo, name, description string, category CategoryRef) Place {
	return Place{
		id:          id,
		photo:       photo,
		name:        name,
		description: description,
		category:    category,
	}
}

// Getters for Place fields
func (p Place) ID() int               { return p.id }
func (p Place) Photo() string         { return p.photo }
func (p Place) HasPhoto() bool        { return p.photo != "" }
func (p Place) Name() string          { return p.name }
func (p Place) Description() string   { return p.description }
func (p Place) Category() CategoryRef { return p.category }

// Category is a named grouping of places
type Category struct {
	id   int
	name string
	slug string
}

// NewCategory creates a new Category
func NewCategory(id int, name, slug string) Category {
	return Category{id: id, name: name, slug: slug}
}

func (c Category) ID() int      { return c.id }
func (c Category) Name() string { return c.name }
func (c Category) Slug() string { return c.slug }

// ViewItem is the display-ready projection of a Place.
// The category name is a snapshot taken when the place was fetched.
type ViewItem struct {
	id          int
	image       string
	name        string
	description string
	category    string
}

// NewViewItem creates a new ViewItem
func NewViewItem(id int, image, name, description, category string) ViewItem {
	return ViewItem{
		id:          id,
		image:       image,
		name:        name,
		description: description,
		category:    category,
	}
}

// Getters for ViewItem fields
func (v ViewItem) ID() int          { return v.id }
func (v ViewItem) Image() string    { return v.image }
func (v ViewItem) Name() string     { return v.name }
func (v ViewItem) Category() string { return v.category }

// list.Item interface implementation
func (v ViewItem) Title() string       { return v.name }
func (v ViewItem) Description() string { return v.description }
func (v ViewItem) FilterValue() string { return v.name }

// Compile-time check that ViewItem implements list.Item
var _ list.Item = ViewItem{}

// PlaceSource is the core abstraction for data access.
// No bubbletea dependency; the TUI, CLI and MCP server all call it.
type PlaceSource interface {
	GetPlaces(ctx context.Context) ([]Place, error)
	GetCategories(ctx context.Context) ([]Category, error)
}
