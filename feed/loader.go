package feed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/qyinm/placetui/types"
)

// FromPlace maps a fetched place into a ViewItem. Missing photos become the
// placeholder image and the category name is copied as-is.
func FromPlace(p types.Place) types.ViewItem {
	image := types.PlaceholderImage
	if p.HasPhoto() {
		image = p.Photo()
	}
	return types.NewViewItem(p.ID(), image, p.Name(), p.Description(), p.Category().Name())
}

// FromPlaces maps places in order.
func FromPlaces(places []types.Place) []types.ViewItem {
	out := make([]types.ViewItem, 0, len(places))
	for _, p := range places {
		out = append(out, FromPlace(p))
	}
	return out
}

// Result is the outcome of one Load call. A collection is nil when its
// fetch failed; callers keep their previous value in that case.
type Result struct {
	Items         []types.ViewItem
	Categories    []types.Category
	PlacesErr     error
	CategoriesErr error
}

// ItemsLoaded reports whether the places fetch succeeded.
func (r Result) ItemsLoaded() bool { return r.PlacesErr == nil }

// CategoriesLoaded reports whether the categories fetch succeeded.
func (r Result) CategoriesLoaded() bool { return r.CategoriesErr == nil }

// Err joins both fetch errors, nil when everything loaded.
func (r Result) Err() error {
	return errors.Join(r.PlacesErr, r.CategoriesErr)
}

// Loader performs the best-effort places + categories load.
type Loader struct {
	source types.PlaceSource
}

// NewLoader creates a Loader reading from source.
func NewLoader(source types.PlaceSource) *Loader {
	return &Loader{source: source}
}

// Load fetches places and then categories. Both fetches are attempted even
// if the first fails. Failures are logged and reported in the Result, never
// returned.
func (l *Loader) Load(ctx context.Context) Result {
	var res Result

	places, err := l.source.GetPlaces(ctx)
	if err != nil {
		res.PlacesErr = fmt.Errorf("load places: %w", err)
		log.Printf("error fetching places: %v", err)
	} else {
		res.Items = FromPlaces(places)
	}

	categories, err := l.source.GetCategories(ctx)
	if err != nil {
		res.CategoriesErr = fmt.Errorf("load categories: %w", err)
		log.Printf("error fetching categories: %v", err)
	} else {
		res.Categories = categories
		if res.Categories == nil {
			res.Categories = []types.Category{}
		}
	}

	return res
}
