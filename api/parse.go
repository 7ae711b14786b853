package api

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/qyinm/placetui/types"
)

// envelope is the `{ "data": [...] }` wrapper used by every endpoint.
type envelope[T any] struct {
	Data *[]T `json:"data"`
}

type placeJSON struct {
	ID          int           `json:"id"`
	Photo       *string       `json:"photo"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    *categoryJSON `json:"category"`
}

type categoryJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ParsePlaces decodes a places response. Null photos become empty, and
// description markup is flattened to plain text. Names are kept as fetched.
func ParsePlaces(reader io.Reader) ([]types.Place, error) {
	raw, err := decodeData[placeJSON](reader)
	if err != nil {
		return nil, err
	}

	places := make([]types.Place, 0, len(raw))
	for _, p := range raw {
		photo := ""
		if p.Photo != nil {
			photo = strings.TrimSpace(*p.Photo)
		}
		var category types.CategoryRef
		if p.Category != nil {
			category = types.NewCategoryRef(p.Category.ID, p.Category.Name)
		}
		places = append(places, types.NewPlace(
			p.ID,
			photo,
			p.Name,
			PlainText(p.Description),
			category,
		))
	}
	return places, nil
}

// ParseCategories decodes a categories response.
func ParseCategories(reader io.Reader) ([]types.Category, error) {
	raw, err := decodeData[categoryJSON](reader)
	if err != nil {
		return nil, err
	}

	categories := make([]types.Category, 0, len(raw))
	for _, c := range raw {
		categories = append(categories, types.NewCategory(c.ID, c.Name, c.Slug))
	}
	return categories, nil
}

func decodeData[T any](reader io.Reader) ([]T, error) {
	var env envelope[T]
	if err := json.NewDecoder(reader).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("response has no data field")
	}
	return *env.Data, nil
}
