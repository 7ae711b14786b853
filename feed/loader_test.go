package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/qyinm/placetui/types"
)

type fakeSource struct {
	places     []types.Place
	categories []types.Category
	failPlaces bool
	failCats   bool
	calls      []string
}

func (f *fakeSource) GetPlaces(context.Context) ([]types.Place, error) {
	f.calls = append(f.calls, "places")
	if f.failPlaces {
		return nil, errors.New("upstream places error")
	}
	return f.places, nil
}

func (f *fakeSource) GetCategories(context.Context) ([]types.Category, error) {
	f.calls = append(f.calls, "categories")
	if f.failCats {
		return nil, errors.New("upstream categories error")
	}
	return f.categories, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		places: []types.Place{
			types.NewPlace(1, "https://img.example/borobudur.jpg", "Borobudur", "Candi Buddha", types.NewCategoryRef(1, "Temple")),
			types.NewPlace(2, "", "Bali Beach", "Pantai", types.NewCategoryRef(2, "Beach")),
		},
		categories: sampleCategories(),
	}
}

func TestFromPlace(t *testing.T) {
	withPhoto := FromPlace(types.NewPlace(7, "https://img.example/a.jpg", "A", "desc", types.NewCategoryRef(3, "Museum")))
	if withPhoto.Image() != "https://img.example/a.jpg" {
		t.Errorf("image = %q", withPhoto.Image())
	}
	if withPhoto.Category() != "Museum" || withPhoto.Description() != "desc" || withPhoto.ID() != 7 {
		t.Errorf("unexpected mapping: %+v", withPhoto)
	}

	noPhoto := FromPlace(types.NewPlace(8, "", "B", "", types.NewCategoryRef(3, "Museum")))
	if noPhoto.Image() != types.PlaceholderImage {
		t.Errorf("image = %q, want placeholder", noPhoto.Image())
	}
}

func TestLoadSequentialOrder(t *testing.T) {
	src := newFakeSource()
	res := NewLoader(src).Load(context.Background())
	if res.Err() != nil {
		t.Fatalf("unexpected error: %v", res.Err())
	}
	if len(src.calls) != 2 || src.calls[0] != "places" || src.calls[1] != "categories" {
		t.Fatalf("calls = %v, want [places categories]", src.calls)
	}
	if len(res.Items) != 2 || len(res.Categories) != 2 {
		t.Fatalf("items=%d categories=%d", len(res.Items), len(res.Categories))
	}
}

func TestLoadCategoriesFailure(t *testing.T) {
	src := newFakeSource()
	src.failCats = true
	res := NewLoader(src).Load(context.Background())

	if !res.ItemsLoaded() || len(res.Items) != 2 {
		t.Fatalf("items should be populated, got %d (err %v)", len(res.Items), res.PlacesErr)
	}
	if res.CategoriesLoaded() || res.Categories != nil {
		t.Fatalf("categories should stay empty, got %v", res.Categories)
	}
	if res.Err() == nil {
		t.Fatal("expected joined error")
	}
}

func TestLoadPlacesFailureStillFetchesCategories(t *testing.T) {
	src := newFakeSource()
	src.failPlaces = true
	res := NewLoader(src).Load(context.Background())

	if res.ItemsLoaded() || res.Items != nil {
		t.Fatal("items should not be populated")
	}
	if !res.CategoriesLoaded() || len(res.Categories) != 2 {
		t.Fatalf("categories should be populated, got %d", len(res.Categories))
	}
	if len(src.calls) != 2 {
		t.Fatalf("calls = %v, want both fetches attempted", src.calls)
	}
}

func TestCategoryNameIsSnapshot(t *testing.T) {
	src := newFakeSource()
	loader := NewLoader(src)
	first := loader.Load(context.Background())

	src.categories = []types.Category{types.NewCategory(1, "Candi", "candi")}
	src.failPlaces = true
	second := loader.Load(context.Background())

	items := first.Items
	if second.ItemsLoaded() {
		items = second.Items
	}
	if items[0].Category() != "Temple" {
		t.Fatalf("category = %q, want stale snapshot Temple", items[0].Category())
	}
	if got := Visible(items, second.Categories, FilterState{Category: CategoryOf(1)}); len(got) != 0 {
		t.Fatalf("renamed category should no longer match stale items, got %v", names(got))
	}
}
