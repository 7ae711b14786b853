package mcpsrv

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/placetui/feed"
	"github.com/qyinm/placetui/mcpsrv/dto"
	"github.com/qyinm/placetui/types"
)

const (
	defaultMaxLimit      = 100
	defaultCategoryLimit = 25
)

type placesListArgs struct {
	CategoryID *int   `json:"category_id,omitempty" jsonschema:"Optional category id; omit for all places"`
	Query      string `json:"query,omitempty" jsonschema:"Optional case-insensitive substring of the place name"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Optional maximum number of items"`
}

type placeGetArgs struct {
	ID int `json:"id" jsonschema:"Place id"`
}

type categoriesListArgs struct {
	Query  string `json:"query,omitempty" jsonschema:"Optional category search query"`
	Offset int    `json:"offset,omitempty" jsonschema:"Optional pagination offset"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Optional page size limit"`
}

type placesListOutput struct {
	CategoryID *int        `json:"category_id,omitempty"`
	Category   string      `json:"category,omitempty"`
	Query      string      `json:"query"`
	Total      int         `json:"total"`
	Items      []dto.Place `json:"items"`
	Warnings   []string    `json:"warnings,omitempty"`
}

type placeGetOutput struct {
	Item dto.Place `json:"item"`
}

type categoriesListOutput struct {
	Query      string         `json:"query"`
	Offset     int            `json:"offset"`
	Limit      int            `json:"limit"`
	NextOffset int            `json:"next_offset"`
	HasMore    bool           `json:"has_more"`
	Total      int            `json:"total"`
	Items      []dto.Category `json:"items"`
}

type ServerOptions struct {
	// MaxLimit caps the limit argument of places_list and categories_list.
	MaxLimit int
}

func NewServer(source types.PlaceSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}
	maxLimit := opts.MaxLimit
	if maxLimit <= 0 {
		maxLimit = defaultMaxLimit
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "placetui", Version: version}, nil)
	loader := feed.NewLoader(source)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "places_list",
		Description: "List places, optionally filtered by category id and name query.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args placesListArgs) (*mcp.CallToolResult, placesListOutput, error) {
		return placesListHandler(ctx, req, args, loader, maxLimit)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "place_get",
		Description: "Get a single place by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args placeGetArgs) (*mcp.CallToolResult, placeGetOutput, error) {
		return placeGetHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "categories_list",
		Description: "List place categories.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args categoriesListArgs) (*mcp.CallToolResult, categoriesListOutput, error) {
		return categoriesListHandler(ctx, req, args, source, maxLimit)
	})

	return server
}

func placesListHandler(ctx context.Context, _ *mcp.CallToolRequest, args placesListArgs, loader *feed.Loader, maxLimit int) (*mcp.CallToolResult, placesListOutput, error) {
	if args.Limit < 0 {
		return errorToolResult("limit must not be negative"), placesListOutput{}, nil
	}

	res := loader.Load(ctx)
	if !res.ItemsLoaded() {
		return errorToolResult("fetch places failed"), placesListOutput{}, nil
	}

	var state feed.FilterState
	state.SetQuery(args.Query)
	out := placesListOutput{Query: args.Query}

	if args.CategoryID != nil {
		id := *args.CategoryID
		if !res.CategoriesLoaded() {
			return errorToolResult("fetch categories failed"), placesListOutput{}, nil
		}
		state.Select(feed.CategoryOf(id))
		out.CategoryID = &id
		if name, ok := feed.CategoryName(res.Categories, id); ok {
			out.Category = name
		} else {
			out.Warnings = append(out.Warnings, fmt.Sprintf("unknown category_id %d", id))
		}
	} else if !res.CategoriesLoaded() {
		log.Printf("places_list: %v", res.CategoriesErr)
		out.Warnings = append(out.Warnings, "categories unavailable")
	}

	visible := feed.Visible(res.Items, res.Categories, state)
	out.Total = len(visible)
	out.Items = dto.FromViewItems(applyLimit(visible, min(args.Limit, maxLimit), maxLimit))
	return nil, out, nil
}

func placeGetHandler(ctx context.Context, _ *mcp.CallToolRequest, args placeGetArgs, source types.PlaceSource) (*mcp.CallToolResult, placeGetOutput, error) {
	if args.ID <= 0 {
		return errorToolResult("id is required"), placeGetOutput{}, nil
	}

	places, err := source.GetPlaces(ctx)
	if err != nil {
		log.Printf("place_get: %v", err)
		return errorToolResult("fetch places failed"), placeGetOutput{}, nil
	}
	for _, p := range places {
		if p.ID() == args.ID {
			return nil, placeGetOutput{Item: dto.FromViewItem(feed.FromPlace(p))}, nil
		}
	}
	return errorToolResult(fmt.Sprintf("place %d not found", args.ID)), placeGetOutput{}, nil
}

func categoriesListHandler(ctx context.Context, _ *mcp.CallToolRequest, args categoriesListArgs, source types.PlaceSource, maxLimit int) (*mcp.CallToolResult, categoriesListOutput, error) {
	all, err := source.GetCategories(ctx)
	if err != nil {
		log.Printf("categories_list: %v", err)
		return errorToolResult("fetch categories failed"), categoriesListOutput{}, nil
	}

	query := strings.TrimSpace(strings.ToLower(args.Query))
	filtered := make([]types.Category, 0, len(all))
	for _, c := range all {
		if query == "" || strings.Contains(strings.ToLower(c.Name()), query) || strings.Contains(strings.ToLower(c.Slug()), query) {
			filtered = append(filtered, c)
		}
	}

	limit := args.Limit
	if limit <= 0 {
		limit = defaultCategoryLimit
	}
	limit = min(limit, maxLimit)
	offset := min(max(args.Offset, 0), len(filtered))
	end := min(offset+limit, len(filtered))

	nextOffset := end
	hasMore := end < len(filtered)
	if !hasMore {
		nextOffset = -1
	}

	return nil, categoriesListOutput{
		Query:      args.Query,
		Offset:     offset,
		Limit:      limit,
		NextOffset: nextOffset,
		HasMore:    hasMore,
		Total:      len(filtered),
		Items:      dto.FromCategories(filtered[offset:end]),
	}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

// applyLimit truncates items to limit; zero means fallback.
func applyLimit(items []types.ViewItem, limit, fallback int) []types.ViewItem {
	if limit <= 0 {
		limit = fallback
	}
	if limit >= len(items) {
		return items
	}
	return items[:limit]
}
