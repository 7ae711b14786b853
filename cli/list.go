package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/sfomuseum/go-csvdict/v2"
	"github.com/spf13/cobra"

	"github.com/qyinm/placetui/feed"
	"github.com/qyinm/placetui/types"
)

func (a *App) listCmd() *cobra.Command {
	var (
		categoryID int
		query      string
		limit      int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List places",
		Long: `List places with the same filters as the interactive screen.

--category takes a category id (see "placetui categories"); omit it for
the latest places. --query keeps places whose name contains the text,
ignoring case.`,
		Example: `  placetui list
  placetui list --category=2
  placetui list --query=candi --limit=5
  placetui list --format=csv > places.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "csv" {
				return fmt.Errorf("unknown format %q (want text or csv)", format)
			}
			if err := a.load(); err != nil {
				return err
			}
			a.quietLogs()

			res := feed.NewLoader(a.source).Load(context.Background())
			if !res.ItemsLoaded() {
				return res.PlacesErr
			}

			var state feed.FilterState
			state.SetQuery(query)
			if cmd.Flags().Changed("category") {
				if !res.CategoriesLoaded() {
					return res.CategoriesErr
				}
				if _, ok := feed.CategoryName(res.Categories, categoryID); !ok {
					fmt.Fprintln(cmd.ErrOrStderr(), colorWarn.Sprintf("unknown category %d", categoryID))
				}
				state.Select(feed.CategoryOf(categoryID))
			}

			out := cmd.OutOrStdout()
			visible := feed.Visible(res.Items, res.Categories, state)
			if limit > 0 && limit < len(visible) {
				visible = visible[:limit]
			}
			if format == "csv" {
				return writeCSV(out, visible)
			}
			if len(visible) == 0 {
				fmt.Fprintln(out, "No places found.")
				return nil
			}

			width := termWidth()
			for _, it := range visible {
				fmt.Fprintf(out, "%s %s", colorMuted.Sprintf("#%d", it.ID()), colorName.Sprint(it.Name()))
				if it.Category() != "" {
					fmt.Fprintf(out, " %s", colorCategory.Sprint("["+it.Category()+"]"))
				}
				fmt.Fprintln(out)
				if desc := fitLine(it.Description(), width-4); desc != "" {
					fmt.Fprintf(out, "    %s\n", desc)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&categoryID, "category", 0, "Category id (omit for all)")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive name filter")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of places (0 for all)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or csv")

	return cmd
}

// writeCSV emits one row per item. Columns are sorted by name.
func writeCSV(w io.Writer, items []types.ViewItem) error {
	if len(items) == 0 {
		return nil
	}
	wr, err := csvdict.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating csv writer: %w", err)
	}
	for _, it := range items {
		err := wr.WriteRow(map[string]string{
			"id":          strconv.Itoa(it.ID()),
			"name":        it.Name(),
			"category":    it.Category(),
			"image":       it.Image(),
			"description": it.Description(),
		})
		if err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	if err := wr.Flush(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

func (a *App) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List place categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(); err != nil {
				return err
			}
			a.quietLogs()

			categories, err := a.source.GetCategories(context.Background())
			if err != nil {
				return fmt.Errorf("loading categories: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(categories) == 0 {
				fmt.Fprintln(out, "No categories found.")
				return nil
			}
			for _, c := range categories {
				fmt.Fprintf(out, "%4d  %s %s\n", c.ID(), colorName.Sprint(c.Name()), colorMuted.Sprint(c.Slug()))
			}
			return nil
		},
	}
}
