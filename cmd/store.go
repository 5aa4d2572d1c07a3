package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/gameshelf/internal/catalog"
	"github.com/desertthunder/gameshelf/internal/formatter"
	"github.com/desertthunder/gameshelf/internal/shared"
	"github.com/urfave/cli/v3"
)

// StoreBrowse lists store items from the catalog provider.
func (r *Runner) StoreBrowse(ctx context.Context, cmd *cli.Command) error {
	sort := cmd.String("sort")
	limit := cmd.Int("limit")
	offset := cmd.Int("offset")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	csvBase := cmd.String("csv")

	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrProviderUnavailable)
	}

	r.logger.Infof("browsing store with sort %q limit %d offset %d", sort, limit, offset)

	items := r.catalog.Browse(ctx, catalog.BrowseOptions{
		Sort:   sort,
		Limit:  limit,
		Offset: offset,
	})

	if csvBase != "" {
		path, err := formatter.WriteCSVExport(items, csvBase)
		if err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
		r.logger.Info("browse results exported", "file", path)
	}

	if useJSON {
		return r.writeJSON(items, pretty)
	}

	return r.writePlain("%s", formatter.FormatItems(items))
}

// StoreDetail fetches the detail record for a single title.
func (r *Runner) StoreDetail(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: game id is required", shared.ErrMissingArgument)
	}

	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrProviderUnavailable)
	}

	detail := r.catalog.Detail(ctx, id)

	if cmd.Bool("json") {
		return r.writeJSON(detail, cmd.Bool("pretty"))
	}

	return r.writePlain("%s", formatter.FormatDetail(detail))
}

// StorePool lists the top-rated pool used for library seeding.
func (r *Runner) StorePool(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")

	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrProviderUnavailable)
	}

	entries := r.catalog.TopPool(ctx, limit)
	if len(entries) == 0 {
		r.logger.Warn("provider returned no pool entries, showing placeholders")
		entries = catalog.PlaceholderPool()
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	return r.writePlain("%s", formatter.FormatPool(entries))
}

// StorePrice prints the synthetic price for a game id.
func (r *Runner) StorePrice(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("id")
	if raw == "" {
		return fmt.Errorf("%w: game id is required", shared.ErrMissingArgument)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: game id must be numeric", shared.ErrInvalidArgument)
	}

	return r.writePlain("%.2f\n", catalog.Price(id))
}

// storeCommand handles catalog operations
func storeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "store",
		Usage: "Catalog provider operations",
		Commands: []*cli.Command{
			{
				Name:  "browse",
				Usage: "List store items",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort key (popularity, rating, price_asc, price_desc)",
						Value: catalog.SortPopularity,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of items to return",
						Value: 50,
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Listing offset for pagination",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Export results to {base}_games.csv",
					},
				},
				Action: r.StoreBrowse,
			},
			{
				Name:  "detail",
				Usage: "Show detail for a single title",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.StoreDetail,
			},
			{
				Name:  "pool",
				Usage: "List the top-rated seed pool",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of pool entries",
						Value: 200,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.StorePool,
			},
			{
				Name:  "price",
				Usage: "Print the synthetic price for a game id",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.StorePrice,
			},
		},
	}
}
