// plannerctl runs the recommendation engine offline and seeds the catalog.
//
// Usage:
//
//	plannerctl recommend "a venue and catering under 2000"
//	plannerctl package --budget 5000 --category Venues --category "Catering Services"
//	plannerctl seed --database-url mongodb://localhost:27017
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"eventify/database"
	catalogRepo "eventify/database/repository/catalog"
	"eventify/models"
	"eventify/services/catalog"
	"eventify/services/recommend"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "plannerctl",
		Usage:     "Query the event package recommender and manage its catalog",
		Version:   version,
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Value: "table",
				Usage: "Output format (table, json)",
			},
		},
		Commands: []*cli.Command{
			recommendCommand(),
			packageCommand(),
			seedCommand(),
		},
	}
}

// =============================================================================
// RECOMMEND COMMAND
// =============================================================================

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:      "recommend",
		Usage:     "Answer a chat-style query against the built-in catalog",
		ArgsUsage: "<query>",
		Action: func(c *cli.Context) error {
			query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if query == "" {
				return cli.Exit("a query is required", 2)
			}
			cat := catalog.Default()
			rec := recommend.NewEngine(cat.Categories(), cat.Keywords()).Respond(query)
			if c.String("format") == "json" {
				return writeJSON(c.App.Writer, rec)
			}
			if rec.Kind == models.KindDelegate {
				fmt.Fprintln(c.App.Writer, "No catalog answer; this query would go to the chat assistant.")
				return nil
			}
			fmt.Fprintln(c.App.Writer, rec.Message)
			printItems(c.App.Writer, rec.Items, rec.Total)
			return nil
		},
	}
}

// =============================================================================
// PACKAGE COMMAND
// =============================================================================

func packageCommand() *cli.Command {
	return &cli.Command{
		Name:  "package",
		Usage: "Build a one-per-category package within a budget",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "budget",
				Aliases:  []string{"b"},
				Usage:    "Budget in whole euros",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "Category name (repeatable); defaults to every category",
			},
		},
		Action: func(c *cli.Context) error {
			budget := c.Int64("budget")
			if budget <= 0 {
				return cli.Exit("--budget must be positive", 2)
			}
			cat := catalog.Default()
			engine := recommend.NewEngine(cat.Categories(), cat.Keywords())
			categories := cat.Categories()
			if names := c.StringSlice("category"); len(names) > 0 {
				categories = engine.CategoriesByName(names...)
				if len(categories) != len(names) {
					return cli.Exit(fmt.Sprintf("unknown category in %q", names), 2)
				}
			}
			pkg := recommend.BuildCrossCategoryPackage(categories, budget)
			if c.String("format") == "json" {
				return writeJSON(c.App.Writer, pkg)
			}
			if pkg.Empty() {
				fmt.Fprintf(c.App.Writer, "No package fits within %s.\n", recommend.FormatPrice(budget))
				return nil
			}
			fmt.Fprintf(c.App.Writer, "Package for %s (%s%% of budget):\n", recommend.FormatPrice(budget), budgetShare(pkg.Total, budget))
			printItems(c.App.Writer, pkg.Items, pkg.Total)
			return nil
		},
	}
}

// =============================================================================
// SEED COMMAND
// =============================================================================

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Replace the stored catalog with the built-in one",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database-url",
				Value:   "mongodb://localhost:27017",
				Usage:   "MongoDB connection string",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:    "database-name",
				Value:   "eventify",
				Usage:   "MongoDB database",
				EnvVars: []string{"DATABASE_NAME"},
			},
		},
		Action: func(c *cli.Context) error {
			client, err := database.Connect(c.String("database-url"))
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(c.Context, 15*time.Second)
			defer cancel()
			defer client.Disconnect(ctx)

			categories := catalog.DefaultCategories()
			repo := catalogRepo.NewMongoCatalogRepo(client.Database(c.String("database-name")))
			if err := repo.ReplaceAll(ctx, categories); err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
			fmt.Fprintf(c.App.Writer, "Seeded %d categories.\n", len(categories))
			return nil
		},
	}
}

func printItems(w io.Writer, items []models.Service, total int64) {
	for _, item := range items {
		fmt.Fprintf(w, "  %-32s %10s  %s\n", item.Name, item.Price, item.Availability)
	}
	if len(items) > 0 {
		fmt.Fprintf(w, "  %-32s %10s\n", "Total", recommend.FormatPrice(total))
	}
}

func budgetShare(total, budget int64) string {
	return decimal.NewFromInt(total).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(budget)).StringFixed(1)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
