package cmd

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/queryfilter-go/queryfilter/binding"
	"github.com/queryfilter-go/queryfilter/cli/config"
	"github.com/queryfilter-go/queryfilter/paging"
	"github.com/queryfilter-go/queryfilter/predicate"
	"github.com/queryfilter-go/queryfilter/sorting"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// Category is a named enum so enum-by-name filtering can be tried
// from the query string (category:in:Books,Games).
type Category int

const (
	CategoryUnknown Category = iota
	CategoryBooks
	CategoryGames
	CategoryTools
)

func (c Category) String() string {
	switch c {
	case CategoryBooks:
		return "Books"
	case CategoryGames:
		return "Games"
	case CategoryTools:
		return "Tools"
	}
	return "Unknown"
}

// Supplier is nested to exercise dotted-path filters such as
// supplier.code:eq:ACME.
type Supplier struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Product is the demo element type.
type Product struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	Stock        int        `json:"stock"`
	Category     Category   `json:"category"`
	Tags         []string   `json:"tags"`
	CreatedAt    time.Time  `json:"created_at"`
	Discontinued *time.Time `json:"discontinued,omitempty"`
	Supplier     *Supplier  `json:"supplier,omitempty"`
}

func seedCatalog() []Product {
	day := func(d int) time.Time {
		return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
	}
	gone := day(40)
	acme := &Supplier{Name: "Acme Trading", Code: "ACME"}
	norr := &Supplier{Name: "Norrsken AB", Code: "NORR"}
	return []Product{
		{ID: uuid.New(), Name: "Go in Practice", Price: 39.90, Stock: 12, Category: CategoryBooks,
			Tags: []string{"go", "programming"}, CreatedAt: day(1), Supplier: acme},
		{ID: uuid.New(), Name: "Chess Set", Price: 59.00, Stock: 3, Category: CategoryGames,
			Tags: []string{"classic"}, CreatedAt: day(5), Supplier: norr},
		{ID: uuid.New(), Name: "Claw Hammer", Price: 17.50, Stock: 44, Category: CategoryTools,
			Tags: []string{"hardware"}, CreatedAt: day(9), Supplier: acme},
		{ID: uuid.New(), Name: "Mystery Novel", Price: 12.00, Stock: 0, Category: CategoryBooks,
			Tags: nil, CreatedAt: day(14), Discontinued: &gone},
		{ID: uuid.New(), Name: "Puzzle 1000", Price: 24.90, Stock: 20, Category: CategoryGames,
			Tags: []string{"family", "classic"}, CreatedAt: day(20), Supplier: norr},
		{ID: uuid.New(), Name: "Torque Wrench", Price: 89.00, Stock: 7, Category: CategoryTools,
			Tags: []string{"hardware", "pro"}, CreatedAt: day(27), Supplier: acme},
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	catalog := seedCatalog()

	app := fiber.New(fiber.Config{AppName: "queryfilterd"})
	app.Use(binding.New(binding.Config{
		Root:    cfg.API.FilterRoot,
		SortKey: cfg.API.SortKey,
		Paging: paging.Options{
			DefaultLimit: cfg.API.DefaultPageSize,
			MaxLimit:     cfg.API.MaxPageSize,
		},
	}))

	app.Get("/products", func(c fiber.Ctx) error {
		matched, err := predicate.Filter(binding.Criteria(c, cfg.API.FilterRoot), catalog)
		if err != nil {
			// Compilation errors are setup bugs (unsupported
			// operators, bad range bounds), worth surfacing in a demo.
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		matched = sorting.Apply(binding.Sort(c), matched)

		page := binding.Page(c)
		items := paging.Slice(page, matched)

		resp := fiber.Map{
			"data":  items,
			"total": len(matched),
		}
		if cursor, ok := page.Next(len(items)); ok {
			resp["next_cursor"] = cursor
		}
		return c.JSON(resp)
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Int("products", len(catalog)).Msg("queryfilterd listening")
	return app.Listen(addr)
}
