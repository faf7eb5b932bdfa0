// Package binding wires the query-string parsers into a fiber v3
// request pipeline. The middleware extracts the raw query values,
// runs the filter, sort and paging parsers, and stores the resulting
// descriptors in the request-local store for downstream handlers.
//
// The filter parser is injectable. A custom parser that errors or
// panics never aborts the pipeline: the middleware stores an empty
// set under the configured root name and keeps going, so one bad
// filter strategy cannot destabilize requests.
package binding

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/queryfilter-go/queryfilter/filter"
	"github.com/queryfilter-go/queryfilter/paging"
	"github.com/queryfilter-go/queryfilter/sorting"
)

// Config configures the middleware.
type Config struct {
	// Root is the query-string key holding the filter expression and
	// the name criterion sets are stored under. Defaults to "filter".
	Root string
	// Parser parses the raw filter text. Defaults to the built-in
	// mini-language parser.
	Parser filter.CriteriaParser
	// SortKey is the query-string key holding sort descriptors.
	// Defaults to "sort".
	SortKey string
	// Paging bounds the limit/offset extraction.
	Paging paging.Options
}

type localsKey string

func filterKey(root string) localsKey { return localsKey("filter:" + root) }

const (
	sortLocals localsKey = "sort"
	pageLocals localsKey = "page"
)

// New builds the middleware.
func New(config ...Config) fiber.Handler {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Root == "" {
		cfg.Root = "filter"
	}
	if cfg.Parser == nil {
		cfg.Parser = filter.NewParser()
	}
	if cfg.SortKey == "" {
		cfg.SortKey = "sort"
	}

	return func(c fiber.Ctx) error {
		set := parseContained(cfg.Parser, cfg.Root, c.Query(cfg.Root))
		c.Locals(filterKey(cfg.Root), set)
		c.Locals(sortLocals, sorting.Parse(c.Query(cfg.SortKey)))
		c.Locals(pageLocals, paging.Parse(queryValues(c), cfg.Paging))
		return c.Next()
	}
}

// parseContained runs the (possibly third-party) parser and converts
// every failure mode into an empty root-named set.
func parseContained(p filter.CriteriaParser, root, raw string) (set filter.CriterionSet) {
	set = filter.NewCriterionSet(root)
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("root", root).Any("panic", r).
				Msg("filter parser panicked, request continues unfiltered")
			set = filter.NewCriterionSet(root)
		}
	}()

	parsed, err := p.Parse(root, raw)
	if err != nil {
		if !errors.Is(err, filter.ErrNoInput) {
			log.Debug().Str("root", root).Err(err).
				Msg("filter expression discarded")
		}
		return set
	}
	if parsed.Root == "" {
		parsed.Root = root
	}
	return parsed
}

func queryValues(c fiber.Ctx) url.Values {
	vals := url.Values{}
	for k, v := range c.Queries() {
		vals.Set(k, v)
	}
	return vals
}

// Criteria returns the criterion set stored under root, or an empty
// root-named set when the middleware did not run.
func Criteria(c fiber.Ctx, root string) filter.CriterionSet {
	if set, ok := c.Locals(filterKey(root)).(filter.CriterionSet); ok {
		return set
	}
	return filter.NewCriterionSet(root)
}

// Sort returns the parsed sort descriptors, if any.
func Sort(c fiber.Ctx) []sorting.Field {
	fields, _ := c.Locals(sortLocals).([]sorting.Field)
	return fields
}

// Page returns the parsed paging descriptor.
func Page(c fiber.Ctx) paging.Params {
	if p, ok := c.Locals(pageLocals).(paging.Params); ok {
		return p
	}
	return paging.Params{Limit: paging.Unlimited}
}
