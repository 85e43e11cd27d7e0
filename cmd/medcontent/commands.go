package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/medcontent"
	"github.com/kailas-cloud/medcontent/internal/domain"
	logpkg "github.com/kailas-cloud/medcontent/internal/logger"
)

var errUsage = errors.New("usage error")

type command struct {
	name  string
	args  string
	help  string
	nargs int  // minimum positional arguments after the command name
	exact bool // nargs is also the maximum
	run   func(ctx context.Context, lib *medcontent.Library, args []string, p *printer) error
}

var commands = []command{
	{name: "databases", help: "List loaded databases", exact: true, run: cmdDatabases},
	{name: "get", args: "<db> <id>", help: "Print one entry", nargs: 2, exact: true, run: cmdGet},
	{name: "search", args: "<db> [query...]", help: "Case-insensitive free-text search", nargs: 1, run: cmdSearch},
	{name: "category", args: "<db> <category>", help: "List entries in a category", nargs: 2, exact: true, run: cmdCategory},
	{name: "level", args: "<db> <id> <1-5>", help: "Print one complexity level of an entry", nargs: 3, exact: true, run: cmdLevel},
	{name: "count", args: "<db>", help: "Count entries", nargs: 1, exact: true, run: cmdCount},
	{name: "categories", args: "<db>", help: "Count entries per category", nargs: 1, exact: true, run: cmdCategories},
	{name: "xref", args: "<db> <id>", help: "List an entry's cross-references and their targets", nargs: 2, exact: true, run: cmdXref},
	{name: "dangling", help: "List cross-references whose target is missing", exact: true, run: cmdDangling},
	{name: "check", help: "Verify catalog integrity", exact: true, run: cmdCheck},
	{name: "index", args: "list | ids <index> | category-of <index> <id>", help: "Query navigation indexes", nargs: 1, run: cmdIndex},
	{name: "version", help: "Print build information", exact: true},
}

func commandUsage() string {
	var b strings.Builder
	for _, c := range commands {
		fmt.Fprintf(&b, "  %-12s %-46s %s\n", c.name, c.args, c.help)
	}
	return b.String()
}

func dispatch(ctx context.Context, lib *medcontent.Library, args []string, p *printer) error {
	name, rest := args[0], args[1:]
	for _, c := range commands {
		if c.name != name || c.run == nil {
			continue
		}
		if len(rest) < c.nargs || (c.exact && len(rest) != c.nargs) {
			return fmt.Errorf("%w: medcontent %s %s", errUsage, c.name, c.args)
		}
		return c.run(ctx, lib, rest, p)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, name)
}

func catalog(lib *medcontent.Library, name string) (medcontent.Catalog, error) {
	db, err := medcontent.ParseDatabase(name)
	if err != nil {
		return nil, err
	}
	c, ok := lib.Catalog(db)
	if !ok {
		return nil, fmt.Errorf("database %s is not loaded", db)
	}
	return c, nil
}

type databaseRow struct {
	Name       medcontent.DatabaseName `json:"name" yaml:"name"`
	Entries    int                     `json:"entries" yaml:"entries"`
	Categories int                     `json:"categories" yaml:"categories"`
	Leveled    bool                    `json:"leveled" yaml:"leveled"`
}

func cmdDatabases(_ context.Context, lib *medcontent.Library, _ []string, p *printer) error {
	rows := []databaseRow{}
	for _, db := range lib.Databases() {
		c, _ := lib.Catalog(db)
		rows = append(rows, databaseRow{
			Name:       db,
			Entries:    c.Count(),
			Categories: len(c.CategoryStats()),
			Leveled:    c.Leveled(),
		})
	}
	return p.print(rows)
}

func cmdGet(_ context.Context, lib *medcontent.Library, args []string, p *printer) error {
	c, err := catalog(lib, args[0])
	if err != nil {
		return err
	}
	e, ok := c.Get(args[1])
	if !ok {
		return domain.NewNotFound(c.Name(), args[1])
	}
	return p.print(e)
}

func cmdSearch(ctx context.Context, lib *medcontent.Library, args []string, p *printer) error {
	c, err := catalog(lib, args[0])
	if err != nil {
		return err
	}
	q := strings.Join(args[1:], " ")
	hits := c.Search(q)
	logpkg.FromContext(ctx).Debug("search",
		zap.String("database", string(c.Name())),
		zap.String("query", q),
		zap.Int("hits", len(hits)),
	)
	return p.print(hits)
}

func cmdCategory(_ context.Context, lib *medcontent.Library, args []string, p *printer) error {
	c, err := catalog(lib, args[0])
	if err != nil {
		return err
	}
	return p.print(c.FilterByCategory(args[1]))
}

func cmdLevel(_ context.Context, lib *medcontent.Library, args []string, p *printer) error {
	c, err := catalog(lib, args[0])
	if err != nil {
		return err
	}
	if !c.Leveled() {
		return fmt.Errorf("database %s has no complexity levels", c.Name())
	}
	n, err := strconv.Atoi(args[2])
	if err != nil || !medcontent.Level(n).IsValid() {
		return fmt.Errorf("%w: %q, want 1-5", domain.ErrInvalidLevel, args[2])
	}
	tier, ok := c.AtLevel(args[1], medcontent.Level(n))
	if !ok {
		return domain.NewNotFound(c.Name(), args[1])
	}
	return p.print(tier)
}

func cmdCount(_ context.Context, lib *medcontent.Library, args []string, p *printer) error {
	c, err := catalog(lib, args[0])
	if err != nil {
		return err
	}
	return p.print(map[string]int{"count": c.Count()})
}

func cmdCategories(_ context.Context, lib *medcontent.Library, args []string, p *printer) error {
	c, err := catalog(lib, args[0])
	if err != nil {
		return err
	}
	return p.print(c.CategoryStats())
}

func cmdXref(_ context.Context, lib *medcontent.Library, args []string, p *printer) error {
	db, err := medcontent.ParseDatabase(args[0])
	if err != nil {
		return err
	}
	edges, ok := lib.Outgoing(db, args[1])
	if !ok {
		return domain.NewNotFound(db, args[1])
	}
	return p.print(edges)
}

func cmdDangling(_ context.Context, lib *medcontent.Library, _ []string, p *printer) error {
	return p.print(lib.Dangling())
}

func cmdCheck(ctx context.Context, lib *medcontent.Library, _ []string, p *printer) error {
	report := lib.Check(ctx)
	if err := p.print(report); err != nil {
		return err
	}
	if report.Status != medcontent.HealthOK {
		return fmt.Errorf("catalog %s", report.Status)
	}
	return nil
}

type indexRow struct {
	Name       string   `json:"name" yaml:"name"`
	Label      string   `json:"label" yaml:"label"`
	Database   string   `json:"database,omitempty" yaml:"database,omitempty"`
	Categories []string `json:"categories" yaml:"categories"`
	IDs        int      `json:"ids" yaml:"ids"`
}

type categoryOfRow struct {
	Index    string `json:"index" yaml:"index"`
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
}

func cmdIndex(_ context.Context, lib *medcontent.Library, args []string, p *printer) error {
	switch {
	case args[0] == "list" && len(args) == 1:
		rows := []indexRow{}
		for _, idx := range lib.Indexes() {
			rows = append(rows, indexRow{
				Name:       idx.Name(),
				Label:      idx.Label(),
				Database:   idx.Database(),
				Categories: idx.Categories(),
				IDs:        idx.Len(),
			})
		}
		return p.print(rows)
	case args[0] == "ids" && len(args) == 2:
		idx, ok := lib.Index(args[1])
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownIndex, args[1])
		}
		return p.print(idx.AllIDs())
	case args[0] == "category-of" && len(args) == 3:
		idx, ok := lib.Index(args[1])
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownIndex, args[1])
		}
		key, ok := idx.CategoryFor(args[2])
		if !ok {
			return fmt.Errorf("%w: %s is not listed in index %s", domain.ErrNotFound, args[2], args[1])
		}
		return p.print(categoryOfRow{Index: idx.Name(), ID: args[2], Category: key})
	default:
		return fmt.Errorf("%w: medcontent index list | ids <index> | category-of <index> <id>", errUsage)
	}
}
