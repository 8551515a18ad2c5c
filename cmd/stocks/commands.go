package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"stock-dashboard/src/analysis"

	"github.com/google/subcommands"
)

var commands = []subcommands.Command{
	&listCmd{},
	&showCmd{},
	&sectorsCmd{},
	&moversCmd{},
}

// -----------------------------------------------------------------------------
// list
// -----------------------------------------------------------------------------

type listCmd struct {
	query   string
	sector  string
	codes   string
	refresh bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list instruments" }
func (*listCmd) Usage() string {
	return `list [-q text] [-sector name] [-codes A,B] [-refresh]:
  Print the instrument list, optionally filtered.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "case-insensitive match on code or name")
	f.StringVar(&c.sector, "sector", "", "only this sector")
	f.StringVar(&c.codes, "codes", "", "comma separated watchlist codes")
	f.BoolVar(&c.refresh, "refresh", false, "bypass the cache ttl")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	result := app.instruments(ctx, c.refresh)

	var codes []string
	if c.codes != "" {
		codes = strings.Split(c.codes, ",")
	}
	list := analysis.FilterInstruments(result.Instruments, analysis.InstrumentFilter{
		Query:  c.query,
		Sector: c.sector,
		Codes:  codes,
	})

	return printMarkdown(listMarkdown(list, result))
}

// -----------------------------------------------------------------------------
// show
// -----------------------------------------------------------------------------

type showCmd struct {
	history bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one instrument with its fundamentals" }
func (*showCmd) Usage() string {
	return `show [-history] CODE:
  Print price, change and fundamental ratings of an instrument.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.history, "history", false, "append the synthetic price chart table")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "show requires exactly one instrument code")
		return subcommands.ExitUsageError
	}

	app, err := newCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	result := app.instruments(ctx, false)
	in, ok := analysis.FindInstrument(result.Instruments, f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "instrument %q not found\n", strings.ToUpper(f.Arg(0)))
		return subcommands.ExitFailure
	}

	md := detailMarkdown(app.analysis.BuildDetail(in, result.Instruments))
	if c.history {
		history, err := app.analysis.History(in, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		md += historyMarkdown(history)
	}
	return printMarkdown(md)
}

// -----------------------------------------------------------------------------
// sectors
// -----------------------------------------------------------------------------

type sectorsCmd struct{}

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "summarize instruments per sector" }
func (*sectorsCmd) Usage() string {
	return "sectors:\n  Print count, average returns and market cap per sector.\n"
}
func (*sectorsCmd) SetFlags(f *flag.FlagSet) {}

func (*sectorsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	result := app.instruments(ctx, false)
	return printMarkdown(sectorsMarkdown(app.analysis.SectorSummaries(result.Instruments), app.market.Status()))
}

// -----------------------------------------------------------------------------
// movers
// -----------------------------------------------------------------------------

type moversCmd struct {
	limit int
}

func (*moversCmd) Name() string     { return "movers" }
func (*moversCmd) Synopsis() string { return "top daily gainers and losers" }
func (*moversCmd) Usage() string {
	return `movers [-n 5]:
  Print the best and worst daily performers.
`
}

func (c *moversCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 5, "how many of each")
}

func (c *moversCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	result := app.instruments(ctx, false)
	return printMarkdown(moversMarkdown(app.analysis.TopMovers(result.Instruments, c.limit)))
}
