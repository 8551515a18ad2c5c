// Command stocks prints the IDX instrument list, single instruments and
// sector summaries in the terminal, using the same cache pipeline as the
// dashboard service.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

var (
	configPath = flag.String("config", "", "path to config file (defaults are used when empty)")
	plain      = flag.Bool("plain", false, "print raw markdown instead of rendering it")
)

func main() {
	// Handles shell completion requests and exits; no-op otherwise
	completion().Complete("stocks")

	commander := subcommands.NewCommander(flag.CommandLine, "stocks")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "instruments")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
