package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pagesmith/cmd/pagesmith/commands"
	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesmith/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], &commands.Global{}))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, g *commands.Global) int {
	var cli commands.CLI
	parser, err := newParser(&cli, g)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "pagesmith: %v\n", err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "pagesmith: %v\n", err)
		return 1
	}
	err = kctx.Run(g, &cli)
	return ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).Handle(err)
}

func newParser(cli *commands.CLI, g *commands.Global) (*kong.Kong, error) {
	vars := commands.Vars()
	vars["version"] = version.String()
	return kong.New(cli,
		kong.Name("pagesmith"),
		kong.Description("Scaffold a single-page marketing site from a configuration file."),
		kong.UsageOnError(),
		kong.Vars(vars),
		kong.Bind(g),
	)
}
