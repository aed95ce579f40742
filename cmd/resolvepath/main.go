package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"
	"github.com/willabides/kongplete"
)

var (
	version = "dev"
	commit  = "none"
)

type Globals struct {
	ConfigFile string `name:"config" help:"Config file (default: ~/.resolvepath/config.yaml)" predictor:"path"`
	Verbose    bool   `short:"v" help:"Print debug logs to stderr"`
}

type CLI struct {
	Globals

	Resolve  ResolveCmd  `cmd:"" help:"Resolve paths against the current directory or a base path"`
	Tilde    TildeCmd    `cmd:"" help:"Expand a leading ~ in paths"`
	Manifest ManifestCmd `cmd:"" help:"Resolve the paths listed in a manifest file"`
	Config   ConfigCmd   `cmd:"" help:"Show or initialize the configuration"`

	Version    VersionCmd                   `cmd:"" help:"Show version"`
	Completion kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	// Look the home directory up on every resolution.
	homedir.DisableCache = true

	cli := CLI{}
	loader := &appLoader{globals: &cli.Globals}
	parser := newParser(&cli, loader)
	kongplete.Complete(parser, kongplete.WithPredictor("path", newPathPredictor()))

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run()
	loader.Close()
	if err != nil {
		exit(err)
	}
}

func newParser(cli *CLI, loader *appLoader) *kong.Kong {
	return kong.Must(cli,
		kong.Name("resolvepath"),
		kong.Description("Resolve relative and tilde paths into absolute paths"),
		kong.UsageOnError(),
		kong.BindToProvider(loader.load),
	)
}

func exit(err error) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Message != "" {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
