package main

import (
	"fmt"

	"github.com/d2verb/resolvepath"
	"github.com/d2verb/resolvepath/internal/ui"
)

type TildeCmd struct {
	Paths []string `arg:"" name:"path" help:"Paths to expand" predictor:"path"`
	Home  string   `help:"Home directory to expand to (default: current user's home)" predictor:"path"`
	Quiet bool     `short:"q" help:"Print only the expanded paths"`
}

func (c *TildeCmd) Run(a *app) error {
	for _, p := range c.Paths {
		expanded, err := c.expand(a.resolver, p)
		if err != nil {
			return fmt.Errorf("expand %s: %w", p, err)
		}
		if c.Quiet {
			fmt.Fprintln(ui.Output, expanded)
		} else {
			ui.PrintResolution(p, expanded)
		}
	}
	return nil
}

func (c *TildeCmd) expand(r *resolvepath.Resolver, path string) (string, error) {
	if c.Home != "" {
		return resolvepath.ExpandTildeWith(c.Home, path), nil
	}
	return r.ExpandTilde(path)
}
