package main

import (
	"fmt"

	"github.com/d2verb/resolvepath"
	"github.com/d2verb/resolvepath/internal/ui"
)

type ResolveCmd struct {
	Paths  []string `arg:"" name:"path" help:"Paths to resolve" predictor:"path"`
	Base   string   `short:"b" help:"Resolve against this file or directory instead of the current directory" predictor:"path"`
	Strict bool     `help:"Fail if the base path exists but cannot be inspected"`
	Quiet  bool     `short:"q" help:"Print only the resolved paths"`
}

func (c *ResolveCmd) Run(a *app) error {
	r := a.resolverFor(c.Strict)

	for _, p := range c.Paths {
		if resolvepath.IsResolved(p) {
			a.logger.Debug("Path is already absolute", "path", p)
		}

		var resolved string
		var err error
		if c.Base == "" {
			resolved, err = r.TryResolve(p)
		} else {
			resolved, err = r.TryResolveIn(p, c.Base)
		}
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}

		a.logger.Info("Resolved path", "path", p, "base", c.Base, "resolved", resolved)
		if c.Quiet {
			fmt.Fprintln(ui.Output, resolved)
		} else {
			ui.PrintResolution(p, resolved)
		}
	}
	return nil
}
