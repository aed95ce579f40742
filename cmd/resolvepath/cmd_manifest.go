package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/d2verb/resolvepath/internal/manifest"
	"github.com/d2verb/resolvepath/internal/ui"
)

type ManifestCmd struct {
	File  string `arg:"" help:"Manifest file (YAML with a 'paths' map)" predictor:"path"`
	Watch bool   `short:"w" help:"Resolve again whenever the file changes"`
}

func (c *ManifestCmd) Run(a *app) error {
	res, err := manifest.LoadAndResolve(a.resolver, c.File)
	if errors.Is(err, fs.ErrNotExist) {
		return errManifestNotFound(c.File)
	}
	if err != nil {
		return err
	}
	printManifest(res)

	if !c.Watch {
		return nil
	}

	w, err := manifest.NewWatcher(a.resolver, c.File, a.logger, func(res *manifest.Result, err error) {
		if err != nil {
			ui.PrintError(err.Error())
			return
		}
		fmt.Fprintln(ui.Output)
		printManifest(res)
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.PrintInfo("Watching for changes (Ctrl+C to stop)...")
	return w.Run(ctx)
}

func printManifest(res *manifest.Result) {
	entries := make([]ui.ManifestEntry, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, ui.ManifestEntry{Name: e.Name, Raw: e.Raw, Resolved: e.Resolved})
	}
	ui.PrintManifest(res.File, res.Base, entries)
}
