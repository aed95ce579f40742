package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/d2verb/resolvepath"
	"github.com/d2verb/resolvepath/internal/config"
	"github.com/d2verb/resolvepath/internal/logging"
)

// stderr is where --verbose logs go. Can be replaced for testing.
var stderr io.Writer = os.Stderr

// app is bound to every command's Run method.
type app struct {
	paths      *config.Paths
	configFile string
	config     config.Config
	logger     *slog.Logger
	closer     io.Closer
	resolver   *resolvepath.Resolver
}

func newApp(g *Globals) (*app, error) {
	r := &resolvepath.Resolver{}

	paths, err := getPaths(r)
	if err != nil {
		return nil, err
	}

	configFile := paths.Config
	if g.ConfigFile != "" {
		configFile, err = r.TryResolve(g.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
	}

	cfg, err := config.Load(r, configFile)
	if err != nil {
		return nil, err
	}

	opts := logging.Options{}
	if cfg.Log.File != "" {
		rotation := cfg.Log.Rotation()
		opts.File = &rotation
	}
	if g.Verbose {
		opts.Console = stderr
	}
	logger, closer := logging.New(opts)

	r.Logger = logger
	r.Strict = cfg.Strict
	return &app{
		paths:      paths,
		configFile: configFile,
		config:     cfg,
		logger:     logger,
		closer:     closer,
		resolver:   r,
	}, nil
}

// appLoader builds the app the first time a command asks for it, so commands
// that never touch the config keep working when the config file is broken.
type appLoader struct {
	globals *Globals
	app     *app
}

func (l *appLoader) load() (*app, error) {
	if l.app != nil {
		return l.app, nil
	}
	a, err := newApp(l.globals)
	if err != nil {
		return nil, err
	}
	l.app = a
	return a, nil
}

// Close releases the app if one was built.
func (l *appLoader) Close() {
	if l.app != nil {
		l.app.Close()
	}
}

// Close releases the log file.
func (a *app) Close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

// resolverFor returns the app resolver, switched to strict mode if requested.
func (a *app) resolverFor(strict bool) *resolvepath.Resolver {
	if !strict || a.resolver.Strict {
		return a.resolver
	}
	r := *a.resolver
	r.Strict = true
	return &r
}

func getPaths(r *resolvepath.Resolver) (*config.Paths, error) {
	paths, err := config.GetPaths(r)
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}
	return paths, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
