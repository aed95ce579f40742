package main

import (
	"fmt"

	"github.com/d2verb/resolvepath/internal/config"
	"github.com/d2verb/resolvepath/internal/ui"
)

type ConfigCmd struct {
	Init bool `help:"Write a default config file if none exists"`
}

func (c *ConfigCmd) Run(a *app) error {
	if c.Init {
		return c.init(a)
	}

	ui.PrintConfigDetails(ui.ConfigDetails{
		ConfigFile: a.configFile,
		Exists:     fileExists(a.configFile),
		Home:       a.paths.Home,
		Strict:     a.config.Strict,
		LogFile:    a.config.Log.File,
	})
	return nil
}

func (c *ConfigCmd) init(a *app) error {
	if fileExists(a.configFile) {
		ui.PrintWarning(fmt.Sprintf("Config already exists: %s", a.configFile))
		return nil
	}

	if err := a.paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	cfg := config.DefaultConfig()
	cfg.Log.File = a.paths.Log
	if err := config.Write(a.configFile, cfg); err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Wrote %s", a.configFile))
	return nil
}
