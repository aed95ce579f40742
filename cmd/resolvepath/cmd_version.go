package main

import (
	"fmt"

	"github.com/d2verb/resolvepath/internal/ui"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(ui.Output, "resolvepath version %s (%s)\n", version, commit)
	return nil
}
