// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc() // Dimmed text (more readable than gray)
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message with red X.
func PrintError(message string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}

// PrintResolution prints an input path and what it resolved to.
// Paths that were already absolute are marked as unchanged.
func PrintResolution(input, resolved string) {
	if input == resolved {
		fmt.Fprintf(Output, "%s %s\n", Blue(resolved), Dim("(unchanged)"))
		return
	}
	fmt.Fprintf(Output, "%s %s %s\n", input, Dim("→"), Blue(resolved))
}

// ManifestEntry is one resolved manifest path for display.
type ManifestEntry struct {
	Name     string
	Raw      string
	Resolved string
}

// PrintManifest prints the resolved entries of a manifest file.
func PrintManifest(file, base string, entries []ManifestEntry) {
	fmt.Fprintf(Output, "%s %s\n", Bold("Manifest:"), file)
	fmt.Fprintf(Output, "%s %s\n", Bold("Base:"), Blue(base))

	if len(entries) == 0 {
		fmt.Fprintln(Output, "No paths defined.")
		return
	}

	fmt.Fprintln(Output, Bold("Paths:"))
	for _, e := range entries {
		fmt.Fprintf(Output, "  %s %s %s\n",
			Cyan(e.Name+":"),
			Blue(e.Resolved),
			Dim(fmt.Sprintf("(%s)", e.Raw)),
		)
	}
}

// ConfigDetails contains CLI configuration for display.
type ConfigDetails struct {
	ConfigFile string
	Exists     bool
	Home       string
	Strict     bool
	LogFile    string
}

// PrintConfigDetails prints the effective configuration in a formatted style.
func PrintConfigDetails(c ConfigDetails) {
	status := Green("✓ Found")
	if !c.Exists {
		status = Yellow("○ Not found (using defaults)")
	}
	fmt.Fprintf(Output, "%s %s %s\n", Bold("Config:"), c.ConfigFile, status)
	fmt.Fprintf(Output, "%s %s\n", Bold("Home:"), Blue(c.Home))
	fmt.Fprintf(Output, "%s %t\n", Bold("Strict:"), c.Strict)

	logFile := c.LogFile
	if logFile == "" {
		logFile = Dim("disabled")
	}
	fmt.Fprintf(Output, "%s %s\n", Bold("Log File:"), logFile)
}
