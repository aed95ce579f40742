// Package config handles resolvepath CLI configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/d2verb/resolvepath"
)

// HomeEnv overrides the resolvepath home directory when set.
const HomeEnv = "RESOLVEPATH_HOME"

// Paths holds common paths used by the CLI.
type Paths struct {
	Home   string
	Config string
	Logs   string
	Log    string
}

// GetPaths returns the paths for the current user.
func GetPaths(r *resolvepath.Resolver) (*Paths, error) {
	home, err := r.ExpandTilde("~/.resolvepath")
	if env := os.Getenv(HomeEnv); env != "" {
		home, err = r.TryResolve(env)
	}
	if err != nil {
		return nil, err
	}

	logsDir := filepath.Join(home, "logs")
	return &Paths{
		Home:   home,
		Config: filepath.Join(home, "config.yaml"),
		Logs:   logsDir,
		Log:    filepath.Join(logsDir, "resolvepath.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.Home, p.Logs}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
