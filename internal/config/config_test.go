package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/d2verb/resolvepath"
)

func TestGetPaths(t *testing.T) {
	t.Setenv(HomeEnv, "")
	r := &resolvepath.Resolver{Home: resolvepath.StaticHome("/home/test")}

	paths, err := GetPaths(r)
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}

	home := "/home/test/.resolvepath"
	logsDir := filepath.Join(home, "logs")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Home", paths.Home, home},
		{"Config", paths.Config, filepath.Join(home, "config.yaml")},
		{"Logs", paths.Logs, logsDir},
		{"Log", paths.Log, filepath.Join(logsDir, "resolvepath.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestGetPaths_HomeEnv(t *testing.T) {
	t.Setenv(HomeEnv, "~/custom")
	r := &resolvepath.Resolver{Home: resolvepath.StaticHome("/home/test")}

	paths, err := GetPaths(r)
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}
	if paths.Home != "/home/test/custom" {
		t.Errorf("Home = %q, want %q", paths.Home, "/home/test/custom")
	}
	if !strings.HasPrefix(paths.Log, paths.Home) {
		t.Errorf("Log should be under Home: %q", paths.Log)
	}
}

func TestGetPaths_HomeNotFound(t *testing.T) {
	t.Setenv(HomeEnv, "")
	r := &resolvepath.Resolver{Home: resolvepath.StaticHome("")}

	if _, err := GetPaths(r); !resolvepath.IsHomeNotFound(err) {
		t.Errorf("GetPaths() error = %v, want home not found", err)
	}
}

func TestPaths_EnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	home := filepath.Join(tmpDir, ".resolvepath")
	paths := &Paths{
		Home: home,
		Logs: filepath.Join(home, "logs"),
	}

	if _, err := os.Stat(paths.Home); !os.IsNotExist(err) {
		t.Fatal("Home directory should not exist before EnsureDirectories")
	}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	for _, dir := range []string{paths.Home, paths.Logs} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("Directory %q should exist: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%q should be a directory", dir)
		}
	}

	// Calling again should not error (idempotent)
	if err := paths.EnsureDirectories(); err != nil {
		t.Errorf("EnsureDirectories() second call error = %v", err)
	}
}
