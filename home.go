package resolvepath

import (
	"errors"

	"github.com/mitchellh/go-homedir"
)

var errEmptyHome = errors.New("home directory is empty")

// StaticHome returns a home lookup that always reports dir.
// It is meant for Resolver.Home in tests and for callers that pin the home directory.
func StaticHome(dir string) func() (string, error) {
	return func() (string, error) {
		return dir, nil
	}
}

// lookupHome queries home for the current user's home directory.
// A nil home falls back to go-homedir, which reads HOME (USERPROFILE on
// Windows) and otherwise asks the platform.
func lookupHome(home func() (string, error)) (string, error) {
	if home == nil {
		home = homedir.Dir
	}
	dir, err := home()
	if err != nil {
		return "", &Error{Kind: KindHomeNotFound, Err: err}
	}
	if dir == "" {
		return "", &Error{Kind: KindHomeNotFound, Err: errEmptyHome}
	}
	return dir, nil
}
