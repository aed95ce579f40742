package main

import (
	"errors"
	"fmt"

	"github.com/d2verb/resolvepath"
	"github.com/d2verb/resolvepath/internal/manifest"
)

// Exit codes for CLI commands.
const (
	exitSuccess           = 0
	exitError             = 1
	exitInvalidBase       = 2
	exitHomeNotFound      = 3
	exitCwdUnavailable    = 4
	exitManifestInvalid   = 5
	exitBaseUninspectable = 6
	exitManifestNotFound  = 7
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errManifestNotFound(path string) *ExitError {
	return &ExitError{
		Code:    exitManifestNotFound,
		Message: fmt.Sprintf("Manifest '%s' not found.", path),
	}
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if manifest.IsInvalid(err) {
		return exitManifestInvalid
	}

	switch resolvepath.KindOf(err) {
	case resolvepath.KindInvalidBase, resolvepath.KindNoParentDirectory:
		return exitInvalidBase
	case resolvepath.KindHomeNotFound:
		return exitHomeNotFound
	case resolvepath.KindCwdUnavailable:
		return exitCwdUnavailable
	case resolvepath.KindStatFailed:
		return exitBaseUninspectable
	default:
		return exitError
	}
}
