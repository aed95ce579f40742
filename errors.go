package resolvepath

import (
	"errors"
	"fmt"
)

// Kind classifies a resolution failure.
type Kind string

const (
	KindCwdUnavailable    Kind = "cwd unavailable"
	KindHomeNotFound      Kind = "home not found"
	KindInvalidBase       Kind = "invalid base"
	KindNoParentDirectory Kind = "no parent directory"
	// KindStatFailed is only returned by a Resolver in strict mode.
	KindStatFailed Kind = "stat failed"
)

// Error is returned by every fallible resolution.
type Error struct {
	Kind Kind
	Path string // path that could not be used, if any
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindCwdUnavailable:
		return fmt.Sprintf("get current directory: %v", e.Err)
	case KindHomeNotFound:
		if e.Err != nil {
			return fmt.Sprintf("home directory not found: %v", e.Err)
		}
		return "home directory not found"
	case KindInvalidBase:
		return fmt.Sprintf("base path %q must resolve to an absolute path", e.Path)
	case KindNoParentDirectory:
		return fmt.Sprintf("base path %q points to a file with no parent directory", e.Path)
	case KindStatFailed:
		return fmt.Sprintf("inspect base path %q: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("resolve path: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

// IsCwdUnavailable reports whether err indicates the working directory could not be determined.
func IsCwdUnavailable(err error) bool { return KindOf(err) == KindCwdUnavailable }

// IsHomeNotFound reports whether err indicates no home directory was available for a tilde.
func IsHomeNotFound(err error) bool { return KindOf(err) == KindHomeNotFound }

// IsInvalidBase reports whether err indicates a base path that cannot be made absolute.
func IsInvalidBase(err error) bool { return KindOf(err) == KindInvalidBase }

// IsNoParentDirectory reports whether err indicates a file base without a parent directory.
func IsNoParentDirectory(err error) bool { return KindOf(err) == KindNoParentDirectory }

// IsStatFailed reports whether err indicates a base path that could not be inspected.
func IsStatFailed(err error) bool { return KindOf(err) == KindStatFailed }
