package resolvepath

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Resolver resolves paths against a base. The zero value is ready to use and
// consults the live environment; set the function fields to pin the home
// directory, working directory or file system view.
//
// A Resolver holds no state between calls and may be used concurrently as
// long as its fields are not modified.
type Resolver struct {
	// Home returns the current user's home directory. Defaults to go-homedir.
	Home func() (string, error)
	// Getwd returns the working directory. Defaults to os.Getwd.
	Getwd func() (string, error)
	// Stat inspects a base path. Defaults to os.Stat.
	Stat func(name string) (fs.FileInfo, error)
	// Logger receives debug records for stat errors absorbed while
	// classifying a base. Defaults to discarding.
	Logger *slog.Logger
	// Strict makes stat errors other than fs.ErrNotExist fail with
	// KindStatFailed instead of treating the base as a directory.
	Strict bool
}

// Default is the Resolver used by the package-level functions.
var Default = &Resolver{}

func (r *Resolver) stat(name string) (fs.FileInfo, error) {
	if r.Stat != nil {
		return r.Stat(name)
	}
	return os.Stat(name)
}

func (r *Resolver) getwd() (string, error) {
	if r.Getwd != nil {
		return r.Getwd()
	}
	return os.Getwd()
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// ExpandTilde expands a leading "~" segment of path to the current home
// directory. See ExpandTildeWith for the exact rules. The home directory is
// only looked up when path starts with a tilde segment.
func (r *Resolver) ExpandTilde(path string) (string, error) {
	if !hasTildePrefix(path) {
		return path, nil
	}
	home, err := lookupHome(r.Home)
	if err != nil {
		return "", err
	}
	return ExpandTildeWith(home, path), nil
}

// TryResolve resolves path against the working directory. The working
// directory is only queried when path is neither absolute nor a tilde path.
func (r *Resolver) TryResolve(path string) (string, error) {
	if filepath.IsAbs(path) || hasTildePrefix(path) {
		return r.TryResolveIn(path, "")
	}
	cwd, err := r.getwd()
	if err != nil {
		return "", &Error{Kind: KindCwdUnavailable, Err: err}
	}
	return r.TryResolveIn(path, cwd)
}

// TryResolveIn resolves path against base.
//
// Absolute paths are returned unchanged and tilde paths are expanded without
// looking at base. Otherwise base is made absolute (expanding a tilde if
// needed) and path is appended to it; when base is an existing regular file,
// path is appended to the file's directory instead. A base that cannot be
// inspected is treated as a directory.
func (r *Resolver) TryResolveIn(path, base string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	if hasTildePrefix(path) {
		return r.ExpandTilde(path)
	}

	dir, err := r.baseDir(base)
	if err != nil {
		return "", err
	}
	return join(dir, path), nil
}

// baseDir returns the absolute directory paths are joined onto.
func (r *Resolver) baseDir(base string) (string, error) {
	abs := base
	if !filepath.IsAbs(abs) {
		expanded, err := r.ExpandTilde(base)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(expanded) {
			return "", &Error{Kind: KindInvalidBase, Path: base}
		}
		abs = expanded
	}

	info, err := r.stat(abs)
	if err != nil {
		if r.Strict && !errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Kind: KindStatFailed, Path: abs, Err: err}
		}
		r.logger().Debug("Base not inspectable, using it as a directory", "base", abs, "error", err)
		return abs, nil
	}
	if !info.Mode().IsRegular() {
		return abs, nil
	}

	dir, ok := parent(abs)
	if !ok {
		return "", &Error{Kind: KindNoParentDirectory, Path: abs}
	}
	return dir, nil
}

// Resolve is like TryResolve but panics on failure.
func (r *Resolver) Resolve(path string) string {
	resolved, err := r.TryResolve(path)
	if err != nil {
		panic(fmt.Errorf("resolvepath: resolve %q in current directory: %w", path, err))
	}
	return resolved
}

// ResolveIn is like TryResolveIn but panics on failure.
func (r *Resolver) ResolveIn(path, base string) string {
	resolved, err := r.TryResolveIn(path, base)
	if err != nil {
		panic(fmt.Errorf("resolvepath: resolve %q in %q: %w", path, base, err))
	}
	return resolved
}
