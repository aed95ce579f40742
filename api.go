package resolvepath

import "path/filepath"

// PathLike is any string or byte slice type holding a path.
type PathLike interface {
	~string | ~[]byte
}

// pathOf converts any PathLike into the string form used by Resolver.
// String types convert without copying; byte slices are copied once.
func pathOf[P PathLike](p P) string {
	return string(p)
}

// IsResolved reports whether path would be returned unchanged by TryResolveIn
// for any base.
func IsResolved[P PathLike](path P) bool {
	return filepath.IsAbs(pathOf(path))
}

// ExpandTilde expands a leading "~" using Default.
func ExpandTilde[P PathLike](path P) (string, error) {
	return Default.ExpandTilde(pathOf(path))
}

// TryResolve resolves path against the working directory using Default.
func TryResolve[P PathLike](path P) (string, error) {
	return Default.TryResolve(pathOf(path))
}

// TryResolveIn resolves path against base using Default.
func TryResolveIn[P, B PathLike](path P, base B) (string, error) {
	return Default.TryResolveIn(pathOf(path), pathOf(base))
}

// Resolve resolves path against the working directory using Default.
// It panics if the working directory or a needed home directory is unavailable.
func Resolve[P PathLike](path P) string {
	return Default.Resolve(pathOf(path))
}

// ResolveIn resolves path against base using Default.
// It panics if base cannot be made absolute or a needed home directory is unavailable.
func ResolveIn[P, B PathLike](path P, base B) string {
	return Default.ResolveIn(pathOf(path), pathOf(base))
}
