package resolvepath

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const separator = string(filepath.Separator)

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}

func hasTrailingSeparator(path string) bool {
	return path != "" && os.IsPathSeparator(path[len(path)-1])
}

// trimTrailingSeparators strips trailing separators without emptying a root.
func trimTrailingSeparators(path string) string {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]
	end := len(rest)
	for end > 1 && os.IsPathSeparator(rest[end-1]) {
		end--
	}
	return vol + rest[:end]
}

// trimLeadingCurrentDir strips a leading run of "." segments and the
// separators following them.
func trimLeadingCurrentDir(rel string) string {
	for {
		switch {
		case rel == ".":
			return ""
		case len(rel) > 1 && rel[0] == '.' && os.IsPathSeparator(rel[1]):
			rel = strings.TrimLeftFunc(rel[1:], isSeparator)
		default:
			return rel
		}
	}
}

// join appends rel onto dir.
//
// Only a leading "./" run of rel is dropped; the rest is appended verbatim,
// so "..", inner "." segments and repeated separators survive. dir is only
// stripped of trailing separators.
func join(dir, rel string) string {
	base := trimTrailingSeparators(dir)
	rel = trimLeadingCurrentDir(rel)
	if rel == "" {
		return base
	}
	if base != "" && !hasTrailingSeparator(base) {
		return base + separator + rel
	}
	return base + rel
}

// parent returns the directory containing path. It reports false for a root.
func parent(path string) (string, bool) {
	vol := filepath.VolumeName(path)
	rest := strings.TrimRightFunc(path[len(vol):], isSeparator)

	i := strings.LastIndexFunc(rest, isSeparator)
	if i < 0 {
		return "", false
	}
	dir := strings.TrimRightFunc(rest[:i], isSeparator)
	if dir == "" {
		// parent is the root itself
		dir = rest[:1]
	}
	return vol + dir, true
}
