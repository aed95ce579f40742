package resolvepath

import (
	"os"
	"strings"
	"unicode/utf8"
)

// hasTildePrefix reports whether the first segment of path is exactly "~".
func hasTildePrefix(path string) bool {
	if !strings.HasPrefix(path, "~") {
		return false
	}
	return len(path) == 1 || os.IsPathSeparator(path[1])
}

// ExpandTildeWith replaces a leading "~" segment of path with home.
//
//   - "~", "~/" and "~///" return home unchanged
//   - "~/.config" and "~///.config" return home joined with ".config"
//   - "~user/..." is returned unchanged; other users' homes are not looked up
//   - paths without a leading tilde, or that are not valid UTF-8, are returned unchanged
//
// The remainder after the tilde is not cleaned; "~/a/../b" keeps its "..".
func ExpandTildeWith(home, path string) string {
	if !hasTildePrefix(path) || !utf8.ValidString(path) {
		return path
	}

	rest := strings.TrimLeftFunc(path[1:], isSeparator)
	if rest == "" {
		return home
	}
	return join(home, rest)
}
