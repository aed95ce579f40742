// Package resolvepath resolves relative (./, ../) and tilde (~/) paths into
// absolute paths.
//
// Paths are anchored either to the process working directory or to a base
// path supplied by the caller. A base that names a regular file is replaced
// by the file's parent directory, so paths written in a config file can be
// resolved against the config file itself:
//
//	resolvepath.ResolveIn("./alacritty.yml", "~/.config/alacritty/")
//	// "/home/user/.config/alacritty/alacritty.yml"
//
//	resolvepath.ResolveIn("./cache", "/etc/app/config.yaml")
//	// "/etc/app/cache" if config.yaml is a file
//
// Resolution is not canonicalization: ".." segments are kept verbatim and
// symlinks are not followed. "~user" paths name another user's home and are
// never expanded.
//
// Every operation comes in two forms. The Try variants return an *Error;
// Resolve and ResolveIn panic instead.
package resolvepath
