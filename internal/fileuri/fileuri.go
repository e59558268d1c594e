// Package fileuri converts between editor document URIs and filesystem paths.
package fileuri

import (
	"strings"

	"go.lsp.dev/uri"
)

const filePrefix = uri.FileScheme + "://"

// FromPath returns the file:// URI for path. Relative paths are made absolute.
func FromPath(path string) string {
	return string(uri.File(path))
}

// ToPath returns the filesystem path for a file:// URI. Other schemes and
// unparsable URIs report false.
func ToPath(s string) (string, bool) {
	if !strings.HasPrefix(s, filePrefix) {
		return "", false
	}
	u, err := uri.Parse(s)
	if err != nil || !strings.HasPrefix(string(u), filePrefix) {
		return "", false
	}
	return u.Filename(), true
}

// Canonical re-encodes a file:// URI so that equivalent spellings (escaped
// characters, drive letter case) map to one key. Non-file URIs are returned
// unchanged.
func Canonical(s string) string {
	path, ok := ToPath(s)
	if !ok {
		return s
	}
	return FromPath(path)
}

// IsUnder reports whether the file URI child lies inside the directory URI root.
func IsUnder(child, root string) bool {
	root = strings.TrimSuffix(Canonical(root), "/")
	child = Canonical(child)
	return child == root || strings.HasPrefix(child, root+"/")
}
