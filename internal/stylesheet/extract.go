package stylesheet

import (
	"path"
	"regexp"
	"slices"
	"strings"
)

// DefaultExtensions are the stylesheet file extensions recognized when no
// configuration overrides them.
var DefaultExtensions = []string{"css", "scss", "sass", "less"}

var (
	blockComment  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	stringLiteral = regexp.MustCompile(`(?s)"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`)
	classSelector = regexp.MustCompile(`\.(-?[a-zA-Z_][a-zA-Z0-9_-]*)`)
)

// ClassSet is an unordered set of class names. Sets handed to the index are
// treated as immutable.
type ClassSet map[string]struct{}

// NewClassSet returns a set holding names.
func NewClassSet(names ...string) ClassSet {
	s := make(ClassSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s ClassSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the set members in ascending order.
func (s ClassSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Extract returns the class selectors defined in a CSS, SCSS, Sass or Less
// source. Block comments and quoted strings are blanked out first so that
// class-like text inside them is not picked up. Nested rules, mixins and
// at-rules are not interpreted: every ".name" token counts.
func Extract(src string) ClassSet {
	src = blockComment.ReplaceAllLiteralString(src, " ")
	src = stringLiteral.ReplaceAllLiteralString(src, " ")

	classes := make(ClassSet)
	for _, m := range classSelector.FindAllStringSubmatch(src, -1) {
		classes[m[1]] = struct{}{}
	}
	return classes
}

// IsStylesheet reports whether name (a file path or URI) ends in one of exts.
// Extensions are given without the leading dot and compared case-sensitively.
func IsStylesheet(name string, exts []string) bool {
	if i := strings.IndexAny(name, "?#"); i >= 0 && strings.Contains(name, "://") {
		name = name[:i]
	}
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return false
	}
	return slices.Contains(exts, ext)
}
