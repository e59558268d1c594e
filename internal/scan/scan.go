package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/jsvensson/css-class-lsp/internal/fileuri"
	"github.com/jsvensson/css-class-lsp/internal/stylesheet"
)

var log = commonlog.GetLogger("css-class-lsp.scan")

// DefaultSkipDirs are directory names never descended into.
var DefaultSkipDirs = []string{"node_modules", ".git", ".next", "target"}

const defaultWorkers = 8

// Scanner finds stylesheets below a directory and extracts their classes.
// The zero value scans with the default skip-list and extensions.
type Scanner struct {
	SkipDirs   []string // directory names to prune
	Extensions []string // stylesheet extensions without the dot
	Ignore     []string // doublestar globs matched against root-relative slash paths
	Workers    int      // concurrent file reads; <= 0 means a default
}

// Scan walks root and returns the class sets of every stylesheet found,
// keyed by file URI. Files that cannot be read or are not valid UTF-8 are
// skipped. An error is returned only if root itself cannot be walked.
func (s *Scanner) Scan(root string) (map[string]stylesheet.ClassSet, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", root)
	}

	var (
		mu     sync.Mutex
		result = make(map[string]stylesheet.ClassSet)
		g      errgroup.Group
	)
	g.SetLimit(s.workers())

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debugf("skipping %s: %s", path, err)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && (slices.Contains(s.skipDirs(), d.Name()) || s.ignored(root, path)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !stylesheet.IsStylesheet(path, s.extensions()) || s.ignored(root, path) {
			return nil
		}

		g.Go(func() error {
			uri, classes, err := s.ScanFile(path)
			if err != nil {
				log.Debugf("skipping %s: %s", path, err)
				return nil
			}
			mu.Lock()
			result[uri] = classes
			mu.Unlock()
			return nil
		})
		return nil
	})

	// Workers never fail; wait so no goroutine outlives the scan.
	_ = g.Wait()

	if walkErr != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, walkErr)
	}
	return result, nil
}

// ScanFile reads a single stylesheet and returns its URI and classes.
func (s *Scanner) ScanFile(path string) (string, stylesheet.ClassSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading stylesheet: %w", err)
	}
	if !utf8.Valid(data) {
		return "", nil, fmt.Errorf("reading stylesheet %s: not valid UTF-8", path)
	}
	return fileuri.FromPath(path), stylesheet.Extract(string(data)), nil
}

// ScanRoots scans each root concurrently and calls merge with every root's
// result as soon as it is available. Roots that cannot be scanned are logged
// and skipped.
func (s *Scanner) ScanRoots(roots []string, merge func(root string, files map[string]stylesheet.ClassSet)) {
	var g errgroup.Group
	for _, root := range roots {
		g.Go(func() error {
			files, err := s.Scan(root)
			if err != nil {
				log.Warningf("%s", err)
				return nil
			}
			log.Infof("scanned %s: %d stylesheet(s)", root, len(files))
			merge(root, files)
			return nil
		})
	}
	_ = g.Wait()
}

// Skips reports whether a directory named name is pruned by the scanner.
func (s *Scanner) Skips(name string) bool {
	return slices.Contains(s.skipDirs(), name)
}

// Matches reports whether path is a stylesheet the scanner would index.
// root is used to evaluate ignore globs and may be empty.
func (s *Scanner) Matches(root, path string) bool {
	if !stylesheet.IsStylesheet(path, s.extensions()) {
		return false
	}
	return root == "" || !s.ignored(root, path)
}

// Admits reports whether a crawl of root would index path: path lies below
// root, no directory between them is skipped or ignored, and Matches holds.
func (s *Scanner) Admits(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	parts := strings.Split(rel, string(filepath.Separator))
	dir := root
	for _, name := range parts[:len(parts)-1] {
		dir = filepath.Join(dir, name)
		if s.Skips(name) || s.ignored(root, dir) {
			return false
		}
	}
	return s.Matches(root, path)
}

func (s *Scanner) ignored(root, path string) bool {
	if len(s.Ignore) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (s *Scanner) skipDirs() []string {
	if s.SkipDirs == nil {
		return DefaultSkipDirs
	}
	return s.SkipDirs
}

func (s *Scanner) extensions() []string {
	if len(s.Extensions) == 0 {
		return stylesheet.DefaultExtensions
	}
	return s.Extensions
}

func (s *Scanner) workers() int {
	if s.Workers <= 0 {
		return defaultWorkers
	}
	return s.Workers
}
