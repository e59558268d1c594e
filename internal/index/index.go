package index

import (
	"slices"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/jsvensson/css-class-lsp/internal/fileuri"
	"github.com/jsvensson/css-class-lsp/internal/stylesheet"
)

// Index maps stylesheet URIs to the class names each file defines.
//
// Entries live in a sharded map: readers of different shards never block
// each other and a writer locks one shard for one mutation. Stored sets are
// replaced, never modified in place, so a reader always sees a whole set.
type Index struct {
	files cmap.ConcurrentMap[string, stylesheet.ClassSet]
}

func New() *Index {
	return &Index{files: cmap.New[stylesheet.ClassSet]()}
}

// Merge inserts every entry of files whose URI is not tracked yet,
// typically the result of a workspace scan. Tracked entries came from the
// editor or a watch event after the scan read the disk, and are kept.
func (x *Index) Merge(files map[string]stylesheet.ClassSet) {
	for uri, classes := range files {
		x.files.SetIfAbsent(fileuri.Canonical(uri), classes)
	}
}

// Upsert replaces the class set recorded for uri.
func (x *Index) Upsert(uri string, classes stylesheet.ClassSet) {
	x.files.Set(fileuri.Canonical(uri), classes)
}

// Remove forgets uri.
func (x *Index) Remove(uri string) {
	x.files.Remove(fileuri.Canonical(uri))
}

// RemoveUnder forgets every file inside the directory rootURI and returns
// how many entries were dropped.
func (x *Index) RemoveUnder(rootURI string) int {
	n := 0
	for _, uri := range x.files.Keys() {
		if fileuri.IsUnder(uri, rootURI) {
			x.files.Remove(uri)
			n++
		}
	}
	return n
}

// Get returns the class set recorded for uri.
func (x *Index) Get(uri string) (stylesheet.ClassSet, bool) {
	return x.files.Get(fileuri.Canonical(uri))
}

// Snapshot returns the union of all recorded class sets. Each shard is read
// under its read lock; shards are not locked together, so concurrent
// writers may be observed in one shard and not yet in another.
func (x *Index) Snapshot() stylesheet.ClassSet {
	union := make(stylesheet.ClassSet)
	x.files.IterCb(func(_ string, classes stylesheet.ClassSet) {
		for name := range classes {
			union[name] = struct{}{}
		}
	})
	return union
}

// Len returns the number of tracked stylesheets.
func (x *Index) Len() int {
	return x.files.Count()
}

// Files returns the tracked stylesheet URIs in ascending order.
func (x *Index) Files() []string {
	keys := x.files.Keys()
	slices.Sort(keys)
	return keys
}
