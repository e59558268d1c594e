// Package watch reports stylesheet changes below workspace roots using
// filesystem notifications, for clients that cannot watch files themselves.
package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("css-class-lsp.watch")

// DefaultDelay is how long the watcher waits for a burst of changes to
// settle before reporting it.
const DefaultDelay = 100 * time.Millisecond

type Kind int

const (
	Created Kind = iota + 1
	Changed
	Deleted
)

func (k Kind) String() string {
	switch k {
	case Created:
		return "created"
	case Changed:
		return "changed"
	case Deleted:
		return "deleted"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a change to one stylesheet, or to a whole directory when Dir is
// set (only for deletions).
type Event struct {
	Path string
	Kind Kind
	Dir  bool
}

// Options controls which paths a Watcher follows.
type Options struct {
	// Skip reports whether a directory with the given base name is pruned.
	Skip func(name string) bool
	// Match reports whether path, found below root, is a stylesheet.
	Match func(root, path string) bool
	// Delay overrides DefaultDelay.
	Delay time.Duration
}

// Watcher watches directory trees recursively and hands coalesced batches
// of events to a callback.
type Watcher struct {
	fs       *fsnotify.Watcher
	opts     Options
	handle   func([]Event)
	debounce func(func())

	mu      sync.Mutex
	dirs    map[string]string // watched directory -> root
	pending map[string]Event
	closed  bool

	start   sync.Once
	wg      sync.WaitGroup
	flushMu sync.Mutex
}

// New creates a Watcher. handle is called from a single goroutine at a time
// with every event observed since the previous call.
func New(opts Options, handle func([]Event)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if opts.Skip == nil {
		opts.Skip = func(string) bool { return false }
	}
	if opts.Match == nil {
		opts.Match = func(string, string) bool { return true }
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	return &Watcher{
		fs:       fw,
		opts:     opts,
		handle:   handle,
		debounce: debounce.New(opts.Delay),
		dirs:     make(map[string]string),
		pending:  make(map[string]Event),
	}, nil
}

// Start watches every directory below each root and begins delivering
// events. It may be called again to add roots.
func (w *Watcher) Start(roots []string) error {
	w.start.Do(func() {
		w.wg.Add(1)
		go w.run()
	})

	var errs []string
	for _, root := range roots {
		root = filepath.Clean(root)
		if err := w.addTree(root, root, false); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("watching roots: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Remove stops watching every directory that belongs to root.
func (w *Watcher) Remove(root string) {
	root = filepath.Clean(root)
	w.mu.Lock()
	defer w.mu.Unlock()
	for dir, owner := range w.dirs {
		if owner == root {
			_ = w.fs.Remove(dir)
			delete(w.dirs, dir)
		}
	}
}

// Close stops the watcher. Pending events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.observe(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Warningf("file watcher: %s", err)
		}
	}
}

func (w *Watcher) observe(ev fsnotify.Event) {
	path := filepath.Clean(ev.Name)

	switch {
	case ev.Has(fsnotify.Create):
		root, ok := w.rootOf(filepath.Dir(path))
		if !ok {
			return
		}
		if isDir(path) {
			if w.opts.Skip(filepath.Base(path)) {
				return
			}
			if err := w.addTree(root, path, true); err != nil {
				log.Debugf("%s", err)
			}
			return
		}
		if w.opts.Match(root, path) {
			w.queue(Event{Path: path, Kind: Created})
		}

	case ev.Has(fsnotify.Write):
		if root, ok := w.rootOf(filepath.Dir(path)); ok && w.opts.Match(root, path) {
			w.queue(Event{Path: path, Kind: Changed})
		}

	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		if w.forgetDir(path) {
			w.queue(Event{Path: path, Kind: Deleted, Dir: true})
			return
		}
		if root, ok := w.rootOf(filepath.Dir(path)); ok && w.opts.Match(root, path) {
			w.queue(Event{Path: path, Kind: Deleted})
		}
	}
}

// addTree watches dir and every directory below it that is not skipped.
// With report set, stylesheets already present are queued as created; this
// covers files written before the new directory's watch was in place.
func (w *Watcher) addTree(root, dir string, report bool) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			log.Debugf("not watching %s: %s", path, err)
			return nil
		}

		if d.IsDir() {
			if path != root && w.opts.Skip(d.Name()) {
				return filepath.SkipDir
			}
			if err := w.fs.Add(path); err != nil {
				if path == dir {
					return fmt.Errorf("watching %s: %w", dir, err)
				}
				log.Debugf("not watching %s: %s", path, err)
				return filepath.SkipDir
			}
			w.mu.Lock()
			w.dirs[path] = root
			w.mu.Unlock()
			return nil
		}

		if report && d.Type().IsRegular() && w.opts.Match(root, path) {
			w.queue(Event{Path: path, Kind: Created})
		}
		return nil
	})
}

func (w *Watcher) rootOf(dir string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	root, ok := w.dirs[dir]
	return root, ok
}

// forgetDir drops path and its subdirectories from the watched set and
// reports whether path was a watched directory.
func (w *Watcher) forgetDir(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.dirs[path]; !ok {
		return false
	}
	prefix := path + string(filepath.Separator)
	for dir := range w.dirs {
		if dir == path || strings.HasPrefix(dir, prefix) {
			delete(w.dirs, dir)
		}
	}
	return true
}

func (w *Watcher) queue(ev Event) {
	w.mu.Lock()
	if prev, ok := w.pending[ev.Path]; ok && prev.Kind == Created && ev.Kind == Changed {
		ev.Kind = Created
	}
	w.pending[ev.Path] = ev
	w.mu.Unlock()

	w.debounce(w.flush)
}

func (w *Watcher) flush() {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()

	w.mu.Lock()
	if w.closed || len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	events := make([]Event, 0, len(w.pending))
	for _, ev := range w.pending {
		events = append(events, ev)
	}
	clear(w.pending)
	w.mu.Unlock()

	slices.SortFunc(events, func(a, b Event) int { return strings.Compare(a.Path, b.Path) })
	log.Debugf("%d file change(s)", len(events))
	w.handle(events)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
