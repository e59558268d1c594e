package lsp

import (
	"path/filepath"
	"slices"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/css-class-lsp/internal/config"
	"github.com/jsvensson/css-class-lsp/internal/fileuri"
	"github.com/jsvensson/css-class-lsp/internal/stylesheet"
	"github.com/jsvensson/css-class-lsp/internal/watch"
)

const (
	registerCapability    = "client/registerCapability"
	didChangeWatchedFiles = "workspace/didChangeWatchedFiles"
	watcherRegistrationID = "css-file-watcher"
)

// File change types sent in workspace/didChangeWatchedFiles.
const (
	fileCreated = 1
	fileChanged = 2
	fileDeleted = 3
)

// scanInBackground crawls roots and merges each root's classes into the
// index as soon as that root is done.
func (s *Server) scanInBackground(roots []string) {
	if len(roots) == 0 {
		return
	}
	_, scanner := s.settings()

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		scanner.ScanRoots(roots, func(_ string, files map[string]stylesheet.ClassSet) {
			s.index.Merge(files)
		})
	}()
}

// rescan re-reads one stylesheet from disk into the index.
func (s *Server) rescan(path string) {
	_, scanner := s.settings()
	uri, classes, err := scanner.ScanFile(path)
	if err != nil {
		log.Debugf("rescan: %s", err)
		return
	}
	s.index.Upsert(uri, classes)
}

// tracks reports whether the workspace crawl would index path. Client
// watchers report every matching file, including those in skipped
// directories.
func (s *Server) tracks(path string) bool {
	s.mu.RLock()
	roots, scanner := slices.Clone(s.roots), s.scanner
	s.mu.RUnlock()

	if len(roots) == 0 {
		return scanner.Matches("", path)
	}
	for _, root := range roots {
		if scanner.Admits(root, path) {
			return true
		}
	}
	return false
}

func (s *Server) workspaceDidChangeWatchedFiles(_ *glsp.Context, params *protocol.DidChangeWatchedFilesParams) error {
	for _, change := range params.Changes {
		uri := string(change.URI)
		if !s.isStylesheet(uri) {
			continue
		}
		switch change.Type {
		case fileCreated, fileChanged:
			if path, ok := fileuri.ToPath(uri); ok && s.tracks(path) {
				s.rescan(path)
			}
		case fileDeleted:
			s.index.Remove(uri)
		}
	}
	return nil
}

func (s *Server) workspaceDidChangeWorkspaceFolders(_ *glsp.Context, params *protocol.DidChangeWorkspaceFoldersParams) error {
	var added, removed []string
	for _, folder := range params.Event.Removed {
		if path, ok := fileuri.ToPath(string(folder.URI)); ok {
			removed = append(removed, path)
			n := s.index.RemoveUnder(string(folder.URI))
			log.Infof("removed workspace folder %s: %d stylesheet(s) dropped", path, n)
		}
	}
	for _, folder := range params.Event.Added {
		if path, ok := fileuri.ToPath(string(folder.URI)); ok {
			added = append(added, path)
		}
	}

	s.mu.Lock()
	s.roots = slices.DeleteFunc(s.roots, func(root string) bool {
		return slices.Contains(removed, root)
	})
	s.roots = append(s.roots, added...)
	w := s.watcher
	s.mu.Unlock()

	if w != nil {
		s.watchInBackground(func() {
			for _, root := range removed {
				w.Remove(root)
			}
			if err := w.Start(added); err != nil {
				log.Warningf("%s", err)
			}
		})
	}
	s.scanInBackground(added)
	return nil
}

// registerWatcher asks the client to report stylesheet changes. The call
// runs in the background because the client answers on the same connection
// the current notification arrived on.
func (s *Server) registerWatcher(ctx *glsp.Context, cfg config.Config) {
	params := protocol.RegistrationParams{
		Registrations: []protocol.Registration{{
			ID:     watcherRegistrationID,
			Method: didChangeWatchedFiles,
			RegisterOptions: protocol.DidChangeWatchedFilesRegistrationOptions{
				Watchers: []protocol.FileSystemWatcher{{GlobPattern: cfg.WatchPattern()}},
			},
		}},
	}

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		ctx.Call(registerCapability, params, nil)
		log.Infof("registered client file watcher for %s", cfg.WatchPattern())
	}()
}

// startNativeWatcher watches the workspace roots with fsnotify. The
// directory walk runs in the background.
func (s *Server) startNativeWatcher() {
	s.mu.RLock()
	roots := slices.Clone(s.roots)
	scanner := s.scanner
	s.mu.RUnlock()

	w, err := watch.New(watch.Options{
		Skip:  scanner.Skips,
		Match: scanner.Matches,
	}, s.applyWatchEvents)
	if err != nil {
		log.Warningf("%s", err)
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = w.Close()
		return
	}
	s.watcher = w
	s.mu.Unlock()

	s.watchInBackground(func() {
		if err := w.Start(roots); err != nil {
			log.Warningf("%s", err)
		}
		log.Infof("watching %d root(s) natively", len(roots))
	})
}

// watchInBackground runs op off the message loop. Operations run one at a
// time.
func (s *Server) watchInBackground(op func()) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		s.watchMu.Lock()
		defer s.watchMu.Unlock()
		op()
	}()
}

// applyWatchEvents mirrors workspaceDidChangeWatchedFiles for events from
// the native watcher.
func (s *Server) applyWatchEvents(events []watch.Event) {
	for _, ev := range events {
		uri := fileuri.FromPath(filepath.Clean(ev.Path))
		switch {
		case ev.Kind == watch.Deleted && ev.Dir:
			s.index.RemoveUnder(uri)
		case ev.Kind == watch.Deleted:
			s.index.Remove(uri)
		default:
			s.rescan(ev.Path)
		}
	}
}
