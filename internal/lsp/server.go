package lsp

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/css-class-lsp/internal/config"
	"github.com/jsvensson/css-class-lsp/internal/engine"
	"github.com/jsvensson/css-class-lsp/internal/fileuri"
	"github.com/jsvensson/css-class-lsp/internal/index"
	"github.com/jsvensson/css-class-lsp/internal/scan"
	"github.com/jsvensson/css-class-lsp/internal/stylesheet"
	"github.com/jsvensson/css-class-lsp/internal/watch"
)

const serverName = "css-class-lsp"

var log = commonlog.GetLogger("css-class-lsp.lsp")

type Server struct {
	handler    protocol.Handler
	docs       *DocumentStore
	index      *index.Index
	version    string
	configPath string

	mu           sync.RWMutex
	cfg          config.Config
	scanner      *scan.Scanner
	engine       *engine.Engine
	roots        []string
	dynamicWatch bool
	watcher      *watch.Watcher
	closed       bool

	// watchMu orders tree walks and removals on the native watcher.
	watchMu sync.Mutex

	// background tracks workspace scans, watcher walks and client
	// registrations.
	background sync.WaitGroup
}

// Option configures a Server.
type Option func(*Server)

// WithConfigFile loads configuration from path instead of the workspace.
func WithConfigFile(path string) Option {
	return func(s *Server) { s.configPath = path }
}

func NewServer(version string, opts ...Option) *Server {
	s := &Server{
		docs:    NewDocumentStore(),
		index:   index.New(),
		version: version,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.configure(config.Default())

	s.handler = protocol.Handler{
		Initialize:                         s.initialize,
		Initialized:                        s.initialized,
		Shutdown:                           s.shutdown,
		SetTrace:                           s.setTrace,
		TextDocumentDidOpen:                s.textDocumentDidOpen,
		TextDocumentDidChange:              s.textDocumentDidChange,
		TextDocumentDidClose:               s.textDocumentDidClose,
		TextDocumentCompletion:             s.textDocumentCompletion,
		WorkspaceDidChangeWatchedFiles:     s.workspaceDidChangeWatchedFiles,
		WorkspaceDidChangeWorkspaceFolders: s.workspaceDidChangeWorkspaceFolders,
	}

	return s
}

func (s *Server) Run() error {
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

// Wait blocks until background scans and registrations have finished.
func (s *Server) Wait() {
	s.background.Wait()
}

// configure applies cfg to the scanner and completion engine.
func (s *Server) configure(cfg config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.scanner = cfg.Scanner()
	s.engine = engine.New(s.docs, s.index, cfg.EngineOptions()...)
}

func (s *Server) completer() *engine.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

func (s *Server) settings() (config.Config, *scan.Scanner) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.scanner
}

func (s *Server) isStylesheet(uri string) bool {
	cfg, _ := s.settings()
	return stylesheet.IsStylesheet(uri, cfg.Extensions)
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	roots := workspaceRoots(params)
	s.configure(s.loadConfig(roots))

	s.mu.Lock()
	s.roots = roots
	s.dynamicWatch = supportsWatchRegistration(params.Capabilities)
	s.mu.Unlock()

	s.scanInBackground(roots)

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: triggerCharacters(),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

// loadConfig reads the explicit config file, or the workspace file in the
// first root. Errors are logged and defaults used.
func (s *Server) loadConfig(roots []string) config.Config {
	var (
		cfg config.Config
		err error
	)
	switch {
	case s.configPath != "":
		cfg, err = config.Load(s.configPath)
	case len(roots) > 0:
		cfg, err = config.LoadWorkspace(roots[0])
	default:
		return config.Default()
	}
	if err != nil {
		log.Warningf("using default configuration: %s", err)
		return config.Default()
	}
	return cfg
}

func (s *Server) initialized(ctx *glsp.Context, _ *protocol.InitializedParams) error {
	cfg, _ := s.settings()
	s.mu.RLock()
	dynamic := s.dynamicWatch
	s.mu.RUnlock()

	switch cfg.Watch {
	case config.WatchOff:
		log.Info("file watching disabled")
	case config.WatchClient:
		s.registerWatcher(ctx, cfg)
	case config.WatchNative:
		s.startNativeWatcher()
	default:
		if dynamic {
			s.registerWatcher(ctx, cfg)
		} else {
			s.startNativeWatcher()
		}
	}
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)

	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.closed = true
	s.mu.Unlock()

	if w != nil {
		if err := w.Close(); err != nil {
			log.Warningf("closing file watcher: %s", err)
		}
	}
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(_ *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.store(string(params.TextDocument.URI), params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(_ *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	var (
		text  string
		found bool
	)
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			text, found = c.Text, true
		}
	}
	if found {
		s.store(string(params.TextDocument.URI), text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(string(params.TextDocument.URI))
	return nil
}

// store records editor content: stylesheets feed the index, everything else
// the document cache.
func (s *Server) store(uri, text string) {
	if s.isStylesheet(uri) {
		s.index.Upsert(uri, stylesheet.Extract(text))
		return
	}
	s.docs.Update(uri, text)
}

// workspaceRoots returns the filesystem roots from workspaceFolders, falling
// back to rootUri and then rootPath.
func workspaceRoots(params *protocol.InitializeParams) []string {
	var roots []string
	for _, folder := range params.WorkspaceFolders {
		if path, ok := fileuri.ToPath(string(folder.URI)); ok {
			roots = append(roots, path)
		}
	}
	if len(roots) > 0 {
		return roots
	}
	if params.RootURI != nil {
		if path, ok := fileuri.ToPath(string(*params.RootURI)); ok {
			return []string{path}
		}
	}
	if params.RootPath != nil && *params.RootPath != "" {
		return []string{*params.RootPath}
	}
	return nil
}

func supportsWatchRegistration(caps protocol.ClientCapabilities) bool {
	if caps.Workspace == nil || caps.Workspace.DidChangeWatchedFiles == nil {
		return false
	}
	dyn := caps.Workspace.DidChangeWatchedFiles.DynamicRegistration
	return dyn != nil && *dyn
}
