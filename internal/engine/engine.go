package engine

import (
	"strings"

	"github.com/tidwall/btree"
	"github.com/tliron/commonlog"

	"github.com/jsvensson/css-class-lsp/internal/cursor"
	"github.com/jsvensson/css-class-lsp/internal/index"
	"github.com/jsvensson/css-class-lsp/internal/vocab"
)

var log = commonlog.GetLogger("css-class-lsp.engine")

// TextSource resolves the current text of a document.
type TextSource interface {
	Text(uri string) (string, bool)
}

// Engine produces class-name completions from the static vocabulary and
// the workspace class index.
type Engine struct {
	docs  TextSource
	index *index.Index
	vocab []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithoutVocabulary disables the built-in Bootstrap class names.
func WithoutVocabulary() Option {
	return func(e *Engine) { e.vocab = nil }
}

// WithVocabulary replaces the built-in class names. names must be sorted.
func WithVocabulary(names []string) Option {
	return func(e *Engine) { e.vocab = names }
}

func New(docs TextSource, idx *index.Index, opts ...Option) *Engine {
	e := &Engine{
		docs:  docs,
		index: idx,
		vocab: vocab.Bootstrap(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Complete returns the class names to offer at a position in a document.
// ok is false when no completion applies there: the document cannot be
// found, the position does not resolve, or the cursor is not inside a class
// attribute. When ok is true the names share the typed prefix and are in
// ascending byte order; the slice may be empty.
func (e *Engine) Complete(uri string, line, utf16Col uint32) (names []string, ok bool) {
	text, found := e.docs.Text(uri)
	if !found {
		log.Debugf("document not found: %s", uri)
		return nil, false
	}
	text = cursor.NormalizeNewlines(text)

	offset, found := cursor.ToOffset(text, line, utf16Col)
	if !found {
		log.Debugf("position %d:%d does not resolve in %s", line, utf16Col, uri)
		return nil, false
	}

	if !cursor.InClassAttribute(text, offset) {
		log.Debugf("not in class attribute: %s %d:%d", uri, line, utf16Col)
		return nil, false
	}

	prefix := cursor.WordPrefix(text, offset)
	names = e.Candidates(prefix)
	log.Debugf("prefix %q: %d candidate(s)", prefix, len(names))
	return names, true
}

// Candidates returns every known class name starting with prefix, in
// ascending order. The candidate set is rebuilt on each call so that index
// updates are always visible.
func (e *Engine) Candidates(prefix string) []string {
	all := btree.NewBTreeG[string](func(a, b string) bool { return a < b })
	for _, name := range e.vocab {
		all.Set(name)
	}
	for name := range e.index.Snapshot() {
		all.Set(name)
	}

	names := []string{}
	all.Ascend(prefix, func(name string) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		names = append(names, name)
		return true
	})
	return names
}
