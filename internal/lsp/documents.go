package lsp

import (
	"os"
	"sync"
	"unicode/utf8"

	"github.com/jsvensson/css-class-lsp/internal/fileuri"
)

// DocumentStore holds open document contents keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]string)}
}

func (s *DocumentStore) Open(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = content
}

func (s *DocumentStore) Update(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = content
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.docs[uri]
	return content, ok
}

// Text returns the content of uri. Documents the client never opened (or
// whose didOpen was missed) are read from disk and cached until closed.
func (s *DocumentStore) Text(uri string) (string, bool) {
	if content, ok := s.Get(uri); ok {
		return content, true
	}

	path, ok := fileuri.ToPath(uri)
	if !ok {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("reading %s: %s", uri, err)
		return "", false
	}
	if !utf8.Valid(data) {
		log.Debugf("reading %s: not valid UTF-8", uri)
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// An editor update may have arrived while the file was read.
	if content, ok := s.docs[uri]; ok {
		return content, true
	}
	content := string(data)
	s.docs[uri] = content
	return content, true
}
