package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// triggerCharacters are the characters after which clients should ask for
// completions: the attribute quote, the separator between class names, and
// anything that can continue a class name.
func triggerCharacters() []string {
	chars := []string{" ", `"`, "'", "-"}
	for c := 'a'; c <= 'z'; c++ {
		chars = append(chars, string(c))
	}
	for c := '0'; c <= '9'; c++ {
		chars = append(chars, string(c))
	}
	return chars
}

// completionItems converts class names into completion items. It never
// returns nil so that an empty result is sent as [] rather than null.
func completionItems(names []string) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindValue
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		})
	}
	return items
}

func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	names, ok := s.completer().Complete(uri, params.Position.Line, params.Position.Character)
	if !ok {
		return nil, nil
	}
	return completionItems(names), nil
}
