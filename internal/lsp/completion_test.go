package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestCompletionItems(t *testing.T) {
	items := completionItems([]string{"btn", "btn-primary"})
	require.Len(t, items, 2)
	for i, label := range []string{"btn", "btn-primary"} {
		assert.Equal(t, label, items[i].Label)
		require.NotNil(t, items[i].Kind)
		assert.Equal(t, protocol.CompletionItemKindValue, *items[i].Kind)
	}

	empty := completionItems(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTriggerCharacters(t *testing.T) {
	chars := triggerCharacters()
	assert.Equal(t, []string{" ", `"`, "'", "-", "a"}, chars[:5])
	assert.Equal(t, "z", chars[29])
	assert.Equal(t, "0", chars[30])
	assert.Equal(t, "9", chars[39])
	assert.Len(t, chars, 40)
}
