package engine

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsvensson/css-class-lsp/internal/index"
	"github.com/jsvensson/css-class-lsp/internal/stylesheet"
	"github.com/jsvensson/css-class-lsp/internal/vocab"
)

type docs map[string]string

func (d docs) Text(uri string) (string, bool) {
	text, ok := d[uri]
	return text, ok
}

const page = "file:///ws/index.html"

// endOf returns the position just before the first occurrence of marker
// in text, assuming text is a single line of ASCII.
func endOf(t *testing.T, text, marker string) uint32 {
	t.Helper()
	i := strings.Index(text, marker)
	require.GreaterOrEqual(t, i, 0)
	return uint32(i)
}

func TestComplete_EmptyPrefixReturnsEverythingSorted(t *testing.T) {
	text := `<div class="btn ">`
	e := New(docs{page: text}, index.New())

	names, ok := e.Complete(page, 0, endOf(t, text, `">`))
	require.True(t, ok)

	assert.True(t, slices.IsSorted(names))
	assert.Equal(t, vocab.Bootstrap(), names)

	primary := slices.Index(names, "btn-primary")
	longer := slices.Index(names, "btn-primary-emphasis")
	require.GreaterOrEqual(t, primary, 0)
	if longer >= 0 {
		assert.Less(t, primary, longer)
	}
}

func TestComplete_FiltersByPrefix(t *testing.T) {
	text := `<div class="btn-p">`
	e := New(docs{page: text}, index.New())

	names, ok := e.Complete(page, 0, endOf(t, text, `">`))
	require.True(t, ok)

	assert.Contains(t, names, "btn-primary")
	assert.NotContains(t, names, "btn-secondary")
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, "btn-p"), name)
	}
}

func TestComplete_MergesIndex(t *testing.T) {
	text := `<div className='card hero-'>`
	idx := index.New()
	idx.Upsert("file:///ws/a.css", stylesheet.NewClassSet("hero-title", "hero-banner", "footer"))
	idx.Upsert("file:///ws/b.scss", stylesheet.NewClassSet("hero-banner", "zeta"))
	e := New(docs{page: text}, idx)

	names, ok := e.Complete(page, 0, endOf(t, text, `'>`))
	require.True(t, ok)
	assert.Equal(t, []string{"hero-banner", "hero-title"}, names)
}

func TestComplete_DeletedStylesheetDropsClasses(t *testing.T) {
	text := `<p class="x-">`
	idx := index.New()
	idx.Upsert("file:///ws/a.css", stylesheet.NewClassSet("x-one"))
	idx.Upsert("file:///ws/b.css", stylesheet.NewClassSet("x-two"))
	e := New(docs{page: text}, idx)
	col := endOf(t, text, `">`)

	names, ok := e.Complete(page, 0, col)
	require.True(t, ok)
	assert.Equal(t, []string{"x-one", "x-two"}, names)

	idx.Remove("file:///ws/a.css")

	names, ok = e.Complete(page, 0, col)
	require.True(t, ok)
	assert.Equal(t, []string{"x-two"}, names)
}

func TestComplete_NotApplicable(t *testing.T) {
	tests := []struct {
		name string
		text string
		line uint32
		col  uint32
	}{
		{name: "outside attribute", text: `<div class="btn">x`, line: 0, col: 18},
		{name: "different attribute", text: `<div id="btn">`, line: 0, col: 12},
		{name: "line out of range", text: `<div class="">`, line: 3, col: 0},
		{name: "column out of range", text: `<div class="">`, line: 0, col: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(docs{page: tt.text}, index.New())
			names, ok := e.Complete(page, tt.line, tt.col)
			assert.False(t, ok)
			assert.Nil(t, names)
		})
	}
}

func TestComplete_UnknownDocument(t *testing.T) {
	e := New(docs{}, index.New())
	_, ok := e.Complete("file:///ws/missing.html", 0, 0)
	assert.False(t, ok)
}

func TestComplete_NoMatchesIsEmptyNotAbsent(t *testing.T) {
	text := `<div class="qqq">`
	e := New(docs{page: text}, index.New())

	names, ok := e.Complete(page, 0, endOf(t, text, `">`))
	require.True(t, ok)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestComplete_CRLFAndUTF16(t *testing.T) {
	// The emoji occupies two UTF-16 code units; line 1 is addressed after
	// CRLF normalization.
	text := "<html>\r\n<b class=\"😀 d-n\">"
	e := New(docs{page: text}, index.New())

	// `<b class="` is 10 units, emoji 2, space 1, "d-n" 3
	names, ok := e.Complete(page, 1, 16)
	require.True(t, ok)
	assert.Contains(t, names, "d-none")
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, "d-n"), name)
	}
}

func TestComplete_CaseSensitive(t *testing.T) {
	text := `<div class="BTN">`
	e := New(docs{page: text}, index.New())

	names, ok := e.Complete(page, 0, endOf(t, text, `">`))
	require.True(t, ok)
	assert.Empty(t, names)
}

func TestComplete_WithoutVocabulary(t *testing.T) {
	text := `<div class="">`
	idx := index.New()
	idx.Upsert("file:///ws/a.css", stylesheet.NewClassSet("only"))
	e := New(docs{page: text}, idx, WithoutVocabulary())

	names, ok := e.Complete(page, 0, endOf(t, text, `">`))
	require.True(t, ok)
	assert.Equal(t, []string{"only"}, names)
}

func TestCandidates_CustomVocabulary(t *testing.T) {
	e := New(docs{}, index.New(), WithVocabulary([]string{"alpha", "beta", "betamax"}))
	assert.Equal(t, []string{"beta", "betamax"}, e.Candidates("beta"))
	assert.Equal(t, []string{"alpha", "beta", "betamax"}, e.Candidates(""))
}
