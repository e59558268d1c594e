package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOffset(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		line   uint32
		col    uint32
		want   int
		wantOK bool
	}{
		{name: "start of document", text: "abc", line: 0, col: 0, want: 0, wantOK: true},
		{name: "middle of first line", text: "abc", line: 0, col: 2, want: 2, wantOK: true},
		{name: "end of line", text: "abc", line: 0, col: 3, want: 3, wantOK: true},
		{name: "past end of line", text: "abc", line: 0, col: 4, wantOK: false},
		{name: "second line", text: "ab\ncd", line: 1, col: 1, want: 4, wantOK: true},
		{name: "end of first line before newline", text: "ab\ncd", line: 0, col: 2, want: 2, wantOK: true},
		{name: "line past end", text: "ab\ncd", line: 2, col: 0, wantOK: false},
		{name: "empty trailing line", text: "ab\n", line: 1, col: 0, want: 3, wantOK: true},
		{name: "empty document", text: "", line: 0, col: 0, want: 0, wantOK: true},
		// "é" is two bytes in UTF-8 but one UTF-16 code unit.
		{name: "two byte rune", text: "é<", line: 0, col: 1, want: 2, wantOK: true},
		// "😀" is four bytes in UTF-8 and a surrogate pair in UTF-16.
		{name: "after surrogate pair", text: "😀x", line: 0, col: 2, want: 4, wantOK: true},
		{name: "inside surrogate pair", text: "😀x", line: 0, col: 1, wantOK: false},
		{name: "end after surrogate pair", text: "a😀", line: 0, col: 3, want: 5, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToOffset(tt.text, tt.line, tt.col)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToOffset_RoundTrip(t *testing.T) {
	text := "<div class=\"é 😀 btn\">\n\tplain line\n<span className='x'>😀😀</span>\n"
	lines := []string{
		"<div class=\"é 😀 btn\">",
		"\tplain line",
		"<span className='x'>😀😀</span>",
		"",
	}

	for line, lineText := range lines {
		width := uint32(0)
		for _, r := range lineText {
			width += uint32(runeWidth(r))
		}

		for col := uint32(0); col <= width; col++ {
			offset, ok := ToOffset(text, uint32(line), col)
			if !ok {
				// only columns inside surrogate pairs may fail
				continue
			}
			gotLine, gotCol, ok := ToPosition(text, offset)
			require.True(t, ok, "ToPosition(%d)", offset)
			assert.Equal(t, uint32(line), gotLine)
			assert.Equal(t, col, gotCol)
		}

		_, ok := ToOffset(text, uint32(line), width+1)
		assert.False(t, ok, "column past line %d width must not resolve", line)
	}
}

func TestToPosition_InsideRune(t *testing.T) {
	_, _, ok := ToPosition("é", 1)
	assert.False(t, ok)

	_, _, ok = ToPosition("abc", 4)
	assert.False(t, ok)
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc\nd", NormalizeNewlines("a\r\nb\rc\nd"))
	assert.Equal(t, "unchanged\n", NormalizeNewlines("unchanged\n"))
}
