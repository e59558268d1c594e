package cursor

import (
	"strings"
	"unicode/utf16"
)

// NormalizeNewlines rewrites "\r\n" and bare "\r" line terminators to "\n".
// Position math in this package assumes normalized input.
func NormalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// ToOffset converts an editor position (0-based line, column counted in
// UTF-16 code units) into a byte offset into text. It reports false when
// the line does not exist, when the column lies past the end of the line,
// or when the column falls inside a surrogate pair.
func ToOffset(text string, line, utf16Col uint32) (int, bool) {
	offset := 0
	current := uint32(0)

	for {
		end := strings.IndexByte(text[offset:], '\n')
		lineText := text[offset:]
		if end >= 0 {
			lineText = text[offset : offset+end]
		}

		if current == line {
			return columnOffset(lineText, offset, utf16Col)
		}
		if end < 0 {
			return 0, false
		}

		offset += end + 1
		current++
	}
}

// columnOffset walks a single line and returns the byte offset of the rune
// that starts at utf16Col, or the end of the line when utf16Col equals the
// line's full UTF-16 width.
func columnOffset(line string, lineStart int, utf16Col uint32) (int, bool) {
	width := uint32(0)
	for i, r := range line {
		if width == utf16Col {
			return lineStart + i, true
		}
		width += uint32(runeWidth(r))
		if width > utf16Col {
			return 0, false
		}
	}
	if width == utf16Col {
		return lineStart + len(line), true
	}
	return 0, false
}

// ToPosition is the inverse of ToOffset. The offset must lie on a rune
// boundary within text (text length itself is allowed).
func ToPosition(text string, offset int) (line, utf16Col uint32, ok bool) {
	if offset < 0 || offset > len(text) {
		return 0, 0, false
	}

	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	for i, r := range text[lineStart:] {
		switch pos := lineStart + i; {
		case pos == offset:
			return line, utf16Col, true
		case pos > offset:
			// offset points into the middle of a multi-byte rune
			return 0, 0, false
		}
		utf16Col += uint32(runeWidth(r))
	}
	if offset != len(text) {
		return 0, 0, false
	}
	return line, utf16Col, true
}

func runeWidth(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	// Invalid runes are decoded as U+FFFD, a single code unit.
	return 1
}
