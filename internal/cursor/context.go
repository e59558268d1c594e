package cursor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// classOpener matches the start of a class attribute value: class="…",
// class='…' (HTML, templates) and className="…" (JSX/TSX).
var classOpener = regexp.MustCompile(`\bclass(?:Name)?\s*=\s*["']`)

// InClassAttribute reports whether offset sits inside an unterminated class
// attribute value. Only the text before offset is considered: the nearest
// opener wins, and the cursor is inside unless the same quote character
// appears again between that opener and the cursor.
//
// A backslash-escaped quote inside the value is treated as a closing quote.
// The opener must not follow a letter or digit, in any script.
func InClassAttribute(text string, offset int) bool {
	before, ok := textBefore(text, offset)
	if !ok {
		return false
	}

	end := -1
	for _, m := range classOpener.FindAllStringIndex(before, -1) {
		if !followsWordRune(before[:m[0]]) {
			end = m[1]
		}
	}
	if end < 0 {
		return false
	}

	quote := before[end-1]
	return strings.IndexByte(before[end:], quote) < 0
}

// followsWordRune reports whether s ends in a non-ASCII letter, digit or
// mark. The regexp \b only knows ASCII word characters.
func followsWordRune(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r >= utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r))
}

// WordPrefix returns the partial token being typed at offset: everything
// after the right-most whitespace or quote character before offset. If no
// such boundary exists the whole text before offset is returned.
func WordPrefix(text string, offset int) string {
	before, ok := textBefore(text, offset)
	if !ok {
		return ""
	}

	i := strings.LastIndexFunc(before, isWordBoundary)
	if i < 0 {
		return before
	}
	_, size := utf8.DecodeRuneInString(before[i:])
	return before[i+size:]
}

func isWordBoundary(r rune) bool {
	return unicode.IsSpace(r) || r == '"' || r == '\''
}

func textBefore(text string, offset int) (string, bool) {
	if offset < 0 || offset > len(text) {
		return "", false
	}
	return text[:offset], true
}
