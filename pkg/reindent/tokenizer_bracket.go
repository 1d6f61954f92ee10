// tokenizer_bracket.go holds the string-literal rules used while counting
// { [ ( and } ] ).
package reindent

// opensString reports whether the quote at pos starts a string literal.
//
// Characters inside string literals are ignored, so template placeholders such
// as '${user.name}' never count. A string is opened by ', " or ` and closed by
// the same unescaped quote. The in-string flag starts cleared on every line;
// strings are assumed not to span lines.
//
// An apostrophe directly after a letter or digit is part of a word, as in
// "Don't", and opens nothing.
func opensString(content string, pos int) bool {
	if content[pos] != '\'' || pos == 0 {
		return true
	}
	return !isWordByte(content[pos-1])
}

// isEscaped reports whether the byte at pos is preceded by an odd number of
// backslashes.
func isEscaped(s string, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func isWordByte(b byte) bool {
	return isASCIILetter(b) || (b >= '0' && b <= '9') || b == '_'
}
