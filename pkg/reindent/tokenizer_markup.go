// tokenizer_markup.go implements tag recognition for the line scanner.
package reindent

import (
	"strings"
)

// voidElements never hold content and never take a closing tag.
var voidElements = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// IsVoidElement reports whether name is an HTML void element. Matching is
// case-insensitive.
func IsVoidElement(name string) bool {
	return voidElements[strings.ToLower(name)]
}

// tag recognizes the markup starting at the '<' at pos and returns the index
// of its last byte. Recognized forms:
//   - <name ...>  - opener, unless name is a void element
//   - </name>     - closer; neutral for void elements
//   - <name .../> - self-closing
//   - <!-- ... --> and <!DOCTYPE ...> - neutral
//
// Anything else, such as the comparison in "a < b", is a plain '<' and only
// that byte is consumed. unterminated is set when an opener's '>' is missing.
func (s *lineScanner) tag(pos int) (last int, unterminated bool) {
	content := s.content
	if pos+1 >= len(content) {
		return pos, false
	}

	next := content[pos+1]
	switch {
	case strings.HasPrefix(content[pos:], "<!--"):
		s.neutral(ConstructPlain, "comment", pos)
		end := strings.Index(content[pos+4:], "-->")
		if end < 0 {
			// comment runs past the line; nothing after it counts
			return len(content) - 1, false
		}
		return pos + 4 + end + 2, false

	case next == '!':
		s.neutral(ConstructPlain, "declaration", pos)
		end := strings.IndexByte(content[pos:], '>')
		if end < 0 {
			return len(content) - 1, false
		}
		return pos + end, false

	case next == '/':
		name, nameEnd := readTagName(content, pos+2)
		if name == "" {
			return pos, false
		}
		end := findTagEnd(content, nameEnd)
		if end < 0 {
			end = len(content) - 1
		}
		if IsVoidElement(name) {
			s.neutral(ConstructHTMLVoid, name, pos)
		} else {
			s.close(ConstructHTMLClose, name, pos)
		}
		return end, false

	case isASCIILetter(next):
		name, nameEnd := readTagName(content, pos+1)
		if nameEnd < len(content) && !endsTagName(content[nameEnd]) {
			// "<b)" or "<n;" in code
			return pos, false
		}
		end := findTagEnd(content, nameEnd)
		if end < 0 {
			if pos > 0 && isWordByte(content[pos-1]) {
				// "a<b && c" in code
				return pos, false
			}
			s.neutral(ConstructHTMLOpen, name, pos)
			return len(content) - 1, true
		}
		if content[end-1] == '/' || IsVoidElement(name) {
			s.neutral(ConstructHTMLVoid, name, pos)
		} else {
			s.open(ConstructHTMLOpen, name, pos)
		}
		return end, false
	}

	// a bare '<'
	return pos, false
}

// endsTagName reports whether b may follow a tag name inside a tag.
func endsTagName(b byte) bool {
	return b == ' ' || b == '\t' || b == '>' || b == '/'
}

// readTagName reads a tag name starting at pos and returns it with the
// position just past it.
func readTagName(content string, pos int) (string, int) {
	start := pos
	for pos < len(content) && isTagNameChar(content[pos]) {
		pos++
	}
	if pos == start || !isASCIILetter(content[start]) {
		return "", start
	}
	return content[start:pos], pos
}

// findTagEnd returns the index of the '>' that terminates a tag, skipping
// quoted attribute values, or -1 when the tag does not end on this line.
func findTagEnd(content string, pos int) int {
	var quote byte
	for ; pos < len(content); pos++ {
		ch := content[pos]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '>':
			return pos
		}
	}
	return -1
}

func isTagNameChar(b byte) bool {
	return isASCIILetter(b) || (b >= '0' && b <= '9') || b == '-' || b == '_' || b == ':' || b == '.'
}
