// rawspan.go implements passthrough for tags whose attributes span lines.
//
// Lines from the unterminated opening tag up to and including the line that
// holds its closing '>' are emitted byte-for-byte, and depth is frozen for the
// whole span. Content nested inside such a tag is therefore not indented
// relative to it.
package reindent

import "strings"

func (t *Tracker) beginRawSpan() {
	t.state.InRawSpan = true
	t.state.RawSpanDepthSnapshot = t.state.CurrentDepth
}

func (t *Tracker) continueRawSpan(line SourceLine) {
	if closesRawSpan(line.Raw) {
		t.state.InRawSpan = false
		t.state.CurrentDepth = t.state.RawSpanDepthSnapshot
	}
}

// closesRawSpan reports whether raw holds an unescaped '>'.
func closesRawSpan(raw string) bool {
	for pos := strings.IndexByte(raw, '>'); pos >= 0; {
		if !isEscaped(raw, pos) {
			return true
		}
		next := strings.IndexByte(raw[pos+1:], '>')
		if next < 0 {
			return false
		}
		pos += next + 1
	}
	return false
}
