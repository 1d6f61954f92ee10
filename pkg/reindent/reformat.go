// Package reindent re-indents Cheetah templates that mix HTML markup, #if/#for/#def
// directives and embedded script code.
//
// Only leading whitespace changes. Each line is printed at its nesting depth
// times IndentUnit, where depth is driven uniformly by tags, directives and
// brackets. Runs of blank lines collapse to one.
package reindent

import (
	"strings"
)

// Reformat re-indents source and returns the result. It never fails: unbalanced
// closers clamp depth at zero and tags it cannot follow are passed through
// unchanged.
func Reformat(source string) string {
	if source == "" {
		return ""
	}

	lines := SplitLines(source)
	tracker := NewTracker()
	out := make([]string, len(lines))
	eols := make([]string, len(lines))
	for i, line := range lines {
		out[i] = tracker.Next(line)
		eols[i] = line.EOL
	}

	return CollapseEmptyLines(out, eols)
}

// SplitLines splits text on '\n' and strips each line's leading spaces and
// tabs into Content. A '\r' before the '\n' belongs to EOL, so CRLF and LF
// lines keep their own endings. A trailing newline yields a final empty line.
func SplitLines(text string) []SourceLine {
	raw := strings.Split(text, "\n")
	lines := make([]SourceLine, len(raw))
	for i, r := range raw {
		eol := ""
		if i < len(raw)-1 {
			eol = "\n"
			if strings.HasSuffix(r, "\r") {
				r = r[:len(r)-1]
				eol = "\r\n"
			}
		}
		lines[i] = SourceLine{
			Index:   i,
			Raw:     r,
			Content: strings.TrimLeft(r, " \t"),
			EOL:     eol,
		}
	}
	return lines
}
