// classify.go implements the line classifier that dispatches between
// directives and the tag/bracket line scanner.
package reindent

import (
	"strings"
)

// directiveRole is the structural role of a directive keyword.
type directiveRole int

const (
	roleOpen directiveRole = iota
	roleMid
)

// directiveTable maps directive keywords to their role. Closers are spelled
// "end " followed by one of the roleOpen keywords.
var directiveTable = map[string]directiveRole{
	"if":   roleOpen,
	"for":  roleOpen,
	"def":  roleOpen,
	"else": roleMid,
	"elif": roleMid,
}

// ClassifyLine classifies the stripped content of one line.
func ClassifyLine(content string) Classification {
	if content == "" {
		return Classification{}
	}
	if strings.HasPrefix(content, "##") {
		// Cheetah comment
		return Classification{Constructs: []Construct{{Type: ConstructPlain}}}
	}
	if content[0] == '#' {
		if c, ok := classifyDirective(content); ok {
			return c
		}
	}
	return TokenizeLine(content)
}

// classifyDirective matches a '#'-prefixed line against the directive table.
// Unknown keywords report ok=false so the line is scanned as plain text.
func classifyDirective(content string) (Classification, bool) {
	keyword, rest := readWord(content[1:])
	switch keyword {
	case "end":
		family, _ := readWord(strings.TrimLeft(rest, " \t"))
		if role, ok := directiveTable[family]; !ok || role != roleOpen || !startsWithSpace(rest) {
			return Classification{}, false
		}
		return Classification{
			Constructs:     []Construct{{Type: ConstructDirectiveClose, Name: "end " + family}},
			LeadingClosers: 1,
		}, true
	case "else":
		name := keyword
		if next, _ := readWord(strings.TrimLeft(rest, " \t")); next == "if" && startsWithSpace(rest) {
			name = "else if"
		}
		return midDirective(name), true
	}

	role, ok := directiveTable[keyword]
	if !ok {
		return Classification{}, false
	}
	if role == roleMid {
		return midDirective(keyword), true
	}
	return Classification{
		Constructs:      []Construct{{Type: ConstructDirectiveOpen, Name: keyword}},
		TrailingOpeners: 1,
	}, true
}

// midDirective aligns the marker with its owning #if while the body on both
// sides stays one level deeper.
func midDirective(name string) Classification {
	return Classification{
		Constructs:      []Construct{{Type: ConstructDirectiveMid, Name: name}},
		LeadingClosers:  1,
		TrailingOpeners: 1,
	}
}

// readWord splits s into its leading run of ASCII letters and the remainder.
func readWord(s string) (string, string) {
	i := 0
	for i < len(s) && isASCIILetter(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func startsWithSpace(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
