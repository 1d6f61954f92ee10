package reindent

import "strings"

// CollapseEmptyLines joins lines, writing eols[i] between lines[i] and the
// next line kept, and replaces every run of two or more empty lines with a
// single empty line. Lines containing anything, including whitespace, are
// left alone.
func CollapseEmptyLines(lines, eols []string) string {
	var b strings.Builder
	pending := ""
	for i, line := range lines {
		if line == "" && i > 0 && lines[i-1] == "" {
			continue
		}
		b.WriteString(pending)
		b.WriteString(line)
		pending = eols[i]
	}
	return b.String()
}
