// tokenizer_line.go implements the single left-to-right scan that finds tags
// and brackets on a non-directive line.
package reindent

// lineScanner accumulates the constructs of one line against a single tally
// shared by tags and brackets.
type lineScanner struct {
	content string
	c       Classification
	tally   int
}

func (s *lineScanner) open(t ConstructType, name string, pos int) {
	s.c.Constructs = append(s.c.Constructs, Construct{Type: t, Name: name, Position: pos})
	s.tally++
}

func (s *lineScanner) close(t ConstructType, name string, pos int) {
	s.c.Constructs = append(s.c.Constructs, Construct{Type: t, Name: name, Position: pos})
	s.tally--
	if s.tally < 0 {
		s.c.LeadingClosers++
		s.tally = 0
	}
}

func (s *lineScanner) neutral(t ConstructType, name string, pos int) {
	s.c.Constructs = append(s.c.Constructs, Construct{Type: t, Name: name, Position: pos})
}

// TokenizeLine scans one line for tags and brackets in order.
//
// Tags and brackets move the same tally: a closer with no opener of either
// kind to its left is a leading closer, and openers still unmatched at line
// end are trailing openers. So "text</p>" closes a <p> opened on an earlier
// line, and "<script>var x = {" opens two levels.
//
// Outside tags, string literals are skipped (see opensString). Inside a tag,
// everything up to its '>' is skipped, quoted attribute values included.
// When an opening tag's '>' is missing the result is marked Unterminated and
// scanning stops.
func TokenizeLine(content string) Classification {
	s := &lineScanner{content: content}
	var quote byte

	for pos := 0; pos < len(content); pos++ {
		ch := content[pos]

		if quote != 0 {
			if ch == quote && !isEscaped(content, pos) {
				quote = 0
			}
			continue
		}

		switch ch {
		case '<':
			last, unterminated := s.tag(pos)
			if unterminated {
				s.c.Unterminated = true
				s.c.TrailingOpeners = s.tally
				return s.c
			}
			pos = last
		case '\'', '"', '`':
			if opensString(content, pos) {
				quote = ch
			}
		case '{', '[', '(':
			s.open(ConstructBracketOpen, string(ch), pos)
		case '}', ']', ')':
			s.close(ConstructBracketClose, string(ch), pos)
		}
	}

	if len(s.c.Constructs) == 0 {
		s.c.Constructs = []Construct{{Type: ConstructPlain}}
	}
	s.c.TrailingOpeners = s.tally
	return s.c
}
