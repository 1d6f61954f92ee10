// tokens.go defines the construct types a classified line is made of.
package reindent

// ConstructType represents the structural role of a single construct found on a line.
type ConstructType int

const (
	ConstructPlain          ConstructType = iota // text with no structural meaning
	ConstructHTMLOpen                            // <div ...>
	ConstructHTMLClose                           // </div>
	ConstructHTMLVoid                            // <br>, <img ...>, <input ... />
	ConstructDirectiveOpen                       // #if, #for, #def
	ConstructDirectiveMid                        // #else, #elif, #else if
	ConstructDirectiveClose                      // #end if, #end for, #end def
	ConstructBracketOpen                         // { [ (
	ConstructBracketClose                        // } ] )
)

var constructNames = [...]string{
	ConstructPlain:          "plain",
	ConstructHTMLOpen:       "html-open",
	ConstructHTMLClose:      "html-close",
	ConstructHTMLVoid:       "html-void",
	ConstructDirectiveOpen:  "directive-open",
	ConstructDirectiveMid:   "directive-mid",
	ConstructDirectiveClose: "directive-close",
	ConstructBracketOpen:    "bracket-open",
	ConstructBracketClose:   "bracket-close",
}

// String returns the construct type name.
func (t ConstructType) String() string {
	if t < 0 || int(t) >= len(constructNames) {
		return "unknown"
	}
	return constructNames[t]
}

// Construct is a single structural element found on a line.
type Construct struct {
	Type     ConstructType
	Name     string // tag name or directive keyword; the bracket character for brackets
	Position int    // byte offset in the stripped line content
}

// SourceLine is one input line.
type SourceLine struct {
	Index   int
	Raw     string // the line as read, without its line terminator
	Content string // Raw with leading whitespace removed
	EOL     string // "\n", "\r\n", or "" for the last line
}

// Classification is the result of classifying one line.
//
// LeadingClosers is the number of closers that appear before any opener they
// could match, and therefore pull the line itself one level shallower each.
// TrailingOpeners is the number of openers left unmatched at line end, which
// indent the lines that follow.
type Classification struct {
	Constructs      []Construct
	LeadingClosers  int
	TrailingOpeners int

	// Unterminated is set when an opening tag's closing '>' is missing from
	// the line. The caller switches to raw-span passthrough.
	Unterminated bool
}

// IsBalanced reports whether the line leaves depth unchanged and prints at
// the current depth.
func (c Classification) IsBalanced() bool {
	return c.LeadingClosers == 0 && c.TrailingOpeners == 0
}
