package reindent

import (
	"strings"
)

// IndentUnit is the whitespace printed per nesting level.
const IndentUnit = "    "

// IndentState is the running state of one reformat pass.
type IndentState struct {
	CurrentDepth         int
	InRawSpan            bool
	RawSpanDepthSnapshot int
}

// Tracker computes the printed depth of each line and carries nesting depth
// from one line to the next. A Tracker is good for a single document.
type Tracker struct {
	state IndentState
}

// NewTracker returns a tracker starting at depth zero.
func NewTracker() *Tracker {
	return &Tracker{}
}

// State returns a copy of the current state.
func (t *Tracker) State() IndentState {
	return t.state
}

// Depth returns the depth the next line will be measured against.
func (t *Tracker) Depth() int {
	return t.state.CurrentDepth
}

// Next consumes one line and returns it as it should be printed.
func (t *Tracker) Next(line SourceLine) string {
	if t.state.InRawSpan {
		t.continueRawSpan(line)
		return line.Raw
	}

	if strings.TrimSpace(line.Content) == "" {
		return ""
	}

	c := ClassifyLine(line.Content)
	if c.Unterminated {
		t.beginRawSpan()
		return line.Raw
	}
	return t.apply(line.Content, c)
}

// apply prints content at its depth and advances the running depth.
func (t *Tracker) apply(content string, c Classification) string {
	printed := t.state.CurrentDepth - c.LeadingClosers
	if printed < 0 {
		printed = 0
	}
	t.state.CurrentDepth = printed + c.TrailingOpeners
	return strings.Repeat(IndentUnit, printed) + content
}
