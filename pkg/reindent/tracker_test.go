package reindent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feed(tr *Tracker, raw string) string {
	lines := SplitLines(raw)
	return tr.Next(lines[0])
}

func TestTracker_OpenAndClose(t *testing.T) {
	tr := NewTracker()

	assert.Equal(t, "<div>", feed(tr, "<div>"))
	assert.Equal(t, 1, tr.Depth())

	assert.Equal(t, "    <p>x</p>", feed(tr, "   <p>x</p>"))
	assert.Equal(t, 1, tr.Depth())

	assert.Equal(t, "</div>", feed(tr, "        </div>"))
	assert.Equal(t, 0, tr.Depth())
}

func TestTracker_ClampsAtZero(t *testing.T) {
	tr := NewTracker()

	assert.Equal(t, "}", feed(tr, "    }"))
	assert.Equal(t, 0, tr.Depth())
	assert.Equal(t, "</div></div>", feed(tr, "</div></div>"))
	assert.Equal(t, 0, tr.Depth())
}

func TestTracker_CloseThenOpenStaysLevel(t *testing.T) {
	tr := NewTracker()
	feed(tr, "if (a) {")

	assert.Equal(t, "} else {", feed(tr, "} else {"))
	assert.Equal(t, 1, tr.Depth())
}

func TestTracker_MidDirective(t *testing.T) {
	tr := NewTracker()
	feed(tr, "#if $a")
	feed(tr, "x")

	assert.Equal(t, "#else", feed(tr, "  #else"))
	assert.Equal(t, 1, tr.Depth())
}

func TestTracker_EmptyLine(t *testing.T) {
	tr := NewTracker()
	feed(tr, "<div>")

	assert.Equal(t, "", feed(tr, "      "))
	assert.Equal(t, "", feed(tr, "\t"))
	assert.Equal(t, 1, tr.Depth())
}

func TestTracker_RawSpan(t *testing.T) {
	tr := NewTracker()
	feed(tr, "<div>")
	feed(tr, "<ul>")
	assert.Equal(t, 2, tr.Depth())

	assert.Equal(t, "  <a href='x'", feed(tr, "  <a href='x'"))
	state := tr.State()
	assert.True(t, state.InRawSpan)
	assert.Equal(t, 2, state.RawSpanDepthSnapshot)

	assert.Equal(t, "}}} </div>", feed(tr, "}}} </div>"))
	assert.True(t, tr.State().InRawSpan)
	assert.Equal(t, 2, tr.Depth())

	assert.Equal(t, "title='y'>", feed(tr, "title='y'>"))
	assert.False(t, tr.State().InRawSpan)
	assert.Equal(t, 2, tr.Depth())

	assert.Equal(t, "        <li>z</li>", feed(tr, "<li>z</li>"))
}

func TestTracker_RawSpanIgnoresEscapedGreaterThan(t *testing.T) {
	tr := NewTracker()
	feed(tr, "<div data-x='a")

	feed(tr, `b \> c`)
	assert.True(t, tr.State().InRawSpan)

	feed(tr, `d'>`)
	assert.False(t, tr.State().InRawSpan)
}

func TestClosesRawSpan(t *testing.T) {
	assert.True(t, closesRawSpan(">"))
	assert.True(t, closesRawSpan(`a\> b>`))
	assert.False(t, closesRawSpan(`a\>`))
	assert.False(t, closesRawSpan("no close"))
	assert.False(t, closesRawSpan(""))
}
